// Command clitedump reads a source file, parses its top-level
// declarations, and prints the canonical S-expression for each one.
// It exists purely as an ambient driver exercising the library end to
// end; the core lexer/parser/printer have no CLI surface of their
// own (spec.md §1's explicit non-goal: "a driver CLI").
package main

import (
	"flag"
	"log"
	"os"

	"github.com/clite-lang/clite"
)

const (
	flagLineComments  = "line-comments"
	flagBlockComments = "block-comments"
)

func main() {
	var (
		inputPath     = flag.String("input", "/dev/stdin", "Path to the source file")
		lineComments  = flag.Bool(flagLineComments, false, "Recognise // line comments")
		blockComments = flag.Bool(flagBlockComments, false, "Recognise /* */ block comments")
	)
	flag.Parse()

	src, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Can't read input file: %s", err.Error())
	}

	opts := clite.DefaultLexerOptions().
		WithLineComments(*lineComments).
		WithBlockComments(*blockComments)

	interner := clite.NewInterner()
	errs := clite.NewErrorSink()
	arena := clite.NewArena()

	lexer := clite.NewLexer(src, interner, errs, opts)
	parser := clite.NewParser(lexer, arena, errs)

	decls := parser.ParseProgram()
	for _, decl := range decls {
		os.Stdout.WriteString(clite.PrintDecl(decl))
		os.Stdout.WriteString("\n")
	}
}
