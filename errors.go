package clite

import (
	"fmt"
	"io"
	"os"
)

// SyntaxError is a recoverable diagnostic, returned and recorded by
// ErrorSink.Recoverable instead of terminating the process. It is
// never used for fatal errors, which go through ErrorSink.Fatal per
// spec.md §7.
type SyntaxError struct {
	Message string
	Lo, Hi  int
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error: %s (at byte %d)", e.Message, e.Lo)
}

// ErrorSink is the fatal/recoverable error collaborator spec.md §6
// describes: "a fatal-error sink that prints a formatted line and
// terminates; a non-fatal syntax-error sink that prints and returns."
// It is a struct rather than two free functions so tests can swap
// Writer and Exit to observe fatal errors without killing the test
// binary.
type ErrorSink struct {
	Writer io.Writer
	// Exit is called by Fatal after writing the message. It defaults
	// to os.Exit(1) via NewErrorSink; tests replace it with a
	// function that records the call instead of terminating.
	Exit func(code int)

	// recovered accumulates every recoverable error seen, so callers
	// (and tests) can inspect them after a parse completes.
	recovered []SyntaxError
}

// NewErrorSink returns a sink that prints to os.Stderr and terminates
// the process with status 1 on a fatal error.
func NewErrorSink() *ErrorSink {
	return &ErrorSink{Writer: os.Stderr, Exit: func(code int) { os.Exit(code) }}
}

// Fatal prints "Syntax Error: <message>" and calls Exit(1). It never
// returns when Exit itself does not return (the production default);
// under a test-installed Exit it returns normally so test code can
// assert on the call and unwind.
func (e *ErrorSink) Fatal(message string, lo int) {
	fmt.Fprintf(e.Writer, "Syntax Error: %s (at byte %d)\n", message, lo)
	e.Exit(1)
}

// Recoverable prints the same "Syntax Error: ..." line as Fatal but
// does not call Exit; the caller substitutes a safe default value and
// continues scanning/parsing, per spec.md §7's recoverable-lex-error
// taxonomy.
func (e *ErrorSink) Recoverable(message string, lo, hi int) SyntaxError {
	err := SyntaxError{Message: message, Lo: lo, Hi: hi}
	fmt.Fprintln(e.Writer, err.Error())
	e.recovered = append(e.recovered, err)
	return err
}

// Recovered returns every recoverable error reported through this
// sink so far, in report order.
func (e *ErrorSink) Recovered() []SyntaxError {
	return e.recovered
}
