package clite

import (
	"strings"
)

// treePrinter accumulates output with a stack of indentation strings,
// one pushed per nesting level via indent/unindent. Only write,
// indent, unindent, and padding are needed here: the S-expression
// printer never introduces a second indentation unit or per-token
// formatting, so the teacher's generic FormatFunc/writel/pwrite
// machinery for that has no call site in this tree.
type treePrinter struct {
	padStr []string
	output *strings.Builder
}

func newTreePrinter() *treePrinter {
	return &treePrinter{output: &strings.Builder{}}
}

func (tp *treePrinter) indent(s string) {
	tp.padStr = append(tp.padStr, s)
}

func (tp *treePrinter) unindent() {
	tp.padStr = tp.padStr[:len(tp.padStr)-1]
}

func (tp *treePrinter) padding() {
	for _, item := range tp.padStr {
		tp.write(item)
	}
}

func (tp *treePrinter) write(s string) {
	tp.output.WriteString(s)
}
