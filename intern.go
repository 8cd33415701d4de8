package clite

// Symbol is the canonical, pointer-identity representative of an
// interned byte sequence. Two Symbols are the same name iff they are
// the same pointer.
type Symbol struct {
	name    string
	keyword bool
}

// Name returns the symbol's underlying bytes as a string.
func (s *Symbol) Name() string { return s.name }

// IsKeyword reports whether the symbol was interned as one of the
// source language's reserved words. Spec.md's reference design
// detects this via pointer-range membership against
// [first_keyword, last_keyword]; that invariant only holds if
// keywords are interned consecutively and nothing ever reallocates
// the table. This module substitutes the set-membership form spec.md
// explicitly sanctions as an equivalent rewrite: the flag is stamped
// once, at intern time, onto the one canonical Symbol for each
// keyword spelling.
func (s *Symbol) IsKeyword() bool { return s.keyword }

// keywordSpellings is the fixed keyword set from spec.md §3.
var keywordSpellings = []string{
	"typedef", "enum", "struct", "union", "const", "let", "fn",
	"sizeof", "break", "continue", "return", "if", "else", "while",
	"do", "for", "switch", "case", "default",
}

// Interner owns exclusive, canonical storage for every unique byte
// sequence it has seen. Intern is idempotent: interning the same
// bytes twice returns the same *Symbol both times.
type Interner struct {
	table map[string]*Symbol
}

// NewInterner creates an interner with the source language's keyword
// set already interned and flagged.
func NewInterner() *Interner {
	in := &Interner{table: make(map[string]*Symbol, 64)}
	for _, kw := range keywordSpellings {
		sym := in.Intern(kw)
		sym.keyword = true
	}
	return in
}

// Intern returns the canonical Symbol for s, allocating one the first
// time s's bytes are seen.
func (in *Interner) Intern(s string) *Symbol {
	if sym, ok := in.table[s]; ok {
		return sym
	}
	sym := &Symbol{name: s}
	in.table[s] = sym
	return sym
}

// InternRange interns the byte range src[lo:hi], the Go analogue of
// spec.md's intern_range(lo, hi) over a byte-range cursor.
func (in *Interner) InternRange(src []byte, lo, hi int) *Symbol {
	return in.Intern(string(src[lo:hi]))
}

// Len reports how many distinct symbols have been interned,
// including the keyword set.
func (in *Interner) Len() int { return len(in.table) }
