package clite

// LexerOptions is a small typed, string-keyed configuration object
// governing the one lexer extension point spec.md §6 explicitly
// anticipates without specifying: comment recognition. ("the
// specified lexer does not recognise `//` or `/* */`; an
// implementation adding them must do so by extending `next_token`
// before dispatch.") Both are off by default, so the bit-exact
// accept/reject surface described in spec.md §6/§8 is unchanged
// unless a caller opts in.
//
// Modelled on the teacher's Config (a typed map of named settings)
// rather than a bare struct of bools, so additional lexer/parser
// toggles can be added the same way the teacher adds grammar-loader
// toggles, without changing every call site's positional arguments.
type LexerOptions struct {
	values map[string]bool
}

// DefaultLexerOptions returns an options value with every toggle at
// its spec-preserving default (comments disabled).
func DefaultLexerOptions() LexerOptions {
	return LexerOptions{values: map[string]bool{
		"lexer.line_comments":  false,
		"lexer.block_comments": false,
	}}
}

func (o *LexerOptions) ensure() {
	if o.values == nil {
		*o = DefaultLexerOptions()
	}
}

func (o LexerOptions) get(key string) bool {
	return o.values[key]
}

// WithLineComments enables `// ...` end-of-line comments.
func (o LexerOptions) WithLineComments(enabled bool) LexerOptions {
	o.ensure()
	cp := cloneBoolMap(o.values)
	cp["lexer.line_comments"] = enabled
	return LexerOptions{values: cp}
}

// WithBlockComments enables non-nesting `/* ... */` comments.
func (o LexerOptions) WithBlockComments(enabled bool) LexerOptions {
	o.ensure()
	cp := cloneBoolMap(o.values)
	cp["lexer.block_comments"] = enabled
	return LexerOptions{values: cp}
}

func (o LexerOptions) lineComments() bool  { return o.get("lexer.line_comments") }
func (o LexerOptions) blockComments() bool { return o.get("lexer.block_comments") }

func cloneBoolMap(m map[string]bool) map[string]bool {
	cp := make(map[string]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
