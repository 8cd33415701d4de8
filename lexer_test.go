package clite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestLexer(t *testing.T, src string) (*Lexer, *ErrorSink) {
	t.Helper()
	errs, _ := newTestErrorSink()
	lex := NewLexer([]byte(src), NewInterner(), errs, DefaultLexerOptions())
	return lex, errs
}

// collectTokens drains the lexer into a slice, including the
// terminal EOF token.
func collectTokens(lex *Lexer) []Token {
	var toks []Token
	for {
		tok := lex.Cur()
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks
		}
		lex.Next()
	}
}

// TestLexerIntegerBases checks spec.md §8's scanner scenario:
// "0 18446744073709551615 0xffffffffffffffff 042 0b1111" yields five
// INT tokens with values 0, 2^64-1, 2^64-1, 34, 15 and mods
// {none, none, hex, oct, bin}.
func TestLexerIntegerBases(t *testing.T) {
	lex, errs := newTestLexer(t, "0 18446744073709551615 0xffffffffffffffff 042 0b1111")
	toks := collectTokens(lex)

	want := []struct {
		val uint64
		mod NumberMod
	}{
		{0, NumberModNone},
		{18446744073709551615, NumberModNone},
		{18446744073709551615, NumberModHex},
		{34, NumberModOctal},
		{15, NumberModBinary},
	}
	require.Len(t, toks, len(want)+1) // plus trailing EOF
	for i, w := range want {
		require.Equal(t, TokenInt, toks[i].Kind, "token %d", i)
		require.Equal(t, w.val, toks[i].IntVal, "token %d value", i)
		require.Equal(t, w.mod, toks[i].Mod, "token %d mod", i)
	}
	require.Empty(t, errs.Recovered())
}

// TestLexerCharLiterals checks spec.md §8's "'a' '\n'" scanner
// scenario: two INT tokens with values 97, 10, both mod char.
func TestLexerCharLiterals(t *testing.T) {
	lex, errs := newTestLexer(t, `'a' '\n'`)
	toks := collectTokens(lex)

	require.Equal(t, TokenInt, toks[0].Kind)
	require.Equal(t, uint64(97), toks[0].IntVal)
	require.Equal(t, NumberModChar, toks[0].Mod)

	require.Equal(t, TokenInt, toks[1].Kind)
	require.Equal(t, uint64(10), toks[1].IntVal)
	require.Equal(t, NumberModChar, toks[1].Mod)

	require.Empty(t, errs.Recovered())
}

// TestLexerOperatorDisambiguation checks spec.md §8's
// ": := + += ++ < <= << <<=" scenario.
func TestLexerOperatorDisambiguation(t *testing.T) {
	lex, errs := newTestLexer(t, ": := + += ++ < <= << <<=")
	toks := collectTokens(lex)

	want := []TokenKind{
		TokenKind(':'), TokenDefine,
		TokenKind('+'), TokenAddAssign, TokenInc,
		TokenKind('<'), TokenLe, TokenShl, TokenShlAssign,
	}
	require.Len(t, toks, len(want)+1)
	for i, k := range want {
		require.Equal(t, k, toks[i].Kind, "token %d (%s)", i, k)
	}
	require.Empty(t, errs.Recovered())
}

func TestLexerIdentVsKeyword(t *testing.T) {
	lex, _ := newTestLexer(t, "let x fn foobar return")
	toks := collectTokens(lex)

	require.Equal(t, TokenKeyword, toks[0].Kind)
	require.Equal(t, "let", toks[0].Sym.Name())
	require.Equal(t, TokenIdent, toks[1].Kind)
	require.Equal(t, "x", toks[1].Sym.Name())
	require.Equal(t, TokenKeyword, toks[2].Kind)
	require.Equal(t, TokenIdent, toks[3].Kind)
	require.Equal(t, TokenKeyword, toks[4].Kind)
}

func TestLexerStringEscapesAndOwnership(t *testing.T) {
	lex, errs := newTestLexer(t, `"a\nb\tc"`)
	tok := lex.Cur()
	require.Equal(t, TokenStr, tok.Kind)
	require.Equal(t, "a\nb\tc", string(tok.Str))
	require.Empty(t, errs.Recovered())
}

func TestLexerUnterminatedStringIsRecoverable(t *testing.T) {
	lex, errs := newTestLexer(t, `"unterminated`)
	tok := lex.Cur()
	require.Equal(t, TokenStr, tok.Kind)
	require.Len(t, errs.Recovered(), 1)
}

func TestLexerZeroIsDecimalNotOctal(t *testing.T) {
	// spec.md §6: "Integer literal 0 with no following digit is base-10
	// zero, not octal."
	lex, errs := newTestLexer(t, "0")
	tok := lex.Cur()
	require.Equal(t, TokenInt, tok.Kind)
	require.Equal(t, uint64(0), tok.IntVal)
	require.Equal(t, NumberModNone, tok.Mod)
	require.Empty(t, errs.Recovered())
}

func TestLexerFloatLiterals(t *testing.T) {
	lex, errs := newTestLexer(t, "3.14 .5 1e10 2.5e-3")
	toks := collectTokens(lex)

	want := []float64{3.14, 0.5, 1e10, 2.5e-3}
	for i, w := range want {
		require.Equal(t, TokenFloat, toks[i].Kind, "token %d", i)
		require.InDelta(t, w, toks[i].FloatVal, 1e-9, "token %d", i)
	}
	require.Empty(t, errs.Recovered())
}

func TestLexerIntThenIdentNotConsumedTogether(t *testing.T) {
	lex, errs := newTestLexer(t, "123abc")
	toks := collectTokens(lex)

	require.Equal(t, TokenInt, toks[0].Kind)
	require.Equal(t, uint64(123), toks[0].IntVal)
	require.Equal(t, TokenIdent, toks[1].Kind)
	require.Equal(t, "abc", toks[1].Sym.Name())
	require.Empty(t, errs.Recovered())
}

// TestLexerIntegerOverflowOnAdditionStep regression-tests a value that
// overflows only in the final digit's addition step (val*base stays in
// range, val*base+dv does not): 2^64 == 18446744073709551616, one past
// the uint64 max. A check that reconstructs val from a post-wraparound
// sum can round-trip past this case and miss it.
func TestLexerIntegerOverflowOnAdditionStep(t *testing.T) {
	lex, errs := newTestLexer(t, "18446744073709551616")
	tok := lex.Cur()
	require.Equal(t, TokenInt, tok.Kind)
	require.Len(t, errs.Recovered(), 1)
	require.Contains(t, errs.Recovered()[0].Message, "overflow")
}

func TestLexerLineCommentsOptIn(t *testing.T) {
	errs, _ := newTestErrorSink()
	lex := NewLexer([]byte("1 // trailing comment\n2"), NewInterner(), errs, DefaultLexerOptions().WithLineComments(true))
	toks := collectTokens(lex)
	require.Equal(t, uint64(1), toks[0].IntVal)
	require.Equal(t, uint64(2), toks[1].IntVal)
}

func TestLexerLineCommentsOffByDefault(t *testing.T) {
	// With comments disabled, "//" lexes as two separate '/' tokens.
	lex, _ := newTestLexer(t, "1 // 2")
	toks := collectTokens(lex)
	require.Equal(t, TokenInt, toks[0].Kind)
	require.Equal(t, TokenKind('/'), toks[1].Kind)
	require.Equal(t, TokenKind('/'), toks[2].Kind)
	require.Equal(t, TokenInt, toks[3].Kind)
}
