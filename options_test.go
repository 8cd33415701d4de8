package clite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultLexerOptionsCommentsOff(t *testing.T) {
	opts := DefaultLexerOptions()
	require.False(t, opts.lineComments())
	require.False(t, opts.blockComments())
}

func TestLexerOptionsWithCommentsIsImmutable(t *testing.T) {
	base := DefaultLexerOptions()
	withLine := base.WithLineComments(true)

	require.False(t, base.lineComments(), "WithLineComments must not mutate the receiver")
	require.True(t, withLine.lineComments())
	require.False(t, withLine.blockComments())

	withBoth := withLine.WithBlockComments(true)
	require.True(t, withBoth.lineComments())
	require.True(t, withBoth.blockComments())
}
