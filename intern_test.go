package clite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternerIdentity(t *testing.T) {
	in := NewInterner()

	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"identical spellings intern to the same pointer", "hello", "hello", true},
		{"different spellings intern to different pointers", "hello", "world", false},
		{"empty string interns consistently", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := in.Intern(tt.a)
			b := in.Intern(tt.b)
			if tt.same {
				assert.Same(t, a, b)
			} else {
				assert.NotSame(t, a, b)
			}
		})
	}
}

func TestInternerIdempotent(t *testing.T) {
	in := NewInterner()
	a := in.Intern("counter")
	b := in.Intern(a.Name())
	require.Same(t, a, b)
}

func TestInternRange(t *testing.T) {
	in := NewInterner()
	src := []byte("  foobar  ")
	sym := in.InternRange(src, 2, 8)
	require.Equal(t, "foobar", sym.Name())
	assert.Same(t, sym, in.Intern("foobar"))
}

func TestKeywordDetection(t *testing.T) {
	in := NewInterner()
	for _, kw := range keywordSpellings {
		t.Run(kw, func(t *testing.T) {
			sym := in.Intern(kw)
			assert.True(t, sym.IsKeyword())
		})
	}

	nonKeywords := []string{"foobar", "let_", "returning", "x", "Struct"}
	for _, name := range nonKeywords {
		t.Run(name, func(t *testing.T) {
			sym := in.Intern(name)
			assert.False(t, sym.IsKeyword())
		})
	}
}

func TestInternerLen(t *testing.T) {
	in := NewInterner()
	base := in.Len()
	in.Intern("newsym")
	require.Equal(t, base+1, in.Len())
	in.Intern("newsym")
	require.Equal(t, base+1, in.Len(), "re-interning must not grow the table")
}
