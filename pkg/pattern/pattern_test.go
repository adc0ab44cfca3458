package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoumapps/validation/pkg/criteria"
	"github.com/zoumapps/validation/pkg/pattern"
)

func TestCompile(t *testing.T) {
	t.Run("compiles a valid expression", func(t *testing.T) {
		m, err := pattern.Compile(`[a-z]+`)
		require.NoError(t, err)
		assert.Equal(t, `[a-z]+`, m.Expr())
	})

	t.Run("rejects a malformed expression", func(t *testing.T) {
		_, err := pattern.Compile(`(unterminated`)
		require.Error(t, err)
		assert.True(t, pattern.IsInvalidPattern(err))
	})

	t.Run("rejects the empty expression", func(t *testing.T) {
		_, err := pattern.Compile("")
		require.Error(t, err)
		assert.True(t, pattern.IsInvalidPattern(err))
	})
}

func TestCompileEmptyAsNever(t *testing.T) {
	m, err := pattern.CompileEmptyAsNever("")
	require.NoError(t, err)
	assert.False(t, m.MatchString(""))
	assert.False(t, m.MatchString("anything"))
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() { pattern.MustCompile(`.+`) })
	assert.Panics(t, func() { pattern.MustCompile(`(bad`) })
}

func TestFullStringMatch(t *testing.T) {
	m := pattern.MustCompile(`[a-zA-Z0-9]+`)

	assert.True(t, m.MatchString("abc123"))
	// A prefix match must not count.
	assert.False(t, m.MatchString("abc123!"))
	assert.False(t, m.MatchString("!abc123"))
	assert.False(t, m.MatchString(""))
}

func TestMatchCounter(t *testing.T) {
	m := pattern.MustCompile(`.+`)
	assert.Equal(t, uint64(0), m.Matches())

	m.MatchString("a")
	m.MatchString("")
	assert.Equal(t, uint64(2), m.Matches())
}

// The canonical catalog expressions compiled with full-string semantics must
// accept and reject the documented examples.
func TestCatalogPatterns(t *testing.T) {
	testCases := []struct {
		kind  criteria.Kind
		text  string
		valid bool
	}{
		{criteria.NonEmpty, "", false},
		{criteria.NonEmpty, " ", true},
		{criteria.NonEmpty, "x", true},

		{criteria.URL, "http://example.com", true},
		{criteria.URL, "https://example.com/path", true},
		{criteria.URL, "ftp://x.com", true},
		{criteria.URL, "www.x.com", false},
		{criteria.URL, "http://nodots", false},

		{criteria.HexColor, "#FFF", true},
		{criteria.HexColor, "#a1B2c3", true},
		{criteria.HexColor, "#GGG", false},
		{criteria.HexColor, "#FFFF", false},
		{criteria.HexColor, "FFF", false},

		{criteria.AlphaNumeric, "abc123", true},
		{criteria.AlphaNumeric, "abc123!", false},
		{criteria.AlphaNumeric, "", false},

		{criteria.Alphabetic, "abcXYZ", true},
		{criteria.Alphabetic, "abc1", false},

		{criteria.Numeric, "0042", true},
		{criteria.Numeric, "42a", false},

		{criteria.Email, "a@b.com", true},
		{criteria.Email, "john.doe+tag@mail.example.org", true},
		{criteria.Email, "a@b", false},
		{criteria.Email, "@b.com", false},
		{criteria.Email, "a@@b.com", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.kind)+"/"+tc.text, func(t *testing.T) {
			m := pattern.MustCompile(tc.kind.Pattern())
			assert.Equal(t, tc.valid, m.MatchString(tc.text))
		})
	}
}
