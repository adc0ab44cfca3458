package criteria_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zoumapps/validation/pkg/criteria"
)

func TestCriterion(t *testing.T) {
	t.Run("zero value behaves as non-empty", func(t *testing.T) {
		var c criteria.Criterion
		assert.False(t, c.IsCustom())
		assert.Equal(t, criteria.NonEmpty.Pattern(), c.Pattern())
	})

	t.Run("kind criterion exposes the catalog pattern", func(t *testing.T) {
		c := criteria.KindOf(criteria.HexColor)
		assert.False(t, c.IsCustom())
		assert.Equal(t, criteria.HexColor, c.Kind())
		assert.Equal(t, criteria.HexColor.Pattern(), c.Pattern())
	})

	t.Run("custom criterion exposes its own expression", func(t *testing.T) {
		c := criteria.Custom(`[0-9]{4}`)
		assert.True(t, c.IsCustom())
		assert.Equal(t, `[0-9]{4}`, c.Pattern())
	})
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name    string
		kind    criteria.Kind
		custom  string
		pattern string
	}{
		{"kind only", criteria.Email, "", criteria.Email.Pattern()},
		{"custom only", "", `^[0-9]+$`, `^[0-9]+$`},
		{"custom overrides kind", criteria.Email, `^[0-9]+$`, `^[0-9]+$`},
		{"neither defaults to non-empty", "", "", criteria.NonEmpty.Pattern()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := criteria.Resolve(tc.kind, tc.custom)
			assert.Equal(t, tc.pattern, c.Pattern())
		})
	}
}
