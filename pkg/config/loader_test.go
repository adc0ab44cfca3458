package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoumapps/validation/pkg/config"
	"github.com/zoumapps/validation/pkg/criteria"
	"github.com/zoumapps/validation/pkg/field"
)

func TestLoad(t *testing.T) {
	t.Run("parses field config from env", func(t *testing.T) {
		t.Setenv("FIELD_KIND", "email")
		t.Setenv("FIELD_CUSTOM_PATTERN", "")

		var cfg field.Config
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, criteria.Email, cfg.Kind)
		assert.Empty(t, cfg.CustomPattern)
	})

	t.Run("custom pattern set alongside kind wins at construction", func(t *testing.T) {
		t.Setenv("FIELD_KIND", "email")
		t.Setenv("FIELD_CUSTOM_PATTERN", "^[0-9]+$")

		var cfg field.Config
		require.NoError(t, config.Load(&cfg))

		f := field.New(field.WithConfig(cfg))
		assert.True(t, f.CheckValidity("42"))
		f.NotifyTextChanged()
		assert.False(t, f.CheckValidity("a@b.co"))
	})

	t.Run("applies defaults", func(t *testing.T) {
		type settings struct {
			Addr string `env:"CONFIG_TEST_ADDR" envDefault:":8080"`
		}
		var s settings
		require.NoError(t, config.Load(&s))
		assert.Equal(t, ":8080", s.Addr)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		t.Setenv("FIELD_KIND", "zipcode")

		var cfg field.Config
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects a nil pointer", func(t *testing.T) {
		var cfg *field.Config
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("FIELD_KIND", "not-a-kind")

		var cfg field.Config
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
