package webform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zoumapps/validation/pkg/criteria"
	"github.com/zoumapps/validation/webform"
)

const signupForm = `
forms:
  - name: signup
    fields:
      - name: email
        kind: email
        sanitize: [trim, lower, email]
      - name: homepage
        kind: url
        sanitize: [url]
      - name: pin
        custom_pattern: "^[0-9]{4}$"
`

func TestParseDescription(t *testing.T) {
	t.Run("parses a valid description", func(t *testing.T) {
		desc, err := webform.ParseDescription([]byte(signupForm))
		require.NoError(t, err)
		require.Len(t, desc.Forms, 1)

		form := desc.Forms[0]
		assert.Equal(t, "signup", form.Name)
		require.Len(t, form.Fields, 3)
		assert.Equal(t, criteria.Email, form.Fields[0].Kind)
		assert.Equal(t, []string{"trim", "lower", "email"}, form.Fields[0].Sanitize)
		assert.Equal(t, "^[0-9]{4}$", form.Fields[2].CustomPattern)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		_, err := webform.ParseDescription([]byte("forms: ["))
		assert.Error(t, err)
	})

	t.Run("rejects an unknown kind", func(t *testing.T) {
		_, err := webform.ParseDescription([]byte(`
forms:
  - name: f
    fields:
      - name: x
        kind: zipcode
`))
		assert.Error(t, err)
	})

	t.Run("rejects a nameless field", func(t *testing.T) {
		_, err := webform.ParseDescription([]byte(`
forms:
  - name: f
    fields:
      - kind: email
`))
		assert.Error(t, err)
	})

	t.Run("rejects duplicate field names", func(t *testing.T) {
		_, err := webform.ParseDescription([]byte(`
forms:
  - name: f
    fields:
      - name: x
        kind: email
      - name: x
        kind: url
`))
		assert.Error(t, err)
	})

	t.Run("rejects an unknown sanitize directive", func(t *testing.T) {
		_, err := webform.ParseDescription([]byte(`
forms:
  - name: f
    fields:
      - name: x
        kind: email
        sanitize: [shout]
`))
		assert.Error(t, err)
	})
}
