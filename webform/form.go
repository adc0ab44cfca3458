package webform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoumapps/validation/pkg/criteria"
	"github.com/zoumapps/validation/pkg/field"
	"github.com/zoumapps/validation/pkg/sanitizer"
)

// FieldSpec declares one validated field of a form.
type FieldSpec struct {
	Name string `yaml:"name"`
	// Kind selects a predefined validation kind; CustomPattern overrides it
	// when both are set, same as at field construction.
	Kind          criteria.Kind `yaml:"kind"`
	CustomPattern string        `yaml:"custom_pattern"`
	// Sanitize names fixers from the sanitizer package, applied in order on
	// commit when the text is invalid.
	Sanitize []string `yaml:"sanitize"`
}

// FormSpec declares one named form.
type FormSpec struct {
	Name   string      `yaml:"name"`
	Fields []FieldSpec `yaml:"fields"`
}

// Description is the root of a YAML form description.
type Description struct {
	Forms []FormSpec `yaml:"forms"`
}

// fixers maps the sanitize directive names accepted in form descriptions to
// the sanitizer package helpers.
var fixers = map[string]func(string) string{
	"trim":                sanitizer.Trim,
	"collapse_whitespace": sanitizer.CollapseWhitespace,
	"lower":               sanitizer.ToLower,
	"upper":               sanitizer.ToUpper,
	"title":               sanitizer.TitleCase,
	"email":               sanitizer.NormalizeEmail,
	"url":                 sanitizer.NormalizeURL,
	"hex_color":           sanitizer.NormalizeHexColor,
	"keep_alphanumeric":   sanitizer.KeepAlphanumeric,
	"keep_alpha":          sanitizer.KeepAlpha,
	"keep_digits":         sanitizer.KeepDigits,
}

// ParseDescription decodes and validates a YAML form description.
func ParseDescription(data []byte) (Description, error) {
	var desc Description
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return Description{}, fmt.Errorf("webform: parse description: %w", err)
	}

	seenForms := make(map[string]bool)
	for _, form := range desc.Forms {
		if form.Name == "" {
			return Description{}, fmt.Errorf("webform: form without a name")
		}
		if seenForms[form.Name] {
			return Description{}, fmt.Errorf("webform: duplicate form %q", form.Name)
		}
		seenForms[form.Name] = true

		seenFields := make(map[string]bool)
		for _, fs := range form.Fields {
			if fs.Name == "" {
				return Description{}, fmt.Errorf("webform: form %q: field without a name", form.Name)
			}
			if seenFields[fs.Name] {
				return Description{}, fmt.Errorf("webform: form %q: duplicate field %q", form.Name, fs.Name)
			}
			seenFields[fs.Name] = true

			for _, name := range fs.Sanitize {
				if _, ok := fixers[name]; !ok {
					return Description{}, fmt.Errorf("webform: form %q: field %q: unknown sanitize directive %q", form.Name, fs.Name, name)
				}
			}
		}
	}
	return desc, nil
}

// LoadDescription reads and parses a YAML form description file.
func LoadDescription(path string) (Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Description{}, fmt.Errorf("webform: read description: %w", err)
	}
	return ParseDescription(data)
}

// build turns a FieldSpec into an engine field wired to the adapter's
// indicator. A malformed custom pattern degrades to NonEmpty inside the
// engine, so construction cannot fail.
func (fs FieldSpec) build(indicator field.Indicator) *field.Field {
	opts := []field.Option{
		field.WithConfig(field.Config{Kind: fs.Kind, CustomPattern: fs.CustomPattern}),
		field.WithIndicator(indicator),
	}
	if len(fs.Sanitize) > 0 {
		pipeline := make([]func(string) string, 0, len(fs.Sanitize))
		for _, name := range fs.Sanitize {
			pipeline = append(pipeline, fixers[name])
		}
		opts = append(opts, field.WithSanitizer(sanitizer.Compose(pipeline...)))
	}
	return field.New(opts...)
}
