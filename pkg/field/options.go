package field

import "github.com/zoumapps/validation/pkg/criteria"

// Config is the attribute-style construction record hosts populate from
// their own configuration surface (env vars, form descriptions). When both
// members are set the custom pattern takes precedence over the kind; with
// neither set the field validates with NonEmpty.
type Config struct {
	Kind          criteria.Kind `env:"FIELD_KIND" yaml:"kind"`
	CustomPattern string        `env:"FIELD_CUSTOM_PATTERN" yaml:"custom_pattern"`
}

// Option configures a Field during construction.
type Option func(*options)

type options struct {
	kind      criteria.Kind
	custom    string
	sanitizer Sanitizer
	indicator Indicator
}

// WithKind selects a predefined validation kind.
func WithKind(k criteria.Kind) Option {
	return func(o *options) { o.kind = k }
}

// WithCustomPattern selects a custom expression. A non-empty custom pattern
// overrides any kind supplied alongside it.
func WithCustomPattern(expr string) Option {
	return func(o *options) { o.custom = expr }
}

// WithConfig applies an attribute-style configuration record.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.kind = cfg.Kind
		o.custom = cfg.CustomPattern
	}
}

// WithSanitizer binds the sanitizer invoked by Sanitize on invalid text.
// Nil sanitizers are ignored.
func WithSanitizer(s Sanitizer) Option {
	return func(o *options) {
		if s != nil {
			o.sanitizer = s
		}
	}
}

// WithIndicator binds the host's invalid-input signal fired by ShowValidity.
// Nil indicators are ignored.
func WithIndicator(fn Indicator) Option {
	return func(o *options) {
		if fn != nil {
			o.indicator = fn
		}
	}
}
