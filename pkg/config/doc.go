// Package config loads host-adapter configuration from environment
// variables.
//
// Load parses env vars into a tagged struct, reading a .env file first when
// one is present in the working directory. The engine's core packages take
// no configuration; this package exists for hosts that want to pick a
// field's validation kind, custom pattern or listen address from the
// environment:
//
//	type Settings struct {
//		Field field.Config `envPrefix:""`
//		Addr  string       `env:"WEBFORM_ADDR" envDefault:":8080"`
//	}
//
//	var s Settings
//	config.MustLoad(&s)
//
// Load returns typed sentinel errors (ErrNilPointer, ErrParsingConfig) so
// callers can branch with errors.Is; MustLoad panics for configuration that
// is required at startup.
package config
