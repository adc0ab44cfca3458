package webform

import "github.com/zoumapps/validation/pkg/logger"

// Config carries the adapter's environment-driven settings.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `env:"WEBFORM_ADDR" envDefault:":8080"`
	// FormsPath points at the YAML form description.
	FormsPath string `env:"WEBFORM_FORMS" envDefault:"forms.yaml"`
	// LogFormat selects the logger encoding, "text" or "json".
	LogFormat logger.Format `env:"WEBFORM_LOG_FORMAT" envDefault:"text"`
}
