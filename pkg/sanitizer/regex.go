package sanitizer

import "regexp"

// Pre-compiled expressions shared by the fixers.
var (
	whitespaceRegex      = regexp.MustCompile(`\s+`)
	dotRunRegex          = regexp.MustCompile(`\.+`)
	nonAlphanumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	nonAlphaRegex        = regexp.MustCompile(`[^a-zA-Z]`)
	nonDigitRegex        = regexp.MustCompile(`[^0-9]`)
	nonHexDigitRegex     = regexp.MustCompile(`[^0-9a-fA-F]`)
)
