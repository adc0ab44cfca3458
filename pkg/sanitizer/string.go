package sanitizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace trims the value and folds internal whitespace runs into
// single spaces.
func CollapseWhitespace(s string) string {
	return whitespaceRegex.ReplaceAllString(strings.TrimSpace(s), " ")
}

// ToLower converts the value to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// ToUpper converts the value to uppercase.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// TitleCase converts the value to title case using English casing rules.
func TitleCase(s string) string {
	return titleCaser.String(s)
}

// KeepAlphanumeric strips everything but ASCII letters and digits, targeting
// the alphanumeric kind.
func KeepAlphanumeric(s string) string {
	return nonAlphanumericRegex.ReplaceAllString(s, "")
}

// KeepAlpha strips everything but ASCII letters, targeting the alphabetic
// kind.
func KeepAlpha(s string) string {
	return nonAlphaRegex.ReplaceAllString(s, "")
}

// KeepDigits strips everything but ASCII digits, targeting the numeric kind.
func KeepDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
