package sanitizer

// Apply runs value through the given fixers in order.
func Apply(value string, fixers ...func(string) string) string {
	for _, fix := range fixers {
		value = fix(value)
	}
	return value
}

// Compose builds a reusable pipeline from the given fixers. The result can be
// bound directly as a field sanitizer.
func Compose(fixers ...func(string) string) func(string) string {
	return func(value string) string {
		return Apply(value, fixers...)
	}
}
