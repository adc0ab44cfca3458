// Package sanitizer provides ready-made fixers for rewriting invalid field
// input into an acceptable form.
//
// Every helper has the signature func(string) string, so each one can be
// bound directly as a field sanitizer, and none of them returns an error:
// when a value cannot be fixed the original input comes back unchanged and
// the field simply stays invalid.
//
// The helpers fall into two groups:
//
//   - Generic cleanup: Trim, CollapseWhitespace, ToLower, ToUpper, TitleCase.
//   - Kind-targeted fixers that produce output accepted by the corresponding
//     catalog kind when the input is close enough: NormalizeEmail,
//     NormalizeURL, NormalizeHexColor, KeepAlphanumeric, KeepAlpha,
//     KeepDigits.
//
// Apply and Compose build pipelines when one fixer is not enough:
//
//	fix := sanitizer.Compose(
//		sanitizer.Trim,
//		sanitizer.ToLower,
//		sanitizer.NormalizeEmail,
//	)
//	f := field.New(field.WithKind(criteria.Email), field.WithSanitizer(fix))
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
