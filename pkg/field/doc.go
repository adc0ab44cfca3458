// Package field implements the validation controller for one editable text
// field.
//
// A Field owns the active criterion (predefined kind or custom expression),
// its compiled full-string matcher, and a revalidation state that caches the
// last verdict until the text or the rule changes. Hosts (UI toolkits, HTTP
// forms, CLIs) integrate through a thin surface: they report text edits with
// NotifyTextChanged, read validity with CheckValidity or ShowValidity, and
// trigger sanitization on commit or focus loss with Sanitize.
//
//	f := field.New(
//		field.WithKind(criteria.Email),
//		field.WithSanitizer(sanitizer.NormalizeEmail),
//		field.WithIndicator(shake),
//	)
//
//	f.NotifyTextChanged()
//	if !f.ShowValidity(current()) { // fires shake on failure
//		fixed, _ := f.Sanitize(current())
//		write(fixed)
//		f.NotifyTextChanged()
//	}
//
// Invalid input is an ordinary false result, never an error. The only
// exceptional condition, a malformed custom expression, is absorbed locally:
// the field falls back to the NonEmpty rule so a user-typed pattern can never
// leave it unable to validate.
//
// A Field must be driven from a single dispatch context; it does not lock.
package field
