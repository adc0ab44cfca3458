// Package criteria defines the catalog of predefined validation kinds and the
// Criterion type that captures the validation rule in effect for one text
// field.
//
// A Kind names one of the seven predefined rules (non-empty, URL, hex color,
// alphanumeric, alphabetic, numeric, email) and maps to exactly one canonical
// regular expression via Kind.Pattern. The mapping is pure and total: every
// kind, including the zero value and unknown values, resolves to a usable
// pattern, so a field can never end up without a rule to validate against.
//
// A Criterion is either a predefined kind or a custom expression. When a host
// supplies both at once, the custom expression wins:
//
//	c := criteria.Resolve(criteria.Email, `^[0-9]+$`)
//	c.Pattern() // "^[0-9]+$"
//
// The catalog stores expressions without anchors; full-string matching is the
// compiler's job (see the pattern package).
package criteria
