// Package pattern compiles validation expressions into reusable full-string
// matchers.
//
// Compile anchors the expression with \A(?:...)\z, so the entire input must
// satisfy it; a substring hit never counts:
//
//	m, err := pattern.Compile(`[a-z0-9]+`)
//	m.MatchString("abc123")  // true
//	m.MatchString("abc123!") // false, even though a prefix matches
//
// A malformed expression yields ErrInvalidPattern (check with
// IsInvalidPattern); an empty expression is also rejected because an
// accidentally unset rule must fail loudly rather than silently accept or
// reject everything. Callers that genuinely want a match-nothing rule opt in
// with CompileEmptyAsNever.
//
// Matcher counts its MatchString executions. The counter exists so callers
// that cache results can verify no redundant matching happens; it is not
// synchronized, matching the engine's single-dispatch-context contract.
package pattern
