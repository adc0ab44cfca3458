// Package revalidate tracks whether a cached validation verdict is still
// trustworthy for the current text of a field.
//
// The machine has two phases. It starts Dirty, forcing one initial match.
// Evaluate while Dirty runs the matcher once, caches the verdict and moves to
// Clean; Evaluate while Clean returns the cached verdict without touching the
// matcher, so repeated validity reads between edits are O(1). MarkDirty
// returns the machine to Dirty from either phase and is idempotent; text
// edits and rule changes both route through it.
//
//	s := revalidate.New()
//	s.Evaluate("abc", m) // matches, Clean
//	s.Evaluate("abc", m) // cached, no match
//	s.MarkDirty()
//	s.Evaluate("abc", m) // matches again, even for identical text
//
// Keeping the flag as an explicit machine, instead of a boolean toggled from
// several UI callback sites, makes the transition rules testable without any
// host wiring.
//
// A State is owned by one field and one dispatch context; it performs no
// internal locking.
package revalidate
