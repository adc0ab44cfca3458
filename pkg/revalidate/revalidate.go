package revalidate

import "github.com/zoumapps/validation/pkg/pattern"

// Phase names the current state of the machine.
type Phase string

const (
	// PhaseDirty means no trustworthy verdict is cached; the next Evaluate
	// must run the matcher.
	PhaseDirty Phase = "dirty"
	// PhaseClean means the cached verdict is valid for the current text.
	PhaseClean Phase = "clean"
)

// State is the revalidation machine for one field.
type State struct {
	dirty bool
	last  bool
}

// New returns a State in the Dirty phase, forcing one initial match.
func New() *State {
	return &State{dirty: true}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	if s.dirty {
		return PhaseDirty
	}
	return PhaseClean
}

// MarkDirty invalidates any cached verdict. Valid from either phase and
// idempotent: calling it several times between reads equals calling it once.
func (s *State) MarkDirty() {
	s.dirty = true
}

// Cached returns the cached verdict and whether it is trustworthy.
func (s *State) Cached() (result, ok bool) {
	return s.last, !s.dirty
}

// Evaluate returns the validity of text. While Dirty it runs the matcher
// exactly once, caches the verdict and transitions to Clean; while Clean it
// returns the cached verdict without matching.
func (s *State) Evaluate(text string, m *pattern.Matcher) bool {
	if s.dirty {
		s.last = m.MatchString(text)
		s.dirty = false
	}
	return s.last
}
