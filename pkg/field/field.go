package field

import (
	"github.com/zoumapps/validation/pkg/criteria"
	"github.com/zoumapps/validation/pkg/pattern"
	"github.com/zoumapps/validation/pkg/revalidate"
)

// Sanitizer rewrites invalid text into an acceptable form. It receives the
// text that failed validation and returns the replacement; it must not call
// back into the field.
type Sanitizer func(invalid string) string

// Indicator is the host's invalid-input signal, typically an animation such
// as a shake. The field only decides when to fire it.
type Indicator func()

// Field validates the input of one editable text field.
type Field struct {
	criterion criteria.Criterion
	matcher   *pattern.Matcher
	state     *revalidate.State
	sanitizer Sanitizer
	indicator Indicator
}

// New constructs a Field. Without options the field validates with the
// NonEmpty rule; a custom pattern option overrides a kind option regardless
// of order. New never fails: a malformed custom pattern falls back to
// NonEmpty, the same recovery applied at runtime by SetCriterion.
func New(opts ...Option) *Field {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	f := &Field{
		state:     revalidate.New(),
		sanitizer: cfg.sanitizer,
		indicator: cfg.indicator,
	}
	f.SetCriterion(criteria.Resolve(cfg.kind, cfg.custom))
	return f
}

// SetCriterion replaces the active criterion and recompiles the matcher. On
// a malformed custom expression the field falls back to the NonEmpty rule
// rather than surfacing the error. Any cached verdict is invalidated, even
// if the text has not changed.
func (f *Field) SetCriterion(c criteria.Criterion) {
	m, err := pattern.Compile(c.Pattern())
	if err != nil {
		c = criteria.KindOf(criteria.NonEmpty)
		m = pattern.MustCompile(c.Pattern())
	}
	f.criterion = c
	f.matcher = m
	f.state.MarkDirty()
}

// SetKind replaces the active criterion with a predefined kind.
func (f *Field) SetKind(k criteria.Kind) {
	f.SetCriterion(criteria.KindOf(k))
}

// SetCustomPattern replaces the active criterion with a custom expression.
func (f *Field) SetCustomPattern(expr string) {
	f.SetCriterion(criteria.Custom(expr))
}

// Criterion returns the active criterion. After a fallback it reports the
// NonEmpty kind, not the rejected expression.
func (f *Field) Criterion() criteria.Criterion {
	return f.criterion
}

// NotifyTextChanged must be called whenever the observed text mutates. It
// invalidates the cached verdict; repeated calls between reads are
// equivalent to one.
func (f *Field) NotifyTextChanged() {
	f.state.MarkDirty()
}

// CheckValidity reports whether text satisfies the active criterion, with no
// host-visible side effect. While the field is unchanged the cached verdict
// is returned without re-matching.
func (f *Field) CheckValidity(text string) bool {
	return f.state.Evaluate(text, f.matcher)
}

// ShowValidity computes the same result as CheckValidity and additionally
// fires the indicator when the text is invalid, so the host can render the
// failure. The boolean is returned for the host to branch on.
func (f *Field) ShowValidity(text string) bool {
	if f.CheckValidity(text) {
		return true
	}
	if f.indicator != nil {
		f.indicator()
	}
	return false
}

// BindSanitizer replaces the sanitizer binding; nil unbinds.
func (f *Field) BindSanitizer(s Sanitizer) {
	f.sanitizer = s
}

// Sanitize is the host-driven commit/focus-loss trigger. If text is invalid
// and a sanitizer is bound, the sanitizer runs exactly once and its output is
// returned unvalidated; otherwise text comes back unchanged. The second
// return reports whether a rewrite happened. The host writes the replacement
// back and then calls NotifyTextChanged; the field never re-validates the
// sanitizer's output within the same trigger, so a sanitizer that returns
// still-invalid text cannot cause a fix loop.
func (f *Field) Sanitize(text string) (string, bool) {
	if f.CheckValidity(text) || f.sanitizer == nil {
		return text, false
	}
	return f.sanitizer(text), true
}

// MatchCount returns how many times the current matcher has executed. It is
// the instrumentation point for verifying that unchanged fields are not
// re-matched; the counter resets when the criterion changes.
func (f *Field) MatchCount() uint64 {
	return f.matcher.Matches()
}
