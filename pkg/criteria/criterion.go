package criteria

// Criterion is the validation rule in effect for one field: either a
// predefined kind or a custom expression. The zero value behaves as
// KindOf(NonEmpty), preserving the invariant that a field always has an
// active rule.
type Criterion struct {
	kind   Kind
	custom string
}

// KindOf returns a Criterion backed by a predefined kind.
func KindOf(k Kind) Criterion {
	return Criterion{kind: k}
}

// Custom returns a Criterion backed by a caller-supplied expression.
func Custom(expr string) Criterion {
	return Criterion{custom: expr}
}

// Resolve combines construction-time configuration into a single Criterion.
// A non-empty custom expression overrides the kind; with neither supplied the
// result is the NonEmpty criterion.
func Resolve(kind Kind, custom string) Criterion {
	if custom != "" {
		return Custom(custom)
	}
	return KindOf(kind)
}

// IsCustom reports whether the criterion carries a custom expression.
func (c Criterion) IsCustom() bool {
	return c.custom != ""
}

// Kind returns the predefined kind backing the criterion. For custom
// criteria it returns the zero Kind.
func (c Criterion) Kind() Kind {
	return c.kind
}

// Pattern returns the expression to compile: the custom expression when set,
// otherwise the kind's canonical pattern.
func (c Criterion) Pattern() string {
	if c.custom != "" {
		return c.custom
	}
	return c.kind.Pattern()
}
