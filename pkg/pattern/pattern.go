package pattern

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidPattern is returned when an expression cannot be compiled.
var ErrInvalidPattern = errors.New("pattern: invalid expression")

// Matcher performs full-string matching against one compiled expression.
// A nil regexp means the matcher accepts nothing.
type Matcher struct {
	re      *regexp.Regexp
	expr    string
	matches uint64
}

// Compile turns an expression into a full-string Matcher. Empty expressions
// are rejected: a rule that was never set must not masquerade as one that
// accepts or rejects everything.
func Compile(expr string) (*Matcher, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrInvalidPattern)
	}
	return compile(expr)
}

// CompileEmptyAsNever behaves like Compile but maps the empty expression to a
// matcher that accepts nothing, for callers that explicitly want that rule.
func CompileEmptyAsNever(expr string) (*Matcher, error) {
	if expr == "" {
		return &Matcher{}, nil
	}
	return compile(expr)
}

// MustCompile compiles a known-good expression and panics otherwise. Reserved
// for the canonical catalog patterns, which are fixed at build time.
func MustCompile(expr string) *Matcher {
	m, err := Compile(expr)
	if err != nil {
		panic(fmt.Sprintf("pattern: MustCompile(%q): %v", expr, err))
	}
	return m
}

func compile(expr string) (*Matcher, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)\z`)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return &Matcher{re: re, expr: expr}, nil
}

// MatchString reports whether the entire text satisfies the expression and
// increments the match counter.
func (m *Matcher) MatchString(text string) bool {
	m.matches++
	if m.re == nil {
		return false
	}
	return m.re.MatchString(text)
}

// Matches returns how many times MatchString has executed.
func (m *Matcher) Matches() uint64 {
	return m.matches
}

// Expr returns the source expression, empty for a match-nothing matcher.
func (m *Matcher) Expr() string {
	return m.expr
}

// IsInvalidPattern reports whether err stems from a malformed expression.
func IsInvalidPattern(err error) bool {
	return errors.Is(err, ErrInvalidPattern)
}
