package criteria

import "fmt"

// Kind identifies one of the predefined validation rules.
type Kind string

const (
	// NonEmpty accepts any input of length >= 1.
	NonEmpty Kind = "non_empty"
	// URL accepts http://, https:// and ftp:// URLs with a dotted host.
	URL Kind = "url"
	// HexColor accepts a #-sign followed by exactly 3 or 6 hex digits.
	HexColor Kind = "hex_color"
	// AlphaNumeric accepts one or more ASCII letters and digits, implies non-empty.
	AlphaNumeric Kind = "alphanumeric"
	// Alphabetic accepts one or more ASCII letters, implies non-empty.
	Alphabetic Kind = "alphabetic"
	// Numeric accepts one or more ASCII digits, implies non-empty.
	Numeric Kind = "numeric"
	// Email accepts local@domain.tld shaped addresses with an ASCII grammar.
	Email Kind = "email"
)

// Canonical expressions, unanchored. The pattern package anchors them for
// full-string matching at compile time.
var patterns = map[Kind]string{
	NonEmpty:     `.+`,
	URL:          `(https?|ftp)://.+\..+`,
	HexColor:     `#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})`,
	AlphaNumeric: `[a-zA-Z0-9]+`,
	Alphabetic:   `[a-zA-Z]+`,
	Numeric:      `[0-9]+`,
	Email:        `[a-zA-Z0-9+._%-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9-]{0,25})+`,
}

// Kinds returns the closed set of predefined kinds.
func Kinds() []Kind {
	return []Kind{NonEmpty, URL, HexColor, AlphaNumeric, Alphabetic, Numeric, Email}
}

// Pattern returns the canonical expression for the kind. The function is
// total: unknown kinds and the zero value resolve to the NonEmpty expression
// so a field is never left without a rule.
func (k Kind) Pattern() string {
	if p, ok := patterns[k]; ok {
		return p
	}
	return patterns[NonEmpty]
}

// Valid reports whether k is one of the predefined kinds.
func (k Kind) Valid() bool {
	_, ok := patterns[k]
	return ok
}

func (k Kind) String() string {
	return string(k)
}

// ParseKind converts a string such as "email" into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("criteria: unknown validation kind %q", s)
	}
	return k, nil
}

// UnmarshalText implements encoding.TextUnmarshaler so kinds can be read
// directly from env vars and YAML form descriptions. An empty value keeps the
// zero Kind, which behaves as NonEmpty.
func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = ""
		return nil
	}
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}
