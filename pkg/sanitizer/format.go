package sanitizer

import "strings"

// NormalizeEmail fixes the common input errors behind failed email
// validation: surrounding whitespace, uppercase letters and accidental dot
// runs in the local part. Values without exactly one @ are returned with only
// whitespace and case normalized.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRunRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizeURL trims the value and prepends http:// when no accepted scheme
// is present, so host-typed addresses like "www.x.com" pass the URL kind.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	for _, scheme := range []string{"http://", "https://", "ftp://"} {
		if strings.HasPrefix(strings.ToLower(raw), scheme) {
			return raw
		}
	}
	return "http://" + raw
}

// NormalizeHexColor extracts the hex digits from the value and re-prefixes
// them with #. Inputs that do not reduce to exactly 3 or 6 hex digits are
// returned unchanged, leaving the field invalid.
func NormalizeHexColor(raw string) string {
	digits := nonHexDigitRegex.ReplaceAllString(raw, "")
	if len(digits) != 3 && len(digits) != 6 {
		return raw
	}
	return "#" + digits
}
