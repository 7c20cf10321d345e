package radar

import "strings"

// NormalizePhone maps arbitrary user-typed phone text to the canonical
// identifier used for all backend calls: "+7" followed by the
// significant digits.
//
// Russian mobile numbers are canonically +7XXXXXXXXXX, but users
// commonly type the domestic 8-prefixed form, with separators,
// parentheses or a leading +. The function strips everything that is
// not a digit and applies the prefix rules, in order:
//
//   - 11 digits starting with 8: the domestic form, 8 becomes +7
//   - 11 digits starting with 7: already the full number, just add +
//   - anything else, including too-short and empty input: prepend +7
//
// It never rejects input. The backend, not the client, decides whether
// the resulting identifier maps to a registered account; an invalid
// number simply fails the downstream lookup.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()

	switch {
	case len(d) == 11 && d[0] == '8':
		return "+7" + d[1:]
	case len(d) == 11 && d[0] == '7':
		return "+" + d
	default:
		return "+7" + d
	}
}

// MaskPhone formats a canonical +7XXXXXXXXXX identifier as
// "+7 XXX XXX XX XX" for display. Anything that is not a full
// canonical number is returned unchanged.
func MaskPhone(phone string) string {
	if len(phone) != 12 || !strings.HasPrefix(phone, "+7") {
		return phone
	}
	d := phone[2:]
	for _, r := range d {
		if r < '0' || r > '9' {
			return phone
		}
	}
	return phone[:2] + " " + d[:3] + " " + d[3:6] + " " + d[6:8] + " " + d[8:]
}
