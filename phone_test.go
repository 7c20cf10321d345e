package radar

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"89151731545", "+79151731545"},
		{"79151731545", "+79151731545"},
		{"+79151731545", "+79151731545"},
		{"9151731545", "+79151731545"},
		{"+7 (915) 173-15-45", "+79151731545"},
		{"8 915 173 15 45", "+79151731545"},
		// too short, sent through with the prefix, backend decides
		{"12345", "+712345"},
		// 9-digit landline-looking input, same rule
		{"495123456", "+7495123456"},
		// 8 only counts as the domestic prefix at 11 digits
		{"8915173154", "+78915173154"},
		{"", "+7"},
		{"abc", "+7"},
	}
	for _, tc := range tests {
		if got := NormalizePhone(tc.raw); got != tc.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizePhoneIdempotent(t *testing.T) {
	inputs := []string{"89151731545", "9151731545", "+7 (915) 173-15-45", ""}
	for _, raw := range inputs {
		once := NormalizePhone(raw)
		twice := NormalizePhone(once)
		if once != twice {
			t.Errorf("NormalizePhone(%q): not idempotent, %q then %q", raw, once, twice)
		}
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  string
	}{
		{"+79151731545", "+7 915 173 15 45"},
		{"+7915173154", "+7915173154"},   // too short, unchanged
		{"79151731545", "79151731545"},   // no plus, unchanged
		{"+7915a731545", "+7915a731545"}, // not all digits, unchanged
		{"", ""},
	}
	for _, tc := range tests {
		if got := MaskPhone(tc.phone); got != tc.want {
			t.Errorf("MaskPhone(%q) = %q, want %q", tc.phone, got, tc.want)
		}
	}
}
