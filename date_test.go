package radar

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateComparable(t *testing.T) {
	d1 := NewDate(2026, 7, 31)
	d2 := NewDate(2026, 7, 31)
	if d1 != d2 {
		t.Errorf("equal dates compare unequal: %v vs %v", d1, d2)
	}
}

func TestNewDateNormalizes(t *testing.T) {
	// out-of-range components wrap like time.Date
	got := NewDate(2026, 1, 32)
	want := NewDate(2026, 2, 1)
	if got != want {
		t.Errorf("NewDate(2026, 1, 32) = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-15")
	if err != nil {
		t.Fatal(err)
	}
	if d.Year() != 2026 || d.Month() != time.October || d.Day() != 15 {
		t.Errorf("ParseDate = %v", d)
	}

	if _, err := ParseDate("15.10.2026"); err == nil {
		t.Error("expected an error for a non-ISO date")
	}
}

func TestDateBefore(t *testing.T) {
	tests := []struct {
		a, b Date
		want bool
	}{
		{NewDate(2026, 10, 14), NewDate(2026, 10, 15), true},
		{NewDate(2026, 10, 15), NewDate(2026, 10, 15), false},
		{NewDate(2026, 10, 16), NewDate(2026, 10, 15), false},
		{NewDate(2025, 12, 31), NewDate(2026, 1, 1), true},
	}
	for _, tc := range tests {
		if got := tc.a.Before(tc.b); got != tc.want {
			t.Errorf("%v.Before(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDateJSON(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"2026-10-15"`), &d); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2026-10-15" {
		t.Errorf("String = %q", d.String())
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `"2026-10-15"` {
		t.Errorf("Marshal = %s", out)
	}
}
