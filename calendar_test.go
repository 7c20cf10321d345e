package radar

import (
	"encoding/json"
	"testing"
)

func TestParseEventKind(t *testing.T) {
	tests := []struct {
		raw  string
		want EventKind
	}{
		{"coupon", Coupon},
		{"купон", Coupon},
		{"redemption", Redemption},
		{"maturity", Redemption},
		{"погашение", Redemption},
		{"offer", Offer},
		{"put", Offer},
		{"оферта", Offer},
		{"Купон", Coupon},
		{"dividend", GenericEvent},
		{"", GenericEvent},
	}
	for _, tc := range tests {
		if got := ParseEventKind(tc.raw); got != tc.want {
			t.Errorf("ParseEventKind(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestCalendarEventUnmarshal(t *testing.T) {
	data := `{
		"date": "2026-10-15",
		"name": "OFZ 26207",
		"isin": "RU000A0JS3W6",
		"market": "MOEX",
		"type": "купон",
		"amount": 15.50,
		"currency": "RUB",
		"note": "per bond"
	}`
	var e CalendarEvent
	if err := json.Unmarshal([]byte(data), &e); err != nil {
		t.Fatal(err)
	}
	if e.Kind != Coupon {
		t.Errorf("Kind = %q, want coupon", e.Kind)
	}
	if e.RawKind != "купон" {
		t.Errorf("RawKind = %q", e.RawKind)
	}
	if e.Date.String() != "2026-10-15" {
		t.Errorf("Date = %v", e.Date)
	}
	// the amount survives as an exact decimal
	if e.Amount.String() != "15.5" {
		t.Errorf("Amount = %v", e.Amount)
	}
}

func TestCalendarEventKindAlias(t *testing.T) {
	var e CalendarEvent
	if err := json.Unmarshal([]byte(`{"kind": "offer"}`), &e); err != nil {
		t.Fatal(err)
	}
	if e.Kind != Offer {
		t.Errorf("Kind = %q, want offer via the kind key", e.Kind)
	}

	// type wins when both keys are present
	if err := json.Unmarshal([]byte(`{"type": "coupon", "kind": "offer"}`), &e); err != nil {
		t.Fatal(err)
	}
	if e.Kind != Coupon {
		t.Errorf("Kind = %q, want coupon from the type key", e.Kind)
	}
}

func TestFilterEvents(t *testing.T) {
	events := []CalendarEvent{
		{Kind: Coupon, Name: "a"},
		{Kind: Redemption, Name: "b"},
		{Kind: Coupon, Name: "c"},
	}
	got := FilterEvents(events, Coupon)
	if len(got) != 2 || got[0].Name != "a" || got[1].Name != "c" {
		t.Errorf("FilterEvents = %+v", got)
	}

	if got := FilterEvents(events); len(got) != 3 {
		t.Errorf("no kinds should mean no filtering, got %d", len(got))
	}
}

func TestGroupByDay(t *testing.T) {
	d1 := NewDate(2026, 10, 2)
	d2 := NewDate(2026, 10, 15)
	events := []CalendarEvent{
		{Date: d2, Name: "late"},
		{Date: d1, Name: "early-1"},
		{Date: d1, Name: "early-2"},
	}
	groups := GroupByDay(events)
	if len(groups) != 2 {
		t.Fatalf("len = %d, want 2", len(groups))
	}
	if groups[0].Date != d1 || groups[1].Date != d2 {
		t.Errorf("groups not sorted by date: %v, %v", groups[0].Date, groups[1].Date)
	}
	if len(groups[0].Events) != 2 || groups[0].Events[0].Name != "early-1" {
		t.Errorf("within-day order lost: %+v", groups[0].Events)
	}
}
