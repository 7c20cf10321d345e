package radar

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// EventKind classifies a payment-calendar event.
type EventKind string

const (
	Coupon       EventKind = "coupon"
	Redemption   EventKind = "redemption"
	Offer        EventKind = "offer"
	GenericEvent EventKind = "generic"
)

// ParseEventKind maps the backend's event type strings onto an
// EventKind. The backend has served both English and Russian spellings.
func ParseEventKind(s string) EventKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coupon", "купон":
		return Coupon
	case "redemption", "maturity", "погашение":
		return Redemption
	case "offer", "put", "оферта":
		return Offer
	default:
		return GenericEvent
	}
}

// Label returns a short human label for the kind.
func (k EventKind) Label() string {
	switch k {
	case Coupon:
		return "coupon"
	case Redemption:
		return "redemption"
	case Offer:
		return "offer"
	default:
		return "payment"
	}
}

// CalendarEvent is one upcoming payment for a held security: a bond
// coupon, a redemption of the nominal, or an offer (put) date.
type CalendarEvent struct {
	Date   Date
	Name   string // security name
	ISIN   string
	Market string // source pill, e.g. MOEX

	Kind    EventKind
	RawKind string // type as received

	// Amount is the per-unit payment. Exact decimal: the backend serves
	// amounts like 15.50 per bond and they are displayed verbatim.
	Amount   decimal.Decimal
	Currency string
	Note     string // e.g. "per bond", "nominal"
}

func (e *CalendarEvent) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date   Date   `json:"date"`
		Name   string `json:"name"`
		ISIN   string `json:"isin"`
		Market string `json:"market"`

		// the event kind has been served under both keys
		Type string `json:"type"`
		Kind string `json:"kind"`

		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		Note     string          `json:"note"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := aux.Type
	if raw == "" {
		raw = aux.Kind
	}

	e.Date = aux.Date
	e.Name = aux.Name
	e.ISIN = aux.ISIN
	e.Market = aux.Market
	e.RawKind = raw
	e.Kind = ParseEventKind(raw)
	e.Amount = aux.Amount
	e.Currency = aux.Currency
	e.Note = aux.Note
	return nil
}

// Money wraps the per-unit amount for formatting.
func (e CalendarEvent) Money() Money { return DecimalMoney(e.Amount, e.Currency) }

// FilterEvents keeps the events of the given kinds, in order. No kinds
// means no filtering.
func FilterEvents(events []CalendarEvent, kinds ...EventKind) []CalendarEvent {
	if len(kinds) == 0 {
		return events
	}
	var out []CalendarEvent
	for _, e := range events {
		for _, k := range kinds {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// DayGroup is the events of one calendar day, in backend order.
type DayGroup struct {
	Date   Date
	Events []CalendarEvent
}

// GroupByDay splits events into per-day groups sorted by date
// ascending. Within a day the backend's order is preserved.
func GroupByDay(events []CalendarEvent) []DayGroup {
	index := make(map[Date]int)
	var groups []DayGroup
	for _, e := range events {
		i, ok := index[e.Date]
		if !ok {
			i = len(groups)
			index[e.Date] = i
			groups = append(groups, DayGroup{Date: e.Date})
		}
		groups[i].Events = append(groups[i].Events, e)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})
	return groups
}
