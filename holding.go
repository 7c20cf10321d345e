package radar

import (
	"encoding/json"
	"strings"
)

// SecurityKind classifies a holding for display and breakdown purposes.
type SecurityKind string

const (
	Bond    SecurityKind = "bond"
	Share   SecurityKind = "share"
	ETF     SecurityKind = "etf"
	Generic SecurityKind = "generic"
)

// ParseSecurityKind maps the backend's security_type strings onto a
// SecurityKind. Both "share" and "stock" have been observed for shares;
// anything unrecognized is treated as a generic security, never as an
// error.
func ParseSecurityKind(s string) SecurityKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bond":
		return Bond
	case "share", "stock":
		return Share
	case "etf":
		return ETF
	default:
		return Generic
	}
}

// Label returns a short human label for the kind.
func (k SecurityKind) Label() string {
	switch k {
	case Bond:
		return "Bond"
	case Share:
		return "Share"
	case ETF:
		return "ETF"
	default:
		return "Other"
	}
}

// Holding is one line item of a portfolio: the ownership of a tradable
// security. Several producer versions of the backend shipped different
// field names for the same data; UnmarshalJSON folds the aliases into
// this single canonical record so the rest of the code never sees them.
type Holding struct {
	ID     string // opaque, backend-assigned
	Name   string
	Ticker string
	ISIN   string // 12-char alphanumeric code, optional

	Kind    SecurityKind
	RawType string // security_type as received

	// Quantity is the first of raw_quantity, quantity, amount present
	// with a non-null value; an explicit 0 is a valid present value.
	Quantity float64

	Price          float64
	HasPrice       bool
	MarketValue    float64 // backend-precomputed position value
	HasMarketValue bool

	// Provenance of the data backing this holding.
	Provider string // source system label, e.g. MOEX, manual, BondReference
	Fallback bool   // true when the source degraded to a less authoritative provider
}

func (h *Holding) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID     json.RawMessage `json:"id"`
		Name   string          `json:"name"`
		Ticker string          `json:"ticker"`
		ISIN   string          `json:"isin"`
		Type   string          `json:"security_type"`

		RawQuantity *float64 `json:"raw_quantity"`
		Quantity    *float64 `json:"quantity"`
		Amount      *float64 `json:"amount"`

		Price       *float64 `json:"price"`
		MarketValue *float64 `json:"market_value"`

		Provider string `json:"provider"`
		Fallback bool   `json:"fallback"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	h.ID = opaqueID(aux.ID)
	h.Name = aux.Name
	h.Ticker = aux.Ticker
	h.ISIN = aux.ISIN
	h.RawType = aux.Type
	h.Kind = ParseSecurityKind(aux.Type)

	// First present (non-null) key wins; 0 is used as-is, not skipped.
	switch {
	case aux.RawQuantity != nil:
		h.Quantity = *aux.RawQuantity
	case aux.Quantity != nil:
		h.Quantity = *aux.Quantity
	case aux.Amount != nil:
		h.Quantity = *aux.Amount
	}

	if aux.Price != nil {
		h.Price = *aux.Price
		h.HasPrice = true
	}
	if aux.MarketValue != nil {
		h.MarketValue = *aux.MarketValue
		h.HasMarketValue = true
	}

	h.Provider = aux.Provider
	h.Fallback = aux.Fallback
	return nil
}

// opaqueID renders a backend-assigned id, which has been served both as
// a JSON string and as a number, into its textual form.
func opaqueID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// Account is one portfolio account as served by the backend. Holdings
// arrive under either the "positions" or the "holdings" key, in
// display order (not guaranteed sorted).
type Account struct {
	Holdings []Holding

	// PortfolioValue is the backend-precomputed total. When present it
	// is authoritative for the headline total; the locally computed sum
	// is a fallback only.
	PortfolioValue *float64

	Currency string // ISO 4217, defaults to RUB
}

func (a *Account) UnmarshalJSON(data []byte) error {
	var aux struct {
		Positions      []Holding `json:"positions"`
		Holdings       []Holding `json:"holdings"`
		PortfolioValue *float64  `json:"portfolio_value"`
		Currency       string    `json:"currency"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	a.Holdings = aux.Positions
	if a.Holdings == nil {
		a.Holdings = aux.Holdings
	}
	a.PortfolioValue = aux.PortfolioValue
	a.Currency = aux.Currency
	if a.Currency == "" {
		a.Currency = DefaultCurrency
	}
	return nil
}

// Portfolio is the response of the portfolio endpoint.
type Portfolio struct {
	Accounts []Account `json:"accounts"`
}

// Account returns the displayed account (the first one), or nil when
// the backend returned none. A nil account is the "portfolio not found"
// state and must not be confused with an account whose holdings are
// empty.
func (p *Portfolio) Account() *Account {
	if p == nil || len(p.Accounts) == 0 {
		return nil
	}
	return &p.Accounts[0]
}
