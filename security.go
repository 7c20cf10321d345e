package radar

import "github.com/shopspring/decimal"

// SecurityCandidate is one result of the reference search endpoint,
// carrying just enough to pre-fill an add-position form.
type SecurityCandidate struct {
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
	ISIN   string `json:"isin"`
	Type   string `json:"security_type"`
	Source string `json:"source"` // e.g. MOEX, BondReference
}

// Kind classifies the candidate the same way holdings are classified.
func (c SecurityCandidate) Kind() SecurityKind { return ParseSecurityKind(c.Type) }

// SecurityDetails describes one security as served by the reference
// endpoint. Every sub-object is optional: the backend includes only
// what its providers covered for the given ISIN.
type SecurityDetails struct {
	ISIN   string `json:"isin"`
	Name   string `json:"name"`
	Ticker string `json:"ticker"`
	Type   string `json:"security_type"`

	Price   *PriceInfo   `json:"price"`
	Bond    *BondInfo    `json:"bond_info"`
	Share   *ShareInfo   `json:"share_info"`
	Rating  *RatingInfo  `json:"rating"`
	Trading *TradingInfo `json:"trading"`

	// Fallback is set when the price had to be pulled from a less
	// authoritative provider payload.
	Fallback bool `json:"fallback"`
}

// PriceInfo is the last known unit price of the security.
type PriceInfo struct {
	Last     decimal.Decimal `json:"last"`
	Currency string          `json:"currency"`
	AsOf     Date            `json:"as_of"`
}

// Money wraps the last price for formatting.
func (p PriceInfo) Money() Money { return DecimalMoney(p.Last, p.Currency) }

// BondInfo carries the bond attributes shown on the details view.
type BondInfo struct {
	CouponRate  decimal.Decimal `json:"coupon_rate"`  // percent per annum
	CouponValue decimal.Decimal `json:"coupon_value"` // per-bond payment
	Nominal     decimal.Decimal `json:"nominal"`
	Maturity    Date            `json:"maturity_date"`
}

// ShareInfo carries the share attributes shown on the details view.
type ShareInfo struct {
	DividendYield decimal.Decimal `json:"dividend_yield"` // percent
	LotSize       int             `json:"lot_size"`
	Sector        string          `json:"sector"`
}

// RatingInfo is a credit rating attribution.
type RatingInfo struct {
	Agency string `json:"agency"`
	Value  string `json:"value"`
}

// TradingInfo describes where and how actively the security trades.
type TradingInfo struct {
	Board    string          `json:"board"`
	Volume   decimal.Decimal `json:"volume"`
	IsTraded bool            `json:"is_traded"`
}

// NewPosition is the payload for creating a position, mirroring the
// add form of the UI.
type NewPosition struct {
	Name     string  `json:"name"`
	Ticker   string  `json:"ticker,omitempty"`
	Quantity float64 `json:"quantity"`
	Type     string  `json:"security_type"`
	ISIN     string  `json:"isin,omitempty"`
	Provider string  `json:"provider,omitempty"`
}

// PositionPatch is a partial update of a position; nil fields are left
// untouched by the backend.
type PositionPatch struct {
	Name     *string  `json:"name,omitempty"`
	Ticker   *string  `json:"ticker,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Type     *string  `json:"security_type,omitempty"`
	ISIN     *string  `json:"isin,omitempty"`
	Provider *string  `json:"provider,omitempty"`
}

// IsZero reports whether the patch carries no changes.
func (p PositionPatch) IsZero() bool {
	return p.Name == nil && p.Ticker == nil && p.Quantity == nil &&
		p.Type == nil && p.ISIN == nil && p.Provider == nil
}
