package radar

// This file derives display totals from an account's holdings. The
// arithmetic is plain float64 on purpose: backend-supplied values
// (portfolio_value, market_value) must pass through to the display
// verbatim, and malformed inputs degrade to the placeholder at
// formatting time rather than to an error here.

// Valuation is the derived worth of one account.
type Valuation struct {
	// TotalValue is the locally computed sum of line values. It is
	// informational when the backend supplied an authoritative total.
	TotalValue float64

	// TotalQuantity sums the holding quantities ("papers" count).
	TotalQuantity float64

	// Positions is the number of holdings.
	Positions int

	// Authoritative is the backend-precomputed portfolio_value, nil
	// when the backend did not supply one.
	Authoritative *float64

	Currency string
}

// LineValue is the monetary value of a single holding: the backend's
// precomputed market_value when present, quantity times unit price
// otherwise. An absent price counts as zero.
func (h Holding) LineValue() float64 {
	if h.HasMarketValue {
		return h.MarketValue
	}
	return h.Quantity * h.Price
}

// Valuate reduces an account's holdings into display totals. An empty
// holdings collection yields zero totals; that is a normal state, not
// an error. A nil account panics: "portfolio not found" must be
// handled before valuation (see Portfolio.Account).
func Valuate(a *Account) Valuation {
	v := Valuation{
		Positions:     len(a.Holdings),
		Authoritative: a.PortfolioValue,
		Currency:      a.Currency,
	}
	for _, h := range a.Holdings {
		v.TotalValue += h.LineValue()
		v.TotalQuantity += h.Quantity
	}
	return v
}

// DisplayValue is the headline total: the backend's authoritative
// portfolio_value verbatim when present, the local sum otherwise.
func (v Valuation) DisplayValue() float64 {
	if v.Authoritative != nil {
		return *v.Authoritative
	}
	return v.TotalValue
}

// DisplayMoney wraps DisplayValue for formatting.
func (v Valuation) DisplayMoney() Money { return M(v.DisplayValue(), v.Currency) }

// BreakdownItem is the share of one security kind in the account.
type BreakdownItem struct {
	Kind  SecurityKind
	Value float64
	Share float64 // fraction of the locally computed total, 0 when the total is 0
}

// breakdownOrder fixes the display order of the kinds.
var breakdownOrder = []SecurityKind{Bond, Share, ETF, Generic}

// Breakdown splits the locally computed total by security kind,
// skipping kinds with no holdings. Shares are computed against the
// local sum, not the authoritative total, so they always add up.
func Breakdown(a *Account) []BreakdownItem {
	values := make(map[SecurityKind]float64)
	counts := make(map[SecurityKind]int)
	var total float64
	for _, h := range a.Holdings {
		lv := h.LineValue()
		values[h.Kind] += lv
		counts[h.Kind]++
		total += lv
	}

	var items []BreakdownItem
	for _, kind := range breakdownOrder {
		if counts[kind] == 0 {
			continue
		}
		item := BreakdownItem{Kind: kind, Value: values[kind]}
		if total != 0 {
			item.Share = values[kind] / total
		}
		items = append(items, item)
	}
	return items
}
