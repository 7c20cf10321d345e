package radarapi

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	When the reference backend has no authoritative price for an ISIN it
	degrades to a less authoritative provider and embeds that provider's
	payload verbatim under the trading block, e.g.:

	{
	    "isin": "RU000A10ATB6",
	    "trading": {
	        "board": "TQCB",
	        "source": {
	            "marketdata": {
	                "last": 1012.4,
	                "currency": "RUB"
	            }
	        }
	    }
	}
*/

const (
	lastPricePath     = "$.trading.source.marketdata.last"
	priceCurrencyPath = "$.trading.source.marketdata.currency"
)

// lastPriceFromRaw digs the last traded price out of the raw details
// payload. Used only when the typed price block is absent; a missing
// path is an error for the caller to swallow, never a zero price.
func lastPriceFromRaw(raw []byte) (last decimal.Decimal, currency string, err error) {
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return decimal.Zero, "", fmt.Errorf("error parsing details payload: %w", err)
	}

	jval, err := jsonpath.Get(lastPricePath, jobj)
	if err != nil {
		return decimal.Zero, "", fmt.Errorf("error extracting %q: %w", lastPricePath, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, "", fmt.Errorf("error extracting %q: not a number: %v", lastPricePath, jval)
	}

	// currency is optional in the provider payload
	if jcur, err := jsonpath.Get(priceCurrencyPath, jobj); err == nil {
		if s, ok := jcur.(string); ok {
			currency = s
		}
	}

	return decimal.NewFromFloat(val), currency, nil
}
