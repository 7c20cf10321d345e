package radarapi

import "testing"

func TestLastPriceFromRaw(t *testing.T) {
	raw := []byte(`{
		"isin": "RU000A10ATB6",
		"trading": {
			"board": "TQCB",
			"source": {"marketdata": {"last": 1012.4, "currency": "RUB"}}
		}
	}`)
	last, cur, err := lastPriceFromRaw(raw)
	if err != nil {
		t.Fatal(err)
	}
	if last.String() != "1012.4" {
		t.Errorf("last = %v", last)
	}
	if cur != "RUB" {
		t.Errorf("currency = %q", cur)
	}
}

func TestLastPriceFromRawMissingCurrency(t *testing.T) {
	raw := []byte(`{"trading": {"source": {"marketdata": {"last": 99.9}}}}`)
	last, cur, err := lastPriceFromRaw(raw)
	if err != nil {
		t.Fatal(err)
	}
	if last.String() != "99.9" || cur != "" {
		t.Errorf("last = %v, currency = %q", last, cur)
	}
}

func TestLastPriceFromRawMissingPath(t *testing.T) {
	if _, _, err := lastPriceFromRaw([]byte(`{"isin": "x"}`)); err == nil {
		t.Error("expected an error when the path is absent")
	}
}

func TestLastPriceFromRawNotANumber(t *testing.T) {
	raw := []byte(`{"trading": {"source": {"marketdata": {"last": "oops"}}}}`)
	if _, _, err := lastPriceFromRaw(raw); err == nil {
		t.Error("expected an error for a non-numeric price")
	}
}
