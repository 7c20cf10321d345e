package radarapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestSecurityDetailsDailyCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, `{"isin": "RU000A0ZZ001", "price": {"last": "100", "currency": "RUB"}}`)
	}))
	defer srv.Close()

	c := NewClient("89151731545", WithBaseURL(srv.URL))
	for i := 0; i < 3; i++ {
		d, err := c.SecurityDetails(context.Background(), "RU000A0ZZ001")
		if err != nil {
			t.Fatal(err)
		}
		if d.Price == nil || d.Price.Last.String() != "100" {
			t.Fatalf("call %d: Price = %+v", i, d.Price)
		}
	}
	if got := hits.Load(); got != 1 {
		t.Errorf("backend hit %d times, want 1", got)
	}
}

func TestCacheSkipsErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "temporary", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"isin": "RU000A0ZZ002"}`)
	}))
	defer srv.Close()

	c := NewClient("89151731545", WithBaseURL(srv.URL))

	if _, err := c.SecurityDetails(context.Background(), "RU000A0ZZ002"); err == nil {
		t.Fatal("expected the first call to fail")
	}
	// the failure is not cached, the second call reaches the backend
	if _, err := c.SecurityDetails(context.Background(), "RU000A0ZZ002"); err != nil {
		t.Fatal(err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("backend hit %d times, want 2", got)
	}
}
