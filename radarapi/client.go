// Package radarapi provides the client for the Radar portfolio backend.
//
// Every call carries the user's normalized phone identifier, the
// backend's sole account lookup key, as a query parameter and a
// header. The client performs no retries and keeps no state: after a
// mutation the caller refetches the whole portfolio.
package radarapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/radarfin/radar"
)

const (
	// DefaultBaseURL matches the same-origin deployment of the web build.
	DefaultBaseURL = "http://localhost:8080"

	// PhoneHeader carries the credential alongside the query parameter.
	PhoneHeader = "X-Radar-Phone"
)

// ErrUserNotFound reports that the phone identifier maps to no
// registered account. Callers distinguish it from generic failures to
// show the dedicated login message.
var ErrUserNotFound = errors.New("user not found")

// Client talks to the Radar backend on behalf of one account.
type Client struct {
	baseURL    string
	phone      string // normalized, +7XXXXXXXXXX
	httpClient *http.Client
	refClient  *http.Client // daily-cached, reference lookups only
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL overrides the backend base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the HTTP timeout. The default is the transport's
// default behavior: no timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = timeout }
}

// NewClient creates a client for the account identified by phone. The
// phone may be in any common user-typed form; it is normalized once
// here and used verbatim on every call.
func NewClient(phone string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		phone:      radar.NormalizePhone(phone),
		httpClient: new(http.Client),
	}
	for _, opt := range opts {
		opt(c)
	}
	// reference lookups (security details) tolerate a day of staleness
	c.refClient = newDailyCachingClient(c.httpClient)
	return c
}

// Phone returns the normalized identifier the client authenticates as.
func (c *Client) Phone() string { return c.phone }

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("radar API error: %s (status %d, endpoint %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Portfolio fetches the whole portfolio. A 404 means the phone maps to
// no account and is reported as ErrUserNotFound; that state is distinct
// from an account with an empty holdings list.
func (c *Client) Portfolio(ctx context.Context) (*radar.Portfolio, error) {
	var pf radar.Portfolio
	err := c.do(ctx, c.httpClient, http.MethodGet, "/api/portfolio", nil, nil, &pf)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, radar.MaskPhone(c.phone))
	}
	if err != nil {
		return nil, err
	}
	return &pf, nil
}

// AddPosition creates a position and returns the created holding.
func (c *Client) AddPosition(ctx context.Context, p radar.NewPosition) (*radar.Holding, error) {
	var h radar.Holding
	if err := c.do(ctx, c.httpClient, http.MethodPost, "/api/portfolio/position", nil, p, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdatePosition applies a partial update to the position with the
// given id and returns the updated holding.
func (c *Client) UpdatePosition(ctx context.Context, id string, patch radar.PositionPatch) (*radar.Holding, error) {
	if id == "" {
		return nil, errors.New("position id is required")
	}
	var h radar.Holding
	path := "/api/portfolio/position/" + url.PathEscape(id)
	if err := c.do(ctx, c.httpClient, http.MethodPatch, path, nil, patch, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// DeletePosition removes the position with the given id. The backend
// answers 204 with an empty body; any 2xx is a success.
func (c *Client) DeletePosition(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("position id is required")
	}
	path := "/api/portfolio/position/" + url.PathEscape(id)
	return c.do(ctx, c.httpClient, http.MethodDelete, path, nil, nil, nil)
}

// Search queries the reference database for securities matching the
// free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]radar.SecurityCandidate, error) {
	var envelope struct {
		Results []radar.SecurityCandidate `json:"results"`
	}
	q := url.Values{"query": {query}}
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/api/portfolio/search", q, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// SecurityDetails fetches the reference card for one ISIN. When the
// typed price block is absent, the raw provider payload embedded in the
// response is mined for a last price (see lastPriceFromRaw) and the
// result is flagged as fallback data.
func (c *Client) SecurityDetails(ctx context.Context, isin string) (*radar.SecurityDetails, error) {
	if isin == "" {
		return nil, errors.New("isin is required")
	}
	path := "/api/portfolio/security/" + url.PathEscape(isin) + "/details"

	body, err := c.raw(ctx, c.refClient, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var details radar.SecurityDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("cannot decode security details for %s: %w", isin, err)
	}
	if details.ISIN == "" {
		details.ISIN = isin
	}

	if details.Price == nil {
		if last, cur, err := lastPriceFromRaw(body); err == nil {
			details.Price = &radar.PriceInfo{Last: last, Currency: cur}
			details.Fallback = true
		}
	}
	return &details, nil
}

// Calendar fetches the payment events of one month.
func (c *Client) Calendar(ctx context.Context, month time.Month, year int) ([]radar.CalendarEvent, error) {
	q := url.Values{
		"month": {strconv.Itoa(int(month))},
		"year":  {strconv.Itoa(year)},
	}
	return c.calendar(ctx, q)
}

// CalendarPeriod fetches payment events for a backend-defined period
// token (the period= form of the endpoint).
func (c *Client) CalendarPeriod(ctx context.Context, period string) ([]radar.CalendarEvent, error) {
	return c.calendar(ctx, url.Values{"period": {period}})
}

func (c *Client) calendar(ctx context.Context, q url.Values) ([]radar.CalendarEvent, error) {
	var envelope struct {
		Events []radar.CalendarEvent `json:"events"`
	}
	if err := c.do(ctx, c.httpClient, http.MethodGet, "/api/portfolio/calendar", q, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Events, nil
}

// do performs one request and decodes the JSON answer into out. A nil
// out discards the body (the DELETE case).
func (c *Client) do(ctx context.Context, hc *http.Client, method, path string, query url.Values, body, out any) error {
	data, err := c.raw(ctx, hc, method, path, query, body)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("cannot decode %s %s answer: %w", method, path, err)
	}
	return nil
}

// raw performs one request and returns the response body. The phone
// credential travels both as the phone query parameter and as the
// PhoneHeader; the DELETE endpoint takes it from the header only.
func (c *Client) raw(ctx context.Context, hc *http.Client, method, path string, query url.Values, body any) ([]byte, error) {
	if query == nil {
		query = url.Values{}
	}
	if method != http.MethodDelete {
		query.Set("phone", c.phone)
	}

	addr := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		addr += "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("cannot encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, addr, reader)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(PhoneHeader, c.phone)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: cannot read answer: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := string(bytes.TrimSpace(data))
		if msg == "" {
			msg = resp.Status
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg, Endpoint: path}
	}
	return data, nil
}
