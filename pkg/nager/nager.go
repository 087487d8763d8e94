// Package nager is a client for the Nager.Date public holiday API
// (https://date.nager.at).
package nager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://date.nager.at/api/v3"
	DefaultTimeout = 10 * time.Second
)

// ErrNoData is returned when the API has no calendar for the request,
// typically an unsupported country code.
var ErrNoData = errors.New("nager: no data found")

// StatusError is returned for any other non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nager: %s returned status %d", e.URL, e.StatusCode)
}

// Holiday is one public holiday as served by the API.
type Holiday struct {
	Date        string   `json:"date"`
	LocalName   string   `json:"localName"`
	Name        string   `json:"name"`
	CountryCode string   `json:"countryCode"`
	Global      bool     `json:"global"`
	Counties    []string `json:"counties"`
	Types       []string `json:"types"`
}

// Time parses Date as a calendar day at midnight UTC.
func (h Holiday) Time() (time.Time, error) {
	t, err := time.Parse("2006-01-02", h.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("nager: invalid holiday date %q: %w", h.Date, err)
	}
	return t, nil
}

// Country is an entry of the AvailableCountries endpoint.
type Country struct {
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PublicHolidays returns the holidays of one country and year.
func (c *Client) PublicHolidays(ctx context.Context, year int, countryCode string) ([]Holiday, error) {
	var out []Holiday
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, strings.ToUpper(countryCode))
	if err := c.get(ctx, url, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AvailableCountries returns every country the API has calendars for.
func (c *Client) AvailableCountries(ctx context.Context) ([]Country, error) {
	var out []Country
	if err := c.get(ctx, c.baseURL+"/AvailableCountries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, url string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("nager: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("nager: request %s: %w", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w at %s", ErrNoData, url)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	// The API answers 204 with an empty body for valid countries without data.
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("nager: decode %s: %w", url, err)
	}
	return nil
}
