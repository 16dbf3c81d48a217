// Package exchangerate implements the RateFetcher port against the
// exchangerate.host live endpoint.
package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/core/domain"
	portsrepo "github.com/harutok/warikan/internal/core/ports/repositories"
)

// DefaultAPIURL is the production base URL of the rate source.
const DefaultAPIURL = "https://api.exchangerate.host"

// SourceCurrency is the base currency all live quotes are anchored to.
const SourceCurrency = "USD"

// Ensure Client implements the RateFetcher port.
var _ portsrepo.RateFetcher = (*Client)(nil)

// Client wraps the exchangerate.host REST API.
type Client struct {
	url       string
	accessKey string
	client    http.Client
}

// NewClient constructs a Client. apiURL falls back to DefaultAPIURL when
// empty; timeout bounds the whole fetch including body read.
func NewClient(apiURL, accessKey string, timeout time.Duration) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		url:       apiURL,
		accessKey: accessKey,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// FetchRates loads the current USD-anchored quotes. The returned table has
// BaseCurrency, Rates and FetchedAt populated; the caller stamps ValidUntil.
func (c *Client) FetchRates(ctx context.Context) (*domain.RateTable, error) {
	type response struct {
		Success   bool                       `json:"success"`
		Source    string                     `json:"source"`
		Quotes    map[string]decimal.Decimal `json:"quotes"`
		Timestamp int64                      `json:"timestamp"`
		Error     struct {
			Code int    `json:"code"`
			Info string `json:"info"`
		} `json:"error"`
	}

	endpoint := fmt.Sprintf("%s/live?access_key=%s&source=%s",
		c.url, url.QueryEscape(c.accessKey), SourceCurrency)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate source returned status %d", httpResponse.StatusCode)
	}

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var resp response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if !resp.Success {
		return nil, fmt.Errorf("rate source reported failure: %s", resp.Error.Info)
	}
	if len(resp.Quotes) == 0 {
		return nil, fmt.Errorf("rate source returned no quotes")
	}

	source := resp.Source
	if source == "" {
		source = SourceCurrency
	}

	return &domain.RateTable{
		BaseCurrency: source,
		Rates:        resp.Quotes,
		FetchedAt:    time.Unix(resp.Timestamp, 0),
	}, nil
}
