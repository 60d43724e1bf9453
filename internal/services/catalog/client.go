// Package catalog provides the HTTP client for the remote recipe catalog.
// Fetching a page is best-effort: any transport or decode failure aborts the
// calling phase, and retries are left to the operator.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"mealplan/internal/recipe"
	"mealplan/internal/services"
)

// DefaultBaseURL is the production recipe catalog endpoint.
const DefaultBaseURL = "https://tasty.p.rapidapi.com"

const userAgent = "mealplan http client"

// Client fetches paginated recipe records from the catalog.
type Client struct {
	client *resty.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.client.SetTimeout(timeout)
		}
	}
}

// New creates a catalog client. The API key authenticates every request; the
// base URL defaults to the production catalog when empty.
func New(apiKey, baseURL string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "api key required", nil)
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", fmt.Sprintf("invalid base url %q", baseURL), err)
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("X-RAPIDAPI-KEY", apiKey).
		SetHeader("X-RAPIDAPI-HOST", parsed.Host).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "*/*")

	client := &Client{client: rc}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// List fetches one page of recipe records starting at offset.
func (c *Client) List(ctx context.Context, offset, size int64) ([]recipe.Recipe, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("from", strconv.FormatInt(offset, 10)).
		SetQueryParam("size", strconv.FormatInt(size, 10)).
		Get("/recipes/list")
	if err != nil {
		return nil, services.Wrap(services.ErrTransport, "catalog", "fetch recipes", err)
	}
	if resp.IsError() {
		return nil, services.Wrap(services.ErrTransport, "catalog",
			fmt.Sprintf("recipes list returned %d", resp.StatusCode()), nil)
	}

	var list recipe.List
	if err := json.Unmarshal(resp.Body(), &list); err != nil {
		return nil, services.Wrap(services.ErrDecode, "catalog", "decode recipes list", err)
	}
	return list.Results, nil
}

// IsRetryable reports whether the error came from transport rather than a
// malformed payload. The workflow does not retry either way; callers use this
// only for messaging.
func IsRetryable(err error) bool {
	return errors.Is(err, services.ErrTransport)
}
