package fakestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	pkgerrors "github.com/angelmondragon/shopcart-backend/pkg/errors"
	"github.com/angelmondragon/shopcart-backend/pkg/types"
)

const (
	DefaultBaseURL           = "https://fakestoreapi.com"
	productsPath             = "products"
	defaultTimeout           = 10 * time.Second
	errorBodyReadLimit int64 = 1024
)

// Client wraps the Fake Store API endpoints used by the catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the upstream base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithTimeout sets the timeout on the client's default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 && c.httpClient != nil {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client
}

// ListProducts fetches the full product list. Network failures, non-2xx
// responses and undecodable bodies all surface as CodeUpstreamUnavailable.
func (c *Client) ListProducts(ctx context.Context) ([]types.Product, error) {
	if c == nil || c.httpClient == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUpstreamUnavailable, "catalog client not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(productsPath), nil)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstreamUnavailable, err, "failed to fetch products")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstreamUnavailable, err, "failed to fetch products")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstreamUnavailable, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "failed to fetch products")
	}

	var products []types.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstreamUnavailable, err, "failed to parse products")
	}
	if products == nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeUpstreamUnavailable, errors.New("body is not a product array"), "failed to parse products")
	}
	return products, nil
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}
