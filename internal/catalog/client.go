package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a catalog/auth API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// ClientOption is a functional option for configuring the client.
type ClientOption func(*Client)

// WithToken sets the bearer token sent with every request.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new catalog API client.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Authenticated returns a copy of the client that sends the given bearer
// token with every request.
func (c *Client) Authenticated(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// GetCategories fetches all print categories.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := c.doRequest(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetProductsByCategory fetches the products belonging to a category.
func (c *Client) GetProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	endpoint := fmt.Sprintf("/api/products/category/%s", url.PathEscape(categoryID))
	var products []Product
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product by id. Server data is immutable within
// a session, so repeated loads with the same id return the same product.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	endpoint := fmt.Sprintf("/api/products/%s", url.PathEscape(productID))
	var product Product
	if err := c.doRequest(ctx, http.MethodGet, endpoint, nil, &product); err != nil {
		var apiErr APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, NotFoundError{Resource: "product", ID: productID}
		}
		return nil, err
	}
	return &product, nil
}

// Login authenticates against the auth service. A failed login with a
// well-formed response body surfaces the server's message.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := LoginRequest{Email: email, Password: password}
	var resp LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// doRequest performs an HTTP request against the API and decodes the JSON
// response into result. The body is read in full so an HTML document from an
// interfering proxy can be detected before JSON decoding.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}, result interface{}) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	reqURL := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if isHTMLDocument(respBody) {
		return fmt.Errorf("%w (status %d)", ErrHTMLResponse, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Prefer the server's own message when the body parses.
		var errBody struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &errBody) == nil && errBody.Message != "" {
			return APIError{Status: resp.StatusCode, Message: errBody.Message}
		}
		return APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// isHTMLDocument reports whether the body starts with an HTML document
// marker.
func isHTMLDocument(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "<!doctype") || strings.HasPrefix(lower, "<html")
}
