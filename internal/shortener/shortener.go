package shortener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// DefaultEndpoint is the bit.ly v3 shorten endpoint.
const DefaultEndpoint = "https://api-ssl.bit.ly/v3/shorten"

var (
	ErrMissingCredentials = errors.New("missing shortener credentials")
	ErrUnexpectedStatus   = errors.New("unexpected HTTP status")
)

// Credentials authenticate calls to the shortening service.
type Credentials struct {
	Login  string
	APIKey string
}

// Result is the outcome reported by the shortening service.
type Result struct {
	StatusCode int
	StatusText string
	URL        string
}

// OK reports whether the service returned a usable short URL.
func (r Result) OK() bool {
	return r.StatusCode == http.StatusOK && r.URL != ""
}

// The service sends "data": [] on failure, so data is decoded only on success.
type shortenResponse struct {
	StatusCode int             `json:"status_code"`
	StatusText string          `json:"status_txt"`
	Data       json.RawMessage `json:"data"`
}

type shortenData struct {
	URL     string `json:"url"`
	Hash    string `json:"hash"`
	LongURL string `json:"long_url"`
}

// Client calls the shortening service over HTTP.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a Client. An empty endpoint selects DefaultEndpoint and a nil
// httpClient selects http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Shorten asks the service for a short form of longURL.
//
// A non-success status_code in the body is not an error: it is returned in
// Result and the caller decides how to fall back. Errors are reserved for
// transport failures, non-2xx HTTP responses and undecodable bodies.
func (c *Client) Shorten(ctx context.Context, longURL string, creds Credentials) (Result, error) {
	if creds.Login == "" || creds.APIKey == "" {
		return Result{}, ErrMissingCredentials
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		return Result{}, fmt.Errorf("parse endpoint: %w", err)
	}

	q := u.Query()
	q.Set("longUrl", longURL)
	q.Set("apiKey", creds.APIKey)
	q.Set("login", creds.Login)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("shorten request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}

	result := Result{
		StatusCode: body.StatusCode,
		StatusText: body.StatusText,
	}

	if body.StatusCode == http.StatusOK && len(body.Data) > 0 {
		var data shortenData
		if err := json.Unmarshal(body.Data, &data); err != nil {
			return Result{}, fmt.Errorf("decode response data: %w", err)
		}
		result.URL = data.URL
	}

	return result, nil
}
