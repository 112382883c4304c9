// ABOUTME: HTTP client built on go-retryablehttp with bounded retries and timeout support
// ABOUTME: Used for outbound calls to the AIGC hint service

package retryable

import (
	"context"
	"io"
	"net/http"
	"time"

	"cultural-search-api/core/interfaces"
	"github.com/hashicorp/go-retryablehttp"
)

const userAgent = "CulturalSearchAPI/1.0"

// Options configures the client
type Options struct {
	// Timeout bounds each attempt
	Timeout time.Duration

	// Retries is the number of extra attempts after a failure; 0 disables retrying
	Retries int

	// RetryWaitMin and RetryWaitMax bound the backoff between attempts
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client implements the HTTPClient interface using go-retryablehttp
type Client struct {
	client *retryablehttp.Client
}

// NewClient creates a new HTTP client. Retries are capped by the request
// context as well as by Options.Retries.
func NewClient(opts Options) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = max(opts.Retries, 0)
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 400 * time.Millisecond
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	rc.HTTPClient.Timeout = opts.Timeout
	rc.Logger = nil
	// hand the last response back instead of a "giving up" error so callers
	// can inspect the status code
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{client: rc}
}

// Get performs an HTTP GET request
func (c *Client) Get(ctx context.Context, url string) (interfaces.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return c.do(req)
}

// Post performs an HTTP POST request with a JSON body
func (c *Client) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *Client) do(req *retryablehttp.Request) (interfaces.Response, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}
