package interfaces

import (
	"context"
	"io"
)

// HTTPClient is the transport used by hint providers that call the AIGC
// service. Implementations own timeouts and retries.
type HTTPClient interface {
	Get(ctx context.Context, url string) (Response, error)

	// Post sends body as application/json
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response is a received HTTP response. Callers close Body.
type Response interface {
	StatusCode() int
	Body() io.ReadCloser

	// Header looks up a header case-insensitively; "" when absent
	Header(key string) string
}
