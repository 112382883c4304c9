// ABOUTME: Request logging middleware for API endpoints
// ABOUTME: Tags each request with a UUID request ID and logs status and timing

package middleware

import (
	"context"
	"net/http"
	"time"

	"cultural-search-api/core/interfaces"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

// SlowRequestThreshold is the duration above which a request is logged as slow
const SlowRequestThreshold = 5 * time.Second

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored by the logging middleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestID reuses a well-formed incoming ID so traces can span the front end
func requestID(r *http.Request) string {
	if incoming := r.Header.Get(RequestIDHeader); incoming != "" {
		if id, err := uuid.Parse(incoming); err == nil {
			return id.String()
		}
	}
	return uuid.New().String()
}

// RequestLoggingMiddleware creates a middleware that logs all requests
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := requestID(r)
			w.Header().Set(RequestIDHeader, id)
			r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			logger.Debug("Request started", map[string]interface{}{
				"request_id": id,
				"method":     r.Method,
				"path":       r.URL.Path,
				"query":      r.URL.RawQuery,
				"remote_ip":  r.RemoteAddr,
				"forwarded":  r.Header.Get("X-Forwarded-For"),
				"user_agent": r.UserAgent(),
			})

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)
			fields := map[string]interface{}{
				"request_id":  id,
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      wrapped.statusCode,
				"duration":    duration.String(),
				"duration_ms": duration.Milliseconds(),
			}

			switch {
			case wrapped.statusCode >= 500:
				logger.Error("Request failed with server error", fields)
			case duration > SlowRequestThreshold:
				logger.Warn("Slow request detected", fields)
			default:
				logger.Info("Request completed", fields)
			}
		})
	}
}
