package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	logs []LogEntry
}

type LogEntry struct {
	Level   string
	Message string
	Fields  map[string]interface{}
}

func (m *MockLogger) Debug(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "DEBUG", Message: msg, Fields: fields})
}

func (m *MockLogger) Info(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "INFO", Message: msg, Fields: fields})
}

func (m *MockLogger) Warn(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "WARN", Message: msg, Fields: fields})
}

func (m *MockLogger) Error(msg string, fields map[string]interface{}) {
	m.logs = append(m.logs, LogEntry{Level: "ERROR", Message: msg, Fields: fields})
}

func serveLogged(logger *MockLogger, req *http.Request, h http.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	RequestLoggingMiddleware(logger)(h).ServeHTTP(rec, req)
	return rec
}

func TestRequestLoggingMiddleware_LogsRequestMethodAndPath(t *testing.T) {
	logger := &MockLogger{}
	req := httptest.NewRequest("GET", "/api/search?q=x", nil)

	serveLogged(logger, req, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	require.Len(t, logger.logs, 2)

	startLog := logger.logs[0]
	assert.Equal(t, "DEBUG", startLog.Level)
	assert.Equal(t, "Request started", startLog.Message)
	assert.Equal(t, "GET", startLog.Fields["method"])
	assert.Equal(t, "/api/search", startLog.Fields["path"])
	assert.Equal(t, "q=x", startLog.Fields["query"])

	completeLog := logger.logs[1]
	assert.Equal(t, "INFO", completeLog.Level)
	assert.Equal(t, "Request completed", completeLog.Message)
	assert.Equal(t, http.StatusOK, completeLog.Fields["status"])
}

func TestRequestLoggingMiddleware_LogsResponseStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		responseStatus int
		expectedLevel  string
	}{
		{"200 OK", http.StatusOK, "INFO"},
		{"400 Bad Request", http.StatusBadRequest, "INFO"},
		{"500 Internal Server Error", http.StatusInternalServerError, "ERROR"},
		{"503 Service Unavailable", http.StatusServiceUnavailable, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}

			serveLogged(logger, httptest.NewRequest("GET", "/test", nil), func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.responseStatus)
			})

			require.Len(t, logger.logs, 2)
			assert.Equal(t, tt.expectedLevel, logger.logs[1].Level)
			assert.Equal(t, tt.responseStatus, logger.logs[1].Fields["status"])
		})
	}
}

func TestRequestLoggingMiddleware_LogsRequestDuration(t *testing.T) {
	logger := &MockLogger{}

	serveLogged(logger, httptest.NewRequest("GET", "/test", nil), func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	durationMs := logger.logs[1].Fields["duration_ms"].(int64)
	assert.GreaterOrEqual(t, durationMs, int64(50))
}

func TestRequestLoggingMiddleware_IncludesRequestID(t *testing.T) {
	logger := &MockLogger{}
	var fromContext string

	rec := serveLogged(logger, httptest.NewRequest("GET", "/test", nil), func(w http.ResponseWriter, r *http.Request) {
		fromContext = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	requestID := logger.logs[0].Fields["request_id"].(string)
	assert.Len(t, requestID, 36)
	assert.Equal(t, requestID, logger.logs[1].Fields["request_id"])
	assert.Equal(t, requestID, fromContext)
	assert.Equal(t, requestID, rec.Header().Get(RequestIDHeader))
}

func TestRequestLoggingMiddleware_ReusesIncomingRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reused   bool
	}{
		{"valid uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true},
		{"not a uuid", "req-123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &MockLogger{}
			req := httptest.NewRequest("GET", "/test", nil)
			req.Header.Set(RequestIDHeader, tt.incoming)

			rec := serveLogged(logger, req, func(w http.ResponseWriter, r *http.Request) {})

			got := rec.Header().Get(RequestIDHeader)
			assert.Equal(t, tt.reused, got == tt.incoming)
			assert.Len(t, got, 36)
		})
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)

	assert.Empty(t, RequestIDFromContext(req.Context()))
}

func TestResponseWriter_CapturesStatusCode(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.WriteHeader(http.StatusCreated)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
	assert.True(t, rw.written)

	// Subsequent calls should not change status
	rw.WriteHeader(http.StatusBadRequest)
	assert.Equal(t, http.StatusCreated, rw.statusCode)
}

func TestResponseWriter_DefaultsTo200(t *testing.T) {
	rw := &responseWriter{
		ResponseWriter: httptest.NewRecorder(),
		statusCode:     http.StatusOK,
	}

	rw.Write([]byte("test"))
	assert.Equal(t, http.StatusOK, rw.statusCode)
	assert.True(t, rw.written)
}
