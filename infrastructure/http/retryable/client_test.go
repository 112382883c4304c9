package retryable

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get_Success(t *testing.T) {
	var userAgentSeen string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		userAgentSeen = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 5 * time.Second})
	resp, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	defer resp.Body().Close()

	body, err := io.ReadAll(resp.Body())
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, `{"ok":true}`, string(body))
	assert.Equal(t, "application/json", resp.Header("content-type"))
	assert.Equal(t, userAgent, userAgentSeen)
}

func TestClient_NoRetriesByDefault(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 5 * time.Second})
	resp, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	resp.Body().Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(Options{
		Timeout:      5 * time.Second,
		Retries:      2,
		RetryWaitMin: time.Millisecond,
		RetryWaitMax: 5 * time.Millisecond,
	})
	resp, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	resp.Body().Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 5 * time.Second, Retries: 3, RetryWaitMin: time.Millisecond})
	resp, err := client.Get(context.Background(), server.URL)

	require.NoError(t, err)
	resp.Body().Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestClient_ContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 5 * time.Second})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := client.Get(ctx, server.URL)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestClient_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))
	defer server.Close()

	client := NewClient(Options{Timeout: 5 * time.Second})
	resp, err := client.Post(context.Background(), server.URL, strings.NewReader(`{"q":"春节"}`))
	require.NoError(t, err)
	defer resp.Body().Close()

	body, _ := io.ReadAll(resp.Body())
	assert.Equal(t, `{"q":"春节"}`, string(body))
}

func TestClient_InvalidURL(t *testing.T) {
	client := NewClient(Options{})

	_, err := client.Get(context.Background(), "://bad")

	assert.Error(t, err)
}
