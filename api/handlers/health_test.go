package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"cultural-search-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	tests := []struct {
		name    string
		checker FulltextChecker
		want    bool
	}{
		{"fulltext available", mockChecker{available: true}, true},
		{"fulltext missing", mockChecker{}, false},
		{"no checker", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, api := humatest.New(t)
			NewHealthHandler(tt.checker).RegisterRoutes(api)

			resp := api.Get("/health")

			require.Equal(t, http.StatusOK, resp.Code)
			var body responses.HealthResponse
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Equal(t, "ok", body.Status)
			assert.Equal(t, tt.want, body.Fulltext)
		})
	}
}
