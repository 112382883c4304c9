// ABOUTME: Health check handler
// ABOUTME: Reports liveness and whether the fulltext index is usable

package handlers

import (
	"context"
	"net/http"

	"cultural-search-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// FulltextChecker reports whether the fulltext index exists
type FulltextChecker interface {
	FulltextAvailable(ctx context.Context) bool
}

// HealthHandler serves the health endpoint
type HealthHandler struct {
	checker FulltextChecker
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker FulltextChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "health",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health handles GET /health. A missing fulltext index only degrades ranking
// precision, so the service still reports ok.
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	fulltext := false
	if h.checker != nil {
		fulltext = h.checker.FulltextAvailable(ctx)
	}
	return &HealthOutput{
		Body: responses.HealthResponse{
			Status:   "ok",
			Fulltext: fulltext,
		},
	}, nil
}
