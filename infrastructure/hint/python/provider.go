// ABOUTME: Keyword hint provider backed by the Python AIGC service
// ABOUTME: Calls GET /api/ai_search and reads the ai_analysis block of the reply

package python

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"cultural-search-api/core/domain"
	coreerrors "cultural-search-api/core/errors"
	"cultural-search-api/core/interfaces"
)

// maxResponseBytes caps how much of the reply is read
const maxResponseBytes = 1 << 20

// Provider asks the AIGC service for search keywords
type Provider struct {
	client  interfaces.HTTPClient
	baseURL string
}

// NewProvider creates a provider calling the service at baseURL
func NewProvider(client interfaces.HTTPClient, baseURL string) *Provider {
	return &Provider{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type aiSearchResponse struct {
	AIAnalysis *domain.Hint `json:"ai_analysis"`
}

// Hint returns the service's ai_analysis for query, or nil when the reply
// has none
func (p *Provider) Hint(ctx context.Context, query string) (*domain.Hint, error) {
	endpoint := p.baseURL + "/api/ai_search?q=" + url.QueryEscape(query)

	resp, err := p.client.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to call AIGC service: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body(), 512))
		return nil, &coreerrors.ExternalAPIError{
			API:        "aigc",
			StatusCode: resp.StatusCode(),
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var parsed aiSearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body(), maxResponseBytes)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse AIGC response: %w", err)
	}
	return parsed.AIAnalysis, nil
}
