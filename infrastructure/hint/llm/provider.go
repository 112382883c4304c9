// ABOUTME: Keyword hint provider that asks an OpenAI-compatible chat model
// ABOUTME: Uses langchaingo in JSON mode and parses keywords and search_query

package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cultural-search-api/core/domain"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

const systemPrompt = `You help people search a catalogue of Chinese cultural heritage resources
(festivals, folk arts, crafts, customs).
Given the user's query, reply with a single JSON object and nothing else:
{"keywords": ["<keyword>", ...], "search_query": "<best query>"}
- keywords: up to 5 short Chinese search terms, most important first
- search_query: one concise query that best expresses the user's intent`

// Options configures the chat model
type Options struct {
	BaseURL string
	Token   string
	Model   string
}

// Provider derives search hints from a chat model
type Provider struct {
	model llms.Model
}

// NewProvider creates a provider for an OpenAI-compatible endpoint.
// An empty token is sent as "none" for local servers without authentication.
func NewProvider(opts Options) (*Provider, error) {
	if opts.Model == "" {
		return nil, errors.New("llm model is required")
	}
	token := opts.Token
	if token == "" {
		token = "none"
	}

	clientOpts := []openai.Option{
		openai.WithToken(token),
		openai.WithModel(opts.Model),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(opts.BaseURL))
	}

	client, err := openai.New(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create llm client: %w", err)
	}
	return NewWithModel(client), nil
}

// NewWithModel wraps an existing model
func NewWithModel(model llms.Model) *Provider {
	return &Provider{model: model}
}

// Hint asks the model for keywords. A reply without choices yields no hint.
func (p *Provider) Hint(ctx context.Context, query string) (*domain.Hint, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(query)},
		},
	}

	response, err := p.model.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		return nil, fmt.Errorf("failed to generate hint: %w", err)
	}
	if len(response.Choices) < 1 {
		return nil, nil
	}

	var hint domain.Hint
	if err := json.Unmarshal([]byte(stripFences(response.Choices[0].Content)), &hint); err != nil {
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}
	if len(hint.Keywords) == 0 && strings.TrimSpace(hint.SearchQuery) == "" {
		return nil, nil
	}
	return &hint, nil
}

// stripFences removes a markdown code fence around the reply
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
