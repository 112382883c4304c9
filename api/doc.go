// Package api provides the HTTP API layer for the cultural search service.
// It uses the Huma framework on a chi router for OpenAPI documentation,
// request binding and a clean handler interface.
//
// # Architecture
//
// - server.go: Huma API configuration, CORS and middleware chain
// - handlers/: HTTP request handlers
// - dto/: response envelopes and domain-to-DTO mappers
// - middleware/: request logging and per-IP rate limiting
//
// # Endpoints
//
//	GET /api/search?q=&keyword=&page=&page_size=      full-text search
//	GET /api/ai_search?q=&keyword=&page=&page_size=   AI-assisted search
//	GET /api/search/preprocess?q=                     query preprocessing
//	GET /api/search/statistics                        search history statistics
//	GET /health                                       liveness
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Response Envelope
//
// Search endpoints keep the envelope existing clients consume:
//
//	{
//	    "code": 200,
//	    "msg": "success",
//	    "data": [...],
//	    "total": 42,
//	    "page": 1,
//	    "page_size": 8,
//	    "total_pages": 6,
//	    "ai_analysis": {"keywords": ["春节"], "search_query": "春节"}
//	}
//
// An empty query yields HTTP 400 with code 400 in the same envelope. Other
// failures use the RFC 7807 problem format produced by Huma.
package api
