// ABOUTME: Data source over the generic cultural_resources table
// ABOUTME: Substring match on title and content with a flat relevance score

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"cultural-search-api/core/domain"
)

const (
	resourceRelevance  = 0.8
	resourceTypeWeight = 0.6
	resourceTag        = "资源"
	defaultImage       = "/default.jpg"
)

// ResourceSource searches uploaded cultural resources
type ResourceSource struct {
	db    *DB
	limit int
}

// NewResourceSource creates a source returning at most limit rows per query
func NewResourceSource(db *DB, limit int) *ResourceSource {
	if limit <= 0 {
		limit = 100
	}
	return &ResourceSource{db: db, limit: limit}
}

// Name identifies the source
func (s *ResourceSource) Name() string {
	return resourcesTable
}

// Search ignores fulltext; resources are never indexed
func (s *ResourceSource) Search(ctx context.Context, query string, fulltext bool) ([]domain.SearchCandidate, error) {
	const q = `SELECT id, title, COALESCE(content_feature_data, ''), COALESCE(source_from, ''), COALESCE(source_url, '')
		FROM cultural_resources
		WHERE title LIKE :partial ESCAPE '\' OR content_feature_data LIKE :partial ESCAPE '\'
		ORDER BY id
		LIMIT :limit`

	rows, err := s.db.db.QueryContext(ctx, q,
		sql.Named("partial", likePattern(query)),
		sql.Named("limit", s.limit),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", resourcesTable, err)
	}
	defer rows.Close()

	var out []domain.SearchCandidate
	for rows.Next() {
		var (
			id                 int64
			title, content     string
			sourceFrom, rawURL string
		)
		if err := rows.Scan(&id, &title, &content, &sourceFrom, &rawURL); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", resourcesTable, err)
		}

		c := domain.NewSearchCandidate(id, title, content, resourceRelevance, resourceTypeWeight)
		c.ImageURL = defaultImage
		c.Source = sourceFrom
		c.SourceURL = sourceURL(rawURL)
		c.Tags = []string{resourceTag}
		c.Origin = resourcesTable
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", resourcesTable, err)
	}
	return out, nil
}
