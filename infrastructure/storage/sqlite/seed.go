// ABOUTME: Loads cultural records from a JSON document into the search tables
// ABOUTME: Used by the CLI to populate a database for local runs and tests

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
)

// SeedEntity is one curated or AI-generated cultural entity
type SeedEntity struct {
	ID               int64    `json:"id"`
	EntityName       string   `json:"entity_name"`
	EntityType       string   `json:"entity_type,omitempty"`
	Description      string   `json:"description"`
	Source           string   `json:"source,omitempty"`
	RelatedImagesURL string   `json:"related_images_url,omitempty"`
	Images           []string `json:"images,omitempty"`
}

// SeedResource is one uploaded cultural resource
type SeedResource struct {
	ID                 int64  `json:"id"`
	Title              string `json:"title"`
	ResourceType       string `json:"resource_type,omitempty"`
	SourceFrom         string `json:"source_from,omitempty"`
	SourceURL          string `json:"source_url,omitempty"`
	ContentFeatureData string `json:"content_feature_data"`
}

// SeedData is the JSON document accepted by Seed
type SeedData struct {
	Entities     []SeedEntity   `json:"cultural_entities"`
	AIGCEntities []SeedEntity   `json:"aigc_cultural_entities"`
	Resources    []SeedResource `json:"cultural_resources"`
}

// SeedStats counts the rows written by Seed
type SeedStats struct {
	Entities     int
	AIGCEntities int
	Images       int
	Resources    int
}

// Seed decodes a SeedData document from r and upserts every record in one
// transaction. Upserts go through UPDATE so the fulltext triggers see them.
func (d *DB) Seed(ctx context.Context, r io.Reader) (SeedStats, error) {
	var data SeedData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return SeedStats{}, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return d.SeedData(ctx, data)
}

// SeedData upserts data in one transaction
func (d *DB) SeedData(ctx context.Context, data SeedData) (SeedStats, error) {
	var stats SeedStats

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, e := range data.Entities {
		if err := insertEntity(ctx, tx, entitiesTable, e, true); err != nil {
			return stats, err
		}
		stats.Entities++
		// images are replaced wholesale so reseeding stays idempotent
		if _, err := tx.ExecContext(ctx, "DELETE FROM crawled_images WHERE entity_id = ?", e.ID); err != nil {
			return stats, fmt.Errorf("failed to clear images for entity %d: %w", e.ID, err)
		}
		for _, img := range e.Images {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO crawled_images (entity_id, storage_path) VALUES (?, ?)", e.ID, img,
			); err != nil {
				return stats, fmt.Errorf("failed to insert image for entity %d: %w", e.ID, err)
			}
			stats.Images++
		}
	}

	for _, e := range data.AIGCEntities {
		if err := insertEntity(ctx, tx, aigcEntitiesTable, e, false); err != nil {
			return stats, err
		}
		stats.AIGCEntities++
	}

	for _, res := range data.Resources {
		if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO cultural_resources
			(id, title, resource_type, source_from, source_url, content_feature_data)
			VALUES (?, ?, ?, ?, ?, ?)`,
			res.ID, res.Title, nullable(res.ResourceType), nullable(res.SourceFrom),
			nullable(res.SourceURL), res.ContentFeatureData,
		); err != nil {
			return stats, fmt.Errorf("failed to insert resource %d: %w", res.ID, err)
		}
		stats.Resources++
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit seed data: %w", err)
	}

	if d.logger != nil {
		d.logger.Info("Seed data loaded", map[string]interface{}{
			"entities":      stats.Entities,
			"aigc_entities": stats.AIGCEntities,
			"images":        stats.Images,
			"resources":     stats.Resources,
		})
	}
	return stats, nil
}

func insertEntity(ctx context.Context, tx *sql.Tx, table string, e SeedEntity, withSource bool) error {
	entityType := e.EntityType
	if entityType == "" {
		entityType = "其他"
	}

	var err error
	if withSource {
		_, err = tx.ExecContext(ctx, `INSERT INTO cultural_entities
			(id, entity_name, entity_type, description, source, related_images_url)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET entity_name = excluded.entity_name,
				entity_type = excluded.entity_type, description = excluded.description,
				source = excluded.source, related_images_url = excluded.related_images_url`,
			e.ID, e.EntityName, entityType, e.Description, nullable(e.Source), nullable(e.RelatedImagesURL))
	} else {
		_, err = tx.ExecContext(ctx, `INSERT INTO AIGC_cultural_entities
			(id, entity_name, entity_type, description, related_images_url)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET entity_name = excluded.entity_name,
				entity_type = excluded.entity_type, description = excluded.description,
				related_images_url = excluded.related_images_url`,
			e.ID, e.EntityName, entityType, e.Description, nullable(e.RelatedImagesURL))
	}
	if err != nil {
		return fmt.Errorf("failed to insert %s row %d: %w", table, e.ID, err)
	}
	return nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
