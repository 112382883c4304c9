// ABOUTME: SQLite database holding the searchable cultural tables
// ABOUTME: Creates the schema, the FTS4 index and probes fulltext availability

package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"cultural-search-api/core/interfaces"
	_ "github.com/mattn/go-sqlite3"
)

const (
	entitiesTable     = "cultural_entities"
	aigcEntitiesTable = "AIGC_cultural_entities"
	resourcesTable    = "cultural_resources"
	imagesTable       = "crawled_images"

	// fulltextTable is the index whose presence enables fulltext matching
	fulltextTable     = "cultural_entities_fts"
	aigcFulltextTable = "AIGC_cultural_entities_fts"
)

const schema = `
CREATE TABLE IF NOT EXISTS cultural_entities (
	id INTEGER PRIMARY KEY,
	entity_name TEXT NOT NULL,
	entity_type TEXT NOT NULL DEFAULT '其他',
	description TEXT,
	source TEXT,
	related_images_url TEXT
);

CREATE TABLE IF NOT EXISTS AIGC_cultural_entities (
	id INTEGER PRIMARY KEY,
	entity_name TEXT NOT NULL,
	entity_type TEXT NOT NULL DEFAULT '其他',
	description TEXT,
	related_images_url TEXT
);

CREATE TABLE IF NOT EXISTS crawled_images (
	id INTEGER PRIMARY KEY,
	entity_id INTEGER NOT NULL REFERENCES cultural_entities(id),
	storage_path TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_crawled_images_entity ON crawled_images(entity_id);

CREATE TABLE IF NOT EXISTS cultural_resources (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	resource_type TEXT,
	source_from TEXT,
	source_url TEXT,
	content_feature_data TEXT
);
`

// fulltextSchema returns the external-content FTS4 index over table and
// the triggers keeping it in sync
func fulltextSchema(table, fts string) string {
	return fmt.Sprintf(`
CREATE VIRTUAL TABLE IF NOT EXISTS %[2]s USING fts4(entity_name, description, content="%[1]s");

CREATE TRIGGER IF NOT EXISTS %[2]s_bu BEFORE UPDATE ON %[1]s BEGIN
	DELETE FROM %[2]s WHERE docid = old.rowid;
END;
CREATE TRIGGER IF NOT EXISTS %[2]s_bd BEFORE DELETE ON %[1]s BEGIN
	DELETE FROM %[2]s WHERE docid = old.rowid;
END;
CREATE TRIGGER IF NOT EXISTS %[2]s_au AFTER UPDATE ON %[1]s BEGIN
	INSERT INTO %[2]s(docid, entity_name, description) VALUES (new.rowid, new.entity_name, new.description);
END;
CREATE TRIGGER IF NOT EXISTS %[2]s_ai AFTER INSERT ON %[1]s BEGIN
	INSERT INTO %[2]s(docid, entity_name, description) VALUES (new.rowid, new.entity_name, new.description);
END;
`, table, fts)
}

// DB wraps the search database
type DB struct {
	db     *sql.DB
	logger interfaces.Logger
}

// Open opens (creating if needed) the SQLite database at path
func Open(path string, logger interfaces.Logger) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	return &DB{db: db, logger: logger}, nil
}

// Migrate creates the tables. With fulltext set it also creates the FTS4
// indexes and rebuilds them from the current rows.
func (d *DB) Migrate(ctx context.Context, fulltext bool) error {
	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if !fulltext {
		return nil
	}

	for table, fts := range map[string]string{entitiesTable: fulltextTable, aigcEntitiesTable: aigcFulltextTable} {
		if _, err := d.db.ExecContext(ctx, fulltextSchema(table, fts)); err != nil {
			return fmt.Errorf("failed to create fulltext index %s: %w", fts, err)
		}
		rebuild := fmt.Sprintf("INSERT INTO %[1]s(%[1]s) VALUES('rebuild')", fts)
		if _, err := d.db.ExecContext(ctx, rebuild); err != nil {
			return fmt.Errorf("failed to rebuild fulltext index %s: %w", fts, err)
		}
	}

	if d.logger != nil {
		d.logger.Info("Fulltext indexes ready", map[string]interface{}{
			"tables": []string{fulltextTable, aigcFulltextTable},
		})
	}
	return nil
}

// FulltextAvailable reports whether the fulltext index exists.
// Lookup errors count as unavailable.
func (d *DB) FulltextAvailable(ctx context.Context) bool {
	var count int
	err := d.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", fulltextTable,
	).Scan(&count)
	if err != nil {
		if d.logger != nil {
			d.logger.Warn("Fulltext probe failed", map[string]interface{}{"error": err.Error()})
		}
		return false
	}
	return count > 0
}

// Ping checks the database connection
func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// Close closes the database
func (d *DB) Close() error {
	return d.db.Close()
}

// Sources returns the three searchable tables in fanout order
func (d *DB) Sources(resourceLimit int) []interfaces.DataSource {
	return []interfaces.DataSource{
		NewCulturalEntitySource(d),
		NewAIGCEntitySource(d),
		NewResourceSource(d, resourceLimit),
	}
}
