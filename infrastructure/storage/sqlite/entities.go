// ABOUTME: Data sources over the curated and AI-generated cultural entity tables
// ABOUTME: Score each row on an ordinal ladder from exact name match down to body match

package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"cultural-search-api/core/domain"
)

// Ladder holds the relevance assigned to each kind of match, strongest first
type Ladder struct {
	Exact    float64
	Fulltext float64
	Title    float64
	Body     float64
	Default  float64
}

// rung indexes match kinds as returned by the ranking CASE expression
func (l Ladder) score(rung int) float64 {
	switch rung {
	case 0:
		return l.Exact
	case 1:
		return l.Fulltext
	case 2:
		return l.Title
	case 3:
		return l.Body
	default:
		return l.Default
	}
}

// EntitySource searches one cultural entity table
type EntitySource struct {
	db         *DB
	name       string
	table      string
	ftsTable   string
	ladder     Ladder
	typeWeight float64
	tag        string

	// imageExpr and sourceExpr are SQL expressions over alias e
	imageExpr  string
	sourceExpr string
}

// NewCulturalEntitySource searches the curated cultural_entities table.
// Images prefer the first crawled image of the entity.
func NewCulturalEntitySource(db *DB) *EntitySource {
	return &EntitySource{
		db:         db,
		name:       entitiesTable,
		table:      entitiesTable,
		ftsTable:   fulltextTable,
		ladder:     Ladder{Exact: 2.0, Fulltext: 1.8, Title: 1.5, Body: 1.0, Default: 0.5},
		typeWeight: 1.0,
		tag:        "传统实体",
		imageExpr: "COALESCE((SELECT ci.storage_path FROM crawled_images ci " +
			"WHERE ci.entity_id = e.id ORDER BY ci.id LIMIT 1), e.related_images_url, '')",
		sourceExpr: "COALESCE(e.source, '')",
	}
}

// NewAIGCEntitySource searches the AI-generated AIGC_cultural_entities table
func NewAIGCEntitySource(db *DB) *EntitySource {
	return &EntitySource{
		db:         db,
		name:       "aigc_cultural_entities",
		table:      aigcEntitiesTable,
		ftsTable:   aigcFulltextTable,
		ladder:     Ladder{Exact: 1.6, Fulltext: 1.4, Title: 1.2, Body: 0.8, Default: 0.4},
		typeWeight: 0.7,
		tag:        "AI实体",
		imageExpr:  "COALESCE(e.related_images_url, '')",
		sourceExpr: "'AIGC生成'",
	}
}

// Name identifies the source
func (s *EntitySource) Name() string {
	return s.name
}

// Search returns the rows whose name or description matches query
func (s *EntitySource) Search(ctx context.Context, query string, fulltext bool) ([]domain.SearchCandidate, error) {
	match := fulltextPhrase(query)
	if match == "" {
		fulltext = false
	}

	args := []interface{}{
		sql.Named("exact", query),
		sql.Named("partial", likePattern(query)),
	}
	if fulltext {
		args = append(args, sql.Named("match", match))
	}

	rows, err := s.db.db.QueryContext(ctx, s.searchSQL(fulltext), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", s.table, err)
	}
	defer rows.Close()

	var out []domain.SearchCandidate
	for rows.Next() {
		var (
			id                 int64
			title, description string
			image, source      string
			rung               int
		)
		if err := rows.Scan(&id, &title, &description, &image, &source, &rung); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", s.table, err)
		}

		c := domain.NewSearchCandidate(id, title, description, s.ladder.score(rung), s.typeWeight)
		c.ImageURL = FormatImageURL(image)
		c.Source = source
		c.SourceURL = sourceURL(source)
		c.Tags = []string{s.tag}
		c.Origin = s.name
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s rows: %w", s.table, err)
	}
	return out, nil
}

// searchSQL builds the ranked query. The fulltext rung and predicate are
// only present when the index may be used.
func (s *EntitySource) searchSQL(fulltext bool) string {
	var b strings.Builder
	ftsMatch := fmt.Sprintf("e.id IN (SELECT docid FROM %[1]s WHERE %[1]s MATCH :match)", s.ftsTable)

	fmt.Fprintf(&b, "SELECT e.id, e.entity_name, COALESCE(e.description, ''), %s, %s, CASE", s.imageExpr, s.sourceExpr)
	b.WriteString(" WHEN e.entity_name = :exact THEN 0")
	if fulltext {
		fmt.Fprintf(&b, " WHEN %s THEN 1", ftsMatch)
	}
	b.WriteString(` WHEN e.entity_name LIKE :partial ESCAPE '\' THEN 2`)
	b.WriteString(` WHEN e.description LIKE :partial ESCAPE '\' THEN 3`)
	b.WriteString(" ELSE 4 END")
	fmt.Fprintf(&b, " FROM %s e WHERE", s.table)
	if fulltext {
		fmt.Fprintf(&b, " %s OR", ftsMatch)
	}
	b.WriteString(` e.entity_name LIKE :partial ESCAPE '\' OR e.description LIKE :partial ESCAPE '\'`)
	b.WriteString(" ORDER BY e.id")
	return b.String()
}

// likePattern matches query anywhere, with LIKE wildcards in query escaped
func likePattern(query string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(query) + "%"
}

// fulltextPhrase turns query into a single FTS phrase. Double quotes are
// dropped since the FTS4 syntax cannot escape them; empty means no phrase.
func fulltextPhrase(query string) string {
	phrase := strings.Join(strings.Fields(strings.ReplaceAll(query, `"`, " ")), " ")
	if phrase == "" {
		return ""
	}
	return `"` + phrase + `"`
}

func sourceURL(source string) string {
	if source == "" {
		return "#"
	}
	return source
}
