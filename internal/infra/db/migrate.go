package db

import (
	"database/sql"
)

// MigrateUp creates the articles table and its indexes. All statements are
// idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articles (
    id         UUID PRIMARY KEY,
    owner_id   TEXT NOT NULL,
    title      TEXT NOT NULL,
    body       TEXT NOT NULL,
    tags       TEXT[] NOT NULL DEFAULT '{}',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// Every query is scoped to the owner.
		`CREATE INDEX IF NOT EXISTS idx_articles_owner_id ON articles(owner_id)`,
		// ORDER BY created_at DESC on the list path.
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at DESC)`,
		// tags @> subset filtering.
		`CREATE INDEX IF NOT EXISTS idx_articles_tags ON articles USING gin(tags)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// pg_trgm speeds up ILIKE keyword search. Ignore errors: the extension
	// may already exist or the role may lack the privilege.
	_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)

	searchIndexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_articles_title_gin ON articles USING gin(title gin_trgm_ops)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_body_gin ON articles USING gin(body gin_trgm_ops)`,
	}
	for _, idx := range searchIndexes {
		// Fails without pg_trgm; keyword search still works, just slower.
		_, _ = db.Exec(idx)
	}

	return nil
}

// MigrateDown removes the articles table and its indexes.
// Use with caution: this deletes all stored articles.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_articles_title_gin`,
		`DROP INDEX IF EXISTS idx_articles_body_gin`,
		`DROP INDEX IF EXISTS idx_articles_tags`,
		`DROP INDEX IF EXISTS idx_articles_created_at`,
		`DROP INDEX IF EXISTS idx_articles_owner_id`,
		`DROP TABLE IF EXISTS articles CASCADE`,
	}

	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
