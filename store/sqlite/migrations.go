package sqlite

// migrations is the ordered, append-only schema ladder. Each statement runs
// at most once; applied versions are tracked in schema_migrations.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
	)`,
}
