package migrations

import (
	"database/sql"
)

// GetMigrations returns all available migrations
func GetMigrations() []Migration {
	return []Migration{
		migration001InitialSchema(),
	}
}

// migration001InitialSchema creates the initial database schema
func migration001InitialSchema() Migration {
	return Migration{
		Version:     1,
		Description: "Initial schema - script and snapshot tables",
		Up: func(db *sql.DB, dialect Dialect) error {
			var queries []string

			switch dialect {
			case DialectPostgres:
				queries = getPostgresInitialSchema()
			default:
				queries = getSQLiteInitialSchema()
			}

			for _, query := range queries {
				if _, err := db.Exec(query); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func getSQLiteInitialSchema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS script (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS snapshot (
			id TEXT PRIMARY KEY,
			script_id TEXT NOT NULL,
			sequence_number INTEGER NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			notes TEXT DEFAULT NULL,
			auto_save BOOLEAN NOT NULL DEFAULT FALSE,
			is_current BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (script_id) REFERENCES script(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshot_script ON snapshot(script_id, sequence_number)`,
	}
}

func getPostgresInitialSchema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS script (
			id TEXT PRIMARY KEY,
			content TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMPTZ DEFAULT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS snapshot (
			id TEXT PRIMARY KEY,
			script_id TEXT NOT NULL REFERENCES script(id),
			sequence_number INTEGER NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			notes TEXT DEFAULT NULL,
			auto_save BOOLEAN NOT NULL DEFAULT FALSE,
			is_current BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshot_script ON snapshot(script_id, sequence_number)`,
	}
}
