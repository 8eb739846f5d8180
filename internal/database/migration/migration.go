package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id               UUID        PRIMARY KEY,
  full_name        TEXT        NOT NULL,
  email            TEXT        NOT NULL,
  phone            TEXT,
  institution      TEXT,
  area_of_interest TEXT,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
  CONSTRAINT users_email_key UNIQUE (email)
);`,
	},
	{
		Name: "create_table_documents",
		SQL: `CREATE TABLE IF NOT EXISTS documents (
  id          UUID        PRIMARY KEY,
  title       TEXT        NOT NULL,
  author      TEXT        NOT NULL,
  category    TEXT        NOT NULL,
  year        INTEGER,
  description TEXT,
  keywords    TEXT,
  uploaded_by TEXT,
  file_name   TEXT        NOT NULL,
  file_path   TEXT        NOT NULL UNIQUE,
  file_size   BIGINT      NOT NULL CHECK (file_size >= 0),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_documents_category",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_category ON documents (category);`,
	},
	{
		Name: "create_index_documents_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents (created_at, id);`,
	},
	{
		Name: "create_index_users_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at, id);`,
	},
}

// EnsureMigrated checks if the 'documents' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, log logrus.FieldLogger, dbHost string) error {
	start := time.Now()
	log = log.WithFields(logrus.Fields{"component": "database", "db_host": dbHost})

	log.WithField("event", "db_migration_check").Info("checking schema")

	var exists bool
	query := "SELECT to_regclass('public.documents') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_failed",
			"duration_ms": time.Since(start).Milliseconds(),
		}).WithError(err).Error("failed to check sentinel table")
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.WithFields(logrus.Fields{
			"event":       "db_migration_skip",
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("schema already exists, skipping migration")
		return nil
	}

	log.WithField("event", "db_migration_start").Info("applying schema")

	for _, step := range steps {
		stepStart := time.Now()
		stepLog := log.WithField("migration_step", step.Name)
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			stepLog.WithFields(logrus.Fields{
				"event":            "db_migration_failed",
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			}).WithError(err).Error("migration step failed")
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		stepLog.WithFields(logrus.Fields{
			"event":            "db_migration_step",
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		}).Debug("migration step applied")
	}

	log.WithFields(logrus.Fields{
		"event":       "db_migration_success",
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("schema migrated")

	return nil
}
