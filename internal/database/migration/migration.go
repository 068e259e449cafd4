package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_clients",
		SQL: `CREATE TABLE IF NOT EXISTS clients (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL,
  company    TEXT        NOT NULL DEFAULT '',
  phone      TEXT        NOT NULL DEFAULT '',
  logo_path  TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_projects",
		SQL: `CREATE TABLE IF NOT EXISTS projects (
  id          UUID             PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT             NOT NULL,
  client_id   UUID             NOT NULL REFERENCES clients (id),
  start_date  DATE,
  deadline    DATE,
  budget      DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (budget >= 0),
  description TEXT             NOT NULL DEFAULT '',
  status      TEXT             NOT NULL DEFAULT 'To Do',
  progress    INT              NOT NULL DEFAULT 0 CHECK (progress BETWEEN 0 AND 100),
  created_at  TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_tasks",
		SQL: `CREATE TABLE IF NOT EXISTS tasks (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL,
  project_id  UUID        NOT NULL REFERENCES projects (id),
  status      TEXT        NOT NULL DEFAULT 'To Do',
  due_date    DATE,
  description TEXT        NOT NULL DEFAULT '',
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_clients_name",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_clients_name ON clients (name);`,
	},
	{
		Name: "create_index_projects_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_projects_client_id ON projects (client_id);`,
	},
	{
		Name: "create_index_projects_deadline",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_projects_deadline ON projects (deadline);`,
	},
	{
		Name: "create_index_tasks_project_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks (project_id);`,
	},
	{
		Name: "create_index_tasks_due_date",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tasks_due_date ON tasks (due_date);`,
	},
	{
		Name: "create_index_tasks_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks (status);`,
	},
}

// EnsureMigrated checks whether the 'clients' sentinel table exists and runs
// the migration steps if it does not. Steps are idempotent so a partial
// earlier run is safe to repeat.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()

	var exists bool
	query := "SELECT to_regclass('public.clients') IS NOT NULL"
	if err := db.QueryRowContext(ctx, query).Scan(&exists); err != nil {
		log.Error("failed to check sentinel table", zap.Error(err))
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		log.Info("schema already exists, skipping migration",
			zap.Int64("duration_ms", time.Since(start).Milliseconds()))
		return nil
	}

	log.Info("running schema migration", zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("migration step failed",
				zap.String("step", step.Name),
				zap.Error(err),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()))
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		log.Info("migration step applied",
			zap.String("step", step.Name),
			zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()))
	}

	log.Info("schema migration complete",
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}
