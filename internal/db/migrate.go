package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                   TEXT PRIMARY KEY,
		username             TEXT NOT NULL,
		email                TEXT NOT NULL,
		password_hash        TEXT NOT NULL,
		daily_energy_budget  INTEGER NOT NULL DEFAULT 15,
		max_daily_tasks      INTEGER NOT NULL DEFAULT 5,
		settings             TEXT NOT NULL DEFAULT '{}',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name              TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		energy_cost       INTEGER NOT NULL DEFAULT 1,
		expected_interval INTEGER NOT NULL DEFAULT 1,
		importance        INTEGER NOT NULL DEFAULT 3,
		category          TEXT NOT NULL DEFAULT '',
		color             TEXT NOT NULL DEFAULT '#6366f1',
		icon              TEXT NOT NULL DEFAULT 'star',
		is_active         INTEGER NOT NULL DEFAULT 1,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_user_active ON tasks(user_id, is_active)`,

	`CREATE TABLE IF NOT EXISTS completions (
		id           TEXT PRIMARY KEY,
		task_id      TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		completed_at TEXT NOT NULL,
		local_date   TEXT NOT NULL,
		note         TEXT NOT NULL DEFAULT '',
		mood         INTEGER
	)`,

	`CREATE INDEX IF NOT EXISTS idx_completions_task ON completions(task_id, completed_at)`,
	// At most one completion per (task, local calendar day) — the gate
	// in internal/repository relies on this constraint to detect
	// duplicate mark-done attempts as an ordinary unique violation.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_completions_task_date ON completions(task_id, local_date)`,

	`CREATE TABLE IF NOT EXISTS daily_logs (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		log_date        TEXT NOT NULL,
		energy_spent    INTEGER NOT NULL DEFAULT 0,
		tasks_completed INTEGER NOT NULL DEFAULT 0,
		daily_score     REAL,
		overall_health  REAL,
		note            TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_logs_user_date ON daily_logs(user_id, log_date)`,
}
