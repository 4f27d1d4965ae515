package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/lentoflow/internal/db"
	"github.com/alexanderramin/lentoflow/internal/domain"
)

// SQLiteUserRepo implements UserRepo using a SQLite database.
type SQLiteUserRepo struct {
	db db.DBTX
}

// NewSQLiteUserRepo creates a new SQLiteUserRepo.
func NewSQLiteUserRepo(conn db.DBTX) *SQLiteUserRepo {
	return &SQLiteUserRepo{db: conn}
}

func (r *SQLiteUserRepo) Create(ctx context.Context, u *domain.User) error {
	settings, err := json.Marshal(u.Settings)
	if err != nil {
		return fmt.Errorf("marshaling user settings: %w", err)
	}

	now := nowUTC()
	u.CreatedAt, u.UpdatedAt = mustParseRFC3339(now), mustParseRFC3339(now)

	query := `INSERT INTO users (id, username, email, password_hash, daily_energy_budget, max_daily_tasks, settings, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Email, u.PasswordHash,
		u.DailyEnergyBudget, u.MaxDailyTasks, string(settings),
		now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, daily_energy_budget, max_daily_tasks, settings, created_at, updated_at
		FROM users WHERE id = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT id, username, email, password_hash, daily_energy_budget, max_daily_tasks, settings, created_at, updated_at
		FROM users WHERE username = ?`
	return r.scanUser(r.db.QueryRowContext(ctx, query, username))
}

func (r *SQLiteUserRepo) Update(ctx context.Context, u *domain.User) error {
	settings, err := json.Marshal(u.Settings)
	if err != nil {
		return fmt.Errorf("marshaling user settings: %w", err)
	}

	query := `UPDATE users SET username = ?, email = ?, password_hash = ?,
		daily_energy_budget = ?, max_daily_tasks = ?, settings = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		u.Username, u.Email, u.PasswordHash,
		u.DailyEnergyBudget, u.MaxDailyTasks, string(settings),
		nowUTC(), u.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	return nil
}

func (r *SQLiteUserRepo) scanUser(row *sql.Row) (*domain.User, error) {
	var u domain.User
	var settingsStr, createdAtStr, updatedAtStr string
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.DailyEnergyBudget, &u.MaxDailyTasks, &settingsStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	u.Settings = map[string]any{}
	if settingsStr != "" {
		if err := json.Unmarshal([]byte(settingsStr), &u.Settings); err != nil {
			return nil, fmt.Errorf("unmarshaling user settings: %w", err)
		}
	}
	u.CreatedAt = mustParseRFC3339(createdAtStr)
	u.UpdatedAt = mustParseRFC3339(updatedAtStr)
	return &u, nil
}

func mustParseRFC3339(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
