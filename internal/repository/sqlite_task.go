package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/lentoflow/internal/db"
	"github.com/alexanderramin/lentoflow/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	now := nowUTC()
	query := `INSERT INTO tasks (id, user_id, name, description, energy_cost, expected_interval,
		importance, category, color, icon, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Name, t.Description, t.EnergyCost, t.ExpectedInterval,
		t.Importance, t.Category, t.Color, t.Icon, boolToInt(t.IsActive), now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	t.CreatedAt, t.UpdatedAt = mustParseRFC3339(now), mustParseRFC3339(now)
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT id, user_id, name, description, energy_cost, expected_interval,
		importance, category, color, icon, is_active, created_at, updated_at
		FROM tasks WHERE id = ?`
	return r.scanTask(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteTaskRepo) ListByUser(ctx context.Context, userID string, includeInactive bool) ([]*domain.Task, error) {
	query := `SELECT id, user_id, name, description, energy_cost, expected_interval,
		importance, category, color, icon, is_active, created_at, updated_at
		FROM tasks WHERE user_id = ?`
	if !includeInactive {
		query += ` AND is_active = 1`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks by user: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.Task
	for rows.Next() {
		t, err := r.scanTaskRow(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET name = ?, description = ?, energy_cost = ?, expected_interval = ?,
		importance = ?, category = ?, color = ?, icon = ?, is_active = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Name, t.Description, t.EnergyCost, t.ExpectedInterval,
		t.Importance, t.Category, t.Color, t.Icon, boolToInt(t.IsActive), nowUTC(), t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Deactivate(ctx context.Context, id string) error {
	query := `UPDATE tasks SET is_active = 0, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("deactivating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var isActive int
	var createdAtStr, updatedAtStr string
	err := row.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.EnergyCost, &t.ExpectedInterval,
		&t.Importance, &t.Category, &t.Color, &t.Icon, &isActive, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.IsActive = intToBool(isActive)
	t.CreatedAt = mustParseRFC3339(createdAtStr)
	t.UpdatedAt = mustParseRFC3339(updatedAtStr)
	return &t, nil
}

func (r *SQLiteTaskRepo) scanTaskRow(rows *sql.Rows) (*domain.Task, error) {
	var t domain.Task
	var isActive int
	var createdAtStr, updatedAtStr string
	err := rows.Scan(
		&t.ID, &t.UserID, &t.Name, &t.Description, &t.EnergyCost, &t.ExpectedInterval,
		&t.Importance, &t.Category, &t.Color, &t.Icon, &isActive, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.IsActive = intToBool(isActive)
	t.CreatedAt = mustParseRFC3339(createdAtStr)
	t.UpdatedAt = mustParseRFC3339(updatedAtStr)
	return &t, nil
}
