package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lentoflow/internal/db"
	"github.com/alexanderramin/lentoflow/internal/domain"
)

// SQLiteCompletionRepo implements CompletionRepo using a SQLite database.
type SQLiteCompletionRepo struct {
	db db.DBTX
}

// NewSQLiteCompletionRepo creates a new SQLiteCompletionRepo.
func NewSQLiteCompletionRepo(conn db.DBTX) *SQLiteCompletionRepo {
	return &SQLiteCompletionRepo{db: conn}
}

func (r *SQLiteCompletionRepo) Create(ctx context.Context, c *domain.Completion) error {
	localDate := c.LocalDate().Format(dateLayout)
	query := `INSERT INTO completions (id, task_id, completed_at, local_date, note, mood)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.TaskID, c.CompletedAt.Format(time.RFC3339), localDate, c.Note, nullableIntToValue(c.Mood),
	)
	if err != nil {
		// The unique index on (task_id, local_date) is the actual gate;
		// everything above it is best-effort UX.
		if isUniqueConstraintViolation(err) {
			return fmt.Errorf("%s: %w", c.TaskID, ErrAlreadyCompleted)
		}
		return fmt.Errorf("inserting completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) GetByID(ctx context.Context, id string) (*domain.Completion, error) {
	query := `SELECT id, task_id, completed_at, note, mood FROM completions WHERE id = ?`
	return r.scanCompletion(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteCompletionRepo) GetByTaskAndDate(ctx context.Context, taskID string, localDate time.Time) (*domain.Completion, error) {
	query := `SELECT id, task_id, completed_at, note, mood FROM completions WHERE task_id = ? AND local_date = ?`
	return r.scanCompletion(r.db.QueryRowContext(ctx, query, taskID, localDate.Format(dateLayout)))
}

func (r *SQLiteCompletionRepo) LastByTask(ctx context.Context, taskID string) (*domain.Completion, error) {
	query := `SELECT id, task_id, completed_at, note, mood FROM completions
		WHERE task_id = ? ORDER BY completed_at DESC LIMIT 1`
	return r.scanCompletion(r.db.QueryRowContext(ctx, query, taskID))
}

func (r *SQLiteCompletionRepo) LastByTasks(ctx context.Context, taskIDs []string) (map[string]*domain.Completion, error) {
	result := make(map[string]*domain.Completion, len(taskIDs))
	if len(taskIDs) == 0 {
		return result, nil
	}

	placeholders := make([]string, len(taskIDs))
	args := make([]any, len(taskIDs))
	for i, id := range taskIDs {
		placeholders[i] = "?"
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT id, task_id, completed_at, note, mood FROM completions c
		WHERE task_id IN (%s) AND completed_at = (
			SELECT MAX(completed_at) FROM completions WHERE task_id = c.task_id
		)`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("batch loading last completions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		c, err := r.scanCompletionRow(rows)
		if err != nil {
			return nil, err
		}
		result[c.TaskID] = c
	}
	return result, rows.Err()
}

func (r *SQLiteCompletionRepo) ListByTaskRange(ctx context.Context, taskID string, from, to time.Time) ([]*domain.Completion, error) {
	query := `SELECT id, task_id, completed_at, note, mood FROM completions
		WHERE task_id = ? AND local_date >= ? AND local_date <= ? ORDER BY completed_at`
	return r.queryCompletions(ctx, query, taskID, from.Format(dateLayout), to.Format(dateLayout))
}

func (r *SQLiteCompletionRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Completion, error) {
	query := `SELECT c.id, c.task_id, c.completed_at, c.note, c.mood FROM completions c
		JOIN tasks t ON t.id = c.task_id
		WHERE t.user_id = ? AND c.local_date >= ? AND c.local_date <= ? ORDER BY c.completed_at`
	return r.queryCompletions(ctx, query, userID, from.Format(dateLayout), to.Format(dateLayout))
}

func (r *SQLiteCompletionRepo) CountByTaskRange(ctx context.Context, userID string, from, to time.Time) ([]TaskCompletionCount, error) {
	query := `SELECT c.task_id, COUNT(*) FROM completions c
		JOIN tasks t ON t.id = c.task_id
		WHERE t.user_id = ? AND c.local_date >= ? AND c.local_date <= ?
		GROUP BY c.task_id`
	rows, err := r.db.QueryContext(ctx, query, userID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("counting completions by task: %w", err)
	}
	defer rows.Close()

	var out []TaskCompletionCount
	for rows.Next() {
		var c TaskCompletionCount
		if err := rows.Scan(&c.TaskID, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning task completion count: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteCompletionRepo) Heatmap(ctx context.Context, userID string, from, to time.Time) ([]HeatmapEntry, error) {
	query := `SELECT c.local_date, COUNT(*) FROM completions c
		JOIN tasks t ON t.id = c.task_id
		WHERE t.user_id = ? AND c.local_date >= ? AND c.local_date <= ?
		GROUP BY c.local_date ORDER BY c.local_date`
	rows, err := r.db.QueryContext(ctx, query, userID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("building heatmap: %w", err)
	}
	defer rows.Close()

	var out []HeatmapEntry
	for rows.Next() {
		var dateStr string
		var count int
		if err := rows.Scan(&dateStr, &count); err != nil {
			return nil, fmt.Errorf("scanning heatmap entry: %w", err)
		}
		d, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing heatmap date: %w", err)
		}
		out = append(out, HeatmapEntry{Date: d, Count: count})
	}
	return out, rows.Err()
}

func (r *SQLiteCompletionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM completions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting completion: %w", err)
	}
	return nil
}

func (r *SQLiteCompletionRepo) queryCompletions(ctx context.Context, query string, args ...any) ([]*domain.Completion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var out []*domain.Completion
	for rows.Next() {
		c, err := r.scanCompletionRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *SQLiteCompletionRepo) scanCompletion(row *sql.Row) (*domain.Completion, error) {
	var c domain.Completion
	var completedAtStr string
	var mood sql.NullInt64
	err := row.Scan(&c.ID, &c.TaskID, &completedAtStr, &c.Note, &mood)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("completion: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning completion: %w", err)
	}
	c.CompletedAt = mustParseRFC3339(completedAtStr)
	c.Mood = nullableIntFromSQL(mood)
	return &c, nil
}

func (r *SQLiteCompletionRepo) scanCompletionRow(rows *sql.Rows) (*domain.Completion, error) {
	var c domain.Completion
	var completedAtStr string
	var mood sql.NullInt64
	err := rows.Scan(&c.ID, &c.TaskID, &completedAtStr, &c.Note, &mood)
	if err != nil {
		return nil, fmt.Errorf("scanning completion: %w", err)
	}
	c.CompletedAt = mustParseRFC3339(completedAtStr)
	c.Mood = nullableIntFromSQL(mood)
	return &c, nil
}

func isUniqueConstraintViolation(err error) bool {
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
