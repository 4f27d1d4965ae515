package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/lentoflow/internal/db"
	"github.com/alexanderramin/lentoflow/internal/domain"
)

// SQLiteDailyLogRepo implements DailyLogRepo using a SQLite database.
type SQLiteDailyLogRepo struct {
	db db.DBTX
}

// NewSQLiteDailyLogRepo creates a new SQLiteDailyLogRepo.
func NewSQLiteDailyLogRepo(conn db.DBTX) *SQLiteDailyLogRepo {
	return &SQLiteDailyLogRepo{db: conn}
}

func (r *SQLiteDailyLogRepo) Upsert(ctx context.Context, l *domain.DailyLog) error {
	query := `INSERT INTO daily_logs (id, user_id, log_date, energy_spent, tasks_completed, daily_score, overall_health, note)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, log_date) DO UPDATE SET
			energy_spent = excluded.energy_spent,
			tasks_completed = excluded.tasks_completed,
			daily_score = excluded.daily_score,
			overall_health = excluded.overall_health,
			note = excluded.note`
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.UserID, l.LogDate.Format(dateLayout), l.EnergySpent, l.TasksCompleted,
		nullableFloatToValue(l.DailyScore), nullableFloatToValue(l.OverallHealth), l.Note,
	)
	if err != nil {
		return fmt.Errorf("upserting daily log: %w", err)
	}
	return nil
}

func (r *SQLiteDailyLogRepo) GetByUserAndDate(ctx context.Context, userID string, logDate time.Time) (*domain.DailyLog, error) {
	query := `SELECT id, user_id, log_date, energy_spent, tasks_completed, daily_score, overall_health, note
		FROM daily_logs WHERE user_id = ? AND log_date = ?`
	return r.scanLog(r.db.QueryRowContext(ctx, query, userID, logDate.Format(dateLayout)))
}

func (r *SQLiteDailyLogRepo) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.DailyLog, error) {
	query := `SELECT id, user_id, log_date, energy_spent, tasks_completed, daily_score, overall_health, note
		FROM daily_logs WHERE user_id = ? AND log_date >= ? AND log_date <= ? ORDER BY log_date`
	rows, err := r.db.QueryContext(ctx, query, userID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing daily logs: %w", err)
	}
	defer rows.Close()

	var out []*domain.DailyLog
	for rows.Next() {
		l, err := r.scanLogRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *SQLiteDailyLogRepo) scanLog(row *sql.Row) (*domain.DailyLog, error) {
	var l domain.DailyLog
	var logDateStr string
	var score, health sql.NullFloat64
	err := row.Scan(&l.ID, &l.UserID, &logDateStr, &l.EnergySpent, &l.TasksCompleted, &score, &health, &l.Note)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily log: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily log: %w", err)
	}
	l.LogDate, _ = time.Parse(dateLayout, logDateStr)
	l.DailyScore = nullableFloatFromSQL(score)
	l.OverallHealth = nullableFloatFromSQL(health)
	return &l, nil
}

func (r *SQLiteDailyLogRepo) scanLogRow(rows *sql.Rows) (*domain.DailyLog, error) {
	var l domain.DailyLog
	var logDateStr string
	var score, health sql.NullFloat64
	err := rows.Scan(&l.ID, &l.UserID, &logDateStr, &l.EnergySpent, &l.TasksCompleted, &score, &health, &l.Note)
	if err != nil {
		return nil, fmt.Errorf("scanning daily log: %w", err)
	}
	l.LogDate, _ = time.Parse(dateLayout, logDateStr)
	l.DailyScore = nullableFloatFromSQL(score)
	l.OverallHealth = nullableFloatFromSQL(health)
	return &l, nil
}
