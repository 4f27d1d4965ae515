package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/lentoflow/internal/clock"
	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/db"
	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
)

// completionService implements the mark_done/undo_done gate of spec §4.8.
// Both operations run inside a single transaction so the uniqueness
// index on (task_id, local_date) is the only thing that can reject a
// concurrent duplicate — there is no separate locking step. The same
// transaction also refreshes the DailyLog cache row for the day, so a
// stats read that follows a successful mutation never sees a stale
// cache (spec §3 DailyLog, §5 ordering guarantees).
type completionService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewCompletionService(uow db.UnitOfWork, observers ...UseCaseObserver) CompletionService {
	return &completionService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *completionService) MarkDone(ctx context.Context, userID, taskID string, now time.Time, note string, mood *int) (created *domain.Completion, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name: "mark_done", Duration: time.Since(started), Success: err == nil, Err: err,
			Fields: map[string]any{"task_id": taskID}, StartedAt: started,
		})
	}()

	if mood != nil && (*mood < 1 || *mood > 5) {
		return nil, contract.NewError(contract.ErrValidation, "mood must be in [1,5]")
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txCompletions := repository.NewSQLiteCompletionRepo(tx)
		txDailyLogs := repository.NewSQLiteDailyLogRepo(tx)

		t, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return contract.NewError(contract.ErrNotFound, "task not found")
			}
			return err
		}
		if t.UserID != userID {
			return contract.NewError(contract.ErrNotFound, "task not found")
		}

		c := &domain.Completion{
			ID:          uuid.New().String(),
			TaskID:      taskID,
			CompletedAt: now,
			Note:        note,
			Mood:        mood,
		}
		if err := txCompletions.Create(ctx, c); err != nil {
			if errors.Is(err, repository.ErrAlreadyCompleted) {
				return contract.NewError(contract.ErrAlreadyDone, "task already completed today")
			}
			return fmt.Errorf("creating completion: %w", err)
		}

		user, err := txUsers.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading user: %w", err)
		}
		today := clock.Today(clock.Fixed{At: now}, now.Location())
		if err := upsertDailyLog(ctx, txTasks, txCompletions, txDailyLogs, userID, user.DailyEnergyBudget, today); err != nil {
			return fmt.Errorf("caching daily log: %w", err)
		}

		created = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *completionService) UndoDone(ctx context.Context, userID, taskID string, now time.Time) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txUsers := repository.NewSQLiteUserRepo(tx)
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txCompletions := repository.NewSQLiteCompletionRepo(tx)
		txDailyLogs := repository.NewSQLiteDailyLogRepo(tx)

		t, err := txTasks.GetByID(ctx, taskID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return contract.NewError(contract.ErrNotFound, "task not found")
			}
			return err
		}
		if t.UserID != userID {
			return contract.NewError(contract.ErrNotFound, "task not found")
		}

		today := clock.Today(clock.Fixed{At: now}, now.Location())
		existing, err := txCompletions.GetByTaskAndDate(ctx, taskID, today)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return contract.NewError(contract.ErrNotFound, "no completion for today")
			}
			return err
		}

		if err := txCompletions.Delete(ctx, existing.ID); err != nil {
			return err
		}

		user, err := txUsers.GetByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("loading user: %w", err)
		}
		return upsertDailyLog(ctx, txTasks, txCompletions, txDailyLogs, userID, user.DailyEnergyBudget, today)
	})
}
