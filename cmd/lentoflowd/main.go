package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/lentoflow/internal/cli"
	"github.com/alexanderramin/lentoflow/internal/db"
	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
	"github.com/alexanderramin/lentoflow/internal/service"
)

const localUsername = "local"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath := os.Getenv("LENTOFLOW_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".lentoflow", "lentoflow.db")
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("creating data directory: %w", err)
		}
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	userRepo := repository.NewSQLiteUserRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	completionRepo := repository.NewSQLiteCompletionRepo(database)
	dailyLogRepo := repository.NewSQLiteDailyLogRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if envEnabled("LENTOFLOW_LOG_USECASES") {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	user, err := ensureLocalUser(context.Background(), userRepo)
	if err != nil {
		return fmt.Errorf("provisioning local user: %w", err)
	}

	app := &cli.App{
		Today:      service.NewTodayService(userRepo, taskRepo, completionRepo),
		Completion: service.NewCompletionService(uow, observer),
		Tasks:      service.NewTaskService(taskRepo),
		Stats:      service.NewStatsService(taskRepo, completionRepo, dailyLogRepo),
		Users:      service.NewUserService(userRepo),
		UserID:     user.ID,
		Now:        func() time.Time { return time.Now().UTC() },
	}

	return cli.NewRootCmd(app).Execute()
}

// ensureLocalUser loads or creates the single local account this binary
// operates as. The HTTP API (lentoflow serve) takes its user ID per
// bearer token from its Authenticator, which by default resolves every
// token to this same account (see serve's --user flag).
func ensureLocalUser(ctx context.Context, users repository.UserRepo) (*domain.User, error) {
	u, err := users.GetByUsername(ctx, localUsername)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	u = &domain.User{
		ID:                uuid.New().String(),
		Username:          localUsername,
		Email:             "local@lentoflow",
		PasswordHash:      "",
		DailyEnergyBudget: domain.MinDailyEnergyBudget + (domain.MaxDailyEnergyBudget-domain.MinDailyEnergyBudget)/2,
		MaxDailyTasks:     5,
		Settings:          map[string]any{},
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func envEnabled(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
