package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateSettings mutates the scheduling policy named in spec §3:
// daily_energy_budget in [5,30], max_daily_tasks in [1,10]. Out-of-range
// values are rejected rather than clamped, matching how taskService
// validates its own bounded fields.
func (s *userService) UpdateSettings(ctx context.Context, userID string, dailyEnergyBudget, maxDailyTasks int) (*domain.User, error) {
	if dailyEnergyBudget < domain.MinDailyEnergyBudget || dailyEnergyBudget > domain.MaxDailyEnergyBudget {
		return nil, contract.NewError(contract.ErrValidation, "daily_energy_budget must be in [5,30]")
	}
	if maxDailyTasks < domain.MinMaxDailyTasks || maxDailyTasks > domain.MaxMaxDailyTasks {
		return nil, contract.NewError(contract.ErrValidation, "max_daily_tasks must be in [1,10]")
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	u.DailyEnergyBudget = dailyEnergyBudget
	u.MaxDailyTasks = maxDailyTasks

	if err := s.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("updating user settings: %w", err)
	}
	return u, nil
}
