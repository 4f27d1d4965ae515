package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/alexanderramin/lentoflow/internal/contract"
	"github.com/alexanderramin/lentoflow/internal/domain"
	"github.com/alexanderramin/lentoflow/internal/repository"
)

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type taskService struct {
	tasks repository.TaskRepo
}

func NewTaskService(tasks repository.TaskRepo) TaskService {
	return &taskService{tasks: tasks}
}

func (s *taskService) Create(ctx context.Context, userID string, in contract.TaskCreate) (*domain.Task, error) {
	if err := validateTaskFields(in.Name, in.EnergyCost, in.ExpectedInterval, in.Importance, in.Color); err != nil {
		return nil, err
	}

	color := in.Color
	if color == "" {
		color = domain.DefaultColor
	}
	icon := in.Icon
	if icon == "" {
		icon = domain.DefaultIcon
	}

	t := &domain.Task{
		ID:               uuid.New().String(),
		UserID:           userID,
		Name:             in.Name,
		Description:      in.Description,
		EnergyCost:       in.EnergyCost,
		ExpectedInterval: in.ExpectedInterval,
		Importance:       in.Importance,
		Category:         in.Category,
		Color:            color,
		Icon:             icon,
		IsActive:         true,
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}
	return t, nil
}

func (s *taskService) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, contract.NewError(contract.ErrNotFound, "task not found")
		}
		return nil, err
	}
	if t.UserID != userID {
		return nil, contract.NewError(contract.ErrNotFound, "task not found")
	}
	return t, nil
}

func (s *taskService) List(ctx context.Context, userID string, includeInactive bool) ([]*domain.Task, error) {
	list, err := s.tasks.ListByUser(ctx, userID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return list, nil
}

func (s *taskService) Update(ctx context.Context, userID string, in contract.TaskUpdate) (*domain.Task, error) {
	if err := validateTaskFields(in.Name, in.EnergyCost, in.ExpectedInterval, in.Importance, in.Color); err != nil {
		return nil, err
	}

	t, err := s.GetByID(ctx, userID, in.ID)
	if err != nil {
		return nil, err
	}

	t.Name = in.Name
	t.Description = in.Description
	t.EnergyCost = in.EnergyCost
	t.ExpectedInterval = in.ExpectedInterval
	t.Importance = in.Importance
	t.Category = in.Category
	t.Color = in.Color
	t.Icon = in.Icon
	t.IsActive = in.IsActive

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("updating task: %w", err)
	}
	return t, nil
}

func (s *taskService) Deactivate(ctx context.Context, userID, id string) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.tasks.Deactivate(ctx, id)
}

func (s *taskService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.GetByID(ctx, userID, id); err != nil {
		return err
	}
	return s.tasks.Delete(ctx, id)
}

func validateTaskFields(name string, energyCost, expectedInterval, importance int, color string) error {
	if len(name) < 1 || len(name) > domain.MaxNameLength {
		return contract.NewError(contract.ErrValidation, "name must be 1-100 characters")
	}
	if energyCost < domain.MinEnergyCost || energyCost > domain.MaxEnergyCost {
		return contract.NewError(contract.ErrValidation, "energy_cost must be in [1,5]")
	}
	if expectedInterval < domain.MinExpectedInterval || expectedInterval > domain.MaxExpectedInterval {
		return contract.NewError(contract.ErrValidation, "expected_interval must be in [1,30]")
	}
	if importance < domain.MinImportance || importance > domain.MaxImportance {
		return contract.NewError(contract.ErrValidation, "importance must be in [1,5]")
	}
	if color != "" && !colorPattern.MatchString(color) {
		return contract.NewError(contract.ErrValidation, "color must match ^#[0-9a-fA-F]{6}$")
	}
	return nil
}
