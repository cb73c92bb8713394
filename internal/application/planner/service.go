// Package planner provides the application layer for the weekly meal planner
package planner

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PlannerService implements the meal planner use cases
type PlannerService struct {
	planRepo outbound.MealPlanRepository
	logger   *zap.Logger
	now      func() time.Time
}

var _ inbound.PlannerService = (*PlannerService)(nil)

// NewPlannerService creates a new planner service
func NewPlannerService(planRepo outbound.MealPlanRepository, logger *zap.Logger) *PlannerService {
	return &PlannerService{
		planRepo: planRepo,
		logger:   logger.Named("planner-service"),
		now:      time.Now,
	}
}

// GetPlan returns the user's meal entries, or an empty list when no plan exists
func (s *PlannerService) GetPlan(ctx context.Context, userID uuid.UUID) ([]inbound.MealEntryDTO, error) {
	plan, err := s.planRepo.FindByUser(ctx, userID)
	if err != nil {
		if stderrors.Is(err, planner.ErrPlanNotFound) {
			return []inbound.MealEntryDTO{}, nil
		}
		return nil, errors.NewDatabaseError("load meal plan", err)
	}
	return EntriesToDTOs(plan.Entries()), nil
}

// SavePlan replaces every entry of the user's plan, creating the plan on first save
func (s *PlannerService) SavePlan(ctx context.Context, userID uuid.UUID, meals []inbound.MealEntryDTO) ([]inbound.MealEntryDTO, error) {
	entries := make([]planner.Entry, 0, len(meals))
	for _, m := range meals {
		entry := planner.Entry{
			Day:         planner.Day(m.Day),
			RecipeRef:   m.RecipeID,
			Description: m.Description,
			ColorTag:    m.Color,
		}
		if m.ID != "" {
			id, err := uuid.Parse(m.ID)
			if err != nil {
				return nil, errors.NewValidationError("meal entry id must be a UUID")
			}
			entry.ID = id
		}
		entries = append(entries, entry)
	}

	plan, err := s.planRepo.FindByUser(ctx, userID)
	if err != nil {
		if !stderrors.Is(err, planner.ErrPlanNotFound) {
			return nil, errors.NewDatabaseError("load meal plan", err)
		}
		plan = planner.NewWeeklyPlan(userID, s.now())
	}

	if err := plan.ReplaceEntries(entries); err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, errors.NewDatabaseError("save meal plan", err)
	}

	s.logger.Info("Meal plan saved",
		zap.String("user_id", userID.String()),
		zap.Int("meals", plan.MealsPlanned()),
	)
	return EntriesToDTOs(plan.Entries()), nil
}

// EntriesToDTOs converts plan entries, never returning nil
func EntriesToDTOs(entries []planner.Entry) []inbound.MealEntryDTO {
	dtos := make([]inbound.MealEntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, inbound.MealEntryDTO{
			ID:          e.ID.String(),
			Day:         string(e.Day),
			RecipeID:    e.RecipeRef,
			Description: e.Description,
			Color:       e.ColorTag,
		})
	}
	return dtos
}
