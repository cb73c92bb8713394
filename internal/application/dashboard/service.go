// Package dashboard aggregates the home screen summary from the pantry,
// the ranked catalog and the meal plan
package dashboard

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/culinaryos/kitchen/internal/application/pantry"
	"github.com/culinaryos/kitchen/internal/application/recipe"
	"github.com/culinaryos/kitchen/internal/domain/matching"
	pantrydomain "github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/planner"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// BestMatchLimit is how many top recipes the dashboard shows
	BestMatchLimit = 3
	// ExpiryWindow marks pantry items as expiring soon
	ExpiryWindow = 72 * time.Hour
)

// Ranker ranks the catalog against an already loaded pantry
type Ranker interface {
	RankPantry(ctx context.Context, items []*pantrydomain.Item) ([]matching.RankedRecipe, error)
}

// DashboardService implements the dashboard summary
type DashboardService struct {
	pantryRepo outbound.PantryRepository
	planRepo   outbound.MealPlanRepository
	ranker     Ranker
	logger     *zap.Logger
	now        func() time.Time
}

var _ inbound.DashboardService = (*DashboardService)(nil)

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	pantryRepo outbound.PantryRepository,
	planRepo outbound.MealPlanRepository,
	ranker Ranker,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		pantryRepo: pantryRepo,
		planRepo:   planRepo,
		ranker:     ranker,
		logger:     logger.Named("dashboard-service"),
		now:        time.Now,
	}
}

// GetSummary builds the dashboard for a user
func (s *DashboardService) GetSummary(ctx context.Context, userID uuid.UUID) (*inbound.DashboardDTO, error) {
	items, err := s.pantryRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("list pantry items", err)
	}

	ranked, err := s.ranker.RankPantry(ctx, items)
	if err != nil {
		return nil, err
	}

	meals := 0
	plan, err := s.planRepo.FindByUser(ctx, userID)
	switch {
	case err == nil:
		meals = plan.MealsPlanned()
	case !stderrors.Is(err, planner.ErrPlanNotFound):
		return nil, errors.NewDatabaseError("load meal plan", err)
	}

	now := s.now()
	expiring := make([]*pantrydomain.Item, 0)
	for _, item := range items {
		if item.ExpiresWithin(now, ExpiryWindow) {
			expiring = append(expiring, item)
		}
	}

	summary := &inbound.DashboardDTO{
		PantryCount:  len(items),
		RecipeCount:  len(ranked),
		MealsPlanned: meals,
		AverageMatch: matching.AverageMatch(ranked),
		BestMatches:  recipe.RankedToDTOs(matching.TopMatches(ranked, BestMatchLimit)),
		ExpiringSoon: pantry.ItemsToDTOs(expiring),
	}

	s.logger.Debug("Dashboard built",
		zap.String("user_id", userID.String()),
		zap.Int("pantry", summary.PantryCount),
		zap.Int("average_match", summary.AverageMatch),
	)
	return summary, nil
}
