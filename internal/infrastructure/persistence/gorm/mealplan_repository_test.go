package gorm_test

import (
	"context"
	"testing"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/planner"
	gormRepo "github.com/culinaryos/kitchen/internal/infrastructure/persistence/gorm"
	"github.com/culinaryos/kitchen/test/testutils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanSaveKeepsStoredPlanID(t *testing.T) {
	ctx := context.Background()
	repo := gormRepo.NewMealPlanRepository(testutils.NewSQLiteDB(t))
	userID := uuid.New()

	first := planner.NewWeeklyPlan(userID, time.Now())
	require.NoError(t, first.ReplaceEntries([]planner.Entry{
		{Day: planner.Monday, RecipeRef: "Custom", Description: "Lunch"},
	}))
	require.NoError(t, repo.Save(ctx, first))

	// a fresh aggregate for the same user must land on the existing row
	second := planner.NewWeeklyPlan(userID, time.Now())
	require.NoError(t, second.ReplaceEntries([]planner.Entry{
		{Day: planner.Tuesday, RecipeRef: "Tacos", Description: "Dinner"},
		{Day: planner.Sunday, RecipeRef: "Roast", Description: "Family dinner"},
	}))
	require.NoError(t, repo.Save(ctx, second))

	found, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, first.ID(), found.ID())
	require.Len(t, found.Entries(), 2)
	assert.Equal(t, planner.Tuesday, found.Entries()[0].Day)
	assert.Equal(t, "Roast", found.Entries()[1].RecipeRef)
}

func TestMealPlanSaveWithoutEntries(t *testing.T) {
	ctx := context.Background()
	repo := gormRepo.NewMealPlanRepository(testutils.NewSQLiteDB(t))
	userID := uuid.New()

	plan := planner.NewWeeklyPlan(userID, time.Now())
	require.NoError(t, repo.Save(ctx, plan))

	found, err := repo.FindByUser(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, found.Entries())
}
