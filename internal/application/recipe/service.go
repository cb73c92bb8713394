// Package recipe provides the application layer for the recipe catalog and pantry recommendations
// This implements the use cases defined in the inbound ports
package recipe

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/culinaryos/kitchen/internal/domain/matching"
	"github.com/culinaryos/kitchen/internal/domain/pantry"
	"github.com/culinaryos/kitchen/internal/domain/recipe"
	"github.com/culinaryos/kitchen/internal/domain/shared"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/internal/ports/outbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

// CatalogCacheKey holds the JSON snapshot of the whole catalog
const CatalogCacheKey = "recipes:catalog"

var tracer = otel.Tracer("github.com/culinaryos/kitchen/internal/application/recipe")

// RecipeService implements the recipe use cases
type RecipeService struct {
	recipeRepo outbound.RecipeRepository
	pantryRepo outbound.PantryRepository
	cache      outbound.CacheRepository
	events     shared.EventDispatcher
	metrics    outbound.MetricsRecorder
	catalogTTL time.Duration
	logger     *zap.Logger
}

var _ inbound.RecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new recipe service
func NewRecipeService(
	recipeRepo outbound.RecipeRepository,
	pantryRepo outbound.PantryRepository,
	cache outbound.CacheRepository,
	events shared.EventDispatcher,
	metrics outbound.MetricsRecorder,
	catalogTTL time.Duration,
	logger *zap.Logger,
) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		pantryRepo: pantryRepo,
		cache:      cache,
		events:     events,
		metrics:    metrics,
		catalogTTL: catalogTTL,
		logger:     logger.Named("recipe-service"),
	}
}

// CreateRecipe adds a recipe to the end of the catalog
func (s *RecipeService) CreateRecipe(ctx context.Context, cmd inbound.RecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Creating new recipe", zap.String("title", cmd.Title))

	entity, err := recipe.NewRecipe(commandToDetails(cmd))
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.recipeRepo.Create(ctx, entity); err != nil {
		return nil, errors.NewDatabaseError("create recipe", err)
	}

	s.publishEvents(ctx, entity.Events())

	dto := EntityToDTO(entity)
	s.logger.Info("Recipe created successfully",
		zap.String("recipe_id", dto.ID.String()),
		zap.String("title", dto.Title),
	)
	return &dto, nil
}

// UpdateRecipe replaces every attribute of an existing recipe
func (s *RecipeService) UpdateRecipe(ctx context.Context, recipeID uuid.UUID, cmd inbound.RecipeCommand) (*inbound.RecipeDTO, error) {
	s.logger.Info("Updating recipe", zap.String("recipe_id", recipeID.String()))

	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if err := entity.Update(commandToDetails(cmd)); err != nil {
		return nil, errors.NewValidationError(err.Error()).WithCause(err)
	}

	if err := s.recipeRepo.Update(ctx, entity); err != nil {
		if stderrors.Is(err, recipe.ErrRecipeNotFound) {
			return nil, errors.NewRecipeNotFoundError(recipeID.String())
		}
		return nil, errors.NewDatabaseError("update recipe", err)
	}

	s.publishEvents(ctx, entity.Events())

	dto := EntityToDTO(entity)
	return &dto, nil
}

// DeleteRecipe removes a recipe from the catalog
func (s *RecipeService) DeleteRecipe(ctx context.Context, recipeID uuid.UUID) error {
	s.logger.Info("Deleting recipe", zap.String("recipe_id", recipeID.String()))

	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return err
	}

	if err := s.recipeRepo.Delete(ctx, recipeID); err != nil {
		if stderrors.Is(err, recipe.ErrRecipeNotFound) {
			return errors.NewRecipeNotFoundError(recipeID.String())
		}
		return errors.NewDatabaseError("delete recipe", err)
	}

	entity.MarkDeleted()
	s.publishEvents(ctx, entity.Events())
	return nil
}

// SeedCatalog replaces the catalog with the reference recipes
func (s *RecipeService) SeedCatalog(ctx context.Context) (int, error) {
	recipes, err := ReferenceRecipes()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build reference recipes")
	}

	if err := s.recipeRepo.ReplaceAll(ctx, recipes); err != nil {
		return 0, errors.NewDatabaseError("replace catalog", err)
	}

	for _, r := range recipes {
		s.publishEvents(ctx, r.Events())
	}
	// ReplaceAll also removed recipes that raised no event
	s.InvalidateCatalog(ctx)

	s.logger.Info("Recipe catalog seeded", zap.Int("count", len(recipes)))
	return len(recipes), nil
}

// EnsureCatalog inserts the reference recipes when the catalog is empty
func (s *RecipeService) EnsureCatalog(ctx context.Context) (int, error) {
	count, err := s.recipeRepo.Count(ctx)
	if err != nil {
		return 0, errors.NewDatabaseError("count recipes", err)
	}
	if count > 0 {
		return 0, nil
	}

	recipes, err := ReferenceRecipes()
	if err != nil {
		return 0, errors.Wrap(err, "failed to build reference recipes")
	}
	if err := s.recipeRepo.BulkCreate(ctx, recipes); err != nil {
		return 0, errors.NewDatabaseError("insert reference recipes", err)
	}
	s.InvalidateCatalog(ctx)

	s.logger.Info("Inserted reference recipes into empty catalog", zap.Int("count", len(recipes)))
	return len(recipes), nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	entity, err := s.findRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	dto := EntityToDTO(entity)
	return &dto, nil
}

// ListRecipes returns the catalog in store order
func (s *RecipeService) ListRecipes(ctx context.Context) ([]inbound.RecipeDTO, error) {
	catalog, _, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]inbound.RecipeDTO, 0, len(catalog))
	for _, r := range catalog {
		dtos = append(dtos, EntityToDTO(r))
	}
	return dtos, nil
}

// GetRecommendations ranks the whole catalog against the user's pantry
func (s *RecipeService) GetRecommendations(ctx context.Context, userID uuid.UUID) ([]inbound.RankedRecipeDTO, error) {
	items, err := s.pantryRepo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, errors.NewDatabaseError("load pantry", err)
	}

	ranked, err := s.RankPantry(ctx, items)
	if err != nil {
		return nil, err
	}
	return RankedToDTOs(ranked), nil
}

// RankPantry scores every catalog recipe against the given pantry items and
// returns them best match first
func (s *RecipeService) RankPantry(ctx context.Context, items []*pantry.Item) ([]matching.RankedRecipe, error) {
	catalog, source, err := s.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	p := matching.PantryFromItems(items)

	ctx, span := tracer.Start(ctx, "matching.rank")
	defer span.End()
	span.SetAttributes(
		attribute.Int("matching.catalog_size", len(catalog)),
		attribute.Int("matching.pantry_size", p.Len()),
		attribute.String("matching.catalog_source", source),
	)

	start := time.Now()
	ranked := matching.RankRecipes(catalog, p)
	elapsed := time.Since(start)

	percentages := make([]int, 0, len(ranked))
	for _, r := range ranked {
		percentages = append(percentages, r.Match.Percentage)
	}
	if s.metrics != nil {
		s.metrics.RankingCompleted(source, p.Len(), len(catalog), percentages, elapsed)
	}

	if len(ranked) > 0 {
		span.SetAttributes(attribute.Int("matching.best_percentage", ranked[0].Match.Percentage))
	}
	span.SetStatus(codes.Ok, "")

	s.logger.Debug("Ranked catalog",
		zap.Int("catalog_size", len(catalog)),
		zap.Int("pantry_size", p.Len()),
		zap.String("source", source),
		zap.Duration("elapsed", elapsed),
	)
	return ranked, nil
}

// InvalidateCatalog drops the cached catalog snapshot
func (s *RecipeService) InvalidateCatalog(ctx context.Context) {
	if err := s.cache.Delete(ctx, CatalogCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate catalog cache", zap.Error(err))
	}
}

// loadCatalog reads the catalog snapshot from the cache, falling back to the store
func (s *RecipeService) loadCatalog(ctx context.Context) ([]*recipe.Recipe, string, error) {
	data, err := s.cache.Get(ctx, CatalogCacheKey)
	switch {
	case err == nil:
		var records []inbound.RecipeDTO
		if jsonErr := json.Unmarshal(data, &records); jsonErr == nil {
			s.recordCache("get", "hit")
			catalog := make([]*recipe.Recipe, 0, len(records))
			for _, rec := range records {
				catalog = append(catalog, DTOToEntity(rec))
			}
			return catalog, "cache", nil
		}
		s.logger.Warn("Discarding undecodable catalog snapshot")
		s.recordCache("get", "error")
	case stderrors.Is(err, outbound.ErrCacheMiss):
		s.recordCache("get", "miss")
	default:
		s.logger.Warn("Catalog cache read failed", zap.Error(err))
		s.recordCache("get", "error")
	}

	catalog, err := s.recipeRepo.FindAll(ctx)
	if err != nil {
		return nil, "", errors.NewDatabaseError("list recipes", err)
	}

	records := make([]inbound.RecipeDTO, 0, len(catalog))
	for _, r := range catalog {
		records = append(records, EntityToDTO(r))
	}
	if data, err := json.Marshal(records); err == nil {
		if err := s.cache.Set(ctx, CatalogCacheKey, data, s.catalogTTL); err != nil {
			s.logger.Warn("Catalog cache write failed", zap.Error(err))
			s.recordCache("set", "error")
		} else {
			s.recordCache("set", "ok")
		}
	}

	return catalog, "store", nil
}

func (s *RecipeService) findRecipe(ctx context.Context, recipeID uuid.UUID) (*recipe.Recipe, error) {
	entity, err := s.recipeRepo.FindByID(ctx, recipeID)
	if err != nil {
		if stderrors.Is(err, recipe.ErrRecipeNotFound) {
			return nil, errors.NewRecipeNotFoundError(recipeID.String())
		}
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	return entity, nil
}

func (s *RecipeService) publishEvents(ctx context.Context, events []shared.DomainEvent) {
	if len(events) == 0 {
		return
	}
	if err := s.events.Dispatch(ctx, events...); err != nil {
		s.logger.Error("Failed to publish events", zap.Error(err))
	}
}

func (s *RecipeService) recordCache(operation, status string) {
	if s.metrics != nil {
		s.metrics.CacheOperation(operation, status)
	}
}
