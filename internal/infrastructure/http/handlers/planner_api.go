package handlers

import (
	"net/http"

	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"go.uber.org/zap"
)

// PlannerAPIHandlers handles weekly meal plan and dashboard requests
type PlannerAPIHandlers struct {
	plannerService   inbound.PlannerService
	dashboardService inbound.DashboardService
	logger           *zap.Logger
}

// NewPlannerAPIHandlers creates a new planner API handlers instance
func NewPlannerAPIHandlers(plannerService inbound.PlannerService, dashboardService inbound.DashboardService, logger *zap.Logger) *PlannerAPIHandlers {
	return &PlannerAPIHandlers{
		plannerService:   plannerService,
		dashboardService: dashboardService,
		logger:           logger.Named("planner-api"),
	}
}

// SavePlanRequest replaces every entry of the plan
type SavePlanRequest struct {
	Meals []inbound.MealEntryDTO `json:"meals" validate:"required"`
}

// GetPlan handles GET /api/planner
func (h *PlannerAPIHandlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	meals, err := h.plannerService.GetPlan(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, meals)
}

// SavePlan handles POST /api/planner
func (h *PlannerAPIHandlers) SavePlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req SavePlanRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	meals, err := h.plannerService.SavePlan(r.Context(), userID, req.Meals)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, meals)
}

// Dashboard handles GET /api/dashboard
func (h *PlannerAPIHandlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	summary, err := h.dashboardService.GetSummary(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
