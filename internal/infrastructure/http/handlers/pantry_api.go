package handlers

import (
	"net/http"

	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"go.uber.org/zap"
)

// PantryAPIHandlers handles pantry requests. Every mutation responds with the full pantry.
type PantryAPIHandlers struct {
	pantryService inbound.PantryService
	logger        *zap.Logger
}

// NewPantryAPIHandlers creates a new pantry API handlers instance
func NewPantryAPIHandlers(pantryService inbound.PantryService, logger *zap.Logger) *PantryAPIHandlers {
	return &PantryAPIHandlers{
		pantryService: pantryService,
		logger:        logger.Named("pantry-api"),
	}
}

// PantryItemRequest carries pantry item fields. On update, empty fields are left unchanged.
type PantryItemRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Category string `json:"category"`
	Quantity string `json:"quantity" validate:"max=100"`
	Expiry   string `json:"expiry"`
	Color    string `json:"color"`
}

func (req PantryItemRequest) command() inbound.PantryItemCommand {
	return inbound.PantryItemCommand{
		Name:     req.Name,
		Category: req.Category,
		Quantity: req.Quantity,
		Expiry:   req.Expiry,
		Color:    req.Color,
	}
}

// ListItems handles GET /api/pantry
func (h *PantryAPIHandlers) ListItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	items, err := h.pantryService.ListItems(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// AddItem handles POST /api/pantry
func (h *PantryAPIHandlers) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req PantryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.pantryService.AddItem(r.Context(), userID, req.command())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, items)
}

// UpdateItem handles PUT /api/pantry/{id}
func (h *PantryAPIHandlers) UpdateItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, errors.NewPantryItemNotFoundError)
	if !ok {
		return
	}

	var req PantryItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	items, err := h.pantryService.UpdateItem(r.Context(), userID, itemID, req.command())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// RemoveItem handles DELETE /api/pantry/{id}
func (h *PantryAPIHandlers) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	itemID, ok := pathID(w, r, errors.NewPantryItemNotFoundError)
	if !ok {
		return
	}

	items, err := h.pantryService.RemoveItem(r.Context(), userID, itemID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}
