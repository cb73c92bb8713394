package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/culinaryos/kitchen/internal/application/assistant"
	"github.com/culinaryos/kitchen/internal/ports/inbound"
	"github.com/culinaryos/kitchen/pkg/errors"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	chatReadLimit   = 4096
	chatIdleTimeout = 5 * time.Minute
)

// AIAPIHandlers handles chef chat, dish suggestion, video search and substitution requests
type AIAPIHandlers struct {
	assistant inbound.AssistantService
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

// NewAIAPIHandlers creates a new AI API handlers instance. An empty or "*" origin list accepts any websocket origin.
func NewAIAPIHandlers(assistantService inbound.AssistantService, allowedOrigins []string, logger *zap.Logger) *AIAPIHandlers {
	return &AIAPIHandlers{
		assistant: assistantService,
		upgrader: websocket.Upgrader{
			CheckOrigin:     originChecker(allowedOrigins),
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger.Named("ai-api"),
	}
}

// ChatRequest is a message for the chef
type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

// ChatResponse carries the chef's reply
type ChatResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// SuggestResponse carries a suggested dish
type SuggestResponse struct {
	Suggestion string `json:"suggestion"`
}

// SubstituteRequest names the ingredient to swap
type SubstituteRequest struct {
	Ingredient string `json:"ingredient" validate:"required"`
}

// SearchVideos handles GET /api/ai/videos?query=
func (h *AIAPIHandlers) SearchVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.assistant.SearchVideos(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, videos)
}

// Chat handles POST /api/ai/chat. Provider failures still answer with a reply, under the failure's status.
func (h *AIAPIHandlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	reply, err := h.assistant.Chat(r.Context(), req.Message)
	if err != nil {
		if fallback, status, ok := replyFromError(err); ok {
			h.logger.Warn("Chat answered with fallback reply", zap.Int("status", status), zap.Error(err))
			writeJSON(w, status, ChatResponse{Reply: fallback})
			return
		}
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Reply: reply})
}

// Suggest handles POST /api/ai/suggest
func (h *AIAPIHandlers) Suggest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SuggestResponse{Suggestion: h.assistant.SuggestDish(r.Context())})
}

// Substitute handles POST /api/ai/substitute
func (h *AIAPIHandlers) Substitute(w http.ResponseWriter, r *http.Request) {
	var req SubstituteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, h.assistant.Substitute(r.Context(), req.Ingredient))
}

// ChatSocket handles GET /api/ai/chat/ws. Each text frame {message} is answered with {reply}.
func (h *AIAPIHandlers) ChatSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(chatReadLimit)
	ctx := r.Context()

	for {
		_ = conn.SetReadDeadline(time.Now().Add(chatIdleTimeout))

		var req ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("Chat socket closed unexpectedly", zap.Error(err))
			}
			return
		}

		resp := ChatResponse{}
		reply, err := h.assistant.Chat(ctx, req.Message)
		switch {
		case err == nil:
			resp.Reply = reply
		default:
			if fallback, _, ok := replyFromError(err); ok {
				resp.Reply = fallback
			}
			var appErr *errors.AppError
			if stderrors.As(err, &appErr) {
				resp.Error = string(appErr.Code)
			} else {
				resp.Error = string(errors.CodeInternal)
			}
		}

		if err := conn.WriteJSON(resp); err != nil {
			h.logger.Warn("Chat socket write failed", zap.Error(err))
			return
		}
	}
}

// replyFromError extracts the user-facing reply attached to a chat failure
func replyFromError(err error) (string, int, bool) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		return "", 0, false
	}
	reply, ok := appErr.Metadata[assistant.ReplyMetadataKey].(string)
	if !ok {
		return "", 0, false
	}
	return reply, appErr.StatusCode(), true
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" || len(allowed) == 0 {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
