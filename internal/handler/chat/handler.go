package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/soulsync-ai/backend/internal/model/chat"
	chatService "github.com/soulsync-ai/backend/internal/service/chat"
	"github.com/soulsync-ai/backend/pkg/utils"
)

const actionGetJoke = "get_joke"

// Handler exposes the chat orchestration endpoint.
type Handler struct {
	svc *chatService.Service
}

// New creates the chat handler.
func New(svc *chatService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers the chat endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

type chatPayload struct {
	Messages []chat.Message `json:"messages"`
	Language string         `json:"language"`
	Action   string         `json:"action,omitempty"`
}

// handleChat dispatches a request to the joke path or the chat path. This is
// the last line of defense: every downstream failure must come back as a
// well-formed error payload, never a crash.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chatPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Action == actionGetJoke {
		jokeText := h.svc.Joke(r.Context(), payload.Language)
		utils.RespondJSON(w, http.StatusOK, map[string]string{"joke": jokeText})
		return
	}

	result, err := h.svc.Respond(r.Context(), payload.Messages, payload.Language)
	if err != nil {
		switch {
		case errors.Is(err, chatService.ErrEmptyTranscript):
			utils.RespondError(w, http.StatusBadRequest, "messages are required for a chat")
		case errors.Is(err, chatService.ErrModelUnavailable):
			utils.RespondError(w, http.StatusServiceUnavailable, "chat model unavailable")
		default:
			logrus.Errorf("[chat] turn failed: %v", err)
			utils.RespondError(w, http.StatusInternalServerError, "unexpected server error")
		}
		return
	}

	utils.RespondJSON(w, http.StatusOK, result)
}
