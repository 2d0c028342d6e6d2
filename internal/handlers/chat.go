package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"chatrelay-backend/internal/models"
	"chatrelay-backend/internal/prompt"
	"chatrelay-backend/internal/services"
	"chatrelay-backend/internal/session"
)

const sessionCookieName = "session_id"

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ChatHandler struct {
	store        session.Store
	gemini       generator
	local        *services.LocalResponder
	systemPrompt string
}

func NewChatHandler(store session.Store, gemini generator, local *services.LocalResponder, systemPrompt string) *ChatHandler {
	return &ChatHandler{
		store:        store,
		gemini:       gemini,
		local:        local,
		systemPrompt: systemPrompt,
	}
}

// Chat appends the user message to the session's history, obtains a reply
// (locally for date/time questions, otherwise from Gemini), appends it, and
// returns the reply with the full truncated history. The session identifier
// travels as a cookie. History in the request body is ignored: the store is
// authoritative.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Message is required", r))
		return
	}

	sessionID := h.store.ResolveOrCreate(readSessionID(r))

	h.store.Append(sessionID, "You: "+req.Message)

	reply, handled := h.local.TryHandle(req.Message)
	if !handled {
		p := prompt.Build(h.systemPrompt, h.store.Get(sessionID))
		var err error
		reply, err = h.gemini.Generate(r.Context(), p)
		if err != nil {
			// The user line already landed in history and stays there.
			setSessionCookie(w, sessionID)
			handleServiceError(w, r, err)
			return
		}
	}

	h.store.Append(sessionID, "Assistant: "+reply)

	setSessionCookie(w, sessionID)
	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response:  reply,
		History:   h.store.Get(sessionID),
		SessionID: sessionID,
	})
}

// ClearChat empties the whole store. This clears every session, not just the
// caller's; the endpoint has always behaved this way.
func (h *ChatHandler) ClearChat(w http.ResponseWriter, r *http.Request) {
	h.store.ClearAll()
	writeJSON(w, http.StatusOK, models.ClearResponse{Message: "Chat history cleared"})
}

func readSessionID(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
