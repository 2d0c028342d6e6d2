package models

// ChatRequest is the payload sent to the chat endpoint. History is accepted
// for compatibility with older clients but ignored: the server's session
// store is authoritative for conversation state.
type ChatRequest struct {
	Message string   `json:"message"`
	History []string `json:"history,omitempty"`
}

// ChatResponse is the reply from the assistant, together with the full
// (truncated) session history and the session identifier.
type ChatResponse struct {
	Response  string   `json:"response"`
	History   []string `json:"history"`
	SessionID string   `json:"session_id"`
}

// HealthResponse reports process liveness and whether the Gemini credential
// was supplied.
type HealthResponse struct {
	Status       string `json:"status"`
	GeminiKeySet bool   `json:"gemini_key_set"`
}

// ClearResponse acknowledges a store-wide history wipe.
type ClearResponse struct {
	Message string `json:"message"`
}

// API Error response
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
