package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "compliance-ai/backend/internal/errors"
	"compliance-ai/backend/internal/model"
	"compliance-ai/backend/internal/service"
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is returned by operations that have no resource to return.
type StatusResponse struct {
	Status string `json:"status"`
}

// SubmitMessageRequest is a question sent to a conversation.
type SubmitMessageRequest struct {
	Question string `json:"question" validate:"required,max=8000" example:"Quali sono le non conformità più gravi?"`
	// Name is the display name of the assessed machine, used when the
	// conversation is created by this request.
	Name string `json:"name,omitempty" validate:"max=200" example:"Pressa idraulica P-200"`
}

// BeginEditRequest selects the user message to edit.
type BeginEditRequest struct {
	MessageID string `json:"message_id" validate:"required" example:"3f1c2a9e-1b7d-4c51-9d0e-5a2f8c6b7e10"`
}

// UpdateDraftRequest replaces the text being edited. An empty draft is
// accepted but cannot be saved.
type UpdateDraftRequest struct {
	Draft string `json:"draft" validate:"max=8000" example:"Quali rischi comporta la mancanza del manuale?"`
}

// SystemPromptRequest carries a new system prompt override. An empty value
// restores the default.
type SystemPromptRequest struct {
	SystemPrompt string `json:"system_prompt" validate:"max=12000" example:"Rispondi sempre citando l'articolo della norma."`
}

// NormalizeFindingsRequest carries findings in any of the shapes produced by
// an assessment: a list, an object, a bulleted string or a scalar.
type NormalizeFindingsRequest struct {
	Raw json.RawMessage `json:"raw" swaggertype:"object"`
}

// NormalizeFindingsResponse lists display-ready findings.
type NormalizeFindingsResponse struct {
	Findings []service.NormalizedFinding `json:"findings"`
}

// SuggestionsRequest carries the non conformities and recommendations of an
// assessment, in the same loose shapes accepted by NormalizeFindingsRequest.
type SuggestionsRequest struct {
	Findings        json.RawMessage `json:"findings" swaggertype:"object"`
	Recommendations json.RawMessage `json:"recommendations" swaggertype:"object"`
}

// SuggestionsResponse lists the quick questions offered in an assessment chat.
type SuggestionsResponse struct {
	Suggestions []model.Suggestion `json:"suggestions"`
}

// respondWithError maps service errors to HTTP status codes and writes a
// standard JSON error body. Details of unexpected errors are only logged.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "The requested resource was not found."
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = err.Error()
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "You do not have permission to perform this action."
	default:
		statusCode = http.StatusInternalServerError
		message = "An unexpected internal server error occurred."
	}

	slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondWithJSON marshals payload and writes it with the given status code.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeAndValidate reads a JSON body into dst and runs the struct validator.
func decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation)
	}
	return validateRequest(dst)
}

// threadKeyParam reads the {key} URL parameter: "global" or an assessment id.
func threadKeyParam(r *http.Request) (model.ThreadKey, error) {
	key, err := model.ParseThreadKey(chi.URLParam(r, "key"))
	if err != nil {
		return model.ThreadKey{}, fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
	}
	return key, nil
}
