package api

import (
	"net/http"

	"compliance-ai/backend/internal/interfaces"
)

// SettingsHandler serves the system prompt of the document chatbot.
type SettingsHandler struct {
	service interfaces.SettingsService
}

func NewSettingsHandler(svc interfaces.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// GetSystemPrompt godoc
// @Summary      Get the system prompt
// @Description  Returns the default prompt, the stored override and the prompt in effect.
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.PromptSettings
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/settings/system-prompt [get]
func (h *SettingsHandler) GetSystemPrompt(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.SystemPrompt(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSystemPrompt godoc
// @Summary      Save the system prompt
// @Description  Stores an override. An empty prompt, or one equal to the default, restores the default. A storage failure is reported with saved=false.
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request  body  SystemPromptRequest  true  "New prompt"
// @Success      200      {object}  service.SaveResult
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/settings/system-prompt [put]
func (h *SettingsHandler) UpdateSystemPrompt(w http.ResponseWriter, r *http.Request) {
	var req SystemPromptRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.service.SaveSystemPrompt(r.Context(), req.SystemPrompt)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// ResetSystemPrompt godoc
// @Summary      Restore the default system prompt
// @Tags         Settings
// @Produce      json
// @Success      200  {object}  service.SaveResult
// @Router       /v1/settings/system-prompt [delete]
func (h *SettingsHandler) ResetSystemPrompt(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ResetSystemPrompt(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}
