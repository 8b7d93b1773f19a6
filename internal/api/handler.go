package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"compliance-ai/backend/internal/export"
	"compliance-ai/backend/internal/interfaces"
	"compliance-ai/backend/internal/service"
)

// Headers set on a CSV export next to the attachment itself.
const (
	HeaderExportStatus = "X-Export-Status"
	HeaderMessageCount = "X-Message-Count"
)

// ChatHandler serves the assessment conversations and the global document
// chatbot. Routes use the {key} parameter: "global" or an assessment id.
type ChatHandler struct {
	service interfaces.ChatService
}

func NewChatHandler(svc interfaces.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// GetThread godoc
// @Summary      Get a conversation
// @Description  Returns the conversation, creating it with a greeting on first access.
// @Tags         Threads
// @Produce      json
// @Param        key   path   string  true   "Assessment id or 'global'"
// @Param        name  query  string  false  "Display name of the assessed machine"
// @Success      200   {object}  model.Thread
// @Failure      400   {object}  ErrorResponse
// @Router       /v1/threads/{key} [get]
func (h *ChatHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	thread, err := h.service.Thread(r.Context(), key, r.URL.Query().Get("name"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, thread)
}

// ResetThread godoc
// @Summary      Start a conversation over
// @Description  Discards every message and starts again from the greeting. The display name is kept.
// @Tags         Threads
// @Produce      json
// @Param        key  path  string  true  "Assessment id or 'global'"
// @Success      200  {object}  model.Thread
// @Failure      400  {object}  ErrorResponse
// @Router       /v1/threads/{key}/reset [post]
func (h *ChatHandler) ResetThread(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	thread, err := h.service.Reset(r.Context(), key)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, thread)
}

// HandleSubmitMessage godoc
// @Summary      Ask a question
// @Description  Records the question, waits for the answer and returns the updated conversation. A failed answer is recorded in the conversation, not returned as an error.
// @Tags         Threads
// @Accept       json
// @Produce      json
// @Param        key      path  string                true  "Assessment id or 'global'"
// @Param        request  body  SubmitMessageRequest  true  "Question"
// @Success      200      {object}  model.Thread
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse "A question is already being answered"
// @Router       /v1/threads/{key}/messages [post]
func (h *ChatHandler) HandleSubmitMessage(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req SubmitMessageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}

	thread, err := h.service.Submit(r.Context(), service.SubmitRequest{
		Key:         key,
		DisplayName: req.Name,
		Question:    req.Question,
	})
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, thread)
}

// BeginEdit godoc
// @Summary      Start editing a message
// @Description  Opens the edit of a sent user message. Only one edit can be open at a time.
// @Tags         Edit
// @Accept       json
// @Produce      json
// @Param        key      path  string            true  "Assessment id or 'global'"
// @Param        request  body  BeginEditRequest  true  "Message to edit"
// @Success      200      {object}  chat.EditState
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /v1/threads/{key}/edit [post]
func (h *ChatHandler) BeginEdit(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req BeginEditRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	state, err := h.service.BeginEdit(r.Context(), key, req.MessageID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

// UpdateDraft godoc
// @Summary      Change the edited text
// @Tags         Edit
// @Accept       json
// @Produce      json
// @Param        key      path  string              true  "Assessment id or 'global'"
// @Param        request  body  UpdateDraftRequest  true  "New draft"
// @Success      200      {object}  chat.EditState
// @Failure      400      {object}  ErrorResponse
// @Failure      409      {object}  ErrorResponse "No edit in progress"
// @Router       /v1/threads/{key}/edit [put]
func (h *ChatHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	var req UpdateDraftRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	state, err := h.service.UpdateDraft(r.Context(), key, req.Draft)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, state)
}

// CancelEdit godoc
// @Summary      Cancel the edit
// @Tags         Edit
// @Produce      json
// @Param        key  path  string  true  "Assessment id or 'global'"
// @Success      200  {object}  StatusResponse
// @Failure      409  {object}  ErrorResponse "No edit in progress"
// @Router       /v1/threads/{key}/edit [delete]
func (h *ChatHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.service.CancelEdit(r.Context(), key); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SaveEdit godoc
// @Summary      Save the edit
// @Description  Writes the draft into the message and marks every later message as stale. Answers are not regenerated.
// @Tags         Edit
// @Produce      json
// @Param        key  path  string  true  "Assessment id or 'global'"
// @Success      200  {object}  chat.EditResult
// @Failure      400  {object}  ErrorResponse "Empty draft"
// @Failure      409  {object}  ErrorResponse "No edit in progress"
// @Router       /v1/threads/{key}/edit/save [post]
func (h *ChatHandler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	result, err := h.service.SaveEdit(r.Context(), key)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// ExportThread godoc
// @Summary      Download a conversation
// @Description  Returns the settled messages as a CSV attachment. The outcome message is sent in the X-Export-Status header.
// @Tags         Threads
// @Produce      text/csv
// @Param        key  path  string  true  "Assessment id or 'global'"
// @Success      200  {file}    file
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/threads/{key}/export [get]
func (h *ChatHandler) ExportThread(w http.ResponseWriter, r *http.Request) {
	key, err := threadKeyParam(r)
	if err != nil {
		respondWithError(w, err)
		return
	}
	file, err := h.service.Export(r.Context(), key)
	if err != nil {
		slog.Error("Conversation export failed", "thread", key.String(), "error", err)
		respondWithJSON(w, http.StatusInternalServerError, ErrorResponse{Error: export.FailureStatus})
		return
	}

	w.Header().Set("Content-Type", file.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Content)))
	w.Header().Set(HeaderExportStatus, file.Status)
	w.Header().Set(HeaderMessageCount, strconv.Itoa(file.MessageCount))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(file.Content); err != nil {
		slog.Warn("Could not write export, client might have disconnected", "thread", key.String(), "error", err)
	}
}
