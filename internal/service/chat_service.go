package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"compliance-ai/backend/internal/assistant"
	"compliance-ai/backend/internal/chat"
	app_errors "compliance-ai/backend/internal/errors"
	"compliance-ai/backend/internal/export"
	"compliance-ai/backend/internal/model"
)

const (
	// PendingText is shown in the assistant placeholder while waiting.
	PendingText = "Sto elaborando…"
	// EmptyAnswerText replaces a blank answer.
	EmptyAnswerText = "Risposta non disponibile."
	// ChatErrorText is used when a failure carries no message of its own.
	ChatErrorText = "Errore durante la chat"

	failureMarker = "✗ "
)

// SubmitRequest is a question typed by the user in one conversation.
type SubmitRequest struct {
	Key         model.ThreadKey
	DisplayName string
	Question    string
}

// ExportFile is a rendered conversation ready to be downloaded.
type ExportFile struct {
	Filename     string
	ContentType  string
	Content      []byte
	MessageCount int
	Status       string
}

// ChatService runs the conversations shown next to an assessment and in the
// global document chatbot.
type ChatService struct {
	store         *chat.Store
	answerer      assistant.Answerer
	settings      *SettingsService
	exporter      *export.Exporter
	historyWindow int
	now           func() time.Time
}

// NewChatService creates a new ChatService. A non-positive historyWindow
// uses the default window.
func NewChatService(store *chat.Store, answerer assistant.Answerer, settings *SettingsService, exporter *export.Exporter, historyWindow int) *ChatService {
	return &ChatService{
		store:         store,
		answerer:      answerer,
		settings:      settings,
		exporter:      exporter,
		historyWindow: historyWindow,
		now:           time.Now,
	}
}

// Thread returns the conversation for key, creating it on first access.
func (s *ChatService) Thread(_ context.Context, key model.ThreadKey, displayName string) (*model.Thread, error) {
	thread := s.store.Ensure(key, displayName)
	return &thread, nil
}

// Reset starts the conversation over with a fresh greeting.
func (s *ChatService) Reset(_ context.Context, key model.ThreadKey) (*model.Thread, error) {
	thread := s.store.Reset(key)
	slog.Info("Conversation reset", "thread", key.String())
	return &thread, nil
}

// Submit records the question, asks the answering service and records the
// answer. Failures of the answering service end up in the conversation as an
// error line and are not returned. Only one question per conversation may be
// in flight.
func (s *ChatService) Submit(ctx context.Context, req SubmitRequest) (*model.Thread, error) {
	question := strings.TrimSpace(req.Question)
	if question == "" {
		return nil, fmt.Errorf("%w: question must not be empty", app_errors.ErrValidation)
	}

	if !s.store.Acquire(req.Key) {
		return nil, fmt.Errorf("%w: a question is already being answered in this conversation", app_errors.ErrConflict)
	}
	defer s.store.Release(req.Key)

	s.store.Ensure(req.Key, req.DisplayName)
	history := s.store.History(req.Key, s.historyWindow)
	s.store.Append(req.Key, model.RoleUser, question, false)
	pendingID := s.store.Append(req.Key, model.RoleAssistant, PendingText, true)

	// The answer is recorded even if the caller goes away.
	askCtx := context.WithoutCancel(ctx)
	answer, err := s.ask(askCtx, req.Key, assistant.AskRequest{Question: question, History: history})

	settled := false
	patch := chat.MessagePatch{Pending: &settled}
	if err != nil {
		slog.Warn("Assistant request failed", "thread", req.Key.String(), "error", err)
		text := failureMarker + failureMessage(err)
		patch.Text = &text
	} else {
		text := strings.TrimSpace(answer.Text)
		if text == "" {
			text = EmptyAnswerText
		}
		patch.Text = &text
		patch.Sources = answer.Sources
	}
	s.store.Patch(req.Key, pendingID, patch)

	thread, ok := s.store.Thread(req.Key)
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s disappeared", app_errors.ErrInternal, req.Key)
	}
	return &thread, nil
}

func (s *ChatService) ask(ctx context.Context, key model.ThreadKey, req assistant.AskRequest) (*assistant.Answer, error) {
	if key.IsGlobal() {
		if s.settings != nil {
			req.SystemPrompt = s.settings.Override(ctx)
		}
		return s.answerer.AskDocuments(ctx, req)
	}
	return s.answerer.AskAssessment(ctx, key.AssessmentID(), req)
}

func failureMessage(err error) string {
	var backendErr *assistant.BackendError
	if errors.As(err, &backendErr) && backendErr.Message != "" {
		return backendErr.Message
	}
	return ChatErrorText
}

// BeginEdit starts editing a user message.
func (s *ChatService) BeginEdit(_ context.Context, key model.ThreadKey, messageID string) (*chat.EditState, error) {
	state, err := s.store.BeginEdit(key, messageID)
	if err != nil {
		return nil, mapEditError(err)
	}
	return &state, nil
}

// UpdateDraft changes the text of the edit in progress on key.
func (s *ChatService) UpdateDraft(_ context.Context, key model.ThreadKey, draft string) (*chat.EditState, error) {
	if err := s.checkActiveEdit(key); err != nil {
		return nil, err
	}
	state, err := s.store.UpdateDraft(draft)
	if err != nil {
		return nil, mapEditError(err)
	}
	return &state, nil
}

// CancelEdit drops the edit in progress on key without changing anything.
func (s *ChatService) CancelEdit(_ context.Context, key model.ThreadKey) error {
	if err := s.checkActiveEdit(key); err != nil {
		return err
	}
	s.store.CancelEdit()
	return nil
}

// SaveEdit applies the edit in progress on key. Later messages are marked
// stale; nothing is asked again automatically.
func (s *ChatService) SaveEdit(_ context.Context, key model.ThreadKey) (*chat.EditResult, error) {
	if err := s.checkActiveEdit(key); err != nil {
		return nil, err
	}
	result, err := s.store.SaveEdit()
	if err != nil {
		return nil, mapEditError(err)
	}
	slog.Info("Message edited", "thread", key.String(), "message_id", result.Message.ID, "stale", result.StaleCount)
	return &result, nil
}

func (s *ChatService) checkActiveEdit(key model.ThreadKey) error {
	state, ok := s.store.ActiveEdit()
	if !ok || state.Key != key {
		return fmt.Errorf("%w: no message is being edited in this conversation", app_errors.ErrConflict)
	}
	return nil
}

func mapEditError(err error) error {
	switch {
	case errors.Is(err, chat.ErrMessageNotFound):
		return fmt.Errorf("%w: %v", app_errors.ErrNotFound, err)
	case errors.Is(err, chat.ErrNotEditable), errors.Is(err, chat.ErrEmptyDraft):
		return fmt.Errorf("%w: %v", app_errors.ErrValidation, err)
	case errors.Is(err, chat.ErrNoActiveEdit):
		return fmt.Errorf("%w: %v", app_errors.ErrConflict, err)
	default:
		return fmt.Errorf("%w: %v", app_errors.ErrInternal, err)
	}
}

// Export renders the settled messages of key as CSV.
func (s *ChatService) Export(_ context.Context, key model.ThreadKey) (*ExportFile, error) {
	snapshot := export.BuildSnapshot(s.store.Messages(key), s.now())
	return &ExportFile{
		Filename:     s.exporter.Filename(snapshot),
		ContentType:  export.ContentType,
		Content:      s.exporter.CSV(snapshot),
		MessageCount: len(snapshot.Rows),
		Status:       export.SuccessStatus(len(snapshot.Rows)),
	}, nil
}
