package interfaces

import (
	"context"
	"encoding/json"

	"compliance-ai/backend/internal/chat"
	"compliance-ai/backend/internal/model"
	"compliance-ai/backend/internal/service"
)

// Contracts between the API layer and the services, mocked in handler tests.

// ChatService runs the assessment and document conversations.
type ChatService interface {
	Thread(ctx context.Context, key model.ThreadKey, displayName string) (*model.Thread, error)
	Reset(ctx context.Context, key model.ThreadKey) (*model.Thread, error)
	Submit(ctx context.Context, req service.SubmitRequest) (*model.Thread, error)
	BeginEdit(ctx context.Context, key model.ThreadKey, messageID string) (*chat.EditState, error)
	UpdateDraft(ctx context.Context, key model.ThreadKey, draft string) (*chat.EditState, error)
	CancelEdit(ctx context.Context, key model.ThreadKey) error
	SaveEdit(ctx context.Context, key model.ThreadKey) (*chat.EditResult, error)
	Export(ctx context.Context, key model.ThreadKey) (*service.ExportFile, error)
}

// SettingsService manages the document chatbot's system prompt.
type SettingsService interface {
	SystemPrompt(ctx context.Context) (*service.PromptSettings, error)
	SaveSystemPrompt(ctx context.Context, text string) (*service.SaveResult, error)
	ResetSystemPrompt(ctx context.Context) (*service.SaveResult, error)
}

// FindingService normalizes assessment findings.
type FindingService interface {
	Normalize(ctx context.Context, raw json.RawMessage) ([]service.NormalizedFinding, error)
	Suggestions(ctx context.Context, findingsRaw, recommendationsRaw json.RawMessage) ([]model.Suggestion, error)
}
