// Package assistant talks to the service that answers questions about an
// assessment or about the indexed regulatory documents.
package assistant

import (
	"context"
	"fmt"

	"compliance-ai/backend/internal/model"
)

// AskRequest is a question plus the conversation so far.
type AskRequest struct {
	Question string               `json:"question"`
	History  []model.HistoryEntry `json:"history"`
	// SystemPrompt overrides the default instructions of the document chatbot.
	SystemPrompt string `json:"systemPrompt,omitempty"`
}

// Answer is the reply of the answering service.
type Answer struct {
	Text    string
	Sources []model.Source
}

// Answerer is implemented by every answering backend.
type Answerer interface {
	AskAssessment(ctx context.Context, assessmentID int64, req AskRequest) (*Answer, error)
	AskDocuments(ctx context.Context, req AskRequest) (*Answer, error)
	DefaultSystemPrompt(ctx context.Context) (string, error)
}

// BackendError is returned when the answering service rejects a request.
// Message carries the service's own explanation and may be empty.
type BackendError struct {
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("assistant: backend returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("assistant: backend returned status %d: %s", e.StatusCode, e.Message)
}
