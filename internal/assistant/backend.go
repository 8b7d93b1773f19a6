package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"compliance-ai/backend/internal/findings"
	"compliance-ai/backend/internal/model"
)

// BackendClient calls the REST answering service.
type BackendClient struct {
	client  *http.Client
	baseURL string
}

// NewBackendClient creates a client for the service rooted at baseURL
// (for example "http://backend:8080/api").
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type chatResponse struct {
	Answer  string `json:"answer"`
	Sources []any  `json:"sources"`
	Error   string `json:"error"`
}

type systemPromptResponse struct {
	SystemPrompt string `json:"systemPrompt"`
}

// AskAssessment posts a question about one assessment.
func (c *BackendClient) AskAssessment(ctx context.Context, assessmentID int64, req AskRequest) (*Answer, error) {
	body := struct {
		Question string               `json:"question"`
		History  []model.HistoryEntry `json:"history"`
	}{Question: req.Question, History: nonNilHistory(req.History)}

	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/assessments/%d/chat", assessmentID), body, &resp); err != nil {
		return nil, err
	}
	return &Answer{Text: resp.Answer, Sources: []model.Source{}}, nil
}

// AskDocuments posts a question to the document chatbot.
func (c *BackendClient) AskDocuments(ctx context.Context, req AskRequest) (*Answer, error) {
	req.History = nonNilHistory(req.History)

	var resp chatResponse
	if err := c.do(ctx, http.MethodPost, "/chatbot/chat", req, &resp); err != nil {
		return nil, err
	}

	sources := make([]model.Source, 0, len(resp.Sources))
	for _, raw := range resp.Sources {
		if raw == nil {
			continue
		}
		sources = append(sources, findings.NormalizeSource(raw))
	}
	return &Answer{Text: resp.Answer, Sources: sources}, nil
}

// DefaultSystemPrompt fetches the instructions the document chatbot uses
// when no override is given.
func (c *BackendClient) DefaultSystemPrompt(ctx context.Context) (string, error) {
	var resp systemPromptResponse
	if err := c.do(ctx, http.MethodGet, "/chatbot/system-prompt", nil, &resp); err != nil {
		return "", err
	}
	return resp.SystemPrompt, nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, payload, out any) error {
	var reqBody io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("could not marshal request: %w", err)
		}
		reqBody = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("could not create http request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			slog.Warn("Failed to close assistant response body", "error", cErr)
		}
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(bodyBytes, &errResp)
		return &BackendError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(errResp.Error)}
	}

	// An unreadable success body is treated as an empty answer.
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		slog.Debug("Assistant returned a non-JSON body", "path", path, "error", err)
	}
	return nil
}

func nonNilHistory(h []model.HistoryEntry) []model.HistoryEntry {
	if h == nil {
		return []model.HistoryEntry{}
	}
	return h
}
