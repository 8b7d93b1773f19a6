package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compliance-ai/backend/internal/model"
)

// TestBackendClient drives the client against an httptest server standing in
// for the answering service and checks both the requests it sends and how it
// reads the replies.
func TestBackendClient(t *testing.T) {
	var (
		capturedMethod, capturedPath string
		capturedBody                 map[string]any
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedMethod = r.Method
		capturedPath = r.URL.Path
		capturedBody = nil
		if r.Body != nil && r.Method == http.MethodPost {
			_ = json.NewDecoder(r.Body).Decode(&capturedBody)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/assessments/12/chat":
			_, err := w.Write([]byte(`{"answer":"Installare un riparo fisso."}`))
			assert.NoError(t, err)
		case "/api/assessments/13/chat":
			w.WriteHeader(http.StatusBadRequest)
			_, err := w.Write([]byte(`{"error":"Domanda troppo lunga"}`))
			assert.NoError(t, err)
		case "/api/assessments/14/chat":
			w.WriteHeader(http.StatusBadGateway)
			_, err := w.Write([]byte(`<html>bad gateway</html>`))
			assert.NoError(t, err)
		case "/api/assessments/15/chat":
			_, err := w.Write([]byte(`not json`))
			assert.NoError(t, err)
		case "/api/chatbot/chat":
			_, err := w.Write([]byte(`{"answer":"Vedi art. 10.","sources":[` +
				`{"reference":"Reg. UE 2023/1230","fileName":"reg.pdf","page":4,"chunk":"Il fabbricante...","confidence":0.77},` +
				`null,"Allegato III"]}`))
			assert.NoError(t, err)
		case "/api/chatbot/system-prompt":
			_, err := w.Write([]byte(`{"systemPrompt":"Sei un assistente."}`))
			assert.NoError(t, err)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewBackendClient(server.URL+"/api/", 5*time.Second)
	ctx := context.Background()
	history := []model.HistoryEntry{{Role: model.RoleUser, Content: "ciao"}}

	t.Run("AskAssessment", func(t *testing.T) {
		answer, err := client.AskAssessment(ctx, 12, AskRequest{Question: "Come risolvo?", History: history})

		require.NoError(t, err)
		assert.Equal(t, "Installare un riparo fisso.", answer.Text)
		assert.Empty(t, answer.Sources)
		assert.Equal(t, http.MethodPost, capturedMethod)
		assert.Equal(t, "/api/assessments/12/chat", capturedPath)
		assert.Equal(t, "Come risolvo?", capturedBody["question"])
		assert.Len(t, capturedBody["history"], 1)
		assert.NotContains(t, capturedBody, "systemPrompt")
	})

	t.Run("AskAssessment sends an empty history array", func(t *testing.T) {
		_, err := client.AskAssessment(ctx, 12, AskRequest{Question: "x"})
		require.NoError(t, err)
		assert.Equal(t, []any{}, capturedBody["history"])
	})

	t.Run("Backend error message is surfaced", func(t *testing.T) {
		_, err := client.AskAssessment(ctx, 13, AskRequest{Question: "x"})

		var backendErr *BackendError
		require.True(t, errors.As(err, &backendErr))
		assert.Equal(t, http.StatusBadRequest, backendErr.StatusCode)
		assert.Equal(t, "Domanda troppo lunga", backendErr.Message)
	})

	t.Run("Error without message", func(t *testing.T) {
		_, err := client.AskAssessment(ctx, 14, AskRequest{Question: "x"})

		var backendErr *BackendError
		require.True(t, errors.As(err, &backendErr))
		assert.Empty(t, backendErr.Message)
	})

	t.Run("Unreadable success body is an empty answer", func(t *testing.T) {
		answer, err := client.AskAssessment(ctx, 15, AskRequest{Question: "x"})
		require.NoError(t, err)
		assert.Empty(t, answer.Text)
	})

	t.Run("AskDocuments", func(t *testing.T) {
		answer, err := client.AskDocuments(ctx, AskRequest{Question: "Cosa dice l'art. 10?", History: history, SystemPrompt: "Rispondi breve."})

		require.NoError(t, err)
		assert.Equal(t, "/api/chatbot/chat", capturedPath)
		assert.Equal(t, "Rispondi breve.", capturedBody["systemPrompt"])
		assert.Equal(t, "Vedi art. 10.", answer.Text)
		require.Len(t, answer.Sources, 2)
		assert.Equal(t, "Reg. UE 2023/1230", answer.Sources[0].Reference)
		assert.Equal(t, "Il fabbricante...", answer.Sources[0].Excerpt)
		require.NotNil(t, answer.Sources[0].Confidence)
		assert.InDelta(t, 0.77, *answer.Sources[0].Confidence, 1e-9)
		assert.Equal(t, "Allegato III", answer.Sources[1].Reference)
	})

	t.Run("DefaultSystemPrompt", func(t *testing.T) {
		prompt, err := client.DefaultSystemPrompt(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Sei un assistente.", prompt)
		assert.Equal(t, http.MethodGet, capturedMethod)
	})

	t.Run("Unreachable backend", func(t *testing.T) {
		down := NewBackendClient("http://127.0.0.1:1", time.Second)
		_, err := down.AskDocuments(ctx, AskRequest{Question: "x"})
		require.Error(t, err)
		var backendErr *BackendError
		assert.False(t, errors.As(err, &backendErr))
	})
}
