package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"compliance-ai/backend/internal/api"
	"compliance-ai/backend/internal/interfaces/mocks"
	"compliance-ai/backend/internal/model"
	"compliance-ai/backend/internal/service"
)

func TestFindingHandler_HandleNormalize(t *testing.T) {
	mockSvc := mocks.NewMockFindingService(t)
	handler := api.NewFindingHandler(mockSvc)

	mockSvc.On("Normalize", mock.Anything, mock.MatchedBy(func(raw json.RawMessage) bool {
		return strings.Contains(string(raw), "Manca il manuale")
	})).Return([]service.NormalizedFinding{{Text: "Manca il manuale", Sources: []service.ScoredSource{}}}, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/v1/findings/normalize", strings.NewReader(`{"raw": "- Manca il manuale"}`))
	rr := httptest.NewRecorder()
	handler.HandleNormalize(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp api.NormalizeFindingsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Findings, 1)
	assert.Equal(t, "Manca il manuale", resp.Findings[0].Text)
}

func TestFindingHandler_HandleSuggestions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockFindingService(t)
		handler := api.NewFindingHandler(mockSvc)
		mockSvc.On("Suggestions", mock.Anything, mock.Anything, mock.Anything).
			Return([]model.Suggestion{{Label: "Priorità interventi", Question: "Quali sono le priorità?"}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/v1/findings/suggestions", strings.NewReader(`{"findings": [], "recommendations": []}`))
		rr := httptest.NewRecorder()
		handler.HandleSuggestions(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var resp api.SuggestionsResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Len(t, resp.Suggestions, 1)
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler := api.NewFindingHandler(mocks.NewMockFindingService(t))

		req := httptest.NewRequest(http.MethodPost, "/v1/findings/suggestions", strings.NewReader(`[`))
		rr := httptest.NewRecorder()
		handler.HandleSuggestions(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
