package api

import (
	"net/http"

	"compliance-ai/backend/internal/interfaces"
)

// FindingHandler serves finding normalization for the assessment page.
type FindingHandler struct {
	service interfaces.FindingService
}

func NewFindingHandler(svc interfaces.FindingService) *FindingHandler {
	return &FindingHandler{service: svc}
}

// HandleNormalize godoc
// @Summary      Normalize findings
// @Description  Turns non conformities or recommendations of any shape into findings with scored sources and a ready-made question.
// @Tags         Findings
// @Accept       json
// @Produce      json
// @Param        request  body  NormalizeFindingsRequest  true  "Raw findings"
// @Success      200      {object}  NormalizeFindingsResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/findings/normalize [post]
func (h *FindingHandler) HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeFindingsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	items, err := h.service.Normalize(r.Context(), req.Raw)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, NormalizeFindingsResponse{Findings: items})
}

// HandleSuggestions godoc
// @Summary      Build chat suggestions
// @Description  Returns up to four quick questions for an assessment conversation.
// @Tags         Findings
// @Accept       json
// @Produce      json
// @Param        request  body  SuggestionsRequest  true  "Findings and recommendations"
// @Success      200      {object}  SuggestionsResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /v1/findings/suggestions [post]
func (h *FindingHandler) HandleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req SuggestionsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	suggestions, err := h.service.Suggestions(r.Context(), req.Findings, req.Recommendations)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, SuggestionsResponse{Suggestions: suggestions})
}
