package handler

import (
	"net/http"

	"github.com/reqlens/reqlens/internal/domain/services"
)

type extractedConstraint struct {
	Text string `json:"text"`
}

type extractResponse struct {
	Constraints []extractedConstraint `json:"constraints"`
}

// Extract serves POST /api/extract: the simple bullet-extraction mode,
// returning just the constraint texts in answer order.
func Extract(service *services.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		req, ok := decodeAnalyzeRequest(w, r)
		if !ok {
			return
		}

		constraints, err := service.ExtractConstraints(r.Context(), req.ProviderName, req.InputText)
		if err != nil {
			status, msg := classifyError(err)
			writeError(w, status, msg)
			return
		}

		resp := extractResponse{Constraints: make([]extractedConstraint, 0, len(constraints))}
		for _, c := range constraints {
			resp.Constraints = append(resp.Constraints, extractedConstraint{Text: c.Text})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}
