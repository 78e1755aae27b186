package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/reqlens/reqlens/internal/domain/entities"
	"github.com/reqlens/reqlens/internal/domain/ports"
	"github.com/reqlens/reqlens/internal/domain/services"
	"github.com/reqlens/reqlens/internal/metrics"
)

type analyzeRequest struct {
	ProviderName string `json:"providerName"`
	InputText    string `json:"inputText"`
}

// analyzeErrorResponse keeps the AnalysisResult shape intact on failure so
// consumers never see a differently shaped body from this endpoint.
type analyzeErrorResponse struct {
	Error string `json:"error"`
	entities.AnalysisResult
}

// Analyze serves POST /api/analyze: the full structured analysis.
func Analyze(service *services.AnalysisService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		req, ok := decodeAnalyzeRequest(w, r)
		if !ok {
			return
		}

		metrics.InputChars.Observe(float64(len(req.InputText)))

		start := time.Now()
		result, err := service.Analyze(r.Context(), req.ProviderName, req.InputText)
		metrics.AnalysisDuration.WithLabelValues(req.ProviderName).Observe(time.Since(start).Seconds())

		if err != nil {
			status, msg := classifyError(err)
			if status == http.StatusBadRequest {
				writeError(w, status, msg)
				return
			}
			writeJSON(w, status, analyzeErrorResponse{
				Error:          msg,
				AnalysisResult: *entities.EmptyResult(req.InputText),
			})
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func decodeAnalyzeRequest(w http.ResponseWriter, r *http.Request) (analyzeRequest, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return req, false
		}
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return req, false
	}
	if req.ProviderName == "" {
		writeError(w, http.StatusBadRequest, "providerName is required")
		return req, false
	}
	return req, true
}

// classifyError maps the error taxonomy to HTTP status codes. Unknown
// provider is the caller's mistake; everything else is a 500 with the
// provider's own error text surfaced when available.
func classifyError(err error) (int, string) {
	if errors.Is(err, ports.ErrUnknownProvider) {
		return http.StatusBadRequest, "Invalid provider"
	}

	var missing *ports.MissingCredentialError
	if errors.As(err, &missing) {
		return http.StatusInternalServerError, missing.Error()
	}

	var apiErr *ports.APIError
	if errors.As(err, &apiErr) {
		return http.StatusInternalServerError, apiErr.Error()
	}

	var malformed *ports.MalformedResponseError
	if errors.As(err, &malformed) {
		return http.StatusInternalServerError, "provider returned an unexpected response"
	}

	return http.StatusInternalServerError, err.Error()
}
