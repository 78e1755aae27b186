package handler

import "net/http"

type healthResponse struct {
	Status string `json:"status"`
}

// Health serves GET /healthz.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	}
}
