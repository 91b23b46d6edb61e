package server

import "net/http"

// HealthResponse is the /healthz body. With no external dependencies the
// server is healthy whenever it answers.
type HealthResponse struct {
	Status string `json:"status"`
}

func handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
