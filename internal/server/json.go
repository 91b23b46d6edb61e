package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trainchase/api/internal/game"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeRuleError maps registry and engine errors onto HTTP statuses. Rule
// violations carry their wire code in the error body.
func writeRuleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "game not found")
	case errors.Is(err, ErrNotLobby):
		writeError(w, http.StatusBadRequest, "game already started")
	case errors.Is(err, ErrBusy):
		writeError(w, http.StatusServiceUnavailable, "try again")
	case errors.Is(err, game.ErrNotYourTurn):
		writeError(w, http.StatusConflict, err.Error())
	default:
		var rule game.RuleError
		if errors.As(err, &rule) {
			writeError(w, http.StatusBadRequest, rule.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
