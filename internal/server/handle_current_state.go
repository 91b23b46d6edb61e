package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trainchase/api/internal/game"
)

// handleCurrentState serves the phase-shaped session view. The optional
// player_id query parameter identifies the viewer for redaction; without it
// the caller is treated as a spectator and sees nothing private.
func handleCurrentState(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		viewerID, _ := uuid.Parse(r.URL.Query().Get("player_id"))

		sess, err := registry.Get(gameID)
		if err != nil {
			writeRuleError(w, err)
			return
		}

		switch s := sess.(type) {
		case *game.Lobby:
			writeJSON(w, http.StatusOK, lobbyView(s))
		case *game.InProgress:
			writeJSON(w, http.StatusOK, inProgressView(s, viewerID))
		case *game.Finished:
			writeJSON(w, http.StatusOK, s)
		}
	}
}
