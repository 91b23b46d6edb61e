package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type StartGameRequest struct {
	PlayerID string `json:"player_id"`
}

func handleStart(registry *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		var req StartGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		playerID, err := uuid.Parse(req.PlayerID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "player_id is required")
			return
		}

		started, err := registry.Start(gameID, playerID)
		if err != nil {
			writeRuleError(w, err)
			return
		}

		broker.Publish(gameID, GameEvent{
			Type:        "game_started",
			CurrentTurn: started.CurrentTurn.String(),
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
