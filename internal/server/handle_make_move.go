package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/trainchase/api/internal/game"
)

func handleMakeMove(registry *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID, err := uuid.Parse(chi.URLParam(r, "gameID"))
		if err != nil {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}

		var intent game.MoveIntent
		if err := readJSON(r, &intent); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if intent.PlayerID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "player_id is required")
			return
		}

		res, next, err := registry.MakeMove(gameID, intent)
		if err != nil {
			writeRuleError(w, err)
			return
		}

		switch sess := next.(type) {
		case *game.Finished:
			broker.Publish(gameID, GameEvent{
				Type:        "game_over",
				WinningTeam: string(sess.WinningTeam),
			})
		case *game.InProgress:
			broker.Publish(gameID, GameEvent{
				Type:        "move_made",
				CurrentTurn: sess.CurrentTurn.String(),
			})
		}

		writeJSON(w, http.StatusOK, res)
	}
}
