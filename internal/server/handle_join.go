package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type JoinRequest struct {
	DisplayName string `json:"display_name"`
}

type JoinResponse struct {
	GameID   string `json:"game_id"`
	PlayerID string `json:"player_id"`
}

func handleJoin(registry *Registry, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req JoinRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.DisplayName = strings.TrimSpace(req.DisplayName)
		if req.DisplayName == "" {
			writeError(w, http.StatusBadRequest, "display_name is required")
			return
		}

		lobby, playerID, err := registry.Join(chi.URLParam(r, "inviteCode"), req.DisplayName)
		if err != nil {
			writeRuleError(w, err)
			return
		}

		broker.Publish(lobby.ID, GameEvent{
			Type:       "player_joined",
			PlayerName: req.DisplayName,
		})

		writeJSON(w, http.StatusOK, JoinResponse{
			GameID:   lobby.ID.String(),
			PlayerID: playerID.String(),
		})
	}
}
