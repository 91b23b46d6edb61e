package server

import (
	"net/http"
	"strings"
)

type CreateGameRequest struct {
	DisplayName string `json:"display_name"`
}

type CreateGameResponse struct {
	GameID     string `json:"game_id"`
	InviteCode string `json:"invite_code"`
	PlayerID   string `json:"player_id"`
}

func handleCreateGame(registry *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateGameRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.DisplayName = strings.TrimSpace(req.DisplayName)
		if req.DisplayName == "" {
			writeError(w, http.StatusBadRequest, "display_name is required")
			return
		}

		lobby, playerID, err := registry.CreateLobby(req.DisplayName)
		if err != nil {
			writeRuleError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateGameResponse{
			GameID:     lobby.ID.String(),
			InviteCode: lobby.InviteCode,
			PlayerID:   playerID.String(),
		})
	}
}
