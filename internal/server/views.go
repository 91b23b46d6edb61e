package server

import (
	"github.com/google/uuid"

	"github.com/trainchase/api/internal/game"
)

type RosterPlayer struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
}

type LobbyStateResponse struct {
	GameID     string         `json:"game_id"`
	Phase      string         `json:"phase"`
	InviteCode string         `json:"invite_code"`
	Host       string         `json:"host"`
	Players    []RosterPlayer `json:"players"`
}

// PlayerView is one roster entry as a given viewer is allowed to see it.
// Hands are listed in full only for the viewer's own entry; everyone else
// gets counts. Locations follow the hiding rules below.
type PlayerView struct {
	PlayerID           string   `json:"player_id"`
	DisplayName        string   `json:"display_name"`
	Location           *string  `json:"location,omitempty"`
	TimetableCards     []string `json:"timetable_cards,omitempty"`
	TimetableCardCount int      `json:"timetable_card_count"`
	EventCards         []string `json:"event_cards,omitempty"`
	EventCardCount     int      `json:"event_card_count"`
}

type InProgressStateResponse struct {
	GameID                string              `json:"game_id"`
	Phase                 string              `json:"phase"`
	Host                  string              `json:"host"`
	Runner                string              `json:"runner"`
	CurrentTurn           string              `json:"current_turn"`
	CoinsRunner           int                 `json:"coins_runner"`
	CoinsChasers          int                 `json:"coins_chasers"`
	LastUsedTimetableCard *string             `json:"last_used_timetable_card,omitempty"`
	Destination           *string             `json:"destination,omitempty"`
	PowerupReveals        game.PowerupReveals `json:"powerup_reveals"`
	Players               []PlayerView        `json:"players"`
}

func lobbyView(l *game.Lobby) LobbyStateResponse {
	out := LobbyStateResponse{
		GameID:     l.ID.String(),
		Phase:      string(l.Phase()),
		InviteCode: l.InviteCode,
		Host:       l.HostID.String(),
	}
	for _, p := range l.Players {
		out.Players = append(out.Players, RosterPlayer{
			PlayerID:    p.ID.String(),
			DisplayName: p.DisplayName,
		})
	}
	return out
}

// inProgressView builds the redacted view for one viewer. The runner's
// location is only ever shown to the runner themselves; stale powerup
// reveals live in the shared cache instead. Chaser locations are public
// unless hidden by stealth.
func inProgressView(g *game.InProgress, viewerID uuid.UUID) InProgressStateResponse {
	out := InProgressStateResponse{
		GameID:         g.ID.String(),
		Phase:          string(g.Phase()),
		Host:           g.HostID.String(),
		Runner:         g.RunnerID.String(),
		CurrentTurn:    g.CurrentTurn.String(),
		CoinsRunner:    g.CoinsRunner,
		CoinsChasers:   g.CoinsChasers,
		PowerupReveals: g.Reveals,
	}
	if g.LastUsedTimetableCard != nil {
		card := g.LastUsedTimetableCard.String()
		out.LastUsedTimetableCard = &card
	}
	if viewerID == g.RunnerID || g.Reveals.RunnerDestination != nil {
		dest := string(g.Destination)
		out.Destination = &dest
	}

	for _, p := range g.Players {
		view := PlayerView{
			PlayerID:           p.ID.String(),
			DisplayName:        p.DisplayName,
			TimetableCardCount: len(p.TimetableCards),
			EventCardCount:     len(p.EventCards),
		}

		if locationVisible(g, p, viewerID) {
			loc := string(p.Location)
			view.Location = &loc
		}
		if p.ID == viewerID {
			for _, c := range p.TimetableCards {
				view.TimetableCards = append(view.TimetableCards, c.String())
			}
			for _, c := range p.EventCards {
				view.EventCards = append(view.EventCards, c.String())
			}
		}
		out.Players = append(out.Players, view)
	}
	return out
}

func locationVisible(g *game.InProgress, p *game.Player, viewerID uuid.UUID) bool {
	if p.ID == viewerID {
		return true
	}
	if p.ID == g.RunnerID {
		return false
	}
	return !p.Modifiers.Stealth
}
