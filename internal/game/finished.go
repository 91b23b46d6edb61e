package game

import (
	"github.com/google/uuid"

	"github.com/trainchase/api/internal/board"
)

// Finished is the immutable terminal snapshot of a game. Nothing mutates it
// after construction; state reads serve it as-is.
type Finished struct {
	ID           uuid.UUID        `json:"id"`
	HostID       uuid.UUID        `json:"host"`
	RunnerID     uuid.UUID        `json:"runner"`
	Players      []*Player        `json:"players"`
	Destination  board.Location   `json:"destination"`
	CoinsRunner  int              `json:"coins_runner"`
	CoinsChasers int              `json:"coins_chasers"`
	WinningTeam  Team             `json:"winning_team"`
	WinCondition WinCondition     `json:"win_condition"`
	RunnerPath   []board.Location `json:"runner_path"`
}

func (f *Finished) SessionID() uuid.UUID { return f.ID }
func (f *Finished) Phase() Phase         { return PhaseFinished }
