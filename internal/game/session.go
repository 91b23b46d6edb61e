package game

import "github.com/google/uuid"

// Phase names the three session states on the wire.
type Phase string

const (
	PhaseLobby      Phase = "lobby"
	PhaseInProgress Phase = "in_progress"
	PhaseFinished   Phase = "finished"
)

// Session is the externally visible handle for one game in any phase.
// The concrete type is *Lobby, *InProgress or *Finished.
type Session interface {
	SessionID() uuid.UUID
	Phase() Phase
}

// Team identifies a side of the chase.
type Team string

const (
	TeamRunner Team = "runner"
	TeamChaser Team = "chaser"
)

// WinCondition names the terminal condition that ended a game.
type WinCondition string

const (
	WinRunnerCaught         WinCondition = "runner_caught"
	WinGotToDestination     WinCondition = "got_to_destination"
	WinTimetableCardsRanOut WinCondition = "timetable_cards_ran_out"
)
