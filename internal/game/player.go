package game

import (
	"github.com/google/uuid"

	"github.com/trainchase/api/internal/board"
	"github.com/trainchase/api/internal/deck"
)

// Modifiers is the bundle of stateful one-shot arms and counters a player
// can carry. Each one is set by an event card or rule and consumed by the
// turn engine.
type Modifiers struct {
	ForcedFastestRounds int  `json:"forced_fastest_rounds,omitempty"`
	ForcedSlowestRounds int  `json:"forced_slowest_rounds,omitempty"`
	BeachHop            bool `json:"beach_hop,omitempty"`
	MustGoNorth         bool `json:"must_go_north,omitempty"`
	TrainCancelled      bool `json:"train_cancelled,omitempty"`
	SloveniaTeleport    bool `json:"slovenia_teleport,omitempty"`
	LuxembourgExit      bool `json:"luxembourg_exit,omitempty"`
	LeaveCountry        bool `json:"leave_country,omitempty"`
	Stealth             bool `json:"stealth,omitempty"`
	TrainInterchange    bool `json:"train_interchange,omitempty"`
}

// Player is one participant's mutable record. Players are owned by their
// session and only ever mutated through the turn engine.
type Player struct {
	ID             uuid.UUID            `json:"id"`
	DisplayName    string               `json:"display_name"`
	Location       board.Location       `json:"location"`
	TimetableCards []deck.TimetableCard `json:"timetable_cards"`
	EventCards     []deck.EventCard     `json:"event_cards"`
	Modifiers      Modifiers            `json:"modifiers"`
}

func (p *Player) clone() *Player {
	c := *p
	c.TimetableCards = append([]deck.TimetableCard(nil), p.TimetableCards...)
	c.EventCards = append([]deck.EventCard(nil), p.EventCards...)
	return &c
}

func (p *Player) holdsTimetableCard(card deck.TimetableCard) bool {
	for _, c := range p.TimetableCards {
		if c == card {
			return true
		}
	}
	return false
}

// removeTimetableCard removes one copy of card from the hand and reports
// whether a copy was found.
func (p *Player) removeTimetableCard(card deck.TimetableCard) bool {
	for i, c := range p.TimetableCards {
		if c == card {
			p.TimetableCards = append(p.TimetableCards[:i], p.TimetableCards[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Player) removeEventCard(card deck.EventCard) bool {
	for i, c := range p.EventCards {
		if c == card {
			p.EventCards = append(p.EventCards[:i], p.EventCards[i+1:]...)
			return true
		}
	}
	return false
}

// cardConnections returns the locations reachable from the player's current
// location by spending the given card.
func cardConnections(from board.Location, card deck.TimetableCard) []board.Location {
	switch card {
	case deck.LowSpeed:
		return from.LowSpeedConnections()
	case deck.HighSpeed:
		return from.HighSpeedConnections()
	case deck.Plane:
		return from.PlaneConnections()
	case deck.Joker:
		return from.JokerConnections()
	}
	return nil
}

// hasLegalMove reports whether any held card can traverse at least one edge
// from the player's current location.
func (p *Player) hasLegalMove() bool {
	for _, c := range p.TimetableCards {
		if len(cardConnections(p.Location, c)) > 0 {
			return true
		}
	}
	return false
}

// canLeaveCountry reports whether any held card has an edge out of the
// player's current country.
func (p *Player) canLeaveCountry() bool {
	home := p.Location.Country()
	for _, c := range p.TimetableCards {
		for _, dest := range cardConnections(p.Location, c) {
			if dest.Country() != home {
				return true
			}
		}
	}
	return false
}
