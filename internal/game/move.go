package game

import (
	"github.com/google/uuid"

	"github.com/trainchase/api/internal/board"
	"github.com/trainchase/api/internal/deck"
)

// MoveIntent is one caller-submitted bundle of sub-intents. Every field but
// the player id is optional; presence of a field selects the pipeline steps
// that run.
type MoveIntent struct {
	PlayerID                uuid.UUID `json:"player_id"`
	NextLocation            *string   `json:"next_location,omitempty"`
	UseTimetableCard        *string   `json:"use_timetable_card,omitempty"`
	BuyEventCard            bool      `json:"buy_event_card,omitempty"`
	UseEventCard            *string   `json:"use_event_card,omitempty"`
	BuyPowerup              *string   `json:"buy_powerup,omitempty"`
	ThrowTimetableCardsAway []string  `json:"throw_timetable_cards_away,omitempty"`
	FinishMove              bool      `json:"finish_move,omitempty"`
}

// MoveResult reports what one make_move call produced.
type MoveResult struct {
	CoinsReceived          int                  `json:"coins_received,omitempty"`
	EventCardReceived      *deck.EventCard      `json:"event_card_received,omitempty"`
	EventCardBought        bool                 `json:"event_card_bought,omitempty"`
	RunnerCaught           bool                 `json:"runner_caught"`
	TimetableCardsReceived []deck.TimetableCard `json:"timetable_cards_received,omitempty"`
	PowerupReveals         *PowerupReveals      `json:"powerup_reveals,omitempty"`
	FinishedGame           *Finished            `json:"finished_game,omitempty"`
}

// TurnScratch tracks what already happened inside the currently open turn.
// It exists from the turn's first make_move call until the finish step
// clears it.
type TurnScratch struct {
	Moved           bool
	EventCardBought bool
	StealthArmed    bool
}

// parsedIntent is a MoveIntent with its wire tokens resolved against the
// closed identifier sets.
type parsedIntent struct {
	MoveIntent
	nextLocation *board.Location
	useCard      *deck.TimetableCard
	useEventCard *deck.EventCard
	buyPowerup   *Powerup
	discards     []deck.TimetableCard
}

func (m MoveIntent) parse() (parsedIntent, error) {
	out := parsedIntent{MoveIntent: m}

	if m.NextLocation != nil {
		loc, err := board.Parse(*m.NextLocation)
		if err != nil {
			return out, ErrInvalidNextLocation
		}
		out.nextLocation = &loc
	}
	if m.UseTimetableCard != nil {
		card, err := deck.ParseTimetableCard(*m.UseTimetableCard)
		if err != nil {
			return out, ErrMissingTimetableCard
		}
		out.useCard = &card
	}
	if m.UseEventCard != nil {
		card, err := deck.ParseEventCard(*m.UseEventCard)
		if err != nil {
			return out, ErrEventCardNotOnHand
		}
		out.useEventCard = &card
	}
	if m.BuyPowerup != nil {
		p, err := ParsePowerup(*m.BuyPowerup)
		if err != nil {
			return out, ErrActionNotAllowed
		}
		out.buyPowerup = &p
	}
	for _, token := range m.ThrowTimetableCardsAway {
		card, err := deck.ParseTimetableCard(token)
		if err != nil {
			return out, ErrMissingTimetableCard
		}
		out.discards = append(out.discards, card)
	}
	return out, nil
}
