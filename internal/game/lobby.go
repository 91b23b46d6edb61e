package game

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/trainchase/api/internal/board"
	"github.com/trainchase/api/internal/deck"
)

const maxPlayers = 4

// startingLocation is where every player begins.
const startingLocation = board.Nancy

// destinations is the fixed pool the secret destination is drawn from.
var destinations = []board.Location{
	board.Dublin,
	board.Copenhagen,
	board.Vienna,
	board.Rome,
	board.Madrid,
}

// Lobby is the pre-game roster. Created on the first create request,
// grown by joins, consumed by start.
type Lobby struct {
	ID         uuid.UUID
	InviteCode string
	HostID     uuid.UUID
	Players    []*Player
}

func (l *Lobby) SessionID() uuid.UUID { return l.ID }
func (l *Lobby) Phase() Phase         { return PhaseLobby }

// NewLobby creates a lobby with the creator as host and first player.
func NewLobby(displayName string) (*Lobby, uuid.UUID) {
	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	// TODO: regenerate on collision once the registry exposes a lookup here.
	code := fmt.Sprintf("%03d-%03d", r.IntN(1000), r.IntN(1000))

	playerID := uuid.New()
	lobby := &Lobby{
		ID:         uuid.New(),
		InviteCode: code,
		HostID:     playerID,
		Players: []*Player{{
			ID:          playerID,
			DisplayName: displayName,
			Location:    startingLocation,
		}},
	}
	return lobby, playerID
}

// Join appends a player to the roster.
func (l *Lobby) Join(displayName string) (uuid.UUID, error) {
	if len(l.Players) >= maxPlayers {
		return uuid.Nil, ErrLobbyFull
	}

	playerID := uuid.New()
	l.Players = append(l.Players, &Player{
		ID:          playerID,
		DisplayName: displayName,
		Location:    startingLocation,
	})
	return playerID, nil
}

// Start consumes the lobby and produces the in-progress session: a uniformly
// random runner, a random destination, fresh decks and five dealt cards per
// player. The runner holds the first turn.
func (l *Lobby) Start(callerID uuid.UUID) (*InProgress, error) {
	if callerID != l.HostID {
		return nil, ErrActionNotAllowed
	}
	if len(l.Players) <= 2 {
		return nil, ErrLobbyNotFullEnough
	}

	r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	runner := l.Players[r.IntN(len(l.Players))]
	destination := destinations[r.IntN(len(destinations))]

	timetableDeck := deck.BuildTimetableDeck()

	players := make([]*Player, 0, len(l.Players))
	for _, p := range l.Players {
		c := p.clone()
		for i := 0; i < 5; i++ {
			card := timetableDeck[len(timetableDeck)-1]
			timetableDeck = timetableDeck[:len(timetableDeck)-1]
			c.TimetableCards = append(c.TimetableCards, card)
		}
		players = append(players, c)
	}

	return &InProgress{
		ID:            l.ID,
		HostID:        l.HostID,
		RunnerID:      runner.ID,
		Players:       players,
		Destination:   destination,
		CurrentTurn:   runner.ID,
		TimetableDeck: timetableDeck,
		EventDeck:     deck.BuildEventDeck(),
	}, nil
}
