package server

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/trainchase/api/internal/game"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrNotLobby = errors.New("session is not a lobby")

	// ErrBusy is returned when the registry lock cannot be taken
	// immediately. Callers fail fast; there is no wait queue.
	ErrBusy = errors.New("registry busy")
)

// Registry holds every live session in memory, keyed by id, plus the invite
// code index. All access goes through one non-blocking lock: a request that
// cannot take it immediately is bounced with ErrBusy instead of queuing.
type Registry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]game.Session
	invites  map[string]uuid.UUID
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[uuid.UUID]game.Session),
		invites:  make(map[string]uuid.UUID),
	}
}

// CreateLobby opens a fresh lobby and indexes its invite code.
func (r *Registry) CreateLobby(displayName string) (*game.Lobby, uuid.UUID, error) {
	if !r.mu.TryLock() {
		return nil, uuid.Nil, ErrBusy
	}
	defer r.mu.Unlock()

	lobby, playerID := game.NewLobby(displayName)
	r.sessions[lobby.ID] = lobby
	r.invites[lobby.InviteCode] = lobby.ID
	return lobby, playerID, nil
}

// Join adds a player to the lobby behind an invite code.
func (r *Registry) Join(inviteCode, displayName string) (*game.Lobby, uuid.UUID, error) {
	if !r.mu.TryLock() {
		return nil, uuid.Nil, ErrBusy
	}
	defer r.mu.Unlock()

	id, ok := r.invites[inviteCode]
	if !ok {
		return nil, uuid.Nil, ErrNotFound
	}
	lobby, ok := r.sessions[id].(*game.Lobby)
	if !ok {
		return nil, uuid.Nil, ErrNotLobby
	}

	playerID, err := lobby.Join(displayName)
	if err != nil {
		return nil, uuid.Nil, err
	}
	return lobby, playerID, nil
}

// Start consumes the lobby and swaps the in-progress session into its slot.
func (r *Registry) Start(gameID, playerID uuid.UUID) (*game.InProgress, error) {
	if !r.mu.TryLock() {
		return nil, ErrBusy
	}
	defer r.mu.Unlock()

	sess, ok := r.sessions[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	lobby, ok := sess.(*game.Lobby)
	if !ok {
		return nil, ErrNotLobby
	}

	started, err := lobby.Start(playerID)
	if err != nil {
		return nil, err
	}
	r.sessions[gameID] = started
	return started, nil
}

// MakeMove runs one turn-engine call and swaps in whatever session the
// engine returns. On an engine error nothing is swapped.
func (r *Registry) MakeMove(gameID uuid.UUID, intent game.MoveIntent) (*game.MoveResult, game.Session, error) {
	if !r.mu.TryLock() {
		return nil, nil, ErrBusy
	}
	defer r.mu.Unlock()

	sess, ok := r.sessions[gameID]
	if !ok {
		return nil, nil, ErrNotFound
	}
	g, ok := sess.(*game.InProgress)
	if !ok {
		return nil, nil, game.ErrActionNotAllowed
	}

	res, next, err := g.MakeMove(intent)
	if err != nil {
		return nil, nil, err
	}
	r.sessions[gameID] = next
	return res, next, nil
}

// Get returns the session in whatever phase it currently is.
func (r *Registry) Get(gameID uuid.UUID) (game.Session, error) {
	if !r.mu.TryLock() {
		return nil, ErrBusy
	}
	defer r.mu.Unlock()

	sess, ok := r.sessions[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}
