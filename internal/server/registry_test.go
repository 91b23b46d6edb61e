package server

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestRegistryFailsFastWhenBusy(t *testing.T) {
	registry := NewRegistry()
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, _, err := registry.CreateLobby("alice"); !errors.Is(err, ErrBusy) {
		t.Errorf("CreateLobby: expected ErrBusy, got %v", err)
	}
	if _, err := registry.Get(uuid.New()); !errors.Is(err, ErrBusy) {
		t.Errorf("Get: expected ErrBusy, got %v", err)
	}
}

func TestRegistryUnknownSession(t *testing.T) {
	registry := NewRegistry()

	if _, err := registry.Get(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get: expected ErrNotFound, got %v", err)
	}
	if _, err := registry.Start(uuid.New(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("Start: expected ErrNotFound, got %v", err)
	}
	if _, _, err := registry.Join("123-456", "bob"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Join: expected ErrNotFound, got %v", err)
	}
}
