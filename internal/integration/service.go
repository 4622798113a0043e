package integration

import (
	"context"
	"errors"
	"sync"
)

// Third-party integrations (card readers, delivery platforms) are opaque
// to the POS core: all it knows is connect, disconnect, and status.

type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

var ErrUnknownIntegration = errors.New("unknown integration")

type Service interface {
	Connect(ctx context.Context, name string) error
	Disconnect(ctx context.Context, name string) error
	Status(ctx context.Context, name string) (Status, error)
}

// MemoryService tracks connection state in memory, standing in for the
// real external connectors.
type MemoryService struct {
	mu        sync.Mutex
	known     map[string]bool
	connected map[string]bool
}

func NewMemoryService(names ...string) *MemoryService {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	return &MemoryService{known: known, connected: make(map[string]bool)}
}

func (s *MemoryService) Connect(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.known[name] {
		return ErrUnknownIntegration
	}
	s.connected[name] = true
	return nil
}

func (s *MemoryService) Disconnect(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.known[name] {
		return ErrUnknownIntegration
	}
	delete(s.connected, name)
	return nil
}

func (s *MemoryService) Status(ctx context.Context, name string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.known[name] {
		return "", ErrUnknownIntegration
	}
	if s.connected[name] {
		return StatusConnected, nil
	}
	return StatusDisconnected, nil
}
