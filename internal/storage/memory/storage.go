package memory

import (
	"context"
	"sync"

	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions map[model.SessionID]*model.Session
	turns    map[model.SessionID][]*model.TurnRecord
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionID]*model.Session),
		turns:    make(map[model.SessionID][]*model.TurnRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	delete(s.turns, id)
	return nil
}

// Turn operations

func (s *Storage) AppendTurn(ctx context.Context, record *model.TurnRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns[record.SessionID] = append(s.turns[record.SessionID], record)
	return nil
}

func (s *Storage) GetTurnsForSession(ctx context.Context, id model.SessionID) ([]*model.TurnRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.sessions[id]; !ok {
		return nil, model.ErrSessionNotFound
	}
	records := s.turns[id]
	out := make([]*model.TurnRecord, len(records))
	copy(out, records)
	return out, nil
}
