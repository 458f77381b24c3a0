package storage

import (
	"context"

	"github.com/mcoot/fillerbot/internal/model"
)

// Storage defines the interface for decision history persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Turn operations. Records are returned in the order they were appended.
	AppendTurn(ctx context.Context, record *model.TurnRecord) error
	GetTurnsForSession(ctx context.Context, id model.SessionID) ([]*model.TurnRecord, error)
}
