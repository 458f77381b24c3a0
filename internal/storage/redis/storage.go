package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKey(session.ID), data, s.cfg.RecordTTL).Err()
}

func (s *Storage) GetSession(ctx context.Context, id model.SessionID) (*model.Session, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) DeleteSession(ctx context.Context, id model.SessionID) error {
	return s.client.Del(ctx, sessionKey(id), turnsKey(id)).Err()
}

// Turn operations

func (s *Storage) AppendTurn(ctx context.Context, record *model.TurnRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := turnsKey(record.SessionID)

	// Use pipeline so the list TTL stays in sync with the session
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, key, data)
	if s.cfg.RecordTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.RecordTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTurnsForSession(ctx context.Context, id model.SessionID) ([]*model.TurnRecord, error) {
	exists, err := s.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrSessionNotFound
	}

	items, err := s.client.LRange(ctx, turnsKey(id), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.TurnRecord, 0, len(items))
	for _, item := range items {
		var record model.TurnRecord
		if err := json.Unmarshal([]byte(item), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}
