package model

import (
	"encoding/json"
	"math"
	"time"
)

// SessionID uniquely identifies one run of the bot against the game server
type SessionID string

// Session is the fixed identity of the bot for a whole game
type Session struct {
	ID        SessionID
	Player    Owner
	Enemy     Owner
	StartedAt time.Time
}

// NewSession assigns the opposing symbol from the controlled one
func NewSession(id SessionID, player Owner, startedAt time.Time) Session {
	return Session{
		ID:        id,
		Player:    player,
		Enemy:     player.Opponent(),
		StartedAt: startedAt,
	}
}

// Score is a candidate evaluation. Scores are only comparable within one
// strategy's pass over a turn.
type Score float64

// MarshalJSON encodes infinities as strings, since JSON numbers cannot hold them
func (s Score) MarshalJSON() ([]byte, error) {
	f := float64(s)
	switch {
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	}
	return json.Marshal(f)
}

// UnmarshalJSON accepts numbers and the string forms written by MarshalJSON
func (s *Score) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"+Inf"`:
		*s = Score(math.Inf(1))
		return nil
	case `"-Inf"`:
		*s = Score(math.Inf(-1))
		return nil
	case `"NaN"`:
		*s = Score(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*s = Score(f)
	return nil
}

// Turn is everything the engine needs to decide one move
type Turn struct {
	Number int // 1-indexed within the session
	Grid   *Grid
	Piece  Piece
	Player Owner
	Enemy  Owner
}

// TurnRecord is the stored outcome of one decision
type TurnRecord struct {
	SessionID  SessionID
	Turn       int
	Strategy   Strategy
	Candidates int
	Found      bool     // false means no legal move existed
	Position   Position // zero when Found is false
	Score      Score
	Truncated  bool // the turn deadline cut the scoring pass short
	Duration   time.Duration
	DecidedAt  time.Time
}
