package redis

import (
	"fmt"

	"github.com/mcoot/fillerbot/internal/model"
)

// Key prefix for all bot data
const keyPrefix = "fillerbot"

// sessionKey returns the Redis key for a Session
func sessionKey(id model.SessionID) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, id)
}

// turnsKey returns the Redis key for the LIST of turn records of a session
func turnsKey(id model.SessionID) string {
	return fmt.Sprintf("%s:turns:%s", keyPrefix, id)
}
