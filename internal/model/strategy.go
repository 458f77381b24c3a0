package model

import "fmt"

// Strategy names the heuristic used to score every candidate of a turn
type Strategy string

// Strategy constants
const (
	StrategyExpansion      Strategy = "expansion"
	StrategyBlocking       Strategy = "blocking"
	StrategyCentralization Strategy = "centralization"
)

// StrategyDisplayName returns a human-readable label for a strategy
func StrategyDisplayName(strategy Strategy) string {
	switch strategy {
	case StrategyExpansion:
		return "Expansion"
	case StrategyBlocking:
		return "Blocking"
	case StrategyCentralization:
		return "Centralization"
	default:
		return string(strategy)
	}
}

// ValidStrategies returns all valid strategy names
func ValidStrategies() []Strategy {
	return []Strategy{StrategyExpansion, StrategyBlocking, StrategyCentralization}
}

// ParseStrategy validates a strategy name
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range ValidStrategies() {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}
