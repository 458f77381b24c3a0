// Package scoring turns metric outputs into one scalar per candidate anchor.
package scoring

import "github.com/mcoot/fillerbot/internal/model"

// Evaluator scores candidate anchors within one turn
type Evaluator interface {
	Score(pos model.Position) float64
}

// EvaluatorFunc adapts a plain function to Evaluator
type EvaluatorFunc func(pos model.Position) float64

// Score calls f
func (f EvaluatorFunc) Score(pos model.Position) float64 {
	return f(pos)
}

// Strategy prepares an Evaluator for a turn. Work that does not depend on
// the candidate is done once in Prepare rather than per candidate.
type Strategy interface {
	Name() model.Strategy
	Prepare(turn *model.Turn) Evaluator
}

// DefaultStrategies returns every built-in strategy keyed by its tag
func DefaultStrategies() map[model.Strategy]Strategy {
	strategies := []Strategy{
		NewExpansionStrategy(),
		NewBlockingStrategy(),
		NewCentralizationStrategy(),
	}

	registry := make(map[model.Strategy]Strategy, len(strategies))
	for _, st := range strategies {
		registry[st.Name()] = st
	}
	return registry
}
