package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/services/bot"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) error {
	if o.format == "json" {
		return o.printJSON(data)
	}
	return o.printText(data)
}

func (o *Output) printJSON(data any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (o *Output) printText(data any) error {
	switch v := data.(type) {
	case Explanation:
		o.printExplanation(v)
	case History:
		o.printHistory(v)
	default:
		// Fallback to JSON for unknown types
		return o.printJSON(data)
	}
	return nil
}

// Explanation is the scored view of a single turn
type Explanation struct {
	Player     string           `json:"player"`
	Enemy      string           `json:"enemy"`
	Strategy   model.Strategy   `json:"strategy"`
	Summary    Summary          `json:"summary"`
	Found      bool             `json:"found"`
	Move       string           `json:"move"`
	Score      *model.Score     `json:"score,omitempty"`
	Candidates []CandidateScore `json:"candidates"`
}

// Summary is the board aggregate the strategy was selected from
type Summary struct {
	FreeCells            int         `json:"free_cells"`
	PlayerDensity        int         `json:"player_density"`
	EnemyDensity         int         `json:"enemy_density"`
	PlayerCenterDistance model.Score `json:"player_center_distance"`
	EnemyCenterDistance  model.Score `json:"enemy_center_distance"`
}

// CandidateScore is one legal anchor
type CandidateScore struct {
	Row   int         `json:"row"`
	Col   int         `json:"col"`
	Score model.Score `json:"score"`
	Best  bool        `json:"best,omitempty"`
}

// History is a session with its recorded turns
type History struct {
	SessionID string      `json:"session_id"`
	Player    string      `json:"player"`
	Enemy     string      `json:"enemy"`
	StartedAt time.Time   `json:"started_at"`
	Turns     []TurnEntry `json:"turns"`
}

// TurnEntry is one recorded decision
type TurnEntry struct {
	Turn       int            `json:"turn"`
	Strategy   model.Strategy `json:"strategy"`
	Candidates int            `json:"candidates"`
	Found      bool           `json:"found"`
	Move       string         `json:"move"`
	Score      model.Score    `json:"score"`
	Truncated  bool           `json:"truncated,omitempty"`
	Duration   string         `json:"duration"`
}

func newExplanation(turn *model.Turn, summary bot.BoardSummary, decision bot.Decision, candidates []bot.Candidate) Explanation {
	e := Explanation{
		Player:   turn.Player.String(),
		Enemy:    turn.Enemy.String(),
		Strategy: decision.Strategy,
		Summary: Summary{
			FreeCells:            summary.FreeCells,
			PlayerDensity:        summary.PlayerDensity,
			EnemyDensity:         summary.EnemyDensity,
			PlayerCenterDistance: model.Score(summary.PlayerCenterDistance),
			EnemyCenterDistance:  model.Score(summary.EnemyCenterDistance),
		},
		Found:      decision.Found,
		Move:       formatMove(decision.Found, decision.Position),
		Candidates: make([]CandidateScore, 0, len(candidates)),
	}
	if decision.Found {
		score := model.Score(decision.Score)
		e.Score = &score
	}
	for _, c := range candidates {
		e.Candidates = append(e.Candidates, CandidateScore{
			Row:   c.Position.Y,
			Col:   c.Position.X,
			Score: model.Score(c.Score),
			Best:  decision.Found && c.Position == decision.Position,
		})
	}
	return e
}

func newHistory(session *model.Session, records []*model.TurnRecord) History {
	h := History{
		SessionID: string(session.ID),
		Player:    session.Player.String(),
		Enemy:     session.Enemy.String(),
		StartedAt: session.StartedAt,
		Turns:     make([]TurnEntry, 0, len(records)),
	}
	for _, r := range records {
		h.Turns = append(h.Turns, TurnEntry{
			Turn:       r.Turn,
			Strategy:   r.Strategy,
			Candidates: r.Candidates,
			Found:      r.Found,
			Move:       formatMove(r.Found, r.Position),
			Score:      r.Score,
			Truncated:  r.Truncated,
			Duration:   r.Duration.String(),
		})
	}
	return h
}

// formatMove renders a position the way it is sent to the server
func formatMove(found bool, pos model.Position) string {
	if !found {
		return "0 0"
	}
	return fmt.Sprintf("%d %d", pos.Y, pos.X)
}

func (o *Output) printExplanation(e Explanation) {
	fmt.Fprintf(o.w, "Player: %s (enemy %s)\n", e.Player, e.Enemy)
	fmt.Fprintf(o.w, "Strategy: %s\n", model.StrategyDisplayName(e.Strategy))
	fmt.Fprintf(o.w, "Free cells: %d\n", e.Summary.FreeCells)
	fmt.Fprintf(o.w, "Density: %d (enemy %d)\n", e.Summary.PlayerDensity, e.Summary.EnemyDensity)
	fmt.Fprintf(o.w, "Center distance: %.2f (enemy %.2f)\n",
		float64(e.Summary.PlayerCenterDistance), float64(e.Summary.EnemyCenterDistance))

	fmt.Fprintf(o.w, "Candidates (%d):\n", len(e.Candidates))
	for _, c := range e.Candidates {
		marker := " "
		if c.Best {
			marker = "*"
		}
		fmt.Fprintf(o.w, "  %s %3d %3d  %.4f\n", marker, c.Row, c.Col, float64(c.Score))
	}

	fmt.Fprintf(o.w, "Move: %s\n", e.Move)
}

func (o *Output) printHistory(h History) {
	fmt.Fprintf(o.w, "Session: %s\n", h.SessionID)
	fmt.Fprintf(o.w, "Player: %s (enemy %s)\n", h.Player, h.Enemy)
	fmt.Fprintf(o.w, "Started: %s\n", h.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(o.w, "Turns (%d):\n", len(h.Turns))
	for _, t := range h.Turns {
		truncated := ""
		if t.Truncated {
			truncated = " [truncated]"
		}
		fmt.Fprintf(o.w, "  %d. %s -> %s (score %.4f, %d candidates, %s)%s\n",
			t.Turn, model.StrategyDisplayName(t.Strategy), t.Move, float64(t.Score), t.Candidates, t.Duration, truncated)
	}
}
