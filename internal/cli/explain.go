package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mcoot/fillerbot/internal/model"
	"github.com/mcoot/fillerbot/internal/protocol"
	"github.com/mcoot/fillerbot/internal/services/bot"
)

func newExplainCmd() *cobra.Command {
	var strategyName string

	cmd := &cobra.Command{
		Use:   "explain",
		Short: "Score every legal placement for one turn read from stdin",
		Long: `explain reads a player line and a single turn in the server's format and
prints the board summary, the selected strategy and every legal anchor with
its score in enumeration order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			app := env.App

			orientation, err := env.Config.Orientation()
			if err != nil {
				return err
			}

			turn, err := readSingleTurn(cmd.InOrStdin(), orientation)
			if err != nil {
				return err
			}

			summary := bot.Summarize(turn.Grid, turn.Player, turn.Enemy)
			strategy := summary.Strategy()
			if strategyName != "" {
				strategy, err = model.ParseStrategy(strategyName)
				if err != nil {
					return err
				}
				if !app.BotService.HasStrategy(strategy) {
					return fmt.Errorf("%w: %q", model.ErrUnknownStrategy, strategy)
				}
			}

			candidates, err := app.BotService.ScoreAll(turn, strategy)
			if err != nil {
				return err
			}
			decision, err := app.BotService.BestPosition(cmd.Context(), turn, strategy)
			if err != nil {
				return err
			}

			out := NewOutput(flags.Output, cmd.OutOrStdout())
			return out.Print(newExplanation(turn, summary, decision, candidates))
		},
	}

	cmd.Flags().StringVar(&strategyName, "strategy", "", "Force a strategy: expansion, blocking, centralization")

	return cmd
}

// readSingleTurn reads the player line and the first turn that follows it
func readSingleTurn(in io.Reader, orientation model.PieceOrientation) (*model.Turn, error) {
	reader := protocol.NewReader(in, orientation)

	player, err := reader.ReadPlayer()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no player line on input")
		}
		return nil, err
	}

	grid, piece, err := reader.ReadTurn()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no turn on input")
		}
		return nil, err
	}

	return &model.Turn{
		Number: 1,
		Grid:   grid,
		Piece:  piece,
		Player: player,
		Enemy:  player.Opponent(),
	}, nil
}
