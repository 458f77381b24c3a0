package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/fillerbot/internal/model"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history <session-id>",
		Short: "Show the recorded decisions of a session",
		Long: `history prints every turn recorded for a session. Sessions only outlive
the process with redis storage.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := model.SessionID(args[0])

			env, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer env.Close()
			app := env.App

			session, err := app.Storage.GetSession(cmd.Context(), id)
			if err != nil {
				return err
			}
			records, err := app.Storage.GetTurnsForSession(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := NewOutput(flags.Output, cmd.OutOrStdout())
			return out.Print(newHistory(session, records))
		},
	}
}
