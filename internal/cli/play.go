package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/console"
	"github.com/rocketscienceinc/tictactoe-engine/internal/engine"
)

func Play(a *app) *cobra.Command {
	var botMark string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game against the bot in the terminal",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`play starts a game on standard input and output. X moves
			first. Enter your moves as "row col" with both numbers
			between 0 and 2, for example "1 1" for the center.

			The bot plays X unless --bot-mark or bot.mark in the
			config says otherwise.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flag("bot-mark").Changed {
				botMark = a.conf.Bot.Mark
			}

			mark, err := engine.ParseMark(botMark)
			if err != nil || mark == engine.Empty {
				return fmt.Errorf("bot mark must be X or O, got %q", botMark)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			session := console.New(a.logger(cmd.ErrOrStderr()), cmd.InOrStdin(), cmd.OutOrStdout(), mark)
			if _, err = session.Play(ctx); err != nil {
				return fmt.Errorf("game aborted: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&botMark, "bot-mark", "X", "Mark the bot plays (X or O)")

	return cmd
}
