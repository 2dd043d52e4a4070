package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	conf       *config.Config
}

func Root() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "tictactoe",
		Short: "Tic-tac-toe against a minimax bot",
		Long: heredoc.Doc(`tictactoe plays tic-tac-toe against a bot that searches
			the whole game tree with minimax before every move.

			Play in the terminal with "tictactoe play", ask the engine
			about a single position with "tictactoe move", or run the
			HTTP and WebSocket servers with "tictactoe serve".`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.loadConfig()
		},
	}

	// global flags
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to a config.yml")

	root.AddCommand(Play(a))
	root.AddCommand(Serve(a))
	root.AddCommand(Move(a))

	return root
}

// initialize config.
func (that *app) loadConfig() error {
	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	that.conf = config.MustLoad(config.ResolvePath(that.configPath, baseDir))

	if err = that.conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// initialize logger.
func (that *app) logger(w io.Writer) *slog.Logger {
	var level slog.Level

	switch that.conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
