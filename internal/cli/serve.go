package cli

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	application "github.com/rocketscienceinc/tictactoe-engine/internal"
)

func Serve(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP and WebSocket game servers",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`serve runs the REST API on http-port and the WebSocket
			endpoint /ws on socket-port. Players and games are kept in
			redis and expire after game.ttl.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return application.RunApp(a.logger(cmd.OutOrStdout()), a.conf)
		},
	}
}
