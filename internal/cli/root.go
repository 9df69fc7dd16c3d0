package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/kesteai/internal/app"
)

// App holds what the subcommands share.
type App struct {
	Runtime *app.Runtime

	// IsInteractive reports whether stdin is a terminal. chat falls back to
	// line mode when it is not.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "kesteai" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "kesteai",
		Short:         "College timetable server and schedule assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(a),
		newChatCmd(a),
		newSeedCmd(a),
		newCheckCmd(a),
	)

	return root
}
