package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/arimage"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "arreplay",
		Short: "Check overlay assets and replay tracking sessions",
		Long: `arreplay builds the overlay registry from an asset directory the same way
an AR application does at startup, and replays scripted tracking frames
through the overlay dispatcher.`,
		Version:       arimage.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			arimage.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log asset loading and resolution at debug level")

	root.AddCommand(newCheckCmd(), newReplayCmd())
	return root
}
