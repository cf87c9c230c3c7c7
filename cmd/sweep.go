package cmd

import (
	"github.com/spf13/cobra"
	"github.com/timvw/swap-sentinel/internal/focuser"
	"github.com/timvw/swap-sentinel/internal/sweep"
)

var sweepCmd = &cobra.Command{
	Use:   "sweep [root]",
	Short: "Interactively clean up swap markers under a directory",
	Long: `Open an interactive view of every swap marker under a directory.

Markers with a live editing session can be jumped to; dead markers can
be deleted one by one. Defaults to the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		tui := &sweep.TUI{
			Scanner: &sweep.Scanner{
				Root:       root,
				Extensions: cfg.MarkerExtensions,
				Locator:    buildLocator(cfg),
			},
			Focuser: focuser.New(cfg.TimeoutDuration),
		}
		return tui.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
