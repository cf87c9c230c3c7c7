package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/timvw/swap-sentinel/internal/focuser"
	"github.com/timvw/swap-sentinel/internal/model"
)

var focusCmd = &cobra.Command{
	Use:   "focus <handle>",
	Short: "Raise the window identified by a handle",
	Long: `Raise a window located earlier, identified by its handle token
(e.g. "tmux:/dev/ttys003:2.1", "macterm:Terminal:127", "x11:0x03c00041").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle, err := model.ParseHandle(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		f := focuser.New(cfg.TimeoutDuration)
		if err := f.Focus(cmd.Context(), handle); err != nil {
			return fmt.Errorf("focus %s: %w", handle, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
}
