package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/swap-sentinel/internal/marker"
	"github.com/timvw/swap-sentinel/internal/model"
)

var locateCmd = &cobra.Command{
	Use:   "locate <file> [marker]",
	Short: "Find the window already editing a file",
	Long: `Run only the session lookup for a file and print the window handle.

Useful for debugging which strategy applies and what it finds. Unlike
resolve, lookup failures are reported as errors here.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		markerPath := marker.For(file)
		if len(args) == 2 {
			markerPath = args[1]
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		l := buildLocator(cfg)
		handle, err := l.Locate(cmd.Context(), file, markerPath)
		if err != nil {
			return fmt.Errorf("lookup via %s failed: %w", strategyName(l.Strategy()), err)
		}

		if flagJSON {
			out := struct {
				Strategy model.Strategy `json:"strategy"`
				Found    bool           `json:"found"`
				Handle   model.Handle   `json:"handle,omitzero"`
			}{Strategy: l.Strategy(), Found: !handle.IsZero(), Handle: handle}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if handle.IsZero() {
			return fmt.Errorf("no active session found for %s (strategy: %s)", file, strategyName(l.Strategy()))
		}
		fmt.Println(handle.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(locateCmd)
}
