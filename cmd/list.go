package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/swap-sentinel/internal/sweep"
)

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List swap markers under a directory",
	Long: `Walk a directory tree and list every swap marker with its state:
whether a live session still holds it, or whether it is stale and safe
to delete. Defaults to the current directory.`,
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

		s := &sweep.Scanner{
			Root:       root,
			Extensions: cfg.MarkerExtensions,
			Locator:    buildLocator(cfg),
		}
		result, err := s.Scan(cmd.Context())
		if err != nil {
			return fmt.Errorf("sweeping %s: %w", root, err)
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		if len(result.Entries) == 0 {
			fmt.Printf("no swap markers under %s\n", root)
			return nil
		}
		for _, e := range result.Entries {
			state := "fresh"
			switch {
			case e.Active:
				state = "active " + e.Handle.String()
			case e.Stale:
				state = "stale"
			}
			fmt.Printf("%s\t%s\t%s\n", e.Marker, e.File, state)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
