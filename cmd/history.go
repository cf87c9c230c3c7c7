package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/timvw/swap-sentinel/internal/history"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent collision resolutions",
	Long:  `Show the most recent swap-marker collisions and how they were resolved.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		j := &history.Journal{Path: history.DefaultPath()}
		entries, err := j.Recent(flagHistoryLimit)
		if err != nil {
			return err
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Println("no resolutions recorded")
			return nil
		}
		for _, r := range entries {
			fmt.Printf("%s\t%s\t%s\t%s\n",
				r.ResolvedAt.Local().Format("2006-01-02 15:04:05"),
				r.Outcome, strategyName(r.Strategy), r.File)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "number of entries to show (0 = all)")
	rootCmd.AddCommand(historyCmd)
}
