package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/timvw/swap-sentinel/internal/config"
	"github.com/timvw/swap-sentinel/internal/focuser"
	"github.com/timvw/swap-sentinel/internal/handler"
	"github.com/timvw/swap-sentinel/internal/history"
	"github.com/timvw/swap-sentinel/internal/marker"
	"github.com/timvw/swap-sentinel/internal/notify"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <file> [marker]",
	Short: "Resolve a swap-marker collision and print the directive",
	Long: `Resolve a swap-marker collision for a file the editor is about to open.

Prints exactly one directive on stdout:

  switch    an active session owns the file; its window was focused
  discard   the marker was stale and has been deleted; open normally
  readonly  ownership is unclear; open the file read-only

The command never fails: every internal error degrades to readonly.
Editor glue reads the directive and acts on it; the user-facing
notification is printed on stderr.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		file := args[0]
		markerPath := marker.For(file)
		if len(args) == 2 {
			markerPath = args[1]
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			// A broken config must not block the editor's open path.
			warnf("config: %v (using defaults)", err)
			cfg = config.Defaults()
			cfg.TimeoutDuration = 500 * time.Millisecond
		}

		telemetry, err := initTelemetry(cmd.Context(), cfg)
		if err != nil {
			warnf("telemetry: %v", err)
		} else {
			defer shutdownTelemetry(telemetry)
		}

		notifier := notify.NewScheduler()
		h := &handler.Handler{
			Locator:  buildLocator(cfg),
			Focuser:  focuser.New(cfg.TimeoutDuration),
			Notifier: notifier,
			Warnf:    warnf,
		}
		if telemetry != nil {
			h.Metrics = telemetry.Metrics
		}

		r := h.Resolve(cmd.Context(), file, markerPath)

		j := &history.Journal{Path: history.DefaultPath()}
		if err := j.Append(r); err != nil {
			warnf("history: %v", err)
		}

		if flagJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}

		fmt.Println(string(r.Outcome))
		// The parked notification fires once the editor settles into
		// the buffer; on the CLI that moment is now.
		if msg, ok := notifier.BufferEntered(); ok {
			fmt.Fprintln(os.Stderr, msg)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
