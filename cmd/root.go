package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/timvw/swap-sentinel/internal/config"
	"github.com/timvw/swap-sentinel/internal/locator"
	"github.com/timvw/swap-sentinel/internal/model"
	"github.com/timvw/swap-sentinel/internal/otel"
	"github.com/timvw/swap-sentinel/internal/platform"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var (
	// Global flags.
	flagTmux    bool
	flagTimeout string
	flagJSON    bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "swap-sentinel",
	Short: "Resolve swap-file collisions by finding the session already editing the file",
	Long: `swap-sentinel handles the "swap file exists" moment: when an editor
opens a file whose swap marker is already present, it finds the terminal
window or pane that is still editing the file and hands focus to it.

If no live session holds the marker, a stale marker is deleted so the
open proceeds normally. When ownership cannot be established the verdict
is read-only — never two writers.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().BoolVar(&flagTmux, "tmux", false, "use the tmux strategy when attached to a tmux session")
	rootCmd.PersistentFlags().StringVar(&flagTimeout, "timeout", envOrDefault("SWAP_SENTINEL_TIMEOUT", ""), "per-strategy timeout for external commands (e.g. 500ms)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON instead of plain output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "print degraded-path diagnostics to stderr")
}

// loadConfig loads configuration and applies explicit flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("tmux") {
		cfg.Tmux = flagTmux
	}
	if cmd.Flags().Changed("timeout") {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("invalid --timeout %q", flagTimeout)
		}
		cfg.Timeout = flagTimeout
		cfg.TimeoutDuration = d
	}

	return cfg, nil
}

// buildLocator probes the platform and returns the matching locator.
func buildLocator(cfg *config.Config) locator.Locator {
	strategy := platform.Detect(cfg.Tmux, cfg.TerminalApp)

	app := cfg.TerminalApp
	if app == "" {
		app = platform.TerminalApp(os.Getenv("TERM_PROGRAM"))
	}

	return locator.ForStrategy(strategy, locator.Options{
		Timeout:      cfg.TimeoutDuration,
		TerminalApp:  app,
		EditorTitles: cfg.EditorTitles,
	})
}

// initTelemetry sets up OTEL from config. Returns a no-op Telemetry
// when no endpoint is configured.
func initTelemetry(ctx context.Context, cfg *config.Config) (*otel.Telemetry, error) {
	otel.Version = Version
	return otel.Init(ctx, otel.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
}

// shutdownTelemetry flushes telemetry with a short deadline so a slow
// collector cannot hold the editor's open path hostage.
func shutdownTelemetry(t *otel.Telemetry) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	t.Shutdown(ctx)
}

// warnf prints a diagnostic to stderr when --verbose is set.
func warnf(format string, args ...any) {
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "swap-sentinel: "+format+"\n", args...)
	}
}

// strategyName renders a strategy for human output.
func strategyName(s model.Strategy) string {
	if s == model.StrategyNone {
		return "none"
	}
	return string(s)
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
