package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/trace"
	"github.com/mj1618/a11y-bridge/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "a11y-bridge",
	Short: "Simulate and inspect the cross-platform accessibility bridge",
	Long: `A tool for exercising the accessibility property bridge against simulated
Android and iOS devices: run scenarios, inspect the native projection of
role, state, traits and content descriptions, and serve the same tools over MCP.`,
	SilenceUsage: true,
}

// traceOut is where trace records go.
var traceOut io.Writer = os.Stderr

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().Bool("trace", false, "Write bridge trace records to stderr")
	rootCmd.PersistentFlags().String("trace-categories", "", "Comma-separated trace categories (default: all)")
	rootCmd.PersistentFlags().String("trace-format", "", "Trace record format: text, json")
	rootCmd.PersistentFlags().String("trace-config", "", "YAML trace configuration file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		format, _ := rootCmd.PersistentFlags().GetString("format")
		f, err := output.ParseFormat(format)
		if err != nil {
			return err
		}
		output.OutputFormat = f
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")

		sink, err := traceSink()
		if err != nil {
			return err
		}
		trace.SetDefault(sink)
		return nil
	}
}

// traceSink builds the process sink from --trace-config, then lets the
// individual --trace flags override it.
func traceSink() (*trace.Sink, error) {
	flags := rootCmd.PersistentFlags()
	var cfg trace.Config
	if path, _ := flags.GetString("trace-config"); path != "" {
		loaded, err := trace.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if on, _ := flags.GetBool("trace"); on {
		cfg.Enabled = true
	}
	if cats, _ := flags.GetString("trace-categories"); cats != "" {
		cfg.Categories = strings.Split(cats, ",")
		for i := range cfg.Categories {
			cfg.Categories[i] = strings.TrimSpace(cfg.Categories[i])
		}
	}
	if format, _ := flags.GetString("trace-format"); format != "" {
		cfg.Format = format
	}
	return cfg.NewSink(traceOut)
}
