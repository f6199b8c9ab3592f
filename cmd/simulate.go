package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/scenario"
	"github.com/mj1618/a11y-bridge/internal/trace"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [file]",
	Short: "Run an accessibility scenario against a simulated device",
	Long: `Run a YAML scenario from a file, or from stdin when no file is given.

A scenario boots a simulated Android or iOS device, registers the
accessibility properties and runs each step in order. By default execution
stops on the first failed step or assertion.

Supported step types: ` + strings.Join(scenario.StepTypes, ", ") + `

Example:
  a11y-bridge simulate <<'EOF'
  platform: android
  sdk: 26
  steps:
    - create: { name: title, props: { accessible: true, accessibilityRole: header, accessibilityLabel: Settings } }
    - assert: { view: title, native: contentDescription, equals: "Settings. heading" }
    - focus: { view: title }
  EOF`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().String("platform", "", "Override the scenario platform: android, ios")
	simulateCmd.Flags().Int("sdk", 0, "Override the Android API level")
	simulateCmd.Flags().Bool("stop-on-error", true, "Stop execution on first error")
	simulateCmd.Flags().String("save", "", "Write the final view snapshots to this file (.yaml or .json)")
	simulateCmd.Flags().Bool("check", false, "Exit non-zero when any step fails")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	sc, err := scenario.Parse(data)
	if err != nil {
		return err
	}
	if p, _ := cmd.Flags().GetString("platform"); p != "" {
		sc.Platform = p
	}
	if sdk, _ := cmd.Flags().GetInt("sdk"); sdk != 0 {
		sc.SDK = sdk
	}
	if cmd.Flags().Changed("stop-on-error") {
		stop, _ := cmd.Flags().GetBool("stop-on-error")
		sc.StopOnError = &stop
	}

	res, err := scenario.Run(sc, trace.Default())
	if err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		snap := model.SnapshotFile{Platform: res.Platform, Name: res.Name, Views: res.Final}
		if err := model.SaveSnapshot(path, snap); err != nil {
			return err
		}
	}

	if err := output.Fprint(cmd.OutOrStdout(), res); err != nil {
		return err
	}
	if check, _ := cmd.Flags().GetBool("check"); check && !res.OK {
		return fmt.Errorf("scenario failed: %s", res.Error)
	}
	return nil
}

// readInput reads the named file, or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read scenario: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no scenario provided: pass a file or pipe YAML on stdin")
	}
	return data, nil
}
