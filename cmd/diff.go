package cmd

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

// DiffResult is the output of the diff command.
type DiffResult struct {
	OK       bool                `yaml:"ok"                json:"ok"`
	Action   string              `yaml:"action"            json:"action"`
	Platform string              `yaml:"platform"          json:"platform"`
	Changes  []model.StateChange `yaml:"changes,omitempty" json:"changes,omitempty"`
}

var diffCmd = &cobra.Command{
	Use:   "diff <before> <after>",
	Short: "Compare two snapshot files saved by simulate --save",
	Long: `Compare the view snapshots of two saved runs by view ID. Reports views that
were added, removed or changed, with before and after values for every
schema property and native attribute that differs.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	before, err := model.LoadSnapshot(args[0])
	if err != nil {
		return err
	}
	after, err := model.LoadSnapshot(args[1])
	if err != nil {
		return err
	}
	if before.Platform != after.Platform {
		return fmt.Errorf("cannot diff %s snapshot against %s snapshot", before.Platform, after.Platform)
	}
	return output.Fprint(cmd.OutOrStdout(), DiffResult{
		OK:       true,
		Action:   "diff",
		Platform: after.Platform,
		Changes:  model.DiffSnapshots(before.Views, after.Views),
	})
}
