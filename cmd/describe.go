package cmd

import (
	"fmt"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/platform/android"
	"github.com/mj1618/a11y-bridge/internal/scenario"
	"github.com/spf13/cobra"
)

// DescribeResult is the output of the describe command.
type DescribeResult struct {
	Description string `yaml:"description" json:"description"`
	SDK         int    `yaml:"sdk"         json:"sdk"`
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Compose the Android content description for a label, value and hint",
	Long: `Compose the content description the Android bridge writes for a view.
Parts are joined with ". " after trailing periods are dropped, and empty
parts are skipped. Before API 28 a header also gets "heading".

Example:
  a11y-bridge describe --label Volume --value "50%" --hint "Swipe up or down to adjust"`,
	Args: cobra.NoArgs,
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().String("label", "", "Accessibility label")
	describeCmd.Flags().String("value", "", "Accessibility value")
	describeCmd.Flags().String("hint", "", "Accessibility hint")
	describeCmd.Flags().String("role", "", "Accessibility role")
	describeCmd.Flags().Int("sdk", scenario.DefaultSDK, "Android API level")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	label, _ := cmd.Flags().GetString("label")
	value, _ := cmd.Flags().GetString("value")
	hint, _ := cmd.Flags().GetString("hint")
	roleName, _ := cmd.Flags().GetString("role")
	sdk, _ := cmd.Flags().GetInt("sdk")

	role, ok := model.ParseRole(roleName)
	if !ok {
		return fmt.Errorf("unknown role %q", roleName)
	}
	return output.Fprint(cmd.OutOrStdout(), DescribeResult{
		Description: android.ComposeDescription(label, value, hint, role, sdk),
		SDK:         sdk,
	})
}
