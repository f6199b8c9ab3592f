package cmd

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/server"
	"github.com/spf13/cobra"
)

// TraitEntry is one row of the trait table.
type TraitEntry struct {
	Trait string `yaml:"trait" json:"trait"`
	Bit   uint64 `yaml:"bit"   json:"bit"`
}

var traitsCmd = &cobra.Command{
	Use:   "traits [trait...]",
	Short: "Convert iOS accessibility traits to a UIAccessibilityTraits mask and back",
	Long: `Encode trait names into the UIAccessibilityTraits bitmask the iOS bridge
writes, including the traits implied by --role and --state. With --mask,
decode a bitmask into trait names. With no arguments, list every trait.

Examples:
  a11y-bridge traits header link
  a11y-bridge traits --role button --state disabled
  a11y-bridge traits --mask 65600`,
	RunE: runTraits,
}

func init() {
	rootCmd.AddCommand(traitsCmd)
	traitsCmd.Flags().Uint64("mask", 0, "Trait bitmask to decode")
	traitsCmd.Flags().String("role", "", "Accessibility role")
	traitsCmd.Flags().String("state", "", "Accessibility state")
}

func runTraits(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if cmd.Flags().Changed("mask") {
		mask, _ := cmd.Flags().GetUint64("mask")
		return output.Fprint(out, server.TraitsResult{
			Mask:   mask,
			Traits: model.TraitNames(model.MaskTraits(mask)),
		})
	}

	roleName, _ := cmd.Flags().GetString("role")
	stateName, _ := cmd.Flags().GetString("state")
	if len(args) == 0 && roleName == "" && stateName == "" {
		return output.Fprint(out, traitTable())
	}
	role, ok := model.ParseRole(roleName)
	if !ok {
		return fmt.Errorf("unknown role %q", roleName)
	}
	state, ok := model.ParseState(stateName)
	if !ok {
		return fmt.Errorf("unknown state %q", stateName)
	}
	return output.Fprint(out, server.EncodeTraits(strings.Join(args, ","), role, state))
}

func traitTable() []TraitEntry {
	traits := model.MaskTraits(^uint64(0))
	entries := make([]TraitEntry, len(traits))
	for i, t := range traits {
		entries[i] = TraitEntry{Trait: string(t), Bit: model.TraitBits[t]}
	}
	return entries
}
