package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"strconv"

	"github.com/mj1618/a11y-bridge/internal/observable"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/mj1618/a11y-bridge/internal/platform"
	"github.com/mj1618/a11y-bridge/internal/server"
	"github.com/spf13/cobra"
)

// ScaleResult is the output of the scale command.
type ScaleResult struct {
	server.FontScaleResult `yaml:",inline"`
	Text                   string     `yaml:"text"              json:"text"`
	Rows                   []ScaleRow `yaml:"rows"              json:"rows"`
	Preview                string     `yaml:"preview,omitempty" json:"preview,omitempty"`
}

var scaleCmd = &cobra.Command{
	Use:   "scale <raw>",
	Short: "Normalize a raw OS font scale to the platform's nearest valid scale",
	Long: `Snap a raw font scale to the nearest scale the platform supports and report
the extra-small and extra-large flags apps observe. Also sizes a sample text
at every valid scale, optionally rendering the rows to a PNG.

Examples:
  a11y-bridge scale 1.1
  a11y-bridge scale 2.2 --platform ios --preview scales.png`,
	Args: cobra.ExactArgs(1),
	RunE: runScale,
}

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().String("platform", "android", "Platform: android, ios")
	scaleCmd.Flags().String("text", "Aa Sample", "Sample text to size at each scale")
	scaleCmd.Flags().String("preview", "", "Write a PNG preview of every scale to this path")
}

func runScale(cmd *cobra.Command, args []string) error {
	raw, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid font scale %q: %w", args[0], err)
	}
	p, _ := cmd.Flags().GetString("platform")
	kind, err := platform.ParseKind(p)
	if err != nil {
		return err
	}
	text, _ := cmd.Flags().GetString("text")

	res := ScaleResult{
		FontScaleResult: server.FontScaleFor(kind, raw),
		Text:            text,
	}
	valid := observable.AndroidFontScales
	if kind == platform.IOS {
		valid = observable.IOSFontScales
	}
	res.Rows = measureRows(text, valid, res.Scale)

	if path, _ := cmd.Flags().GetString("preview"); path != "" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, renderScalePreview(text, res.Rows)); err != nil {
			return fmt.Errorf("encode preview: %w", err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return err
		}
		res.Preview = path
	}
	return output.Fprint(cmd.OutOrStdout(), res)
}
