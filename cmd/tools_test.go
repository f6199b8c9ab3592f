package cmd

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/server"
)

func TestScale(t *testing.T) {
	tests := []struct {
		args      []string
		wantScale float64
		wantRows  int
		large     bool
	}{
		{[]string{"scale", "1.1"}, 1.15, 4, false},
		{[]string{"scale", "0.1"}, 0.85, 4, false},
		{[]string{"scale", "2.2", "--platform", "ios"}, 2, 12, true},
	}
	for _, tt := range tests {
		out, err := execute(t, "", tt.args...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		var res ScaleResult
		decodeYAML(t, out, &res)
		if res.Scale != tt.wantScale || len(res.Rows) != tt.wantRows || res.ExtraLarge != tt.large {
			t.Errorf("%v: scale=%v rows=%d large=%v", tt.args, res.Scale, len(res.Rows), res.ExtraLarge)
		}
		selected := 0
		for _, r := range res.Rows {
			if r.Selected {
				selected++
				if r.Scale != tt.wantScale {
					t.Errorf("%v: selected row %v", tt.args, r.Scale)
				}
			}
		}
		if selected != 1 {
			t.Errorf("%v: %d selected rows", tt.args, selected)
		}
	}
}

func TestScaleErrors(t *testing.T) {
	if _, err := execute(t, "", "scale", "big"); err == nil {
		t.Error("expected error for non-numeric scale")
	}
	if _, err := execute(t, "", "scale", "1", "--platform", "web"); err == nil {
		t.Error("expected error for unknown platform")
	}
}

func TestScalePreview(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scales.png")
	out, err := execute(t, "", "scale", "1", "--text", "Hi", "--preview", path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "preview: "+path) {
		t.Errorf("output does not name preview: %s", out)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	// Tallest row is 1.3x of 13px.
	if img.Bounds().Dy() < 17 {
		t.Errorf("preview too small: %v", img.Bounds())
	}
}

func TestMeasureRows(t *testing.T) {
	rows := measureRows("Aa", []float64{1, 2}, 2)
	if rows[0].Width != 14 || rows[0].Height != 13 || rows[0].Selected {
		t.Errorf("row 1x = %+v", rows[0])
	}
	if rows[1].Width != 28 || rows[1].Height != 26 || !rows[1].Selected {
		t.Errorf("row 2x = %+v", rows[1])
	}
}

func TestRenderScalePreviewBoxesSelected(t *testing.T) {
	rows := measureRows("X", []float64{1, 2}, 2)
	img := renderScalePreview("X", rows)
	// The selected row is outlined in red.
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if c.R == 255 && c.G == 0 && c.B == 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("selected row is not boxed")
	}
}

func TestOutlineClipsToImage(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	outline(img, image.Rect(-5, 2, 4, 20), red)
	if img.RGBAAt(0, 2) != red || img.RGBAAt(3, 9) != red || img.RGBAAt(3, 5) != red {
		t.Error("clipped outline not drawn")
	}
	if img.RGBAAt(5, 5) == red || img.RGBAAt(1, 5) == red {
		t.Error("drew outside the outline")
	}
	outline(img, image.Rect(20, 20, 30, 30), red)
	outline(img, image.Rect(6, 6, 6, 8), red)
	if img.RGBAAt(6, 6) == red {
		t.Error("empty rectangle drawn")
	}
}

func TestTraitsCommand(t *testing.T) {
	out, err := execute(t, "", "traits", "header", "link")
	if err != nil {
		t.Fatal(err)
	}
	var res server.TraitsResult
	decodeYAML(t, out, &res)
	if res.Mask != model.TraitBitHeader|model.TraitBitLink {
		t.Errorf("mask = %d", res.Mask)
	}

	out, err = execute(t, "", "traits", "--mask", "65600")
	if err != nil {
		t.Fatal(err)
	}
	decodeYAML(t, out, &res)
	if strings.Join(res.Traits, ",") != "text,header" {
		t.Errorf("traits = %v", res.Traits)
	}

	out, err = execute(t, "", "traits", "--role", "switch", "--state", "checked")
	if err != nil {
		t.Fatal(err)
	}
	res = server.TraitsResult{}
	decodeYAML(t, out, &res)
	if res.Mask&model.TraitBitSelected == 0 {
		t.Errorf("checked switch should be selected: %v", res.Traits)
	}

	out, err = execute(t, "", "traits")
	if err != nil {
		t.Fatal(err)
	}
	var table []TraitEntry
	decodeYAML(t, out, &table)
	if len(table) != len(model.TraitBits)-1 || table[0].Trait != "button" {
		t.Errorf("table = %+v", table)
	}

	if _, err := execute(t, "", "traits", "--role", "robot"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestDescribeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"describe", "--label", "Volume", "--value", "50%", "--hint", "Swipe up."}, "Volume. 50%. Swipe up"},
		{[]string{"describe", "--label", "News", "--role", "header", "--sdk", "19"}, "News. heading"},
		{[]string{"describe"}, ""},
	}
	for _, tt := range tests {
		out, err := execute(t, "", tt.args...)
		if err != nil {
			t.Fatal(err)
		}
		var res DescribeResult
		decodeYAML(t, out, &res)
		if res.Description != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, res.Description, tt.want)
		}
	}
	if _, err := execute(t, "", "describe", "--role", "robot"); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestEventsCommand(t *testing.T) {
	out, err := execute(t, "", "events", "--platform", "ios")
	if err != nil {
		t.Fatal(err)
	}
	var res EventsResult
	decodeYAML(t, out, &res)
	if len(res.Android) != 0 || len(res.IOS) != 3 || res.IOS[0].Type != "announcement" {
		t.Errorf("ios events = %+v", res)
	}

	out, err = execute(t, "", "events")
	if err != nil {
		t.Fatal(err)
	}
	res = EventsResult{}
	decodeYAML(t, out, &res)
	if len(res.Android) != len(model.AndroidEvents) {
		t.Errorf("android events = %d, want %d", len(res.Android), len(model.AndroidEvents))
	}
}

func TestServeConfig(t *testing.T) {
	resetFlags(rootCmd)
	if err := serveCmd.ParseFlags([]string{"--transport", "streamable-http", "--port", "9000", "--session-ttl", "5m"}); err != nil {
		t.Fatal(err)
	}
	cfg := serveConfig(serveCmd)
	if cfg.Transport != "streamable-http" || cfg.Port != 9000 || cfg.SessionTTL.Minutes() != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
}
