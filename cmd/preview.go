package cmd

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const previewPad = 8

// ScaleRow is the rendered size of the sample text at one font scale.
type ScaleRow struct {
	Scale    float64 `yaml:"scale"              json:"scale"`
	Width    int     `yaml:"width"              json:"width"`
	Height   int     `yaml:"height"             json:"height"`
	Selected bool    `yaml:"selected,omitempty" json:"selected,omitempty"`
}

// measureRows sizes text in the 7x13 bitmap face at each scale.
func measureRows(text string, scales []float64, selected float64) []ScaleRow {
	w, h := textSize(text)
	rows := make([]ScaleRow, len(scales))
	for i, s := range scales {
		rows[i] = ScaleRow{
			Scale:    s,
			Width:    scaled(w, s),
			Height:   scaled(h, s),
			Selected: s == selected,
		}
	}
	return rows
}

func textSize(text string) (int, int) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil()
	if w == 0 {
		w = 1
	}
	return w, face.Metrics().Height.Ceil()
}

func scaled(n int, s float64) int {
	return int(math.Round(float64(n) * s))
}

// renderText draws text at its native size onto a transparent image.
func renderText(text string, c color.Color) *image.RGBA {
	w, h := textSize(text)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(0, basicfont.Face7x13.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
	return img
}

// renderScalePreview draws text once per row, magnified to the row's scale,
// with a scale label on the left. The selected row is boxed.
func renderScalePreview(text string, rows []ScaleRow) *image.RGBA {
	textColor := color.RGBA{A: 255}
	labelColor := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	boxColor := color.RGBA{R: 255, A: 255}

	labelW := 0
	for _, r := range rows {
		if w, _ := textSize(scaleLabel(r.Scale)); w > labelW {
			labelW = w
		}
	}
	labelW += 2 * previewPad

	width, height := labelW+previewPad, previewPad
	for _, r := range rows {
		width = max(width, labelW+r.Width+2*previewPad)
		height += r.Height + previewPad
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	base := renderText(text, textColor)
	y := previewPad
	for _, r := range rows {
		label := renderText(scaleLabel(r.Scale), labelColor)
		lb := label.Bounds()
		ly := y + (r.Height-lb.Dy())/2
		draw.Draw(img, lb.Add(image.Pt(previewPad, ly)), label, image.Point{}, draw.Over)

		dst := image.Rect(labelW, y, labelW+r.Width, y+r.Height)
		draw.NearestNeighbor.Scale(img, dst, base, base.Bounds(), draw.Over, nil)
		if r.Selected {
			outline(img, dst.Inset(-2), boxColor)
		}
		y += r.Height + previewPad
	}
	return img
}

func scaleLabel(s float64) string {
	return fmt.Sprintf("%gx", s)
}

// outline strokes the one-pixel border of r, clipped to img.
func outline(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
