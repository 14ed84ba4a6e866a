package main

import (
	"fmt"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/halvorsen/trapmap"
)

// plotScale is how many pixels a unit of input coordinate space occupies.
// Fixed rather than computed, since the map's bounding rectangle is always
// finite.
const plotScale = 6.0

const plotPadding = 20

// renderPlot rasterizes the trapezoidal map to a PNG at path: every live
// trapezoid filled and outlined, every inserted segment drawn on top,
// labeled with its T-name.
func renderPlot(m *trapmap.Map, path string) error {
	left, right := m.Bounds()
	width := int(float64(right.X-left.X)*plotScale) + plotPadding*2
	height := int(float64(right.Y-left.Y)*plotScale) + plotPadding*2

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	labelFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("trapmap: parsing label font: %w", err)
	}
	c.SetFontFace(truetype.NewFace(labelFont, &truetype.Options{Size: 13}))

	// Flip so the origin is bottom-left, matching the input coordinate
	// convention, then translate/scale into the padded canvas.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(plotPadding, plotPadding)
	c.Scale(plotScale, plotScale)
	c.Translate(float64(-left.X), float64(-left.Y))
	c.SetLineWidth(1.0 / plotScale)

	names, err := m.BuildNames()
	if err != nil {
		return fmt.Errorf("trapmap: building names for plot labels: %w", err)
	}

	for _, id := range m.LiveTrapezoids() {
		drawTrapezoid(c, m, names, id)
	}
	for _, seg := range m.Segments() {
		c.SetRGB(0, 0, 0)
		c.DrawLine(float64(seg.Left.X), float64(seg.Left.Y), float64(seg.Right.X), float64(seg.Right.Y))
		c.Stroke()
	}

	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("trapmap: saving plot: %w", err)
	}
	return nil
}

func drawTrapezoid(c *gg.Context, m *trapmap.Map, names *trapmap.Names, id trapmap.TrapezoidID) {
	t := m.Trapezoid(id)
	topAt := func(x int64) float64 {
		if t.Top == nil {
			_, right := m.Bounds()
			return float64(right.Y)
		}
		f, _ := t.Top.YAtRat(x).Float64()
		return f
	}
	bottomAt := func(x int64) float64 {
		if t.Bottom == nil {
			left, _ := m.Bounds()
			return float64(left.Y)
		}
		f, _ := t.Bottom.YAtRat(x).Float64()
		return f
	}

	lx, rx := float64(t.LeftP.X), float64(t.RightP.X)
	c.MoveTo(lx, bottomAt(t.LeftP.X))
	c.LineTo(lx, topAt(t.LeftP.X))
	c.LineTo(rx, topAt(t.RightP.X))
	c.LineTo(rx, bottomAt(t.RightP.X))
	c.ClosePath()

	c.SetRGBA(0.3, 0.5, 1, 0.35)
	c.FillPreserve()
	c.SetRGB(0.1, 0.1, 0.1)
	c.Stroke()

	centerX := (lx + rx) / 2
	centerY := (topAt(t.LeftP.X) + bottomAt(t.LeftP.X) + topAt(t.RightP.X) + bottomAt(t.RightP.X)) / 4
	// Text has to be drawn under the identity matrix or the y-flip mirrors
	// it, so convert the center to screen coordinates first.
	screenX, screenY := c.TransformPoint(centerX, centerY)
	c.Push()
	c.Identity()
	c.SetRGB(0, 0, 0)
	c.DrawStringAnchored(names.TrapName[id], screenX, screenY, 0.5, 0.5)
	c.Pop()
}

// previewITerm prints path inline in an iTerm2 terminal. Not every terminal
// supports the iTerm2 inline image protocol; a failure here is
// DisplayUnavailable, logged by the caller, not fatal.
func previewITerm(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %v", ErrDisplayUnavailable, err)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
