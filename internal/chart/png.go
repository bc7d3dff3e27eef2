package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// ErrNothingToExport is returned for cards without data.
var ErrNothingToExport = errors.New("nothing to export")

const (
	pngPadding    = 24.0
	pngTitleSize  = 16.0
	pngLabelSize  = 11.0
	pngLineHeight = 18.0
)

// DefaultPNGWidth and DefaultPNGHeight size exported card images.
const (
	DefaultPNGWidth  = 640
	DefaultPNGHeight = 400
)

// SavePNG renders the card and writes it to filename.
func SavePNG(card Card, filename string, width, height int) error {
	dc, err := renderContext(card, width, height)
	if err != nil {
		return err
	}
	return dc.SavePNG(filename)
}

// WritePNG renders the card and encodes it to w.
func WritePNG(w io.Writer, card Card, width, height int) error {
	dc, err := renderContext(card, width, height)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

func renderContext(card Card, width, height int) (*gg.Context, error) {
	if len(card.Bars) == 0 && len(card.Segments) == 0 && len(card.Series) == 0 {
		return nil, fmt.Errorf("%s: %w", card.Name, ErrNothingToExport)
	}
	if width <= 0 || height <= 0 {
		width, height = DefaultPNGWidth, DefaultPNGHeight
	}

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %v", err)
	}
	titleFace := truetype.NewFace(ttfFont, &truetype.Options{Size: pngTitleSize, DPI: 72, Hinting: font.HintingFull})
	labelFace := truetype.NewFace(ttfFont, &truetype.Options{Size: pngLabelSize, DPI: 72, Hinting: font.HintingFull})

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetFontFace(titleFace)
	dc.SetColor(color.Black)
	dc.DrawString(card.Title, pngPadding, pngPadding+pngTitleSize/2)
	dc.SetFontFace(labelFace)
	dc.SetHexColor("#6b7280")
	dc.DrawString(card.Description, pngPadding, pngPadding+pngTitleSize/2+pngLineHeight)

	plot := plotRect(width, height)

	switch card.Kind {
	case KindBar:
		err = drawBarsPNG(dc, card, plot)
	case KindPie:
		drawPiePNG(dc, card, plot)
	case KindLine:
		err = drawLinesPNG(dc, card, plot)
	default:
		err = fmt.Errorf("%s: kind %d: %w", card.Name, int(card.Kind), ErrInvalidDomain)
	}
	if err != nil {
		return nil, err
	}
	return dc, nil
}

type rect struct {
	x, y, w, h float64
}

// plotRect is the area below the heading, leaving a label row at the bottom.
func plotRect(width, height int) rect {
	plot := rect{
		x: pngPadding,
		y: pngPadding + pngTitleSize + 2*pngLineHeight,
		w: float64(width) - 2*pngPadding,
	}
	plot.h = float64(height) - plot.y - pngPadding - pngLineHeight
	return plot
}

func drawBarsPNG(dc *gg.Context, card Card, plot rect) error {
	heights, err := BarGeometry(card.BarValues(), card.MaxValue, plot.h)
	if err != nil {
		return fmt.Errorf("%s: %w", card.Name, err)
	}

	slot := plot.w / float64(len(heights))
	barWidth := slot * 0.6
	baseline := plot.y + plot.h
	for i, h := range heights {
		x := plot.x + float64(i)*slot + (slot-barWidth)/2
		dc.SetHexColor(card.BarColor)
		dc.DrawRectangle(x, baseline-h, barWidth, h)
		dc.Fill()

		dc.SetColor(color.Black)
		dc.DrawStringAnchored(card.Bars[i].Label, x+barWidth/2, baseline+pngLineHeight/2, 0.5, 0.5)
	}
	return nil
}

// pieLayout places the pie on the left of the plot area.
func pieLayout(plot rect) (cx, cy, radius float64) {
	radius = plot.h / 2
	if plot.w/4 < radius {
		radius = plot.w / 4
	}
	return plot.x + radius, plot.y + plot.h/2, radius
}

func drawPiePNG(dc *gg.Context, card Card, plot rect) {
	arcs := PieGeometry(card.Segments)
	cx, cy, radius := pieLayout(plot)

	for _, a := range VisibleArcs(arcs) {
		// Angles start at twelve o'clock and run clockwise.
		dc.SetHexColor(a.Color)
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, radius, gg.Radians(a.StartAngle-90), gg.Radians(a.EndAngle-90))
		dc.ClosePath()
		dc.Fill()
	}

	legendX := cx + radius + pngPadding
	legendY := plot.y + pngLineHeight
	for i, a := range arcs {
		y := legendY + float64(i)*pngLineHeight
		dc.SetHexColor(a.Color)
		dc.DrawRectangle(legendX, y-8, 10, 10)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawString(fmt.Sprintf("%s: %g%%", a.Label, a.Share), legendX+16, y)
	}
}

func drawLinesPNG(dc *gg.Context, card Card, plot rect) error {
	lines, err := LineGeometry(card.Series, card.XDomain)
	if err != nil {
		return fmt.Errorf("%s: %w", card.Name, err)
	}

	dc.SetHexColor("#e5e7eb")
	dc.SetLineWidth(1)
	dc.DrawRectangle(plot.x, plot.y, plot.w, plot.h)
	dc.Stroke()

	toPixel := func(p Point) (float64, float64) {
		return plot.x + p.X/PlotExtent*plot.w, plot.y + p.Y/PlotExtent*plot.h
	}

	dc.SetLineWidth(2)
	for _, line := range lines {
		if len(line.Points) == 0 {
			continue
		}
		dc.SetHexColor(line.Color)
		x, y := toPixel(line.Points[0])
		dc.MoveTo(x, y)
		for _, p := range line.Points[1:] {
			x, y = toPixel(p)
			dc.LineTo(x, y)
		}
		dc.Stroke()
	}

	dc.SetColor(color.Black)
	for i, label := range card.XLabels {
		x := plot.x
		if len(card.XLabels) > 1 {
			x += float64(i) / float64(len(card.XLabels)-1) * plot.w
		}
		dc.DrawStringAnchored(label, x, plot.y+plot.h+pngLineHeight/2, 0.5, 0.5)
	}

	legendX := plot.x + plot.w
	for i := len(lines) - 1; i >= 0; i-- {
		w, _ := dc.MeasureString(lines[i].Name)
		legendX -= w + 28
		dc.SetHexColor(lines[i].Color)
		dc.DrawRectangle(legendX, plot.y-pngLineHeight, 12, 3)
		dc.Fill()
		dc.SetColor(color.Black)
		dc.DrawString(lines[i].Name, legendX+16, plot.y-pngLineHeight+4)
	}
	return nil
}
