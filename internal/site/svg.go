package site

import (
	"fmt"
	"html/template"
	"math"
	"strings"

	"github.com/travisdwitt/oakview/internal/chart"
)

const (
	svgBarHeight = 200
	svgPieRadius = 40.0
	svgPieCenter = 50.0
)

// chartSVG draws a card as inline SVG from its computed geometry.
func chartSVG(card chart.Card) (template.HTML, error) {
	geom, err := card.Geometry()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	switch card.Kind {
	case chart.KindBar:
		writeBarSVG(&b, card, geom.Heights)
	case chart.KindPie:
		writePieSVG(&b, geom.Arcs)
	case chart.KindLine:
		writeLineSVG(&b, geom.Lines)
	}
	return template.HTML(b.String()), nil
}

func writeBarSVG(b *strings.Builder, card chart.Card, heights []float64) {
	const slot = 40.0
	width := slot * float64(len(heights))
	maxHeight := card.MaxPixelHeight
	if maxHeight <= 0 {
		maxHeight = svgBarHeight
	}

	fmt.Fprintf(b, `<svg class="chart bar" viewBox="0 0 %g %g" role="img">`, width, maxHeight+16)
	for i, h := range heights {
		x := float64(i)*slot + 6
		fmt.Fprintf(b, `<rect x="%g" y="%.2f" width="%g" height="%.2f" fill="%s"><title>%s: %g</title></rect>`,
			x, maxHeight-h, slot-12, h, card.BarColor,
			template.HTMLEscapeString(card.Bars[i].Label), card.Bars[i].Value)
		fmt.Fprintf(b, `<text x="%g" y="%g" text-anchor="middle">%s</text>`,
			x+(slot-12)/2, maxHeight+12, template.HTMLEscapeString(card.Bars[i].Label))
	}
	b.WriteString(`</svg>`)
}

// polar converts a clockwise angle from twelve o'clock to a point on the circle.
func polar(angle float64) (float64, float64) {
	rad := angle * math.Pi / 180
	return svgPieCenter + svgPieRadius*math.Sin(rad), svgPieCenter - svgPieRadius*math.Cos(rad)
}

func writePieSVG(b *strings.Builder, arcs []chart.Arc) {
	b.WriteString(`<svg class="chart pie" viewBox="0 0 100 100" role="img">`)
	for _, a := range chart.VisibleArcs(arcs) {
		span := a.Span()
		if span <= 0 {
			continue
		}
		title := fmt.Sprintf("<title>%s: %g%%</title>", template.HTMLEscapeString(a.Label), a.Share)
		if span >= chart.FullTurn {
			fmt.Fprintf(b, `<circle cx="%g" cy="%g" r="%g" fill="%s">%s</circle>`,
				svgPieCenter, svgPieCenter, svgPieRadius, a.Color, title)
			continue
		}
		x0, y0 := polar(a.StartAngle)
		x1, y1 := polar(a.EndAngle)
		large := 0
		if span > 180 {
			large = 1
		}
		fmt.Fprintf(b, `<path d="M%g,%g L%.3f,%.3f A%g,%g 0 %d 1 %.3f,%.3f Z" fill="%s">%s</path>`,
			svgPieCenter, svgPieCenter, x0, y0, svgPieRadius, svgPieRadius, large, x1, y1, a.Color, title)
	}
	b.WriteString(`</svg>`)
}

func writeLineSVG(b *strings.Builder, lines []chart.Polyline) {
	fmt.Fprintf(b, `<svg class="chart line" viewBox="0 0 %g %g" preserveAspectRatio="none" role="img">`,
		chart.PlotExtent, chart.PlotExtent)
	for _, line := range lines {
		points := make([]string, len(line.Points))
		for i, p := range line.Points {
			points[i] = fmt.Sprintf("%.2f,%.2f", p.X, p.Y)
		}
		fmt.Fprintf(b, `<polyline points="%s" fill="none" stroke="%s" stroke-width="1.5" vector-effect="non-scaling-stroke"><title>%s</title></polyline>`,
			strings.Join(points, " "), line.Color, template.HTMLEscapeString(line.Name))
	}
	b.WriteString(`</svg>`)
}
