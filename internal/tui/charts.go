package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/chart"
)

// Partial block glyphs from one eighth to a full cell.
var barEighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

const barColumnWidth = 4

// renderBarChart draws one column per bar, scaled in eighths of a cell.
func renderBarChart(card chart.Card) (string, error) {
	heights, err := chart.BarGeometry(card.BarValues(), card.MaxValue, barPlotRows*8)
	if err != nil {
		return "", err
	}

	g := newGrid(len(heights)*(barColumnWidth+1), barPlotRows+1, ' ')
	for i, h := range heights {
		eighths := int(math.Round(h))
		x := i * (barColumnWidth + 1)
		for row := 0; row < barPlotRows && eighths > 0; row++ {
			glyph := barEighths[8]
			if eighths < 8 {
				glyph = barEighths[eighths]
			}
			for dx := 0; dx < barColumnWidth; dx++ {
				g.set(x+dx, barPlotRows-1-row, glyph, card.BarColor)
			}
			eighths -= 8
		}
		g.text(x, barPlotRows, centerText(card.Bars[i].Label, barColumnWidth), "")
	}
	return g.render(), nil
}

// pieAngle is the clockwise angle from twelve o'clock of the offset (dx, dy).
func pieAngle(dx, dy float64) float64 {
	deg := math.Atan2(dx, -dy) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// renderPieChart rasterizes the arcs into a circle. Cells are twice as tall as
// they are wide, so x distances are halved.
func renderPieChart(card chart.Card) string {
	arcs := chart.PieGeometry(card.Segments)
	visible := chart.VisibleArcs(arcs)

	w, h := pieRadius*4+1, pieRadius*2+1
	g := newGrid(w, h, ' ')
	cx, cy := float64(w-1)/2, float64(h-1)/2
	r := float64(pieRadius) + 0.5
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) / 2
			dy := float64(y) - cy
			if dx*dx+dy*dy > r*r {
				continue
			}
			if i := chart.ArcAt(visible, pieAngle(dx, dy)); i >= 0 {
				g.set(x, y, '█', visible[i].Color)
			}
		}
	}

	legend := make([]string, 0, len(arcs))
	for _, a := range arcs {
		legend = append(legend, hexStyle(a.Color).Render("■")+fmt.Sprintf(" %s: %g%%", a.Label, a.Share))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, g.render(), "  ", strings.Join(legend, "\n"))
}

// renderLineChart plots every polyline onto a shared grid.
func renderLineChart(card chart.Card, width int) (string, error) {
	lines, err := chart.LineGeometry(card.Series, card.XDomain)
	if err != nil {
		return "", err
	}
	if width < 10 {
		width = 10
	}

	g := newGrid(width, linePlotRows, ' ')
	toCell := func(p chart.Point) (int, int) {
		x := int(math.Round(p.X / chart.PlotExtent * float64(width-1)))
		y := int(math.Round(p.Y / chart.PlotExtent * float64(linePlotRows-1)))
		return x, y
	}
	for _, line := range lines {
		for i := 1; i < len(line.Points); i++ {
			x0, y0 := toCell(line.Points[i-1])
			x1, y1 := toCell(line.Points[i])
			g.line(x0, y0, x1, y1, '•', line.Color)
		}
	}

	labels := newGrid(width, 1, ' ')
	for i, label := range card.XLabels {
		x := 0
		if len(card.XLabels) > 1 {
			x = i * (width - len(label)) / (len(card.XLabels) - 1)
		}
		labels.text(x, 0, label, "")
	}

	legend := make([]string, 0, len(lines))
	for _, line := range lines {
		legend = append(legend, hexStyle(line.Color).Render("━")+" "+line.Name)
	}
	return strings.Join(legend, "  ") + "\n" + g.render() + "\n" + labels.render(), nil
}

// renderCard wraps a chart in a titled card. Failed geometry shows an empty state.
func renderCard(card chart.Card, width int) string {
	inner := width - 4
	var body string
	var err error
	switch card.Kind {
	case chart.KindBar:
		body, err = renderBarChart(card)
	case chart.KindPie:
		body = renderPieChart(card)
	case chart.KindLine:
		body, err = renderLineChart(card, inner)
	default:
		err = fmt.Errorf("unsupported chart kind %s", card.Kind)
	}
	if err != nil {
		body = mutedStyle.Render("No data available")
	}

	heading := titleStyle.Render(card.Title) + "\n" + subtitleStyle.Render(card.Description)
	content := heading + "\n\n" + lipgloss.PlaceHorizontal(inner, lipgloss.Center, body)
	return cardStyle.Width(width - 2).Render(content)
}

func centerText(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
