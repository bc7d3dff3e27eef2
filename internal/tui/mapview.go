package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/navigator"
)

type mapMarker struct {
	top, left float64 // percent of the map
}

var pointsOfInterest = []mapMarker{
	{30, 40}, {45, 55}, {60, 35}, {25, 60}, {50, 70},
}

type trafficRoute struct {
	top, left, width float64 // percent of the map
	angle            float64 // degrees
}

var trafficRoutes = []trafficRoute{
	{40, 20, 30, 30},
	{50, 30, 20, -15},
	{60, 50, 25, 5},
}

func (m *model) handleMapKey(key string) bool {
	switch key {
	case "v":
		m.mapState.view = (m.mapState.view + 1) % numMapViews
	case "t":
		m.mapState.traffic = !m.mapState.traffic
	case "p":
		m.mapState.points = !m.mapState.points
	case "d":
		m.mapState.heatmap = !m.mapState.heatmap
	case "+", "=":
		m.mapState.elevation = min(100, m.mapState.elevation+elevationStep)
	case "-":
		m.mapState.elevation = max(0, m.mapState.elevation-elevationStep)
	case "F":
		m.mapState.fullscreen = !m.mapState.fullscreen
	case "0":
		m.mapState = defaultMapState()
	default:
		return false
	}
	return true
}

func (m model) mapSize() (int, int) {
	if m.mapState.fullscreen && m.width > 4 {
		return m.width - 4, max(mapHeight, m.viewportHeight()-6)
	}
	return mapWidth, mapHeight
}

func (m model) renderMapGrid() *grid {
	w, h := m.mapSize()
	g := newGrid(w, h, ' ')

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch m.mapState.view {
			case MapStandard:
				switch {
				case y%4 == 0 && x%8 == 0:
					g.set(x, y, '┼', "#4b5563")
				case y%4 == 0:
					g.set(x, y, '─', "#4b5563")
				case x%8 == 0:
					g.set(x, y, '│', "#4b5563")
				}
			case MapSatellite:
				if (x*7+y*13)%5 < 2 {
					g.set(x, y, '▒', "#166534")
				} else {
					g.set(x, y, '░', "#14532d")
				}
			case MapTerrain:
				// Contour spacing tightens as elevation rises.
				band := 2 + (100-m.mapState.elevation)/20
				if (x/2+y*2+int(6*math.Sin(float64(x)/6)))%band == 0 {
					g.set(x, y, '~', "#a16207")
				}
			}
		}
	}

	if m.mapState.heatmap {
		cx, cy := 0.5*float64(w), 0.4*float64(h)
		rx, ry := 0.3*float64(w), 0.3*float64(h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				dx := (float64(x) - cx) / rx
				dy := (float64(y) - cy) / ry
				d := dx*dx + dy*dy
				switch {
				case d <= 0.3:
					g.set(x, y, '▓', "#dc2626")
				case d <= 1:
					g.set(x, y, '░', "#f97316")
				}
			}
		}
	}

	if m.mapState.traffic {
		for _, r := range trafficRoutes {
			x0 := r.left / 100 * float64(w)
			y0 := r.top / 100 * float64(h)
			length := r.width / 100 * float64(w)
			rad := r.angle * math.Pi / 180
			// Cells are about twice as tall as wide.
			x1 := x0 + length*math.Cos(rad)
			y1 := y0 + length*math.Sin(rad)/2
			g.line(int(x0), int(y0), int(math.Round(x1)), int(math.Round(y1)), '━', "#ef4444")
		}
	}

	if m.mapState.points {
		for _, p := range pointsOfInterest {
			x := int(p.left / 100 * float64(w))
			y := int(p.top / 100 * float64(h))
			g.set(x, y, '●', "#f97316")
		}
	}

	badge := " Oakland, CA "
	g.text(1, 0, badge, "#e5e7eb")
	g.text(w-len(" Live Data ")-1, 0, " Live Data ", "#22c55e")
	return g
}

func (m model) renderMapControls() string {
	var tabs []string
	for v := MapStandard; v < numMapViews; v++ {
		if v == m.mapState.view {
			tabs = append(tabs, badgeStyle.Render(v.String()))
		} else {
			tabs = append(tabs, mutedStyle.Render(" "+v.String()+" "))
		}
	}

	toggle := func(on bool) string {
		if on {
			return successStyle.Render("[on] ")
		}
		return mutedStyle.Render("[off]")
	}

	const sliderWidth = 20
	filled := m.mapState.elevation * sliderWidth / 100
	slider := accentStyle(navigator.SectionMap).Render(strings.Repeat("━", filled)) +
		"●" + mutedStyle.Render(strings.Repeat("─", sliderWidth-filled))

	lines := []string{
		titleStyle.Render("Map Controls"),
		subtitleStyle.Render("Customize your map view"),
		"",
		"View  [v]  " + strings.Join(tabs, ""),
		"",
		toggle(m.mapState.traffic) + " Traffic            [t]",
		toggle(m.mapState.points) + " Points of Interest [p]",
		toggle(m.mapState.heatmap) + " Population Density [d]",
		"",
		fmt.Sprintf("Elevation %3d%%  [-/+]", m.mapState.elevation),
		slider,
		"",
		mutedStyle.Render("[0] Reset View   [F] Fullscreen"),
	}
	return cardStyle.Render(strings.Join(lines, "\n"))
}

func (m model) renderMapSection() string {
	title := m.sectionTitle(navigator.SectionMap, "Interactive Map")
	subtitle := subtitleStyle.Render("Explore Oakland's neighborhoods, landmarks, and data points")

	mapCard := cardStyle.Padding(0).Render(m.renderMapGrid().render())
	var body string
	if m.mapState.fullscreen || m.width < mapWidth+50 {
		body = lipgloss.JoinVertical(lipgloss.Left, mapCard, m.renderMapControls())
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, mapCard, " ", m.renderMapControls())
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", body)
}
