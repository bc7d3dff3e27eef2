package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// grid is a fixed rune canvas with an optional foreground color per cell.
type grid struct {
	width  int
	height int
	cells  [][]rune
	colors [][]string
}

func newGrid(width, height int, fill rune) *grid {
	g := &grid{width: width, height: height}
	g.cells = make([][]rune, height)
	g.colors = make([][]string, height)
	for y := range g.cells {
		g.cells[y] = make([]rune, width)
		g.colors[y] = make([]string, width)
		for x := range g.cells[y] {
			g.cells[y][x] = fill
		}
	}
	return g
}

func (g *grid) isValidPos(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

func (g *grid) set(x, y int, r rune, color string) {
	if !g.isValidPos(x, y) {
		return
	}
	g.cells[y][x] = r
	g.colors[y][x] = color
}

func (g *grid) at(x, y int) rune {
	if !g.isValidPos(x, y) {
		return 0
	}
	return g.cells[y][x]
}

// line draws a straight segment between two cells (Bresenham).
func (g *grid) line(x0, y0, x1, y1 int, r rune, color string) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		g.set(x0, y0, r, color)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (g *grid) text(x, y int, s string, color string) {
	for i, r := range []rune(s) {
		g.set(x+i, y, r, color)
	}
}

// plain returns the grid without color, one string per row.
func (g *grid) plain() []string {
	rows := make([]string, g.height)
	for y, row := range g.cells {
		rows[y] = string(row)
	}
	return rows
}

// render styles runs of equally colored cells.
func (g *grid) render() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for x := 1; x <= g.width; x++ {
			if x < g.width && g.colors[y][x] == g.colors[y][start] {
				continue
			}
			run := string(g.cells[y][start:x])
			if c := g.colors[y][start]; c != "" {
				run = lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(run)
			}
			b.WriteString(run)
			start = x
		}
	}
	return b.String()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
