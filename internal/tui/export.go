package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/travisdwitt/oakview/internal/chart"
)

// exportVisualTXT writes the rows currently on screen, without styling.
func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	page := m.relayout()
	end := min(len(page.lines), m.scrollY+m.viewportHeight())
	if m.scrollY >= end {
		return fmt.Errorf("%w: page is empty", chart.ErrNothingToExport)
	}

	for _, line := range page.lines[m.scrollY:end] {
		fmt.Fprintln(file, strings.TrimRight(ansi.Strip(line), " "))
	}
	return nil
}

func (m *model) snapshotFilename() (string, error) {
	return m.cfg.SavePath(fmt.Sprintf("oakview-%s.txt", m.nav.CurrentActive()))
}

func chartFilenames(m *model) ([]string, error) {
	cards := chart.Cards()
	names := make([]string, len(cards))
	for i, c := range cards {
		name, err := m.cfg.SavePath(c.Name + ".png")
		if err != nil {
			return nil, err
		}
		names[i] = name
	}
	return names, nil
}

// existingChartExports lists export targets that would be overwritten.
func (m *model) existingChartExports() ([]string, error) {
	names, err := chartFilenames(m)
	if err != nil {
		return nil, err
	}
	var existing []string
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			existing = append(existing, name)
		}
	}
	return existing, nil
}

// exportCharts saves one PNG per chart card.
func (m *model) exportCharts() ([]string, error) {
	names, err := chartFilenames(m)
	if err != nil {
		return nil, err
	}
	for i, card := range chart.Cards() {
		if err := chart.SavePNG(card, names[i], chart.DefaultPNGWidth, chart.DefaultPNGHeight); err != nil {
			return names[:i], fmt.Errorf("export %s: %w", card.Name, err)
		}
	}
	m.log.Info("charts exported", "files", len(names))
	return names, nil
}
