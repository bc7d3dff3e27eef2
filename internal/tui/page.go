package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/chart"
	"github.com/travisdwitt/oakview/internal/navigator"
)

const (
	chartCardMinWidth = 44
	pageMaxWidth      = 120
)

type pageLayout struct {
	lines   []string
	offsets navigator.Offsets
}

// viewportHeight is the number of page rows visible above the navigation bar.
func (m model) viewportHeight() int {
	h := m.height - navBarHeight - statusBarHeight
	if h < minViewport {
		h = minViewport
	}
	return h
}

func (m model) contentWidth() int {
	w := m.width
	if w > pageMaxWidth {
		w = pageMaxWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// buildPage renders every section in order. Each section fills at least one
// viewport and the offsets record the first row of each.
func (m model) buildPage() pageLayout {
	vh := m.viewportHeight()
	layout := pageLayout{offsets: navigator.Offsets{}}

	for i, s := range navigator.Sections() {
		if i > 0 {
			for j := 0; j < spacerHeight; j++ {
				layout.lines = append(layout.lines, "")
			}
		}
		layout.offsets[s] = float64(len(layout.lines))

		block := strings.Split(m.renderSection(s), "\n")
		fill := vh - len(block)
		if s == navigator.SectionDemo && fill > 0 {
			// Demo is vertically centered.
			top := fill / 2
			block = append(make([]string, top), block...)
			fill -= top
		}
		layout.lines = append(layout.lines, block...)
		for ; fill > 0; fill-- {
			layout.lines = append(layout.lines, "")
		}
	}
	return layout
}

func (m model) renderSection(s navigator.Section) string {
	var content string
	switch s {
	case navigator.SectionDemo:
		content = m.renderDemoSection()
	case navigator.SectionMap:
		content = m.renderMapSection()
	case navigator.SectionCharts:
		content = m.renderChartsSection()
	case navigator.SectionAbout:
		content = m.renderAboutSection()
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
}

// sectionTitle is dimmed until the section has been in view once.
func (m model) sectionTitle(s navigator.Section, text string) string {
	if m.view.revealed[s] {
		return titleStyle.Render(text)
	}
	return mutedStyle.Render(text)
}

func (m model) renderChartsSection() string {
	title := m.sectionTitle(navigator.SectionCharts, "Oakland Data Insights")
	subtitle := subtitleStyle.Render("Interactive charts and visualizations of Oakland's key metrics")

	width := m.contentWidth()
	population := chart.PopulationCard()
	demographics := chart.DemographicsCard()
	housing := chart.HousingCard()

	var top string
	if width >= 2*chartCardMinWidth {
		half := width / 2
		top = lipgloss.JoinHorizontal(lipgloss.Top, renderCard(population, half), renderCard(demographics, half))
	} else {
		top = lipgloss.JoinVertical(lipgloss.Left, renderCard(population, width), renderCard(demographics, width))
	}
	bottom := renderCard(housing, width)
	hint := mutedStyle.Render("[e] Download charts as PNG")

	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", top, bottom, hint)
}

// relayout rebuilds the page, publishes fresh offsets and keeps the scroll
// position in range.
func (m *model) relayout() pageLayout {
	page := m.buildPage()
	m.view.offsets = page.offsets
	m.scrollY = clamp(m.scrollY, 0, m.maxScroll(page))
	m.scrollTarget = clamp(m.scrollTarget, 0, m.maxScroll(page))
	return page
}

func (m model) maxScroll(page pageLayout) int {
	return max(0, len(page.lines)-m.viewportHeight())
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
