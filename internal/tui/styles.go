package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/navigator"
)

var (
	colorForeground = lipgloss.Color("#e5e7eb")
	colorMuted      = lipgloss.Color("#6b7280")
	colorBorder     = lipgloss.Color("#374151")
	colorError      = lipgloss.Color("#ef4444")
	colorSuccess    = lipgloss.Color("#22c55e")

	// Accent per navigation entry: blue, orange, green, red.
	sectionAccents = map[navigator.Section]lipgloss.Color{
		navigator.SectionDemo:   lipgloss.Color("#3b82f6"),
		navigator.SectionMap:    lipgloss.Color("#f97316"),
		navigator.SectionCharts: lipgloss.Color("#22c55e"),
		navigator.SectionAbout:  lipgloss.Color("#ef4444"),
	}

	sectionIcons = map[navigator.Section]string{
		navigator.SectionDemo:   "▶",
		navigator.SectionMap:    "◈",
		navigator.SectionCharts: "▥",
		navigator.SectionAbout:  "☺",
	}
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorForeground)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle    = lipgloss.NewStyle().Foreground(colorError)
	successStyle  = lipgloss.NewStyle().Foreground(colorSuccess)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	navBarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	navItemStyle   = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	navActiveStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorForeground).
			Background(colorBorder).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

func accentStyle(s navigator.Section) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(sectionAccents[s])
}

func hexStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
