package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/navigator"
)

var helpLines = []string{
	"Oakview Help",
	"============",
	"",
	"Scrolling:",
	"----------",
	"  j/↓  k/↑         Scroll down / up",
	"  J/K              Scroll 2x faster",
	"  PgDn/Ctrl+d      Half page down",
	"  PgUp/Ctrl+u      Half page up",
	"  g/G              Top / bottom of the page",
	"  Mouse wheel      Scroll",
	"",
	"Sections:",
	"---------",
	"  1 2 3 4          Demo, Map, Charts, About Us",
	"  Tab/Shift+Tab    Next / previous section",
	"  Click            Jump to a navigation bar entry",
	"  b/Backspace      Back to the previous section",
	"  f                Forward again",
	"",
	"Demo:",
	"-----",
	"  Space            Play / pause the video",
	"  s                Skip to Map",
	"",
	"Map:",
	"----",
	"  v                Cycle Standard / Satellite / Terrain",
	"  t                Toggle traffic",
	"  p                Toggle points of interest",
	"  d                Toggle population density",
	"  +/-              Raise / lower elevation",
	"  F                Fullscreen",
	"  0                Reset view",
	"",
	"Export:",
	"-------",
	"  x                Save the visible screen as text",
	"  e                Save the charts as PNG",
	"  y                Copy a link to the current section",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q/Ctrl+C         Quit",
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.mode == ModeHelp {
		return m.helpView()
	}

	page := m.buildPage()
	vh := m.viewportHeight()

	var result strings.Builder
	for i := 0; i < vh; i++ {
		row := m.scrollY + i
		if row < len(page.lines) {
			result.WriteString(page.lines[row])
		}
		result.WriteString("\n")
	}

	result.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderNavBar()))
	result.WriteString("\n")
	result.WriteString(m.statusLine(page))
	return result.String()
}

func (m model) renderNavBar() string {
	items := make([]string, 0, len(navigator.Sections()))
	for _, s := range navigator.Sections() {
		items = append(items, m.renderNavItem(s))
	}
	return navBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, items...))
}

func (m model) renderNavItem(s navigator.Section) string {
	text := sectionIcons[s] + " " + s.Label()
	if s == m.nav.CurrentActive() {
		return navActiveStyle.Foreground(sectionAccents[s]).Render(text)
	}
	return navItemStyle.Render(text)
}

func (m model) statusLine(page pageLayout) string {
	if m.mode == ModeConfirm {
		return errorStyle.Render(m.confirmMessage())
	}

	active := m.nav.CurrentActive()
	status := fmt.Sprintf("Mode: %s | %s | %d%%", m.modeString(), active.Label(), m.scrollPercent(page))
	if m.animating {
		status += " | scrolling"
	}
	if prev, ok := m.history.peekBack(); ok && m.history.canGoBack() {
		status += fmt.Sprintf(" | b: back to %s", prev.Label())
	}

	switch {
	case m.errorMessage != "":
		return statusStyle.Render(status+" | ") + errorStyle.Render("ERROR: "+m.errorMessage)
	case m.successMessage != "":
		return statusStyle.Render(status+" | ") + successStyle.Render(m.successMessage)
	default:
		return statusStyle.Render(status + " | ? for help | q to quit")
	}
}

func (m model) scrollPercent(page pageLayout) int {
	maxScroll := m.maxScroll(page)
	if maxScroll == 0 {
		return 100
	}
	return m.scrollY * 100 / maxScroll
}

func (m model) confirmMessage() string {
	switch m.confirmAction {
	case ConfirmOverwriteExport:
		return fmt.Sprintf("%s already exist. Overwrite? (y/n)", m.pendingExport)
	default:
		return "Continue? (y/n)"
	}
}

func (m model) modeString() string {
	switch m.mode {
	case ModeBrowse:
		return "BROWSE"
	case ModeHelp:
		return "HELP"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	visibleHeight := max(1, m.height-1)
	start := min(m.helpScroll, len(helpLines))
	end := min(len(helpLines), start+visibleHeight)

	var result strings.Builder
	for _, line := range helpLines[start:end] {
		result.WriteString(line)
		result.WriteString("\n")
	}
	result.WriteString(mutedStyle.Render("j/k to scroll, any other key to close"))
	return result.String()
}
