package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/navigator"
)

func (m *model) handleNavigation(key string) (tea.Cmd, bool) {
	switch key {
	case "j", "down", "J", "shift+down":
		m.scrollBy(m.getScrollSpeed(key))
	case "k", "up", "K", "shift+up":
		m.scrollBy(-m.getScrollSpeed(key))
	case "pgdown", "ctrl+d", " ":
		if key == " " && m.nav.CurrentActive() == navigator.SectionDemo {
			return m.togglePlayback(), true
		}
		m.scrollBy(m.viewportHeight() / 2)
	case "pgup", "ctrl+u":
		m.scrollBy(-m.viewportHeight() / 2)
	case "g", "home":
		m.scrollBy(-m.scrollY)
	case "G", "end":
		m.scrollBy(len(m.buildPage().lines))
	case "1", "2", "3", "4":
		return m.navigate(navigator.Sections()[key[0]-'1']), true
	case "tab":
		next := m.nav.CurrentActive() + 1
		if !next.Valid() {
			next = navigator.SectionDemo
		}
		return m.navigate(next), true
	case "shift+tab":
		prev := m.nav.CurrentActive() - 1
		if !prev.Valid() {
			prev = navigator.SectionAbout
		}
		return m.navigate(prev), true
	case "b", "backspace":
		return m.goBack(), true
	case "f":
		return m.goForward(), true
	default:
		return nil, false
	}
	return nil, true
}

func (m *model) getScrollSpeed(key string) int {
	switch key {
	case "J", "K", "shift+down", "shift+up":
		return 2 * m.cfg.ScrollStep
	default:
		return m.cfg.ScrollStep
	}
}

// scrollBy is a manual scroll. It cancels any smooth scroll in flight.
func (m *model) scrollBy(delta int) {
	m.animating = false
	m.scrollGen++
	page := m.relayout()
	m.scrollY = clamp(m.scrollY+delta, 0, m.maxScroll(page))
	m.scrollTarget = m.scrollY
	m.notifyScroll()
}

// notifyScroll reports the current position to the navigator.
func (m *model) notifyScroll() {
	m.nav.OnScroll(float64(m.scrollY), float64(m.viewportHeight()), m.view.offsets)
}

// navigate is an explicit request from the user or the demo video. It records
// history and hands the request to the navigator.
func (m *model) navigate(s navigator.Section) tea.Cmd {
	current := m.nav.CurrentActive()
	if !m.nav.NavigateTo(s) {
		return nil
	}
	if s != current {
		m.history.back = append(m.history.back, current)
		m.history.forward = m.history.forward[:0]
	}
	return m.applyScrollCommand()
}

// applyScrollCommand consumes the newest command issued by the navigator.
func (m *model) applyScrollCommand() tea.Cmd {
	cmd, ok := m.view.takePending()
	if !ok {
		return nil
	}

	page := m.relayout()
	m.scrollTarget = clamp(int(cmd.Target), 0, m.maxScroll(page))
	if !cmd.Smooth || !m.cfg.SmoothScroll {
		m.animating = false
		m.scrollY = m.scrollTarget
		m.notifyScroll()
		return nil
	}

	// A running animation just picks up the new target.
	if m.animating {
		return nil
	}
	m.animating = true
	m.scrollGen++
	return scrollTickCmd(m.scrollGen)
}

// updateScrollAnimation eases toward the target, a quarter of the distance per tick.
func (m *model) updateScrollAnimation(msg scrollTickMsg) tea.Cmd {
	if msg.gen != m.scrollGen || !m.animating {
		return nil
	}

	dist := m.scrollTarget - m.scrollY
	step := dist / 4
	if step == 0 && dist != 0 {
		step = 1
		if dist < 0 {
			step = -1
		}
	}
	m.scrollY += step
	m.notifyScroll()

	if m.scrollY == m.scrollTarget {
		m.animating = false
		return nil
	}
	return scrollTickCmd(m.scrollGen)
}

// navEntryAt maps a column on the navigation bar row to its section.
func (m model) navEntryAt(x int) (navigator.Section, bool) {
	bar := m.renderNavBar()
	left := (m.width - lipgloss.Width(bar)) / 2
	// border and padding
	pos := left + 2
	for _, s := range navigator.Sections() {
		w := lipgloss.Width(m.renderNavItem(s))
		if x >= pos && x < pos+w {
			return s, true
		}
		pos += w
	}
	return navigator.SectionDemo, false
}

func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.MouseWheelUp:
		m.scrollBy(-m.cfg.ScrollStep)
	case tea.MouseWheelDown:
		m.scrollBy(m.cfg.ScrollStep)
	case tea.MouseLeft:
		navTop := m.viewportHeight()
		if msg.Y >= navTop && msg.Y < navTop+navBarHeight {
			if s, ok := m.navEntryAt(msg.X); ok {
				cmd := m.navigate(s)
				return m, cmd
			}
		}
	}
	return m, nil
}
