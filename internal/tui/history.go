package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/travisdwitt/oakview/internal/navigator"
)

// goBack returns to the section that was active before the last navigation.
func (m *model) goBack() tea.Cmd {
	if len(m.history.back) == 0 {
		return nil
	}

	lastIndex := len(m.history.back) - 1
	target := m.history.back[lastIndex]
	m.history.back = m.history.back[:lastIndex]

	current := m.nav.CurrentActive()
	if !m.nav.NavigateTo(target) {
		return nil
	}
	m.history.forward = append(m.history.forward, current)
	return m.applyScrollCommand()
}

func (m *model) goForward() tea.Cmd {
	if len(m.history.forward) == 0 {
		return nil
	}

	lastIndex := len(m.history.forward) - 1
	target := m.history.forward[lastIndex]
	m.history.forward = m.history.forward[:lastIndex]

	current := m.nav.CurrentActive()
	if !m.nav.NavigateTo(target) {
		return nil
	}
	m.history.back = append(m.history.back, current)
	return m.applyScrollCommand()
}

func (h history) canGoBack() bool {
	return len(h.back) > 0
}

func (h history) peekBack() (navigator.Section, bool) {
	if len(h.back) == 0 {
		return navigator.SectionDemo, false
	}
	return h.back[len(h.back)-1], true
}
