package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/travisdwitt/oakview/internal/navigator"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.relayout()
		m.notifyScroll()
		if m.startSection != "" {
			cmd := m.jumpToStart()
			return m, cmd
		}
		return m, nil

	case startSectionMsg:
		m.startSection = msg.id
		if m.width > 0 {
			cmd := m.jumpToStart()
			return m, cmd
		}
		return m, nil

	case videoTickMsg:
		cmd := m.updateVideo(msg)
		return m, cmd

	case scrollTickMsg:
		cmd := m.updateScrollAnimation(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.mode != ModeBrowse {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return m.quit()
		}

		switch m.mode {
		case ModeHelp:
			return m.updateHelp(key), nil
		case ModeConfirm:
			return m.updateConfirm(key)
		}

		m.errorMessage = ""
		m.successMessage = ""

		switch key {
		case "q":
			return m.quit()
		case "?":
			m.mode = ModeHelp
			m.helpScroll = 0
			return m, nil
		case "s":
			cmd := m.skipVideo()
			return m, cmd
		case "x":
			filename, err := m.snapshotFilename()
			if err == nil {
				err = m.exportVisualTXT(filename)
			}
			if err != nil {
				m.errorMessage = fmt.Sprintf("Error exporting: %v", err)
				m.log.Error("text export failed", "file", filename, "error", err)
			} else {
				m.successMessage = fmt.Sprintf("Exported to %s", filepath.Base(filename))
			}
			return m, nil
		case "e":
			existing, err := m.existingChartExports()
			if err != nil {
				m.errorMessage = fmt.Sprintf("Error exporting: %v", err)
				m.log.Error("chart export failed", "error", err)
				return m, nil
			}
			if len(existing) > 0 {
				m.pendingExport = fmt.Sprintf("%d chart file(s)", len(existing))
				m.confirmAction = ConfirmOverwriteExport
				m.mode = ModeConfirm
				return m, nil
			}
			m.runChartExport()
			return m, nil
		case "y":
			m.copyAnchor()
			return m, nil
		}

		if m.nav.CurrentActive() == navigator.SectionMap && m.handleMapKey(key) {
			m.relayout()
			return m, nil
		}

		if cmd, ok := m.handleNavigation(key); ok {
			return m, cmd
		}
	}

	return m, nil
}

// jumpToStart applies the section requested on the command line.
func (m *model) jumpToStart() tea.Cmd {
	id := m.startSection
	m.startSection = ""
	if !m.nav.NavigateToLabel(id) {
		m.errorMessage = fmt.Sprintf("Unknown section %q", id)
		return nil
	}
	cmd, ok := m.view.takePending()
	if !ok {
		return nil
	}
	// No animation on startup.
	cmd.Smooth = false
	m.view.ScrollTo(cmd)
	return m.applyScrollCommand()
}

func (m model) quit() (tea.Model, tea.Cmd) {
	m.sub.Unsubscribe()
	m.nav.Reset()
	m.animating = false
	m.video.playing = false
	return m, tea.Quit
}

func (m model) updateHelp(key string) model {
	switch key {
	case "j", "down":
		maxScroll := max(0, len(helpLines)-(m.height-1))
		if m.helpScroll < maxScroll {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.mode = ModeBrowse
		m.helpScroll = 0
	}
	return m
}

func (m model) updateConfirm(key string) (tea.Model, tea.Cmd) {
	action := m.confirmAction
	m.mode = ModeBrowse
	m.confirmAction = ConfirmNone
	m.pendingExport = ""

	switch strings.ToLower(key) {
	case "y":
		if action == ConfirmOverwriteExport {
			m.runChartExport()
		}
	default:
		m.successMessage = "Cancelled"
	}
	return m, nil
}

func (m *model) runChartExport() {
	files, err := m.exportCharts()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Error exporting: %v", err)
		m.log.Error("chart export failed", "error", err)
		return
	}
	m.successMessage = fmt.Sprintf("Exported %d charts to %s", len(files), filepath.Dir(files[0]))
}
