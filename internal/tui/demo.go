package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/travisdwitt/oakview/internal/navigator"
)

const (
	videoFrameWidth  = 60
	videoFrameHeight = 12
)

// skyline scrolls across the video frame while it plays.
var skyline = []string{
	"        ▄▄              ▄█▄          ▄▄▄                 ",
	"   ▄▄  ███    ▄▄▄      █████   ▄▄   █████    ▄▄     ▄▄▄  ",
	"  ████ ███▄  █████ ▄▄  █████  ████  ██████  ████▄  █████ ",
	"▄▄████▄████▄▄█████████▄█████▄▄████▄▄██████▄▄█████▄▄█████▄",
}

func (m *model) updateVideo(msg videoTickMsg) tea.Cmd {
	if msg.gen != m.video.gen || !m.video.playing || m.video.ended {
		return nil
	}
	m.video.elapsed += videoTick
	if m.video.elapsed < m.video.duration {
		return videoTickCmd(m.video.gen)
	}

	m.video.elapsed = m.video.duration
	m.video.playing = false
	m.video.ended = true
	m.log.Info("demo video ended")
	return m.navigate(navigator.SectionMap)
}

// togglePlayback pauses, resumes, or restarts a finished video.
func (m *model) togglePlayback() tea.Cmd {
	m.video.gen++
	if m.video.playing {
		m.video.playing = false
		return nil
	}
	if m.video.ended {
		m.video.ended = false
		m.video.elapsed = 0
	}
	m.video.playing = true
	return videoTickCmd(m.video.gen)
}

// skipVideo is the "Skip to Map" button: same effect as the video ending.
func (m *model) skipVideo() tea.Cmd {
	m.video.gen++
	m.video.playing = false
	return m.navigate(navigator.SectionMap)
}

func (m model) renderDemoSection() string {
	title := m.sectionTitle(navigator.SectionDemo, "Oakland Data Explorer")
	subtitle := subtitleStyle.Render("Explore the city through maps, charts and the people behind them")

	frame := m.renderVideoFrame()
	controls := m.renderVideoControls()
	hint := mutedStyle.Render("Scroll Down ↓")

	return lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", frame, controls, "", hint)
}

func (m model) renderVideoFrame() string {
	g := newGrid(videoFrameWidth, videoFrameHeight, ' ')
	shift := int(m.video.elapsed / (200 * time.Millisecond))
	for row, line := range skyline {
		runes := []rune(line)
		for x := 0; x < videoFrameWidth; x++ {
			g.set(x, videoFrameHeight-len(skyline)+row, runes[(x+shift)%len(runes)], "#3b82f6")
		}
	}
	caption := "Oakland, CA"
	if m.video.ended {
		caption = "Thanks for watching"
	}
	g.text((videoFrameWidth-len(caption))/2, 2, caption, "#e5e7eb")

	if !m.video.playing && !m.video.ended {
		g.text(videoFrameWidth/2-1, 4, "▶", "#e5e7eb")
	}

	return cardStyle.Padding(0).Render(g.render())
}

func (m model) renderVideoControls() string {
	const barWidth = 30
	filled := int(m.video.progress() * barWidth)
	bar := accentStyle(navigator.SectionDemo).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", barWidth-filled))

	state := "▶"
	if m.video.playing {
		state = "❚❚"
	}
	clock := fmt.Sprintf("%s / %s", formatClock(m.video.elapsed), formatClock(m.video.duration))
	skip := badgeStyle.Render("[s] Skip to Map")
	return fmt.Sprintf("%s %s %s  %s", state, bar, clock, skip)
}

func formatClock(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
