package tui

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/travisdwitt/oakview/internal/config"
	"github.com/travisdwitt/oakview/internal/logging"
	"github.com/travisdwitt/oakview/internal/navigator"
)

// Run starts the landing page in the alternate screen and blocks until the user quits.
func Run(cfg *config.Config, log *slog.Logger) error {
	m := newModel(cfg, log)
	defer m.sub.Unsubscribe()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

func newModel(cfg *config.Config, log *slog.Logger) model {
	if log == nil {
		log = logging.Discard()
	}
	view := newViewport()
	nav := navigator.New(view, view, log)

	m := model{
		mode:     ModeBrowse,
		mapState: defaultMapState(),
		video: videoState{
			duration: time.Duration(cfg.VideoSeconds) * time.Second,
			playing:  cfg.Autoplay,
		},
		cfg:  cfg,
		log:  log,
		nav:  nav,
		view: view,
	}

	// The listener only touches the shared viewport, never a model copy.
	m.sub = nav.Subscribe(func(prev, next navigator.Section) {
		view.revealed[next] = true
		log.Info("section in view", "from", prev.String(), "to", next.String())
	})
	return m
}

type videoTickMsg struct{ gen int }

type scrollTickMsg struct{ gen int }

type startSectionMsg struct{ id string }

func videoTickCmd(gen int) tea.Cmd {
	return tea.Tick(videoTick, func(time.Time) tea.Msg {
		return videoTickMsg{gen: gen}
	})
}

func scrollTickCmd(gen int) tea.Cmd {
	return tea.Tick(scrollTick, func(time.Time) tea.Msg {
		return scrollTickMsg{gen: gen}
	})
}

func (m model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.video.playing {
		cmds = append(cmds, videoTickCmd(m.video.gen))
	}
	if m.cfg.Section != "" {
		id := m.cfg.Section
		cmds = append(cmds, func() tea.Msg { return startSectionMsg{id: id} })
	}
	return tea.Batch(cmds...)
}
