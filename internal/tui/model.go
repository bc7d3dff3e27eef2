package tui

import (
	"log/slog"
	"time"

	"github.com/travisdwitt/oakview/internal/config"
	"github.com/travisdwitt/oakview/internal/navigator"
)

// viewport is shared by every copy of the model. It is the layout the navigator
// reads offsets from and the scroller it issues commands to.
type viewport struct {
	offsets  navigator.Offsets
	pending  *navigator.ScrollCommand
	revealed map[navigator.Section]bool
}

func newViewport() *viewport {
	return &viewport{
		offsets:  navigator.Offsets{},
		revealed: map[navigator.Section]bool{navigator.SectionDemo: true},
	}
}

func (v *viewport) SectionOffsets() navigator.Offsets {
	return v.offsets
}

// ScrollTo keeps only the newest command.
func (v *viewport) ScrollTo(cmd navigator.ScrollCommand) {
	v.pending = &cmd
}

func (v *viewport) takePending() (navigator.ScrollCommand, bool) {
	if v.pending == nil {
		return navigator.ScrollCommand{}, false
	}
	cmd := *v.pending
	v.pending = nil
	return cmd, true
}

type videoState struct {
	elapsed  time.Duration
	duration time.Duration
	playing  bool
	ended    bool
	gen      int
}

func (v videoState) progress() float64 {
	if v.duration <= 0 {
		return 0
	}
	p := float64(v.elapsed) / float64(v.duration)
	if p > 1 {
		p = 1
	}
	return p
}

type mapState struct {
	view       MapView
	traffic    bool
	points     bool
	heatmap    bool
	elevation  int
	fullscreen bool
}

func defaultMapState() mapState {
	return mapState{view: MapStandard, points: true, elevation: 50}
}

type history struct {
	back    []navigator.Section
	forward []navigator.Section
}

type model struct {
	width  int
	height int

	mode          Mode
	confirmAction ConfirmAction
	pendingExport string
	helpScroll    int
	startSection  string // applied once the first size is known

	scrollY      int
	scrollTarget int
	animating    bool
	scrollGen    int

	video    videoState
	mapState mapState
	history  history

	errorMessage   string
	successMessage string

	cfg  *config.Config
	log  *slog.Logger
	nav  *navigator.Navigator
	view *viewport
	sub  *navigator.Subscription
}
