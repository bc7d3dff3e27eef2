package navigator

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// ErrMissingOffset reports a section whose position the layout cannot provide yet.
var ErrMissingOffset = errors.New("section offset unavailable")

// ScrollCommand asks the rendering layer to move the viewport.
type ScrollCommand struct {
	Section Section
	Target  float64
	Smooth  bool
}

// Scroller receives scroll commands. It must not call back into the navigator
// synchronously; the resulting scroll position arrives later through OnScroll.
type Scroller interface {
	ScrollTo(cmd ScrollCommand)
}

// Layout supplies the current section offsets for explicit navigation.
type Layout interface {
	SectionOffsets() Offsets
}

// Listener is notified when the active section changes.
type Listener func(prev, next Section)

// Navigator tracks which section is in view and turns navigation requests into
// scroll commands. It is driven from a single event loop and is not safe for
// concurrent use.
type Navigator struct {
	active   Section
	layout   Layout
	scroller Scroller
	log      *slog.Logger
	subs     []*Subscription
}

// New returns a navigator with demo active. A nil logger discards output.
func New(layout Layout, scroller Scroller, log *slog.Logger) *Navigator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Navigator{
		active:   SectionDemo,
		layout:   layout,
		scroller: scroller,
		log:      log,
	}
}

// ProbePosition is the point one third down the viewport used to pick the active section.
func ProbePosition(scrollY, viewportHeight float64) float64 {
	return scrollY + viewportHeight/3
}

// OnScroll re-evaluates the active section for a new scroll position.
// The deepest section whose top is at or above the probe wins; sections
// missing from offsets are skipped. With no offsets at all the previous
// section is kept.
func (n *Navigator) OnScroll(scrollY, viewportHeight float64, offsets Offsets) Section {
	if len(offsets) == 0 {
		return n.active
	}
	probe := ProbePosition(scrollY, viewportHeight)
	next := SectionDemo

	sections := Sections()
	for i := len(sections) - 1; i >= 0; i-- {
		top, ok := offsets[sections[i]]
		if !ok {
			continue
		}
		if top <= probe {
			next = sections[i]
			break
		}
	}

	n.setActive(next)
	return next
}

// NavigateTo issues a smooth scroll toward the top of s. The active section is
// left alone; it follows once the scroll position is reported back. It reports
// whether a command was issued.
func (n *Navigator) NavigateTo(s Section) bool {
	if !s.Valid() {
		n.log.Warn("navigate ignored", "error", fmt.Errorf("%w: %d", ErrUnknownSection, int(s)))
		return false
	}

	var offsets Offsets
	if n.layout != nil {
		offsets = n.layout.SectionOffsets()
	}
	top, ok := offsets[s]
	if !ok {
		n.log.Warn("navigate ignored", "section", s.String(), "error", ErrMissingOffset)
		return false
	}

	n.log.Debug("navigate", "section", s.String(), "target", top)
	if n.scroller != nil {
		n.scroller.ScrollTo(ScrollCommand{Section: s, Target: top, Smooth: true})
	}
	return true
}

// NavigateToLabel resolves a section id from a click target or flag value.
func (n *Navigator) NavigateToLabel(id string) bool {
	s, err := ParseSection(id)
	if err != nil {
		n.log.Warn("navigate ignored", "error", err)
		return false
	}
	return n.NavigateTo(s)
}

func (n *Navigator) CurrentActive() Section {
	return n.active
}

// Reset returns the navigator to its initial state without notifying listeners.
func (n *Navigator) Reset() {
	n.active = SectionDemo
}

func (n *Navigator) setActive(next Section) {
	prev := n.active
	if prev == next {
		return
	}
	n.active = next
	n.log.Debug("active section changed", "from", prev.String(), "to", next.String())

	// Copy so a listener may unsubscribe while being notified.
	subs := append([]*Subscription(nil), n.subs...)
	for _, sub := range subs {
		if sub.active {
			sub.fn(prev, next)
		}
	}
}

// Subscription is a listener registration owned by the view that created it.
type Subscription struct {
	id     uuid.UUID
	nav    *Navigator
	fn     Listener
	active bool
}

// Subscribe registers fn for active-section changes until Unsubscribe is called.
func (n *Navigator) Subscribe(fn Listener) *Subscription {
	sub := &Subscription{
		id:     uuid.New(),
		nav:    n,
		fn:     fn,
		active: fn != nil,
	}
	if sub.active {
		n.subs = append(n.subs, sub)
	}
	return sub
}

func (s *Subscription) ID() string {
	return s.id.String()
}

func (s *Subscription) Active() bool {
	return s.active
}

// Unsubscribe stops deliveries to the listener. Calling it twice is harmless.
func (s *Subscription) Unsubscribe() {
	if s == nil || !s.active {
		return
	}
	s.active = false
	subs := s.nav.subs
	for i, sub := range subs {
		if sub == s {
			s.nav.subs = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}

// Subscribers reports how many listeners are registered.
func (n *Navigator) Subscribers() int {
	return len(n.subs)
}
