package navigator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned when a label does not name one of the page sections.
var ErrUnknownSection = errors.New("unknown section")

// Section identifies one scrollable region of the page.
type Section int

const (
	SectionDemo Section = iota
	SectionMap
	SectionCharts
	SectionAbout
)

const numSections = 4

// Sections returns every section in page order.
func Sections() []Section {
	return []Section{SectionDemo, SectionMap, SectionCharts, SectionAbout}
}

func (s Section) Valid() bool {
	return s >= SectionDemo && s < numSections
}

// String returns the section id used for anchors and config values.
func (s Section) String() string {
	switch s {
	case SectionDemo:
		return "demo"
	case SectionMap:
		return "map"
	case SectionCharts:
		return "charts"
	case SectionAbout:
		return "about"
	default:
		return fmt.Sprintf("section(%d)", int(s))
	}
}

// Label is the text shown on the navigation bar.
func (s Section) Label() string {
	switch s {
	case SectionDemo:
		return "Demo"
	case SectionMap:
		return "Map"
	case SectionCharts:
		return "Charts"
	case SectionAbout:
		return "About Us"
	default:
		return ""
	}
}

func (s Section) Anchor() string {
	return "#" + s.String()
}

// ParseSection maps an id such as "map" or "#map" to its Section.
func ParseSection(id string) (Section, error) {
	key := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(id), "#"))
	for _, s := range Sections() {
		if s.String() == key {
			return s, nil
		}
	}
	return SectionDemo, fmt.Errorf("%w: %q", ErrUnknownSection, id)
}

// Offsets maps a section to the top edge of its region in the scrollable document.
// A section without an entry has not been laid out yet.
type Offsets map[Section]float64
