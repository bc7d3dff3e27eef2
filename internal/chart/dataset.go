package chart

import "fmt"

type Kind int

const (
	KindBar Kind = iota
	KindPie
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindPie:
		return "pie"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Bar is one labeled value of a bar dataset.
type Bar struct {
	Label string
	Value float64
}

// Card is a titled dataset as shown on the charts section.
type Card struct {
	Name        string
	Title       string
	Description string
	Kind        Kind

	Bars           []Bar
	BarColor       string
	MaxValue       float64
	MaxPixelHeight float64

	Segments []Segment

	Series  []Series
	XLabels []string
	XDomain int
}

// Geometry holds the primitives computed for a card. Only the field matching
// the card kind is set.
type Geometry struct {
	Kind    string     `json:"kind"`
	Heights []float64  `json:"heights,omitempty"`
	Arcs    []Arc      `json:"arcs,omitempty"`
	Lines   []Polyline `json:"lines,omitempty"`
}

// BarValues returns a copy of the bar values in order.
func (c Card) BarValues() []float64 {
	values := make([]float64, len(c.Bars))
	for i, b := range c.Bars {
		values[i] = b.Value
	}
	return values
}

// Geometry runs the generator matching the card kind.
func (c Card) Geometry() (Geometry, error) {
	g := Geometry{Kind: c.Kind.String()}
	switch c.Kind {
	case KindBar:
		heights, err := BarGeometry(c.BarValues(), c.MaxValue, c.MaxPixelHeight)
		if err != nil {
			return g, fmt.Errorf("%s: %w", c.Name, err)
		}
		g.Heights = heights
	case KindPie:
		g.Arcs = PieGeometry(c.Segments)
	case KindLine:
		lines, err := LineGeometry(c.Series, c.XDomain)
		if err != nil {
			return g, fmt.Errorf("%s: %w", c.Name, err)
		}
		g.Lines = lines
	default:
		return g, fmt.Errorf("%s: kind %d: %w", c.Name, int(c.Kind), ErrInvalidDomain)
	}
	return g, nil
}

// PopulationCard is annual population in thousands.
func PopulationCard() Card {
	return Card{
		Name:        "population",
		Title:       "Population Growth",
		Description: "Annual population changes in Oakland",
		Kind:        KindBar,
		Bars: []Bar{
			{"2018", 425},
			{"2019", 429},
			{"2020", 433},
			{"2021", 435},
			{"2022", 440},
			{"2023", 445},
		},
		BarColor:       "#3b82f6",
		MaxValue:       450,
		MaxPixelHeight: 200,
	}
}

func DemographicsCard() Card {
	return Card{
		Name:        "demographics",
		Title:       "Demographics",
		Description: "Racial and ethnic composition",
		Kind:        KindPie,
		Segments: []Segment{
			{Label: "White", Share: 35, Color: "#3b82f6"},
			{Label: "Black", Share: 24, Color: "#06b6d4"},
			{Label: "Hispanic", Share: 27, Color: "#4f46e5"},
			{Label: "Asian", Share: 16, Color: "#8b5cf6"},
			{Label: "Other", Share: 8, Color: "#a855f7"},
		},
	}
}

// HousingCard is average monthly rent and home sale price over thirteen months.
func HousingCard() Card {
	return Card{
		Name:        "housing",
		Title:       "Housing Market Trends",
		Description: "Average rent and home sale prices",
		Kind:        KindLine,
		Series: []Series{
			{
				Name:   "Rent",
				Color:  "#3b82f6",
				Values: []float64{2450, 2462, 2475, 2490, 2502, 2515, 2530, 2541, 2555, 2568, 2580, 2594, 2607},
			},
			{
				Name:   "Home Prices",
				Color:  "#22c55e",
				Values: []float64{812000, 813500, 815000, 816200, 817800, 819000, 820500, 822100, 823400, 825000, 826300, 827800, 829200},
			},
		},
		XLabels: []string{"Jan", "Mar", "May", "Jul", "Sep", "Nov"},
		XDomain: 13,
	}
}

// Cards returns the landing page cards in display order.
func Cards() []Card {
	return []Card{PopulationCard(), DemographicsCard(), HousingCard()}
}

func CardByName(name string) (Card, bool) {
	for _, c := range Cards() {
		if c.Name == name {
			return c, true
		}
	}
	return Card{}, false
}
