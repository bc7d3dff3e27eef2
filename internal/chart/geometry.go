package chart

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidDomain reports input for which no finite geometry exists.
var ErrInvalidDomain = errors.New("invalid chart domain")

// degreesPerShare converts a percentage share into degrees of the full circle.
const degreesPerShare = 3.6

// FullTurn is the angle at which a pie closes.
const FullTurn = 360.0

// PlotExtent is the size of the normalized line chart plot area on both axes.
const PlotExtent = 100.0

// Segment is one slice of a pie dataset. Share is a percentage of the circle.
type Segment struct {
	Label string  `json:"label"`
	Share float64 `json:"share"`
	Color string  `json:"color"`
}

// Arc is the angular range of a pie segment in degrees, clockwise from 0.
type Arc struct {
	Segment
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
}

// Span is the angular width of the arc.
func (a Arc) Span() float64 {
	return a.EndAngle - a.StartAngle
}

// Contains reports whether angle falls in [StartAngle, EndAngle).
func (a Arc) Contains(angle float64) bool {
	return angle >= a.StartAngle && angle < a.EndAngle
}

// Series is one named line of a line chart.
type Series struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
	Color  string    `json:"color"`
}

// Point is a vertex in normalized plot coordinates: x and y in [0, PlotExtent],
// y growing downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polyline is the vertex list computed for one series.
type Polyline struct {
	Name   string  `json:"name"`
	Color  string  `json:"color"`
	Points []Point `json:"points"`
}

// BarGeometry scales each value to a pixel height relative to maxValue.
// Values above maxValue produce heights above maxPixelHeight.
func BarGeometry(values []float64, maxValue, maxPixelHeight float64) ([]float64, error) {
	if maxValue <= 0 || math.IsNaN(maxValue) || math.IsInf(maxValue, 0) {
		return nil, fmt.Errorf("bar geometry: max value %v: %w", maxValue, ErrInvalidDomain)
	}

	heights := make([]float64, len(values))
	for i, v := range values {
		heights[i] = v / maxValue * maxPixelHeight
	}
	return heights, nil
}

// PieGeometry lays segments out contiguously from 0 degrees in input order.
// Shares are not normalized: a total above 100 runs past 360 degrees and a
// total below 100 leaves a gap after the last arc.
func PieGeometry(segments []Segment) []Arc {
	arcs := make([]Arc, len(segments))
	// Each arc starts exactly where the previous one ended.
	angle := 0.0
	for i, seg := range segments {
		start := angle
		angle += seg.Share * degreesPerShare
		arcs[i] = Arc{
			Segment:    seg,
			StartAngle: start,
			EndAngle:   angle,
		}
	}
	return arcs
}

// VisibleArcs clips arcs to a single turn for drawing. Arcs starting at or past
// FullTurn are dropped and the rest end at FullTurn at most, so an overfull pie
// never wraps onto its first slices.
func VisibleArcs(arcs []Arc) []Arc {
	visible := make([]Arc, 0, len(arcs))
	for _, a := range arcs {
		if a.StartAngle >= FullTurn {
			continue
		}
		a.EndAngle = math.Min(a.EndAngle, FullTurn)
		visible = append(visible, a)
	}
	return visible
}

// ArcAt returns the index of the arc covering angle, or -1.
func ArcAt(arcs []Arc, angle float64) int {
	for i, a := range arcs {
		if a.Contains(angle) {
			return i
		}
	}
	return -1
}

// LineGeometry maps every series onto shared x positions across xDomainCount
// slots (the longest series when xDomainCount <= 0). Each series is scaled to
// the full plot height on its own min/max so series of different magnitude
// remain comparable.
func LineGeometry(series []Series, xDomainCount int) ([]Polyline, error) {
	n := xDomainCount
	if n <= 0 {
		for _, s := range series {
			if len(s.Values) > n {
				n = len(s.Values)
			}
		}
	}
	if n < 2 {
		return nil, fmt.Errorf("line geometry: %d x positions: %w", n, ErrInvalidDomain)
	}

	lines := make([]Polyline, len(series))
	for i, s := range series {
		count := len(s.Values)
		if count > n {
			count = n
		}
		values := s.Values[:count]
		lo, hi := bounds(values)

		points := make([]Point, count)
		for j, v := range values {
			y := PlotExtent / 2
			if hi > lo {
				y = PlotExtent - (v-lo)/(hi-lo)*PlotExtent
			}
			points[j] = Point{X: float64(j) / float64(n-1) * PlotExtent, Y: y}
		}
		lines[i] = Polyline{Name: s.Name, Color: s.Color, Points: points}
	}
	return lines, nil
}

func bounds(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
