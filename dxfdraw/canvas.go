package dxfdraw

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/dxfvis/dxfgeom"
)

// Canvas is the drawing surface targeted by deferred operations.
// Coordinates and lengths are in pixels, with the y axis pointing
// down. Angles are in degrees: the angle a designates the point
// center + radius * (cos a, sin a).
type Canvas interface {
	// Line strokes the segment [p1, p2].
	Line(p1, p2 dxfgeom.Point, c color.RGBA, width float64)
	// Circle strokes a full circle.
	Circle(center dxfgeom.Point, radius float64, c color.RGBA, width float64)
	// Arc strokes the arc going from startDeg to endDeg, which may be
	// lower than startDeg: the sweep then goes backward.
	Arc(center dxfgeom.Point, radius, startDeg, endDeg float64, c color.RGBA, width float64)
	// Dot fills a disc.
	Dot(center dxfgeom.Point, radius float64, c color.RGBA)
}

// Call is one recorded canvas call.
type Call struct {
	Method     string // Line, Circle, Arc or Dot
	P1, P2     dxfgeom.Point
	Radius     float64
	Start, End float64
	Color      color.RGBA
	Width      float64
}

func (c Call) String() string {
	switch c.Method {
	case "Line":
		return fmt.Sprintf("Line %s %s w=%g", c.P1, c.P2, c.Width)
	case "Arc":
		return fmt.Sprintf("Arc %s r=%g %g→%g w=%g", c.P1, c.Radius, c.Start, c.End, c.Width)
	default:
		return fmt.Sprintf("%s %s r=%g w=%g", c.Method, c.P1, c.Radius, c.Width)
	}
}

// Recorder is a Canvas storing the calls it receives.
type Recorder struct {
	Calls []Call
}

var _ Canvas = (*Recorder)(nil)

func (r *Recorder) Line(p1, p2 dxfgeom.Point, c color.RGBA, width float64) {
	r.Calls = append(r.Calls, Call{Method: "Line", P1: p1, P2: p2, Color: c, Width: width})
}

func (r *Recorder) Circle(center dxfgeom.Point, radius float64, c color.RGBA, width float64) {
	r.Calls = append(r.Calls, Call{Method: "Circle", P1: center, Radius: radius, Color: c, Width: width})
}

func (r *Recorder) Arc(center dxfgeom.Point, radius, startDeg, endDeg float64, c color.RGBA, width float64) {
	r.Calls = append(r.Calls, Call{Method: "Arc", P1: center, Radius: radius, Start: startDeg, End: endDeg, Color: c, Width: width})
}

func (r *Recorder) Dot(center dxfgeom.Point, radius float64, c color.RGBA) {
	r.Calls = append(r.Calls, Call{Method: "Dot", P1: center, Radius: radius, Color: c})
}

// Count returns the number of calls to the given method.
func (r *Recorder) Count(method string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Method == method {
			n++
		}
	}
	return n
}
