package dxfrender

import (
	"fmt"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/benoitkugler/dxfvis/dxfpattern"
	"github.com/benoitkugler/dxfvis/internal/logging"
)

// Item is the deferred rendering of one entity.
type Item struct {
	Op     dxfdraw.Op
	BBox   dxfgeom.BBox
	Type   string // DXF type of the source entity
	Handle string
}

// Renderer converts the entities of a document into deferred
// operations, resolving their color and linetype.
type Renderer struct {
	doc  *dxfdoc.Document
	opts Options
}

// NewRenderer returns a renderer for the entities of doc.
func NewRenderer(doc *dxfdoc.Document, opts ...Option) (*Renderer, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Renderer{doc: doc, opts: o}, nil
}

// Entity returns the drawing operation and bounding box of e.
// It returns false for entities which are not rendered: hidden,
// degenerate, or of an unsupported kind. An error is only returned
// for unsupported geometry in StrictErrorMode.
//
// Dimensions are not rendered by this method: their block is
// expanded by Collect.
func (r *Renderer) Entity(e dxfdoc.Entity) (Item, bool, error) {
	if !r.doc.Visible(e) {
		logging.Logger().Debug("hidden entity", "type", e.Type(), "layer", e.Attrs().Layer)
		return Item{}, false, nil
	}
	item := Item{Type: e.Type(), Handle: e.Attrs().Handle}
	var (
		prim dxfdraw.Primitive
		args []dxfdraw.Arg
	)
	switch e := e.(type) {
	case *dxfdoc.Line:
		if e.Start.Equal(e.End) {
			return Item{}, false, nil
		}
		prim = dxfdraw.Line
		args = []dxfdraw.Arg{dxfdraw.Coord(e.Start), dxfdraw.Coord(e.End)}
		item.BBox = dxfgeom.BBoxOf(e.Start, e.End)
	case *dxfdoc.Circle:
		if !(e.Radius > 0) {
			return Item{}, false, nil
		}
		prim = dxfdraw.Circle
		args = []dxfdraw.Arg{dxfdraw.Coord(e.Center), dxfdraw.Scalar(e.Radius)}
		item.BBox = dxfgeom.CircleBBox(e.Center, e.Radius)
	case *dxfdoc.Arc:
		if !(e.Radius > 0) || sameAngle(e.StartAngle, e.EndAngle) {
			return Item{}, false, nil
		}
		start, end := dxfpattern.NormalizeArcAngles(e.StartAngle, e.EndAngle)
		prim = dxfdraw.Arc
		args = []dxfdraw.Arg{dxfdraw.Coord(e.Center), dxfdraw.Scalar(e.Radius), dxfdraw.Angle(start), dxfdraw.Angle(end)}
		item.BBox = dxfgeom.CircleBBox(e.Center, e.Radius)
	case *dxfdoc.LWPolyline:
		if !hasExtent(e.Vertices) {
			return Item{}, false, nil
		}
		prim = dxfdraw.Polyline
		args = []dxfdraw.Arg{dxfdraw.Coords(e.Vertices), dxfdraw.Flag(e.Closed)}
		item.BBox = dxfgeom.BBoxOf(e.Vertices...)
	case *dxfdoc.Polyline:
		if e.Is3D {
			return Item{}, false, r.unsupported(e, "3D polyline")
		}
		if !hasExtent(e.Vertices) {
			return Item{}, false, nil
		}
		prim = dxfdraw.Polyline
		args = []dxfdraw.Arg{dxfdraw.Coords(e.Vertices), dxfdraw.Flag(e.Closed)}
		item.BBox = dxfgeom.BBoxOf(e.Vertices...)
	case *dxfdoc.PointEntity:
		item.Op = dxfdraw.NewOp(dxfdraw.Dot,
			[]dxfdraw.Arg{dxfdraw.Coord(e.Location), dxfdraw.Scalar(r.opts.DotRadius)},
			map[string]dxfdraw.Arg{dxfdraw.ArgColor: dxfdraw.Color(r.doc.Color(e))})
		item.BBox = dxfgeom.BBoxOf(e.Location)
		return item, true, nil
	case *dxfdoc.Dimension, *dxfdoc.Text, *dxfdoc.MText, *dxfdoc.Insert, *dxfdoc.Ellipse, *dxfdoc.Unknown:
		logging.Logger().Debug("entity not rendered", "type", e.Type())
		return Item{}, false, nil
	default:
		return Item{}, false, nil
	}
	item.Op = dxfdraw.NewOp(prim, args, r.stroke(e))
	return item, true, nil
}

// stroke returns the named arguments selecting the stroke strategy:
// solid, numeric dash pattern, or approximated descriptive linetype.
func (r *Renderer) stroke(e dxfdoc.Entity) map[string]dxfdraw.Arg {
	out := map[string]dxfdraw.Arg{
		dxfdraw.ArgColor:     dxfdraw.Color(r.doc.Color(e)),
		dxfdraw.ArgWidth:     dxfdraw.Scalar(r.opts.LineWidth),
		dxfdraw.ArgDotRadius: dxfdraw.Scalar(r.opts.DotRadius),
	}
	lt := r.doc.Linetype(e)
	switch {
	case lt == nil || lt.IsSolid():
	case len(lt.Pattern) > 1:
		out[dxfdraw.ArgPattern] = dxfdraw.Scalars(dxfpattern.Normalize(lt.Pattern))
	case lt.Description != "":
		length := r.opts.DefaultPatternLength
		if lt.HasLength {
			length = lt.Length
		}
		out[dxfdraw.ArgText] = dxfdraw.Text(lt.Description)
		out[dxfdraw.ArgLength] = dxfdraw.Scalar(dxfpattern.NormalizeLength(length))
	}
	return out
}

// unsupported applies the error mode to an entity which can't be rendered.
func (r *Renderer) unsupported(e dxfdoc.Entity, what string) error {
	switch r.opts.ErrorMode {
	case dxfdoc.StrictErrorMode:
		return fmt.Errorf("%w: %s (handle %q)", ErrUnsupportedGeometry, what, e.Attrs().Handle)
	case dxfdoc.WarnErrorMode:
		logging.Logger().Warn("unsupported geometry skipped", "kind", what, "handle", e.Attrs().Handle)
	}
	return nil
}

// sameAngle returns true if the arc from a to b is empty.
// Angles are compared once negative values are folded, so that
// an arc from 0 to 360 is a full turn.
func sameAngle(a, b float64) bool {
	return dxfpattern.FoldAngle(a) == dxfpattern.FoldAngle(b)
}

// hasExtent returns true if the points are not all equal.
func hasExtent(points []dxfgeom.Point) bool {
	for _, p := range points[min(1, len(points)):] {
		if !p.Equal(points[0]) {
			return true
		}
	}
	return false
}
