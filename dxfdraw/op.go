// Package dxfdraw records drawing operations in document space and
// replays them on a pixel Canvas once the size of the drawing is
// known.
//
// An Op stores one of a fixed set of primitives together with its
// arguments. Each argument carries its MappingKind, so that it is
// converted to pixels only when the operation is invoked.
package dxfdraw

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/benoitkugler/dxfvis/dxfpattern"
)

// ErrBadArgs is returned when an operation does not match the
// arguments expected by its primitive.
var ErrBadArgs = errors.New("invalid primitive arguments")

// Primitive identifies a leaf drawing routine.
type Primitive uint8

const (
	// Line expects two Coord: the end points.
	Line Primitive = iota
	// Circle expects a Coord center and a Scalar radius.
	Circle
	// Arc expects a Coord center, a Scalar radius and two Angle,
	// the start and end of the sweep in the raster frame.
	Arc
	// Dot expects a Coord center and a Scalar radius.
	Dot
	// Polyline expects Coords vertices and a Flag, true when closed.
	Polyline
)

var primitiveNames = [...]string{
	Line:     "line",
	Circle:   "circle",
	Arc:      "arc",
	Dot:      "dot",
	Polyline: "polyline",
}

func (p Primitive) String() string {
	if int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("<unknown primitive %d>", p)
}

// Keys of the named arguments.
const (
	ArgColor     = "color"      // Color, required
	ArgWidth     = "width"      // Scalar, required for strokes
	ArgDotRadius = "dot_radius" // Scalar, defaults to half the width
	ArgPattern   = "pattern"    // Scalars, dash pattern
	ArgText      = "text"       // Text, approximated as a dash pattern...
	ArgLength    = "length"     // Scalar, ...with this nominal length
)

// Op is a deferred drawing operation.
type Op struct {
	Prim  Primitive
	Args  []Arg
	Named map[string]Arg
}

// NewOp returns an operation owning copies of args and named.
func NewOp(prim Primitive, args []Arg, named map[string]Arg) Op {
	op := Op{Prim: prim, Args: make([]Arg, len(args)), Named: make(map[string]Arg, len(named))}
	for i, a := range args {
		op.Args[i] = copyArg(a)
	}
	for k, a := range named {
		op.Named[k] = copyArg(a)
	}
	return op
}

func (op Op) String() string {
	chunks := make([]string, 0, len(op.Args)+len(op.Named))
	for _, a := range op.Args {
		chunks = append(chunks, fmt.Sprintf("%v", a))
	}
	keys := make([]string, 0, len(op.Named))
	for k := range op.Named {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		chunks = append(chunks, fmt.Sprintf("%s=%v", k, op.Named[k]))
	}
	return fmt.Sprintf("%s(%s)", op.Prim, strings.Join(chunks, ", "))
}

// Invoke maps the arguments with ctx and draws the primitive on c.
func (op Op) Invoke(c Canvas, ctx MappingContext) error {
	args := make([]Arg, len(op.Args))
	for i, a := range op.Args {
		args[i] = a.mapped(ctx)
	}
	kw := make(map[string]Arg, len(op.Named))
	for k, a := range op.Named {
		kw[k] = a.mapped(ctx)
	}
	var err error
	switch op.Prim {
	case Line:
		err = drawLine(c, args, kw)
	case Circle:
		err = drawCircle(c, args, kw)
	case Arc:
		err = drawArc(c, args, kw)
	case Dot:
		err = drawDot(c, args, kw)
	case Polyline:
		err = drawPolyline(c, args, kw)
	default:
		err = errors.New("unknown primitive")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op.Prim, err)
	}
	return nil
}

func positional[T Arg](args []Arg, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, fmt.Errorf("%w: missing argument %d", ErrBadArgs, i)
	}
	v, ok := args[i].(T)
	if !ok {
		return zero, fmt.Errorf("%w: argument %d has type %T, expected %T", ErrBadArgs, i, args[i], zero)
	}
	return v, nil
}

func named[T Arg](m map[string]Arg, key string) (T, bool, error) {
	var zero T
	a, ok := m[key]
	if !ok {
		return zero, false, nil
	}
	v, ok := a.(T)
	if !ok {
		return zero, false, fmt.Errorf("%w: %s has type %T, expected %T", ErrBadArgs, key, a, zero)
	}
	return v, true, nil
}

// stroke is the resolved style of a line or arc.
type stroke struct {
	color     color.RGBA
	width     float64
	dotRadius float64
	pattern   dxfpattern.Pattern // nil for a solid stroke
}

func strokeFrom(m map[string]Arg, needWidth bool) (stroke, error) {
	var s stroke
	col, ok, err := named[Color](m, ArgColor)
	if err != nil {
		return s, err
	}
	if !ok {
		return s, fmt.Errorf("%w: missing %s", ErrBadArgs, ArgColor)
	}
	s.color = color.RGBA(col)

	width, ok, err := named[Scalar](m, ArgWidth)
	if err != nil {
		return s, err
	}
	if !ok && needWidth {
		return s, fmt.Errorf("%w: missing %s", ErrBadArgs, ArgWidth)
	}
	s.width = float64(width)

	s.dotRadius = s.width / 2
	if r, ok, err := named[Scalar](m, ArgDotRadius); err != nil {
		return s, err
	} else if ok {
		s.dotRadius = float64(r)
	}

	pattern, hasPattern, err := named[Scalars](m, ArgPattern)
	if err != nil {
		return s, err
	}
	text, hasText, err := named[Text](m, ArgText)
	if err != nil {
		return s, err
	}
	switch {
	case hasPattern:
		s.pattern = dxfpattern.Pattern(pattern)
	case hasText:
		length, ok, err := named[Scalar](m, ArgLength)
		if err != nil {
			return s, err
		}
		if !ok {
			return s, fmt.Errorf("%w: %s requires %s", ErrBadArgs, ArgText, ArgLength)
		}
		s.pattern = dxfpattern.Approximate(string(text), float64(length))
	}
	return s, nil
}

func (s stroke) line(c Canvas, p1, p2 dxfgeom.Point) {
	if s.pattern == nil {
		c.Line(p1, p2, s.color, s.width)
		return
	}
	for _, seg := range dxfpattern.ExpandLine(p1, p2, s.pattern) {
		if seg.Dot {
			c.Dot(seg.From, s.dotRadius, s.color)
		} else {
			c.Line(seg.From, seg.To, s.color, s.width)
		}
	}
}

func (s stroke) arc(c Canvas, center dxfgeom.Point, radius, start, end float64) {
	if s.pattern == nil {
		c.Arc(center, radius, start, end, s.color, s.width)
		return
	}
	for _, seg := range dxfpattern.ExpandArc(center, radius, start, end, s.pattern) {
		if seg.Dot {
			c.Dot(seg.At, s.dotRadius, s.color)
		} else {
			c.Arc(center, radius, seg.From, seg.To, s.color, s.width)
		}
	}
}

func drawLine(c Canvas, args []Arg, m map[string]Arg) error {
	p1, err := positional[Coord](args, 0)
	if err != nil {
		return err
	}
	p2, err := positional[Coord](args, 1)
	if err != nil {
		return err
	}
	s, err := strokeFrom(m, true)
	if err != nil {
		return err
	}
	s.line(c, dxfgeom.Point(p1), dxfgeom.Point(p2))
	return nil
}

func centerRadius(args []Arg) (dxfgeom.Point, float64, error) {
	center, err := positional[Coord](args, 0)
	if err != nil {
		return dxfgeom.Point{}, 0, err
	}
	radius, err := positional[Scalar](args, 1)
	if err != nil {
		return dxfgeom.Point{}, 0, err
	}
	return dxfgeom.Point(center), float64(radius), nil
}

func drawCircle(c Canvas, args []Arg, m map[string]Arg) error {
	center, radius, err := centerRadius(args)
	if err != nil {
		return err
	}
	s, err := strokeFrom(m, true)
	if err != nil {
		return err
	}
	if s.pattern == nil {
		c.Circle(center, radius, s.color, s.width)
		return nil
	}
	s.arc(c, center, radius, 0, 360)
	return nil
}

func drawArc(c Canvas, args []Arg, m map[string]Arg) error {
	center, radius, err := centerRadius(args)
	if err != nil {
		return err
	}
	start, err := positional[Angle](args, 2)
	if err != nil {
		return err
	}
	end, err := positional[Angle](args, 3)
	if err != nil {
		return err
	}
	s, err := strokeFrom(m, true)
	if err != nil {
		return err
	}
	s.arc(c, center, radius, float64(start), float64(end))
	return nil
}

func drawDot(c Canvas, args []Arg, m map[string]Arg) error {
	center, radius, err := centerRadius(args)
	if err != nil {
		return err
	}
	s, err := strokeFrom(m, false)
	if err != nil {
		return err
	}
	c.Dot(center, radius, s.color)
	return nil
}

func drawPolyline(c Canvas, args []Arg, m map[string]Arg) error {
	vertices, err := positional[Coords](args, 0)
	if err != nil {
		return err
	}
	closed, err := positional[Flag](args, 1)
	if err != nil {
		return err
	}
	s, err := strokeFrom(m, true)
	if err != nil {
		return err
	}
	for i := 1; i < len(vertices); i++ {
		s.line(c, vertices[i-1], vertices[i])
	}
	if closed && len(vertices) > 2 {
		s.line(c, vertices[len(vertices)-1], vertices[0])
	}
	return nil
}
