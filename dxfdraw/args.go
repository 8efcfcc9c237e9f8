package dxfdraw

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/dxfvis/dxfgeom"
)

// MappingKind describes how an argument of a deferred operation
// is converted to pixel space.
type MappingKind uint8

const (
	NoMapping       MappingKind = iota // used as is
	ScalarMapping                      // a length
	PointMapping                       // a location
	SequenceMapping                    // a list of lengths or locations
)

func (m MappingKind) String() string {
	switch m {
	case NoMapping:
		return "none"
	case ScalarMapping:
		return "scalar"
	case PointMapping:
		return "point"
	case SequenceMapping:
		return "sequence"
	default:
		return fmt.Sprintf("<unknown mapping kind %d>", m)
	}
}

// Arg is an argument of a deferred operation.
// The concrete types are the ones defined in this package.
type Arg interface {
	Kind() MappingKind
	mapped(ctx MappingContext) Arg
}

// Scalar is a length, scaled with MappingContext.MapScalar.
type Scalar float64

// Coord is a location, mapped with MappingContext.MapPoint.
type Coord dxfgeom.Point

// Scalars is a sequence of lengths, such as a dash pattern.
type Scalars []float64

// Coords is a sequence of locations, such as polyline vertices.
type Coords []dxfgeom.Point

// Angle is an angle in degrees, in the raster frame.
type Angle float64

// Color is a stroke or fill color.
type Color color.RGBA

// Flag is a boolean option.
type Flag bool

// Text is a free form string.
type Text string

func (Scalar) Kind() MappingKind  { return ScalarMapping }
func (Coord) Kind() MappingKind   { return PointMapping }
func (Scalars) Kind() MappingKind { return SequenceMapping }
func (Coords) Kind() MappingKind  { return SequenceMapping }
func (Angle) Kind() MappingKind   { return NoMapping }
func (Color) Kind() MappingKind   { return NoMapping }
func (Flag) Kind() MappingKind    { return NoMapping }
func (Text) Kind() MappingKind    { return NoMapping }

func (s Scalar) mapped(ctx MappingContext) Arg { return Scalar(ctx.MapScalar(float64(s))) }

func (c Coord) mapped(ctx MappingContext) Arg {
	return Coord(ctx.MapPoint(dxfgeom.Point(c)))
}

func (s Scalars) mapped(ctx MappingContext) Arg {
	out := make(Scalars, len(s))
	for i, v := range s {
		out[i] = ctx.MapScalar(v)
	}
	return out
}

func (s Coords) mapped(ctx MappingContext) Arg {
	out := make(Coords, len(s))
	for i, p := range s {
		out[i] = ctx.MapPoint(p)
	}
	return out
}

func (a Angle) mapped(MappingContext) Arg { return a }
func (c Color) mapped(MappingContext) Arg { return c }
func (f Flag) mapped(MappingContext) Arg  { return f }
func (t Text) mapped(MappingContext) Arg  { return t }

// copyArg returns a copy of a not sharing memory with the caller.
func copyArg(a Arg) Arg {
	switch a := a.(type) {
	case Scalars:
		return append(Scalars(nil), a...)
	case Coords:
		return append(Coords(nil), a...)
	default:
		return a
	}
}
