package dxfdraw

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/dxfvis/dxfgeom"
)

var (
	// ErrDegenerateExtent is returned when the extent of the drawing
	// collapses to a single point, or is not finite.
	ErrDegenerateExtent = errors.New("degenerate drawing extent")

	// ErrInvalidSize is returned for a non positive canvas size.
	ErrInvalidSize = errors.New("invalid canvas size")
)

// CanvasShape is the size of the target image, in pixels.
type CanvasShape struct {
	Width, Height int
}

func (cs CanvasShape) String() string { return fmt.Sprintf("%dx%d", cs.Width, cs.Height) }

// ShapeFor returns the canvas size preserving the aspect ratio of
// extent: its longer axis is mapped to maxEdge pixels. The shorter
// side is at least one pixel.
func ShapeFor(extent dxfgeom.BBox, maxEdge int) (CanvasShape, error) {
	if maxEdge <= 0 {
		return CanvasShape{}, fmt.Errorf("%w: max edge %d", ErrInvalidSize, maxEdge)
	}
	if err := checkExtent(extent); err != nil {
		return CanvasShape{}, err
	}
	w, h := extent.Dx(), extent.Dy()
	if w >= h {
		return CanvasShape{Width: maxEdge, Height: atLeastOne(float64(maxEdge) * h / w)}, nil
	}
	return CanvasShape{Width: atLeastOne(float64(maxEdge) * w / h), Height: maxEdge}, nil
}

func atLeastOne(v float64) int {
	if v < 1 {
		return 1
	}
	return int(v)
}

func checkExtent(extent dxfgeom.BBox) error {
	if extent.IsEmpty() || !extent.IsFinite() {
		return fmt.Errorf("%w: %s", ErrDegenerateExtent, extent)
	}
	if extent.Dx() == 0 && extent.Dy() == 0 {
		return fmt.Errorf("%w: %s", ErrDegenerateExtent, extent)
	}
	return nil
}

// MappingContext converts document coordinates into pixels.
type MappingContext struct {
	Extent dxfgeom.BBox
	Shape  CanvasShape
}

// NewMappingContext validates extent and shape.
// A context whose extent is flat along one axis is valid: that axis
// is mapped to the middle of the canvas.
func NewMappingContext(extent dxfgeom.BBox, shape CanvasShape) (MappingContext, error) {
	if err := checkExtent(extent); err != nil {
		return MappingContext{}, err
	}
	if shape.Width <= 0 || shape.Height <= 0 {
		return MappingContext{}, fmt.Errorf("%w: %s", ErrInvalidSize, shape)
	}
	return MappingContext{Extent: extent, Shape: shape}, nil
}

// normalize maps v from [min, max] to [0, 1].
func normalize(v, min, max float64) float64 {
	if max == min {
		return 0.5
	}
	return (v - min) / (max - min)
}

// MapPoint returns the pixel position of p. The y axis is flipped:
// the lower left corner of the extent maps to (0, Height).
func (ctx MappingContext) MapPoint(p dxfgeom.Point) dxfgeom.Point {
	e := ctx.Extent
	x := normalize(p.X, e.Min.X, e.Max.X) * float64(ctx.Shape.Width)
	y := normalize(p.Y, e.Min.Y, e.Max.Y) * float64(ctx.Shape.Height)
	return dxfgeom.Point{X: x, Y: float64(ctx.Shape.Height) - y}
}

// MapScalar converts a length (radius, width, pattern element).
//
// Only the horizontal scale is used, and it is kept even where it
// differs from the vertical one. The two differ by the rounding of
// the canvas size, and widely for a flat drawing whose short edge
// is clamped to one pixel.
// For a drawing with no horizontal extent, the vertical scale is used.
func (ctx MappingContext) MapScalar(v float64) float64 {
	if dx := ctx.Extent.Dx(); dx != 0 {
		return v * float64(ctx.Shape.Width) / dx
	}
	return v * float64(ctx.Shape.Height) / ctx.Extent.Dy()
}
