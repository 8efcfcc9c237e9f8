package dxfgeom

import (
	"fmt"
	"math"
)

// BBox is an axis aligned rectangle. The zero value is the
// degenerate box reduced to the origin: use EmptyBBox to start
// an accumulation.
type BBox struct {
	Min, Max Point
}

// EmptyBBox returns the neutral element of Union:
// Min is +Inf and Max is -Inf on both axis.
func EmptyBBox() BBox {
	inf := math.Inf(1)
	return BBox{Min: Point{inf, inf}, Max: Point{-inf, -inf}}
}

// IsEmpty returns true if the box contains no point.
func (b BBox) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Union returns the smallest box containing b and o.
func (b BBox) Union(o BBox) BBox {
	return BBox{
		Min: Point{math.Min(b.Min.X, o.Min.X), math.Min(b.Min.Y, o.Min.Y)},
		Max: Point{math.Max(b.Max.X, o.Max.X), math.Max(b.Max.Y, o.Max.Y)},
	}
}

// Add grows the box to contain p.
func (b BBox) Add(p Point) BBox {
	return b.Union(BBox{Min: p, Max: p})
}

// Dx returns the width of the box, 0 if empty.
func (b BBox) Dx() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.X - b.Min.X
}

// Dy returns the height of the box, 0 if empty.
func (b BBox) Dy() float64 {
	if b.IsEmpty() {
		return 0
	}
	return b.Max.Y - b.Min.Y
}

// IsFinite returns false if one of the bounds is infinite or NaN.
func (b BBox) IsFinite() bool {
	for _, v := range [4]float64{b.Min.X, b.Min.Y, b.Max.X, b.Max.Y} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return false
		}
	}
	return true
}

func (b BBox) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%s %s]", b.Min, b.Max)
}

// BBoxOf returns the bounding box of the given points,
// which is empty for no points.
func BBoxOf(points ...Point) BBox {
	out := EmptyBBox()
	for _, p := range points {
		out = out.Add(p)
	}
	return out
}

// CircleBBox returns the box center ± radius.
func CircleBBox(center Point, radius float64) BBox {
	return BBox{
		Min: Point{center.X - radius, center.Y - radius},
		Max: Point{center.X + radius, center.Y + radius},
	}
}
