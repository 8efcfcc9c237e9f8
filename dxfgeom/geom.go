// Package dxfgeom provides the planar primitives shared by the
// rendering packages: points, bounding boxes and angle conversions.
package dxfgeom

import (
	"fmt"
	"math"
)

// Point is a location in the plane, expressed either in
// document units or in pixels once mapped.
type Point struct {
	X, Y float64
}

// Pt is a shortcut for Point{x, y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Mul(k float64) Point { return Point{p.X * k, p.Y * k} }

// Len returns the euclidean norm of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

func (p Point) Equal(q Point) bool { return p.X == q.X && p.Y == q.Y }

func (p Point) String() string { return fmt.Sprintf("(%g, %g)", p.X, p.Y) }

// Radians converts an angle in degrees.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts an angle in radians.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// AngleBetween returns the direction of p2 seen from p1, in [0, 2π).
// It returns false when the points coincide.
func AngleBetween(p1, p2 Point) (float64, bool) {
	if p1.Equal(p2) {
		return 0, false
	}
	a := math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a, true
}

// OnCircle returns the point of the circle (center, radius)
// at angle deg (in degrees).
func OnCircle(center Point, radius, deg float64) Point {
	s, c := math.Sincos(Radians(deg))
	return Point{center.X + radius*c, center.Y + radius*s}
}
