// Package dxfraster implements a raster backend for rendered
// drawings, by wrapping rasterx.
package dxfraster

import (
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

var _ dxfdraw.Canvas = (*Canvas)(nil) // assert interface conformance

// maxDx is the maximum angle, in radians, spanned by
// one cubic bezier when approximating an arc.
const maxDx = math.Pi / 8

// Canvas draws on an RGBA image.
type Canvas struct {
	img    *image.RGBA
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// New returns a canvas of the given size, filled with background.
func New(shape dxfdraw.CanvasShape, background color.RGBA) *Canvas {
	w, h := shape.Width, shape.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{
		img:    img,
		dasher: rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
		filler: rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, img, img.Bounds())),
	}
}

// Image returns the underlying image, which is
// modified by subsequent drawing calls.
func (c *Canvas) Image() *image.RGBA { return c.img }

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

func (c *Canvas) setStroke(width float64) {
	if width < 1 {
		width = 1
	}
	c.dasher.Clear()
	c.dasher.SetStroke(fixed.Int26_6(width*64), 0, rasterx.RoundCap, rasterx.RoundCap,
		rasterx.RoundGap, rasterx.ArcClip, nil, 0)
}

func (c *Canvas) stroke(col color.RGBA) {
	c.dasher.SetColor(col)
	c.dasher.Draw()
}

func (c *Canvas) Line(p1, p2 dxfgeom.Point, col color.RGBA, width float64) {
	c.setStroke(width)
	c.dasher.Start(toFixedP(p1.X, p1.Y))
	c.dasher.Line(toFixedP(p2.X, p2.Y))
	c.dasher.Stop(false)
	c.stroke(col)
}

func (c *Canvas) Circle(center dxfgeom.Point, radius float64, col color.RGBA, width float64) {
	if radius <= 0 {
		return
	}
	c.setStroke(width)
	AddArc(c.dasher, center, radius, 0, 2*math.Pi)
	c.dasher.Stop(true)
	c.stroke(col)
}

func (c *Canvas) Arc(center dxfgeom.Point, radius, startDeg, endDeg float64, col color.RGBA, width float64) {
	if radius <= 0 || startDeg == endDeg {
		return
	}
	c.setStroke(width)
	AddArc(c.dasher, center, radius, dxfgeom.Radians(startDeg), dxfgeom.Radians(endDeg))
	c.dasher.Stop(false)
	c.stroke(col)
}

func (c *Canvas) Dot(center dxfgeom.Point, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	c.filler.Clear()
	rasterx.AddCircle(center.X, center.Y, radius, c.filler)
	c.filler.SetColor(col)
	c.filler.Draw()
}

// AddArc appends to p the arc of circle going from angle eta0 to
// eta1 (in radians), which may be lower than eta0, as a new curve.
// A sweep larger than a full turn is reduced to one turn.
func AddArc(p rasterx.Adder, center dxfgeom.Point, radius, eta0, eta1 float64) {
	deltaEta := eta1 - eta0
	if math.Abs(deltaEta) > 2*math.Pi {
		deltaEta = math.Copysign(2*math.Pi, deltaEta)
	}
	// Round up to determine number of cubic splines to approximate the arc
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs) // span of each segment
	// Approximate the circle using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	lx, ly := circlePointAt(center, radius, eta0)
	ldx, ldy := circlePrime(radius, eta0)
	p.Start(toFixedP(lx, ly))
	for i := 1; i <= segs; i++ {
		eta := eta0 + dEta*float64(i)
		px, py := circlePointAt(center, radius, eta)
		dx, dy := circlePrime(radius, eta)
		p.CubeBezier(toFixedP(lx+alpha*ldx, ly+alpha*ldy),
			toFixedP(px-alpha*dx, py-alpha*dy), toFixedP(px, py))
		lx, ly, ldx, ldy = px, py, dx, dy
	}
}

// circlePrime gives the tangent vector at parameter eta
func circlePrime(r, eta float64) (dx, dy float64) {
	s, c := math.Sincos(eta)
	return -r * s, r * c
}

// circlePointAt gives the point at parameter eta
func circlePointAt(center dxfgeom.Point, r, eta float64) (px, py float64) {
	s, c := math.Sincos(eta)
	return center.X + r*c, center.Y + r*s
}
