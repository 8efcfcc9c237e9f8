// Package dxfgg implements a raster backend for rendered drawings
// on top of the gg software renderer.
package dxfgg

import (
	"image"
	"image/color"
	"math"

	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/gogpu/gg"
)

var _ dxfdraw.Canvas = (*Canvas)(nil)

// Canvas draws with a gg.Context.
//
// Since the Canvas methods don't return errors, the first error
// reported by gg is stored and returned by Err.
type Canvas struct {
	ctx *gg.Context
	err error
}

// New returns a canvas of the given size, filled with background.
func New(shape dxfdraw.CanvasShape, background color.RGBA) *Canvas {
	ctx := gg.NewContext(shape.Width, shape.Height)
	ctx.ClearWithColor(gg.FromColor(background))
	ctx.SetLineCap(gg.LineCapRound)
	ctx.SetLineJoin(gg.LineJoinRound)
	return &Canvas{ctx: ctx}
}

// Image returns a copy of the current content.
func (c *Canvas) Image() image.Image { return c.ctx.Image() }

// Err returns the first error met while drawing.
func (c *Canvas) Err() error { return c.err }

// Close releases the underlying context.
func (c *Canvas) Close() error { return c.ctx.Close() }

func (c *Canvas) check(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Canvas) stroke(col color.RGBA, width float64) {
	c.ctx.SetColor(col)
	c.ctx.SetLineWidth(max(width, 1))
	c.check(c.ctx.Stroke())
}

func (c *Canvas) Line(p1, p2 dxfgeom.Point, col color.RGBA, width float64) {
	c.ctx.ClearPath()
	c.ctx.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	c.stroke(col, width)
}

func (c *Canvas) Circle(center dxfgeom.Point, radius float64, col color.RGBA, width float64) {
	if radius <= 0 {
		return
	}
	c.ctx.ClearPath()
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.stroke(col, width)
}

// Arc draws the arc going from startDeg to endDeg, in either
// direction. gg only sweeps by increasing angles, so the bounds are
// swapped when needed.
func (c *Canvas) Arc(center dxfgeom.Point, radius, startDeg, endDeg float64, col color.RGBA, width float64) {
	if radius <= 0 || startDeg == endDeg {
		return
	}
	a1, a2 := dxfgeom.Radians(startDeg), dxfgeom.Radians(endDeg)
	if a2 < a1 {
		a1, a2 = a2, a1
	}
	if a2-a1 > 2*math.Pi {
		a2 = a1 + 2*math.Pi
	}
	c.ctx.ClearPath()
	c.ctx.DrawArc(center.X, center.Y, radius, a1, a2)
	c.stroke(col, width)
}

func (c *Canvas) Dot(center dxfgeom.Point, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	c.ctx.ClearPath()
	c.ctx.DrawCircle(center.X, center.Y, radius)
	c.ctx.SetColor(col)
	c.check(c.ctx.Fill())
}
