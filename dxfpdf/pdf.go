// Package dxfpdf implements a PDF backend for rendered drawings,
// by wrapping github.com/jung-kurt/gofpdf.
//
// The page has the size of the canvas, one pixel being mapped to
// one point.
package dxfpdf

import (
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/benoitkugler/dxfvis/dxfraster"
	"github.com/jung-kurt/gofpdf"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ dxfdraw.Canvas = (*Canvas)(nil)
	_ rasterx.Adder  = (*pather)(nil)
)

// Canvas writes the primitives as PDF paths.
type Canvas struct {
	pdf *gofpdf.Fpdf
	p   pather
}

// implements the path commands, while keeping
// track of the area covered by the paths
type pather struct {
	pdf   *gofpdf.Fpdf
	a     dxfgeom.Point // current point
	inked dxfgeom.BBox
}

// New returns a one page document of the given size, filled with background.
func New(shape dxfdraw.CanvasShape, background color.RGBA) *Canvas {
	w, h := float64(shape.Width), float64(shape.Height)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: w, Ht: h},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()
	pdf.SetFillColor(int(background.R), int(background.G), int(background.B))
	pdf.Rect(0, 0, w, h, "F")
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return &Canvas{pdf: pdf, p: pather{pdf: pdf, inked: dxfgeom.EmptyBBox()}}
}

// Inked returns the area covered by the paths drawn so far,
// not including the stroke widths.
func (c *Canvas) Inked() dxfgeom.BBox { return c.p.inked }

// Write finishes the document and writes it to w.
// The canvas must not be used afterwards.
func (c *Canvas) Write(w io.Writer) error { return c.pdf.Output(w) }

func fixedTof(a fixed.Point26_6) dxfgeom.Point {
	return dxfgeom.Pt(float64(a.X)/64, float64(a.Y)/64)
}

func fToFixed(p dxfgeom.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

func (p *pather) Start(a fixed.Point26_6) {
	p.a = fixedTof(a)
	p.pdf.MoveTo(p.a.X, p.a.Y)
	p.inked = p.inked.Add(p.a)
}

func (p *pather) Line(b fixed.Point26_6) {
	pb := fixedTof(b)
	p.pdf.LineTo(pb.X, pb.Y)
	p.inked = p.inked.Add(pb)
	p.a = pb
}

func (p *pather) QuadBezier(b, c fixed.Point26_6) {
	pb, pc := fixedTof(b), fixedTof(c)
	p.pdf.CurveTo(pb.X, pb.Y, pc.X, pc.Y)
	p.inked = p.inked.Union(boundingBox(quadBezier{p.a, pb, pc}))
	p.a = pc
}

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) {
	pb, pc, pd := fixedTof(b), fixedTof(c), fixedTof(d)
	p.pdf.CurveBezierCubicTo(pb.X, pb.Y, pc.X, pc.Y, pd.X, pd.Y)
	p.inked = p.inked.Union(boundingBox(cubicBezier{p.a, pb, pc, pd}))
	p.a = pd
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

func (c *Canvas) stroke(col color.RGBA, width float64) {
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
	c.pdf.SetLineWidth(width)
	c.pdf.DrawPath("D")
}

func (c *Canvas) Line(p1, p2 dxfgeom.Point, col color.RGBA, width float64) {
	c.p.Start(fToFixed(p1))
	c.p.Line(fToFixed(p2))
	c.p.Stop(false)
	c.stroke(col, width)
}

func (c *Canvas) Circle(center dxfgeom.Point, radius float64, col color.RGBA, width float64) {
	if radius <= 0 {
		return
	}
	dxfraster.AddArc(&c.p, center, radius, 0, 2*math.Pi)
	c.p.Stop(true)
	c.stroke(col, width)
}

func (c *Canvas) Arc(center dxfgeom.Point, radius, startDeg, endDeg float64, col color.RGBA, width float64) {
	if radius <= 0 || startDeg == endDeg {
		return
	}
	dxfraster.AddArc(&c.p, center, radius, dxfgeom.Radians(startDeg), dxfgeom.Radians(endDeg))
	c.p.Stop(false)
	c.stroke(col, width)
}

func (c *Canvas) Dot(center dxfgeom.Point, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	rasterx.AddCircle(center.X, center.Y, radius, &c.p)
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.pdf.DrawPath("F")
}
