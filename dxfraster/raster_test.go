package dxfraster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func isBlack(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y) == black
}

func TestBackground(t *testing.T) {
	c := New(dxfdraw.CanvasShape{Width: 20, Height: 10}, color.RGBA{10, 20, 30, 255})
	img := c.Image()
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if got := img.RGBAAt(19, 9); got != (color.RGBA{10, 20, 30, 255}) {
		t.Fatalf("unexpected background %v", got)
	}
}

func TestLine(t *testing.T) {
	c := New(dxfdraw.CanvasShape{Width: 100, Height: 50}, black)
	c.Line(dxfgeom.Pt(10, 25), dxfgeom.Pt(90, 25), red, 4)
	img := c.Image()
	for x := 12; x < 88; x++ {
		if isBlack(img, x, 25) {
			t.Fatalf("pixel (%d, 25): expected stroke", x)
		}
	}
	if !isBlack(img, 50, 10) || !isBlack(img, 50, 40) || !isBlack(img, 97, 25) {
		t.Fatal("line is too thick or too long")
	}
}

func TestArcDirection(t *testing.T) {
	center := dxfgeom.Pt(50, 50)
	for _, sweep := range [][2]float64{{0, 180}, {180, 0}} {
		c := New(dxfdraw.CanvasShape{Width: 100, Height: 100}, black)
		// in the raster frame, angles between 0 and 180 are below the center
		c.Arc(center, 30, sweep[0], sweep[1], red, 3)
		img := c.Image()
		if isBlack(img, 50, 80) {
			t.Errorf("arc %v: expected the bottom point to be drawn", sweep)
		}
		if !isBlack(img, 50, 20) {
			t.Errorf("arc %v: unexpected top point", sweep)
		}
	}
}

func TestCircleAndDot(t *testing.T) {
	c := New(dxfdraw.CanvasShape{Width: 100, Height: 100}, black)
	c.Circle(dxfgeom.Pt(50, 50), 30, red, 3)
	img := c.Image()
	for _, p := range []image.Point{{80, 50}, {20, 50}, {50, 80}, {50, 20}} {
		if isBlack(img, p.X, p.Y) {
			t.Errorf("circle: expected %v to be drawn", p)
		}
	}
	if !isBlack(img, 50, 50) {
		t.Error("circle must not be filled")
	}

	c.Dot(dxfgeom.Pt(50, 50), 5, red)
	if isBlack(img, 50, 50) || isBlack(img, 53, 50) {
		t.Error("dot must be filled")
	}
	if !isBlack(img, 60, 50) {
		t.Error("dot is too large")
	}
}

func TestEncode(t *testing.T) {
	img := New(dxfdraw.CanvasShape{Width: 8, Height: 4}, red).Image()
	for _, path := range []string{"out.png", "out.BMP", "out.tiff"} {
		format, err := FormatFromPath(path)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := Encode(&buf, img, format); err != nil {
			t.Fatalf("encoding %s: %s", format, err)
		}
		var decoded image.Image
		switch format {
		case BMP:
			decoded, err = bmp.Decode(&buf)
		case TIFF:
			decoded, err = tiff.Decode(&buf)
		default:
			decoded, _, err = image.Decode(&buf)
		}
		if err != nil {
			t.Fatalf("decoding %s: %s", format, err)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Fatalf("%s: unexpected bounds %v", format, decoded.Bounds())
		}
	}
	if _, err := FormatFromPath("out.jpeg"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
