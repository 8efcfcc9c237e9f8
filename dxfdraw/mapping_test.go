package dxfdraw

import (
	"errors"
	"testing"

	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/tdewolff/test"
)

func TestShapeFor(t *testing.T) {
	for _, tt := range []struct {
		extent  dxfgeom.BBox
		maxEdge int
		want    CanvasShape
	}{
		{dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(200, 100)), 1000, CanvasShape{1000, 500}},
		{dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(100, 400)), 1000, CanvasShape{250, 1000}},
		{dxfgeom.BBoxOf(dxfgeom.Pt(-5, -5), dxfgeom.Pt(5, 5)), 64, CanvasShape{64, 64}},
		{dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(100, 0)), 200, CanvasShape{200, 1}},
		{dxfgeom.BBoxOf(dxfgeom.Pt(3, 0), dxfgeom.Pt(3, 10)), 50, CanvasShape{1, 50}},
	} {
		got, err := ShapeFor(tt.extent, tt.maxEdge)
		test.Error(t, err)
		test.T(t, got, tt.want)
	}
}

func TestShapeForErrors(t *testing.T) {
	_, err := ShapeFor(dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(1, 1)), 0)
	test.That(t, errors.Is(err, ErrInvalidSize))

	_, err = ShapeFor(dxfgeom.BBoxOf(dxfgeom.Pt(2, 2)), 100)
	test.That(t, errors.Is(err, ErrDegenerateExtent))

	_, err = ShapeFor(dxfgeom.EmptyBBox(), 100)
	test.That(t, errors.Is(err, ErrDegenerateExtent))

	_, err = NewMappingContext(dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(1, 1)), CanvasShape{0, 10})
	test.That(t, errors.Is(err, ErrInvalidSize))
}

func TestMapPointCorners(t *testing.T) {
	extent := dxfgeom.BBoxOf(dxfgeom.Pt(-10, 5), dxfgeom.Pt(30, 25))
	shape, err := ShapeFor(extent, 400)
	test.Error(t, err)
	test.T(t, shape, CanvasShape{400, 200})

	ctx, err := NewMappingContext(extent, shape)
	test.Error(t, err)
	test.T(t, ctx.MapPoint(extent.Min), dxfgeom.Pt(0, 200))
	test.T(t, ctx.MapPoint(extent.Max), dxfgeom.Pt(400, 0))
	test.T(t, ctx.MapPoint(dxfgeom.Pt(-10, 25)), dxfgeom.Pt(0, 0))
	test.T(t, ctx.MapPoint(dxfgeom.Pt(30, 5)), dxfgeom.Pt(400, 200))
	test.T(t, ctx.MapPoint(dxfgeom.Pt(10, 15)), dxfgeom.Pt(200, 100))
}

func TestMapScalar(t *testing.T) {
	ctx, err := NewMappingContext(dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(100, 30)), CanvasShape{200, 61})
	test.Error(t, err)
	// only the horizontal scale is used
	test.T(t, ctx.MapScalar(3), 6.)
	test.T(t, ctx.MapScalar(0), 0.)

	vertical, err := NewMappingContext(dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(0, 50)), CanvasShape{1, 100})
	test.Error(t, err)
	test.T(t, vertical.MapScalar(5), 10.)
}

func TestMapFlatExtent(t *testing.T) {
	extent := dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(100, 0))
	shape, err := ShapeFor(extent, 200)
	test.Error(t, err)
	ctx, err := NewMappingContext(extent, shape)
	test.Error(t, err)
	test.T(t, ctx.MapPoint(dxfgeom.Pt(0, 0)), dxfgeom.Pt(0, 0.5))
	test.T(t, ctx.MapPoint(dxfgeom.Pt(100, 0)), dxfgeom.Pt(200, 0.5))
}

func TestMappedArgs(t *testing.T) {
	ctx, err := NewMappingContext(dxfgeom.BBoxOf(dxfgeom.Pt(0, 0), dxfgeom.Pt(10, 10)), CanvasShape{100, 100})
	test.Error(t, err)

	test.T(t, Scalar(2).mapped(ctx), Arg(Scalar(20)))
	test.T(t, Coord(dxfgeom.Pt(1, 1)).mapped(ctx), Arg(Coord(dxfgeom.Pt(10, 90))))
	test.T(t, Scalars{1, -0.5}.mapped(ctx), Arg(Scalars{10, -5}))
	test.T(t, Coords{dxfgeom.Pt(0, 10)}.mapped(ctx), Arg(Coords{dxfgeom.Pt(0, 0)}))
	test.T(t, Angle(45).mapped(ctx), Arg(Angle(45)))
	test.T(t, Text("A B").mapped(ctx), Arg(Text("A B")))

	test.T(t, Scalar(0).Kind(), ScalarMapping)
	test.T(t, Coord{}.Kind(), PointMapping)
	test.T(t, Coords(nil).Kind(), SequenceMapping)
	test.T(t, Flag(true).Kind(), NoMapping)
	test.String(t, SequenceMapping.String(), "sequence")
}
