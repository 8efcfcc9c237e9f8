// Package dxfrender renders a DXF document into an image.
//
// Rendering happens in two passes. Collect converts every entity
// into a deferred operation and accumulates the extent of the
// drawing. Once the extent is known, the operations are replayed,
// in the entity order, on a canvas whose size preserves the aspect
// ratio of the drawing.
package dxfrender

import (
	"errors"
	"fmt"
	"image"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/dxfdraw"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/benoitkugler/dxfvis/dxfraster"
	"github.com/benoitkugler/dxfvis/internal/logging"
)

var (
	// ErrEmptyDocument is returned when no entity of the document
	// can be rendered.
	ErrEmptyDocument = errors.New("no renderable entity in document")

	// ErrUnsupportedGeometry is returned in StrictErrorMode for
	// entities which can't be drawn in the plane.
	ErrUnsupportedGeometry = errors.New("unsupported geometry")

	// ErrMissingBlock is returned in StrictErrorMode when a dimension
	// refers to an undefined block.
	ErrMissingBlock = errors.New("missing block")

	// ErrInvalidOptions is returned for non positive lengths.
	ErrInvalidOptions = errors.New("invalid rendering options")

	// ErrDegenerateExtent is returned when the drawing is reduced
	// to a single point.
	ErrDegenerateExtent = dxfdraw.ErrDegenerateExtent

	// ErrInvalidSize is returned for a non positive image size.
	ErrInvalidSize = dxfdraw.ErrInvalidSize
)

// Plan is the result of the collect pass: the operations
// to draw, in order, and the extent they cover.
type Plan struct {
	Items   []Item
	Extent  dxfgeom.BBox
	Skipped int // entities not rendered

	opts Options
}

// Collect converts the entities of doc into a Plan.
// The entities of the block referenced by a dimension are
// collected in place of the dimension; dimensions nested in
// such a block are not expanded.
func Collect(doc *dxfdoc.Document, opts ...Option) (*Plan, error) {
	r, err := NewRenderer(doc, opts...)
	if err != nil {
		return nil, err
	}
	plan := &Plan{Extent: dxfgeom.EmptyBBox(), opts: r.opts}
	for _, e := range doc.Entities {
		dim, ok := e.(*dxfdoc.Dimension)
		if !ok {
			if err := plan.add(r, e); err != nil {
				return nil, err
			}
			continue
		}
		if !doc.Visible(dim) {
			plan.Skipped++
			continue
		}
		block := doc.Block(dim.Block)
		if block == nil {
			if err := r.missingBlock(dim); err != nil {
				return nil, err
			}
			plan.Skipped++
			continue
		}
		for _, sub := range block.Entities {
			if err := plan.add(r, sub); err != nil {
				return nil, err
			}
		}
	}
	if len(plan.Items) == 0 || plan.Extent.IsEmpty() {
		return nil, fmt.Errorf("%w (%d entities skipped)", ErrEmptyDocument, plan.Skipped)
	}
	logging.Logger().Info("entities collected", "operations", len(plan.Items),
		"skipped", plan.Skipped, "extent", plan.Extent.String())
	return plan, nil
}

func (plan *Plan) add(r *Renderer, e dxfdoc.Entity) error {
	item, ok, err := r.Entity(e)
	if err != nil {
		return err
	}
	if !ok {
		plan.Skipped++
		return nil
	}
	plan.Items = append(plan.Items, item)
	plan.Extent = plan.Extent.Union(item.BBox)
	return nil
}

func (r *Renderer) missingBlock(dim *dxfdoc.Dimension) error {
	switch r.opts.ErrorMode {
	case dxfdoc.StrictErrorMode:
		return fmt.Errorf("%w: %q (dimension %q)", ErrMissingBlock, dim.Block, dim.Handle)
	case dxfdoc.WarnErrorMode:
		logging.Logger().Warn("dimension block not found", "block", dim.Block, "handle", dim.Handle)
	}
	return nil
}

// Shape returns the size of the image, the longer side
// being given by the MaxEdge option.
func (plan *Plan) Shape() (dxfdraw.CanvasShape, error) {
	return dxfdraw.ShapeFor(plan.Extent, plan.opts.MaxEdge)
}

// Context returns the mapping from the document to the image.
func (plan *Plan) Context() (dxfdraw.MappingContext, error) {
	shape, err := plan.Shape()
	if err != nil {
		return dxfdraw.MappingContext{}, err
	}
	return dxfdraw.NewMappingContext(plan.Extent, shape)
}

// Replay draws every operation on c, in order.
func (plan *Plan) Replay(c dxfdraw.Canvas, ctx dxfdraw.MappingContext) error {
	for _, item := range plan.Items {
		if err := item.Op.Invoke(c, ctx); err != nil {
			return fmt.Errorf("rendering %s %q: %w", item.Type, item.Handle, err)
		}
	}
	return nil
}

// CanvasFactory allocates the canvas of the given size.
type CanvasFactory func(shape dxfdraw.CanvasShape, opts Options) (dxfdraw.Canvas, error)

// RenderTo runs both passes, drawing on the canvas returned by newCanvas,
// which is then returned.
func RenderTo(doc *dxfdoc.Document, newCanvas CanvasFactory, opts ...Option) (dxfdraw.Canvas, error) {
	plan, err := Collect(doc, opts...)
	if err != nil {
		return nil, err
	}
	ctx, err := plan.Context()
	if err != nil {
		return nil, err
	}
	c, err := newCanvas(ctx.Shape, plan.opts)
	if err != nil {
		return nil, err
	}
	if err := plan.Replay(c, ctx); err != nil {
		return nil, err
	}
	logging.Logger().Info("document rendered", "shape", ctx.Shape.String())
	return c, nil
}

// Render draws doc on an RGBA image, using the rasterx backend.
func Render(doc *dxfdoc.Document, opts ...Option) (*image.RGBA, error) {
	c, err := RenderTo(doc, func(shape dxfdraw.CanvasShape, o Options) (dxfdraw.Canvas, error) {
		return dxfraster.New(shape, o.Background), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	return c.(*dxfraster.Canvas).Image(), nil
}
