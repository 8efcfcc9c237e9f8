package dxfread

import (
	"fmt"
	"image/color"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/benoitkugler/dxfvis/internal/logging"
)

// polyline flags (group 70)
const (
	polylineClosed   = 1
	polyline3D       = 8
	polylineMesh     = 16
	polylinePolyface = 64

	vertexSplineFrame = 16
)

// readEntities reads entities up to the end marker, whose
// own group is consumed.
func (rd *reader) readEntities(end string) ([]dxfdoc.Entity, error) {
	var out []dxfdoc.Entity
	for {
		t, err := rd.next()
		if err != nil {
			return nil, err
		}
		if t.Code != 0 {
			continue
		}
		name := t.Name()
		if name == "ENDSEC" && end != "ENDSEC" {
			rd.s.Unread()
			return out, rd.problem(fmt.Errorf("line %d: missing %s", t.Line, end))
		}
		tags, err := rd.group()
		if err != nil {
			return nil, err
		}
		switch name {
		case end:
			return out, nil
		case "VERTEX", "SEQEND":
			logging.Logger().Debug("vertex outside of a polyline", "line", t.Line)
			continue
		}
		e, err := rd.entity(name, tags)
		if err != nil {
			return nil, err
		}
		if poly, ok := e.(*dxfdoc.Polyline); ok {
			if err := rd.vertices(poly); err != nil {
				return nil, err
			}
		}
		out = append(out, e)
	}
}

// vertices reads the VERTEX entities following a POLYLINE,
// and the closing SEQEND.
func (rd *reader) vertices(poly *dxfdoc.Polyline) error {
	for {
		t, err := rd.next()
		if err != nil {
			return err
		}
		switch {
		case t.Is(0, "VERTEX"):
			tags, err := rd.group()
			if err != nil {
				return err
			}
			p, keep, err := rd.vertex(tags)
			if err != nil {
				return err
			}
			if keep {
				poly.Vertices = append(poly.Vertices, p)
			}
		case t.Is(0, "SEQEND"):
			_, err := rd.group()
			return err
		default:
			rd.s.Unread()
			return rd.problem(fmt.Errorf("line %d: polyline %q without SEQEND", t.Line, poly.Handle))
		}
	}
}

func (rd *reader) vertex(tags []Tag) (p dxfgeom.Point, keep bool, err error) {
	keep = true
	for _, t := range tags {
		var errV error
		switch t.Code {
		case 10:
			p.X, errV = t.Float()
		case 20:
			p.Y, errV = t.Float()
		case 70:
			var flags int
			flags, errV = t.Int()
			keep = flags&vertexSplineFrame == 0
		}
		if errV != nil {
			if err = rd.problem(errV); err != nil {
				return p, false, err
			}
		}
	}
	return p, keep, nil
}

// entity builds the entity of the given type from its tags.
// Unknown types give a dxfdoc.Unknown, with its common attributes.
func (rd *reader) entity(name string, tags []Tag) (dxfdoc.Entity, error) {
	e := dxfdoc.NewEntity(name)
	for _, t := range tags {
		err := setAttribute(e.Attrs(), t)
		if err == nil {
			err = setField(e, t)
		}
		if err != nil {
			if err = rd.problem(fmt.Errorf("%s: %w", name, err)); err != nil {
				return nil, err
			}
		}
	}
	return e, nil
}

func setAttribute(attrs *dxfdoc.Attributes, t Tag) (err error) {
	switch t.Code {
	case 5:
		attrs.Handle = t.Value
	case 6:
		attrs.Linetype = t.Value
	case 8:
		attrs.Layer = t.Value
	case 62:
		attrs.Color, err = t.Int()
	case 420:
		var rgb int
		rgb, err = t.Int()
		attrs.TrueColor = color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 255}
		attrs.HasTrueColor = err == nil
	}
	return err
}

// setXY handles the codes 10/20 (or 11/21, ...) of a point.
func setXY(p *dxfgeom.Point, xCode int, t Tag) (err error) {
	switch t.Code {
	case xCode:
		p.X, err = t.Float()
	case xCode + 10:
		p.Y, err = t.Float()
	}
	return err
}

func setFloat(dst *float64, code int, t Tag) (err error) {
	if t.Code == code {
		*dst, err = t.Float()
	}
	return err
}

func setField(e dxfdoc.Entity, t Tag) error {
	switch e := e.(type) {
	case *dxfdoc.Line:
		if err := setXY(&e.Start, 10, t); err != nil {
			return err
		}
		return setXY(&e.End, 11, t)
	case *dxfdoc.Circle:
		if err := setXY(&e.Center, 10, t); err != nil {
			return err
		}
		return setFloat(&e.Radius, 40, t)
	case *dxfdoc.Arc:
		switch t.Code {
		case 10, 20:
			return setXY(&e.Center, 10, t)
		case 40:
			return setFloat(&e.Radius, 40, t)
		case 50:
			return setFloat(&e.StartAngle, 50, t)
		case 51:
			return setFloat(&e.EndAngle, 51, t)
		}
	case *dxfdoc.LWPolyline:
		switch t.Code {
		case 10:
			x, err := t.Float()
			if err != nil {
				return err
			}
			e.Vertices = append(e.Vertices, dxfgeom.Pt(x, 0))
		case 20:
			if len(e.Vertices) == 0 {
				return fmt.Errorf("line %d: y coordinate without x", t.Line)
			}
			return setXY(&e.Vertices[len(e.Vertices)-1], 10, t)
		case 70:
			flags, err := t.Int()
			e.Closed = flags&polylineClosed != 0
			return err
		}
	case *dxfdoc.Polyline:
		if t.Code == 70 {
			flags, err := t.Int()
			e.Closed = flags&polylineClosed != 0
			e.Is3D = flags&(polyline3D|polylineMesh|polylinePolyface) != 0
			return err
		}
	case *dxfdoc.PointEntity:
		return setXY(&e.Location, 10, t)
	case *dxfdoc.Dimension:
		if t.Code == 2 {
			e.Block = t.Value
		}
	case *dxfdoc.Text:
		switch t.Code {
		case 1:
			e.Value = t.Value
		case 40:
			return setFloat(&e.Height, 40, t)
		default:
			return setXY(&e.Insert, 10, t)
		}
	case *dxfdoc.MText:
		switch t.Code {
		case 1, 3: // 3 holds the leading chunks of long texts
			e.Value += t.Value
		case 40:
			return setFloat(&e.Height, 40, t)
		default:
			return setXY(&e.Insert, 10, t)
		}
	case *dxfdoc.Insert:
		if t.Code == 2 {
			e.Block = t.Value
			return nil
		}
		return setXY(&e.Insert, 10, t)
	case *dxfdoc.Ellipse:
		if err := setXY(&e.Center, 10, t); err != nil {
			return err
		}
		if err := setXY(&e.MajorAxis, 11, t); err != nil {
			return err
		}
		return setFloat(&e.Ratio, 40, t)
	}
	return nil
}
