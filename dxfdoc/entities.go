package dxfdoc

import (
	"image/color"

	"github.com/benoitkugler/dxfvis/dxfgeom"
)

// Special color indexes.
const (
	ColorByBlock = 0
	ColorByLayer = 256
)

// Special linetype names.
const (
	LinetypeByBlock    = "BYBLOCK"
	LinetypeByLayer    = "BYLAYER"
	LinetypeContinuous = "CONTINUOUS"
)

// Attributes are the properties common to every entity.
type Attributes struct {
	Handle   string
	Layer    string
	Linetype string // empty means BYLAYER
	// Color is an AutoCAD Color Index; it defaults to ColorByLayer.
	Color        int
	TrueColor    color.RGBA
	HasTrueColor bool
}

// DefaultAttributes returns the attributes of an entity
// on layer "0" without explicit color nor linetype.
func DefaultAttributes() Attributes {
	return Attributes{Layer: "0", Color: ColorByLayer}
}

// Entity is one of the graphical objects of a drawing.
// The concrete types are defined in this package.
type Entity interface {
	// Type returns the DXF name of the entity, such as LINE.
	Type() string
	Attrs() *Attributes
	isEntity()
}

// Line is a straight segment.
type Line struct {
	Attributes
	Start, End dxfgeom.Point
}

// Circle is a full circle.
type Circle struct {
	Attributes
	Center dxfgeom.Point
	Radius float64
}

// Arc is a circular arc, going counter-clockwise from StartAngle
// to EndAngle (in degrees).
type Arc struct {
	Attributes
	Center               dxfgeom.Point
	Radius               float64
	StartAngle, EndAngle float64
}

// Polyline is the heavy weight polyline, made of VERTEX sub entities.
type Polyline struct {
	Attributes
	Vertices []dxfgeom.Point
	Closed   bool
	Is3D     bool
}

// LWPolyline is the light weight, planar polyline.
type LWPolyline struct {
	Attributes
	Vertices []dxfgeom.Point
	Closed   bool
}

// PointEntity is a single location.
type PointEntity struct {
	Attributes
	Location dxfgeom.Point
}

// Dimension is a callout whose graphics are stored in a block.
type Dimension struct {
	Attributes
	Block string
}

// Text is a single line of text.
type Text struct {
	Attributes
	Insert dxfgeom.Point
	Height float64
	Value  string
}

// MText is a paragraph of text.
type MText struct {
	Attributes
	Insert dxfgeom.Point
	Height float64
	Value  string
}

// Insert is a block reference.
type Insert struct {
	Attributes
	Block  string
	Insert dxfgeom.Point
}

// Ellipse is a (possibly partial) ellipse.
type Ellipse struct {
	Attributes
	Center    dxfgeom.Point
	MajorAxis dxfgeom.Point
	Ratio     float64
}

// Unknown stores an entity whose type is not modeled.
type Unknown struct {
	Attributes
	Name string
}

func (a *Attributes) Attrs() *Attributes { return a }

func (*Line) Type() string        { return "LINE" }
func (*Circle) Type() string      { return "CIRCLE" }
func (*Arc) Type() string         { return "ARC" }
func (*Polyline) Type() string    { return "POLYLINE" }
func (*LWPolyline) Type() string  { return "LWPOLYLINE" }
func (*PointEntity) Type() string { return "POINT" }
func (*Dimension) Type() string   { return "DIMENSION" }
func (*Text) Type() string        { return "TEXT" }
func (*MText) Type() string       { return "MTEXT" }
func (*Insert) Type() string      { return "INSERT" }
func (*Ellipse) Type() string     { return "ELLIPSE" }
func (u *Unknown) Type() string   { return u.Name }

func (*Line) isEntity()        {}
func (*Circle) isEntity()      {}
func (*Arc) isEntity()         {}
func (*Polyline) isEntity()    {}
func (*LWPolyline) isEntity()  {}
func (*PointEntity) isEntity() {}
func (*Dimension) isEntity()   {}
func (*Text) isEntity()        {}
func (*MText) isEntity()       {}
func (*Insert) isEntity()      {}
func (*Ellipse) isEntity()     {}
func (*Unknown) isEntity()     {}

// NewEntity returns an empty entity for the given DXF type name,
// with default attributes. Unknown names give an *Unknown.
func NewEntity(name string) Entity {
	attrs := DefaultAttributes()
	switch name {
	case "LINE":
		return &Line{Attributes: attrs}
	case "CIRCLE":
		return &Circle{Attributes: attrs}
	case "ARC":
		return &Arc{Attributes: attrs}
	case "POLYLINE":
		return &Polyline{Attributes: attrs}
	case "LWPOLYLINE":
		return &LWPolyline{Attributes: attrs}
	case "POINT":
		return &PointEntity{Attributes: attrs}
	case "DIMENSION":
		return &Dimension{Attributes: attrs}
	case "TEXT":
		return &Text{Attributes: attrs}
	case "MTEXT":
		return &MText{Attributes: attrs}
	case "INSERT":
		return &Insert{Attributes: attrs}
	case "ELLIPSE":
		return &Ellipse{Attributes: attrs}
	default:
		return &Unknown{Attributes: attrs, Name: name}
	}
}
