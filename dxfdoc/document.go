// Package dxfdoc models the content of a DXF drawing needed for
// rendering: entities, layers, linetypes and blocks, and resolves
// the effective color and linetype of an entity.
package dxfdoc

import (
	"image/color"
	"strings"

	"github.com/benoitkugler/dxfvis/dxfpattern"
)

// Layer is an entry of the LAYER table.
type Layer struct {
	Name string
	// Color is an AutoCAD Color Index. A negative value
	// means the layer is turned off.
	Color    int
	Linetype string
	Frozen   bool
}

// IsOn returns true if the entities of the layer are displayed.
func (l *Layer) IsOn() bool { return l.Color >= 0 && !l.Frozen }

// Linetype is an entry of the LTYPE table.
type Linetype struct {
	Name        string
	Description string
	// Length is the nominal length of one repetition.
	Length    float64
	HasLength bool
	// Pattern starts with Length followed by the elements,
	// and is nil if the linetype has no element.
	Pattern dxfpattern.Pattern
}

// IsSolid returns true for linetypes drawn as continuous strokes.
func (lt *Linetype) IsSolid() bool {
	return lt.HasLength && lt.Length == 0
}

// Block is a named group of entities.
type Block struct {
	Name     string
	Entities []Entity
}

// Document is a parsed drawing.
type Document struct {
	Version  string // $ACADVER
	Codepage string // $DWGCODEPAGE

	// Table entries are indexed by upper cased name.
	Layers    map[string]*Layer
	Linetypes map[string]*Linetype
	Blocks    map[string]*Block

	// Entities of the model space, in file order.
	Entities []Entity
}

// NewDocument returns an empty document, with the default layer "0".
func NewDocument() *Document {
	doc := &Document{
		Layers:    make(map[string]*Layer),
		Linetypes: make(map[string]*Linetype),
		Blocks:    make(map[string]*Block),
	}
	doc.AddLayer(&Layer{Name: "0", Color: 7, Linetype: LinetypeContinuous})
	return doc
}

func key(name string) string { return strings.ToUpper(strings.TrimSpace(name)) }

// AddLayer adds or replaces a layer.
func (doc *Document) AddLayer(l *Layer) { doc.Layers[key(l.Name)] = l }

// AddLinetype adds or replaces a linetype.
func (doc *Document) AddLinetype(lt *Linetype) { doc.Linetypes[key(lt.Name)] = lt }

// AddBlock adds or replaces a block.
func (doc *Document) AddBlock(b *Block) { doc.Blocks[key(b.Name)] = b }

// AddEntity appends entities to the model space.
func (doc *Document) AddEntity(es ...Entity) { doc.Entities = append(doc.Entities, es...) }

// Layer returns the layer with the given name, or nil.
func (doc *Document) Layer(name string) *Layer { return doc.Layers[key(name)] }

// LinetypeNamed returns the linetype with the given name, or nil.
func (doc *Document) LinetypeNamed(name string) *Linetype { return doc.Linetypes[key(name)] }

// Block returns the block with the given name, or nil.
func (doc *Document) Block(name string) *Block { return doc.Blocks[key(name)] }

// Visible returns false if the entity lies on a layer
// which is defined and turned off or frozen.
func (doc *Document) Visible(e Entity) bool {
	if l := doc.Layer(e.Attrs().Layer); l != nil {
		return l.IsOn()
	}
	return true
}

var white = color.RGBA{255, 255, 255, 255}

// ACI returns the color of an AutoCAD Color Index.
// Indexes outside [1, 255] are mapped to white.
func ACI(index int) color.RGBA {
	if index < 1 || index > 255 {
		return white
	}
	return aciPalette[index]
}

// Color returns the effective color of the entity.
// A true color wins over the color index; BYBLOCK is
// rendered white and BYLAYER uses the layer color.
func (doc *Document) Color(e Entity) color.RGBA {
	attrs := e.Attrs()
	if attrs.HasTrueColor {
		return attrs.TrueColor
	}
	index := attrs.Color
	switch index {
	case ColorByBlock:
		return white
	case ColorByLayer:
		l := doc.Layer(attrs.Layer)
		if l == nil {
			return white
		}
		index = l.Color
		if index < 0 { // turned off, keep the color
			index = -index
		}
	}
	return ACI(index)
}

// Linetype returns the effective linetype of the entity, or nil
// if it is drawn with a continuous stroke. BYBLOCK is resolved to
// nil, BYLAYER (or no linetype) to the layer linetype.
func (doc *Document) Linetype(e Entity) *Linetype {
	attrs := e.Attrs()
	name := key(attrs.Linetype)
	switch name {
	case LinetypeByBlock:
		return nil
	case LinetypeByLayer, "":
		l := doc.Layer(attrs.Layer)
		if l == nil || l.Linetype == "" {
			return nil
		}
		name = key(l.Linetype)
		if name == LinetypeByBlock || name == LinetypeByLayer {
			return nil
		}
	}
	return doc.LinetypeNamed(name)
}
