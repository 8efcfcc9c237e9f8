// Package dxfread reads ASCII DXF files into a dxfdoc.Document.
//
// Only the content needed for rendering is kept: the header
// variables describing the encoding, the LAYER and LTYPE tables,
// the blocks and the model space entities.
package dxfread

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/internal/logging"
)

// ErrMalformed is returned in StrictErrorMode for invalid values
// and unexpected structures.
var ErrMalformed = errors.New("malformed DXF content")

// sections which are valid but not needed
var ignoredSections = map[string]bool{
	"CLASSES":        true,
	"OBJECTS":        true,
	"THUMBNAILIMAGE": true,
	"ACDSDATA":       true,
}

type reader struct {
	s    *Scanner
	doc  *dxfdoc.Document
	mode dxfdoc.ErrorMode
}

func newReader(r io.Reader, mode dxfdoc.ErrorMode) *reader {
	return &reader{s: NewScanner(r), doc: dxfdoc.NewDocument(), mode: mode}
}

// Read parses the DXF content of r. mode decides whether invalid values
// and unknown sections are ignored, logged, or reported as an error.
// Strings are decoded according to the header of the file.
func Read(r io.Reader, mode dxfdoc.ErrorMode) (*dxfdoc.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	src, encoding := decoded(data)
	rd := newReader(src, mode)
	if err := rd.readSections(); err != nil {
		return nil, err
	}
	logging.Logger().Info("DXF read", "version", rd.doc.Version, "encoding", encoding,
		"entities", len(rd.doc.Entities), "blocks", len(rd.doc.Blocks), "layers", len(rd.doc.Layers))
	return rd.doc, nil
}

// ReadFile reads the named DXF file.
func ReadFile(path string, mode dxfdoc.ErrorMode) (*dxfdoc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, mode)
}

// problem applies the error mode to err.
func (rd *reader) problem(err error) error {
	switch rd.mode {
	case dxfdoc.StrictErrorMode:
		return fmt.Errorf("%w: %s", ErrMalformed, err)
	case dxfdoc.WarnErrorMode:
		logging.Logger().Warn("invalid DXF content skipped", "error", err)
	}
	return nil
}

// next returns the next tag, failing at the end of the input.
func (rd *reader) next() (Tag, error) {
	if !rd.s.Next() {
		if err := rd.s.Err(); err != nil {
			return Tag{}, err
		}
		return Tag{}, fmt.Errorf("%w: unexpected end of file", ErrSyntax)
	}
	return rd.s.Tag(), nil
}

// group returns the tags up to the next tag with code 0,
// which is left unread.
func (rd *reader) group() ([]Tag, error) {
	var out []Tag
	for rd.s.Next() {
		t := rd.s.Tag()
		if t.Code == 0 {
			rd.s.Unread()
			return out, nil
		}
		out = append(out, t)
	}
	return out, rd.s.Err()
}

func (rd *reader) readSections() error {
	for rd.s.Next() {
		t := rd.s.Tag()
		if t.Is(0, "EOF") {
			return nil
		}
		if !t.Is(0, "SECTION") {
			return fmt.Errorf("%w: line %d: expected a section, got %s", ErrSyntax, t.Line, t)
		}
		name, err := rd.next()
		if err != nil {
			return err
		}
		if name.Code != 2 {
			return fmt.Errorf("%w: line %d: missing section name", ErrSyntax, name.Line)
		}
		switch name.Name() {
		case "HEADER":
			err = rd.readHeader()
		case "TABLES":
			err = rd.readTables()
		case "BLOCKS":
			err = rd.readBlocks()
		case "ENTITIES":
			var entities []dxfdoc.Entity
			entities, err = rd.readEntities("ENDSEC")
			rd.doc.AddEntity(entities...)
		default:
			if !ignoredSections[name.Name()] {
				err = rd.problem(fmt.Errorf("line %d: unknown section %q", name.Line, name.Name()))
				if err != nil {
					return err
				}
			}
			err = rd.skipSection()
		}
		if err != nil {
			return err
		}
	}
	// a missing EOF marker is tolerated
	return rd.s.Err()
}

func (rd *reader) skipSection() error {
	for {
		t, err := rd.next()
		if err != nil {
			return err
		}
		if t.Is(0, "ENDSEC") {
			return nil
		}
	}
}

func (rd *reader) readHeader() error {
	var variable string
	for {
		t, err := rd.next()
		if err != nil {
			return err
		}
		switch {
		case t.Is(0, "ENDSEC"):
			return nil
		case t.Code == 9:
			variable = t.Name()
		case variable == "$ACADVER" && t.Code == 1:
			rd.doc.Version = t.Name()
		case variable == "$DWGCODEPAGE" && t.Code == 3:
			rd.doc.Codepage = t.Name()
		}
	}
}

func (rd *reader) readTables() error {
	for {
		t, err := rd.next()
		if err != nil {
			return err
		}
		switch {
		case t.Is(0, "ENDSEC"):
			return nil
		case t.Is(0, "TABLE"), t.Is(0, "ENDTAB"):
			// the table name is repeated by each entry
			if _, err := rd.group(); err != nil {
				return err
			}
		case t.Code == 0:
			tags, err := rd.group()
			if err != nil {
				return err
			}
			if err := rd.tableEntry(t.Name(), tags); err != nil {
				return err
			}
		}
	}
}

func (rd *reader) tableEntry(table string, tags []Tag) error {
	switch table {
	case "LAYER":
		layer, err := rd.layer(tags)
		if err != nil {
			return err
		}
		rd.doc.AddLayer(layer)
	case "LTYPE":
		lt, err := rd.linetype(tags)
		if err != nil {
			return err
		}
		rd.doc.AddLinetype(lt)
	}
	return nil
}

func (rd *reader) layer(tags []Tag) (*dxfdoc.Layer, error) {
	layer := &dxfdoc.Layer{Color: 7}
	for _, t := range tags {
		var err error
		switch t.Code {
		case 2:
			layer.Name = t.Value
		case 6:
			layer.Linetype = t.Value
		case 62:
			layer.Color, err = t.Int()
		case 70:
			var flags int
			flags, err = t.Int()
			layer.Frozen = flags&1 != 0
		}
		if err != nil {
			if err = rd.problem(err); err != nil {
				return nil, err
			}
		}
	}
	return layer, nil
}

func (rd *reader) linetype(tags []Tag) (*dxfdoc.Linetype, error) {
	lt := new(dxfdoc.Linetype)
	var elements []float64
	for _, t := range tags {
		var err error
		switch t.Code {
		case 2:
			lt.Name = t.Value
		case 3:
			lt.Description = t.Value
		case 40:
			lt.Length, err = t.Float()
			lt.HasLength = err == nil
		case 49:
			var v float64
			v, err = t.Float()
			if err == nil {
				elements = append(elements, v)
			}
		}
		if err != nil {
			if err = rd.problem(err); err != nil {
				return nil, err
			}
		}
	}
	if len(elements) != 0 {
		lt.Pattern = append([]float64{lt.Length}, elements...)
	}
	return lt, nil
}

func (rd *reader) readBlocks() error {
	for {
		t, err := rd.next()
		if err != nil {
			return err
		}
		switch {
		case t.Is(0, "ENDSEC"):
			return nil
		case t.Is(0, "BLOCK"):
			tags, err := rd.group()
			if err != nil {
				return err
			}
			block := new(dxfdoc.Block)
			for _, t := range tags {
				if t.Code == 2 {
					block.Name = t.Value
				}
			}
			block.Entities, err = rd.readEntities("ENDBLK")
			if err != nil {
				return err
			}
			rd.doc.AddBlock(block)
		case t.Code == 0:
			if err := rd.problem(fmt.Errorf("line %d: unexpected %s in BLOCKS", t.Line, t.Name())); err != nil {
				return err
			}
			if _, err := rd.group(); err != nil {
				return err
			}
		}
	}
}
