package dxfread

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/benoitkugler/dxfvis/internal/logging"
	"github.com/tdewolff/test"
)

// dxf joins group codes and values, one per line.
func dxf(pairs ...string) string {
	return strings.Join(pairs, "\n") + "\n"
}

func header(version, codepage string) string {
	return dxf("0", "SECTION", "2", "HEADER",
		"9", "$ACADVER", "1", version,
		"9", "$DWGCODEPAGE", "3", codepage,
		"9", "$INSUNITS", "70", "4",
		"0", "ENDSEC")
}

var drawing = header("AC1015", "ANSI_1252") + dxf(
	"999", "written by hand",
	"0", "SECTION", "2", "CLASSES", "0", "ENDSEC",
	"0", "SECTION", "2", "TABLES",
	"0", "TABLE", "2", "LTYPE", "70", "1",
	"0", "LTYPE", "2", "DASHED", "70", "0", "3", "__ __ __", "72", "65", "73", "2", "40", "15.0", "49", "10.0", "74", "0", "49", "-5.0", "74", "0",
	"0", "ENDTAB",
	"0", "TABLE", "2", "LAYER", "70", "2",
	"0", "LAYER", "2", "Walls", "70", "0", "62", "1", "6", "DASHED",
	"0", "LAYER", "2", "Frozen", "70", "1", "62", "-3", "6", "CONTINUOUS",
	"0", "ENDTAB",
	"0", "ENDSEC",
	"0", "SECTION", "2", "BLOCKS",
	"0", "BLOCK", "8", "0", "2", "*D1", "70", "1", "10", "0.0", "20", "0.0",
	"0", "LINE", "8", "0", "10", "0", "20", "0", "11", "5", "21", "0",
	"0", "ENDBLK", "8", "0",
	"0", "ENDSEC",
	"0", "SECTION", "2", "ENTITIES",
	"0", "LINE", "5", "1A", "8", "Walls", "10", "1.5", "20", "2.5", "30", "0.0", "11", "-3", "21", "4",
	"0", "CIRCLE", "8", "0", "62", "5", "10", "0", "20", "0", "40", "2.0",
	"0", "ARC", "8", "0", "420", "16744448", "10", "1", "20", "1", "40", "3", "50", "270", "51", "10",
	"0", "LWPOLYLINE", "8", "0", "90", "3", "70", "1", "10", "0", "20", "0", "10", "4", "20", "0", "10", "4", "20", "3",
	"0", "POLYLINE", "8", "0", "66", "1", "70", "8",
	"0", "VERTEX", "8", "0", "10", "0", "20", "0",
	"0", "VERTEX", "8", "0", "10", "1", "20", "1",
	"0", "SEQEND", "8", "0",
	"0", "POLYLINE", "8", "0", "66", "1", "70", "0",
	"0", "VERTEX", "8", "0", "10", "7", "20", "8",
	"0", "VERTEX", "8", "0", "70", "16", "10", "100", "20", "100",
	"0", "VERTEX", "8", "0", "10", "9", "20", "10",
	"0", "SEQEND", "8", "0",
	"0", "POINT", "8", "0", "10", "6", "20", "-6",
	"0", "DIMENSION", "8", "0", "2", "*D1", "3", "Standard",
	"0", "MTEXT", "8", "0", "10", "0", "20", "0", "40", "2.5", "3", "long ", "1", "text",
	"0", "SPLINE", "8", "Walls",
	"0", "ENDSEC",
	"0", "SECTION", "2", "OBJECTS", "0", "DICTIONARY", "5", "C", "0", "ENDSEC",
	"0", "EOF",
)

func TestRead(t *testing.T) {
	doc, err := Read(strings.NewReader(drawing), dxfdoc.StrictErrorMode)
	test.Error(t, err)
	test.T(t, doc.Version, "AC1015")
	test.T(t, doc.Codepage, "ANSI_1252")

	walls := doc.Layer("WALLS")
	test.That(t, walls != nil)
	test.T(t, *walls, dxfdoc.Layer{Name: "Walls", Color: 1, Linetype: "DASHED"})
	test.That(t, !doc.Layer("frozen").IsOn())
	test.That(t, doc.Layer("0") != nil)

	dashed := doc.LinetypeNamed("dashed")
	test.That(t, dashed != nil)
	test.T(t, dashed.Description, "__ __ __")
	test.That(t, dashed.HasLength)
	test.T(t, []float64(dashed.Pattern), []float64{15, 10, -5})

	block := doc.Block("*D1")
	test.That(t, block != nil)
	test.T(t, len(block.Entities), 1)

	test.T(t, len(doc.Entities), 10)
	var types []string
	for _, e := range doc.Entities {
		types = append(types, e.Type())
	}
	test.T(t, types, []string{"LINE", "CIRCLE", "ARC", "LWPOLYLINE", "POLYLINE", "POLYLINE", "POINT", "DIMENSION", "MTEXT", "SPLINE"})

	line := doc.Entities[0].(*dxfdoc.Line)
	test.T(t, line.Handle, "1A")
	test.T(t, line.Layer, "Walls")
	test.T(t, line.Color, dxfdoc.ColorByLayer)
	test.T(t, line.Start, dxfgeom.Pt(1.5, 2.5))
	test.T(t, line.End, dxfgeom.Pt(-3, 4))
	test.T(t, doc.Linetype(line), dashed)

	test.T(t, doc.Entities[1].Attrs().Color, 5)
	test.Float(t, doc.Entities[1].(*dxfdoc.Circle).Radius, 2)

	arc := doc.Entities[2].(*dxfdoc.Arc)
	test.That(t, arc.HasTrueColor)
	test.T(t, doc.Color(arc), arc.TrueColor)
	test.T(t, arc.TrueColor.R, uint8(0xff))
	test.T(t, arc.TrueColor.G, uint8(0x80))
	test.T(t, arc.TrueColor.B, uint8(0))
	test.Float(t, arc.StartAngle, 270)
	test.Float(t, arc.EndAngle, 10)

	lw := doc.Entities[3].(*dxfdoc.LWPolyline)
	test.That(t, lw.Closed)
	test.T(t, lw.Vertices, []dxfgeom.Point{dxfgeom.Pt(0, 0), dxfgeom.Pt(4, 0), dxfgeom.Pt(4, 3)})

	poly3D := doc.Entities[4].(*dxfdoc.Polyline)
	test.That(t, poly3D.Is3D)
	test.T(t, len(poly3D.Vertices), 2)

	poly := doc.Entities[5].(*dxfdoc.Polyline)
	test.That(t, !poly.Is3D && !poly.Closed)
	test.T(t, poly.Vertices, []dxfgeom.Point{dxfgeom.Pt(7, 8), dxfgeom.Pt(9, 10)})

	test.T(t, doc.Entities[6].(*dxfdoc.PointEntity).Location, dxfgeom.Pt(6, -6))
	test.T(t, doc.Entities[7].(*dxfdoc.Dimension).Block, "*D1")
	test.T(t, doc.Entities[8].(*dxfdoc.MText).Value, "long text")
}

func TestReadCRLF(t *testing.T) {
	crlf := strings.ReplaceAll(drawing, "\n", "\r\n")
	doc, err := Read(strings.NewReader(crlf), dxfdoc.StrictErrorMode)
	test.Error(t, err)
	test.T(t, len(doc.Entities), 10)
	test.T(t, doc.Entities[0].Attrs().Layer, "Walls")
}

func textValue(t *testing.T, content string) string {
	t.Helper()
	doc, err := Read(strings.NewReader(content), dxfdoc.StrictErrorMode)
	test.Error(t, err)
	test.T(t, len(doc.Entities), 1)
	return doc.Entities[0].(*dxfdoc.Text).Value
}

func TestReadEncoding(t *testing.T) {
	entities := func(text string) string {
		return dxf("0", "SECTION", "2", "ENTITIES",
			"0", "TEXT", "8", "0", "10", "0", "20", "0", "40", "1", "1", text,
			"0", "ENDSEC", "0", "EOF")
	}

	test.T(t, textValue(t, header("AC1015", "ANSI_1252")+entities("caf\xe9")), "café")
	test.T(t, textValue(t, header("AC1018", "ANSI_932")+entities("\x93\xfa\x96\x7b")), "日本")
	test.T(t, textValue(t, header("AC1018", "ansi_1251")+entities("\xcf\xf0\xe8")), "При")
	// from AutoCAD 2007, the codepage is ignored
	test.T(t, textValue(t, header("AC1021", "ANSI_1252")+entities("café")), "café")
	test.T(t, textValue(t, header("AC1032", "ANSI_932")+entities("日本")), "日本")
	// no header at all: default codepage
	test.T(t, textValue(t, entities("\xb0C")), "°C")
}

func TestEncoding(t *testing.T) {
	for _, tt := range []struct {
		version, codepage, name string
	}{
		{"AC1009", "", "windows-1252"},
		{"AC1015", "ANSI_1252", "windows-1252"},
		{"AC1015", "ANSI_936", "gbk"},
		{"AC1015", "ANSI_949", "euc-kr"},
		{"AC1015", "ANSI_950", "big5"},
		{"AC1015", "ANSI_932", "shift_jis"},
		{"AC1024", "ANSI_932", "utf-8"},
		{"AC1015", "UTF8", "utf-8"},
		{"AC1015", "NOT_A_CODEPAGE", "windows-1252"},
	} {
		enc, name := Encoding(tt.version, tt.codepage)
		test.T(t, name, tt.name, tt.version, tt.codepage)
		test.That(t, (enc == nil) == (tt.name == "utf-8"), tt.codepage)
	}
}

func TestReadErrorModes(t *testing.T) {
	content := dxf("0", "SECTION", "2", "ENTITIES",
		"0", "LINE", "8", "0", "10", "abc", "20", "0", "11", "1", "21", "1",
		"0", "ENDSEC",
		"0", "SECTION", "2", "CUSTOM", "0", "DATA", "1", "x", "0", "ENDSEC",
		"0", "EOF")

	_, err := Read(strings.NewReader(content), dxfdoc.StrictErrorMode)
	test.That(t, errors.Is(err, ErrMalformed), err)
	test.That(t, strings.Contains(err.Error(), "line 10"), err)

	var buf bytes.Buffer
	logging.Set(slog.New(slog.NewTextHandler(&buf, nil)))
	defer logging.Set(nil)

	doc, err := Read(strings.NewReader(content), dxfdoc.WarnErrorMode)
	test.Error(t, err)
	test.T(t, doc.Entities[0].(*dxfdoc.Line).Start, dxfgeom.Pt(0, 0))
	test.That(t, strings.Contains(buf.String(), "invalid number"), buf.String())
	test.That(t, strings.Contains(buf.String(), "CUSTOM"), buf.String())

	buf.Reset()
	doc, err = Read(strings.NewReader(content), dxfdoc.IgnoreErrorMode)
	test.Error(t, err)
	test.T(t, len(doc.Entities), 1)
	test.That(t, !strings.Contains(buf.String(), "level=WARN"), buf.String())
}

func TestReadSyntaxErrors(t *testing.T) {
	for _, content := range []string{
		dxf("0", "SECTION", "2", "ENTITIES", "zero", "LINE"),
		dxf("0", "SECTION", "2", "ENTITIES", "0", "LINE", "8"),
		dxf("0", "SECTION", "2", "ENTITIES", "0", "LINE", "8", "0"), // no ENDSEC
		dxf("2", "ENTITIES"),
	} {
		_, err := Read(strings.NewReader(content), dxfdoc.WarnErrorMode)
		test.That(t, errors.Is(err, ErrSyntax), err)
	}

	// trailing blank line and missing EOF are accepted
	doc, err := Read(strings.NewReader(dxf("0", "SECTION", "2", "ENTITIES", "0", "ENDSEC", "")), dxfdoc.StrictErrorMode)
	test.Error(t, err)
	test.T(t, len(doc.Entities), 0)
}

func TestTag(t *testing.T) {
	i, err := Tag{Code: 70, Value: " 1.0"}.Int()
	test.Error(t, err)
	test.T(t, i, 1)
	_, err = Tag{Code: 70, Value: "one"}.Int()
	test.That(t, err != nil)
	f, err := Tag{Code: 40, Value: "2.5e1 "}.Float()
	test.Error(t, err)
	test.Float(t, f, 25)
	test.That(t, Tag{Code: 0, Value: "EOF"}.Is(0, "EOF"))
	test.T(t, Tag{Code: 0, Value: "EOF"}.String(), `0:"EOF"`)
}
