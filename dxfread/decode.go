package dxfread

import (
	"bytes"
	"io"
	"strings"

	"github.com/benoitkugler/dxfvis/dxfdoc"
	"github.com/benoitkugler/dxfvis/internal/logging"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// utf8Version is the first $ACADVER whose strings are
// stored as UTF-8 (AutoCAD 2007).
const utf8Version = "AC1021"

// defaultCodepage is used by files without $DWGCODEPAGE.
const defaultCodepage = "ANSI_1252"

// codepages maps $DWGCODEPAGE values to encoding labels.
var codepages = map[string]string{
	"ANSI_874":  "windows-874",
	"ANSI_932":  "shift_jis",
	"ANSI_936":  "gbk",
	"ANSI_949":  "euc-kr",
	"ANSI_950":  "big5",
	"ANSI_1250": "windows-1250",
	"ANSI_1251": "windows-1251",
	"ANSI_1252": "windows-1252",
	"ANSI_1253": "windows-1253",
	"ANSI_1254": "windows-1254",
	"ANSI_1255": "windows-1255",
	"ANSI_1256": "windows-1256",
	"ANSI_1257": "windows-1257",
	"ANSI_1258": "windows-1258",
	"DOS866":    "ibm866",
	"ISO8859-1": "iso-8859-1",
	"ISO8859-2": "iso-8859-2",
	"ISO8859-5": "iso-8859-5",
	"ISO8859-7": "iso-8859-7",
	"KOI8-R":    "koi8-r",
	"UTF8":      "utf-8",
}

// Encoding returns the encoding of the strings of a file, from its
// header variables, and the canonical name of the encoding.
// A nil encoding means UTF-8.
func Encoding(version, codepage string) (encoding.Encoding, string) {
	if version >= utf8Version {
		return nil, "utf-8"
	}
	cp := strings.ToUpper(strings.TrimSpace(codepage))
	if cp == "" {
		cp = defaultCodepage
	}
	label, ok := codepages[cp]
	if !ok {
		logging.Logger().Warn("unknown codepage, using the default one", "codepage", codepage)
		label = codepages[defaultCodepage]
	}
	enc, name := charset.Lookup(label)
	if enc == nil || name == "utf-8" {
		return nil, "utf-8"
	}
	return enc, name
}

// sniffHeader returns the version and codepage declared in the
// HEADER section, read before any decoding. Header values are ASCII.
func sniffHeader(data []byte) (version, codepage string) {
	rd := newReader(bytes.NewReader(data), dxfdoc.IgnoreErrorMode)
	for rd.s.Next() {
		t := rd.s.Tag()
		if t.Is(2, "HEADER") {
			_ = rd.readHeader()
			break
		}
		if t.Is(0, "ENDSEC") {
			break
		}
	}
	return rd.doc.Version, rd.doc.Codepage
}

// decoded returns a UTF-8 reader over data.
func decoded(data []byte) (io.Reader, string) {
	enc, name := Encoding(sniffHeader(data))
	var src io.Reader = bytes.NewReader(data)
	if enc != nil {
		src = transform.NewReader(src, enc.NewDecoder())
	}
	return src, name
}
