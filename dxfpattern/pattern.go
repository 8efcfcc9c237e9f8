// Package dxfpattern expands CAD linetypes into the dash, gap and
// dot pieces actually drawn along lines and circular arcs.
//
// A pattern is stored the way CAD linetypes are authored: the first
// element is the nominal total length of one repetition and is not
// drawn; the following elements are signed lengths where a positive
// value is a dash, a negative value a gap and zero a dot.
package dxfpattern

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/benoitkugler/dxfvis/dxfgeom"
)

// VisibilityFloor is the nominal length under which a pattern is
// scaled up by Normalize.
const VisibilityFloor = 300.

// MaxSegments bounds the number of pieces produced by one expansion.
// Once reached, the remaining budget is drawn as a single dash.
const MaxSegments = 1 << 16

// Pattern is a linetype pattern, with its nominal length first.
type Pattern []float64

// Nominal returns the bookkeeping length, or 0 for an empty pattern.
func (p Pattern) Nominal() float64 {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// elements returns the drawable part of the pattern.
func (p Pattern) elements() []float64 {
	if len(p) <= 1 {
		return nil
	}
	return p[1:]
}

// advances returns true if at least one element moves the cursor.
func (p Pattern) advances() bool {
	for _, v := range p.elements() {
		if v != 0 {
			return true
		}
	}
	return false
}

// piece is one step of the 1-D walk, expressed in budget units.
type piece struct {
	dot      bool
	from, to float64
}

// walk cycles over the pattern elements, consuming budget.
// scale converts a pattern length into budget units.
// A piece that would overshoot is clamped and ends the walk.
func walk(budget float64, pattern Pattern, scale func(v float64) float64) []piece {
	if budget <= 0 || math.IsNaN(budget) || math.IsInf(budget, 0) {
		return nil
	}
	if !pattern.advances() {
		return []piece{{from: 0, to: budget}}
	}
	elems := pattern.elements()
	var (
		out []piece
		pos float64
	)
	for i := 0; pos < budget; i = (i + 1) % len(elems) {
		if len(out) >= MaxSegments {
			out = append(out, piece{from: pos, to: budget})
			break
		}
		v := elems[i]
		if v == 0 {
			out = append(out, piece{dot: true, from: pos, to: pos})
			continue
		}
		step := scale(math.Abs(v))
		last := false
		if pos+step >= budget {
			step, last = budget-pos, true
		}
		next := pos + step
		if last {
			next = budget
		}
		if v > 0 {
			out = append(out, piece{from: pos, to: next})
		}
		pos = next
		if last {
			break
		}
	}
	return out
}

// Segment is a straight piece of a patterned line.
// For a dot, From and To are both the dot center.
type Segment struct {
	Dot      bool
	From, To dxfgeom.Point
}

// ExpandLine returns the dashes and dots drawn along [p1, p2].
// Coincident endpoints yield nothing.
func ExpandLine(p1, p2 dxfgeom.Point, pattern Pattern) []Segment {
	theta, ok := dxfgeom.AngleBetween(p1, p2)
	if !ok {
		return nil
	}
	total := p2.Sub(p1).Len()
	dir := dxfgeom.Pt(math.Cos(theta), math.Sin(theta))
	at := func(d float64) dxfgeom.Point {
		if d == total {
			return p2
		}
		return p1.Add(dir.Mul(d))
	}
	pieces := walk(total, pattern, func(v float64) float64 { return v })
	out := make([]Segment, len(pieces))
	for i, pc := range pieces {
		out[i] = Segment{Dot: pc.dot, From: at(pc.from), To: at(pc.to)}
	}
	return out
}

// ArcSegment is a piece of a patterned arc. Angles are in degrees;
// At is the location of a dot.
type ArcSegment struct {
	Dot      bool
	From, To float64
	At       dxfgeom.Point
}

// ExpandArc returns the dashes and dots drawn along the arc of the
// circle (center, radius) going from startDeg to endDeg, in the
// direction given by the sign of endDeg - startDeg.
// A null radius or sweep yields nothing.
func ExpandArc(center dxfgeom.Point, radius, startDeg, endDeg float64, pattern Pattern) []ArcSegment {
	if radius <= 0 || startDeg == endDeg {
		return nil
	}
	sweep := math.Abs(endDeg - startDeg)
	dir := 1.
	if endDeg < startDeg {
		dir = -1
	}
	angle := func(d float64) float64 {
		if d == sweep {
			return endDeg
		}
		return startDeg + dir*d
	}
	pieces := walk(sweep, pattern, func(v float64) float64 { return dxfgeom.Degrees(v / radius) })
	out := make([]ArcSegment, len(pieces))
	for i, pc := range pieces {
		seg := ArcSegment{Dot: pc.dot, From: angle(pc.from), To: angle(pc.to)}
		if pc.dot {
			seg.At = dxfgeom.OnCircle(center, radius, seg.From)
		}
		out[i] = seg
	}
	return out
}

// Approximate turns the descriptive text of a linetype into a
// dash/gap pattern of total length targetLength: every space
// contributes to a gap, every other character to a dash, and
// consecutive characters of the same kind are merged.
func Approximate(text string, targetLength float64) Pattern {
	out := Pattern{targetLength}
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return out
	}
	charSize := targetLength / float64(n)
	var (
		sign float64
		run  int
	)
	for _, r := range text {
		s := 1.
		if r == ' ' {
			s = -1
		}
		if run != 0 && s != sign {
			out = append(out, sign*float64(run)*charSize)
			run = 0
		}
		sign = s
		run++
	}
	out = append(out, sign*float64(run)*charSize)
	return out
}

// Normalize scales the whole pattern, nominal length included, so
// that its nominal length reaches VisibilityFloor. Patterns with a
// null nominal length, or already long enough, are returned as is.
func Normalize(p Pattern) Pattern {
	k := scaleFactor(p.Nominal())
	if k == 1 {
		return p
	}
	out := make(Pattern, len(p))
	for i, v := range p {
		out[i] = v * k
	}
	return out
}

// NormalizeLength applies the scaling of Normalize to a single
// nominal length.
func NormalizeLength(v float64) float64 {
	return v * scaleFactor(v)
}

func scaleFactor(nominal float64) float64 {
	a := math.Abs(nominal)
	if a == 0 || a >= VisibilityFloor {
		return 1
	}
	return VisibilityFloor / a
}

// String returns a compact, human readable form, such as "[12 | 6 -3 0 -3]".
func (p Pattern) String() string {
	if len(p) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(formatLength(p[0]))
	b.WriteString(" |")
	for _, v := range p.elements() {
		b.WriteByte(' ')
		b.WriteString(formatLength(v))
	}
	b.WriteByte(']')
	return b.String()
}
