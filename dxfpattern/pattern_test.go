package dxfpattern

import (
	"fmt"
	"math"
	"testing"

	"github.com/benoitkugler/dxfvis/dxfgeom"
	"github.com/tdewolff/test"
)

func TestExpandLine(t *testing.T) {
	segs := ExpandLine(dxfgeom.Pt(0, 0), dxfgeom.Pt(10, 0), Pattern{4, 3, -1})
	test.T(t, len(segs), 3)
	test.T(t, segs[0], Segment{From: dxfgeom.Pt(0, 0), To: dxfgeom.Pt(3, 0)})
	test.T(t, segs[1], Segment{From: dxfgeom.Pt(4, 0), To: dxfgeom.Pt(7, 0)})
	test.T(t, segs[2], Segment{From: dxfgeom.Pt(8, 0), To: dxfgeom.Pt(10, 0)})
}

func TestExpandLineDots(t *testing.T) {
	segs := ExpandLine(dxfgeom.Pt(0, 0), dxfgeom.Pt(3, 0), Pattern{2, 1, 0, -1})
	test.T(t, len(segs), 3)
	test.That(t, !segs[0].Dot)
	test.T(t, segs[1], Segment{Dot: true, From: dxfgeom.Pt(1, 0), To: dxfgeom.Pt(1, 0)})
	test.T(t, segs[2], Segment{From: dxfgeom.Pt(2, 0), To: dxfgeom.Pt(3, 0)})
}

func TestExpandLineDegenerate(t *testing.T) {
	p := dxfgeom.Pt(5, 5)
	test.T(t, len(ExpandLine(p, p, Pattern{1, 1, -1})), 0)

	// a pattern which never advances is drawn solid
	segs := ExpandLine(dxfgeom.Pt(0, 0), dxfgeom.Pt(4, 0), Pattern{0, 0, 0})
	test.T(t, segs, []Segment{{From: dxfgeom.Pt(0, 0), To: dxfgeom.Pt(4, 0)}})
	segs = ExpandLine(dxfgeom.Pt(0, 0), dxfgeom.Pt(4, 0), Pattern{12})
	test.T(t, len(segs), 1)
}

func TestExpandLineBudget(t *testing.T) {
	patterns := []Pattern{
		{1, 0.5, -0.5},
		{20, 12.7, -5.08, 0, -5.08},
		{7, -1, 3, 0, -2.25},
		{3, 0.3},
	}
	ends := []dxfgeom.Point{dxfgeom.Pt(13.3, 0), dxfgeom.Pt(0, -7), dxfgeom.Pt(41.5, 17.25), dxfgeom.Pt(-3, 2)}
	for i, pattern := range patterns {
		for j, end := range ends {
			t.Run(fmt.Sprintf("%d-%d", i, j), func(t *testing.T) {
				start := dxfgeom.Pt(1, 1)
				p2 := start.Add(end)
				total := end.Len()
				segs := ExpandLine(start, p2, pattern)
				test.That(t, len(segs) > 0)

				var cursor float64
				for _, s := range segs {
					from := s.From.Sub(start).Len()
					to := s.To.Sub(start).Len()
					test.That(t, from >= cursor-1e-9, "pieces must not overlap")
					test.That(t, to <= total+1e-9, "no overshoot")
					cursor = to
				}

				last := segs[len(segs)-1]
				if endsOnDash(pattern, total) {
					test.T(t, last.To, p2, "a final dash is truncated on the end point")
				} else {
					test.That(t, last.To.Sub(start).Len() < total, "a final gap leaves the end blank")
				}
			})
		}
	}
}

// endsOnDash returns true if the element of pattern reaching the
// length total is a dash.
func endsOnDash(pattern Pattern, total float64) bool {
	var pos float64
	for {
		for _, v := range pattern[1:] {
			if v == 0 {
				continue
			}
			pos += math.Abs(v)
			if pos >= total {
				return v > 0
			}
		}
	}
}

func TestExpandLineEndsOnTarget(t *testing.T) {
	p1, p2 := dxfgeom.Pt(2, 3), dxfgeom.Pt(2, 10)
	segs := ExpandLine(p1, p2, Pattern{1, 10})
	test.T(t, len(segs), 1)
	test.T(t, segs[0].To, p2)
	test.Float(t, segs[0].From.X, 2)
	test.Float(t, segs[0].From.Y, 3)
}

func TestExpandArc(t *testing.T) {
	radius := 180 / math.Pi // one unit of length is one degree
	center := dxfgeom.Pt(0, 0)

	for _, end := range []float64{80, -80} {
		segs := ExpandArc(center, radius, 0, end, Pattern{15, 10, -5})
		test.T(t, len(segs), 6)
		sign := math.Copysign(1, end)
		for i, s := range segs[:5] {
			test.Float(t, s.From, sign*float64(15*i))
			test.Float(t, s.To, sign*float64(15*i+10))
		}
		test.Float(t, segs[5].From, sign*75)
		test.T(t, segs[5].To, end)
	}
}

func TestExpandArcDot(t *testing.T) {
	segs := ExpandArc(dxfgeom.Pt(1, 1), 2, 90, 180, Pattern{0, 0, -100})
	test.T(t, len(segs), 1)
	test.That(t, segs[0].Dot)
	test.Float(t, segs[0].At.X, 1)
	test.Float(t, segs[0].At.Y, 3)
}

func TestExpandArcDegenerate(t *testing.T) {
	test.T(t, len(ExpandArc(dxfgeom.Pt(0, 0), 0, 0, 90, Pattern{1, 1})), 0)
	test.T(t, len(ExpandArc(dxfgeom.Pt(0, 0), 5, 30, 30, Pattern{1, 1})), 0)
}

func TestExpandBounded(t *testing.T) {
	segs := ExpandLine(dxfgeom.Pt(0, 0), dxfgeom.Pt(1e9, 0), Pattern{2, 1, -1})
	test.T(t, len(segs), MaxSegments+1)
	test.T(t, segs[MaxSegments].To, dxfgeom.Pt(1e9, 0))
}

func TestApproximate(t *testing.T) {
	test.T(t, Approximate("A B", 3), Pattern{3, 1, -1, 1})
	test.T(t, Approximate("AB  C", 10), Pattern{10, 4, -4, 2})
	test.T(t, Approximate("  __", 8), Pattern{8, -4, 4})
	test.T(t, Approximate("", 5), Pattern{5})

	p := Approximate("A B", 12)
	test.T(t, len(p), 4)
	test.Float(t, p[1], 4)
	test.Float(t, p[2], -4)
	test.Float(t, p[3], 4)
}

func TestNormalize(t *testing.T) {
	above := Pattern{300, 150, -150}
	test.T(t, Normalize(above), above)
	test.T(t, Normalize(Pattern{450, 1, -1}), Pattern{450, 1, -1})
	test.T(t, Normalize(Pattern{0, 1, -1}), Pattern{0, 1, -1})
	test.T(t, Normalize(Pattern{100, 50, -50}), Pattern{300, 150, -150})
	test.T(t, Normalize(Pattern{-150, 10, 0}), Pattern{-300, 20, 0})

	in := Pattern{150, 10}
	_ = Normalize(in)
	test.T(t, in, Pattern{150, 10})

	test.T(t, NormalizeLength(30), 300.)
	test.T(t, NormalizeLength(0), 0.)
	test.T(t, NormalizeLength(500), 500.)
}

func TestNormalizeArcAngles(t *testing.T) {
	for _, tt := range []struct {
		start, end   float64
		dStart, dEnd float64
	}{
		{0, 90, 0, -90},
		{90, 0, 270, 0},
		{270, 10, 90, -10},
		{10, 270, 350, 90},
		{45, 45, 315, -45},
		{-90, 90, 90, -90},
		{180, -90, 180, 90},
		{0, 360, 0, -360},
	} {
		t.Run(fmt.Sprintf("%g-%g", tt.start, tt.end), func(t *testing.T) {
			s, e := NormalizeArcAngles(tt.start, tt.end)
			test.Float(t, s, tt.dStart)
			test.Float(t, e, tt.dEnd)
		})
	}
}

func TestPatternString(t *testing.T) {
	test.String(t, Pattern{12, 6, -3, 0}.String(), "[12 | 6 -3 0]")
	test.String(t, Pattern(nil).String(), "[]")
}
