package dxfpattern

import (
	"math"
	"strconv"
)

// NormalizeArcAngles converts the angles of a CAD arc (degrees,
// counter-clockwise in a y-up frame) into the angles swept by the
// arc primitives, which work in the y-down raster frame.
//
// Negative angles are first folded into [0, 360). Then, for a
// forward arc (start < end) both angles are mirrored, except when
// start is 0 where only end is negated. Otherwise start is mirrored
// and end is negated.
//
// The returned angles are not ordered: the arc is swept from
// drawStart to drawEnd, whatever the sign of the difference.
func NormalizeArcAngles(startDeg, endDeg float64) (drawStart, drawEnd float64) {
	startDeg, endDeg = FoldAngle(startDeg), FoldAngle(endDeg)
	if startDeg < endDeg {
		if startDeg == 0 {
			return 0, -endDeg
		}
		return 360 - startDeg, 360 - endDeg
	}
	return 360 - startDeg, -endDeg
}

// FoldAngle brings a negative angle into [0, 360).
// Angles of 360 or more are left untouched.
func FoldAngle(deg float64) float64 {
	if deg < 0 {
		deg = math.Mod(deg, 360)
		if deg < 0 {
			deg += 360
		}
	}
	return deg
}

func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
