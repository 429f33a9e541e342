// Package geo implements spherical coordinates: geographic and cartesian
// positions, the normalization rules that keep them consistent, and the
// conversions between both representations.
//
// All angles in the public API are degrees. Latitude is always held in
// [-90, 90] and longitude in (-180, 180]; any raw value is folded back into
// range on construction.
package geo

import (
	"math"

	"github.com/golang/geo/s1"
)

// Normalize folds an arbitrary finite angle in degrees into (-180, 180].
// Both boundaries of the range are consecutive, so overflowing one is the
// same as continuing from the other in the same direction.
func Normalize(deg float64) float64 {
	if deg > -180 && deg <= 180 {
		return deg
	}
	m := math.Mod(deg+180, 360)
	if m <= 0 {
		m += 360
	}
	return m - 180
}

// NormalizeLat reduces a raw latitude in degrees into [-90, 90].
//
// The value is first folded into (-180, 180]. A folded value beyond ±90 has
// crossed a pole: it is reflected back into range and the returned flip flag
// is set, telling the caller that the paired longitude moved onto the
// opposite meridian and must be shifted by 180 degrees. The exact poles are
// fixed points and never flip.
func NormalizeLat(deg float64) (lat float64, flip bool) {
	v := Normalize(deg)
	if v >= -90 && v <= 90 {
		return v, false
	}
	return math.Copysign(180, v) - v, true
}

// NormalizeLon reduces a raw longitude in degrees into (-180, 180], shifting
// it by 180 degrees first when flip is set. The flip flag must come from
// NormalizeLat on the paired latitude; applying it in any other order breaks
// the pole-crossing coupling.
func NormalizeLon(deg float64, flip bool) float64 {
	if flip {
		deg += 180
	}
	return Normalize(deg)
}

// radians converts degrees to radians.
func radians(deg float64) float64 {
	return (s1.Angle(deg) * s1.Degree).Radians()
}

// degrees converts radians to degrees.
func degrees(rad float64) float64 {
	return s1.Angle(rad).Degrees()
}

// sincosDeg returns sin and cos of an angle in degrees, with exact results
// at the cardinal angles so that points on the axes convert cleanly.
func sincosDeg(deg float64) (sin, cos float64) {
	switch deg {
	case 0:
		return 0, 1
	case 90:
		return 1, 0
	case -90:
		return -1, 0
	case 180, -180:
		return 0, -1
	}
	rad := radians(deg)
	return math.Sin(rad), math.Cos(rad)
}
