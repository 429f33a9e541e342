package geo

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate reports a NaN or infinite component at construction.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Geographic is an immutable position in the geographic system of
// coordinates: latitude and longitude in degrees plus an altitude measured
// from the reference surface along the local vertical, in the same linear
// unit as the reference radius used for conversions.
//
// Instances only exist with latitude in [-90, 90] and longitude in
// (-180, 180]. The zero value is the point where the equator meets the
// reference meridian, at altitude zero.
type Geographic struct {
	lat, lon, alt float64
}

// Delta is a displacement between geographic positions: degrees of latitude
// and longitude plus a linear altitude offset.
type Delta struct {
	Lat, Lon, Alt float64
}

// Scale returns the delta multiplied component-wise by factor.
func (d Delta) Scale(factor float64) Delta {
	return Delta{d.Lat * factor, d.Lon * factor, d.Alt * factor}
}

// NewGeographic builds a position from raw components. Latitude and
// longitude may have any finite magnitude: latitude is folded into [-90, 90]
// and, when the folding crosses a pole, the longitude is rotated by 180
// degrees before being folded into (-180, 180]. Altitude passes through
// unchanged. Returns ErrInvalidCoordinate if any component is NaN or
// infinite.
func NewGeographic(lat, lon, alt float64) (Geographic, error) {
	if err := checkFinite("latitude", lat); err != nil {
		return Geographic{}, err
	}
	if err := checkFinite("longitude", lon); err != nil {
		return Geographic{}, err
	}
	if err := checkFinite("altitude", alt); err != nil {
		return Geographic{}, err
	}
	return newGeographic(lat, lon, alt), nil
}

// newGeographic runs the normalization pipeline on components already known
// to be finite. Latitude first: its flip signal feeds the longitude fold.
func newGeographic(lat, lon, alt float64) Geographic {
	nlat, flip := NormalizeLat(lat)
	return Geographic{lat: nlat, lon: NormalizeLon(lon, flip), alt: alt}
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is %v", ErrInvalidCoordinate, name, v)
	}
	return nil
}

// Lat returns the latitude in degrees, within [-90, 90].
func (g Geographic) Lat() float64 { return g.lat }

// Lon returns the longitude in degrees, within (-180, 180].
func (g Geographic) Lon() float64 { return g.lon }

// Alt returns the altitude above the reference surface.
func (g Geographic) Alt() float64 { return g.alt }

// Add returns a new position displaced by delta, renormalized through the
// full latitude/longitude pipeline. Returns ErrInvalidCoordinate if any
// delta component is NaN or infinite.
func (g Geographic) Add(d Delta) (Geographic, error) {
	return NewGeographic(g.lat+d.Lat, g.lon+d.Lon, g.alt+d.Alt)
}

// LatRatio returns the latitude divided by 90, within [-1, 1].
func (g Geographic) LatRatio() float64 { return g.lat / 90 }

// LonRatio returns the longitude divided by 180, within (-1, 1].
func (g Geographic) LonRatio() float64 { return g.lon / 180 }

// Angle returns the central angle in degrees of the great circle between g
// and other, ignoring altitudes. Computed with the haversine formula, which
// stays accurate for nearby points.
func (g Geographic) Angle(other Geographic) float64 {
	lat1 := radians(g.lat)
	lat2 := radians(other.lat)
	dLat := lat2 - lat1
	dLon := radians(other.lon - g.lon)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return degrees(2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a)))
}

// String implements fmt.Stringer.
func (g Geographic) String() string {
	return fmt.Sprintf("(lat %g°, lon %g°, alt %g)", g.lat, g.lon, g.alt)
}
