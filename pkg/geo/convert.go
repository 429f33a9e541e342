package geo

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Sphere is a reference sphere for converting between geographic and
// cartesian positions. The radius is expressed in the same linear unit as
// altitudes and cartesian components; it is an explicit parameter rather
// than a constant so the engine works for any body, not just Earth.
type Sphere struct {
	radius float64
}

// NewSphere builds a reference sphere. The radius must be finite and
// non-negative; returns ErrInvalidCoordinate otherwise.
func NewSphere(radius float64) (Sphere, error) {
	if err := checkFinite("reference radius", radius); err != nil {
		return Sphere{}, err
	}
	if radius < 0 {
		return Sphere{}, fmt.Errorf("%w: reference radius is negative (%g)", ErrInvalidCoordinate, radius)
	}
	return Sphere{radius: radius}, nil
}

// Radius returns the reference radius.
func (s Sphere) Radius() float64 { return s.radius }

// ToCartesian maps a geographic position to the cartesian frame. The radial
// distance of the result is the reference radius plus the altitude.
func (s Sphere) ToCartesian(g Geographic) Cartesian {
	r := s.radius + g.alt
	sinLat, cosLat := sincosDeg(g.lat)
	sinLon, cosLon := sincosDeg(g.lon)

	return Cartesian{r3.Vector{
		X: r * cosLat * cosLon,
		Y: r * cosLat * sinLon,
		Z: r * sinLat,
	}}
}

// ToGeographic maps a cartesian position back to geographic coordinates.
// The result is renormalized through the latitude/longitude pipeline so
// rounding can never push it out of range.
//
// The origin is degenerate: it has no meaningful latitude or longitude, so
// by convention it maps to (0°, 0°) at altitude -radius. A point on the
// z axis likewise takes longitude 0.
func (s Sphere) ToGeographic(c Cartesian) Geographic {
	r := c.Norm()
	if r == 0 {
		return Geographic{alt: -s.radius}
	}

	// Rounding in Norm may leave |z|/r a hair above 1.
	sinLat := c.v.Z / r
	if sinLat > 1 {
		sinLat = 1
	} else if sinLat < -1 {
		sinLat = -1
	}

	// Exact results on the axes, where asin/atan2 followed by the radian
	// to degree conversion would round.
	var lat float64
	switch sinLat {
	case 1:
		lat = 90
	case -1:
		lat = -90
	case 0:
		lat = 0
	default:
		lat = degrees(math.Asin(sinLat))
	}

	var lon float64
	switch {
	case c.v.Y == 0 && c.v.X >= 0:
		lon = 0
	case c.v.Y == 0:
		lon = 180
	default:
		lon = degrees(math.Atan2(c.v.Y, c.v.X))
	}

	return newGeographic(lat, lon, r-s.radius)
}

// Distance returns the great-circle distance between a and b measured on
// the surface of the sphere, ignoring altitudes.
func (s Sphere) Distance(a, b Geographic) float64 {
	return radians(a.Angle(b)) * s.radius
}
