package geo

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// Cartesian is an immutable position in the right-handed cartesian frame
// whose origin is the center of the globe. The x axis points at the
// intersection of the equator and the reference meridian, and the z axis at
// the north pole.
type Cartesian struct {
	v r3.Vector
}

// Unit vectors of the frame axes.
var (
	UnitX = Cartesian{r3.Vector{X: 1}}
	UnitY = Cartesian{r3.Vector{Y: 1}}
	UnitZ = Cartesian{r3.Vector{Z: 1}}
)

// NewCartesian builds a position from raw components. There is no range
// restriction; the only requirement is that every component is finite.
// Returns ErrInvalidCoordinate otherwise.
func NewCartesian(x, y, z float64) (Cartesian, error) {
	if err := checkFinite("x", x); err != nil {
		return Cartesian{}, err
	}
	if err := checkFinite("y", y); err != nil {
		return Cartesian{}, err
	}
	if err := checkFinite("z", z); err != nil {
		return Cartesian{}, err
	}
	return Cartesian{r3.Vector{X: x, Y: y, Z: z}}, nil
}

// X returns the x component.
func (c Cartesian) X() float64 { return c.v.X }

// Y returns the y component.
func (c Cartesian) Y() float64 { return c.v.Y }

// Z returns the z component.
func (c Cartesian) Z() float64 { return c.v.Z }

// Add returns c + other.
func (c Cartesian) Add(other Cartesian) Cartesian {
	return Cartesian{c.v.Add(other.v)}
}

// Sub returns c - other.
func (c Cartesian) Sub(other Cartesian) Cartesian {
	return Cartesian{c.v.Sub(other.v)}
}

// Neg returns -c.
func (c Cartesian) Neg() Cartesian {
	return Cartesian{c.v.Mul(-1)}
}

// Scale returns c multiplied by a scalar.
func (c Cartesian) Scale(factor float64) Cartesian {
	return Cartesian{c.v.Mul(factor)}
}

// Dot returns the dot product of c and other.
func (c Cartesian) Dot(other Cartesian) float64 {
	return c.v.Dot(other.v)
}

// Cross returns the cross product of c and other.
func (c Cartesian) Cross(other Cartesian) Cartesian {
	return Cartesian{c.v.Cross(other.v)}
}

// Norm returns the distance of the point from the origin.
func (c Cartesian) Norm() float64 {
	return c.v.Norm()
}

// Unit returns the unit vector pointing at c, or the zero value when c is
// the origin.
func (c Cartesian) Unit() Cartesian {
	if c.v == (r3.Vector{}) {
		return c
	}
	return Cartesian{c.v.Normalize()}
}

// Distance returns the euclidean distance between c and other.
func (c Cartesian) Distance(other Cartesian) float64 {
	return c.v.Distance(other.v)
}

// String implements fmt.Stringer.
func (c Cartesian) String() string {
	return fmt.Sprintf("(%g, %g, %g)", c.v.X, c.v.Y, c.v.Z)
}
