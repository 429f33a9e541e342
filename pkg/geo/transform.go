package geo

import "github.com/golang/geo/r3"

// Transform is a geometric transformation over cartesian positions.
type Transform interface {
	// Apply performs the transformation over the given point.
	Apply(Cartesian) Cartesian
}

// Transform returns the point resulting from applying t to c.
func (c Cartesian) Transform(t Transform) Cartesian {
	return t.Apply(c)
}

// Translation displaces points by a fixed vector.
type Translation struct {
	Vector Cartesian
}

// Apply implements Transform.
func (t Translation) Apply(c Cartesian) Cartesian {
	return c.Add(t.Vector)
}

// Neg returns the inverse translation.
func (t Translation) Neg() Translation {
	return Translation{Vector: t.Vector.Neg()}
}

// Scaling scales points radially about the origin.
type Scaling struct {
	Factor float64
}

// Apply implements Transform.
func (s Scaling) Apply(c Cartesian) Cartesian {
	return c.Scale(s.Factor)
}

// Rotation rotates points about an axis through the origin by Theta degrees,
// following the right-hand rule. The axis does not need to be unit length.
type Rotation struct {
	Axis  Cartesian
	Theta float64
}

// Neg returns the inverse rotation.
func (r Rotation) Neg() Rotation {
	return Rotation{Axis: r.Axis, Theta: -r.Theta}
}

// Apply implements Transform using the Rodrigues rotation formula. Rotating
// about the zero vector, or a point lying on the axis, leaves it unchanged.
func (r Rotation) Apply(c Cartesian) Cartesian {
	k := r.Axis.Unit()
	if k.v == (r3.Vector{}) {
		return c
	}

	sin, cos := sincosDeg(Normalize(r.Theta))
	rotated := c.v.Mul(cos).
		Add(k.v.Cross(c.v).Mul(sin)).
		Add(k.v.Mul(k.v.Dot(c.v) * (1 - cos)))
	return Cartesian{rotated}
}
