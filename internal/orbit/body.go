// Package orbit simulates systems of bodies on circular orbits on top of
// the geo coordinate engine. Positions are cartesian, in kilometers, in the
// frame of the root body.
package orbit

import (
	"fmt"

	"github.com/Faultbox/globe/pkg/units"
)

// GravitationalConstant is G in N·m²·kg⁻².
const GravitationalConstant = 6.67430e-11

// Body is an arbitrary spherical body.
type Body struct {
	// Name identifies the body within its system.
	Name string `yaml:"name"`
	// Radius of the body, in kilometers.
	Radius units.Distance `yaml:"radius"`
	// Mass of the body, in kilograms.
	Mass units.Mass `yaml:"mass"`
	// Spin is the sideral rotation period of the body over its own axis.
	// Zero means the body does not rotate.
	Spin units.Period `yaml:"spin"`
}

// GravitationalParameter returns GM in m³/s².
func (b Body) GravitationalParameter() float64 {
	return GravitationalConstant * b.Mass.Kilograms()
}

func (b Body) validate() error {
	if b.Name == "" {
		return fmt.Errorf("body has no name")
	}
	if b.Radius <= 0 {
		return fmt.Errorf("body %s: radius must be positive", b.Name)
	}
	if b.Mass <= 0 {
		return fmt.Errorf("body %s: mass must be positive", b.Name)
	}
	if b.Spin < 0 {
		return fmt.Errorf("body %s: spin period must not be negative", b.Name)
	}
	return nil
}
