package orbit

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/globe/pkg/units"
)

// System is a body together with the systems orbiting it.
type System struct {
	// Primary is the central body of the system.
	Primary Body `yaml:"primary"`
	// Orbit is the radius of the circular orbit of this system's primary
	// around the center of its parent, in kilometers. Zero for the root.
	Orbit units.Distance `yaml:"orbit"`
	// Secondary holds the systems orbiting the primary body.
	Secondary []System `yaml:"secondary"`
}

// LoadSystem reads a system definition from a YAML file and validates it.
func LoadSystem(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading system file: %w", err)
	}

	var s System
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing system file %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid system file %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks the system definition recursively.
func (s System) Validate() error {
	return s.validate(true)
}

func (s System) validate(root bool) error {
	if err := s.Primary.validate(); err != nil {
		return err
	}
	if !root && s.Orbit <= 0 {
		return fmt.Errorf("system %s: orbit radius must be positive", s.Primary.Name)
	}
	for _, child := range s.Secondary {
		if err := child.validate(false); err != nil {
			return err
		}
	}
	return nil
}

// Radius returns the outermost reach of the system: the orbit plus the
// primary's radius, extended by the reach of the farthest secondary.
func (s System) Radius() units.Distance {
	own := s.Orbit + s.Primary.Radius

	max := own
	for _, child := range s.Secondary {
		if r := child.Radius() + own; r > max {
			max = r
		}
	}
	return max
}
