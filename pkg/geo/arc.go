package geo

import "math"

// Arc is a segment of a circle's circumference: the points reached by
// rotating Start about the axis through Center by up to Theta degrees.
type Arc struct {
	// Center of the circumference.
	Center Cartesian
	// Starting point of the arc.
	Start Cartesian
	// Axis of rotation, relative to Center.
	Axis Cartesian
	// Angle of the arc in degrees. 360 describes the full circumference.
	Theta float64
}

// Radius returns the radius of the arc's circumference.
func (a Arc) Radius() float64 {
	return a.Center.Distance(a.Start)
}

// Length returns the length of the arc.
func (a Arc) Length() float64 {
	return a.Radius() * math.Abs(radians(a.Theta))
}

// Perimeter returns the perimeter of the full circumference.
func (a Arc) Perimeter() float64 {
	return a.Radius() * 2 * math.Pi
}

// End returns the final point of the arc.
func (a Arc) End() Cartesian {
	return a.at(a.Theta)
}

// Sample divides the arc into the given number of segments and returns the
// segments+1 points delimiting them, from Start to End. Fewer than one
// segment is treated as one.
func (a Arc) Sample(segments int) []Cartesian {
	if segments < 1 {
		segments = 1
	}

	step := Rotation{Axis: a.Axis, Theta: a.Theta / float64(segments)}
	toOrigin := Translation{Vector: a.Center.Neg()}

	points := make([]Cartesian, 0, segments+1)
	points = append(points, a.Start)
	for i := 1; i <= segments; i++ {
		prev := points[i-1]
		points = append(points, prev.
			Transform(toOrigin).
			Transform(step).
			Transform(toOrigin.Neg()))
	}
	return points
}

func (a Arc) at(theta float64) Cartesian {
	rotation := Rotation{Axis: a.Axis, Theta: theta}
	return a.Start.
		Transform(Translation{Vector: a.Center.Neg()}).
		Transform(rotation).
		Transform(Translation{Vector: a.Center})
}
