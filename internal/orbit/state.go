package orbit

import (
	"math"
	"time"

	"github.com/Faultbox/globe/pkg/geo"
	"github.com/Faultbox/globe/pkg/units"
)

// State is the configuration of a system at a given moment in time.
type State struct {
	// Body is the name of the system's primary body.
	Body string
	// Rotation is the spin angle of the primary around its own axis, in
	// degrees within (-180, 180].
	Rotation float64
	// Theta is the angular position of the primary along its orbit, in
	// degrees. Zero for the root body.
	Theta float64
	// Position is the center of the primary in the root frame, kilometers.
	Position geo.Cartesian
	// Velocity is the orbital velocity of the primary around its parent.
	// Zero for the root body.
	Velocity units.Velocity
	// Secondary holds the states of the orbiting systems.
	Secondary []State
}

// StateAt returns the state of the system at the given offset from the
// epoch. At the epoch every body sits on the x axis of its parent.
func (s System) StateAt(t time.Duration) State {
	return stateAt(t, s, nil)
}

type bodyPosition struct {
	body     Body
	position geo.Cartesian
}

func stateAt(t time.Duration, s System, parent *bodyPosition) State {
	state := State{
		Body:     s.Primary.Name,
		Rotation: spinAt(t, s.Primary),
	}

	if parent != nil {
		state.Theta = s.thetaAt(t, parent.body)
		state.Velocity = s.orbitalVelocity(parent.body)

		offset := geo.UnitX.Scale(s.Orbit.Kilometers())
		state.Position = parent.position.Add(
			offset.Transform(geo.Rotation{Axis: geo.UnitZ, Theta: state.Theta}))
	}

	self := &bodyPosition{body: s.Primary, position: state.Position}
	for _, child := range s.Secondary {
		state.Secondary = append(state.Secondary, stateAt(t, child, self))
	}
	return state
}

// orbitalVelocity returns the velocity of a circular orbit of radius Orbit
// around the given central body.
func (s System) orbitalVelocity(central Body) units.Velocity {
	return units.MetersPerSecond(
		math.Sqrt(central.GravitationalParameter() / s.Orbit.Meters()))
}

// Frequency returns how many orbits around the central body are completed
// per second.
func (s System) Frequency(central Body) units.Frequency {
	perimeter := 2 * math.Pi * s.Orbit.Meters()
	return units.Hertz(s.orbitalVelocity(central).MetersPerSecond() / perimeter)
}

// thetaAt returns the angular position along the orbit after time t, in
// degrees within (-180, 180].
func (s System) thetaAt(t time.Duration, central Body) float64 {
	omega := 2 * math.Pi * s.Frequency(central).Hertz()
	return geo.Normalize(omega * t.Seconds() * 180 / math.Pi)
}

// spinAt returns the rotation of the body around its own axis after time t,
// in degrees within (-180, 180].
func spinAt(t time.Duration, b Body) float64 {
	period := b.Spin.Duration()
	if period <= 0 {
		return 0
	}
	frac := math.Mod(t.Seconds(), period.Seconds()) / period.Seconds()
	return geo.Normalize(frac * 360)
}

// GroundTrack projects a secondary body's position onto the geographic
// system of its parent: the latitude and longitude of the surface point the
// body flies over, compensating the parent's spin, and the altitude above
// the parent's surface.
func GroundTrack(parent Body, parentState, secondary State) (geo.Geographic, error) {
	sphere, err := geo.NewSphere(parent.Radius.Kilometers())
	if err != nil {
		return geo.Geographic{}, err
	}

	relative := secondary.Position.Sub(parentState.Position).
		Transform(geo.Rotation{Axis: geo.UnitZ, Theta: -parentState.Rotation})
	return sphere.ToGeographic(relative), nil
}

// Trail returns the full orbit of a secondary around its parent sampled
// into the given number of segments, in the root frame.
func Trail(parentState, secondary State, segments int) []geo.Cartesian {
	arc := geo.Arc{
		Center: parentState.Position,
		Start:  secondary.Position,
		Axis:   geo.UnitZ,
		Theta:  360,
	}
	return arc.Sample(segments)
}

// Stepper yields successive states of a system, advancing a fixed time step
// on every call to Next.
type Stepper struct {
	System *System
	Step   time.Duration
	// Elapsed is the offset the next call to Next will evaluate.
	Elapsed time.Duration
}

// Next returns the state at the current offset and advances by one step.
func (st *Stepper) Next() State {
	state := st.System.StateAt(st.Elapsed)
	st.Elapsed += st.Step
	return state
}
