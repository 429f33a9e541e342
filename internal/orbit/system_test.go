package orbit

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/globe/pkg/geo"
	"github.com/Faultbox/globe/pkg/units"
)

func earthMoon() System {
	return System{
		Primary: Body{
			Name:   "earth",
			Radius: units.EarthRadius,
			Mass:   units.Kilograms(5.972e24),
			Spin:   units.Period(24 * time.Hour),
		},
		Secondary: []System{{
			Primary: Body{
				Name:   "moon",
				Radius: units.Kilometers(1737.4),
				Mass:   units.Kilograms(7.342e22),
			},
			Orbit: units.Kilometers(384400),
		}},
	}
}

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestStateAtEpoch(t *testing.T) {
	state := earthMoon().StateAt(0)

	if state.Body != "earth" || state.Position != (geo.Cartesian{}) || state.Rotation != 0 {
		t.Errorf("unexpected root state: %+v", state)
	}
	if len(state.Secondary) != 1 {
		t.Fatalf("got %d secondary states, want 1", len(state.Secondary))
	}

	moon := state.Secondary[0]
	if moon.Theta != 0 {
		t.Errorf("moon theta at epoch = %v, want 0", moon.Theta)
	}
	if want := geo.UnitX.Scale(384400); moon.Position != want {
		t.Errorf("moon position at epoch = %v, want %v", moon.Position, want)
	}

	// Circular orbital velocity: sqrt(GM/r), roughly 1 km/s for the Moon.
	v := moon.Velocity.MetersPerSecond()
	if v < 1000 || v > 1040 {
		t.Errorf("moon orbital velocity = %v m/s, want ~1018", v)
	}
}

func TestStateAtQuarterOrbit(t *testing.T) {
	system := earthMoon()
	moon := system.Secondary[0]

	period := moon.Frequency(system.Primary).PeriodSeconds()
	quarter := time.Duration(period / 4 * float64(time.Second))

	state := system.StateAt(quarter).Secondary[0]
	if !approx(state.Theta, 90, 1e-6) {
		t.Errorf("theta after a quarter orbit = %v, want 90", state.Theta)
	}

	want := geo.UnitY.Scale(384400)
	if !approx(state.Position.X(), want.X(), 1e-3) ||
		!approx(state.Position.Y(), want.Y(), 1e-3) ||
		state.Position.Z() != 0 {
		t.Errorf("position after a quarter orbit = %v, want %v", state.Position, want)
	}
}

func TestSpinRotation(t *testing.T) {
	system := earthMoon()

	tests := []struct {
		elapsed time.Duration
		want    float64
	}{
		{0, 0},
		{6 * time.Hour, 90},
		{12 * time.Hour, 180},
		{18 * time.Hour, -90}, // folded into (-180, 180]
		{24 * time.Hour, 0},
		{30 * time.Hour, 90},
	}

	for _, test := range tests {
		if got := system.StateAt(test.elapsed).Rotation; got != test.want {
			t.Errorf("rotation after %v = %v, want %v", test.elapsed, got, test.want)
		}
	}

	// A body without spin never rotates.
	if got := system.StateAt(6 * time.Hour).Secondary[0].Rotation; got != 0 {
		t.Errorf("moon rotation = %v, want 0", got)
	}
}

func TestNestedSystems(t *testing.T) {
	system := earthMoon()
	system.Secondary[0].Secondary = []System{{
		Primary: Body{Name: "probe", Radius: units.Kilometers(0.01), Mass: units.Kilograms(1000)},
		Orbit:   units.Kilometers(2000),
	}}

	state := system.StateAt(0)
	probe := state.Secondary[0].Secondary[0]

	// At the epoch everything lines up on the x axis of its parent.
	if want := geo.UnitX.Scale(384400 + 2000); probe.Position != want {
		t.Errorf("probe position = %v, want %v", probe.Position, want)
	}
}

func TestGroundTrack(t *testing.T) {
	system := earthMoon()

	state := system.StateAt(0)
	track, err := GroundTrack(system.Primary, state, state.Secondary[0])
	if err != nil {
		t.Fatal(err)
	}

	if track.Lat() != 0 || track.Lon() != 0 {
		t.Errorf("ground track at epoch = %v, want (0°, 0°)", track)
	}
	if want := 384400 - 6371.0; track.Alt() != want {
		t.Errorf("ground track altitude = %v, want %v", track.Alt(), want)
	}
}

// A spinning parent drags the ground track westward: a body fixed over the
// reference meridian appears at negative longitude once the parent has
// rotated by a quarter turn.
func TestGroundTrackCompensatesSpin(t *testing.T) {
	system := earthMoon()

	parentState := State{Body: "earth", Rotation: 90}
	moonState := State{Body: "moon", Position: geo.UnitX.Scale(384400)}

	track, err := GroundTrack(system.Primary, parentState, moonState)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(track.Lon(), -90, 1e-9) || track.Lat() != 0 {
		t.Errorf("ground track under a rotated parent = %v, want lon -90", track)
	}
}

func TestTrail(t *testing.T) {
	system := earthMoon()
	state := system.StateAt(0)

	trail := Trail(state, state.Secondary[0], 4)
	if len(trail) != 5 {
		t.Fatalf("trail has %d points, want 5", len(trail))
	}

	// A full circle comes back to the starting position.
	last := trail[len(trail)-1]
	if !approx(last.X(), 384400, 1e-6) || !approx(last.Y(), 0, 1e-6) {
		t.Errorf("trail end = %v, want the starting position", last)
	}
}

func TestStepper(t *testing.T) {
	system := earthMoon()
	stepper := &Stepper{System: &system, Step: 6 * time.Hour}

	first := stepper.Next()
	second := stepper.Next()

	if first.Rotation != 0 || second.Rotation != 90 {
		t.Errorf("stepper rotations = (%v, %v), want (0, 90)", first.Rotation, second.Rotation)
	}
	if stepper.Elapsed != 12*time.Hour {
		t.Errorf("elapsed after two steps = %v, want 12h", stepper.Elapsed)
	}
}

func TestSystemRadius(t *testing.T) {
	system := earthMoon()

	want := units.Kilometers(384400 + 1737.4 + 6371)
	if got := system.Radius(); got != want {
		t.Errorf("Radius = %v, want %v", got, want)
	}
}

func TestLoadSystem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "system.yaml")
	definition := `
primary:
  name: earth
  radius: 6371
  mass: 5.972e+24
  spin: "24h"
secondary:
  - primary:
      name: moon
      radius: 1737.4
      mass: 7.342e+22
    orbit: 384400
`
	if err := os.WriteFile(path, []byte(definition), 0644); err != nil {
		t.Fatal(err)
	}

	system, err := LoadSystem(path)
	if err != nil {
		t.Fatal(err)
	}

	if system.Primary.Name != "earth" || system.Primary.Spin.Duration() != 24*time.Hour {
		t.Errorf("unexpected primary: %+v", system.Primary)
	}
	if len(system.Secondary) != 1 {
		t.Fatalf("got %d secondary systems, want 1", len(system.Secondary))
	}
	moon := system.Secondary[0]
	if moon.Primary.Name != "moon" || moon.Orbit != units.Kilometers(384400) {
		t.Errorf("unexpected secondary: %+v", moon)
	}
}

func TestLoadSystemMissing(t *testing.T) {
	if _, err := LoadSystem(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*System)
	}{
		{"unnamed body", func(s *System) { s.Primary.Name = "" }},
		{"zero radius", func(s *System) { s.Primary.Radius = 0 }},
		{"negative mass", func(s *System) { s.Primary.Mass = -1 }},
		{"negative spin", func(s *System) { s.Primary.Spin = -1 }},
		{"secondary without orbit", func(s *System) { s.Secondary[0].Orbit = 0 }},
	}

	for _, test := range tests {
		system := earthMoon()
		test.mutate(&system)
		if err := system.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", test.name)
		}
	}

	if err := earthMoon().Validate(); err != nil {
		t.Errorf("valid system rejected: %v", err)
	}
}
