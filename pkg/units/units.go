// Package units provides value types for the physical magnitudes used by
// the globe packages. Each type wraps a float64 in a fixed base unit and
// exposes unit-named constructors and accessors, so callers never pass a
// bare number in the wrong scale.
package units

import "math"

// Distance is a length, stored in kilometers. In YAML it reads and writes
// as a plain number of kilometers.
type Distance float64

// AstronomicalUnit is the mean Earth-Sun distance.
const AstronomicalUnit Distance = 1.495978707e8

// EarthRadius is the mean radius of Earth.
const EarthRadius Distance = 6371

// Kilometers returns a distance of km kilometers.
func Kilometers(km float64) Distance { return Distance(km) }

// Meters returns a distance of m meters.
func Meters(m float64) Distance { return Distance(m / 1000) }

// Kilometers returns the distance in kilometers.
func (d Distance) Kilometers() float64 { return float64(d) }

// Meters returns the distance in meters.
func (d Distance) Meters() float64 { return float64(d) * 1000 }

// Mass is an amount of matter, stored in kilograms. In YAML it reads and
// writes as a plain number of kilograms.
type Mass float64

// SolarMass is the mass of the Sun.
const SolarMass Mass = 1.98892e30

// Kilograms returns a mass of kg kilograms.
func Kilograms(kg float64) Mass { return Mass(kg) }

// Kilograms returns the mass in kilograms.
func (m Mass) Kilograms() float64 { return float64(m) }

// Velocity is a speed, stored in meters per second.
type Velocity float64

// MetersPerSecond returns a velocity of ms meters per second.
func MetersPerSecond(ms float64) Velocity { return Velocity(ms) }

// MetersPerSecond returns the velocity in meters per second.
func (v Velocity) MetersPerSecond() float64 { return float64(v) }

// KilometersPerSecond returns the velocity in kilometers per second.
func (v Velocity) KilometersPerSecond() float64 { return float64(v) / 1000 }

// Frequency is a number of cycles per unit of time, stored in hertz.
type Frequency float64

// Hertz returns a frequency of hz cycles per second.
func Hertz(hz float64) Frequency { return Frequency(hz) }

// Hertz returns the frequency in cycles per second.
func (f Frequency) Hertz() float64 { return float64(f) }

// PeriodSeconds returns the duration of one cycle in seconds, or +Inf for a
// zero frequency.
func (f Frequency) PeriodSeconds() float64 {
	if f == 0 {
		return math.Inf(1)
	}
	return 1 / float64(f)
}
