// Package angle provides an immutable angle value tagged with its unit
// (radians or degrees), with explicit conversions between the two.
package angle

import (
	"fmt"
	"math"
)

// Unit identifies the unit an Angle's payload is expressed in.
type Unit int

const (
	Radians Unit = iota
	Degrees
)

// String returns the conventional abbreviation for the unit.
func (u Unit) String() string {
	switch u {
	case Radians:
		return "rad"
	case Degrees:
		return "deg"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Angle is a scalar angle tagged with its unit. The zero value is 0 radians.
// Angles are immutable: all methods return new values.
type Angle struct {
	value float64
	unit  Unit
}

// FromRadians creates an angle expressed in radians.
func FromRadians(v float64) Angle {
	return Angle{value: v, unit: Radians}
}

// FromDegrees creates an angle expressed in degrees.
func FromDegrees(v float64) Angle {
	return Angle{value: v, unit: Degrees}
}

// Value returns the raw stored payload in the angle's own unit,
// without any conversion.
func (a Angle) Value() float64 {
	return a.value
}

// Unit returns the unit the payload is expressed in.
func (a Angle) Unit() Unit {
	return a.unit
}

// Radians returns the angle converted to radians.
func (a Angle) Radians() float64 {
	if a.unit == Degrees {
		return a.value * math.Pi / 180.0
	}
	return a.value
}

// Degrees returns the angle converted to degrees.
func (a Angle) Degrees() float64 {
	if a.unit == Radians {
		return a.value * 180.0 / math.Pi
	}
	return a.value
}

// ToRadians returns the same angle re-expressed in radians.
func (a Angle) ToRadians() Angle {
	return FromRadians(a.Radians())
}

// ToDegrees returns the same angle re-expressed in degrees.
func (a Angle) ToDegrees() Angle {
	return FromDegrees(a.Degrees())
}

// Tan returns the tangent of the angle.
func (a Angle) Tan() float64 {
	return math.Tan(a.Radians())
}

// String formats the angle with its unit, e.g. "0.5236 rad" or "30 deg".
func (a Angle) String() string {
	return fmt.Sprintf("%g %s", a.value, a.unit)
}
