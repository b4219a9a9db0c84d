// Package domain defines the core types and ports of the conversion face.
// Other packages depend on domain; domain depends only on the digit editor.
package domain

import "math"

// Category indexes a measurement domain in the catalog.
const (
	CategorySpeed = iota
	CategoryDistance
)

// Rule selects how a unit relates to its category's base unit.
type Rule int

const (
	// RuleLinear converts with base = v*Factor + 100*Offset.
	RuleLinear Rule = iota
	// RulePowerLaw converts with base = Scale * v^Exponent.
	RulePowerLaw
)

// String returns a human-readable rule name.
func (r Rule) String() string {
	switch r {
	case RuleLinear:
		return "linear"
	case RulePowerLaw:
		return "power-law"
	default:
		return "unknown"
	}
}

// PowerLaw holds the constants of a non-linear unit.
//
//	base   = Scale * v^Exponent
//	output = InverseScale * (base*InverseGain)^(1/Exponent)
//
// The two directions are separate empirical fits, so they are not exact
// inverses of each other.
type PowerLaw struct {
	Scale        float64
	Exponent     float64
	InverseScale float64
	InverseGain  float64
}

// ToBase converts a value in this unit to the category base unit.
func (p PowerLaw) ToBase(v float64) float64 {
	return p.Scale * math.Pow(v, p.Exponent)
}

// FromBase converts a base-unit quantity to this unit.
func (p PowerLaw) FromBase(base float64) float64 {
	return p.InverseScale * math.Pow(base*p.InverseGain, 1/p.Exponent)
}

// Unit is an immutable entry of a category's unit list.
type Unit struct {
	Name   string  // LCD text, at most 6 cells
	Label  string  // short key used on the command line
	Factor float64 // one unit expressed in base units
	Offset int16   // added in hundreds of base units
	Rule   Rule
	Law    PowerLaw // only for RulePowerLaw
	Digits int      // input width when used as source, 0 for the default
}

// InputWidth returns how many digits are entered for a value in this unit.
func (u Unit) InputWidth() int {
	if u.Digits <= 0 {
		return 4
	}
	return u.Digits
}
