// Package convert implements the unit conversion arithmetic.
package convert

import (
	"fmt"
	"math"

	"github.com/hammamikhairi/sailconv/internal/catalog"
	"github.com/hammamikhairi/sailconv/internal/domain"
)

// Limit is the first value that no longer fits the six-digit display.
const Limit = 1_000_000

// Raw converts v from one unit to another without rounding or range checks.
func Raw(from, to domain.Unit, v uint32) float64 {
	var base float64
	switch from.Rule {
	case domain.RulePowerLaw:
		base = from.Law.ToBase(float64(v))
	default:
		base = float64(v)*from.Factor + 100*float64(from.Offset)
	}

	switch to.Rule {
	case domain.RulePowerLaw:
		return to.Law.FromBase(base)
	default:
		return (base - 100*float64(to.Offset)) / to.Factor
	}
}

// Convert converts v and rounds to the nearest integer. Results below zero
// or at least Limit return ErrOutOfRange.
func Convert(from, to domain.Unit, v uint32) (uint32, error) {
	out := Raw(from, to, v)
	if math.IsNaN(out) || out >= Limit || out < 0 {
		return 0, fmt.Errorf("%s %d -> %s = %g: %w", from.Label, v, to.Label, out, domain.ErrOutOfRange)
	}
	return uint32(out + 0.5), nil
}

// Between converts v between two units of the same category of a catalog.
func Between(cat *catalog.Catalog, category, from, to int, v uint32) (uint32, error) {
	return Convert(cat.Unit(category, from), cat.Unit(category, to), v)
}
