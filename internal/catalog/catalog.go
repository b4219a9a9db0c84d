// Package catalog holds the static unit tables of the conversion face.
package catalog

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/sailconv/internal/domain"
)

// Measure is a category and its ordered unit list.
type Measure struct {
	Name  string
	Units []domain.Unit
}

// Catalog is a read-only list of measures.
type Catalog struct {
	measures []Measure
}

// beaufort is the wind-force scale expressed against m/s.
var beaufort = domain.PowerLaw{
	Scale:        0.0836,
	Exponent:     1.5,
	InverseScale: 1.12684,
	InverseGain:  10,
}

var speeds = []domain.Unit{
	{Name: "  m/s", Label: "m/s", Factor: 1.0},
	{Name: " km/h", Label: "km/h", Factor: 1000. / 3600.},
	{Name: "   kn", Label: "kn", Factor: 1852. / 3600.},
	{Name: "  bft", Label: "bft", Factor: 1.0, Rule: domain.RulePowerLaw, Law: beaufort, Digits: 2},
}

var distances = []domain.Unit{
	{Name: "   km", Label: "km", Factor: 1.0},
	{Name: "   nm", Label: "nm", Factor: 1.852},
}

var sailing = New(
	Measure{Name: "speed", Units: speeds},
	Measure{Name: "dist", Units: distances},
)

// Default returns the speed and distance tables.
func Default() *Catalog { return sailing }

// New builds a catalog. Every measure needs at least two units.
func New(measures ...Measure) *Catalog {
	for _, m := range measures {
		if len(m.Units) < 2 {
			panic(fmt.Sprintf("catalog: measure %q has %d units, need at least 2", m.Name, len(m.Units)))
		}
	}
	return &Catalog{measures: measures}
}

// Count returns the number of categories.
func (c *Catalog) Count() int { return len(c.measures) }

// CategoryName returns the display name of a category.
func (c *Catalog) CategoryName(category int) string {
	return c.measure(category).Name
}

// UnitCount returns the number of units in a category.
func (c *Catalog) UnitCount(category int) int {
	return len(c.measure(category).Units)
}

// Unit returns a unit by category and index. Indices are kept in range by
// the state machine, so an out of range index is a programming error.
func (c *Catalog) Unit(category, index int) domain.Unit {
	units := c.measure(category).Units
	if index < 0 || index >= len(units) {
		panic(fmt.Sprintf("catalog: unit index %d out of range for %q", index, c.measures[category].Name))
	}
	return units[index]
}

// Measures returns a copy of the measure list.
func (c *Catalog) Measures() []Measure {
	out := make([]Measure, len(c.measures))
	copy(out, c.measures)
	return out
}

// FindCategory resolves a category by name, case-insensitively.
func (c *Catalog) FindCategory(name string) (int, error) {
	name = strings.TrimSpace(name)
	for i, m := range c.measures {
		if strings.EqualFold(m.Name, name) {
			return i, nil
		}
	}
	// Accept the long form of the distance table name.
	if strings.EqualFold(name, "distance") {
		for i, m := range c.measures {
			if m.Name == "dist" {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%q: %w", name, domain.ErrUnknownCategory)
}

// FindUnit resolves a unit label within a category, case-insensitively.
func (c *Catalog) FindUnit(category int, label string) (int, error) {
	label = strings.TrimSpace(label)
	for i, u := range c.measure(category).Units {
		if strings.EqualFold(u.Label, label) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q in %s: %w", label, c.measures[category].Name, domain.ErrUnknownUnit)
}

func (c *Catalog) measure(category int) Measure {
	if category < 0 || category >= len(c.measures) {
		panic(fmt.Sprintf("catalog: category %d out of range", category))
	}
	return c.measures[category]
}
