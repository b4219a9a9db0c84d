package convert

import (
	"errors"
	"math"
	"testing"

	"github.com/hammamikhairi/sailconv/internal/catalog"
	"github.com/hammamikhairi/sailconv/internal/domain"
)

func TestScenarios(t *testing.T) {
	cat := catalog.Default()

	tests := []struct {
		name     string
		category int
		from, to int
		input    uint32
		want     uint32
	}{
		{"m/s to km/h", domain.CategorySpeed, 0, 1, 36, 130},
		{"bft to m/s", domain.CategorySpeed, 3, 0, 10, 3},
		{"m/s to bft", domain.CategorySpeed, 0, 3, 3, 11},
		{"kn to km/h", domain.CategorySpeed, 2, 1, 100, 185},
		{"km/h to kn", domain.CategorySpeed, 1, 2, 100, 54},
		{"nm to km", domain.CategoryDistance, 1, 0, 10, 19},
		{"km to nm", domain.CategoryDistance, 0, 1, 100, 54},
		{"zero stays zero", domain.CategorySpeed, 0, 2, 0, 0},
		{"largest input", domain.CategoryDistance, 1, 0, 9999, 18518},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Between(cat, tt.category, tt.from, tt.to, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRawBeaufort(t *testing.T) {
	cat := catalog.Default()
	bft := cat.Unit(domain.CategorySpeed, 3)
	ms := cat.Unit(domain.CategorySpeed, 0)

	got := Raw(bft, ms, 10)
	if math.Abs(got-0.0836*math.Pow(10, 1.5)) > 1e-9 {
		t.Fatalf("raw bft->m/s = %f", got)
	}
}

func TestOutOfRange(t *testing.T) {
	base := domain.Unit{Label: "base", Factor: 1}

	tests := []struct {
		name string
		from domain.Unit
		to   domain.Unit
		v    uint32
	}{
		{"negative", base, domain.Unit{Label: "neg", Factor: 1, Offset: 1}, 50},
		{"too large", base, domain.Unit{Label: "tiny", Factor: 0.001}, 2000},
		{"exactly at limit", domain.Unit{Label: "big", Factor: 100}, base, 9999 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Convert(tt.from, tt.to, tt.v)
			if !errors.Is(err, domain.ErrOutOfRange) {
				t.Fatalf("expected ErrOutOfRange, got %v", err)
			}
		})
	}

	// Just below the limit still converts.
	got, err := Convert(domain.Unit{Label: "big", Factor: 100}, base, 9999)
	if err != nil || got != 999900 {
		t.Fatalf("got %d, %v", got, err)
	}
}

func TestLinearOffset(t *testing.T) {
	// Offsets are expressed in hundreds of base units.
	from := domain.Unit{Label: "a", Factor: 1, Offset: 2}
	to := domain.Unit{Label: "b", Factor: 2}
	got, err := Convert(from, to, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 105 {
		t.Fatalf("got %d, want 105", got)
	}
}

// A value converted there and back lands within the rounding step of the
// coarser unit. For pairs where the target is at least as fine as the
// source that step is one.
func TestLinearRoundTrip(t *testing.T) {
	cat := catalog.Default()

	for c := 0; c < cat.Count(); c++ {
		n := cat.UnitCount(c)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				from, to := cat.Unit(c, i), cat.Unit(c, j)
				if i == j || from.Rule != domain.RuleLinear || to.Rule != domain.RuleLinear {
					continue
				}
				tol := math.Max(1, 0.5*to.Factor/from.Factor+0.5)

				for v := uint32(0); v <= 9999; v += 7 {
					there, err := Convert(from, to, v)
					if err != nil {
						t.Fatalf("%s->%s %d: %v", from.Label, to.Label, v, err)
					}
					back, err := Convert(to, from, there)
					if err != nil {
						t.Fatalf("%s->%s %d: %v", to.Label, from.Label, there, err)
					}
					if diff := math.Abs(float64(back) - float64(v)); diff > tol {
						t.Fatalf("%s->%s->%s: %d came back as %d (tol %.2f)",
							from.Label, to.Label, from.Label, v, back, tol)
					}
					if to.Factor <= from.Factor {
						if diff := math.Abs(float64(back) - float64(v)); diff > 1 {
							t.Fatalf("fine target %s->%s: %d came back as %d", from.Label, to.Label, v, back)
						}
					}
				}
			}
		}
	}
}
