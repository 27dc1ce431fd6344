package pricing

import (
	"math"
	"testing"

	"github.com/KriraAI/Print24-frontend/internal/catalog"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// selectionWith builds a selection without going through NewSelection, so
// tests can pin every input explicitly.
func selectionWith(finish Finish, shape Shape, quantity int, optionIDs ...string) *Selection {
	s := &Selection{
		Finish:    finish,
		Shape:     shape,
		optionIDs: make(map[string]struct{}),
	}
	s.Quantity.SetPreset(quantity)
	for _, id := range optionIDs {
		s.optionIDs[id] = struct{}{}
	}
	return s
}

func TestComputeTotalBaseCase(t *testing.T) {
	p := &catalog.Product{ID: "p1", Name: "Classic Card", BasePrice: 0.10}

	// 0.10 * 1000 * 1.0 * 1.0 * 0.8 = 80.00
	sel := selectionWith(FinishGlossy, ShapeStandard, 1000)
	if got := ComputeTotal(p, sel); !almostEqual(got, 80.00) {
		t.Errorf("expected total 80.00, got %f", got)
	}
}

func TestComputeTotalWithMultipliers(t *testing.T) {
	p := &catalog.Product{ID: "p1", Name: "Classic Card", BasePrice: 0.10}

	// 0.10 * 100 * 1.5 * 1.2 * 1.0 = 18.00
	sel := selectionWith(FinishFoilGold, ShapeRound, 100)
	if got := ComputeTotal(p, sel); !almostEqual(got, 18.00) {
		t.Errorf("expected total 18.00, got %f", got)
	}
}

func TestComputeTotalWithOptions(t *testing.T) {
	p := &catalog.Product{
		ID:        "p1",
		Name:      "Classic Card",
		BasePrice: 0.10,
		Options: []catalog.ProductOption{
			{ID: "opt1", Name: "Rounded Corners", PriceAdd: 0.05},
			{ID: "opt2", Name: "Double Sided", PriceAdd: 0.08},
		},
	}

	// (0.10*500 + 0.05*500) * 0.9 = 67.50
	sel := selectionWith(FinishGlossy, ShapeStandard, 500, "opt1")
	if got := ComputeTotal(p, sel); !almostEqual(got, 67.50) {
		t.Errorf("expected total 67.50, got %f", got)
	}
}

func TestComputeTotalIgnoresUnknownOptionIDs(t *testing.T) {
	p := &catalog.Product{
		ID:        "p1",
		BasePrice: 0.10,
		Options: []catalog.ProductOption{
			{ID: "opt1", PriceAdd: 0.05},
		},
	}

	sel := selectionWith(FinishGlossy, ShapeStandard, 100, "opt1", "ghost-option")
	want := (0.10*100 + 0.05*100) * 1.0
	if got := ComputeTotal(p, sel); !almostEqual(got, want) {
		t.Errorf("expected unknown option id to contribute nothing, got %f want %f", got, want)
	}
}

func TestQuantityDiscountBoundaries(t *testing.T) {
	tests := []struct {
		quantity int
		discount float64
	}{
		{25, 1.0},
		{499, 1.0},
		{500, 0.9},
		{999, 0.9},
		{1000, 0.8},
		{4999, 0.8},
		{5000, 0.7},
		{9999, 0.7},
	}

	for _, tt := range tests {
		if got := quantityDiscount(tt.quantity); !almostEqual(got, tt.discount) {
			t.Errorf("quantityDiscount(%d) = %f, want %f", tt.quantity, got, tt.discount)
		}
	}
}

func TestComputeTotalMonotonicWithinTiers(t *testing.T) {
	p := &catalog.Product{ID: "p1", BasePrice: 0.25}
	sel := selectionWith(FinishMatte, ShapeSquare, MinQuantity)

	// Within a discount tier the total strictly grows with quantity. Across
	// tier boundaries the flat discount can dip the total; that follows from
	// the step-function discount and is covered by the boundary test.
	tiers := [][2]int{{MinQuantity, 499}, {500, 999}, {1000, 4999}, {5000, 5100}}
	for _, tier := range tiers {
		sel.Quantity.SetPreset(tier[0])
		prev := ComputeTotal(p, sel)
		for q := tier[0] + 1; q <= tier[1]; q++ {
			sel.Quantity.SetPreset(q)
			got := ComputeTotal(p, sel)
			if got <= prev {
				t.Fatalf("total did not grow from %f at quantity %d", prev, q)
			}
			prev = got
		}
	}
}

func TestComputeTotalDeterministic(t *testing.T) {
	p := &catalog.Product{
		ID:        "p1",
		BasePrice: 0.15,
		Options: []catalog.ProductOption{
			{ID: "opt1", PriceAdd: 0.02},
		},
	}
	sel := selectionWith(FinishVelvet, ShapeCustom, 750, "opt1")

	first := ComputeTotal(p, sel)
	second := ComputeTotal(p, sel)
	if first != second {
		t.Errorf("expected identical results, got %f and %f", first, second)
	}
}

func TestComputeTotalZeroQuantity(t *testing.T) {
	// Unreachable through the quantity field, but pricing stays total.
	p := &catalog.Product{ID: "p1", BasePrice: 0.10}
	sel := &Selection{Finish: FinishPlastic, Shape: ShapeRound}

	if got := ComputeTotal(p, sel); got != 0 {
		t.Errorf("expected total 0 for zero quantity, got %f", got)
	}
}

func TestComputeTotalZeroBasePrice(t *testing.T) {
	p := &catalog.Product{ID: "p1", BasePrice: 0}
	sel := selectionWith(FinishPlastic, ShapeCustom, 1000)

	if got := ComputeTotal(p, sel); got != 0 {
		t.Errorf("expected total 0 for zero base price and no options, got %f", got)
	}
}

func TestMultiplierFallbacks(t *testing.T) {
	if got := Finish("Holographic").Multiplier(); got != 1.0 {
		t.Errorf("expected unknown finish multiplier 1.0, got %f", got)
	}
	if got := Shape("Hexagon").Multiplier(); got != 1.0 {
		t.Errorf("expected unknown shape multiplier 1.0, got %f", got)
	}
}
