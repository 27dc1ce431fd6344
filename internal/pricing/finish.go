// Package pricing implements the print job configuration and pricing rules.
package pricing

// Finish is a surface treatment applied to a printed product. Each finish
// carries a fixed price multiplier.
type Finish string

const (
	FinishGlossy     Finish = "Glossy"
	FinishMatte      Finish = "Matte"
	FinishVelvet     Finish = "Velvet"
	FinishFoilGold   Finish = "Foil Gold"
	FinishFoilSilver Finish = "Foil Silver"
	FinishSpotUV     Finish = "Spot UV"
	FinishPlastic    Finish = "Plastic"
	FinishKraft      Finish = "Kraft"
)

// Finishes lists every finish in display order.
var Finishes = []Finish{
	FinishGlossy,
	FinishMatte,
	FinishVelvet,
	FinishFoilGold,
	FinishFoilSilver,
	FinishSpotUV,
	FinishPlastic,
	FinishKraft,
}

var finishMultipliers = map[Finish]float64{
	FinishGlossy:     1.0,
	FinishMatte:      1.1,
	FinishVelvet:     1.3,
	FinishFoilGold:   1.5,
	FinishFoilSilver: 1.5,
	FinishSpotUV:     1.4,
	FinishPlastic:    2.0,
	FinishKraft:      1.2,
}

// Multiplier returns the price multiplier for the finish. Unknown finishes
// fall back to 1.0 so pricing stays total.
func (f Finish) Multiplier() float64 {
	if m, ok := finishMultipliers[f]; ok {
		return m
	}
	return 1.0
}
