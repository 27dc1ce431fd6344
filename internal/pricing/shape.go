package pricing

// Shape is the physical cut of a printed product. Each shape carries a fixed
// price multiplier.
type Shape string

const (
	ShapeStandard Shape = "Standard"
	ShapeSquare   Shape = "Square"
	ShapeRound    Shape = "Round"
	ShapeCustom   Shape = "Custom"
)

// Shapes lists every shape in display order.
var Shapes = []Shape{
	ShapeStandard,
	ShapeSquare,
	ShapeRound,
	ShapeCustom,
}

var shapeMultipliers = map[Shape]float64{
	ShapeStandard: 1.0,
	ShapeSquare:   1.1,
	ShapeRound:    1.2,
	ShapeCustom:   1.4,
}

var shapeLabels = map[Shape]string{
	ShapeStandard: `Standard (3.5" x 2")`,
	ShapeSquare:   `Square (2.5" x 2.5")`,
	ShapeRound:    "Round",
	ShapeCustom:   "Custom Shape",
}

// Multiplier returns the price multiplier for the shape. Unknown shapes fall
// back to 1.0 so pricing stays total.
func (s Shape) Multiplier() float64 {
	if m, ok := shapeMultipliers[s]; ok {
		return m
	}
	return 1.0
}

// Label returns the display label for the shape, including dimensions where
// they apply.
func (s Shape) Label() string {
	if l, ok := shapeLabels[s]; ok {
		return l
	}
	return string(s)
}
