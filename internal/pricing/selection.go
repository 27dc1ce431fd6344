package pricing

import (
	"github.com/KriraAI/Print24-frontend/internal/catalog"
)

// Selection holds the current configuration of a print job. It is owned by a
// single configuration session; every mutation is followed by a synchronous
// price recomputation in the caller.
type Selection struct {
	Finish   Finish
	Shape    Shape
	Quantity QuantityField
	Pincode  string

	optionIDs map[string]struct{}
}

// NewSelection seeds the default configuration for a freshly loaded product:
// Glossy finish, Standard shape, the default quantity, and the product's
// first option pre-selected when it has any.
func NewSelection(p *catalog.Product) *Selection {
	s := &Selection{
		Finish:    FinishGlossy,
		Shape:     ShapeStandard,
		Quantity:  NewQuantityField(),
		optionIDs: make(map[string]struct{}),
	}
	if id := p.FirstOptionID(); id != "" {
		s.optionIDs[id] = struct{}{}
	}
	return s
}

// SetFinish selects a finish.
func (s *Selection) SetFinish(f Finish) {
	s.Finish = f
}

// SetShape selects a shape.
func (s *Selection) SetShape(sh Shape) {
	s.Shape = sh
}

// SetPincode records the delivery pincode text.
func (s *Selection) SetPincode(pincode string) {
	s.Pincode = pincode
}

// ToggleOption adds the option id to the selection if absent, or removes it
// if present. Toggling the same id twice restores the original selection.
func (s *Selection) ToggleOption(id string) {
	if s.optionIDs == nil {
		s.optionIDs = make(map[string]struct{})
	}
	if _, ok := s.optionIDs[id]; ok {
		delete(s.optionIDs, id)
		return
	}
	s.optionIDs[id] = struct{}{}
}

// HasOption reports whether the option id is selected.
func (s *Selection) HasOption(id string) bool {
	_, ok := s.optionIDs[id]
	return ok
}

// SelectedOptionCount returns the number of selected options.
func (s *Selection) SelectedOptionCount() int {
	return len(s.optionIDs)
}
