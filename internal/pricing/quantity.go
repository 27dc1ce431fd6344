package pricing

import (
	"strconv"
	"strings"
)

const (
	// MinQuantity is the smallest quantity that can be priced.
	MinQuantity = 25

	// DefaultQuantity is the quantity a fresh configuration starts with.
	DefaultQuantity = 100
)

// PresetQuantities are the popular quantities offered as one-click choices,
// in ascending order.
var PresetQuantities = []int{25, 50, 100, 250, 500, 1000, 2000, 5000}

// QuantityField tracks the authoritative print quantity alongside the raw
// text the user typed. Free-form input below the minimum is tolerated as a
// provisional display value but never reaches the authoritative quantity,
// so pricing always sees a value >= MinQuantity.
type QuantityField struct {
	value int
	raw   string
}

// NewQuantityField returns a field holding the default quantity.
func NewQuantityField() QuantityField {
	return QuantityField{
		value: DefaultQuantity,
		raw:   strconv.Itoa(DefaultQuantity),
	}
}

// Value returns the authoritative quantity used for pricing.
func (f *QuantityField) Value() int {
	return f.value
}

// Raw returns the raw text as last typed, which may be provisional.
func (f *QuantityField) Raw() string {
	return f.raw
}

// SetRaw records typed input. The authoritative value only updates when the
// input parses to an integer >= MinQuantity.
func (f *QuantityField) SetRaw(raw string) {
	f.raw = raw
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return
	}
	if n >= MinQuantity {
		f.value = n
	}
}

// Finalize settles a provisional value on loss of focus. Text that does not
// parse at all leaves the last valid quantity in place; a parsed value below
// the minimum is forced to exactly MinQuantity.
func (f *QuantityField) Finalize() {
	n, err := strconv.Atoi(strings.TrimSpace(f.raw))
	if err != nil {
		f.raw = strconv.Itoa(f.value)
		return
	}
	if n < MinQuantity {
		f.value = MinQuantity
		f.raw = strconv.Itoa(MinQuantity)
		return
	}
	f.raw = strconv.Itoa(f.value)
}

// Increment raises the quantity by one. Always legal.
func (f *QuantityField) Increment() {
	f.value++
	f.raw = strconv.Itoa(f.value)
}

// Decrement lowers the quantity by one, a no-op at the minimum.
func (f *QuantityField) Decrement() {
	if f.value <= MinQuantity {
		return
	}
	f.value--
	f.raw = strconv.Itoa(f.value)
}

// SetPreset sets the quantity to a preset choice, bypassing text parsing.
func (f *QuantityField) SetPreset(q int) {
	f.value = q
	f.raw = strconv.Itoa(q)
}
