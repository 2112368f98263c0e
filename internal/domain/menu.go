package domain

import "math/rand/v2"

// Menu is the fixed restaurant menu, in serving order.
var Menu = []string{
	"Spaghetti Bolognese",
	"Chicken Alfredo",
	"Vegetarian Pizza",
	"Grilled Salmon",
	"Caesar Salad",
}

// Picker returns an index in [0, n).
type Picker interface {
	IntN(n int) int
}

type PickerFunc func(n int) int

func (f PickerFunc) IntN(n int) int { return f(n) }

// NewPicker returns a seeded picker, or the global source when seed is 0.
func NewPicker(seed uint64) Picker {
	if seed == 0 {
		return PickerFunc(rand.IntN)
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func pickDish(p Picker) string {
	if p == nil {
		p = PickerFunc(rand.IntN)
	}
	return Menu[p.IntN(len(Menu))]
}
