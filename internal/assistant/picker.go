package assistant

import "math/rand/v2"

// Picker chooses an index in [0, n). Implementations must return a value in
// range for any n > 0.
type Picker interface {
	Pick(n int) int
}

// PickerFunc adapts a plain function to the Picker interface.
type PickerFunc func(n int) int

// Pick calls f(n).
func (f PickerFunc) Pick(n int) int {
	return f(n)
}

// randomPicker picks uniformly using the process-wide generator.
type randomPicker struct{}

func (randomPicker) Pick(n int) int {
	return rand.IntN(n)
}
