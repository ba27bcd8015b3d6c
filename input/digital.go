package input

import "math"

// Digitalize reduces an analog axis value to -1, 0 or +1. Magnitudes below
// the deadzone resolve to 0; the boundary itself is inclusive, so a value
// exactly at the deadzone is still considered unpushed.
func Digitalize(value, deadzone float64) int {
	if math.Abs(value) <= deadzone {
		return 0
	}
	if value < 0 {
		return -1
	}
	return 1
}
