package systems

import (
	"math/rand"
)

// FillSlots rolls n in [1, atMost] and marks n random slots.
// Slots are drawn with replacement so duplicates can leave fewer than n slots filled
func FillSlots(rng *rand.Rand, slots, atMost int) []bool {
	if slots <= 0 {
		return nil
	}
	if atMost < 1 {
		atMost = 1
	}
	arr := make([]bool, slots)
	n := 1 + rng.Intn(atMost)
	for i := 0; i < n; i++ {
		arr[rng.Intn(slots)] = true
	}
	return arr
}
