package axis

import (
	"testing"

	"github.com/teleivo/assertive/assert"
)

func TestTicksRespectsMaxBudget(t *testing.T) {
	tests := map[string]struct {
		lo, hi   float64
		maxTicks int
	}{
		"SmallRange":     {lo: 0, hi: 10, maxTicks: 6},
		"LargeRange":     {lo: 0, hi: 987654, maxTicks: 8},
		"NegativeRange":  {lo: -50, hi: 50, maxTicks: 5},
		"FractionalSpan": {lo: 0, hi: 1, maxTicks: 4},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got := Ticks(test.lo, test.hi, test.maxTicks)

			assert.Truef(t, len(got) <= test.maxTicks, "Ticks(%v,%v,%d) returned %d ticks, want <= %d", test.lo, test.hi, test.maxTicks, len(got), test.maxTicks)
			assert.Truef(t, len(got) >= 1, "Ticks(%v,%v,%d) returned no ticks", test.lo, test.hi, test.maxTicks)
		})
	}
}

func TestTicksCoverTheRange(t *testing.T) {
	got := Ticks(3, 27, 6)

	assert.Truef(t, got[0] <= 3, "first tick %v should be <= lo 3", got[0])
	assert.Truef(t, got[len(got)-1] >= 27, "last tick %v should be >= hi 27", got[len(got)-1])
}

func TestTicksDegenerateRange(t *testing.T) {
	got := Ticks(5, 5, 4)

	assert.EqualValuesf(t, []float64{5}, got, "Ticks(5,5,4)")
}
