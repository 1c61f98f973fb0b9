// Package axis generates "nice" numeric axis ticks. The gantt, xychart, quadrant, and timeline
// drivers compute their own tick positions and do not call it. It wraps go-moremath/scale's
// level-search optimizer: a "level" here indexes a 1-2-5 step sequence (..., 1, 2, 5, 10, 20, 50,
// 100, ...), and FindLevel picks the lowest (finest) level whose tick count still fits the
// caller's budget.
package axis

import (
	"math"

	"github.com/aclements/go-moremath/scale"
)

// Ticks returns up to maxTicks "nice" tick values spanning [lo, hi], inclusive of both ends where
// a step boundary lands on them. If lo == hi, a single tick at lo is returned.
func Ticks(lo, hi float64, maxTicks int) []float64 {
	if maxTicks < 1 {
		maxTicks = 1
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}

	opts := scale.TickOptions{Max: maxTicks}
	level, ok := opts.FindLevel(
		func(level int) int { return len(ticksAtLevel(lo, hi, level)) },
		func(level int) []float64 { return ticksAtLevel(lo, hi, level) },
		0,
	)
	if !ok {
		// Degenerate request (e.g. maxTicks so small no level satisfies it): fall back to the
		// two endpoints, which is always representable.
		return []float64{lo, hi}
	}
	return ticksAtLevel(lo, hi, level)
}

// step21(level) maps an integer level to a step size following the classic 1-2-5 sequence, with
// level 0 at step 1. Increasing level increases the step (fewer, more widely spaced ticks);
// decreasing level decreases it. This satisfies FindLevel's requirement that count(level) be
// weakly monotonically decreasing in level.
func step21(level int) float64 {
	// Every 3 levels multiplies/divides the step by 10; within a group of 3 the multipliers are
	// 1, 2, 5.
	mult := [3]float64{1, 2, 5}
	k := level
	idx := ((k % 3) + 3) % 3
	pow := (k - idx) / 3
	return mult[idx] * math.Pow(10, float64(pow))
}

func ticksAtLevel(lo, hi float64, level int) []float64 {
	step := step21(level)
	if step <= 0 {
		return nil
	}
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step

	var out []float64
	// Guard against pathological float accumulation producing far more ticks than the axis
	// actually spans.
	const hardCap = 100000
	for v := start; v <= end+step/2; v += step {
		out = append(out, v)
		if len(out) > hardCap {
			break
		}
	}
	return out
}
