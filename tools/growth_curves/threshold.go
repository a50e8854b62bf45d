package growth_curves

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// NotReached marks a curve with no time step at or above its threshold.
// With positive values this cannot happen since the maximum always qualifies.
const NotReached = -1

// Find80PercentTime is FindThresholdTimes at 80% of each curve's maximum
func Find80PercentTime(ds Dataset) map[int]int {
	return FindThresholdTimes(ds, 0.8)
}

// FindThresholdTimes returns, per curve id, the first time step whose value
// is >= fraction * that curve's own maximum.
func FindThresholdTimes(ds Dataset, fraction float64) map[int]int {
	out := make(map[int]int)
	ids, groups := ds.groups()
	for _, id := range ids {
		rows := groups[id]
		threshold := fraction * floats.Max(values(rows))

		out[id] = NotReached
		for _, r := range rows {
			if r.Value >= threshold {
				out[id] = r.Time
				break
			}
		}
	}
	return out
}

// Summary describes the spread of threshold times across a batch
type Summary struct {
	Curves  int
	Reached int
	Mean    float64
	StdDev  float64
	Min     int
	Max     int
}

func Summarize(times map[int]int) Summary {
	s := Summary{Curves: len(times)}
	var reached []float64
	for _, t := range times {
		if t != NotReached {
			reached = append(reached, float64(t))
		}
	}
	s.Reached = len(reached)
	if s.Reached == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(reached, nil)
	if s.Reached < 2 || math.IsNaN(s.StdDev) {
		s.StdDev = 0
	}
	s.Min = int(floats.Min(reached))
	s.Max = int(floats.Max(reached))
	return s
}
