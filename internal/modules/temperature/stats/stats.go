package stats

import (
	"cmp"
	"errors"
	"math"
	"slices"

	"tempmanager/internal/modules/temperature/types"
)

var ErrEmptyDataset = errors.New("no readings recorded")

// Analyze computes count, average, minimum and maximum in a single pass.
// Values keep full precision; rounding is left to the views.
func Analyze(readings []types.Reading) (types.Summary, error) {
	if len(readings) == 0 {
		return types.Summary{}, ErrEmptyDataset
	}

	first := float64(readings[0])
	s := types.Summary{Count: len(readings), Min: first, Max: first}
	var sum float64
	for _, r := range readings {
		v := float64(r)
		sum += v
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
	}
	s.Average = sum / float64(len(readings))
	if math.IsInf(s.Average, 0) {
		s.Average = runningMean(readings)
	}
	return s, nil
}

// runningMean averages without a running total, so finite readings near
// math.MaxFloat64 cannot overflow. Each step adds v/n - avg/n, which stays
// within the float64 range for any finite v and avg.
func runningMean(readings []types.Reading) float64 {
	var avg float64
	for i, r := range readings {
		n := float64(i + 1)
		avg += float64(r)/n - avg/n
	}
	return avg
}

// SortedView returns a sorted copy of readings; the input is left untouched.
func SortedView(readings []types.Reading, order types.Order) []types.Reading {
	out := slices.Clone(readings)
	if order == types.Descending {
		slices.SortFunc(out, func(a, b types.Reading) int { return cmp.Compare(b, a) })
		return out
	}
	slices.Sort(out)
	return out
}
