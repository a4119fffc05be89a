// Package engine computes the windowed rolling-mean trading signal.
package engine

import (
	"fmt"
	"math"
)

// Result carries the derived columns and summary statistics for one run.
// RollingMean and Signal are aligned with the input series. Rows whose Valid
// flag is false have no defined rolling mean (insufficient history); their
// Signal entry is meaningless and they are excluded from SignalRate.
type Result struct {
	RollingMean   []float64
	Signal        []int
	Valid         []bool
	SignalRate    float64
	RowsProcessed int
}

// Error marks a series the engine cannot produce a signal rate for.
type Error struct{ Msg string }

func (e *Error) Error() string { return e.Msg }

// Compute derives the trailing simple moving average of the close series
// over the given window, a binary signal wherever the average is defined
// (1 when close is strictly above it, ties yield 0), and the fraction of
// defined rows whose signal is 1. No weighting, no edge padding, no
// partial-window averaging. The input slice is not modified.
func Compute(closes []float64, window int) (*Result, error) {
	if window < 1 {
		return nil, &Error{Msg: fmt.Sprintf("window must be at least 1, got %d", window)}
	}
	if len(closes) < window {
		return nil, &Error{Msg: "no valid rolling-mean rows; series shorter than window"}
	}

	n := len(closes)
	result := &Result{
		RollingMean:   make([]float64, n),
		Signal:        make([]int, n),
		Valid:         make([]bool, n),
		RowsProcessed: n,
	}

	var sum float64
	var ones int
	for i, price := range closes {
		sum += price
		if i < window-1 {
			result.RollingMean[i] = math.NaN()
			continue
		}
		if i >= window {
			sum -= closes[i-window]
		}
		mean := sum / float64(window)
		result.RollingMean[i] = mean
		result.Valid[i] = true
		if price > mean {
			result.Signal[i] = 1
			ones++
		}
	}

	defined := n - window + 1
	result.SignalRate = float64(ones) / float64(defined)
	return result, nil
}
