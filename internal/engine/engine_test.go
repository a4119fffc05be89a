package engine

import (
	"errors"
	"math"
	"testing"
)

func TestComputeRisingSeries(t *testing.T) {
	result, err := Compute([]float64{1, 2, 3, 4, 5}, 3)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if result.RowsProcessed != 5 {
		t.Fatalf("expected 5 rows processed, got %d", result.RowsProcessed)
	}
	for i := 0; i < 2; i++ {
		if result.Valid[i] {
			t.Fatalf("row %d should have no rolling mean", i)
		}
		if !math.IsNaN(result.RollingMean[i]) {
			t.Fatalf("row %d: expected NaN rolling mean, got %v", i, result.RollingMean[i])
		}
	}
	wantMeans := []float64{2, 3, 4}
	for i, want := range wantMeans {
		row := i + 2
		if !result.Valid[row] {
			t.Fatalf("row %d should have a rolling mean", row)
		}
		if result.RollingMean[row] != want {
			t.Fatalf("row %d: expected mean %v, got %v", row, want, result.RollingMean[row])
		}
		if result.Signal[row] != 1 {
			t.Fatalf("row %d: expected signal 1, got %d", row, result.Signal[row])
		}
	}
	if result.SignalRate != 1.0 {
		t.Fatalf("expected signal rate 1.0, got %v", result.SignalRate)
	}
}

func TestComputeFallingSeries(t *testing.T) {
	result, err := Compute([]float64{5, 4, 3, 2, 1}, 3)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	wantMeans := []float64{4, 3, 2}
	for i, want := range wantMeans {
		row := i + 2
		if result.RollingMean[row] != want {
			t.Fatalf("row %d: expected mean %v, got %v", row, want, result.RollingMean[row])
		}
		if result.Signal[row] != 0 {
			t.Fatalf("row %d: expected signal 0, got %d", row, result.Signal[row])
		}
	}
	if result.SignalRate != 0.0 {
		t.Fatalf("expected signal rate 0.0, got %v", result.SignalRate)
	}
}

func TestComputeTieYieldsZero(t *testing.T) {
	// A flat series keeps close equal to its rolling mean everywhere.
	result, err := Compute([]float64{2, 2, 2, 2}, 2)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	for i := 1; i < 4; i++ {
		if result.Signal[i] != 0 {
			t.Fatalf("row %d: tie must yield signal 0, got %d", i, result.Signal[i])
		}
	}
	if result.SignalRate != 0.0 {
		t.Fatalf("expected signal rate 0.0, got %v", result.SignalRate)
	}
}

func TestComputeWindowOne(t *testing.T) {
	// With window 1 every row is defined and close never exceeds its own mean.
	closes := []float64{3, 1, 4}
	result, err := Compute(closes, 1)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	for i := range result.Valid {
		if !result.Valid[i] {
			t.Fatalf("row %d should be defined with window 1", i)
		}
		if result.RollingMean[i] != closes[i] {
			t.Fatalf("row %d: expected mean %v, got %v", i, closes[i], result.RollingMean[i])
		}
		if result.Signal[i] != 0 {
			t.Fatalf("row %d: expected signal 0, got %d", i, result.Signal[i])
		}
	}
	if result.SignalRate != 0.0 {
		t.Fatalf("expected signal rate 0.0, got %v", result.SignalRate)
	}
}

func TestComputeMixedSeriesRate(t *testing.T) {
	// Means at rows 1..4: 1.5, 2.5, 3, 3.5; closes 3, 2, 4, 3 -> signals 1, 0, 1, 0.
	result, err := Compute([]float64{0, 3, 2, 4, 3}, 2)
	if err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	wantSignals := []int{1, 0, 1, 0}
	for i, want := range wantSignals {
		row := i + 1
		if result.Signal[row] != want {
			t.Fatalf("row %d: expected signal %d, got %d", row, want, result.Signal[row])
		}
	}
	if result.SignalRate != 0.5 {
		t.Fatalf("expected signal rate 0.5, got %v", result.SignalRate)
	}
}

func TestComputeSeriesShorterThanWindow(t *testing.T) {
	_, err := Compute([]float64{1, 2, 3}, 4)
	if err == nil {
		t.Fatalf("expected error for series shorter than window")
	}
	var engErr *Error
	if !errors.As(err, &engErr) {
		t.Fatalf("expected *engine.Error, got %T", err)
	}
	if engErr.Msg != "no valid rolling-mean rows; series shorter than window" {
		t.Fatalf("unexpected message: %s", engErr.Msg)
	}
}

func TestComputeRejectsBadWindow(t *testing.T) {
	for _, window := range []int{0, -1} {
		if _, err := Compute([]float64{1, 2, 3}, window); err == nil {
			t.Fatalf("expected error for window %d", window)
		}
	}
}

func TestComputeDoesNotModifyInput(t *testing.T) {
	closes := []float64{1, 2, 3}
	if _, err := Compute(closes, 2); err != nil {
		t.Fatalf("Compute returned error: %v", err)
	}
	if closes[0] != 1 || closes[1] != 2 || closes[2] != 3 {
		t.Fatalf("input slice was modified: %v", closes)
	}
}
