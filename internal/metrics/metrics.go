// Package metrics assembles and persists the machine-readable run report.
package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
)

// MetricName is the single metric this job reports.
const MetricName = "signal_rate"

const (
	// StatusSuccess marks a run that produced a signal rate.
	StatusSuccess = "success"
	// StatusError marks a run terminated by a validation or compute failure.
	StatusError = "error"
)

// Success is the payload written when every stage completes.
type Success struct {
	Version       string  `json:"version"`
	RowsProcessed int     `json:"rows_processed"`
	Metric        string  `json:"metric"`
	Value         float64 `json:"value"`
	LatencyMs     int64   `json:"latency_ms"`
	Seed          int     `json:"seed"`
	Status        string  `json:"status"`
}

// Failure is the payload written when any stage fails. It carries the stage
// error verbatim so downstream automation can branch on Status without
// parsing logs.
type Failure struct {
	Version      string `json:"version"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Reporter persists run payloads to the metrics artifact at Path, overwriting
// any existing content, and echoes the same document to Out.
type Reporter struct {
	Path string
	Out  io.Writer
}

// NewReporter binds a reporter to the artifact path, echoing to stdout.
func NewReporter(path string) *Reporter {
	return &Reporter{Path: path, Out: os.Stdout}
}

// WriteSuccess persists the payload for a completed run. The signal rate is
// rounded to four decimal digits first.
func (r *Reporter) WriteSuccess(version string, rowsProcessed int, rate float64, latencyMs int64, seed int) error {
	return r.write(Success{
		Version:       version,
		RowsProcessed: rowsProcessed,
		Metric:        MetricName,
		Value:         round4(rate),
		LatencyMs:     latencyMs,
		Seed:          seed,
		Status:        StatusSuccess,
	})
}

// WriteFailure persists the error payload for a terminated run.
func (r *Reporter) WriteFailure(version, message string) error {
	return r.write(Failure{
		Version:      version,
		Status:       StatusError,
		ErrorMessage: message,
	})
}

func (r *Reporter) write(payload any) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal metrics: %w", err)
	}
	if err := os.WriteFile(r.Path, data, 0o644); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	fmt.Fprintln(r.Out, string(data))
	return nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
