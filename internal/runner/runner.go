// Package runner sequences the job stages and owns run-wide state.
package runner

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"signaljob-go/internal/config"
	"signaljob-go/internal/engine"
	"signaljob-go/internal/input"
	"signaljob-go/internal/metrics"
)

// defaultVersion labels error payloads emitted before the config document
// has been validated.
const defaultVersion = "v1"

// Job wires one batch run: validate config, load input, compute the signal,
// report metrics. Stages run strictly in order; the first failure
// short-circuits the rest, with error reporting still running.
type Job struct {
	ConfigPath string
	InputPath  string
	Reporter   *metrics.Reporter
	Log        zerolog.Logger

	// rng is seeded exactly once per run, right after config validation, and
	// is handed to any stage that needs randomness. None of the current
	// stages draw from it.
	rng *rand.Rand
}

// Run executes the pipeline and returns the first stage error, if any. The
// metrics artifact is written before return on both paths; a failure to
// persist it is returned as-is since no fallback channel exists.
func (j *Job) Run() error {
	start := time.Now()
	j.Log.Info().Msg("job started")

	version := defaultVersion

	cfg, err := config.Load(j.ConfigPath)
	if err != nil {
		return j.fail(version, err)
	}
	version = cfg.Version
	j.rng = rand.New(rand.NewSource(int64(cfg.Seed)))
	j.Log.Info().
		Str("version", cfg.Version).
		Int("seed", cfg.Seed).
		Int("window", cfg.Window).
		Msg("config loaded and validated")

	series, err := input.Load(j.InputPath)
	if err != nil {
		return j.fail(version, err)
	}
	j.Log.Info().Int("rows", series.Rows()).Msg("rows loaded")

	result, err := engine.Compute(series.Close, cfg.Window)
	if err != nil {
		return j.fail(version, err)
	}
	j.Log.Info().Int("window", cfg.Window).Msg("rolling mean computed")
	j.Log.Info().
		Int("rows_processed", result.RowsProcessed).
		Float64("signal_rate", result.SignalRate).
		Msg("signal generated")

	latency := time.Since(start).Milliseconds()
	if err := j.Reporter.WriteSuccess(cfg.Version, result.RowsProcessed, result.SignalRate, latency, cfg.Seed); err != nil {
		j.Log.Error().Err(err).Msg("persist metrics")
		return err
	}
	j.Log.Info().
		Int64("latency_ms", latency).
		Str("status", metrics.StatusSuccess).
		Msg("job completed")
	return nil
}

// fail logs the stage error, writes the error-shaped artifact with the best
// known version, and returns the original error so the process exits non-zero.
func (j *Job) fail(version string, stageErr error) error {
	j.Log.Error().Err(stageErr).Msg("job failed")
	if err := j.Reporter.WriteFailure(version, stageErr.Error()); err != nil {
		j.Log.Error().Err(err).Msg("persist error metrics")
		return err
	}
	return stageErr
}
