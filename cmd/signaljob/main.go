// Binary signaljob validates a run configuration, computes a rolling-mean
// trading signal over a CSV of closing prices, and emits a JSON metrics
// report for downstream automation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"signaljob-go/internal/metrics"
	"signaljob-go/internal/runner"
	"signaljob-go/internal/util"
)

func main() {
	os.Exit(run())
}

func run() int {
	inputPath := flag.String("input", "", "path to the input CSV file")
	configPath := flag.String("config", "", "path to the YAML config file")
	outputPath := flag.String("output", "", "path to the output metrics JSON")
	logPath := flag.String("log-file", "", "path to the log file")
	flag.Parse()

	if *inputPath == "" || *configPath == "" || *outputPath == "" || *logPath == "" {
		fmt.Fprintln(os.Stderr, "signaljob: -input, -config, -output and -log-file are all required")
		flag.Usage()
		return 2
	}

	_ = godotenv.Load() // best-effort

	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}

	log, closeLog, err := util.NewJobLogger(*logPath, level)
	if err != nil {
		fallback := util.NewLogger(level)
		fallback.Error().Err(err).Msg("init job logger")
		return 1
	}
	defer closeLog()

	job := &runner.Job{
		ConfigPath: *configPath,
		InputPath:  *inputPath,
		Reporter:   metrics.NewReporter(*outputPath),
		Log:        log,
	}
	if err := job.Run(); err != nil {
		return 1
	}
	return 0
}
