// Package config loads and validates the run configuration document.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// requiredFields is the fixed schema the document must satisfy. Kept in
// lexicographic order so missing-field errors are reproducible.
var requiredFields = []string{"seed", "version", "window"}

// RunConfig is the validated run configuration. Immutable once returned.
type RunConfig struct {
	Seed    int
	Window  int
	Version string
}

// Error marks a configuration document rejected during validation.
type Error struct{ Msg string }

func (e *Error) Error() string { return e.Msg }

func errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Load reads a YAML document and validates it against the fixed schema:
// seed (integer), window (integer >= 1), version (opaque scalar label).
// Unrecognized keys are ignored. Load does not seed the run's random state;
// that belongs to the orchestrator.
func Load(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorf("config file not found: %s", path)
		}
		return nil, errorf("config parse failure: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errorf("config parse failure: %v", err)
	}

	if missing := missingFields(doc); len(missing) > 0 {
		return nil, errorf("config missing fields: %v", missing)
	}

	seed, ok := asInt(doc["seed"])
	if !ok {
		return nil, errorf("seed must be an integer")
	}
	window, ok := asInt(doc["window"])
	if !ok || window < 1 {
		return nil, errorf("window must be a positive integer")
	}

	return &RunConfig{
		Seed:    seed,
		Window:  window,
		Version: fmt.Sprintf("%v", doc["version"]),
	}, nil
}

// missingFields returns the required keys absent from the document. The
// result inherits the lexicographic order of requiredFields.
func missingFields(doc map[string]any) []string {
	var missing []string
	for _, field := range requiredFields {
		if _, ok := doc[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// asInt accepts only integer-typed YAML scalars. Floats and numeric-looking
// strings are rejected.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	default:
		return 0, false
	}
}
