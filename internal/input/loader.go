// Package input loads the tabular price series consumed by the signal engine.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// closeColumn is the one column the input file must carry.
const closeColumn = "close"

// Series is a column-oriented view of the parsed input file. Row order
// follows the file and is significant (time order).
type Series struct {
	Columns []string
	Close   []float64
}

// Rows returns the number of data rows parsed.
func (s *Series) Rows() int { return len(s.Close) }

// Error marks an input file rejected during loading.
type Error struct{ Msg string }

func (e *Error) Error() string { return e.Msg }

func errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

// Load parses a CSV file whose header row names its columns. The file must
// contain at least one data row and a numeric column named exactly "close".
// Load is read-only; it never modifies the file.
func Load(path string) (*Series, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errorf("input file not found: %s", path)
		}
		return nil, errorf("input parse failure: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errorf("input parse failure: no header row")
	}
	if err != nil {
		return nil, errorf("input parse failure: %v", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errorf("input parse failure: %v", err)
	}
	if len(records) == 0 {
		return nil, errorf("input file is empty")
	}

	closeIdx := -1
	for i, name := range header {
		if name == closeColumn {
			closeIdx = i
			break
		}
	}
	if closeIdx < 0 {
		return nil, errorf("missing column 'close'; columns present: %v", header)
	}

	closes := make([]float64, 0, len(records))
	for i, record := range records {
		cell := strings.TrimSpace(record[closeIdx])
		value, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, errorf("input parse failure: row %d: invalid close value %q", i+1, record[closeIdx])
		}
		closes = append(closes, value)
	}

	return &Series{Columns: header, Close: closes}, nil
}
