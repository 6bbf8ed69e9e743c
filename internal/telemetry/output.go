// Package telemetry records per-tick statistics of a run to CSV and summarises them.
package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"data-array/internal/config"

	"github.com/gocarina/gocsv"
)

// TickRecord is one row of ticks.csv.
type TickRecord struct {
	Tick     int `csv:"tick"`
	Events   int `csv:"events"`
	Commits  int `csv:"commits"`
	Writes   int `csv:"writes"`
	Rejected int `csv:"rejected"`
	Unknown  int `csv:"unknown"`
	Failed   int `csv:"failed"`
	Occupied int `csv:"occupied"`
	Antenna  int `csv:"antenna"`
	Light    int `csv:"light"`
	Emitter  int `csv:"emitter"`
	Box      int `csv:"box"`
	Lens     int `csv:"lens"`
}

// CSVWriter appends records of one type to a CSV stream, writing the header with
// the first record.
type CSVWriter[T any] struct {
	w             io.Writer
	headerWritten bool
}

// NewCSVWriter wraps w.
func NewCSVWriter[T any](w io.Writer) *CSVWriter[T] {
	return &CSVWriter[T]{w: w}
}

// Write appends rec.
func (c *CSVWriter[T]) Write(rec T) error {
	records := []T{rec}
	if !c.headerWritten {
		if err := gocsv.Marshal(records, c.w); err != nil {
			return err
		}
		c.headerWritten = true
		return nil
	}
	return gocsv.MarshalWithoutHeaders(records, c.w)
}

// OutputManager owns the files of one run's output directory.
type OutputManager struct {
	dir       string
	ticksFile *os.File
	ticks     *CSVWriter[TickRecord]
}

// NewOutputManager creates the output directory and opens ticks.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "ticks.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating ticks.csv: %w", err)
	}
	return &OutputManager{dir: dir, ticksFile: f, ticks: NewCSVWriter[TickRecord](f)}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteConfig saves the configuration the run used as config.yaml.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteTick appends rec to ticks.csv.
func (om *OutputManager) WriteTick(rec TickRecord) error {
	if om == nil {
		return nil
	}
	if err := om.ticks.Write(rec); err != nil {
		return fmt.Errorf("writing ticks: %w", err)
	}
	return nil
}

// Close flushes and closes all files.
func (om *OutputManager) Close() error {
	if om == nil || om.ticksFile == nil {
		return nil
	}
	if err := om.ticksFile.Close(); err != nil {
		return fmt.Errorf("closing ticks.csv: %w", err)
	}
	return nil
}
