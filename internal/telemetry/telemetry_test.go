package telemetry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"data-array/internal/config"
)

func TestCSVWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewCSVWriter[TickRecord](&buf)
	for i := 1; i <= 3; i++ {
		if err := w.Write(TickRecord{Tick: i, Events: 10 * i}); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "tick,events,commits") {
		t.Fatalf("header = %q", lines[0])
	}
	if strings.Count(buf.String(), "tick,") != 1 {
		t.Fatal("header repeated")
	}
	if !strings.HasPrefix(lines[3], "3,30,") {
		t.Fatalf("last row = %q", lines[3])
	}
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("NewOutputManager(\"\") = %v, %v", om, err)
	}
	if err := om.WriteTick(TickRecord{}); err != nil {
		t.Fatalf("nil WriteTick: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("nil Close: %v", err)
	}
}

func TestOutputManagerWritesFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	cfg, err := config.Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatalf("WriteConfig: %v", err)
	}
	if err := om.WriteTick(TickRecord{Tick: 1, Writes: 2}); err != nil {
		t.Fatalf("WriteTick: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	for _, name := range []string{"config.yaml", "ticks.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "ticks.csv"))
	if err != nil {
		t.Fatalf("read ticks.csv: %v", err)
	}
	if !strings.Contains(string(data), "\n1,0,0,2,") {
		t.Fatalf("ticks.csv = %q", data)
	}
}

func TestSetCounts(t *testing.T) {
	var r TickRecord
	r.SetCounts(map[string]int{"Empty": 90, "Antenna": 3, "Box": 2, "Mystery": 1})
	if r.Occupied != 6 || r.Antenna != 3 || r.Box != 2 || r.Light != 0 {
		t.Fatalf("record = %+v", r)
	}
}

func TestSummarize(t *testing.T) {
	recs := []TickRecord{
		{Tick: 1, Events: 10, Commits: 8, Writes: 2, Occupied: 4},
		{Tick: 2, Events: 10, Commits: 10, Writes: 4, Occupied: 6},
	}
	s := Summarize(recs)
	if s.Ticks != 2 || s.Events != 20 || s.Commits != 18 || s.Writes != 6 {
		t.Fatalf("totals = %+v", s)
	}
	if math.Abs(s.CommitRate-0.9) > 1e-9 {
		t.Fatalf("commit rate = %v", s.CommitRate)
	}
	if s.WritesMean != 3 || s.OccupiedMean != 5 {
		t.Fatalf("means = %v, %v", s.WritesMean, s.OccupiedMean)
	}
	if math.Abs(s.WritesStd-math.Sqrt2) > 1e-9 {
		t.Fatalf("writes std = %v, want sqrt(2)", s.WritesStd)
	}
	if s.FinalCounts.Tick != 2 {
		t.Fatalf("final = %+v", s.FinalCounts)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if s := Summarize(nil); s.Ticks != 0 || s.WritesMean != 0 {
		t.Fatalf("summary = %+v", s)
	}
}

func TestSummarizeSingleTick(t *testing.T) {
	s := Summarize([]TickRecord{{Tick: 1, Events: 5, Commits: 5, Writes: 3, Occupied: 7}})
	if s.WritesMean != 3 || s.OccupiedMean != 7 {
		t.Fatalf("means = %v, %v", s.WritesMean, s.OccupiedMean)
	}
	if s.WritesStd != 0 || s.OccupiedStd != 0 {
		t.Fatalf("std = %v, %v; want 0", s.WritesStd, s.OccupiedStd)
	}

	var buf bytes.Buffer
	slog.New(slog.NewJSONHandler(&buf, nil)).Info("run complete", "summary", s)
	var line struct {
		Summary map[string]any `json:"summary"`
	}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if std, ok := line.Summary["writes_std"].(float64); !ok || std != 0 {
		t.Fatalf("writes_std = %#v in %s", line.Summary["writes_std"], buf.String())
	}
}
