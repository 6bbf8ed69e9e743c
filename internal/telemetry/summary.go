package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// SetCounts fills the per-element columns from a census keyed by element name.
// Occupied is the sum over every non-empty element, including ones without a column.
func (r *TickRecord) SetCounts(counts map[string]int) {
	r.Occupied = 0
	for name, n := range counts {
		if name == "Empty" {
			continue
		}
		r.Occupied += n
	}
	r.Antenna = counts["Antenna"]
	r.Light = counts["Light"]
	r.Emitter = counts["LEmitter"]
	r.Box = counts["Box"]
	r.Lens = counts["Lens"]
}

// Summary aggregates the tick records of a run.
type Summary struct {
	Ticks        int
	Events       int
	Commits      int
	Writes       int
	Failed       int
	Unknown      int
	CommitRate   float64
	WritesMean   float64
	WritesStd    float64
	OccupiedMean float64
	OccupiedStd  float64
	FinalCounts  TickRecord
}

// Summarize computes totals and per-tick means over records.
func Summarize(records []TickRecord) Summary {
	var s Summary
	s.Ticks = len(records)
	if s.Ticks == 0 {
		return s
	}
	writes := make([]float64, len(records))
	occupied := make([]float64, len(records))
	for i, r := range records {
		s.Events += r.Events
		s.Commits += r.Commits
		s.Writes += r.Writes
		s.Failed += r.Failed
		s.Unknown += r.Unknown
		writes[i] = float64(r.Writes)
		occupied[i] = float64(r.Occupied)
	}
	if s.Events > 0 {
		s.CommitRate = float64(s.Commits) / float64(s.Events)
	}
	if s.Ticks < 2 {
		s.WritesMean, s.OccupiedMean = writes[0], occupied[0]
	} else {
		s.WritesMean, s.WritesStd = stat.MeanStdDev(writes, nil)
		s.OccupiedMean, s.OccupiedStd = stat.MeanStdDev(occupied, nil)
	}
	s.FinalCounts = records[len(records)-1]
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("ticks", s.Ticks),
		slog.Int("events", s.Events),
		slog.Int("commits", s.Commits),
		slog.Int("writes", s.Writes),
		slog.Int("failed", s.Failed),
		slog.Int("unknown", s.Unknown),
		slog.Float64("commit_rate", s.CommitRate),
		slog.Float64("writes_mean", s.WritesMean),
		slog.Float64("writes_std", s.WritesStd),
		slog.Float64("occupied_mean", s.OccupiedMean),
		slog.Float64("occupied_std", s.OccupiedStd),
		slog.Int("final_occupied", s.FinalCounts.Occupied),
	)
}
