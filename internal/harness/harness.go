package harness

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/strictint/internal/vector"
)

// RunIDGenerator issues identifiers for runs. Production code uses the
// UUID-backed generator; tests substitute testutil.FixedRunIDGenerator so
// rendered reports are stable for golden comparison.
type RunIDGenerator interface {
	NewRunID() string
}

// UUIDRunIDGenerator issues random UUIDs.
type UUIDRunIDGenerator struct{}

// NewRunID returns a fresh UUID string.
func (UUIDRunIDGenerator) NewRunID() string {
	return uuid.NewString()
}

// Harness evaluates vectors and produces reports.
type Harness struct {
	runIDs RunIDGenerator
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithRunIDGenerator replaces the run-ID source.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(h *Harness) { h.runIDs = g }
}

// WithLogger routes diagnostics to the given logger. The default discards
// them.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// New creates a harness with UUID run IDs and no log output.
func New(opts ...Option) *Harness {
	h := &Harness{
		runIDs: UUIDRunIDGenerator{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RunFile loads, validates, and runs a vector file.
func (h *Harness) RunFile(path string) (*Report, error) {
	v, err := vector.Load(path)
	if err != nil {
		return nil, err
	}
	return h.Run(v), nil
}

// Run evaluates every case in the vector. Malformed cases count as
// failures with the load problem as the reason; they never abort the run.
func (h *Harness) Run(v *vector.Vector) *Report {
	rep := &Report{
		RunID:  h.runIDs.NewRunID(),
		Vector: v.Name,
		Total:  len(v.Cases),
	}
	h.logger.Info("run started", "run_id", rep.RunID, "vector", v.Name, "cases", rep.Total)

	for i, c := range v.Cases {
		cr := CaseResult{
			Index:   i,
			Op:      c.Op,
			Width:   c.Width,
			Variant: c.Variant,
			Want:    expected(c),
		}
		got, err := Execute(c)
		if err != nil {
			cr.Reason = err.Error()
		} else {
			cr.Got = got
			cr.Passed, cr.Reason = compare(got, cr.Want)
		}
		if !cr.Passed {
			rep.Failed++
			h.logger.Warn("case failed", "run_id", rep.RunID, "index", i, "op", c.Op, "reason", cr.Reason)
		} else {
			rep.Passed++
			h.logger.Debug("case passed", "run_id", rep.RunID, "index", i, "op", c.Op)
		}
		rep.Cases = append(rep.Cases, cr)
	}

	h.logger.Info("run finished", "run_id", rep.RunID, "passed", rep.Passed, "failed", rep.Failed)
	return rep
}

// expected converts a case's expectation fields into Outcome form.
func expected(c vector.Case) Outcome {
	switch {
	case c.Panics != "":
		return Outcome{Panic: c.Panics}
	case c.Absent:
		return Outcome{Absent: true}
	default:
		return Outcome{Value: c.Want, Flag: c.Flag}
	}
}

func compare(got, want Outcome) (bool, string) {
	if got.Panic != want.Panic {
		return false, "got " + got.String() + ", want " + want.String()
	}
	if got.Absent != want.Absent {
		return false, "got " + got.String() + ", want " + want.String()
	}
	if want.Panic != "" || want.Absent {
		return true, ""
	}
	if got.Value != want.Value {
		return false, "got " + got.String() + ", want " + want.String()
	}
	// The flag is checked only when the vector states one; checked and
	// saturating cases leave it nil.
	if want.Flag != nil && (got.Flag == nil || *got.Flag != *want.Flag) {
		return false, "got " + got.String() + ", want " + want.String()
	}
	return true, ""
}

