package recorder

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"

	"github.com/katalvlaran/fracpde/stepper"
)

var (
	// ErrNotStarted is returned by WriteRow and Finish before Begin.
	ErrNotStarted = errors.New("recorder: Begin has not been called")

	// ErrRowLength is returned when a row does not match the spatial axis.
	ErrRowLength = errors.New("recorder: row length does not match x axis")
)

// RunInfo describes a run before its first level is written.
type RunInfo struct {
	ID      string // generated when empty
	Started time.Time

	Alpha, A, C float64
	XMax, TMax  float64
	Dx, Dt      float64

	Solver  string
	History string

	X []float64 // spatial axis, len N
	T []float64 // time axis, len M
}

// Recorder stores the levels of a single run.
type Recorder interface {
	Begin(run RunInfo) error
	WriteRow(n int, t float64, row []float64) error
	Finish(outcome string) error
	Close() error
}

// NewRunID returns a sortable, globally unique run identifier.
func NewRunID() string { return xid.New().String() }

func (r *RunInfo) fill() {
	if r.ID == "" {
		r.ID = NewRunID()
	}
	if r.Started.IsZero() {
		r.Started = time.Now()
	}
}

// Sink collects stepper events in memory and hands them to a Recorder in
// Finish, so no recorder I/O happens while the stepper runs.
type Sink struct {
	rec     Recorder
	pending []level
}

type level struct {
	n   int
	t   float64
	row []float64
}

// NewSink wraps rec.
func NewSink(rec Recorder) *Sink { return &Sink{rec: rec} }

// OnStep is a stepper.WithOnStep callback. It keeps the event row, which the
// stepper hands over as a copy.
func (s *Sink) OnStep(e stepper.StepEvent) {
	s.pending = append(s.pending, level{n: e.Step + 1, t: e.Time, row: e.Row})
}

// Pending returns the number of levels not yet written.
func (s *Sink) Pending() int { return len(s.pending) }

// Finish writes the collected levels in order, then finishes the recorder
// with outcome. Writing stops at the first error; Finish is still called.
func (s *Sink) Finish(outcome string) error {
	var werr error
	for i, l := range s.pending {
		if werr = s.rec.WriteRow(l.n, l.t, l.row); werr != nil {
			werr = fmt.Errorf("recorder: level %d: %w", l.n, werr)
			s.pending = s.pending[i:]
			break
		}
	}
	if werr == nil {
		s.pending = nil
	}

	return errors.Join(werr, s.rec.Finish(outcome))
}

// Multi fans every call out to all recorders and joins their errors.
func Multi(recs ...Recorder) Recorder { return multi(recs) }

type multi []Recorder

func (m multi) Begin(run RunInfo) error {
	run.fill()
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Begin(run))
	}
	return errors.Join(errs...)
}

func (m multi) WriteRow(n int, t float64, row []float64) error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.WriteRow(n, t, row))
	}
	return errors.Join(errs...)
}

func (m multi) Finish(outcome string) error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Finish(outcome))
	}
	return errors.Join(errs...)
}

func (m multi) Close() error {
	var errs []error
	for _, r := range m {
		errs = append(errs, r.Close())
	}
	return errors.Join(errs...)
}
