package stepper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/fracpde/kernel"
	"github.com/katalvlaran/fracpde/matrix"
	"github.com/katalvlaran/fracpde/scheme"
)

// Option configures a Stepper via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation by New.
type Option func(*options)

type options struct {
	ctx         context.Context
	solver      matrix.TridiagonalSolver
	accumulator kernel.Accumulator
	linearizer  scheme.Linearizer
	logger      *slog.Logger
	onStep      []func(StepEvent)
	onAbort     []func(step int, err error)

	err error
}

func defaultOptions() options {
	return options{
		ctx:         context.Background(),
		solver:      matrix.LapackSolver{},
		accumulator: kernel.Direct{},
		linearizer:  scheme.FrozenCoefficient{},
		logger:      slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}
}

// WithContext lets Run stop between steps when ctx is done. The stepper is
// left in Stepping and can be resumed.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithSolver replaces the banded solver (default matrix.LapackSolver).
func WithSolver(s matrix.TridiagonalSolver) Option {
	return func(o *options) {
		if s == nil {
			o.err = fmt.Errorf("%w: nil solver", ErrOptionViolation)
			return
		}
		o.solver = s
	}
}

// WithAccumulator replaces the history strategy (default kernel.Direct).
func WithAccumulator(a kernel.Accumulator) Option {
	return func(o *options) {
		if a == nil {
			o.err = fmt.Errorf("%w: nil accumulator", ErrOptionViolation)
			return
		}
		o.accumulator = a
	}
}

// WithLinearizer replaces the assembly strategy (default scheme.FrozenCoefficient).
func WithLinearizer(l scheme.Linearizer) Option {
	return func(o *options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil linearizer", ErrOptionViolation)
			return
		}
		o.linearizer = l
	}
}

// WithLogger sets the structured logger (default discards).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithOnStep registers a callback run after every completed step, in
// registration order.
func WithOnStep(fn func(StepEvent)) Option {
	return func(o *options) {
		if fn != nil {
			o.onStep = append(o.onStep, fn)
		}
	}
}

// WithOnAbort registers a callback run once if a step fails.
func WithOnAbort(fn func(step int, err error)) Option {
	return func(o *options) {
		if fn != nil {
			o.onAbort = append(o.onAbort, fn)
		}
	}
}
