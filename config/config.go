package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fracpde"
	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/kernel"
	"github.com/katalvlaran/fracpde/matrix"
	"github.com/katalvlaran/fracpde/solution"
	"github.com/katalvlaran/fracpde/stepper"
)

// Banded solver and history strategy names.
const (
	SolverLapack    = "lapack"
	SolverThomas    = "thomas"
	HistoryDirect   = "direct"
	HistoryParallel = "parallel"
)

var (
	// ErrInvalid wraps every validation and parse failure.
	ErrInvalid = grid.ConfigError("config: invalid configuration")
)

// Config is the top-level run configuration.
type Config struct {
	Domain     Domain     `yaml:"domain"`
	Equation   Equation   `yaml:"equation"`
	Conditions Conditions `yaml:"conditions"`
	Solver     Solver     `yaml:"solver"`
	Output     Output     `yaml:"output"`
}

// Domain holds extents and step sizes.
type Domain struct {
	XMax float64 `yaml:"x_max" validate:"finite,gt=0"`
	TMax float64 `yaml:"t_max" validate:"finite,gt=0"`
	Dx   float64 `yaml:"dx" validate:"finite,gt=0,ltefield=XMax"`
	Dt   float64 `yaml:"dt" validate:"finite,gt=0,ltefield=TMax"`
}

// Equation holds the equation coefficients.
type Equation struct {
	Alpha float64 `yaml:"alpha" validate:"finite,gt=0,lte=1"`
	A     float64 `yaml:"a" validate:"finite"`
	C     float64 `yaml:"c" validate:"finite"`
}

// Condition names an initial or boundary function.
type Condition struct {
	Kind      string  `yaml:"kind" validate:"oneof=sine constant linear"`
	Amplitude float64 `yaml:"amplitude" validate:"finite"`
	Frequency float64 `yaml:"frequency" validate:"finite"`
	Value     float64 `yaml:"value" validate:"finite"`
	Slope     float64 `yaml:"slope" validate:"finite"`
}

// Conditions groups the initial and the two boundary functions.
type Conditions struct {
	Initial Condition `yaml:"initial"`
	Left    Condition `yaml:"left"`
	Right   Condition `yaml:"right"`
}

// Solver selects the numerical strategies.
type Solver struct {
	Banded  string `yaml:"banded" validate:"oneof=lapack thomas"`
	History string `yaml:"history" validate:"oneof=direct parallel"`
	Workers int    `yaml:"workers" validate:"gte=0"`
}

// Output selects result sinks. Empty paths disable a sink.
type Output struct {
	SQLite   string `yaml:"sqlite"`
	CSV      string `yaml:"csv"`
	Metrics  string `yaml:"metrics"`
	Table    bool   `yaml:"table"`
	Decimals int    `yaml:"decimals" validate:"gte=0,lte=12"`
}

// Default returns the reference run configuration.
func Default() Config {
	return Config{
		Domain:   Domain{XMax: 1, TMax: 1, Dx: 0.1, Dt: 0.1},
		Equation: Equation{Alpha: 0.5, A: 1, C: 1},
		Conditions: Conditions{
			Initial: Condition{Kind: solution.KindSine, Amplitude: 1, Frequency: 1},
			Left:    Condition{Kind: solution.KindConstant, Value: 0},
			Right:   Condition{Kind: solution.KindConstant, Value: 1},
		},
		Solver: Solver{Banded: SolverLapack, History: HistoryDirect},
		Output: Output{Table: true, Decimals: 4},
	}
}

// Load merges defaults, the YAML file at path, the .env file at envFile and
// the process environment, then validates the result. Either path may be
// empty. A missing YAML file is an error; a missing .env file is not.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
		}
	}

	env, err := environment(envFile)
	if err != nil {
		return cfg, err
	}
	if err = cfg.applyEnv(env); err != nil {
		return cfg, err
	}

	cfg.Normalize()

	return cfg, cfg.Validate()
}

// Normalize lowercases and trims the condition kinds and the strategy names,
// the form solution.ByName and StepperOptions match against.
func (c *Config) Normalize() {
	for _, cond := range []*Condition{&c.Conditions.Initial, &c.Conditions.Left, &c.Conditions.Right} {
		cond.Kind = canon(cond.Kind)
	}
	c.Solver.Banded = canon(c.Solver.Banded)
	c.Solver.History = canon(c.Solver.History)
}

func canon(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

// Validate checks every field against its tags. Names are compared in
// their normalized form.
func (c Config) Validate() error {
	c.Normalize()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// Problem converts the configuration into a solver input.
func (c Config) Problem() (fracpde.Problem, error) {
	initial, err := solution.ByName(c.Conditions.Initial.spec())
	if err != nil {
		return fracpde.Problem{}, fmt.Errorf("initial: %w", err)
	}
	left, err := solution.ByName(c.Conditions.Left.spec())
	if err != nil {
		return fracpde.Problem{}, fmt.Errorf("left: %w", err)
	}
	right, err := solution.ByName(c.Conditions.Right.spec())
	if err != nil {
		return fracpde.Problem{}, fmt.Errorf("right: %w", err)
	}

	return fracpde.Problem{
		XMax: c.Domain.XMax,
		TMax: c.Domain.TMax,
		Dx:   c.Domain.Dx,
		Dt:   c.Domain.Dt,
		Equation: stepper.Params{
			Alpha: c.Equation.Alpha,
			A:     c.Equation.A,
			C:     c.Equation.C,
		},
		Initial: initial,
		Left:    left,
		Right:   right,
	}, nil
}

// StepperOptions returns the solver and history strategies selected by the
// configuration.
func (c Config) StepperOptions() []stepper.Option {
	var opts []stepper.Option
	switch canon(c.Solver.Banded) {
	case SolverThomas:
		opts = append(opts, stepper.WithSolver(matrix.ThomasSolver{}))
	default:
		opts = append(opts, stepper.WithSolver(matrix.LapackSolver{}))
	}
	if canon(c.Solver.History) == HistoryParallel {
		opts = append(opts, stepper.WithAccumulator(kernel.Parallel{Workers: c.Solver.Workers}))
	}

	return opts
}

func (c Condition) spec() solution.Spec {
	return solution.Spec{
		Kind:      c.Kind,
		Amplitude: c.Amplitude,
		Frequency: c.Frequency,
		Value:     c.Value,
		Slope:     c.Slope,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// finite rejects NaN and ±Inf.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return v
}
