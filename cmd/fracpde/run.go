package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/fracpde/config"
	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/metrics"
	"github.com/katalvlaran/fracpde/recorder"
	"github.com/katalvlaran/fracpde/solution"
	"github.com/katalvlaran/fracpde/stepper"
)

// runFlags mirror the configuration; only flags set on the command line
// override the loaded Config.
type runFlags struct {
	xMax, tMax, dx, dt float64
	alpha, a, c        float64

	solver, history string
	workers         int

	sqlite, csv, metrics string
	noTable              bool
	decimals             int
}

func newRunCmd(rf *rootFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the solver and print or record the solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rf.configPath, rf.envFile)
			if err != nil {
				return err
			}
			f.apply(cmd.Flags(), &cfg)
			cfg.Normalize()
			if err = cfg.Validate(); err != nil {
				return err
			}

			return runSolver(cmd, rf, cfg)
		},
	}

	d := config.Default()
	fs := cmd.Flags()
	fs.Float64Var(&f.xMax, "x-max", d.Domain.XMax, "spatial extent")
	fs.Float64Var(&f.tMax, "t-max", d.Domain.TMax, "time horizon")
	fs.Float64Var(&f.dx, "dx", d.Domain.Dx, "spatial step")
	fs.Float64Var(&f.dt, "dt", d.Domain.Dt, "time step")
	fs.Float64Var(&f.alpha, "alpha", d.Equation.Alpha, "fractional order in (0, 1]")
	fs.Float64Var(&f.a, "a", d.Equation.A, "advection coefficient")
	fs.Float64Var(&f.c, "c", d.Equation.C, "diffusion coefficient")
	fs.StringVar(&f.solver, "solver", d.Solver.Banded, "banded solver: lapack or thomas")
	fs.StringVar(&f.history, "history", d.Solver.History, "history sum: direct or parallel")
	fs.IntVar(&f.workers, "workers", d.Solver.Workers, "goroutines for --history parallel (0 = GOMAXPROCS)")
	fs.StringVar(&f.sqlite, "sqlite", "", "record the run into this SQLite database")
	fs.StringVar(&f.csv, "csv", "", "write the solution to this CSV file")
	fs.StringVar(&f.metrics, "metrics", "", "write Prometheus metrics to this text file")
	fs.BoolVar(&f.noTable, "no-table", false, "do not print the solution table")
	fs.IntVar(&f.decimals, "decimals", d.Output.Decimals, "decimals in the printed table")

	return cmd
}

func (f *runFlags) apply(fs *pflag.FlagSet, cfg *config.Config) {
	floats := map[string]struct {
		dst *float64
		val float64
	}{
		"x-max": {&cfg.Domain.XMax, f.xMax},
		"t-max": {&cfg.Domain.TMax, f.tMax},
		"dx":    {&cfg.Domain.Dx, f.dx},
		"dt":    {&cfg.Domain.Dt, f.dt},
		"alpha": {&cfg.Equation.Alpha, f.alpha},
		"a":     {&cfg.Equation.A, f.a},
		"c":     {&cfg.Equation.C, f.c},
	}
	for name, v := range floats {
		if fs.Changed(name) {
			*v.dst = v.val
		}
	}

	strs := map[string]struct {
		dst *string
		val string
	}{
		"solver":  {&cfg.Solver.Banded, f.solver},
		"history": {&cfg.Solver.History, f.history},
		"sqlite":  {&cfg.Output.SQLite, f.sqlite},
		"csv":     {&cfg.Output.CSV, f.csv},
		"metrics": {&cfg.Output.Metrics, f.metrics},
	}
	for name, v := range strs {
		if fs.Changed(name) {
			*v.dst = v.val
		}
	}

	if fs.Changed("workers") {
		cfg.Solver.Workers = f.workers
	}
	if fs.Changed("no-table") {
		cfg.Output.Table = !f.noTable
	}
	if fs.Changed("decimals") {
		cfg.Output.Decimals = f.decimals
	}
}

func runSolver(cmd *cobra.Command, rf *rootFlags, cfg config.Config) (err error) {
	logger, err := rf.logger()
	if err != nil {
		return err
	}
	p, err := cfg.Problem()
	if err != nil {
		return err
	}

	g, err := grid.Build(p.XMax, p.TMax, p.Dx, p.Dt)
	if err != nil {
		return err
	}
	sol, err := solution.Initialize(g, p.Initial, p.Left, p.Right)
	if err != nil {
		return err
	}

	opts := append(cfg.StepperOptions(),
		stepper.WithContext(cmd.Context()),
		stepper.WithLogger(logger),
	)

	rec, err := openRecorders(cfg.Output, logger)
	if err != nil {
		return err
	}
	var sink *recorder.Sink
	if rec != nil {
		defer func() { err = errors.Join(err, rec.Close()) }()
		if err = beginRecording(rec, cfg, g, sol); err != nil {
			return err
		}
		sink = recorder.NewSink(rec)
		opts = append(opts, stepper.WithOnStep(sink.OnStep))
	}

	var collector *metrics.Collector
	if cfg.Output.Metrics != "" {
		collector = metrics.NewCollector(prometheus.NewRegistry())
		opts = append(opts, stepper.WithOnStep(collector.OnStep), stepper.WithOnAbort(collector.OnAbort))
	}

	s, err := stepper.New(g, sol, p.Equation, opts...)
	if err != nil {
		return err
	}
	out, runErr := s.Run()
	logger.Info("run finished", "outcome", out.String(), "levels", sol.Completed())

	if rec != nil {
		if err = sink.Finish(out.String()); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if collector != nil {
		if err = collector.WriteTextfile(cfg.Output.Metrics); err != nil {
			return errors.Join(runErr, err)
		}
	}
	if cfg.Output.Table {
		fmt.Fprintln(cmd.OutOrStdout(), renderSolution(sol, cfg.Output.Decimals))
		fmt.Fprintln(cmd.OutOrStdout(), "Outcome:", out)
	}

	return runErr
}

// openRecorders returns nil when no recording sink is configured.
func openRecorders(o config.Output, logger *slog.Logger) (recorder.Recorder, error) {
	var recs []recorder.Recorder
	if o.SQLite != "" {
		db, err := recorder.NewSQLite(o.SQLite)
		if err != nil {
			return nil, err
		}
		logger.Info("database created for recording", "path", db.Path())
		recs = append(recs, db)
	}
	if o.CSV != "" {
		fh, err := os.Create(o.CSV)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("create %s: %w", o.CSV, err), recorder.Multi(recs...).Close())
		}
		c := recorder.NewCSV(fh)
		c.Decimals = o.Decimals
		recs = append(recs, c)
	}

	switch len(recs) {
	case 0:
		return nil, nil
	case 1:
		return recs[0], nil
	default:
		return recorder.Multi(recs...), nil
	}
}

func beginRecording(rec recorder.Recorder, cfg config.Config, g *grid.Grid, sol *solution.Solution) error {
	err := rec.Begin(recorder.RunInfo{
		Alpha:   cfg.Equation.Alpha,
		A:       cfg.Equation.A,
		C:       cfg.Equation.C,
		XMax:    g.XMax,
		TMax:    g.TMax,
		Dx:      g.Dx,
		Dt:      g.Dt,
		Solver:  cfg.Solver.Banded,
		History: cfg.Solver.History,
		X:       g.X(),
		T:       g.T(),
	})
	if err != nil {
		return err
	}
	row0, err := sol.Row(0)
	if err != nil {
		return err
	}

	return rec.WriteRow(0, g.TAt(0), row0)
}
