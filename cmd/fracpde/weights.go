package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fracpde/config"
	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/kernel"
)

func newWeightsCmd(rf *rootFlags) *cobra.Command {
	var (
		alpha, dt float64
		levels    int
	)
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Print the L1 memory-kernel constant K and weights b[k]",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rf.configPath, rf.envFile)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("alpha") {
				alpha = cfg.Equation.Alpha
			}
			if !cmd.Flags().Changed("dt") {
				dt = cfg.Domain.Dt
			}
			if !cmd.Flags().Changed("levels") {
				g, err := grid.Build(cfg.Domain.XMax, cfg.Domain.TMax, cfg.Domain.Dx, dt)
				if err != nil {
					return err
				}
				levels = g.M()
			}

			w, err := kernel.Precompute(alpha, dt, levels)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderWeights(w))

			return nil
		},
	}

	d := config.Default()
	cmd.Flags().Float64Var(&alpha, "alpha", d.Equation.Alpha, "fractional order in (0, 1]")
	cmd.Flags().Float64Var(&dt, "dt", d.Domain.Dt, "time step")
	cmd.Flags().IntVar(&levels, "levels", 0, "number of time levels M (default from t_max/dt)")

	return cmd
}

func renderWeights(w *kernel.Weights) string {
	format := func(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

	rows := make([][]string, 0, w.Levels())
	for k, b := range w.B {
		rows = append(rows, []string{strconv.Itoa(k), format(b), format(w.TelescopedSum(k))})
	}
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		Headers("k", "b[k]", "Σ b[0..k]").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return fmt.Sprintf("α = %g, dt = %g, K = %s\n%s", w.Alpha, w.Dt, format(w.K), t.Render())
}
