package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	envFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	rf := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "fracpde",
		Short: "Solve the time-fractional advection-diffusion equation",
		Long: `fracpde solves D_t^α u + a·u·u_x = c·u_xx on a uniform grid with the
L1 Caputo scheme and a semi-implicit tridiagonal step.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&rf.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&rf.envFile, "env-file", ".env", "dotenv file with FRACPDE_* overrides (ignored if missing)")
	pf.StringVar(&rf.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	cmd.AddCommand(newRunCmd(rf), newWeightsCmd(rf), newVersionCmd())

	return cmd
}

// logger builds the stderr text logger for the selected level.
func (rf *rootFlags) logger() (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(rf.logLevel))); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
