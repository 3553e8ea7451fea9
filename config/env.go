package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FRACPDE_"

// environment returns FRACPDE_* variables from envFile overlaid with the
// process environment.
func environment(envFile string) (map[string]string, error) {
	env := make(map[string]string)
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("%w: read %s: %v", ErrInvalid, envFile, err)
		default:
			for k, v := range vals {
				if strings.HasPrefix(k, EnvPrefix) {
					env[k] = v
				}
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}

	return env, nil
}

func (c *Config) applyEnv(env map[string]string) error {
	floats := map[string]*float64{
		"X_MAX": &c.Domain.XMax,
		"T_MAX": &c.Domain.TMax,
		"DX":    &c.Domain.Dx,
		"DT":    &c.Domain.Dt,
		"ALPHA": &c.Equation.Alpha,
		"A":     &c.Equation.A,
		"C":     &c.Equation.C,
	}
	for name, dst := range floats {
		v, ok := env[EnvPrefix+name]
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, name, v)
		}
		*dst = f
	}

	strs := map[string]*string{
		"SOLVER":  &c.Solver.Banded,
		"HISTORY": &c.Solver.History,
		"SQLITE":  &c.Output.SQLite,
		"CSV":     &c.Output.CSV,
		"METRICS": &c.Output.Metrics,
	}
	for name, dst := range strs {
		if v, ok := env[EnvPrefix+name]; ok && v != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	if v := env[EnvPrefix+"WORKERS"]; v != "" {
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sWORKERS=%q", ErrInvalid, EnvPrefix, v)
		}
		c.Solver.Workers = i
	}
	if v := env[EnvPrefix+"TABLE"]; v != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sTABLE=%q", ErrInvalid, EnvPrefix, v)
		}
		c.Output.Table = b
	}

	return nil
}
