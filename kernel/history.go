package kernel

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// History gives read-only access to completed time levels U[n, :].
type History interface {
	Level(n int) []float64
}

// Accumulator computes the history sum for step n (advancing to n+1) into
// dst, which has one entry per interior point. Implementations must produce
// the same values as Direct within floating-point tolerance.
type Accumulator interface {
	Accumulate(h History, b []float64, n int, dst []float64) error
}

// Compile-time checks.
var (
	_ Accumulator = Direct{}
	_ Accumulator = Parallel{}
)

// Direct sums all past increments point by point, in increasing k.
// Complexity: O(n·len(dst)) per call.
type Direct struct{}

// Accumulate implements Accumulator.
func (Direct) Accumulate(h History, b []float64, n int, dst []float64) error {
	if err := checkArgs(h, b, n, dst); err != nil {
		return err
	}

	return accumulateRange(h, b, n, 0, len(dst), dst)
}

// Parallel splits the interior range into contiguous chunks, one goroutine
// each. Every point sees exactly the arithmetic of Direct.
type Parallel struct {
	Workers  int // 0 → GOMAXPROCS
	MinChunk int // smallest chunk worth a goroutine; 0 → 256
}

// defaultMinChunk keeps goroutine overhead below the per-chunk work.
const defaultMinChunk = 256

// Accumulate implements Accumulator.
func (p Parallel) Accumulate(h History, b []float64, n int, dst []float64) error {
	if p.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", p.Workers, ErrInvalidWorkers)
	}
	if err := checkArgs(h, b, n, dst); err != nil {
		return err
	}

	workers := p.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	minChunk := p.MinChunk
	if minChunk <= 0 {
		minChunk = defaultMinChunk
	}
	size := len(dst)
	chunk := (size + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}
	if chunk >= size {
		return accumulateRange(h, b, n, 0, size, dst)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < size; lo += chunk {
		lo, hi := lo, min(lo+chunk, size)
		g.Go(func() error {
			return accumulateRange(h, b, n, lo, hi, dst[lo:hi])
		})
	}

	return g.Wait()
}

// checkArgs validates the shared preconditions of every accumulator.
func checkArgs(h History, b []float64, n int, dst []float64) error {
	if n < 0 || n >= len(b) {
		return fmt.Errorf("n=%d, len(b)=%d: %w", n, len(b), ErrShortWeights)
	}
	if n > 0 && len(h.Level(0)) != len(dst)+2 {
		return fmt.Errorf("level has %d points, dst %d: %w", len(h.Level(0)), len(dst), ErrHistoryShape)
	}

	return nil
}

// accumulateRange writes the history sum for interior indices [lo, hi) into
// out (len hi−lo). Interior index i maps to column i+1 of a level.
func accumulateRange(h History, b []float64, n, lo, hi int, out []float64) error {
	for i := range out {
		out[i] = 0
	}
	if n == 0 {
		return nil
	}

	diff := make([]float64, hi-lo)
	for k := 1; k <= n; k++ {
		newer := h.Level(n + 1 - k)
		older := h.Level(n - k)
		floats.SubTo(diff, newer[lo+1:hi+1], older[lo+1:hi+1])
		floats.AddScaled(out, b[k], diff)
	}

	return nil
}
