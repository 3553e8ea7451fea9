package grid

// MinSpatialPoints is the smallest N that leaves one interior unknown.
const MinSpatialPoints = 3

// Grid is the immutable space-time lattice of a run. It is shared read-only
// by every time step.
type Grid struct {
	XMax, TMax float64 // domain extents
	Dx, Dt     float64 // requested steps, used by the scheme

	x []float64 // N spatial coordinates, strictly increasing
	t []float64 // M time coordinates, strictly increasing
}

// N returns the number of spatial points.
func (g *Grid) N() int { return len(g.x) }

// M returns the number of time levels.
func (g *Grid) M() int { return len(g.t) }

// Interior returns N−2, the number of unknowns per time level.
func (g *Grid) Interior() int { return len(g.x) - 2 }

// X returns a copy of the spatial coordinates.
func (g *Grid) X() []float64 { return append([]float64(nil), g.x...) }

// T returns a copy of the time coordinates.
func (g *Grid) T() []float64 { return append([]float64(nil), g.t...) }

// XAt returns x_j without copying the axis.
func (g *Grid) XAt(j int) float64 { return g.x[j] }

// TAt returns t_n without copying the axis.
func (g *Grid) TAt(n int) float64 { return g.t[n] }

// SpacingX returns the realized spatial spacing XMax/(N−1).
func (g *Grid) SpacingX() float64 { return g.XMax / float64(len(g.x)-1) }

// SpacingT returns the realized time spacing TMax/(M−1), or 0 when M == 1.
func (g *Grid) SpacingT() float64 {
	if len(g.t) < 2 {
		return 0
	}

	return g.TMax / float64(len(g.t)-1)
}
