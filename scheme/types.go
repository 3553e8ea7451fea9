package scheme

import "github.com/katalvlaran/fracpde/matrix"

// Coefficients are the scalar inputs of the spatial operator.
type Coefficients struct {
	A  float64 // advection
	C  float64 // diffusion
	Dx float64 // spatial step
	K  float64 // fractional scaling constant
}

// Input is everything the assembler needs for one step.
type Input struct {
	Coefficients

	Current   []float64 // U[n, :], length N
	History   []float64 // history sum, length N−2
	LeftNext  float64   // U[n+1, 0]
	RightNext float64   // U[n+1, N−1]
}

// System is the assembled tridiagonal system for the interior unknowns.
// Sub, Main, Super and RHS all have length N−2; Sub[0] and Super[N−3] are
// the coefficients already folded into RHS and are not part of the band.
type System struct {
	Sub   []float64 // A_j
	Main  []float64 // B_j
	Super []float64 // C_j
	RHS   []float64 // R_j after boundary folding
}

// Band returns the matrix bands (Sub[1:], Main, Super[:n−1]) without copying.
func (s *System) Band() *matrix.Tridiagonal {
	n := len(s.Main)

	return &matrix.Tridiagonal{
		Lower: s.Sub[1:n:n],
		Main:  s.Main,
		Upper: s.Super[: n-1 : n-1],
	}
}

// Linearizer builds the system for one step. Implementations must be pure.
type Linearizer interface {
	Assemble(in Input) (*System, error)
}
