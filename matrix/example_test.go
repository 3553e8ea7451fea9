package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fracpde/matrix"
)

// ExampleLapackSolver solves a 3×3 tridiagonal system.
func ExampleLapackSolver() {
	tri, err := matrix.NewTridiagonal(
		[]float64{-1, -1},  // sub-diagonal
		[]float64{2, 2, 2}, // main diagonal
		[]float64{-1, -1},  // super-diagonal
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	x, err := matrix.LapackSolver{}.SolveTridiagonal(tri, []float64{1, 0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", x)

	// Output:
	// [1.000 1.000 1.000]
}

// ExampleThomasSolver shows the zero-pivot failure mode.
func ExampleThomasSolver() {
	tri, _ := matrix.NewTridiagonal([]float64{1}, []float64{0, 1}, []float64{1})
	_, err := matrix.ThomasSolver{}.SolveTridiagonal(tri, []float64{1, 2})
	fmt.Println(err)

	// Output:
	// Thomas: pivot 0: matrix: singular matrix
}
