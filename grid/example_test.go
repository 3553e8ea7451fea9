package grid_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fracpde/grid"
)

func ExampleBuild() {
	g, err := grid.Build(1, 0.1, 0.5, 0.1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.N(), g.M(), g.X(), g.T())

	_, err = grid.Build(1, 1, 0, 0.1)
	fmt.Println(errors.Is(err, grid.ErrConfiguration))

	// Output:
	// 3 2 [0 0.5 1] [0 0.1]
	// true
}
