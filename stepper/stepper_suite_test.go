package stepper_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

//go:generate mockgen -destination "mock_matrix_test.go" -package $GOPACKAGE -write_package_comment=false github.com/katalvlaran/fracpde/matrix TridiagonalSolver

func TestStepper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Stepper Suite")
}
