package stepper_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/fracpde/grid"
	"github.com/katalvlaran/fracpde/kernel"
	"github.com/katalvlaran/fracpde/matrix"
	"github.com/katalvlaran/fracpde/scheme"
	"github.com/katalvlaran/fracpde/solution"
	"github.com/katalvlaran/fracpde/stepper"
)

func mustSetup(xMax, tMax, dx, dt float64) (*grid.Grid, *solution.Solution) {
	g, err := grid.Build(xMax, tMax, dx, dt)
	Expect(err).NotTo(HaveOccurred())
	sol, err := solution.Initialize(g,
		solution.DefaultInitial(), solution.DefaultLeft(), solution.DefaultRight())
	Expect(err).NotTo(HaveOccurred())
	return g, sol
}

func rowOf(sol *solution.Solution, n int) []float64 {
	row, err := sol.Row(n)
	Expect(err).NotTo(HaveOccurred())
	return row
}

// failingLinearizer assembles like FrozenCoefficient until level failAt.
type failingLinearizer struct {
	failAt int
	calls  int
}

func (l *failingLinearizer) Assemble(in scheme.Input) (*scheme.System, error) {
	if l.calls == l.failAt {
		return nil, scheme.ErrInvalidInput
	}
	l.calls++
	return scheme.FrozenCoefficient{}.Assemble(in)
}

var _ = Describe("Stepper", func() {
	Context("smallest grid, alpha = 1, a = 0, c = 1", func() {
		var (
			g   *grid.Grid
			sol *solution.Solution
		)

		BeforeEach(func() {
			g, sol = mustSetup(1, 0.1, 0.5, 0.1)
		})

		It("should solve 14·u = 10 in one step and complete", func() {
			s, err := stepper.New(g, sol, stepper.Params{Alpha: 1, A: 0, C: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.State()).To(Equal(stepper.Ready))
			Expect(s.Weights().K).To(BeNumerically("~", 10, 1e-12))

			out, err := s.Run()
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(stepper.Outcome{State: stepper.Completed, Step: 1}))
			Expect(out.String()).To(Equal("Completed"))

			row0 := rowOf(sol, 0)
			Expect(row0[0]).To(Equal(0.0))
			Expect(row0[1]).To(BeNumerically("~", 1, 1e-15))
			Expect(row0[2]).To(Equal(1.0))

			row1 := rowOf(sol, 1)
			Expect(row1[0]).To(Equal(0.0))
			Expect(row1[1]).To(BeNumerically("~", 10.0/14.0, 1e-12))
			Expect(row1[2]).To(Equal(1.0))
		})

		It("should log the solve residual at debug level", func() {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
			s, err := stepper.New(g, sol, stepper.Params{Alpha: 1, C: 1}, stepper.WithLogger(logger))
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Step()).To(Succeed())
			Expect(logs.String()).To(ContainSubstring("msg=\"solve residual\" step=0 residual="))
		})

		It("should refuse to step after completion", func() {
			s, err := stepper.New(g, sol, stepper.Params{Alpha: 1, C: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Step()).To(Succeed())
			Expect(s.State()).To(Equal(stepper.Completed))
			Expect(s.Step()).To(MatchError(stepper.ErrTerminal))
		})
	})

	Context("state transitions", func() {
		It("should pass through Stepping(n) in increasing order", func() {
			g, sol := mustSetup(1, 0.5, 0.25, 0.125)
			var seen []int
			s, err := stepper.New(g, sol, stepper.Params{Alpha: 0.5, A: 1, C: 1},
				stepper.WithOnStep(func(e stepper.StepEvent) {
					seen = append(seen, e.Step)
					Expect(e.Row).To(Equal(rowOf(sol, e.Step+1)))
					Expect(e.Time).To(Equal(g.TAt(e.Step + 1)))
				}))
			Expect(err).NotTo(HaveOccurred())

			for n := 0; n < g.M()-2; n++ {
				Expect(s.Step()).To(Succeed())
				Expect(s.Outcome()).To(Equal(stepper.Outcome{State: stepper.Stepping, Step: n + 1}))
				Expect(sol.Completed()).To(Equal(n + 2))
			}
			Expect(s.Step()).To(Succeed())
			Expect(s.State()).To(Equal(stepper.Completed))
			Expect(seen).To(Equal([]int{0, 1, 2, 3}))
		})

		It("should keep boundary values for every level", func() {
			g, err := grid.Build(1, 1, 0.1, 0.05)
			Expect(err).NotTo(HaveOccurred())
			left := solution.Linear(0.5, -0.25)
			right := solution.Sine(1, 0.5)
			sol, err := solution.Initialize(g, solution.DefaultInitial(), left, right)
			Expect(err).NotTo(HaveOccurred())

			s, err := stepper.New(g, sol, stepper.Params{Alpha: 0.6, A: 1, C: 1})
			Expect(err).NotTo(HaveOccurred())
			_, err = s.Run()
			Expect(err).NotTo(HaveOccurred())

			t := g.T()
			wantL, wantR := left(t), right(t)
			for n := range t {
				row := rowOf(sol, n)
				Expect(row[0]).To(Equal(wantL[n]))
				Expect(row[g.N()-1]).To(Equal(wantR[n]))
			}
		})

		It("should stop between steps when the context is done", func() {
			g, sol := mustSetup(1, 1, 0.25, 0.1)
			ctx, cancel := context.WithCancel(context.Background())
			steps := 0
			s, err := stepper.New(g, sol, stepper.Params{Alpha: 0.5, C: 1},
				stepper.WithContext(ctx),
				stepper.WithOnStep(func(stepper.StepEvent) {
					steps++
					if steps == 3 {
						cancel()
					}
				}))
			Expect(err).NotTo(HaveOccurred())

			out, err := s.Run()
			Expect(err).To(MatchError(context.Canceled))
			Expect(out).To(Equal(stepper.Outcome{State: stepper.Stepping, Step: 3}))
			Expect(sol.Completed()).To(Equal(4))
		})
	})

	Context("solver failure", func() {
		var mockCtrl *gomock.Controller

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should abort at the failing step and keep earlier rows", func() {
			const failAt = 2
			params := stepper.Params{Alpha: 0.7, A: 1, C: 1}

			// Reference run with the real solver.
			gRef, solRef := mustSetup(1, 0.6, 0.2, 0.1)
			ref, err := stepper.New(gRef, solRef, params)
			Expect(err).NotTo(HaveOccurred())
			_, err = ref.Run()
			Expect(err).NotTo(HaveOccurred())

			solver := NewMockTridiagonalSolver(mockCtrl)
			lapack := matrix.LapackSolver{}
			gomock.InOrder(
				solver.EXPECT().
					SolveTridiagonal(gomock.Any(), gomock.Any()).
					DoAndReturn(lapack.SolveTridiagonal).
					Times(failAt),
				solver.EXPECT().
					SolveTridiagonal(gomock.Any(), gomock.Any()).
					Return(nil, matrix.ErrSingular),
			)

			var aborted []int
			g, sol := mustSetup(1, 0.6, 0.2, 0.1)
			s, err := stepper.New(g, sol, params,
				stepper.WithSolver(solver),
				stepper.WithOnAbort(func(step int, _ error) { aborted = append(aborted, step) }))
			Expect(err).NotTo(HaveOccurred())

			out, err := s.Run()
			Expect(out).To(Equal(stepper.Outcome{State: stepper.Aborted, Step: failAt}))
			Expect(out.String()).To(Equal("Aborted(2)"))
			Expect(errors.Is(err, stepper.ErrNumerical)).To(BeTrue())
			Expect(errors.Is(err, matrix.ErrSingular)).To(BeTrue())

			var stepErr *stepper.StepError
			Expect(errors.As(err, &stepErr)).To(BeTrue())
			Expect(stepErr.Step).To(Equal(failAt))
			Expect(aborted).To(Equal([]int{failAt}))
			Expect(s.Step()).To(MatchError(stepper.ErrTerminal))

			for n := 0; n <= failAt; n++ {
				Expect(rowOf(sol, n)).To(Equal(rowOf(solRef, n)))
			}
			for n := failAt + 1; n < g.M(); n++ {
				row := rowOf(sol, n)
				Expect(row[1 : g.N()-1]).To(HaveEach(0.0))
				Expect(row[0]).To(Equal(0.0))
				Expect(row[g.N()-1]).To(Equal(1.0))
			}
			Expect(sol.Completed()).To(Equal(failAt + 1))
		})
	})

	Context("failures outside the linear solve", func() {
		It("should return assembler errors without aborting", func() {
			g, sol := mustSetup(1, 0.6, 0.2, 0.1)
			var aborted []int
			s, err := stepper.New(g, sol, stepper.Params{Alpha: 0.7, A: 1, C: 1},
				stepper.WithLinearizer(&failingLinearizer{failAt: 2}),
				stepper.WithOnAbort(func(step int, _ error) { aborted = append(aborted, step) }))
			Expect(err).NotTo(HaveOccurred())

			out, err := s.Run()
			Expect(err).To(MatchError(scheme.ErrInvalidInput))
			Expect(errors.Is(err, grid.ErrConfiguration)).To(BeTrue())
			Expect(errors.Is(err, stepper.ErrNumerical)).To(BeFalse())
			var stepErr *stepper.StepError
			Expect(errors.As(err, &stepErr)).To(BeFalse())

			Expect(out).To(Equal(stepper.Outcome{State: stepper.Stepping, Step: 2}))
			Expect(s.Err()).To(BeNil())
			Expect(aborted).To(BeEmpty())
			Expect(sol.Completed()).To(Equal(3))
		})

		It("should abort when the solver returns a non-finite solution", func() {
			ctrl := gomock.NewController(GinkgoT())
			solver := NewMockTridiagonalSolver(ctrl)
			solver.EXPECT().
				SolveTridiagonal(gomock.Any(), gomock.Any()).
				Return([]float64{math.NaN()}, nil)

			g, sol := mustSetup(1, 0.1, 0.5, 0.1)
			s, err := stepper.New(g, sol, stepper.Params{Alpha: 1, C: 1}, stepper.WithSolver(solver))
			Expect(err).NotTo(HaveOccurred())

			out, err := s.Run()
			Expect(out).To(Equal(stepper.Outcome{State: stepper.Aborted, Step: 0}))
			Expect(errors.Is(err, stepper.ErrNumerical)).To(BeTrue())
			Expect(errors.Is(err, matrix.ErrNaNInf)).To(BeTrue())
			Expect(errors.Is(err, grid.ErrConfiguration)).To(BeFalse())
		})
	})

	Context("strategies", func() {
		It("should agree across accumulators and solvers", func() {
			params := stepper.Params{Alpha: 0.35, A: 0.8, C: 1.2}
			variants := [][]stepper.Option{
				nil,
				{stepper.WithAccumulator(kernel.Parallel{Workers: 3, MinChunk: 2})},
				{stepper.WithSolver(matrix.ThomasSolver{})},
			}
			var baseline matrix.Matrix
			for i, opts := range variants {
				g, sol := mustSetup(1, 0.5, 0.05, 0.05)
				s, err := stepper.New(g, sol, params, opts...)
				Expect(err).NotTo(HaveOccurred())
				_, err = s.Run()
				Expect(err).NotTo(HaveOccurred())

				if i == 0 {
					baseline = sol.Matrix()
					continue
				}
				ok, err := matrix.AllClose(sol.Matrix(), baseline, 0, 1e-10)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue(), "variant %d diverged", i)
			}
		})
	})

	Context("configuration errors", func() {
		It("should reject invalid inputs before stepping", func() {
			g, sol := mustSetup(1, 0.5, 0.25, 0.1)

			_, err := stepper.New(nil, sol, stepper.Params{Alpha: 0.5})
			Expect(err).To(MatchError(stepper.ErrNilInput))

			_, err = stepper.New(g, sol, stepper.Params{Alpha: 0})
			Expect(err).To(MatchError(kernel.ErrInvalidOrder))
			Expect(errors.Is(err, grid.ErrConfiguration)).To(BeTrue())

			_, err = stepper.New(g, sol, stepper.Params{Alpha: 0.5}, stepper.WithSolver(nil))
			Expect(err).To(MatchError(stepper.ErrOptionViolation))

			_, err = stepper.New(g, sol, stepper.Params{Alpha: 0.5, A: math.NaN()})
			Expect(err).To(MatchError(stepper.ErrInvalidParams))

			other, _ := mustSetup(1, 0.5, 0.25, 0.1)
			_, err = stepper.New(other, sol, stepper.Params{Alpha: 0.5})
			Expect(err).To(MatchError(stepper.ErrGridMismatch))
		})
	})
})
