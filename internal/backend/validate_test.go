package backend_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/periodica/orbsim/internal/backend"
	"github.com/periodica/orbsim/internal/geom"
	"github.com/periodica/orbsim/internal/special"
)

type absentMathLib struct{ special.Backend }

func (absentMathLib) Available() bool { return false }
func (absentMathLib) Name() string    { return "absent math library" }

type absentVecLib struct{ geom.Backend }

func (absentVecLib) Available() bool { return false }
func (absentVecLib) Name() string    { return "absent vector library" }

// skewedMathLib answers factorials with a small bias so the battery has
// something to catch.
type skewedMathLib struct{ special.Backend }

func (skewedMathLib) Available() bool { return true }
func (skewedMathLib) Name() string    { return "skewed math library" }

func (s skewedMathLib) Factorial(n int) (float64, error) {
	v, err := s.Backend.Factorial(n)
	return v + 1e-3, err
}

var _ = Describe("Registry validation", func() {
	var reg *backend.Registry

	libraryPresent := func(rep *backend.Report) {
		GinkgoHelper()
		if !rep.LibraryAvailable {
			Skip("library implementation excluded from this build")
		}
	}

	BeforeEach(func() {
		reg = backend.New()
	})

	It("passes the full battery at 1e-8", func() {
		rep := reg.Validate(1e-8)
		libraryPresent(rep)
		Expect(rep.AllPassed()).To(BeTrue(), "failed families: %v", rep.Failed())
	})

	It("reports every function family with tests and no evaluation errors", func() {
		rep := reg.Validate(1e-8)
		libraryPresent(rep)

		names := make(map[string]bool, len(rep.Functions))
		for _, f := range rep.Functions {
			names[f.Name] = true
			Expect(f.Tests).To(BeNumerically(">", 0), f.Name)
			Expect(f.Errors).To(BeZero(), f.Name)
			Expect(f.MaxRelError).To(BeNumerically("<=", rep.Tolerance), f.Name)
		}
		for _, want := range []string{
			"factorial", "double_factorial", "binomial", "gamma_half",
			"laguerre", "assoc_legendre", "spherical_harmonic",
			"spherical_harmonic_real", "vector_ops", "rotation_matrices",
			"axis_angle", "euler_angles", "matrix_ops", "orthogonality",
		} {
			Expect(names).To(HaveKey(want))
		}
	})

	It("leaves the live selection untouched", func() {
		Expect(reg.Select(backend.SubsystemMath, backend.ImplSelfContained)).To(Succeed())
		before := reg.Current(backend.SubsystemVector)

		_ = reg.Validate(1e-8)

		Expect(reg.Current(backend.SubsystemMath)).To(Equal(backend.ImplSelfContained))
		Expect(reg.Current(backend.SubsystemVector)).To(Equal(before))
	})

	It("reports an excluded library without running comparisons", func() {
		absent := backend.NewWithBackends(backend.Backends{
			MathLibrary: absentMathLib{special.NewPureBackend()},
			MathPure:    special.NewPureBackend(),
			VecLibrary:  absentVecLib{geom.NewPureBackend()},
			VecPure:     geom.NewPureBackend(),
		})

		rep := absent.Validate(1e-8)
		Expect(rep.LibraryAvailable).To(BeFalse())
		Expect(rep.Functions).To(BeEmpty())
		Expect(rep.AllPassed()).To(BeTrue())
	})

	It("catches a biased implementation", func() {
		if !special.NewGonumBackend().Available() {
			Skip("library implementation excluded from this build")
		}
		biased := backend.NewWithBackends(backend.Backends{
			MathLibrary: skewedMathLib{special.NewGonumBackend()},
			MathPure:    special.NewPureBackend(),
			VecLibrary:  geom.NewGonumBackend(),
			VecPure:     geom.NewPureBackend(),
		})

		rep := biased.Validate(1e-8)
		Expect(rep.AllPassed()).To(BeFalse())

		failed := rep.Failed()
		Expect(failed).NotTo(BeEmpty())
		Expect(failed[0].Name).To(Equal("factorial"))
	})
})
