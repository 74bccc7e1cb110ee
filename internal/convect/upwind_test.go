package convect_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/convect1d/internal/convect"
	"github.com/san-kum/convect1d/internal/field"
)

var _ = Describe("upwind scheme", func() {
	grid := field.Grid{N: 81, Length: 2.0}

	It("preserves the field length", func() {
		u0 := field.SquareHat(grid)
		got, err := convect.Advance(u0, grid.Dx(), 0.02, 1.0, 50)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(HaveLen(len(u0)))
	})

	It("is deterministic", func() {
		u0 := field.Gaussian(grid)
		a, err := convect.Advance(u0, grid.Dx(), 0.02, 1.0, 40)
		Expect(err).NotTo(HaveOccurred())
		b, err := convect.Advance(u0, grid.Dx(), 0.02, 1.0, 40)
		Expect(err).NotTo(HaveOccurred())
		Expect([]float64(a)).To(Equal([]float64(b)))
	})

	It("is linear in the field values", func() {
		u := field.SquareHat(grid)
		v := field.Sine(grid)

		combined := make(field.Field, grid.N)
		for i := range combined {
			combined[i] = 2*u[i] + 3*v[i]
		}

		au, err := convect.Advance(u, grid.Dx(), 0.0125, 1.0, 30)
		Expect(err).NotTo(HaveOccurred())
		av, err := convect.Advance(v, grid.Dx(), 0.0125, 1.0, 30)
		Expect(err).NotTo(HaveOccurred())
		ac, err := convect.Advance(combined, grid.Dx(), 0.0125, 1.0, 30)
		Expect(err).NotTo(HaveOccurred())

		for i := range ac {
			Expect(ac[i]).To(BeNumerically("~", 2*au[i]+3*av[i], 1e-10))
		}
	})

	Describe("the reference case", func() {
		// N=81 over [0,2] with dt=0.025 and c=1 puts the Courant number at
		// exactly 1, so the update degenerates to u_new[i] = u_old[i-1]:
		// each step shifts the field right by one grid point.
		It("translates the step profile 25 points to the right", func() {
			u0 := field.SquareHat(grid)
			got, err := convect.Advance(u0, grid.Dx(), 0.025, 1.0, 25)
			Expect(err).NotTo(HaveOccurred())

			want := make(field.Field, grid.N)
			for i := range want {
				want[i] = u0[((i-25)%grid.N+grid.N)%grid.N]
			}
			Expect([]float64(got)).To(Equal([]float64(want)))
		})
	})

	Describe("at Courant numbers below 1", func() {
		It("keeps the field within the initial bounds and smears the step", func() {
			u0 := field.SquareHat(grid)
			got, err := convect.Advance(u0, grid.Dx(), 0.0125, 1.0, 50)
			Expect(err).NotTo(HaveOccurred())

			Expect(got.Min()).To(BeNumerically(">=", 1.0-1e-12))
			Expect(got.Max()).To(BeNumerically("<=", 2.0+1e-12))

			// First-order diffusion rounds off the jump: strictly interior
			// values must appear.
			interior := 0
			for _, v := range got {
				if v > 1.01 && v < 1.99 {
					interior++
				}
			}
			Expect(interior).To(BeNumerically(">", 2))
		})

		It("does not increase total variation", func() {
			u0 := field.SquareHat(grid)
			got, err := convect.Advance(u0, grid.Dx(), 0.0125, 1.0, 50)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.TotalVariation()).To(BeNumerically("<=", u0.TotalVariation()+1e-12))
		})
	})

	Describe("boundary modes", func() {
		It("wrap conserves the discrete integral", func() {
			u0 := field.SquareHat(grid)
			s := convect.New(convect.Wrap)
			cfg := convect.Config{Dx: grid.Dx(), Dt: 0.0125, C: 1, Steps: 80}

			result, err := s.Run(context.Background(), u0, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Final.Sum()).To(BeNumerically("~", u0.Sum(), 1e-9))
		})

		It("clamp holds the first point fixed", func() {
			u0 := field.Field{5, 1, 1, 1, 9}
			s := convect.New(convect.Clamp)
			cfg := convect.Config{Dx: 0.5, Dt: 0.25, C: 1, Steps: 12}

			result, err := s.Run(context.Background(), u0, cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Final[0]).To(Equal(5.0))
		})
	})
})
