package field

// Grid describes a uniform 1-D spatial grid of N points spanning [0, Length].
type Grid struct {
	N      int
	Length float64
}

// Dx returns the spacing between adjacent grid points. A single-point grid
// has no meaningful spacing; Length is returned so callers still get a
// positive value to feed the stepper.
func (g Grid) Dx() float64 {
	if g.N < 2 {
		return g.Length
	}
	return g.Length / float64(g.N-1)
}

// X returns the coordinate of grid point i.
func (g Grid) X(i int) float64 {
	return float64(i) * g.Dx()
}
