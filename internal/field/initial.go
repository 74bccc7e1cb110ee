package field

import (
	"fmt"
	"math"
)

// SquareHat builds the classic step-function initial condition: u = 1
// everywhere except 2 where 0.5 <= x <= 1.0 (both bounds inclusive).
func SquareHat(g Grid) Field {
	f := make(Field, g.N)
	for i := range f {
		x := g.X(i)
		if x >= 0.5 && x <= 1.0 {
			f[i] = 2.0
		} else {
			f[i] = 1.0
		}
	}
	return f
}

// Gaussian builds a smooth pulse centered at 3/8 of the domain, riding on a
// unit background.
func Gaussian(g Grid) Field {
	f := make(Field, g.N)
	center := 0.375 * g.Length
	width := 0.05 * g.Length
	for i := range f {
		x := g.X(i)
		d := (x - center) / width
		f[i] = 1.0 + math.Exp(-d*d)
	}
	return f
}

// Sine builds a single sine period over the domain on a unit background.
func Sine(g Grid) Field {
	f := make(Field, g.N)
	for i := range f {
		f[i] = 1.0 + 0.5*math.Sin(2*math.Pi*g.X(i)/g.Length)
	}
	return f
}

// InitialCondition looks up an initial condition builder by name.
func InitialCondition(name string, g Grid) (Field, error) {
	switch name {
	case "hat", "":
		return SquareHat(g), nil
	case "gaussian":
		return Gaussian(g), nil
	case "sine":
		return Sine(g), nil
	default:
		return nil, fmt.Errorf("unknown initial condition: %s", name)
	}
}
