package field

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Field holds the sampled values of u(x) on a uniform 1-D grid.
type Field []float64

func (f Field) Clone() Field {
	c := make(Field, len(f))
	copy(c, f)
	return c
}

func (f Field) IsFinite() bool {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (f Field) Min() float64 {
	if len(f) == 0 {
		return 0
	}
	return floats.Min(f)
}

func (f Field) Max() float64 {
	if len(f) == 0 {
		return 0
	}
	return floats.Max(f)
}

// Sum returns the plain sum of all samples.
func (f Field) Sum() float64 {
	return floats.Sum(f)
}

// TotalVariation returns the sum of |u[i+1]-u[i]| over the field.
func (f Field) TotalVariation() float64 {
	tv := 0.0
	for i := 1; i < len(f); i++ {
		tv += math.Abs(f[i] - f[i-1])
	}
	return tv
}

// Equal reports whether two fields are bit-identical.
func (f Field) Equal(other Field) bool {
	if len(f) != len(other) {
		return false
	}
	return floats.Equal(f, other)
}
