package metrics

import (
	"math"

	"github.com/san-kum/convect1d/internal/convect"
	"github.com/san-kum/convect1d/internal/field"
)

// Mass tracks dx * sum(u), the discrete integral of the field. The wrap
// boundary conserves it exactly; the clamp boundary leaks mass through the
// left edge.
type Mass struct {
	name string
	dx   float64
	last float64
}

func NewMass(dx float64) *Mass {
	return &Mass{name: "mass", dx: dx}
}

func (m *Mass) Name() string { return m.name }

func (m *Mass) Observe(u field.Field, step int, t float64) {
	m.last = m.dx * u.Sum()
}

func (m *Mass) Value() float64 { return m.last }

func (m *Mass) Reset() { m.last = 0 }

// MassDrift tracks the largest relative change of the discrete integral
// against its initial value.
type MassDrift struct {
	name     string
	dx       float64
	initial  float64
	maxDrift float64
	samples  int
}

func NewMassDrift(dx float64) *MassDrift {
	return &MassDrift{name: "mass_drift", dx: dx}
}

func (m *MassDrift) Name() string { return m.name }

func (m *MassDrift) Observe(u field.Field, step int, t float64) {
	mass := m.dx * u.Sum()
	if m.samples == 0 {
		m.initial = mass
	}
	m.samples++
	if m.initial != 0 {
		drift := math.Abs(mass-m.initial) / math.Abs(m.initial)
		m.maxDrift = math.Max(m.maxDrift, drift)
	}
}

func (m *MassDrift) Value() float64 { return m.maxDrift }

func (m *MassDrift) Reset() {
	m.initial = 0
	m.maxDrift = 0
	m.samples = 0
}

// Extremum tracks the global minimum or maximum sample seen over a run,
// which exposes over- and undershoot of the scheme.
type Extremum struct {
	name    string
	max     bool
	value   float64
	samples int
}

func NewMin() *Extremum { return &Extremum{name: "min"} }
func NewMax() *Extremum { return &Extremum{name: "max", max: true} }

func (e *Extremum) Name() string { return e.name }

func (e *Extremum) Observe(u field.Field, step int, t float64) {
	if len(u) == 0 {
		return
	}
	v := u.Min()
	if e.max {
		v = u.Max()
	}
	if e.samples == 0 {
		e.value = v
	} else if e.max && v > e.value {
		e.value = v
	} else if !e.max && v < e.value {
		e.value = v
	}
	e.samples++
}

func (e *Extremum) Value() float64 { return e.value }

func (e *Extremum) Reset() {
	e.value = 0
	e.samples = 0
}

// TotalVariation tracks the final sum of |u[i+1]-u[i]|. For the upwind
// scheme under a stable Courant number this never grows; growth signals an
// unstable configuration.
type TotalVariation struct {
	name string
	last float64
}

func NewTotalVariation() *TotalVariation {
	return &TotalVariation{name: "total_variation"}
}

func (tv *TotalVariation) Name() string { return tv.name }

func (tv *TotalVariation) Observe(u field.Field, step int, t float64) {
	tv.last = u.TotalVariation()
}

func (tv *TotalVariation) Value() float64 { return tv.last }

func (tv *TotalVariation) Reset() { tv.last = 0 }

// Default returns the standard metric set for a run.
func Default(dx float64) []convect.Metric {
	return []convect.Metric{
		NewMass(dx),
		NewMassDrift(dx),
		NewMin(),
		NewMax(),
		NewTotalVariation(),
	}
}
