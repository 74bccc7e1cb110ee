package convect

import (
	"context"
	"fmt"

	"github.com/san-kum/convect1d/internal/field"
)

// Boundary selects how the left neighbor of grid point 0 is resolved.
type Boundary int

const (
	// Wrap reads the last grid point, making the domain effectively periodic.
	Wrap Boundary = iota
	// Clamp holds the first grid point fixed at its previous value.
	Clamp
)

func (b Boundary) String() string {
	switch b {
	case Clamp:
		return "clamp"
	default:
		return "wrap"
	}
}

// ParseBoundary resolves a boundary mode name. The empty string means Wrap.
func ParseBoundary(name string) (Boundary, error) {
	switch name {
	case "wrap", "":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	default:
		return Wrap, fmt.Errorf("%w: %s", ErrUnknownBoundary, name)
	}
}

// Config holds the discretization parameters for a run.
type Config struct {
	Dx    float64
	Dt    float64
	C     float64
	Steps int
	// SnapshotEvery records the field into the result every k steps.
	// Zero records only the initial and final fields.
	SnapshotEvery int
}

// Validate fails fast on parameters the scheme cannot run with.
func (c Config) Validate() error {
	if c.Dx <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidSpacing, c.Dx)
	}
	if c.Dt <= 0 {
		return fmt.Errorf("%w: got %g", ErrInvalidTimestep, c.Dt)
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSteps, c.Steps)
	}
	return nil
}

// Courant returns the Courant number c*dt/dx for this configuration.
func (c Config) Courant() float64 {
	return Courant(c.C, c.Dt, c.Dx)
}

// Courant returns the dimensionless ratio c*dt/dx governing stability of the
// explicit scheme.
func Courant(c, dt, dx float64) float64 {
	return c * dt / dx
}

// Metric accumulates a scalar diagnostic over the steps of a run.
type Metric interface {
	Name() string
	Observe(u field.Field, step int, t float64)
	Value() float64
	Reset()
}

// Observer is notified with the field after every completed step.
type Observer interface {
	OnStep(u field.Field, step int, t float64)
}

// Result collects the recorded snapshots of a run.
type Result struct {
	// Snapshots always contains the initial field first and, after at least
	// one step, the final field last; intermediate entries follow
	// Config.SnapshotEvery.
	Snapshots []field.Field
	Times     []float64
	Final     field.Field
	Metrics   map[string]float64
}

// Stepper drives the upwind update over a sequence of timesteps.
type Stepper struct {
	boundary  Boundary
	metrics   []Metric
	observers []Observer
}

func New(boundary Boundary) *Stepper {
	return &Stepper{boundary: boundary}
}

func (s *Stepper) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Stepper) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Step applies a single upwind update of src into dst under the stepper's
// boundary mode. nu is the Courant number c*dt/dx. dst and src must have the
// same length and must not alias; callers own the buffer swap.
func (s *Stepper) Step(dst, src field.Field, nu float64) {
	step(dst, src, nu, s.boundary)
}

// Run advances u0 by cfg.Steps timesteps and returns the recorded result.
// u0 is not mutated; the update double-buffers so every step reads only the
// previous step's complete snapshot.
func (s *Stepper) Run(ctx context.Context, u0 field.Field, cfg Config) (*Result, error) {
	if len(u0) == 0 {
		return nil, ErrEmptyField
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Snapshots: make([]field.Field, 0, snapshotCap(cfg)),
		Times:     make([]float64, 0, snapshotCap(cfg)),
		Metrics:   make(map[string]float64),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	cur := u0.Clone()
	next := make(field.Field, len(u0))
	nu := cfg.Courant()

	result.Snapshots = append(result.Snapshots, cur.Clone())
	result.Times = append(result.Times, 0)

	for _, m := range s.metrics {
		m.Observe(cur, 0, 0)
	}

	for n := 1; n <= cfg.Steps; n++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		step(next, cur, nu, s.boundary)
		cur, next = next, cur
		t := float64(n) * cfg.Dt

		for _, m := range s.metrics {
			m.Observe(cur, n, t)
		}
		for _, obs := range s.observers {
			obs.OnStep(cur, n, t)
		}

		if n == cfg.Steps || (cfg.SnapshotEvery > 0 && n%cfg.SnapshotEvery == 0) {
			result.Snapshots = append(result.Snapshots, cur.Clone())
			result.Times = append(result.Times, t)
		}
	}

	result.Final = cur.Clone()

	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// Advance is the plain functional form of the solver: u0 advanced by steps
// timesteps under the Wrap boundary. It allocates its own buffers and never
// mutates u0.
func Advance(u0 field.Field, dx, dt, c float64, steps int) (field.Field, error) {
	if len(u0) == 0 {
		return nil, ErrEmptyField
	}
	cfg := Config{Dx: dx, Dt: dt, C: c, Steps: steps}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cur := u0.Clone()
	if steps == 0 {
		return cur, nil
	}
	next := make(field.Field, len(u0))
	nu := cfg.Courant()
	for n := 0; n < steps; n++ {
		step(next, cur, nu, Wrap)
		cur, next = next, cur
	}
	return cur, nil
}

// step writes one upwind update of src into dst. dst and src must have the
// same length and must not alias. A wrap update at i=0 reads src[n-1], so a
// single-point domain is a fixed point under either boundary.
func step(dst, src field.Field, nu float64, b Boundary) {
	n := len(src)
	switch b {
	case Clamp:
		dst[0] = src[0]
	default:
		dst[0] = src[0] - nu*(src[0]-src[n-1])
	}
	for i := 1; i < n; i++ {
		dst[i] = src[i] - nu*(src[i]-src[i-1])
	}
}

func snapshotCap(cfg Config) int {
	if cfg.SnapshotEvery <= 0 {
		return 2
	}
	return cfg.Steps/cfg.SnapshotEvery + 2
}
