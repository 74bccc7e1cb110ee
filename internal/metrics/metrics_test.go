package metrics

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/convect1d/internal/convect"
	"github.com/san-kum/convect1d/internal/field"
)

func TestMass(t *testing.T) {
	m := NewMass(0.5)
	m.Observe(field.Field{1, 2, 3}, 0, 0)

	if m.Value() != 3.0 {
		t.Errorf("expected mass 3.0, got %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("reset should clear the value")
	}
}

func TestMassDriftConservedUnderWrap(t *testing.T) {
	g := field.Grid{N: 41, Length: 2.0}
	u0 := field.SquareHat(g)

	s := convect.New(convect.Wrap)
	drift := NewMassDrift(g.Dx())
	s.AddMetric(drift)

	cfg := convect.Config{Dx: g.Dx(), Dt: 0.02, C: 1, Steps: 60}
	if _, err := s.Run(context.Background(), u0, cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if drift.Value() > 1e-12 {
		t.Errorf("wrap boundary should conserve mass, drift %g", drift.Value())
	}
}

func TestMassDriftLeaksUnderClamp(t *testing.T) {
	// A profile with a gradient at the left edge loses mass when clamped.
	u0 := field.Field{2, 1, 1, 1, 1}

	s := convect.New(convect.Clamp)
	drift := NewMassDrift(0.5)
	s.AddMetric(drift)

	cfg := convect.Config{Dx: 0.5, Dt: 0.25, C: 1, Steps: 20}
	if _, err := s.Run(context.Background(), u0, cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if drift.Value() == 0 {
		t.Error("clamp boundary should not conserve mass for this profile")
	}
}

func TestExtremum(t *testing.T) {
	minM, maxM := NewMin(), NewMax()

	for _, u := range []field.Field{{1, 2}, {0.5, 1.5}, {1, 3}} {
		minM.Observe(u, 0, 0)
		maxM.Observe(u, 0, 0)
	}

	if minM.Value() != 0.5 {
		t.Errorf("expected global min 0.5, got %f", minM.Value())
	}
	if maxM.Value() != 3 {
		t.Errorf("expected global max 3, got %f", maxM.Value())
	}
}

func TestTotalVariation(t *testing.T) {
	tv := NewTotalVariation()
	tv.Observe(field.Field{1, 2, 1}, 0, 0)
	tv.Observe(field.Field{1, 1, 1}, 1, 0.1)

	if tv.Value() != 0 {
		t.Errorf("expected final total variation 0, got %f", tv.Value())
	}
}

func TestDefaultSet(t *testing.T) {
	set := Default(0.025)
	if len(set) != 5 {
		t.Fatalf("expected 5 metrics, got %d", len(set))
	}

	names := make(map[string]bool)
	for _, m := range set {
		names[m.Name()] = true
	}
	for _, want := range []string{"mass", "mass_drift", "min", "max", "total_variation"} {
		if !names[want] {
			t.Errorf("missing metric %s", want)
		}
	}
}

func TestMassDriftZeroInitialMass(t *testing.T) {
	drift := NewMassDrift(1.0)
	drift.Observe(field.Field{1, -1}, 0, 0)
	drift.Observe(field.Field{5, 5}, 1, 0.1)

	if v := drift.Value(); math.IsNaN(v) || math.IsInf(v, 0) {
		t.Errorf("drift must stay finite when initial mass is zero, got %f", v)
	}
}
