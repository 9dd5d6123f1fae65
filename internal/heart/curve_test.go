package heart

import (
	"math"
	"testing"
)

func TestNewDomain(t *testing.T) {
	bound := math.Sqrt(3)
	xs := NewDomain(3000, bound)

	if len(xs) != 3000 {
		t.Fatalf("expected 3000 samples, got %d", len(xs))
	}
	if xs[0] != -bound {
		t.Errorf("expected first sample %f, got %f", -bound, xs[0])
	}
	if xs[len(xs)-1] != bound {
		t.Errorf("expected last sample %f, got %f", bound, xs[len(xs)-1])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("samples not increasing at %d: %f <= %f", i, xs[i], xs[i-1])
		}
	}

	t.Run("degenerate sizes", func(t *testing.T) {
		if got := NewDomain(0, bound); len(got) != 0 {
			t.Errorf("expected empty domain, got %d samples", len(got))
		}
		if got := NewDomain(1, bound); len(got) != 1 || got[0] != 0 {
			t.Errorf("expected single zero sample, got %v", got)
		}
	})
}

func TestEvaluate(t *testing.T) {
	xs := NewDomain(3000, math.Sqrt(3))

	cases := []struct {
		name      string
		k         float64
		amplitude float64
	}{
		{"arch", 0, 0.9},
		{"mid build", 17.3, 0.9},
		{"final", 50, 0.9},
		{"breath peak", 50, 0.935},
		{"negative amplitude", 50, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ys := Evaluate(xs, tc.k, tc.amplitude)
			if len(ys) != len(xs) {
				t.Fatalf("expected %d samples, got %d", len(xs), len(ys))
			}
			for i, y := range ys {
				if math.IsNaN(y) || math.IsInf(y, 0) {
					t.Fatalf("non-finite y at x=%f: %f", xs[i], y)
				}
			}
		})
	}

	t.Run("known values", func(t *testing.T) {
		ys := Evaluate([]float64{0, 1, -1}, 0, 0.9)
		want := []float64{0, 1, 1}
		for i := range want {
			if math.Abs(ys[i]-want[i]) > 1e-12 {
				t.Errorf("y[%d]: expected %f, got %f", i, want[i], ys[i])
			}
		}

		ys = Evaluate([]float64{1}, math.Pi/2, 0.5)
		want1 := 1 + 0.5*math.Sqrt(2)
		if math.Abs(ys[0]-want1) > 1e-12 {
			t.Errorf("expected %f, got %f", want1, ys[0])
		}
	})

	t.Run("clamps outside the domain", func(t *testing.T) {
		ys := Evaluate([]float64{math.Sqrt(3) + 1e-12, 2}, 50, 0.9)
		for i, y := range ys {
			if math.IsNaN(y) {
				t.Errorf("y[%d] is NaN", i)
			}
		}
		if want := math.Pow(2, 2.0/3.0); math.Abs(ys[1]-want) > 1e-12 {
			t.Errorf("expected envelope clamped to zero, got %f want %f", ys[1], want)
		}
	})

	t.Run("into reuses buffer", func(t *testing.T) {
		buf := make([]float64, 0, len(xs))
		out := EvaluateInto(buf, xs, 50, 0.9)
		if &out[0] != &buf[:1][0] {
			t.Error("expected EvaluateInto to reuse the provided buffer")
		}
	})
}

func TestEase(t *testing.T) {
	if got := Ease(0); got != 0 {
		t.Errorf("Ease(0): expected 0, got %f", got)
	}
	if got := Ease(1); got != 1 {
		t.Errorf("Ease(1): expected 1, got %f", got)
	}
	if got := Ease(0.5); got != 0.5 {
		t.Errorf("Ease(0.5): expected 0.5, got %f", got)
	}
	if got := Ease(-3); got != 0 {
		t.Errorf("Ease(-3): expected clamp to 0, got %f", got)
	}
	if got := Ease(7); got != 1 {
		t.Errorf("Ease(7): expected clamp to 1, got %f", got)
	}

	prev := Ease(0)
	for i := 1; i < 20; i++ {
		v := float64(i) / 19
		cur := Ease(v)
		if cur < prev {
			t.Errorf("not monotonic at t=%f: %f < %f", v, cur, prev)
		}
		if sym := 1 - Ease(1-v); math.Abs(cur-sym) > 1e-12 {
			t.Errorf("not symmetric at t=%f: %f vs %f", v, cur, sym)
		}
		prev = cur
	}
}
