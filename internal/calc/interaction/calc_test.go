package interaction

import (
	"math"
	"strings"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func near(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f", label, got, want)
	}
}

func TestEquationSelection(t *testing.T) {
	tests := []struct {
		name     string
		demand   Demand
		equation string
		ratio    float64
	}{
		{
			"high axial uses H1-1a",
			Demand{NuKN: 500, MuxKNM: 50},
			EquationH11a, 0.5 + 8.0/9.0*0.5,
		},
		{
			"low axial uses H1-1b",
			Demand{NuKN: 100, MuxKNM: 50},
			EquationH11b, 0.05 + 0.5,
		},
		{
			"boundary 0.2 uses H1-1a",
			Demand{NuKN: 200, MuxKNM: 50},
			EquationH11a, 0.2 + 8.0/9.0*0.5,
		},
		{
			"pure bending",
			Demand{MuxKNM: 90},
			EquationH11b, 0.9,
		},
	}
	r := Resistance{PdKN: 1000, MdxKNM: 100, MdyKNM: ptr(40.0)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(tt.demand, r)
			if err != nil {
				t.Fatalf("Calculate error: %v", err)
			}
			if res.Equation != tt.equation {
				t.Errorf("equation = %q, want %q", res.Equation, tt.equation)
			}
			near(t, res.Ratio, tt.ratio, 1e-12, "ratio")
			if !res.Pass {
				t.Error("ratio under 1.0 should pass")
			}
		})
	}
}

func TestBiaxialBending(t *testing.T) {
	res, err := Calculate(
		Demand{NuKN: 300, MuxKNM: 40, MuyKNM: 10},
		Resistance{PdKN: 1000, MdxKNM: 100, MdyKNM: ptr(40.0)},
	)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	// 0.3 + 8/9·(0.4 + 0.25)
	near(t, res.Ratio, 0.3+8.0/9.0*0.65, 1e-12, "ratio")
}

func TestFailIsReported(t *testing.T) {
	res, err := Calculate(
		Demand{NuKN: 900, MuxKNM: 50},
		Resistance{PdKN: 1000, MdxKNM: 100},
	)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.Pass {
		t.Errorf("ratio = %v should fail", res.Ratio)
	}
}

func TestMissingWeakResistance(t *testing.T) {
	// Muy = 0: the weak term simply drops, no warning.
	res, err := Calculate(
		Demand{NuKN: 500, MuxKNM: 50},
		Resistance{PdKN: 1000, MdxKNM: 100},
	)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}

	// Muy > 0 with no Mdy: Mdx stands in and the check warns.
	res, err = Calculate(
		Demand{NuKN: 500, MuxKNM: 50, MuyKNM: 20},
		Resistance{PdKN: 1000, MdxKNM: 100},
	)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	near(t, res.Ratio, 0.5+8.0/9.0*(0.5+0.2), 1e-12, "ratio with substituted Mdx")
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "Mdx") {
		t.Errorf("expected the substitution warning, got %v", res.Warnings)
	}
}

func TestInvalidInputs(t *testing.T) {
	if _, err := Calculate(Demand{NuKN: 1}, Resistance{PdKN: 0, MdxKNM: 10}); err == nil {
		t.Error("Pd = 0 must error")
	}
	if _, err := Calculate(Demand{NuKN: 1}, Resistance{PdKN: 10, MdxKNM: 0}); err == nil {
		t.Error("Mdx = 0 must error")
	}
	if _, err := Calculate(Demand{NuKN: -1}, Resistance{PdKN: 10, MdxKNM: 10}); err == nil {
		t.Error("negative demand must error")
	}
	bad := -5.0
	if _, err := Calculate(Demand{MuyKNM: 1}, Resistance{PdKN: 10, MdxKNM: 10, MdyKNM: &bad}); err == nil {
		t.Error("negative Mdy must error")
	}
}
