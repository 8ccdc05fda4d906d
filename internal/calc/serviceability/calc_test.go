package serviceability

import (
	"math"
	"testing"

	"steelcheck/internal/section"
)

func near(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f", label, got, want)
	}
}

func beam() section.Properties {
	return section.Properties{
		Name: "W18X97", Family: section.DoubleSymmetricI,
		Ix: 726e6, Iy: 83.6e6,
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in   string
		want Scheme
		ok   bool
	}{
		{"CANTILEVER", Cantilever, true},
		{"simple", SimpleSpan, true},
		{" Fixed ", FixedEnds, true},
		{"propped", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseScheme(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseScheme(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseScheme(%q) should fail", tt.in)
		}
	}
}

func TestSimpleSpanRow(t *testing.T) {
	res, err := Calculate(beam(), 0, 6000, SimpleSpan, []float64{300})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.EMPa != section.DefaultE {
		t.Errorf("E = %v, want the default", res.EMPa)
	}
	if len(res.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(res.Rows))
	}
	row := res.Rows[0]
	near(t, row.DeltaMM, 20.0, 1e-12, "delta")
	near(t, row.PxKN, 645.333333, 1e-4, "Px")
	near(t, row.QxKNM, 172.088889, 1e-4, "qx")
	near(t, row.PyKN, 74.311111, 1e-4, "Py")
	near(t, row.QyKNM, 19.816296, 1e-4, "qy")
}

func TestDefaultFractions(t *testing.T) {
	res, err := Calculate(beam(), 0, 4000, Cantilever, nil)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	want := []float64{50, 100, 120, 150, 200}
	if len(res.Rows) != len(want) {
		t.Fatalf("rows = %d, want %d", len(res.Rows), len(want))
	}
	for i, row := range res.Rows {
		if row.Fraction != want[i] {
			t.Errorf("row %d fraction = %v, want %v", i, row.Fraction, want[i])
		}
	}

	res, err = Calculate(beam(), 0, 4000, SimpleSpan, nil)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.Rows[0].Fraction != 100 || res.Rows[len(res.Rows)-1].Fraction != 500 {
		t.Errorf("simple-span defaults wrong: %v", res.Rows)
	}
}

func TestSchemeCoefficientRatios(t *testing.T) {
	// With identical geometry, the admissible loads scale as the scheme
	// coefficients: fixed/simple = 192/48 for P and 384/76.8 for q.
	simple, err := Calculate(beam(), 0, 5000, SimpleSpan, []float64{250})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	fixed, err := Calculate(beam(), 0, 5000, FixedEnds, []float64{250})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	near(t, fixed.Rows[0].PxKN/simple.Rows[0].PxKN, 4.0, 1e-12, "kP ratio")
	near(t, fixed.Rows[0].QxKNM/simple.Rows[0].QxKNM, 5.0, 1e-12, "kQ ratio")
}

func TestIyFallback(t *testing.T) {
	p := section.Properties{Name: "L", Family: section.Angle, Ix: 2.34e6}
	res, err := Calculate(p, 0, 3000, SimpleSpan, []float64{200})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.Rows[0].PxKN != res.Rows[0].PyKN {
		t.Errorf("with Iy missing both axes use Ix: %v vs %v", res.Rows[0].PxKN, res.Rows[0].PyKN)
	}
	if len(res.Warnings) == 0 {
		t.Error("expected the Iy fallback warning")
	}
}

func TestInvalidInputs(t *testing.T) {
	if _, err := Calculate(beam(), 0, 0, SimpleSpan, nil); err == nil {
		t.Error("zero span must error")
	}
	if _, err := Calculate(beam(), 0, 3000, Scheme("PROPPED"), nil); err == nil {
		t.Error("unknown scheme must error")
	}
	if _, err := Calculate(beam(), 0, 3000, SimpleSpan, []float64{-100}); err == nil {
		t.Error("negative fraction must error")
	}
	p := section.Properties{Name: "X", Family: section.DoubleSymmetricI}
	if _, err := Calculate(p, 0, 3000, SimpleSpan, nil); err == nil {
		t.Error("missing Ix must error")
	}
}
