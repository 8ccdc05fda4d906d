package axial

import (
	"math"
	"strings"
	"testing"

	"steelcheck/internal/section"
)

func near(t *testing.T, got, want, tol float64, label string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f (tol %g)", label, got, want, tol)
	}
}

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func w18x97() section.Properties {
	return section.Properties{
		Name: "W18X97", Family: section.DoubleSymmetricI,
		D: 472, Bf: 283, Tf: 22.1, Tw: 13.6, Hw: 409,
		A: 18400, Ix: 726e6, Iy: 83.6e6,
		Sx: 3080e3, Sy: 591e3, Zx: 3420e3, Zy: 912e3,
		Rx: 199, Ry: 67.3, J: 2170e3, Cw: 4.22e12,
		BfTwoTf: 6.41, HwTw: 30.1,
		Ro: math.Sqrt((726e6 + 83.6e6) / 18400), H: 1,
	}
}

func TestCompactColumn(t *testing.T) {
	res, err := Calculate(w18x97(), section.Steel(250),
		section.Lengths{Lx: 4000, Ly: 4000}, Config{})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.Q.Q != 1.0 {
		t.Errorf("Q = %v for a compact section, want 1", res.Q.Q)
	}
	if res.Buckling.GoverningMode != ModeFlexuralY {
		t.Errorf("governing mode = %q, want %q", res.Buckling.GoverningMode, ModeFlexuralY)
	}
	near(t, res.Buckling.FeMPa, 558.7788, 0.01, "Fe")
	near(t, res.Buckling.SlendernessY, 59.4354, 0.001, "KL/r about y")
	near(t, res.FcrMPa, 207.3068, 0.01, "Fcr")
	near(t, res.PnKN, 3814.445, 0.1, "Pn")
	near(t, res.PdKN, 3433.000, 0.1, "Pd")
}

func TestTorsionalModeEvaluated(t *testing.T) {
	res, err := Calculate(w18x97(), section.Steel(250),
		section.Lengths{Lx: 4000, Ly: 4000}, Config{})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	var feZ float64
	for _, mode := range res.Buckling.Modes {
		if mode.Name == ModeTorsionalZ {
			feZ = mode.FeMPa
		}
	}
	if feZ == 0 {
		t.Fatal("torsional mode missing from the mode list")
	}
	near(t, feZ, 849.9823, 0.01, "Fe_z")
}

func TestChannelWithoutShearCenterFallsBack(t *testing.T) {
	// xo/H not tabulated: Fe_yzt degrades to Fe_y with a warning.
	p := section.Properties{
		Name: "UPN 200", Family: section.Channel,
		D: 200, Bf: 75, Tf: 11.5, Tw: 8.5, Hw: 167,
		A: 3220, Ix: 19.1e6, Iy: 1.48e6,
		Sx: 191e3, Sy: 27.0e3,
		Rx: 77.0, Ry: 21.4, J: 119e3, Cw: 26.3e9,
		BfTwoTf: 6.52, HwTw: 19.6,
	}
	res, err := Calculate(p, section.Steel(250), section.Lengths{Lx: 3000, Ly: 3000}, Config{})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if !hasWarning(res.Warnings, "xo/H unavailable") {
		t.Errorf("expected the xo/H fallback warning, got %v", res.Warnings)
	}
	if res.Buckling.GoverningMode != ModeFlexuralTorsionalYZ {
		t.Errorf("governing mode = %q, want %q", res.Buckling.GoverningMode, ModeFlexuralTorsionalYZ)
	}
	near(t, res.Buckling.FeMPa, 100.4419, 0.01, "Fe (fallback = Fe_y)")
	near(t, res.PdKN, 255.278, 0.05, "Pd")
}

func TestAngleSlendernessWarning(t *testing.T) {
	p := section.Properties{
		Name: "L 4X4X1/2", Family: section.Angle,
		B: 102, T: 12.7, A: 2420, Ix: 2.34e6, Iy: 2.34e6,
		Sx: 32.6e3, Rx: 31.1, Ry: 31.1, Rv: 19.8, BT: 8.0,
	}
	res, err := Calculate(p, section.Steel(250), section.Lengths{Lx: 5000, Ly: 5000}, Config{})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	// KL/r = 5000/19.8 ≈ 252.5: past the limit but still computed.
	near(t, res.Buckling.SlendernessMax, 252.5253, 0.001, "KL/r")
	if !hasWarning(res.Warnings, "exceeds the limit") {
		t.Errorf("expected the slenderness warning, got %v", res.Warnings)
	}
	near(t, res.FcrMPa, 27.1469, 0.001, "Fcr")
	near(t, res.PdKN, 59.1259, 0.01, "Pd")
}

func TestTubeFlexuralSymmetry(t *testing.T) {
	p := section.Properties{
		Name: "SHS 150X150X8", Family: section.SquareTube,
		D: 150, T: 8, A: 4480, Ix: 15.4e6, Iy: 15.4e6,
		Sx: 205e3, Sy: 205e3, Rx: 58.6, Ry: 58.6, J: 23.0e6,
		BT: 15.75, HwTw: 15.75, Ro: math.Sqrt(2) * 58.6, H: 1,
	}
	res, err := Calculate(p, section.Steel(250), section.Lengths{Lx: 4000, Ly: 4000}, Config{})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	var feX, feY float64
	for _, mode := range res.Buckling.Modes {
		switch mode.Name {
		case ModeFlexuralX:
			feX = mode.FeMPa
		case ModeFlexuralY:
			feY = mode.FeMPa
		}
	}
	if feX != feY {
		t.Errorf("Fe_x = %v, Fe_y = %v: equal radii with equal lengths must match", feX, feY)
	}
}

func TestCriticalStressBranches(t *testing.T) {
	const fy = 250.0

	// Inelastic branch at the seam.
	seam := fy / 2.25
	inelastic := CriticalStress(1, fy, seam)
	elastic := 0.877 * seam
	if math.Abs(inelastic-elastic) > 0.05 {
		t.Errorf("branch seam: %.6f vs %.6f, want near-continuous", inelastic, elastic)
	}

	// Just past the seam the elastic branch applies.
	past := CriticalStress(1, fy, seam*0.999)
	if math.Abs(past-0.877*seam*0.999) > 1e-9 {
		t.Errorf("elastic branch = %v, want 0.877·Fe", past)
	}

	// Fcr decreases monotonically as Fe drops.
	prev := math.Inf(1)
	for fe := 1000.0; fe >= 20; fe -= 5 {
		f := CriticalStress(1, fy, fe)
		if f > prev {
			t.Fatalf("Fcr not monotone at Fe = %v: %v > %v", fe, f, prev)
		}
		prev = f
	}
}

func TestSlenderFlangeIteration(t *testing.T) {
	// Slender flange (bf/2tf = 30 > λr ≈ 28.3), compact web.
	p := section.Properties{
		Name: "SLENDER-I", Family: section.DoubleSymmetricI,
		D: 300, Bf: 300, Tf: 5, Tw: 5, Hw: 290,
		A: 4450, Ix: 75e6, Iy: 22.5e6, Sx: 480e3, Sy: 150e3,
		Rx: 130, Ry: 60,
		BfTwoTf: 30, HwTw: 58,
	}
	res, err := Calculate(p, section.Steel(250), section.Lengths{Lx: 3000, Ly: 3000}, Config{})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if !res.Classification.Slender {
		t.Fatal("section should classify as slender")
	}
	if !res.Q.Converged {
		t.Fatalf("Q did not converge: %+v", res.Q)
	}
	if res.Q.Iterations != 3 {
		t.Errorf("iterations = %d, want 3", res.Q.Iterations)
	}
	near(t, res.Q.Qs, 0.613333, 1e-5, "Qs")
	near(t, res.Q.Qa, 0.990771, 1e-5, "Qa")
	near(t, res.Q.Q, 0.607673, 1e-5, "Q")
	near(t, res.FcrMPa, 140.1636, 0.001, "Fcr")
	near(t, res.PdKN, 561.3553, 0.01, "Pd")
}

func TestQConfigOverride(t *testing.T) {
	p := section.Properties{
		Name: "SLENDER-I", Family: section.DoubleSymmetricI,
		D: 300, Bf: 300, Tf: 5, Tw: 5, Hw: 290,
		A: 4450, Ix: 75e6, Iy: 22.5e6, Sx: 480e3, Sy: 150e3,
		Rx: 130, Ry: 60,
		BfTwoTf: 30, HwTw: 58,
	}
	cfg := Config{Q: QConfig{MaxIter: 1, Tol: 1e-9}}
	res, err := Calculate(p, section.Steel(250), section.Lengths{Lx: 3000, Ly: 3000}, cfg)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if res.Q.Converged {
		t.Error("one iteration at a tight tolerance should not converge")
	}
	if res.Q.Iterations != 1 {
		t.Errorf("iterations = %d, want 1", res.Q.Iterations)
	}
	if !hasWarning(res.Warnings, "did not converge") {
		t.Errorf("expected the non-convergence warning, got %v", res.Warnings)
	}
}
