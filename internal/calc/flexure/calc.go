// Package flexure computes nominal and design bending resistance per family
// and axis, per AISC 360-10 F2/F3/F6/F7/F8/F9/F10 and the equivalent CIRSOC
// 301 clauses. The nominal moment is the minimum over the applicable limit
// states: lateral-torsional buckling, flange local buckling and the
// family-specific formulas.
package flexure

import (
	"fmt"
	"math"

	"steelcheck/internal/section"
)

// PhiB is the LRFD resistance factor for flexure.
const PhiB = 0.90

type Axis string

const (
	AxisStrong Axis = "x"
	AxisWeak   Axis = "y"
)

// Governing-mode tags.
const (
	ModeYield        = "yield"
	ModeLTBInelastic = "ltb-inelastic"
	ModeLTBElastic   = "ltb-elastic"
	ModeFLBNoncompact = "flb-noncompact"
	ModeFLBSlender   = "flb-slender"
	ModeStemNoncompact = "stem-noncompact"
	ModeStemSlender  = "stem-slender"
	ModeWallNoncompact = "wall-noncompact"
	ModeWallSlender  = "wall-slender"
	ModeWebNoncompact = "web-noncompact"
	ModeWebSlender   = "web-slender"
)

// Result is the flexural resistance about one axis, with every intermediate
// the derivation used.
type Result struct {
	Section string `json:"section"`
	Family  string `json:"family"`
	Axis    Axis   `json:"axis"`

	FyMPa float64 `json:"fy_mpa"`
	LbMM  float64 `json:"lb_mm"`
	Cb    float64 `json:"cb"`
	PhiB  float64 `json:"phi_b"`

	MpKNM float64 `json:"mp_knm"`
	MyKNM float64 `json:"my_knm"`
	MnKNM float64 `json:"mn_knm"`
	MdKNM float64 `json:"md_knm"`

	Mode string `json:"mode"`

	// Strong-axis LTB thresholds; zero for axes/families without LTB.
	LpMM float64 `json:"lp_mm,omitempty"`
	LrMM float64 `json:"lr_mm,omitempty"`

	// Per-limit-state intermediates where two limit states compete.
	MnLTBKNM float64 `json:"mn_ltb_knm,omitempty"`
	MnFLBKNM float64 `json:"mn_flb_knm,omitempty"`

	Warnings []string `json:"warnings,omitempty"`
}

// Results packages both axes. Weak is nil for families with no meaningful
// weak axis (angles, tees); Single keeps the strong-axis-only call shape of
// earlier revisions.
type Results struct {
	Strong Result  `json:"strong"`
	Weak   *Result `json:"weak,omitempty"`
}

func (r Results) Single() Result { return r.Strong }

// plasticModulus returns Zx (or Zy) with the documented ≈1.12·S fallback.
func plasticModulus(z, s float64, label string, warnings *[]string) float64 {
	if z > 0 {
		return z
	}
	*warnings = append(*warnings, fmt.Sprintf("%s not tabulated: using %s ≈ 1.12·%s",
		label, label, elasticLabel(label)))
	return 1.12 * s
}

func elasticLabel(z string) string {
	if z == "Zy" {
		return "Sy"
	}
	return "Sx"
}

// rts is the effective radius of gyration for LTB, rts² = √(Iy·Cw)/Sx.
func rts(iy, cw, sx float64) float64 {
	return math.Sqrt(math.Sqrt(iy*cw) / sx)
}

// lp is the compact unbraced-length limit, 1.76·ry·√(E/Fy).
func lp(ry, e, fy float64) float64 {
	return 1.76 * ry * math.Sqrt(e/fy)
}

// lr is the inelastic LTB limit length.
func lr(rtsV, e, fy, j, sx, ho float64) float64 {
	u := j / (sx * ho)
	q := 0.7 * fy / e
	return 1.95 * rtsV * (e / (0.7 * fy)) *
		math.Sqrt(u+math.Sqrt(u*u+6.76*q*q))
}

// mnLTB evaluates the three LTB zones [N·mm].
func mnLTB(lb, lpV, lrV, mp, fy, sx, cb, e, rtsV, j, ho float64) (float64, string) {
	switch {
	case lb <= lpV:
		return mp, ModeYield
	case lb <= lrV:
		mn := cb * (mp - (mp-0.7*fy*sx)*(lb-lpV)/(lrV-lpV))
		return math.Min(mn, mp), ModeLTBInelastic
	default:
		slend := lb / rtsV
		fcr := cb * math.Pi * math.Pi * e / (slend * slend) *
			math.Sqrt(1+0.078*j/(sx*ho)*slend*slend)
		return math.Min(fcr*sx, mp), ModeLTBElastic
	}
}

// kc is the slender-element coefficient, bounded to [0.35, 0.76].
func kc(lambda float64) float64 {
	k := 4.0 / math.Sqrt(lambda)
	return math.Min(math.Max(k, 0.35), 0.76)
}

// mnFLB evaluates the three flange-local-buckling zones [N·mm]. s is the
// elastic modulus of the bent axis.
func mnFLB(mp, fy, s, lambda, e float64) (float64, string) {
	lambdaP := 0.38 * math.Sqrt(e/fy)
	lambdaR := 1.0 * math.Sqrt(e/fy)
	switch {
	case lambda <= lambdaP:
		return mp, ModeYield
	case lambda <= lambdaR:
		mn := mp - (mp-0.7*fy*s)*(lambda-lambdaP)/(lambdaR-lambdaP)
		return mn, ModeFLBNoncompact
	default:
		fcr := 0.9 * e * kc(lambda) / (lambda * lambda)
		return math.Min(fcr*s, mp), ModeFLBSlender
	}
}

// Calculate returns the flexural resistance about one axis.
func Calculate(p section.Properties, m section.Material, lbMM, cb float64, axis Axis) (Result, error) {
	m = m.Normalized()
	if m.Fy <= 0 {
		return Result{}, fmt.Errorf("flexure: Fy must be positive, got %g", m.Fy)
	}
	if cb <= 0 {
		cb = 1.0
	}
	if axis != AxisStrong && axis != AxisWeak {
		return Result{}, fmt.Errorf("flexure: unknown axis %q", axis)
	}

	res := Result{
		Section: p.Name, Family: string(p.Family), Axis: axis,
		FyMPa: m.Fy, LbMM: lbMM, Cb: cb, PhiB: PhiB,
	}

	var mn float64 // N·mm
	var err error
	switch p.Family {
	case section.DoubleSymmetricI, section.Channel:
		if axis == AxisStrong {
			mn, err = openStrong(&res, p, m, lbMM, cb)
		} else {
			mn, err = openWeak(&res, p, m)
		}
	case section.Angle:
		if axis == AxisWeak {
			return Result{}, noWeakAxis(p)
		}
		mn, err = angleBending(&res, p, m)
	case section.TeeSection:
		if axis == AxisWeak {
			return Result{}, noWeakAxis(p)
		}
		mn, err = teeStrong(&res, p, m)
	case section.CircularTube:
		// Geometric symmetry: both axes are the same computation.
		mn, err = roundTube(&res, p, m)
	case section.SquareTube:
		mn, err = boxBending(&res, p, m, p.BT, p.HwTw, p.Zx, p.Sx)
	case section.RectangularTube:
		if axis == AxisStrong {
			mn, err = boxBending(&res, p, m, p.BT, p.HwTw, p.Zx, p.Sx)
		} else {
			// About the weak axis the long walls become the flanges.
			mn, err = boxBending(&res, p, m, p.HwTw, p.BT, p.Zy, p.Sy)
		}
	default:
		return Result{}, &section.UnknownFamilyError{Family: string(p.Family)}
	}
	if err != nil {
		return Result{}, err
	}

	res.MnKNM = mn / 1e6
	res.MdKNM = PhiB * mn / 1e6
	return res, nil
}

// CalculateBoth evaluates both axes, leaving Weak nil for families without a
// meaningful second axis.
func CalculateBoth(p section.Properties, m section.Material, lbMM, cb float64) (Results, error) {
	strong, err := Calculate(p, m, lbMM, cb, AxisStrong)
	if err != nil {
		return Results{}, err
	}
	out := Results{Strong: strong}
	switch p.Family {
	case section.Angle, section.TeeSection:
		return out, nil
	}
	weak, err := Calculate(p, m, lbMM, cb, AxisWeak)
	if err != nil {
		return Results{}, err
	}
	out.Weak = &weak
	return out, nil
}

func noWeakAxis(p section.Properties) error {
	return fmt.Errorf("family %s has no weak-axis flexural resistance defined", p.Family)
}

// openStrong handles the strong axis of I-shapes and channels: LTB (F2)
// against FLB (F3), the lower governs.
func openStrong(res *Result, p section.Properties, m section.Material, lbMM, cb float64) (float64, error) {
	if p.Sx <= 0 || p.Ry <= 0 || p.D <= 0 || p.Tf <= 0 {
		return 0, &section.MissingGeometryError{Section: p.Name, Missing: []string{"Sx/ry/d/tf"}}
	}
	zx := plasticModulus(p.Zx, p.Sx, "Zx", &res.Warnings)
	mp := m.Fy * zx
	my := m.Fy * p.Sx
	ho := p.D - p.Tf

	rtsV := rts(p.Iy, p.Cw, p.Sx)
	lpV := lp(p.Ry, m.E, m.Fy)
	lrV := lr(rtsV, m.E, m.Fy, p.J, p.Sx, ho)

	mnLTBv, modeLTB := mnLTB(lbMM, lpV, lrV, mp, m.Fy, p.Sx, cb, m.E, rtsV, p.J, ho)

	mnFLBv, modeFLB := mp, ModeYield
	if p.BfTwoTf > 0 {
		mnFLBv, modeFLB = mnFLB(mp, m.Fy, p.Sx, p.BfTwoTf, m.E)
	} else {
		res.Warnings = append(res.Warnings, "bf/2tf unavailable: flange local buckling not checked")
	}

	res.MpKNM = mp / 1e6
	res.MyKNM = my / 1e6
	res.LpMM = lpV
	res.LrMM = lrV
	res.MnLTBKNM = mnLTBv / 1e6
	res.MnFLBKNM = mnFLBv / 1e6

	if p.Family == section.Channel {
		res.Warnings = append(res.Warnings,
			"channel: lateral-torsional buckling via the doubly symmetric formulas (conservative)")
	}
	if mnLTBv <= mnFLBv {
		res.Mode = modeLTB
		return mnLTBv, nil
	}
	res.Mode = modeFLB
	return mnFLBv, nil
}

// openWeak handles the weak axis of I-shapes and channels (F6): flange local
// buckling only, Mp capped at 1.6·Fy·Sy.
func openWeak(res *Result, p section.Properties, m section.Material) (float64, error) {
	if p.Sy <= 0 {
		return 0, &section.MissingGeometryError{Section: p.Name, Missing: []string{"Sy"}}
	}
	zy := plasticModulus(p.Zy, p.Sy, "Zy", &res.Warnings)
	mp := math.Min(m.Fy*zy, 1.6*m.Fy*p.Sy)
	my := m.Fy * p.Sy
	res.MpKNM = mp / 1e6
	res.MyKNM = my / 1e6

	lambda := p.BfTwoTf
	lambdaP := 0.38 * math.Sqrt(m.E/m.Fy)
	lambdaR := 1.0 * math.Sqrt(m.E/m.Fy)
	switch {
	case lambda <= lambdaP:
		res.Mode = ModeYield
		return mp, nil
	case lambda <= lambdaR:
		res.Mode = ModeFLBNoncompact
		return mp - (mp-0.7*m.Fy*p.Sy)*(lambda-lambdaP)/(lambdaR-lambdaP), nil
	default:
		res.Mode = ModeFLBSlender
		fcr := 0.69 * m.E / (lambda * lambda)
		return math.Min(fcr*p.Sy, mp), nil
	}
}

// angleBending is the simplified F10 rule: Mn = 1.5·My, axis-independent.
func angleBending(res *Result, p section.Properties, m section.Material) (float64, error) {
	if p.Sx <= 0 {
		return 0, &section.MissingGeometryError{Section: p.Name, Missing: []string{"Sx"}}
	}
	my := m.Fy * p.Sx
	mn := 1.5 * my
	res.MpKNM = mn / 1e6
	res.MyKNM = my / 1e6
	res.Mode = ModeYield
	res.Warnings = append(res.Warnings,
		"angle: Mn = 1.5·My (simplified F10, lateral-torsional buckling not evaluated)")
	return mn, nil
}

// teeStrong handles stem-in-compression bending of a tee (F9): three zones on
// d/tw, Mn capped at My.
func teeStrong(res *Result, p section.Properties, m section.Material) (float64, error) {
	if p.Sx <= 0 || p.DTw <= 0 {
		return 0, &section.MissingGeometryError{Section: p.Name, Missing: []string{"Sx/d_tw"}}
	}
	my := m.Fy * p.Sx
	res.MyKNM = my / 1e6
	res.MpKNM = my / 1e6 // stem in compression: plastification not counted

	lambda := p.DTw
	root := math.Sqrt(m.E / m.Fy)
	var fcr float64
	switch {
	case lambda <= 0.84*root:
		fcr = m.Fy
		res.Mode = ModeYield
	case lambda <= 1.03*root:
		fcr = (2.55 - 1.84*lambda*math.Sqrt(m.Fy/m.E)) * m.Fy
		res.Mode = ModeStemNoncompact
	default:
		fcr = 0.69 * m.E / (lambda * lambda)
		res.Mode = ModeStemSlender
	}
	res.Warnings = append(res.Warnings,
		"tee: stem assumed in compression (conservative bound)")
	return math.Min(fcr*p.Sx, my), nil
}

// roundTube handles circular tubes (F8): local buckling on D/t, identical
// about both axes.
func roundTube(res *Result, p section.Properties, m section.Material) (float64, error) {
	if p.Sx <= 0 || p.DT <= 0 {
		return 0, &section.MissingGeometryError{Section: p.Name, Missing: []string{"Sx/d_t"}}
	}
	zx := plasticModulus(p.Zx, p.Sx, "Zx", &res.Warnings)
	mp := m.Fy * zx
	my := m.Fy * p.Sx
	res.MpKNM = mp / 1e6
	res.MyKNM = my / 1e6

	lambda := p.DT
	if lambda > 0.45*m.E/m.Fy {
		res.Warnings = append(res.Warnings,
			"D/t beyond the applicability limit 0.45·E/Fy: elastic formula extrapolated")
	}
	switch {
	case lambda <= 0.07*m.E/m.Fy:
		res.Mode = ModeYield
		return mp, nil
	case lambda <= 0.31*m.E/m.Fy:
		res.Mode = ModeWallNoncompact
		return math.Min((0.021*m.E/lambda+m.Fy)*p.Sx, mp), nil
	default:
		res.Mode = ModeWallSlender
		fcr := 0.33 * m.E / lambda
		return math.Min(fcr*p.Sx, mp), nil
	}
}

// boxBending handles square and rectangular tubes (F7): independent flange
// and web three-zone checks, lower governs. lambdaF/lambdaW are the flat
// width-to-thickness ratios of the compressed flange and the webs for the
// bent axis; z and s the corresponding moduli.
func boxBending(res *Result, p section.Properties, m section.Material, lambdaF, lambdaW, z, s float64) (float64, error) {
	if s <= 0 || lambdaF <= 0 || lambdaW <= 0 {
		return 0, &section.MissingGeometryError{Section: p.Name, Missing: []string{"S/wall ratios"}}
	}
	zEff := plasticModulus(z, s, "Zx", &res.Warnings)
	mp := m.Fy * zEff
	my := m.Fy * s
	res.MpKNM = mp / 1e6
	res.MyKNM = my / 1e6
	root := math.Sqrt(m.E / m.Fy)

	// Flange wall.
	mnF, modeF := mp, ModeYield
	switch {
	case lambdaF <= 1.12*root:
	case lambdaF <= 1.40*root:
		mnF = math.Min(mp-(mp-m.Fy*s)*(3.57*lambdaF*math.Sqrt(m.Fy/m.E)-4.0), mp)
		modeF = ModeWallNoncompact
	default:
		b := lambdaF * p.T
		be := 1.92 * p.T * root * (1 - 0.38/lambdaF*root)
		if be > b {
			be = b
		}
		mnF = m.Fy * s * be / b // effective modulus approximated by be/b
		modeF = ModeWallSlender
	}

	// Web walls.
	mnW, modeW := mp, ModeYield
	switch {
	case lambdaW <= 2.42*root:
	case lambdaW <= 5.70*root:
		mnW = math.Min(mp-(mp-m.Fy*s)*(0.305*lambdaW*math.Sqrt(m.Fy/m.E)-0.738), mp)
		modeW = ModeWebNoncompact
	default:
		mnW = m.Fy * s * math.Pow(5.70*root/lambdaW, 2)
		modeW = ModeWebSlender
		res.Warnings = append(res.Warnings,
			"slender tube web: conservative (λr/λ)² reduction applied")
	}

	if mnF <= mnW {
		res.Mode = modeF
		return mnF, nil
	}
	res.Mode = modeW
	return mnW, nil
}
