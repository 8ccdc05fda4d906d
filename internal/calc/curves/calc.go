// Package curves sweeps a member length range and evaluates the design
// resistance at each step, producing the data behind capacity-vs-length
// plots. A point that fails to evaluate is kept as a null entry instead of
// aborting the sweep, so a chart can show the gap.
package curves

import (
	"fmt"

	"steelcheck/internal/calc/axial"
	"steelcheck/internal/calc/flexure"
	"steelcheck/internal/section"
)

// Sweep describes an inclusive length range in mm.
type Sweep struct {
	StartMM float64 `json:"start_mm"`
	EndMM   float64 `json:"end_mm"`
	StepMM  float64 `json:"step_mm"`
}

func (s Sweep) validate() error {
	if s.StartMM <= 0 || s.EndMM < s.StartMM {
		return fmt.Errorf("curves: invalid range [%g, %g] mm", s.StartMM, s.EndMM)
	}
	if s.StepMM <= 0 {
		return fmt.Errorf("curves: step must be positive, got %g mm", s.StepMM)
	}
	return nil
}

func (s Sweep) lengths() []float64 {
	var out []float64
	// A small tolerance keeps the endpoint when the step divides the range.
	for l := s.StartMM; l <= s.EndMM+1e-9; l += s.StepMM {
		out = append(out, l)
	}
	return out
}

// AxialPoint is one sample of the compression curve. PdKN is nil where the
// evaluation failed; Error carries the reason.
type AxialPoint struct {
	LengthMM float64  `json:"length_mm"`
	PdKN     *float64 `json:"pd_kn"`
	Mode     string   `json:"mode,omitempty"`
	Error    string   `json:"error,omitempty"`
}

type AxialCurve struct {
	Section string       `json:"section"`
	Family  string       `json:"family"`
	FyMPa   float64      `json:"fy_mpa"`
	K       float64      `json:"k"`
	Points  []AxialPoint `json:"points"`
}

// AxialSweep evaluates Pd over the length range with Lx = Ly = Lz = L and a
// single effective length factor applied to all axes.
func AxialSweep(p section.Properties, m section.Material, k float64, sw Sweep) (AxialCurve, error) {
	if err := sw.validate(); err != nil {
		return AxialCurve{}, err
	}
	if k <= 0 {
		k = 1.0
	}
	m = m.Normalized()
	curve := AxialCurve{Section: p.Name, Family: string(p.Family), FyMPa: m.Fy, K: k}
	for _, l := range sw.lengths() {
		pt := AxialPoint{LengthMM: l}
		lengths := section.Lengths{Kx: k, Ky: k, Kz: k, Lx: l, Ly: l, Lz: l}
		res, err := axial.Calculate(p, m, lengths, axial.Config{})
		if err != nil {
			pt.Error = err.Error()
		} else {
			pd := res.PdKN
			pt.PdKN = &pd
			pt.Mode = res.Buckling.GoverningMode
		}
		curve.Points = append(curve.Points, pt)
	}
	return curve, nil
}

// FlexuralPoint is one sample of the moment curve over unbraced length.
type FlexuralPoint struct {
	LbMM   float64  `json:"lb_mm"`
	MdxKNM *float64 `json:"mdx_knm"`
	Mode   string   `json:"mode,omitempty"`
	Error  string   `json:"error,omitempty"`
}

type FlexuralCurve struct {
	Section string          `json:"section"`
	Family  string          `json:"family"`
	FyMPa   float64         `json:"fy_mpa"`
	Cb      float64         `json:"cb"`
	LpMM    float64         `json:"lp_mm,omitempty"`
	LrMM    float64         `json:"lr_mm,omitempty"`
	Points  []FlexuralPoint `json:"points"`
}

// FlexuralSweep evaluates the strong-axis Mdx over the unbraced length range.
func FlexuralSweep(p section.Properties, m section.Material, cb float64, sw Sweep) (FlexuralCurve, error) {
	if err := sw.validate(); err != nil {
		return FlexuralCurve{}, err
	}
	if cb <= 0 {
		cb = 1.0
	}
	m = m.Normalized()
	curve := FlexuralCurve{Section: p.Name, Family: string(p.Family), FyMPa: m.Fy, Cb: cb}
	for _, lb := range sw.lengths() {
		pt := FlexuralPoint{LbMM: lb}
		res, err := flexure.Calculate(p, m, lb, cb, flexure.AxisStrong)
		if err != nil {
			pt.Error = err.Error()
		} else {
			md := res.MdKNM
			pt.MdxKNM = &md
			pt.Mode = res.Mode
			if curve.LpMM == 0 && res.LpMM > 0 {
				curve.LpMM = res.LpMM
				curve.LrMM = res.LrMM
			}
		}
		curve.Points = append(curve.Points, pt)
	}
	return curve, nil
}
