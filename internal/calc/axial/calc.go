// Package axial computes the design compressive resistance of a steel
// cross-section: classification, slender-element reduction, elastic buckling
// per family, critical stress and Pn/Pd, per AISC 360-10 E3/E4/E7 and the
// equivalent CIRSOC 301 clauses.
package axial

import (
	"steelcheck/internal/calc/classify"
	"steelcheck/internal/section"
)

// PhiC is the LRFD resistance factor for compression.
const PhiC = 0.90

// Result is the full audit trail of one axial check. Every intermediate the
// derivation uses is on the record so a reporter can lay out the calculation
// without recomputing anything.
type Result struct {
	Section  string `json:"section"`
	Family   string `json:"family"`
	Database string `json:"database,omitempty"`

	FyMPa float64 `json:"fy_mpa"`
	EMPa  float64 `json:"e_mpa"`
	GMPa  float64 `json:"g_mpa"`
	PhiC  float64 `json:"phi_c"`

	Lengths section.Lengths `json:"lengths"`
	AreaMM2 float64         `json:"a_mm2"`

	Classification classify.Result `json:"classification"`
	Q              QRecord         `json:"q"`
	Buckling       Buckling        `json:"buckling"`

	FcrMPa float64 `json:"fcr_mpa"`
	PnKN   float64 `json:"pn_kn"`
	PdKN   float64 `json:"pd_kn"`

	Warnings []string `json:"warnings,omitempty"`
}

// Config bundles the solver knobs a caller may override per request.
type Config struct {
	Q QConfig `json:"q"`
}

// Calculate runs the full compression pipeline. It is pure: identical inputs
// and configuration produce identical results, and nothing outside the
// returned value is touched.
func Calculate(p section.Properties, m section.Material, l section.Lengths, cfg Config) (Result, error) {
	m = m.Normalized()
	l = l.Normalized()

	verifyWarnings, err := p.Verify()
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Section: p.Name,
		Family:  string(p.Family),
		FyMPa:   m.Fy,
		EMPa:    m.E,
		GMPa:    m.G,
		PhiC:    PhiC,
		Lengths: l,
		AreaMM2: p.A,
		Q:       QRecord{Qs: 1, Qa: 1, Q: 1, Converged: true},
	}
	res.Warnings = append(res.Warnings, verifyWarnings...)

	cls, err := classify.Calculate(p, m)
	if err != nil {
		return Result{}, err
	}
	res.Classification = cls
	res.Warnings = append(res.Warnings, cls.Warnings...)

	buck, err := ElasticBuckling(p, m, l)
	if err != nil {
		return Result{}, err
	}
	res.Buckling = buck
	res.Warnings = append(res.Warnings, buck.Warnings...)

	if cls.Slender {
		rec, qWarnings := solveQ(p, m, buck.FeMPa, cfg.Q)
		res.Q = rec
		res.Warnings = append(res.Warnings, qWarnings...)
	}

	res.FcrMPa = CriticalStress(res.Q.Q, m.Fy, buck.FeMPa)
	pn := res.FcrMPa * p.A // N
	res.PnKN = pn / 1000
	res.PdKN = PhiC * pn / 1000
	return res, nil
}
