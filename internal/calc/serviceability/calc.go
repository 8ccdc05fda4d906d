// Package serviceability tabulates the admissible point load and distributed
// load that produce a given deflection limit, for the three classic support
// schemes. Elastic beam theory only; no strength check is implied.
package serviceability

import (
	"fmt"
	"strings"

	"steelcheck/internal/section"
)

// Scheme identifies the support condition of the member.
type Scheme string

const (
	Cantilever  Scheme = "CANTILEVER"
	SimpleSpan  Scheme = "SIMPLE"
	FixedEnds   Scheme = "FIXED"
)

// Deflection coefficients: delta = P·L³/(kP·E·I) for a point load and
// delta = q·L⁴/(kQ·E·I) for a distributed load.
type coefficients struct {
	kP float64
	kQ float64
}

var schemeTable = map[Scheme]coefficients{
	Cantilever: {kP: 3, kQ: 8},
	SimpleSpan: {kP: 48, kQ: 76.8},
	FixedEnds:  {kP: 192, kQ: 384},
}

// Default deflection fractions (L/n) per scheme. Cantilevers use looser
// limits because the span convention differs.
var defaultFractions = map[Scheme][]float64{
	Cantilever: {50, 100, 120, 150, 200},
	SimpleSpan: {100, 200, 300, 400, 500},
	FixedEnds:  {100, 200, 300, 400, 500},
}

// ParseScheme accepts the canonical names case-insensitively.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(strings.ToUpper(strings.TrimSpace(s))) {
	case Cantilever:
		return Cantilever, nil
	case SimpleSpan:
		return SimpleSpan, nil
	case FixedEnds:
		return FixedEnds, nil
	}
	return "", fmt.Errorf("serviceability: unknown support scheme %q", s)
}

// Row is one deflection limit with the admissible loads about each axis.
type Row struct {
	Fraction float64 `json:"fraction"`
	DeltaMM  float64 `json:"delta_mm"`
	PxKN     float64 `json:"px_kn"`
	QxKNM    float64 `json:"qx_kn_m"`
	PyKN     float64 `json:"py_kn"`
	QyKNM    float64 `json:"qy_kn_m"`
}

type Result struct {
	Section  string   `json:"section"`
	Family   string   `json:"family"`
	Scheme   Scheme   `json:"scheme"`
	SpanMM   float64  `json:"span_mm"`
	EMPa     float64  `json:"e_mpa"`
	IxMM4    float64  `json:"ix_mm4"`
	IyMM4    float64  `json:"iy_mm4"`
	Rows     []Row    `json:"rows"`
	Warnings []string `json:"warnings,omitempty"`
}

// Calculate builds the admissible-load table. fractions may be nil to take
// the scheme defaults.
func Calculate(p section.Properties, e, spanMM float64, scheme Scheme, fractions []float64) (Result, error) {
	if e <= 0 {
		e = section.DefaultE
	}
	if spanMM <= 0 {
		return Result{}, fmt.Errorf("serviceability: span must be positive, got %g mm", spanMM)
	}
	coef, ok := schemeTable[scheme]
	if !ok {
		return Result{}, fmt.Errorf("serviceability: unknown support scheme %q", scheme)
	}
	if p.Ix <= 0 {
		return Result{}, &section.MissingGeometryError{Section: p.Name, Missing: []string{"Ix"}}
	}
	if len(fractions) == 0 {
		fractions = defaultFractions[scheme]
	}

	res := Result{
		Section: p.Name, Family: string(p.Family), Scheme: scheme,
		SpanMM: spanMM, EMPa: e, IxMM4: p.Ix, IyMM4: p.Iy,
	}

	iy := p.Iy
	if iy <= 0 {
		iy = p.Ix
		res.IyMM4 = iy
		res.Warnings = append(res.Warnings,
			"Iy unavailable: weak-axis columns computed with Ix")
	}

	l3 := spanMM * spanMM * spanMM
	l4 := l3 * spanMM
	for _, f := range fractions {
		if f <= 0 {
			return Result{}, fmt.Errorf("serviceability: fraction must be positive, got %g", f)
		}
		delta := spanMM / f
		// P in N, q in N/mm; N/mm equals kN/m exactly.
		res.Rows = append(res.Rows, Row{
			Fraction: f,
			DeltaMM:  delta,
			PxKN:     coef.kP * e * p.Ix * delta / l3 / 1000,
			QxKNM:    coef.kQ * e * p.Ix * delta / l4,
			PyKN:     coef.kP * e * iy * delta / l3 / 1000,
			QyKNM:    coef.kQ * e * iy * delta / l4,
		})
	}
	return res, nil
}
