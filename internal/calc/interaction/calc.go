// Package interaction evaluates the combined axial-plus-bending check of
// AISC 360-10 H1-1 (CIRSOC 301 equivalent). Demands and resistances come in
// as kN and kN·m; the output is the dimensionless utilization ratio.
package interaction

import (
	"fmt"
)

// Equation tags identifying the governing branch.
const (
	EquationH11a = "H1-1a"
	EquationH11b = "H1-1b"
)

type Demand struct {
	NuKN   float64 `json:"nu_kn"`
	MuxKNM float64 `json:"mux_knm"`
	MuyKNM float64 `json:"muy_knm"`
}

type Resistance struct {
	PdKN   float64  `json:"pd_kn"`
	MdxKNM float64  `json:"mdx_knm"`
	// MdyKNM is nil when the family defines no weak-axis resistance.
	MdyKNM *float64 `json:"mdy_knm,omitempty"`
}

type Result struct {
	Demand     Demand     `json:"demand"`
	Resistance Resistance `json:"resistance"`

	AxialRatio float64 `json:"axial_ratio"`
	Ratio      float64 `json:"ratio"`
	Equation   string  `json:"equation"`
	Pass       bool    `json:"pass"`

	Warnings []string `json:"warnings,omitempty"`
}

// Calculate applies H1-1a when Nu/Pd ≥ 0.2 and H1-1b otherwise. A member
// passes when the ratio does not exceed 1.0.
func Calculate(d Demand, r Resistance) (Result, error) {
	if r.PdKN <= 0 {
		return Result{}, fmt.Errorf("interaction: Pd must be positive, got %g kN", r.PdKN)
	}
	if r.MdxKNM <= 0 {
		return Result{}, fmt.Errorf("interaction: Mdx must be positive, got %g kN·m", r.MdxKNM)
	}
	if d.NuKN < 0 || d.MuxKNM < 0 || d.MuyKNM < 0 {
		return Result{}, fmt.Errorf("interaction: demands must not be negative")
	}

	res := Result{Demand: d, Resistance: r}

	// Weak-axis bending term. When the family has no weak-axis resistance
	// a nonzero Muy is checked against Mdx as a stand-in.
	weakTerm := 0.0
	if d.MuyKNM > 0 {
		mdy := r.MdxKNM
		if r.MdyKNM != nil {
			if *r.MdyKNM <= 0 {
				return Result{}, fmt.Errorf("interaction: Mdy must be positive, got %g kN·m", *r.MdyKNM)
			}
			mdy = *r.MdyKNM
		} else {
			res.Warnings = append(res.Warnings,
				"no weak-axis flexural resistance for this family: Muy checked against Mdx")
		}
		weakTerm = d.MuyKNM / mdy
	}

	axialRatio := d.NuKN / r.PdKN
	momentSum := d.MuxKNM/r.MdxKNM + weakTerm

	res.AxialRatio = axialRatio
	if axialRatio >= 0.2 {
		res.Equation = EquationH11a
		res.Ratio = axialRatio + 8.0/9.0*momentSum
	} else {
		res.Equation = EquationH11b
		res.Ratio = axialRatio/2.0 + momentSum
	}
	res.Pass = res.Ratio <= 1.0
	return res, nil
}
