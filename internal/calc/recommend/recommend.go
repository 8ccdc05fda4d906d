// Package recommend selects the lightest catalog section of a family that
// carries a given factored demand. Every candidate in the family list is
// evaluated with the same engines the verification endpoints use, so the
// recommendation is exactly as strict as the checks.
package recommend

import (
	"context"
	"fmt"
	"sort"

	"steelcheck/internal/calc/axial"
	"steelcheck/internal/calc/flexure"
	"steelcheck/internal/section"
)

type Input struct {
	Family string  `json:"family"`
	FyMPa  float64 `json:"fy_mpa"`

	NuKN   float64 `json:"nu_kn"`
	MuxKNM float64 `json:"mux_knm,omitempty"`

	LxMM float64 `json:"lx_mm"`
	LyMM float64 `json:"ly_mm,omitempty"`
	LbMM float64 `json:"lb_mm,omitempty"`
	K    float64 `json:"k,omitempty"`
}

// Candidate is one evaluated section, kept for the shortlist.
type Candidate struct {
	Section  string  `json:"section"`
	WeightKG float64 `json:"weight_kg_m,omitempty"`
	PdKN     float64 `json:"pd_kn"`
	MdxKNM   float64 `json:"mdx_knm,omitempty"`
	Pass     bool    `json:"pass"`
}

type Result struct {
	Family     string      `json:"family"`
	Best       *Candidate  `json:"best"`
	Candidates []Candidate `json:"candidates"`
	Warnings   []string    `json:"warnings,omitempty"`
}

// Select evaluates every section of the family and returns the lightest one
// that passes. Sections that fail to evaluate are skipped with a warning.
func Select(ctx context.Context, catalog section.Repository, in Input) (Result, error) {
	family, err := section.ParseFamily(in.Family)
	if err != nil {
		return Result{}, err
	}
	if in.FyMPa <= 0 {
		return Result{}, fmt.Errorf("recommend: fy_mpa must be positive")
	}
	if in.NuKN <= 0 && in.MuxKNM <= 0 {
		return Result{}, fmt.Errorf("recommend: at least one of nu_kn, mux_knm required")
	}
	if in.LxMM <= 0 {
		return Result{}, fmt.Errorf("recommend: lx_mm must be positive")
	}
	if in.LyMM <= 0 {
		in.LyMM = in.LxMM
	}
	if in.LbMM <= 0 {
		in.LbMM = in.LxMM
	}
	if in.K <= 0 {
		in.K = 1.0
	}

	names, err := catalog.List(ctx, family)
	if err != nil {
		return Result{}, err
	}
	if len(names) == 0 {
		return Result{}, fmt.Errorf("recommend: no sections of family %s in catalog", family)
	}

	m := section.Steel(in.FyMPa)
	lengths := section.Lengths{Kx: in.K, Ky: in.K, Kz: in.K, Lx: in.LxMM, Ly: in.LyMM}
	res := Result{Family: string(family)}

	for _, name := range names {
		p, err := catalog.Lookup(ctx, name, family)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", name, err))
			continue
		}
		cand := Candidate{Section: p.Name, WeightKG: p.Weight, Pass: true}

		if in.NuKN > 0 {
			ax, err := axial.Calculate(p, m, lengths, axial.Config{})
			if err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", name, err))
				continue
			}
			cand.PdKN = ax.PdKN
			if ax.PdKN < in.NuKN {
				cand.Pass = false
			}
		}
		if in.MuxKNM > 0 {
			fl, err := flexure.Calculate(p, m, in.LbMM, 1.0, flexure.AxisStrong)
			if err != nil {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", name, err))
				continue
			}
			cand.MdxKNM = fl.MdKNM
			if fl.MdKNM < in.MuxKNM {
				cand.Pass = false
			}
		}
		res.Candidates = append(res.Candidates, cand)
	}

	// Lightest first; sections without a tabulated weight sort by area proxy
	// last so a real weight always wins.
	sort.SliceStable(res.Candidates, func(i, j int) bool {
		wi, wj := res.Candidates[i].WeightKG, res.Candidates[j].WeightKG
		if wi <= 0 {
			return false
		}
		if wj <= 0 {
			return true
		}
		return wi < wj
	})
	for i := range res.Candidates {
		if res.Candidates[i].Pass {
			res.Best = &res.Candidates[i]
			break
		}
	}
	return res, nil
}
