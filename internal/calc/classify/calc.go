// Package classify labels cross-section elements and the section overall as
// compact, noncompact or slender, per the width-to-thickness limits of
// AISC 360-10 Table B4.1 / CIRSOC 301.
package classify

import (
	"fmt"
	"math"

	"steelcheck/internal/section"
)

type Class string

const (
	Compact    Class = "COMPACT"
	Noncompact Class = "NONCOMPACT"
	Slender    Class = "SLENDER"
)

// Element is one classified plate element of the section.
type Element struct {
	Name    string  `json:"name"`
	Lambda  float64 `json:"lambda"`
	LambdaP float64 `json:"lambda_p"`
	LambdaR float64 `json:"lambda_r"`
	Class   Class   `json:"class"`
}

type Result struct {
	Section  string    `json:"section"`
	Family   string    `json:"family"`
	Elements []Element `json:"elements"`
	Class    Class     `json:"class"`
	Slender  bool      `json:"slender"`
	Warnings []string  `json:"warnings,omitempty"`
}

// limitFn returns (λp, λr) for one element of a family.
type limitFn func(e, fy float64) (float64, float64)

func sqrtLimits(cp, cr float64) limitFn {
	return func(e, fy float64) (float64, float64) {
		root := math.Sqrt(e / fy)
		return cp * root, cr * root
	}
}

// element describes one governing plate element of a family: where its
// slenderness ratio lives on Properties and which limits apply.
type element struct {
	name   string
	ratio  func(*section.Properties) float64
	limits limitFn
}

// familyElements is the closed per-family dispatch table, built once.
var familyElements = map[section.Family][]element{
	section.DoubleSymmetricI: {
		{"flange (bf/2tf)", func(p *section.Properties) float64 { return p.BfTwoTf }, sqrtLimits(0.38, 1.00)},
		{"web (hw/tw)", func(p *section.Properties) float64 { return p.HwTw }, sqrtLimits(3.76, 5.70)},
	},
	section.Channel: {
		{"flange (bf/2tf)", func(p *section.Properties) float64 { return p.BfTwoTf }, sqrtLimits(0.38, 1.00)},
		{"web (hw/tw)", func(p *section.Properties) float64 { return p.HwTw }, sqrtLimits(3.76, 5.70)},
	},
	section.Angle: {
		{"leg (b/t)", func(p *section.Properties) float64 { return p.BT }, sqrtLimits(0.38, 0.45)},
	},
	section.TeeSection: {
		{"flange (bf/2tf)", func(p *section.Properties) float64 { return p.BfTwoTf }, sqrtLimits(0.38, 1.00)},
		{"stem (d/tw)", func(p *section.Properties) float64 { return p.DTw }, sqrtLimits(0.84, 1.03)},
	},
	section.CircularTube: {
		{"wall (D/t)", func(p *section.Properties) float64 { return p.DT },
			func(e, fy float64) (float64, float64) { return 0.07 * e / fy, 0.31 * e / fy }},
	},
	section.SquareTube: {
		{"wall (b/t)", func(p *section.Properties) float64 { return p.BT }, sqrtLimits(1.12, 1.40)},
	},
	section.RectangularTube: {
		{"flange (b/t)", func(p *section.Properties) float64 { return p.BT }, sqrtLimits(1.12, 1.40)},
		{"web (h/t)", func(p *section.Properties) float64 { return p.HwTw }, sqrtLimits(2.42, 5.70)},
	},
}

func classifyElement(name string, lambda, lp, lr float64) Element {
	cls := Slender
	switch {
	case lambda <= lp:
		cls = Compact
	case lambda <= lr:
		cls = Noncompact
	}
	return Element{Name: name, Lambda: lambda, LambdaP: lp, LambdaR: lr, Class: cls}
}

// Calculate classifies every governing element of the section and takes the
// worst label as the section class.
func Calculate(p section.Properties, m section.Material) (Result, error) {
	m = m.Normalized()
	if m.Fy <= 0 {
		return Result{}, fmt.Errorf("classify: Fy must be positive, got %g", m.Fy)
	}
	elems, ok := familyElements[p.Family]
	if !ok {
		return Result{}, &section.UnknownFamilyError{Family: string(p.Family)}
	}

	res := Result{Section: p.Name, Family: string(p.Family), Class: Compact}
	for _, el := range elems {
		ratio := el.ratio(&p)
		if ratio <= 0 {
			return Result{}, &section.MissingGeometryError{Section: p.Name, Missing: []string{el.name}}
		}
		lp, lr := el.limits(m.E, m.Fy)
		e := classifyElement(el.name, ratio, lp, lr)
		res.Elements = append(res.Elements, e)
		if worse(e.Class, res.Class) {
			res.Class = e.Class
		}
	}
	res.Slender = res.Class == Slender
	if p.Family == section.Angle {
		res.Warnings = append(res.Warnings,
			"angle: λp taken conservatively as the double-T flange value (0.38·√(E/Fy))")
	}
	return res, nil
}

func worse(a, b Class) bool { return rank(a) > rank(b) }

func rank(c Class) int {
	switch c {
	case Slender:
		return 2
	case Noncompact:
		return 1
	}
	return 0
}
