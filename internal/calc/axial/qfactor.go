package axial

import (
	"fmt"
	"math"

	"steelcheck/internal/section"
)

// QRecord is the audit trail of the slender-element reduction.
type QRecord struct {
	Qs         float64  `json:"qs"`
	Qa         float64  `json:"qa"`
	Q          float64  `json:"q"`
	Iterations int      `json:"iterations"`
	Converged  bool     `json:"converged"`
	Notes      []string `json:"notes,omitempty"`
}

// QConfig drives the fixed-point iteration on Q. Zero values take the
// conventional defaults; both knobs stay explicit parameters so a run is
// reproducible from its inputs alone.
type QConfig struct {
	MaxIter int     `json:"max_iter"`
	Tol     float64 `json:"tol"`
}

const (
	DefaultQMaxIter = 5
	DefaultQTol     = 0.01
)

func (c QConfig) normalized() QConfig {
	if c.MaxIter <= 0 {
		c.MaxIter = DefaultQMaxIter
	}
	if c.Tol <= 0 {
		c.Tol = DefaultQTol
	}
	return c
}

// unstiffenedQs evaluates the three-branch reduction for one unstiffened
// element: below c1·√(E/Fy) no reduction, between c1 and c2 the linear
// formula a−b·λ·√(Fy/E), past c2 the elastic k·E/(Fy·λ²).
func unstiffenedQs(lambda, e, fy, c1, c2, a, b, k float64) float64 {
	root := math.Sqrt(e / fy)
	switch {
	case lambda <= c1*root:
		return 1.0
	case lambda < c2*root:
		return a - b*lambda*math.Sqrt(fy/e)
	default:
		return k * e / (fy * lambda * lambda)
	}
}

// qs returns the unstiffened-element factor for the section's family.
func qs(p *section.Properties, m section.Material) float64 {
	switch p.Family {
	case section.DoubleSymmetricI, section.Channel:
		// Rolled-shape flange.
		return unstiffenedQs(p.BfTwoTf, m.E, m.Fy, 0.56, 1.03, 1.415, 0.74, 0.69)
	case section.Angle:
		return unstiffenedQs(p.BT, m.E, m.Fy, 0.45, 0.91, 1.34, 0.76, 0.53)
	case section.TeeSection:
		flange := unstiffenedQs(p.BfTwoTf, m.E, m.Fy, 0.56, 1.03, 1.415, 0.74, 0.69)
		stem := unstiffenedQs(p.DTw, m.E, m.Fy, 0.75, 1.03, 1.908, 1.22, 0.69)
		return math.Min(flange, stem)
	default:
		// Tube walls are all stiffened.
		return 1.0
	}
}

// effectiveWidth is the reduced width of a stiffened element under stress f.
// coeff is 0.38 for tube walls and 0.34 for other stiffened elements.
func effectiveWidth(b, t, e, f, coeff float64) float64 {
	if f <= 0 || t <= 0 {
		return b
	}
	root := math.Sqrt(e / f)
	be := 1.92 * t * root * (1 - coeff/(b/t)*root)
	if be > b || be < 0 {
		return b
	}
	return be
}

// qa returns the stiffened-element factor given the working stress f
// (taken as the trial Fcr, the documented simplification).
func qa(p *section.Properties, m section.Material, f float64) float64 {
	switch p.Family {
	case section.DoubleSymmetricI, section.Channel:
		if p.Hw <= 0 || p.Tw <= 0 {
			return 1.0
		}
		be := effectiveWidth(p.Hw, p.Tw, m.E, f, 0.34)
		aeff := p.A - (p.Hw-be)*p.Tw
		return aeff / p.A
	case section.SquareTube:
		b := p.BT * p.T
		be := effectiveWidth(b, p.T, m.E, f, 0.38)
		aeff := p.A - 4*(b-be)*p.T
		return aeff / p.A
	case section.RectangularTube:
		bFlange := p.BT * p.T
		bWeb := p.HwTw * p.T
		beF := effectiveWidth(bFlange, p.T, m.E, f, 0.38)
		beW := effectiveWidth(bWeb, p.T, m.E, f, 0.38)
		aeff := p.A - 2*(bFlange-beF)*p.T - 2*(bWeb-beW)*p.T
		return aeff / p.A
	case section.CircularTube:
		// Round sections reduce on D/t directly, independent of f.
		lim := 0.11 * m.E / m.Fy
		if p.DT <= lim {
			return 1.0
		}
		return 0.038*m.E/(m.Fy*p.DT) + 2.0/3.0
	default:
		return 1.0
	}
}

// solveQ runs the fixed-point iteration Q → Fcr → Q until the relative change
// drops under the tolerance or the cap is hit. Non-convergence keeps the last
// Q and flags the record; it is not fatal.
func solveQ(p section.Properties, m section.Material, fe float64, cfg QConfig) (QRecord, []string) {
	cfg = cfg.normalized()
	var warnings []string

	rec := QRecord{Qs: 1, Qa: 1, Q: 1}
	q := 1.0
	relErr := math.Inf(1)
	for iter := 1; iter <= cfg.MaxIter; iter++ {
		fcr := CriticalStress(q, m.Fy, fe)
		rec.Qs = qs(&p, m)
		rec.Qa = qa(&p, m, fcr)
		qNew := rec.Qs * rec.Qa
		rec.Iterations = iter
		relErr = math.Abs(qNew-q) / q
		rec.Q = qNew
		if relErr < cfg.Tol {
			rec.Converged = true
			break
		}
		q = qNew
	}
	if rec.Converged {
		warnings = append(warnings, fmt.Sprintf(
			"Q converged in %d iterations: Q = %.4f (Qs = %.4f, Qa = %.4f)",
			rec.Iterations, rec.Q, rec.Qs, rec.Qa))
	} else {
		warnings = append(warnings, fmt.Sprintf(
			"Q did not converge within %d iterations, using last value Q = %.4f",
			cfg.MaxIter, rec.Q))
	}
	rec.Notes = append(rec.Notes,
		"Qa from the simplified effective-width reduction with f taken as the trial Fcr")
	return rec, warnings
}
