package axial

import (
	"fmt"
	"math"

	"steelcheck/internal/section"
)

// Buckling mode tags.
const (
	ModeFlexuralX          = "flexural-x"
	ModeFlexuralY          = "flexural-y"
	ModeTorsionalZ         = "torsional-z"
	ModeFlexuralTorsionalYZ = "flexural-torsional-yz"
	ModeFlexuralMinor      = "flexural-minor-axis"
)

// SlendernessLimit is the normative ceiling on KL/r; exceeding it degrades
// the result with a warning, it does not abort.
const SlendernessLimit = 200.0

type Mode struct {
	Name  string  `json:"name"`
	FeMPa float64 `json:"fe_mpa"`
}

// Buckling carries every elastic buckling stress evaluated for the section
// plus the governing one.
type Buckling struct {
	Modes           []Mode   `json:"modes"`
	FeMPa           float64  `json:"fe_mpa"`
	GoverningMode   string   `json:"governing_mode"`
	SlendernessX    float64  `json:"slenderness_x,omitempty"`
	SlendernessY    float64  `json:"slenderness_y,omitempty"`
	SlendernessMax  float64  `json:"slenderness_max"`
	Warnings        []string `json:"warnings,omitempty"`
}

// feFlexural is the Euler stress π²E/(KL/r)².
func feFlexural(e, kl, r float64) (fe, slenderness float64) {
	slenderness = kl / r
	return math.Pi * math.Pi * e / (slenderness * slenderness), slenderness
}

// feTorsional is the pure torsional stress of a doubly symmetric section,
// (π²·E·Cw/(Kz·Lz)² + G·J) / (A·ro²).
func feTorsional(e, g, j, cw, kzlz, a, ro float64) float64 {
	return (math.Pi*math.Pi*e*cw/(kzlz*kzlz) + g*j) / (a * ro * ro)
}

// feFlexuralTorsional couples Fe_y and Fe_z for a singly symmetric section.
// The discriminant may go negative on degenerate inputs; the caller guards.
func feFlexuralTorsional(feY, feZ, h float64) (float64, bool) {
	sum := feY + feZ
	disc := 1 - 4*feY*feZ*h/(sum*sum)
	if disc < 0 {
		return 0, false
	}
	return sum / (2 * h) * (1 - math.Sqrt(disc)), true
}

// ElasticBuckling evaluates the elastic buckling modes that apply to the
// section family and returns the governing stress.
func ElasticBuckling(p section.Properties, m section.Material, l section.Lengths) (Buckling, error) {
	m = m.Normalized()
	l = l.Normalized()
	var b Buckling

	kxlx := l.Kx * l.Lx
	kyly := l.Ky * l.Ly
	kzlz := l.Kz * l.Lz

	switch p.Family {
	case section.DoubleSymmetricI, section.TeeSection,
		section.CircularTube, section.SquareTube, section.RectangularTube:
		feX, sx := feFlexural(m.E, kxlx, p.Rx)
		feY, sy := feFlexural(m.E, kyly, p.Ry)
		b.Modes = append(b.Modes, Mode{ModeFlexuralX, feX}, Mode{ModeFlexuralY, feY})
		b.SlendernessX, b.SlendernessY = sx, sy
		b.SlendernessMax = math.Max(sx, sy)
		if p.Ro > 0 && (p.J > 0 || p.Cw > 0) {
			feZ := feTorsional(m.E, m.G, p.J, p.Cw, kzlz, p.A, p.Ro)
			b.Modes = append(b.Modes, Mode{ModeTorsionalZ, feZ})
		} else {
			b.Warnings = append(b.Warnings,
				"torsional constants unavailable: pure torsional mode not evaluated")
		}

	case section.Channel:
		feX, sx := feFlexural(m.E, kxlx, p.Rx)
		feY, sy := feFlexural(m.E, kyly, p.Ry)
		b.SlendernessX, b.SlendernessY = sx, sy
		b.SlendernessMax = math.Max(sx, sy)
		b.Modes = append(b.Modes, Mode{ModeFlexuralX, feX})

		feYZ := feY
		if p.H > 0 && p.Xo > 0 && p.Ro > 0 && (p.J > 0 || p.Cw > 0) {
			feZ := feTorsional(m.E, m.G, p.J, p.Cw, kzlz, p.A, p.Ro)
			if v, ok := feFlexuralTorsional(feY, feZ, p.H); ok {
				feYZ = v
			} else {
				b.Warnings = append(b.Warnings,
					"flexural-torsional discriminant negative: using Fe_y (conservative)")
			}
		} else {
			b.Warnings = append(b.Warnings,
				"xo/H unavailable: flexural-torsional buckling taken as Fe_y (conservative)")
		}
		b.Modes = append(b.Modes, Mode{ModeFlexuralTorsionalYZ, feYZ})

	case section.Angle:
		if p.Rv <= 0 {
			return Buckling{}, &section.MissingGeometryError{Section: p.Name, Missing: []string{"rv"}}
		}
		kl := math.Max(kxlx, math.Max(kyly, kzlz))
		fe, s := feFlexural(m.E, kl, p.Rv)
		b.Modes = append(b.Modes, Mode{ModeFlexuralMinor, fe})
		b.SlendernessMax = s

	default:
		return Buckling{}, &section.UnknownFamilyError{Family: string(p.Family)}
	}

	b.FeMPa = math.Inf(1)
	for _, mode := range b.Modes {
		if mode.FeMPa < b.FeMPa {
			b.FeMPa = mode.FeMPa
			b.GoverningMode = mode.Name
		}
	}
	if b.SlendernessMax > SlendernessLimit {
		b.Warnings = append(b.Warnings, fmt.Sprintf(
			"slenderness KL/r = %.1f exceeds the limit of %.0f", b.SlendernessMax, SlendernessLimit))
	}
	return b, nil
}

// CriticalStress maps (Q, Fy, Fe) to Fcr through the two-branch column curve:
// inelastic 0.658^(Q·Fy/Fe)·Q·Fy up to Q·Fy/Fe = 2.25, elastic 0.877·Fe past
// it. The two branches meet at the threshold.
func CriticalStress(q, fy, fe float64) float64 {
	qfy := q * fy
	ratio := qfy / fe
	if ratio <= 2.25 {
		return math.Pow(0.658, ratio) * qfy
	}
	return 0.877 * fe
}
