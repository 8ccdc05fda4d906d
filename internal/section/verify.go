package section

import "fmt"

type propCheck struct {
	name string
	get  func(*Properties) float64
}

// required lists the properties each family cannot compute without.
var required = map[Family][]propCheck{
	DoubleSymmetricI: {
		{"d", func(p *Properties) float64 { return p.D }},
		{"bf", func(p *Properties) float64 { return p.Bf }},
		{"tf", func(p *Properties) float64 { return p.Tf }},
		{"tw", func(p *Properties) float64 { return p.Tw }},
		{"A", func(p *Properties) float64 { return p.A }},
		{"Ix", func(p *Properties) float64 { return p.Ix }},
		{"Iy", func(p *Properties) float64 { return p.Iy }},
		{"Sx", func(p *Properties) float64 { return p.Sx }},
		{"rx", func(p *Properties) float64 { return p.Rx }},
		{"ry", func(p *Properties) float64 { return p.Ry }},
	},
	Channel: {
		{"d", func(p *Properties) float64 { return p.D }},
		{"bf", func(p *Properties) float64 { return p.Bf }},
		{"tf", func(p *Properties) float64 { return p.Tf }},
		{"tw", func(p *Properties) float64 { return p.Tw }},
		{"A", func(p *Properties) float64 { return p.A }},
		{"Ix", func(p *Properties) float64 { return p.Ix }},
		{"Iy", func(p *Properties) float64 { return p.Iy }},
		{"Sx", func(p *Properties) float64 { return p.Sx }},
		{"rx", func(p *Properties) float64 { return p.Rx }},
		{"ry", func(p *Properties) float64 { return p.Ry }},
	},
	Angle: {
		{"b", func(p *Properties) float64 { return p.B }},
		{"t", func(p *Properties) float64 { return p.T }},
		{"A", func(p *Properties) float64 { return p.A }},
		{"Ix", func(p *Properties) float64 { return p.Ix }},
		{"Sx", func(p *Properties) float64 { return p.Sx }},
		{"rv", func(p *Properties) float64 { return p.Rv }},
	},
	TeeSection: {
		{"d", func(p *Properties) float64 { return p.D }},
		{"bf", func(p *Properties) float64 { return p.Bf }},
		{"tf", func(p *Properties) float64 { return p.Tf }},
		{"tw", func(p *Properties) float64 { return p.Tw }},
		{"A", func(p *Properties) float64 { return p.A }},
		{"Ix", func(p *Properties) float64 { return p.Ix }},
		{"Sx", func(p *Properties) float64 { return p.Sx }},
		{"rx", func(p *Properties) float64 { return p.Rx }},
		{"ry", func(p *Properties) float64 { return p.Ry }},
	},
	CircularTube: {
		{"d", func(p *Properties) float64 { return p.D }},
		{"t", func(p *Properties) float64 { return p.T }},
		{"A", func(p *Properties) float64 { return p.A }},
		{"Ix", func(p *Properties) float64 { return p.Ix }},
		{"Sx", func(p *Properties) float64 { return p.Sx }},
		{"rx", func(p *Properties) float64 { return p.Rx }},
	},
	SquareTube: {
		{"d", func(p *Properties) float64 { return p.D }},
		{"t", func(p *Properties) float64 { return p.T }},
		{"A", func(p *Properties) float64 { return p.A }},
		{"Ix", func(p *Properties) float64 { return p.Ix }},
		{"Sx", func(p *Properties) float64 { return p.Sx }},
		{"rx", func(p *Properties) float64 { return p.Rx }},
	},
	RectangularTube: {
		{"d", func(p *Properties) float64 { return p.D }},
		{"bf", func(p *Properties) float64 { return p.Bf }},
		{"t", func(p *Properties) float64 { return p.T }},
		{"A", func(p *Properties) float64 { return p.A }},
		{"Ix", func(p *Properties) float64 { return p.Ix }},
		{"Iy", func(p *Properties) float64 { return p.Iy }},
		{"Sx", func(p *Properties) float64 { return p.Sx }},
		{"rx", func(p *Properties) float64 { return p.Rx }},
		{"ry", func(p *Properties) float64 { return p.Ry }},
	},
}

// optional lists properties whose absence only limits the calculation.
var optional = map[Family][]propCheck{
	DoubleSymmetricI: {
		{"J", func(p *Properties) float64 { return p.J }},
		{"Cw", func(p *Properties) float64 { return p.Cw }},
	},
	Channel: {
		{"J", func(p *Properties) float64 { return p.J }},
		{"Cw", func(p *Properties) float64 { return p.Cw }},
		{"xo", func(p *Properties) float64 { return p.Xo }},
		{"H", func(p *Properties) float64 { return p.H }},
	},
	TeeSection: {
		{"J", func(p *Properties) float64 { return p.J }},
	},
	CircularTube:    {{"J", func(p *Properties) float64 { return p.J }}},
	SquareTube:      {{"J", func(p *Properties) float64 { return p.J }}},
	RectangularTube: {{"J", func(p *Properties) float64 { return p.J }}},
}

// Verify checks that the properties a family's formulas require are present.
// Missing required values are fatal; missing optional values come back as
// warnings on the second return.
func (p *Properties) Verify() ([]string, error) {
	checks, ok := required[p.Family]
	if !ok {
		return nil, &UnknownFamilyError{Family: string(p.Family)}
	}
	var missing []string
	for _, c := range checks {
		if c.get(p) <= 0 {
			missing = append(missing, c.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingGeometryError{Section: p.Name, Missing: missing}
	}
	var warnings []string
	for _, c := range optional[p.Family] {
		if c.get(p) <= 0 {
			warnings = append(warnings, fmt.Sprintf("%q: %s not available, may limit the calculation", p.Name, c.name))
		}
	}
	return warnings, nil
}
