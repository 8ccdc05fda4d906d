package catalog

import (
	"math"

	"steelcheck/internal/section"
)

// Seed returns the built-in catalog used when no database is configured and
// by the test suites. Values are tabulated shape properties in mm units.
// The name "100" exists both as an I-shape and as a square tube on purpose:
// bare-name lookups for it must fail as ambiguous.
func Seed() *Memory {
	return NewMemory("BUILTIN", seedEntries())
}

func seedEntries() []section.Properties {
	entries := []section.Properties{
		{
			Name: "W18X97", Family: section.DoubleSymmetricI,
			D: 472, Bf: 283, Tf: 22.1, Tw: 13.6, Hw: 409,
			A: 18_400, Ix: 726e6, Iy: 83.6e6,
			Sx: 3080e3, Sy: 591e3, Zx: 3420e3, Zy: 912e3,
			Rx: 199, Ry: 67.3, J: 2170e3, Cw: 4.22e12,
			BfTwoTf: 6.41, HwTw: 30.1, Weight: 144,
		},
		{
			// 100-series wide flange (W100x19.3).
			Name: "100", Family: section.DoubleSymmetricI,
			D: 106, Bf: 103, Tf: 8.8, Tw: 7.1, Hw: 84,
			A: 2470, Ix: 4.70e6, Iy: 1.61e6,
			Sx: 88.7e3, Sy: 31.2e3, Zx: 100e3, Zy: 47.7e3,
			Rx: 43.6, Ry: 25.5, J: 62.8e3, Cw: 3.80e9,
			BfTwoTf: 5.85, HwTw: 11.8, Weight: 19.3,
		},
		{
			Name: "C15X50", Family: section.Channel,
			D: 381, Bf: 94.5, Tf: 16.5, Tw: 18.2, Hw: 348,
			A: 9480, Ix: 169e6, Iy: 4.58e6,
			Sx: 887e3, Sy: 58.9e3, Zx: 1100e3, Zy: 113e3,
			Rx: 133, Ry: 22.0, J: 758e3, Cw: 108e9,
			BfTwoTf: 5.73, HwTw: 19.1, Xo: 33.0, Weight: 74.4,
		},
		{
			// UPN without tabulated shear-center data: xo/H stay zero and the
			// flexural-torsional mode falls back to Fe_y with a warning.
			Name: "UPN 200", Family: section.Channel,
			D: 200, Bf: 75, Tf: 11.5, Tw: 8.5, Hw: 167,
			A: 3220, Ix: 19.1e6, Iy: 1.48e6,
			Sx: 191e3, Sy: 27.0e3, Zx: 228e3, Zy: 51.4e3,
			Rx: 77.0, Ry: 21.4, J: 119e3, Cw: 26.3e9,
			BfTwoTf: 6.52, HwTw: 19.6, Weight: 25.3,
		},
		{
			Name: "L 4X4X1/2", Family: section.Angle,
			B: 102, T: 12.7,
			A: 2420, Ix: 2.34e6, Iy: 2.34e6,
			Sx: 32.6e3, Sy: 32.6e3,
			Rx: 31.1, Ry: 31.1, Rv: 19.8, J: 133e3,
			BT: 8.0, Xo: 28.7, Yo: 28.7, Weight: 19.0,
		},
		{
			Name: "WT8X25", Family: section.TeeSection,
			D: 206.5, Bf: 179.6, Tf: 16.0, Tw: 9.65,
			A: 4755, Ix: 17.6e6, Iy: 7.74e6,
			Sx: 111e3, Sy: 86.2e3, Zx: 123e3,
			Rx: 61.0, Ry: 40.4, J: 217e3,
			BfTwoTf: 5.61, DTw: 21.4, Weight: 37.2,
		},
		{
			Name: "PIPE 8 STD", Family: section.CircularTube,
			D: 219.1, T: 7.62,
			A: 5420, Ix: 30.2e6, Iy: 30.2e6,
			Sx: 275e3, Sy: 275e3, Zx: 360e3, Zy: 360e3,
			Rx: 74.7, Ry: 74.7, J: 60.4e6,
			Weight: 42.6,
		},
		{
			Name: "SHS 150X150X8", Family: section.SquareTube,
			D: 150, T: 8,
			A: 4480, Ix: 15.4e6, Iy: 15.4e6,
			Sx: 205e3, Sy: 205e3, Zx: 245e3, Zy: 245e3,
			Rx: 58.6, Ry: 58.6, J: 23.0e6,
			Weight: 35.2,
		},
		{
			// Square tube sharing the bare name "100" with the W-shape above.
			Name: "100", Family: section.SquareTube,
			D: 100, T: 5,
			A: 1890, Ix: 2.90e6, Iy: 2.90e6,
			Sx: 58.0e3, Sy: 58.0e3, Zx: 68.0e3, Zy: 68.0e3,
			Rx: 39.1, Ry: 39.1, J: 4.60e6,
			Weight: 14.8,
		},
		{
			Name: "RHS 200X100X8", Family: section.RectangularTube,
			D: 200, Bf: 100, T: 8,
			A: 4480, Ix: 24.2e6, Iy: 8.10e6,
			Sx: 242e3, Sy: 162e3, Zx: 295e3, Zy: 185e3,
			Rx: 73.5, Ry: 42.5, J: 19.6e6,
			Weight: 35.2,
		},
	}
	for i := range entries {
		Derive(&entries[i])
	}
	return entries
}

// Derive fills the ratios and shear-center constants a backend did not
// tabulate. It is the single place where geometry turns into the quantities
// the engines consume; catalog backends call it after loading a row.
func Derive(p *section.Properties) {
	switch p.Family {
	case section.DoubleSymmetricI, section.TeeSection:
		if p.BfTwoTf <= 0 && p.Bf > 0 && p.Tf > 0 {
			p.BfTwoTf = p.Bf / (2 * p.Tf)
		}
		if p.Hw <= 0 && p.HwTw > 0 && p.Tw > 0 {
			p.Hw = p.HwTw * p.Tw
		}
		if p.HwTw <= 0 && p.Hw > 0 && p.Tw > 0 {
			p.HwTw = p.Hw / p.Tw
		}
		if p.Family == section.TeeSection && p.DTw <= 0 && p.D > 0 && p.Tw > 0 {
			p.DTw = p.D / p.Tw
		}
		if p.Ro <= 0 && p.A > 0 {
			p.Ro = math.Sqrt((p.Ix + p.Iy) / p.A)
		}
		if p.Family == section.DoubleSymmetricI {
			p.Xo, p.Yo = 0, 0
			p.H = 1.0
		}
	case section.Channel:
		if p.BfTwoTf <= 0 && p.Bf > 0 && p.Tf > 0 {
			p.BfTwoTf = p.Bf / (2 * p.Tf)
		}
		if p.Hw <= 0 && p.HwTw > 0 && p.Tw > 0 {
			p.Hw = p.HwTw * p.Tw
		}
		if p.HwTw <= 0 && p.Hw > 0 && p.Tw > 0 {
			p.HwTw = p.Hw / p.Tw
		}
		// Shear-center constants only when xo is known; otherwise the
		// flexural-torsional mode degrades to Fe_y downstream.
		if p.Xo > 0 && p.A > 0 && p.Ro <= 0 {
			p.Ro = math.Sqrt(p.Xo*p.Xo + (p.Ix+p.Iy)/p.A)
		}
		if p.H <= 0 && p.Ro > 0 && p.Xo > 0 {
			p.H = 1 - p.Xo*p.Xo/(p.Ro*p.Ro)
		}
	case section.Angle:
		if p.BT <= 0 && p.B > 0 && p.T > 0 {
			p.BT = p.B / p.T
		}
		if p.Ro <= 0 && p.A > 0 {
			p.Ro = math.Sqrt(2*p.Xo*p.Xo + (p.Ix+p.Iy)/p.A)
		}
	case section.CircularTube:
		if p.DT <= 0 && p.D > 0 && p.T > 0 {
			p.DT = p.D / p.T
		}
		p.Ro = math.Sqrt(p.Rx*p.Rx + p.Ry*p.Ry)
		p.H = 1.0
	case section.SquareTube:
		if p.BT <= 0 && p.D > 0 && p.T > 0 {
			p.BT = (p.D - 3*p.T) / p.T // flat wall width
		}
		p.HwTw = p.BT
		p.Ro = math.Sqrt(p.Rx*p.Rx + p.Ry*p.Ry)
		p.H = 1.0
	case section.RectangularTube:
		if p.BT <= 0 && p.Bf > 0 && p.T > 0 {
			p.BT = (p.Bf - 3*p.T) / p.T
		}
		if p.HwTw <= 0 && p.D > 0 && p.T > 0 {
			p.HwTw = (p.D - 3*p.T) / p.T
		}
		p.Ro = math.Sqrt(p.Rx*p.Rx + p.Ry*p.Ry)
		p.H = 1.0
	}
}
