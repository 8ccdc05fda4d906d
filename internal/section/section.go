// Package section holds the cross-section data model shared by every
// resistance engine: geometric properties in a single unit system
// (mm / mm² / mm³ / mm⁴ / mm⁶ / MPa / N), the section family tags, the
// material constants and the effective-length set. Unit conversion is the
// catalog's job; nothing below this package ever converts units.
package section

import (
	"context"
	"math"
	"strings"
)

// Family identifies the cross-section family. It is resolved once, when the
// section enters the system (catalog load or request parsing); the engines
// dispatch on it through per-family tables, never by re-parsing strings.
type Family string

const (
	DoubleSymmetricI Family = "I"
	Channel          Family = "C"
	Angle            Family = "L"
	TeeSection       Family = "T"
	CircularTube     Family = "PIPE"
	SquareTube       Family = "SHS"
	RectangularTube  Family = "RHS"
)

// familyAliases maps catalog designation prefixes to families, covering both
// the American and the CIRSOC naming conventions.
var familyAliases = map[string]Family{
	"I": DoubleSymmetricI, "W": DoubleSymmetricI, "M": DoubleSymmetricI,
	"HP": DoubleSymmetricI, "S": DoubleSymmetricI, "IPE": DoubleSymmetricI,
	"IPN": DoubleSymmetricI, "IPB": DoubleSymmetricI, "IPBL": DoubleSymmetricI,
	"IPBV": DoubleSymmetricI, "HEB": DoubleSymmetricI, "HEA": DoubleSymmetricI,
	"C": Channel, "MC": Channel, "UPN": Channel,
	"L": Angle,
	"T": TeeSection, "WT": TeeSection, "MT": TeeSection, "ST": TeeSection,
	"PIPE": CircularTube, "CHS": CircularTube,
	"SHS": SquareTube,
	"RHS": RectangularTube, "HSS": RectangularTube,
}

// ParseFamily resolves a designation such as "IPE", "W" or "HSS" to a Family.
func ParseFamily(s string) (Family, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if f, ok := familyAliases[key]; ok {
		return f, nil
	}
	return "", &UnknownFamilyError{Family: s}
}

func (f Family) String() string { return string(f) }

// DoublySymmetric reports whether the family is doubly symmetric (or treated
// as such for elastic buckling).
func (f Family) DoublySymmetric() bool {
	switch f {
	case DoubleSymmetricI, TeeSection, CircularTube, SquareTube, RectangularTube:
		return true
	}
	return false
}

// Properties are the immutable geometric and sectional facts for one
// cross-section. All lengths in mm, areas mm², moduli mm³, inertias mm⁴,
// warping constant mm⁶. Fields that do not apply to a family stay zero.
type Properties struct {
	Name   string `json:"name"`
	Family Family `json:"family"`

	// Outline geometry.
	D  float64 `json:"d_mm"`  // depth (or tube diameter / square side)
	Bf float64 `json:"bf_mm"` // flange width (rect tube width)
	Tf float64 `json:"tf_mm"` // flange thickness
	Tw float64 `json:"tw_mm"` // web thickness
	Hw float64 `json:"hw_mm"` // clear web height
	B  float64 `json:"b_mm"`  // angle leg
	T  float64 `json:"t_mm"`  // angle leg / tube wall thickness

	// Width-to-thickness ratios as tabulated (or derived at catalog load).
	BfTwoTf float64 `json:"bf_2tf"` // flange: bf/2tf (channels: bf/tf stored here)
	HwTw    float64 `json:"hw_tw"`  // web: hw/tw (rect tube: flat web wall)
	BT      float64 `json:"b_t"`    // angle leg b/t, tube flat flange wall
	DT      float64 `json:"d_t"`    // round tube D/t
	DTw     float64 `json:"d_tw"`   // tee stem d/tw

	// Section constants.
	A  float64 `json:"a_mm2"`
	Ix float64 `json:"ix_mm4"`
	Iy float64 `json:"iy_mm4"`
	Sx float64 `json:"sx_mm3"`
	Sy float64 `json:"sy_mm3"`
	Zx float64 `json:"zx_mm3"`
	Zy float64 `json:"zy_mm3"`
	Rx float64 `json:"rx_mm"`
	Ry float64 `json:"ry_mm"`
	Rv float64 `json:"rv_mm"` // minor principal radius of gyration (angles)
	J  float64 `json:"j_mm4"`
	Cw float64 `json:"cw_mm6"`

	// Shear-center data for torsional / flexural-torsional buckling.
	Xo float64 `json:"xo_mm"`
	Yo float64 `json:"yo_mm"`
	Ro float64 `json:"ro_mm"`
	H  float64 `json:"h_sym"` // 1 - (xo²+yo²)/ro²; zero means unavailable

	Weight float64 `json:"weight_kg_m"`
}

// Material carries the steel constants. E and G are process-wide defaults
// (200 000 / 77 200 MPa) that a caller may override per call.
type Material struct {
	Fy float64 `json:"fy_mpa"`
	E  float64 `json:"e_mpa"`
	G  float64 `json:"g_mpa"`
}

const (
	DefaultE = 200_000.0 // MPa
	DefaultG = 77_200.0  // MPa
)

// Steel returns a Material with the default elastic constants.
func Steel(fy float64) Material {
	return Material{Fy: fy, E: DefaultE, G: DefaultG}
}

// Normalized fills zero E/G with the defaults.
func (m Material) Normalized() Material {
	if m.E <= 0 {
		m.E = DefaultE
	}
	if m.G <= 0 {
		m.G = DefaultG
	}
	return m
}

// Lengths bundles effective-length factors and unbraced lengths [mm].
type Lengths struct {
	Kx float64 `json:"kx"`
	Ky float64 `json:"ky"`
	Kz float64 `json:"kz"`
	Lx float64 `json:"lx_mm"`
	Ly float64 `json:"ly_mm"`
	Lz float64 `json:"lz_mm"`
	Lb float64 `json:"lb_mm"`
}

// Normalized applies the conventional defaults: K factors of 1.0 and
// Lz = max(Lx, Ly) when the torsional length is not supplied.
func (l Lengths) Normalized() Lengths {
	if l.Kx <= 0 {
		l.Kx = 1.0
	}
	if l.Ky <= 0 {
		l.Ky = 1.0
	}
	if l.Kz <= 0 {
		l.Kz = 1.0
	}
	if l.Lz <= 0 {
		l.Lz = math.Max(l.Lx, l.Ly)
	}
	return l
}

// Repository is the read-only section catalog contract. Implementations must
// fail with AmbiguousNameError when name alone matches more than one family
// and no family was supplied; they never pick an arbitrary match.
type Repository interface {
	// Lookup returns the section named name. family narrows the search to a
	// single family; pass "" to search across families.
	Lookup(ctx context.Context, name string, family Family) (Properties, error)
	// List returns the section names of a family, or all names for "".
	List(ctx context.Context, family Family) ([]string, error)
	// Source identifies the active database (e.g. "CIRSOC", "AISC").
	Source() string
}
