package section

import (
	"errors"
	"testing"
)

func TestParseFamily(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Family
		ok   bool
	}{
		{"W shape", "W", DoubleSymmetricI, true},
		{"IPE", "IPE", DoubleSymmetricI, true},
		{"HEB", "HEB", DoubleSymmetricI, true},
		{"lowercase ipe", "ipe", DoubleSymmetricI, true},
		{"channel UPN", "UPN", Channel, true},
		{"angle", "L", Angle, true},
		{"tee WT", "WT", TeeSection, true},
		{"pipe CHS", "CHS", CircularTube, true},
		{"square SHS", "SHS", SquareTube, true},
		{"HSS maps to rectangular", "HSS", RectangularTube, true},
		{"padded", "  rhs ", RectangularTube, true},
		{"unknown", "ZZ", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFamily(tt.in)
			if tt.ok {
				if err != nil {
					t.Fatalf("ParseFamily(%q) error: %v", tt.in, err)
				}
				if got != tt.want {
					t.Errorf("ParseFamily(%q) = %v, want %v", tt.in, got, tt.want)
				}
				return
			}
			var unknown *UnknownFamilyError
			if !errors.As(err, &unknown) {
				t.Errorf("ParseFamily(%q) error = %v, want UnknownFamilyError", tt.in, err)
			}
		})
	}
}

func TestLengthsNormalized(t *testing.T) {
	l := Lengths{Lx: 4000, Ly: 3000}.Normalized()
	if l.Kx != 1.0 || l.Ky != 1.0 || l.Kz != 1.0 {
		t.Errorf("K defaults = %v/%v/%v, want 1/1/1", l.Kx, l.Ky, l.Kz)
	}
	if l.Lz != 4000 {
		t.Errorf("Lz = %v, want max(Lx, Ly) = 4000", l.Lz)
	}

	l = Lengths{Kx: 0.7, Lx: 2000, Ly: 5000, Lz: 1000}.Normalized()
	if l.Kx != 0.7 {
		t.Errorf("explicit Kx overwritten: %v", l.Kx)
	}
	if l.Lz != 1000 {
		t.Errorf("explicit Lz overwritten: %v", l.Lz)
	}
}

func TestMaterialNormalized(t *testing.T) {
	m := Material{Fy: 250}.Normalized()
	if m.E != DefaultE || m.G != DefaultG {
		t.Errorf("defaults = E %v / G %v, want %v / %v", m.E, m.G, DefaultE, DefaultG)
	}
	m = Material{Fy: 355, E: 210000, G: 81000}.Normalized()
	if m.E != 210000 || m.G != 81000 {
		t.Errorf("explicit constants overwritten: E %v G %v", m.E, m.G)
	}
}

func TestVerifyMissingRequired(t *testing.T) {
	p := Properties{
		Name: "BROKEN", Family: DoubleSymmetricI,
		D: 200, Bf: 100, Tf: 10, Tw: 6,
		// A, Ix, Iy, Sx, rx, ry all missing.
	}
	_, err := p.Verify()
	var missing *MissingGeometryError
	if !errors.As(err, &missing) {
		t.Fatalf("Verify() error = %v, want MissingGeometryError", err)
	}
	if len(missing.Missing) != 6 {
		t.Errorf("missing = %v, want 6 entries", missing.Missing)
	}
}

func TestVerifyOptionalWarns(t *testing.T) {
	p := Properties{
		Name: "UPN 200", Family: Channel,
		D: 200, Bf: 75, Tf: 11.5, Tw: 8.5,
		A: 3220, Ix: 19.1e6, Iy: 1.48e6, Sx: 191e3,
		Rx: 77, Ry: 21.4,
		// J, Cw, xo, H missing: warnings only.
	}
	warnings, err := p.Verify()
	if err != nil {
		t.Fatalf("Verify() error: %v", err)
	}
	if len(warnings) != 4 {
		t.Errorf("warnings = %v, want 4 entries", warnings)
	}
}

func TestVerifyUnknownFamily(t *testing.T) {
	p := Properties{Name: "X", Family: "Z"}
	_, err := p.Verify()
	var unknown *UnknownFamilyError
	if !errors.As(err, &unknown) {
		t.Errorf("Verify() error = %v, want UnknownFamilyError", err)
	}
}
