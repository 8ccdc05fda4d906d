package catalog

import (
	"context"
	"errors"
	"math"
	"testing"

	"steelcheck/internal/section"
)

func TestLookupByName(t *testing.T) {
	cat := Seed()
	p, err := cat.Lookup(context.Background(), "W18X97", "")
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}
	if p.Family != section.DoubleSymmetricI {
		t.Errorf("family = %v, want I", p.Family)
	}
	if p.A != 18400 {
		t.Errorf("A = %v, want 18400", p.A)
	}
}

func TestLookupCaseInsensitive(t *testing.T) {
	cat := Seed()
	if _, err := cat.Lookup(context.Background(), "w18x97", ""); err != nil {
		t.Errorf("lowercase lookup failed: %v", err)
	}
	if _, err := cat.Lookup(context.Background(), " PIPE 8 STD ", ""); err != nil {
		t.Errorf("padded lookup failed: %v", err)
	}
}

func TestLookupAmbiguous(t *testing.T) {
	cat := Seed()

	// "100" exists both as an I-shape and as a square tube.
	_, err := cat.Lookup(context.Background(), "100", "")
	var ambiguous *section.AmbiguousNameError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("bare lookup error = %v, want AmbiguousNameError", err)
	}
	if len(ambiguous.Families) != 2 {
		t.Errorf("families = %v, want 2", ambiguous.Families)
	}

	// The family filter disambiguates.
	p, err := cat.Lookup(context.Background(), "100", section.DoubleSymmetricI)
	if err != nil {
		t.Fatalf("filtered lookup error: %v", err)
	}
	if p.Family != section.DoubleSymmetricI {
		t.Errorf("family = %v, want I", p.Family)
	}
	p, err = cat.Lookup(context.Background(), "100", section.SquareTube)
	if err != nil {
		t.Fatalf("filtered lookup error: %v", err)
	}
	if p.D != 100 || p.T != 5 {
		t.Errorf("got %v/%v, want the 100x100x5 tube", p.D, p.T)
	}
}

func TestLookupNotFound(t *testing.T) {
	cat := Seed()
	_, err := cat.Lookup(context.Background(), "W99X999", "")
	var notFound *section.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
	if notFound.Database != "BUILTIN" {
		t.Errorf("database = %q, want BUILTIN", notFound.Database)
	}

	// Right name, wrong family.
	_, err = cat.Lookup(context.Background(), "W18X97", section.Channel)
	if !errors.As(err, &notFound) {
		t.Errorf("family-mismatch error = %v, want NotFoundError", err)
	}
}

func TestListByFamily(t *testing.T) {
	cat := Seed()
	names, err := cat.List(context.Background(), section.Channel)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("channels = %v, want 2", names)
	}
	all, err := cat.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 10 {
		t.Errorf("all names = %d, want 10", len(all))
	}
}

func TestAmbiguousNames(t *testing.T) {
	amb := Seed().AmbiguousNames()
	if len(amb) != 1 {
		t.Fatalf("ambiguous names = %v, want just one", amb)
	}
	if _, ok := amb["100"]; !ok {
		t.Errorf("ambiguous names = %v, want \"100\"", amb)
	}
}

func TestDeriveRatios(t *testing.T) {
	p := section.Properties{
		Family: section.DoubleSymmetricI,
		D:      200, Bf: 100, Tf: 10, Tw: 6, Hw: 168,
		A: 3000, Ix: 20e6, Iy: 2e6,
	}
	Derive(&p)
	if math.Abs(p.BfTwoTf-5.0) > 1e-12 {
		t.Errorf("bf/2tf = %v, want 5", p.BfTwoTf)
	}
	if math.Abs(p.HwTw-28.0) > 1e-12 {
		t.Errorf("hw/tw = %v, want 28", p.HwTw)
	}
	if p.H != 1.0 || p.Xo != 0 {
		t.Errorf("doubly symmetric constants: H = %v, xo = %v", p.H, p.Xo)
	}
	wantRo := math.Sqrt((20e6 + 2e6) / 3000)
	if math.Abs(p.Ro-wantRo) > 1e-9 {
		t.Errorf("ro = %v, want %v", p.Ro, wantRo)
	}
}

func TestDeriveChannelShearCenter(t *testing.T) {
	p := section.Properties{
		Family: section.Channel,
		Xo:     33.0, A: 9480, Ix: 169e6, Iy: 4.58e6,
	}
	Derive(&p)
	wantRo := math.Sqrt(33.0*33.0 + (169e6+4.58e6)/9480)
	if math.Abs(p.Ro-wantRo) > 1e-9 {
		t.Errorf("ro = %v, want %v", p.Ro, wantRo)
	}
	wantH := 1 - 33.0*33.0/(wantRo*wantRo)
	if math.Abs(p.H-wantH) > 1e-12 {
		t.Errorf("H = %v, want %v", p.H, wantH)
	}

	// No xo tabulated: the constants stay zero.
	q := section.Properties{Family: section.Channel, A: 3220, Ix: 19.1e6, Iy: 1.48e6}
	Derive(&q)
	if q.Ro != 0 || q.H != 0 {
		t.Errorf("without xo: ro = %v, H = %v, want zero", q.Ro, q.H)
	}
}

func TestDeriveTubeFlats(t *testing.T) {
	p := section.Properties{Family: section.SquareTube, D: 150, T: 8, Rx: 58.6, Ry: 58.6}
	Derive(&p)
	if math.Abs(p.BT-15.75) > 1e-12 {
		t.Errorf("square flat b/t = %v, want 15.75", p.BT)
	}
	if p.HwTw != p.BT {
		t.Errorf("square tube: hw/tw = %v, want same as b/t", p.HwTw)
	}

	r := section.Properties{Family: section.RectangularTube, D: 200, Bf: 100, T: 8, Rx: 73.5, Ry: 42.5}
	Derive(&r)
	if math.Abs(r.BT-9.5) > 1e-12 || math.Abs(r.HwTw-22.0) > 1e-12 {
		t.Errorf("rect flats = %v / %v, want 9.5 / 22", r.BT, r.HwTw)
	}
}
