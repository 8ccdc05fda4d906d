package recommend

import (
	"context"
	"testing"

	"steelcheck/internal/catalog"
	"steelcheck/internal/section"
)

func TestSelectLightestPassing(t *testing.T) {
	cat := catalog.Seed()
	res, err := Select(context.Background(), cat, Input{
		Family: "W", FyMPa: 250, NuKN: 200, LxMM: 3000,
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if res.Best == nil {
		t.Fatal("expected a passing candidate")
	}
	// The 100-series shape (19.3 kg/m) carries 200 kN at 3 m; the W18X97
	// passes too but weighs 144 kg/m.
	if res.Best.Section != "100" {
		t.Errorf("best = %q, want the lightest passing shape", res.Best.Section)
	}
	if res.Best.PdKN <= 200 {
		t.Errorf("best Pd = %v, must exceed the demand", res.Best.PdKN)
	}
	if len(res.Candidates) != 2 {
		t.Errorf("candidates = %d, want both I-shapes evaluated", len(res.Candidates))
	}
}

func TestSelectDemandTooHigh(t *testing.T) {
	cat := catalog.Seed()
	res, err := Select(context.Background(), cat, Input{
		Family: "W", FyMPa: 250, NuKN: 50000, LxMM: 3000,
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if res.Best != nil {
		t.Errorf("no shape carries 50 MN, got %+v", res.Best)
	}
}

func TestSelectWithMomentDemand(t *testing.T) {
	cat := catalog.Seed()
	res, err := Select(context.Background(), cat, Input{
		Family: "W", FyMPa: 250, NuKN: 100, MuxKNM: 15, LxMM: 3000,
	})
	if err != nil {
		t.Fatalf("Select error: %v", err)
	}
	if res.Best == nil {
		t.Fatal("expected a passing candidate")
	}
	if res.Best.MdxKNM < 15 {
		t.Errorf("best Mdx = %v, must cover the moment demand", res.Best.MdxKNM)
	}
}

func TestSelectValidation(t *testing.T) {
	cat := catalog.Seed()
	cases := []Input{
		{Family: "ZZ", FyMPa: 250, NuKN: 100, LxMM: 3000},
		{Family: "W", FyMPa: 0, NuKN: 100, LxMM: 3000},
		{Family: "W", FyMPa: 250, LxMM: 3000},
		{Family: "W", FyMPa: 250, NuKN: 100},
	}
	for i, in := range cases {
		if _, err := Select(context.Background(), cat, in); err == nil {
			t.Errorf("case %d should fail validation", i)
		}
	}
}

var _ section.Repository = catalog.Seed()
