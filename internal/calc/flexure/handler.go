package flexure

import (
	"encoding/json"
	"net/http"

	"steelcheck/internal/calc/axial"
	"steelcheck/internal/section"
)

type Input struct {
	Section string  `json:"section"`
	Family  string  `json:"family,omitempty"`
	FyMPa   float64 `json:"fy_mpa"`
	LbMM    float64 `json:"lb_mm"`
	Cb      float64 `json:"cb,omitempty"`
}

type Handler struct {
	Catalog section.Repository
}

func NewHandler(catalog section.Repository) *Handler {
	return &Handler{Catalog: catalog}
}

// Calc resolves the section and returns the flexural resistance about both
// axes. Weak-axis output is omitted for families that have none.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if in.FyMPa <= 0 {
		http.Error(w, "fy_mpa must be positive", http.StatusBadRequest)
		return
	}
	if in.LbMM < 0 {
		http.Error(w, "lb_mm must not be negative", http.StatusBadRequest)
		return
	}
	p, ok := axial.LookupSection(h.Catalog, w, r, in.Section, in.Family)
	if !ok {
		return
	}
	res, err := CalculateBoth(p, section.Steel(in.FyMPa), in.LbMM, in.Cb)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
