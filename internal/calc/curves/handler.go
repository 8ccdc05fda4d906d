package curves

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
	StartMM float64 `json:"start_mm"`
	EndMM   float64 `json:"end_mm"`
	StepMM  float64 `json:"step_mm"`
	K       float64 `json:"k,omitempty"`
	Cb      float64 `json:"cb,omitempty"`
}

type Handler struct {
	Catalog section.Repository
}

func NewHandler(catalog section.Repository) *Handler {
	return &Handler{Catalog: catalog}
}

// Axial serves the Pd-vs-length curve.
func (h *Handler) Axial(w http.ResponseWriter, r *http.Request) {
	in, p, ok := h.decode(w, r)
	if !ok {
		return
	}
	curve, err := AxialSweep(p, section.Steel(in.FyMPa), in.K, Sweep{StartMM: in.StartMM, EndMM: in.EndMM, StepMM: in.StepMM})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(curve)
}

// Flexural serves the Mdx-vs-Lb curve.
func (h *Handler) Flexural(w http.ResponseWriter, r *http.Request) {
	in, p, ok := h.decode(w, r)
	if !ok {
		return
	}
	curve, err := FlexuralSweep(p, section.Steel(in.FyMPa), in.Cb, Sweep{StartMM: in.StartMM, EndMM: in.EndMM, StepMM: in.StepMM})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(curve)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (Input, section.Properties, bool) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return in, section.Properties{}, false
	}
	if in.FyMPa <= 0 {
		http.Error(w, "fy_mpa must be positive", http.StatusBadRequest)
		return in, section.Properties{}, false
	}
	p, ok := axial.LookupSection(h.Catalog, w, r, in.Section, in.Family)
	return in, p, ok
}
