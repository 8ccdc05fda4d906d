package serviceability

import (
	"encoding/json"
	"net/http"

	"steelcheck/internal/calc/axial"
	"steelcheck/internal/section"
)

type Input struct {
	Section   string    `json:"section"`
	Family    string    `json:"family,omitempty"`
	EMPa      float64   `json:"e_mpa,omitempty"`
	SpanMM    float64   `json:"span_mm"`
	Scheme    string    `json:"scheme"`
	Fractions []float64 `json:"fractions,omitempty"`
}

type Handler struct {
	Catalog section.Repository
}

func NewHandler(catalog section.Repository) *Handler {
	return &Handler{Catalog: catalog}
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	scheme, err := ParseScheme(in.Scheme)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if in.SpanMM <= 0 {
		http.Error(w, "span_mm must be positive", http.StatusBadRequest)
		return
	}
	p, ok := axial.LookupSection(h.Catalog, w, r, in.Section, in.Family)
	if !ok {
		return
	}
	res, err := Calculate(p, in.EMPa, in.SpanMM, scheme, in.Fractions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
