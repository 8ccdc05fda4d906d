package classify

import (
	"encoding/json"
	"errors"
	"net/http"

	"steelcheck/internal/section"
)

type Input struct {
	Section string  `json:"section"`
	Family  string  `json:"family,omitempty"`
	FyMPa   float64 `json:"fy_mpa"`
	EMPa    float64 `json:"e_mpa,omitempty"`
}

type Handler struct {
	Catalog section.Repository
}

func NewHandler(catalog section.Repository) *Handler {
	return &Handler{Catalog: catalog}
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var fam section.Family
	if input.Family != "" {
		f, err := section.ParseFamily(input.Family)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		fam = f
	}
	p, err := h.Catalog.Lookup(r.Context(), input.Section, fam)
	if err != nil {
		status := http.StatusNotFound
		var ambiguous *section.AmbiguousNameError
		if errors.As(err, &ambiguous) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return
	}
	res, err := Calculate(p, section.Material{Fy: input.FyMPa, E: input.EMPa})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
