package axial

import (
	"encoding/json"
	"errors"
	"net/http"

	"steelcheck/internal/section"
)

type Input struct {
	Section  string  `json:"section"`
	Family   string  `json:"family,omitempty"`
	FyMPa    float64 `json:"fy_mpa"`
	LxMM     float64 `json:"lx_mm"`
	LyMM     float64 `json:"ly_mm"`
	LzMM     float64 `json:"lz_mm,omitempty"`
	Kx       float64 `json:"kx,omitempty"`
	Ky       float64 `json:"ky,omitempty"`
	Kz       float64 `json:"kz,omitempty"`
	MaxIterQ int     `json:"max_iter_q,omitempty"`
	TolQ     float64 `json:"tol_q,omitempty"`
}

type Handler struct {
	Catalog section.Repository
}

func NewHandler(catalog section.Repository) *Handler {
	return &Handler{Catalog: catalog}
}

// LookupSection resolves a catalog entry from request fields, mapping the
// error kinds to HTTP statuses the same way every calc endpoint does.
func LookupSection(h section.Repository, w http.ResponseWriter, r *http.Request, name, family string) (section.Properties, bool) {
	var fam section.Family
	if family != "" {
		f, err := section.ParseFamily(family)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return section.Properties{}, false
		}
		fam = f
	}
	p, err := h.Lookup(r.Context(), name, fam)
	if err != nil {
		status := http.StatusNotFound
		var ambiguous *section.AmbiguousNameError
		if errors.As(err, &ambiguous) {
			status = http.StatusConflict
		}
		http.Error(w, err.Error(), status)
		return section.Properties{}, false
	}
	return p, true
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.FyMPa <= 0 || input.LxMM <= 0 || input.LyMM <= 0 {
		http.Error(w, "fy_mpa, lx_mm and ly_mm must be positive", http.StatusBadRequest)
		return
	}
	p, ok := LookupSection(h.Catalog, w, r, input.Section, input.Family)
	if !ok {
		return
	}
	res, err := Calculate(p, section.Steel(input.FyMPa), section.Lengths{
		Kx: input.Kx, Ky: input.Ky, Kz: input.Kz,
		Lx: input.LxMM, Ly: input.LyMM, Lz: input.LzMM,
	}, Config{Q: QConfig{MaxIter: input.MaxIterQ, Tol: input.TolQ}})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res.Database = h.Catalog.Source()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
