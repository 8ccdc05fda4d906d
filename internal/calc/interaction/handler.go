package interaction

import (
	"encoding/json"
	"net/http"
)

// Input takes precomputed resistances so the endpoint can combine results
// from separate axial and flexural runs, or from hand-entered values.
type Input struct {
	NuKN   float64  `json:"nu_kn"`
	MuxKNM float64  `json:"mux_knm"`
	MuyKNM float64  `json:"muy_knm"`
	PdKN   float64  `json:"pd_kn"`
	MdxKNM float64  `json:"mdx_knm"`
	MdyKNM *float64 `json:"mdy_knm,omitempty"`
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	res, err := Calculate(
		Demand{NuKN: in.NuKN, MuxKNM: in.MuxKNM, MuyKNM: in.MuyKNM},
		Resistance{PdKN: in.PdKN, MdxKNM: in.MdxKNM, MdyKNM: in.MdyKNM},
	)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
