// Package importer accepts an xlsx workbook of member definitions and runs
// the axial check over every row, one result per member. Rows that cannot be
// parsed or resolved are reported, not fatal.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"steelcheck/internal/calc/axial"
	"steelcheck/internal/section"
)

type Handler struct {
	Catalog section.Repository
}

func NewHandler(catalog section.Repository) *Handler {
	return &Handler{Catalog: catalog}
}

type RowError struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ImportResult struct {
	Count   int            `json:"count"`
	Results []axial.Result `json:"results"`
	Skipped []RowError     `json:"skipped,omitempty"`
}

// Axial reads the first sheet. Expected columns, header in row 1:
// section, family, fy_mpa, lx_mm, ly_mm, lz_mm, kx, ky, kz.
// Only section, fy_mpa and lx_mm are mandatory; ly defaults to lx and the
// effective length factors to 1.0.
func (h *Handler) Axial(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "invalid xlsx file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "empty sheet", http.StatusBadRequest)
		return
	}

	out := ImportResult{}
	for i := 1; i < len(rows); i++ {
		res, err := h.runRow(r, rows[i])
		if err != nil {
			out.Skipped = append(out.Skipped, RowError{Row: i + 1, Reason: err.Error()})
			continue
		}
		out.Results = append(out.Results, res)
	}
	out.Count = len(out.Results)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

func (h *Handler) runRow(r *http.Request, row []string) (axial.Result, error) {
	if len(row) < 4 || row[0] == "" {
		return axial.Result{}, fmt.Errorf("section name and lengths required")
	}
	name := row[0]
	familyName := cell(row, 1)

	fy, err := toFloat(cell(row, 2))
	if err != nil || fy <= 0 {
		return axial.Result{}, fmt.Errorf("fy_mpa must be a positive number")
	}
	lx, err := toFloat(cell(row, 3))
	if err != nil || lx <= 0 {
		return axial.Result{}, fmt.Errorf("lx_mm must be a positive number")
	}
	lengths := section.Lengths{Lx: lx, Ly: lx}
	if v, err := toFloat(cell(row, 4)); err == nil && v > 0 {
		lengths.Ly = v
	}
	if v, err := toFloat(cell(row, 5)); err == nil && v > 0 {
		lengths.Lz = v
	}
	if v, err := toFloat(cell(row, 6)); err == nil && v > 0 {
		lengths.Kx = v
	}
	if v, err := toFloat(cell(row, 7)); err == nil && v > 0 {
		lengths.Ky = v
	}
	if v, err := toFloat(cell(row, 8)); err == nil && v > 0 {
		lengths.Kz = v
	}

	var family section.Family
	if familyName != "" {
		family, err = section.ParseFamily(familyName)
		if err != nil {
			return axial.Result{}, err
		}
	}
	p, err := h.Catalog.Lookup(r.Context(), name, family)
	if err != nil {
		return axial.Result{}, err
	}
	return axial.Calculate(p, section.Steel(fy), lengths, axial.Config{})
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func toFloat(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty cell")
	}
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
