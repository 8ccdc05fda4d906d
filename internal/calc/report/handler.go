// Package report renders a verification run as a PDF calculation sheet. The
// engines record every intermediate, so the report only formats, it never
// recomputes.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"steelcheck/internal/calc/axial"
	"steelcheck/internal/calc/flexure"
	"steelcheck/internal/calc/interaction"
)

type Input struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`

	Axial       *axial.Result       `json:"axial,omitempty"`
	Flexure     *flexure.Results    `json:"flexure,omitempty"`
	Interaction *interaction.Result `json:"interaction,omitempty"`
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}
	if in.Title == "" {
		in.Title = "Member Verification Report"
	}
	if in.Axial == nil && in.Flexure == nil && in.Interaction == nil {
		http.Error(w, "at least one result block required", http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if in.Axial != nil {
		axialSection(pdf, in.Axial)
	}
	if in.Flexure != nil {
		flexureSection(pdf, in.Flexure)
	}
	if in.Interaction != nil {
		interactionSection(pdf, in.Interaction)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"verification.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "report generation error", http.StatusInternalServerError)
		return
	}
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, text)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
}

func line(pdf *gofpdf.Fpdf, format string, args ...any) {
	pdf.Cell(0, 5, fmt.Sprintf(format, args...))
	pdf.Ln(5)
}

func warnings(pdf *gofpdf.Fpdf, ws []string) {
	if len(ws) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "I", 9)
	for _, msg := range ws {
		pdf.Cell(0, 5, "! "+msg)
		pdf.Ln(5)
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.Ln(2)
}

func axialSection(pdf *gofpdf.Fpdf, res *axial.Result) {
	heading(pdf, "Axial Compression")
	line(pdf, "Section: %s (%s)   Fy = %.0f MPa   A = %.0f mm2", res.Section, res.Family, res.FyMPa, res.AreaMM2)
	line(pdf, "Classification: %s", res.Classification.Class)
	line(pdf, "Governing elastic buckling: %s, Fe = %.2f MPa", res.Buckling.GoverningMode, res.Buckling.FeMPa)
	line(pdf, "Max slenderness KL/r = %.1f", res.Buckling.SlendernessMax)
	if res.Q.Q < 1.0 {
		line(pdf, "Slender reduction: Qs = %.4f  Qa = %.4f  Q = %.4f (%d iterations)",
			res.Q.Qs, res.Q.Qa, res.Q.Q, res.Q.Iterations)
	}
	line(pdf, "Fcr = %.2f MPa   Pn = %.1f kN   Pd = %.1f kN (phi = %.2f)",
		res.FcrMPa, res.PnKN, res.PdKN, res.PhiC)
	warnings(pdf, res.Warnings)
	pdf.Ln(4)
}

func flexureSection(pdf *gofpdf.Fpdf, res *flexure.Results) {
	heading(pdf, "Flexure")
	axisBlock(pdf, "Strong axis", res.Strong)
	if res.Weak != nil {
		axisBlock(pdf, "Weak axis", *res.Weak)
	} else {
		line(pdf, "Weak axis: no flexural resistance defined for this family")
	}
	pdf.Ln(4)
}

func axisBlock(pdf *gofpdf.Fpdf, label string, res flexure.Result) {
	line(pdf, "%s: Mp = %.2f kNm   My = %.2f kNm", label, res.MpKNM, res.MyKNM)
	if res.LrMM > 0 {
		line(pdf, "  Lb = %.0f mm   Lp = %.0f mm   Lr = %.0f mm", res.LbMM, res.LpMM, res.LrMM)
	}
	line(pdf, "  Mn = %.2f kNm (%s)   Md = %.2f kNm", res.MnKNM, res.Mode, res.MdKNM)
	warnings(pdf, res.Warnings)
}

func interactionSection(pdf *gofpdf.Fpdf, res *interaction.Result) {
	heading(pdf, "Combined Axial and Bending")
	line(pdf, "Nu = %.1f kN   Mux = %.2f kNm   Muy = %.2f kNm",
		res.Demand.NuKN, res.Demand.MuxKNM, res.Demand.MuyKNM)
	line(pdf, "Nu/Pd = %.3f, governing equation %s", res.AxialRatio, res.Equation)
	verdict := "PASS"
	if !res.Pass {
		verdict = "FAIL"
	}
	line(pdf, "Utilization ratio = %.3f  [%s]", res.Ratio, verdict)
	warnings(pdf, res.Warnings)
}
