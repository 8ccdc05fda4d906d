// curvegen sweeps one catalog section over a length range and writes the
// capacity curves to an xlsx workbook, one sheet per curve.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/xuri/excelize/v2"

	"steelcheck/internal/calc/curves"
	"steelcheck/internal/catalog"
	"steelcheck/internal/section"
)

func main() {
	var (
		name    = flag.String("section", "", "catalog section name (required)")
		family  = flag.String("family", "", "family filter, e.g. I, C, L, T, PIPE, SHS, RHS")
		fy      = flag.Float64("fy", 250, "yield stress in MPa")
		start   = flag.Float64("start", 500, "first length in mm")
		end     = flag.Float64("end", 8000, "last length in mm")
		step    = flag.Float64("step", 250, "length step in mm")
		k       = flag.Float64("k", 1.0, "effective length factor for the axial sweep")
		cb      = flag.Float64("cb", 1.0, "moment gradient factor for the flexural sweep")
		outPath = flag.String("o", "curves.xlsx", "output workbook path")
	)
	flag.Parse()

	if *name == "" {
		log.Fatal("-section is required")
	}

	var fam section.Family
	if *family != "" {
		f, err := section.ParseFamily(*family)
		if err != nil {
			log.Fatal(err)
		}
		fam = f
	}

	cat := catalog.Seed()
	p, err := cat.Lookup(context.Background(), *name, fam)
	if err != nil {
		log.Fatal(err)
	}

	m := section.Steel(*fy)
	sweep := curves.Sweep{StartMM: *start, EndMM: *end, StepMM: *step}

	axialCurve, err := curves.AxialSweep(p, m, *k, sweep)
	if err != nil {
		log.Fatal(err)
	}
	flexCurve, err := curves.FlexuralSweep(p, m, *cb, sweep)
	if err != nil {
		log.Fatal(err)
	}

	f := excelize.NewFile()
	defer f.Close()

	writeAxial(f, axialCurve)
	writeFlexural(f, flexCurve)
	f.DeleteSheet("Sheet1")

	if err := f.SaveAs(*outPath); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %d axial and %d flexural points written to %s\n",
		p.Name, len(axialCurve.Points), len(flexCurve.Points), *outPath)
}

func writeAxial(f *excelize.File, c curves.AxialCurve) {
	const sheet = "Axial"
	f.NewSheet(sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"L (mm)", "Pd (kN)", "mode", "error"})
	for i, pt := range c.Points {
		cell := fmt.Sprintf("A%d", i+2)
		pd := interface{}(nil)
		if pt.PdKN != nil {
			pd = *pt.PdKN
		}
		f.SetSheetRow(sheet, cell, &[]interface{}{pt.LengthMM, pd, pt.Mode, pt.Error})
	}
}

func writeFlexural(f *excelize.File, c curves.FlexuralCurve) {
	const sheet = "Flexural"
	f.NewSheet(sheet)
	f.SetSheetRow(sheet, "A1", &[]interface{}{"Lb (mm)", "Mdx (kNm)", "mode", "error"})
	for i, pt := range c.Points {
		cell := fmt.Sprintf("A%d", i+2)
		md := interface{}(nil)
		if pt.MdxKNM != nil {
			md = *pt.MdxKNM
		}
		f.SetSheetRow(sheet, cell, &[]interface{}{pt.LbMM, md, pt.Mode, pt.Error})
	}
	if c.LrMM > 0 {
		note := fmt.Sprintf("Lp = %.0f mm, Lr = %.0f mm", c.LpMM, c.LrMM)
		f.SetCellValue(sheet, "F1", note)
	}
}
