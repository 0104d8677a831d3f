package report

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
	"github.com/dustin/go-humanize"
	"github.com/phpdave11/gofpdf"
)

type Meta struct {
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

type row struct {
	label, value string
}

func money(v float64) string { return "$" + humanize.CommafWithDigits(v, 2) }

func num(v float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.3f", v)
	}
	return fmt.Sprintf("%.3f %s", v, unit)
}

func degrees(rad float64) string { return num(bm11.RadiansToDegrees(rad), "deg") }

func sections(in bm11.Input, out *bm11.Output) []struct {
	title string
	rows  []row
} {
	e, s, f, m := out.EdgeLength, out.OverallStructure, out.Frame, out.Mirror
	return []struct {
		title string
		rows  []row
	}{
		{"Input", []row{
			{"Square side length", num(in.SquareSideLength, "ft")},
			{"Base cut back length", num(in.BaseCutBackLength, "ft")},
			{"Angle ABC", degrees(in.AngleABC)},
			{"Frame cross section", fmt.Sprintf("%.3f x %.3f in", in.FrameCrossSection.Width, in.FrameCrossSection.Height)},
			{"Frame wall thickness", num(in.FrameWallThickness, "in")},
			{"Mirror bolt spacing", num(in.MirrorBoltSpacing, "ft")},
		}},
		{"Edge lengths", []row{
			{"OB", num(e.OB, "ft")},
			{"BA = BC", num(e.BA, "ft")},
			{"OA = OC", num(e.OA, "ft")},
			{"AC", num(e.AC, "ft")},
		}},
		{"Structural shape", []row{
			{"Footprint", fmt.Sprintf("%.3f x %.3f ft", s.Footprint.X, s.Footprint.Z)},
			{"Footprint area", num(s.FootprintArea, "ft^2")},
			{"Footprint aspect ratio", num(s.FootprintAspectRatio, "")},
			{"Height", num(s.Height, "ft")},
			{"Triangle area", num(s.TriangleArea, "ft^2")},
			{"Walkway top angle", degrees(s.WalkwayTopAngle)},
			{"Walkway base width", num(s.WalkwayBaseWidth, "ft")},
			{"Walkway shoulder width", fmt.Sprintf("%.3f ft at %.3f ft", s.WalkwayShoulderWidth, s.ShoulderHeight)},
			{"Dihedral BOA/BOC", degrees(out.DihedralAngle.BOA_BOC)},
			{"Dihedral BOA/ground", degrees(out.DihedralAngle.BOA_ABC)},
		}},
		{"Frame", []row{
			{"Perimeter length", num(f.PerimeterLength, "ft")},
			{"Reinforce length", num(f.ReinforceLength, "ft")},
			{"Total length", num(f.TotalLength, "ft")},
			{"Metal area", num(f.CrossSectionMetalArea, "in^2")},
			{"Metal volume", fmt.Sprintf("%.3f in^3 (%.3f ft^3)", f.MetalVolume, f.MetalVolumeFt3)},
			{"Mass", num(f.MetalMass, "lb")},
			{"Metal cost", money(f.MetalCost)},
			{"Drill holes", fmt.Sprintf("%.1f (%s)", f.DrillCount, money(f.DrillCost))},
			{"Taps", fmt.Sprintf("%.1f (%s)", f.TapCount, money(f.TapCost))},
		}},
		{"Mirror", []row{
			{"Surface area", num(m.SurfaceArea, "ft^2")},
			{"Mirror cost", money(m.Cost)},
			{"Bolts", fmt.Sprintf("%.1f (%s)", m.BoltCount, money(m.BoltCost))},
		}},
		{"Total", []row{
			{"Mass (frame metal only)", num(out.Total.Mass, "lb")},
			{"Cost", money(out.Total.Cost)},
		}},
	}
}

// WritePDF renders the evaluation as an A4 PDF.
func WritePDF(w io.Writer, meta Meta, in bm11.Input, out *bm11.Output, now time.Time) error {
	if meta.Title == "" {
		meta.Title = "BM11 Structure Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, meta.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", meta.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", meta.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)
	if meta.Notes != "" {
		pdf.MultiCell(0, 6, meta.Notes, "", "L", false)
		pdf.Ln(4)
	}

	for _, sec := range sections(in, out) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, sec.title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range sec.rows {
			pdf.CellFormat(70, 6, r.label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(80, 6, r.value, "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Wind side force (Cd = 1.0)")
	pdf.Ln(8)
	tables := out.Wind.ForceTables()
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(30, 6, "MPH", "1", 0, "C", false, 0, "")
	for _, t := range tables {
		pdf.CellFormat(60, 6, fmt.Sprintf("%s plane, %.3f ft^2 (lb)", t.Plane, t.SurfaceArea), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for i := range tables[0].Rows {
		pdf.CellFormat(30, 6, fmt.Sprintf("%.0f", tables[0].Rows[i].MPH), "1", 0, "C", false, 0, "")
		for _, t := range tables {
			pdf.CellFormat(60, 6, humanize.Comma(int64(math.Round(t.Rows[i].Force))), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
