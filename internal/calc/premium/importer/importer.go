package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
	"github.com/xuri/excelize/v2"
)

// Columns of the import sheet, after one header row. Only the first three
// are required; empty cells keep the default value.
var Columns = []string{
	"square_side_length_ft",
	"base_cut_back_length_ft",
	"angle_abc_deg",
	"frame_width_in",
	"frame_height_in",
	"frame_wall_thickness_in",
	"metal_density_lb_in3",
	"shoulder_height_ft",
	"mirror_bolt_spacing_ft",
}

type Row struct {
	Line  int        `json:"line"` // 1-based sheet row
	Input bm11.Input `json:"input"`
	Err   string     `json:"error,omitempty"`
}

func setters(in *bm11.Input) []func(float64) {
	return []func(float64){
		func(v float64) { in.SquareSideLength = v },
		func(v float64) { in.BaseCutBackLength = v },
		func(v float64) { in.AngleABC = bm11.DegreesToRadians(v) },
		func(v float64) { in.FrameCrossSection.Width = v },
		func(v float64) { in.FrameCrossSection.Height = v },
		func(v float64) { in.FrameWallThickness = v },
		func(v float64) { in.MetalDensity = v },
		func(v float64) { in.ShoulderHeight = v },
		func(v float64) { in.MirrorBoltSpacing = v },
	}
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
}

func parseRow(row []string) (bm11.Input, error) {
	if len(row) < 3 {
		return bm11.Input{}, fmt.Errorf("expected at least 3 columns, got %d", len(row))
	}
	in := bm11.DefaultInput()
	set := setters(&in)
	for i, cell := range row {
		if i >= len(set) {
			break
		}
		if strings.TrimSpace(cell) == "" {
			if i < 3 {
				return bm11.Input{}, fmt.Errorf("column %s is required", Columns[i])
			}
			continue
		}
		v, err := toFloat(cell)
		if err != nil {
			return bm11.Input{}, fmt.Errorf("column %s: %q is not a number", Columns[i], cell)
		}
		set[i](v)
	}
	return in, nil
}

// ParseWorkbook reads input sets from the first sheet. Bad rows are
// reported with their error instead of aborting the import.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q has no data rows", sheet)
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		in, err := parseRow(rows[i])
		row := Row{Line: i + 1, Input: in}
		if err != nil {
			row.Err = err.Error()
		}
		out = append(out, row)
	}
	return out, nil
}
