package batch

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
	"github.com/xuri/excelize/v2"
)

const sweepCSVHeader = "squareSideLength, TotalCost"

// WriteSweepCSV writes "squareSideLength, TotalCost" rows, ", " separated.
func WriteSweepCSV(w io.Writer, points []bm11.SweepPoint) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, sweepCSVHeader)
	for _, p := range points {
		fmt.Fprintf(bw, "%.3f, %.3f\n", p.SquareSideLength, p.TotalCost)
	}
	return bw.Flush()
}

const sweepSheet = "Sweep"

// WriteSweepXLSX writes the sweep to a one-sheet workbook.
func WriteSweepXLSX(w io.Writer, points []bm11.SweepPoint) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sweepSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sweepSheet, "A1", &[]any{"squareSideLength", "TotalCost"}); err != nil {
		return err
	}
	for i, p := range points {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sweepSheet, cell, &[]any{p.SquareSideLength, p.TotalCost}); err != nil {
			return err
		}
	}
	_, err := f.WriteTo(w)
	return err
}
