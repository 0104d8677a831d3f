package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
	"github.com/cybertube/BM11Model/internal/calc/premium/batch"
	"github.com/cybertube/BM11Model/internal/calc/report"
	"github.com/spf13/cobra"
)

type params struct {
	in       bm11.Input
	angleDeg float64
}

func (p *params) bind(cmd *cobra.Command) {
	p.in = bm11.DefaultInput()
	p.angleDeg = bm11.RadiansToDegrees(p.in.AngleABC)

	f := cmd.Flags()
	f.Float64Var(&p.in.SquareSideLength, "square-side", p.in.SquareSideLength, "square side length (ft)")
	f.Float64Var(&p.in.BaseCutBackLength, "cut-back", p.in.BaseCutBackLength, "base cut back length (ft)")
	f.Float64Var(&p.angleDeg, "angle-abc", p.angleDeg, "ground angle ABC (degrees)")
	f.Float64Var(&p.in.FrameCrossSection.Width, "frame-width", p.in.FrameCrossSection.Width, "frame stock width (in)")
	f.Float64Var(&p.in.FrameCrossSection.Height, "frame-height", p.in.FrameCrossSection.Height, "frame stock height (in)")
	f.Float64Var(&p.in.FrameWallThickness, "wall", p.in.FrameWallThickness, "frame wall thickness (in)")
	f.Float64Var(&p.in.MetalDensity, "density", p.in.MetalDensity, "metal density (lb/in^3)")
	f.Float64Var(&p.in.ShoulderHeight, "shoulder-height", p.in.ShoulderHeight, "walkway shoulder height (ft)")
	f.Float64Var(&p.in.MirrorBoltSpacing, "bolt-spacing", p.in.MirrorBoltSpacing, "mirror bolt spacing (ft)")
	f.Float64Var(&p.in.UnitCost.FrameMetal, "cost-metal", p.in.UnitCost.FrameMetal, "frame metal cost ($/ft)")
	f.Float64Var(&p.in.UnitCost.Mirror, "cost-mirror", p.in.UnitCost.Mirror, "mirror cost ($/ft^2)")
	f.Float64Var(&p.in.UnitCost.MirrorBolt, "cost-bolt", p.in.UnitCost.MirrorBolt, "mirror bolt cost ($/each)")
	f.Float64Var(&p.in.UnitCost.FrameThroughHoleDrill, "cost-drill", p.in.UnitCost.FrameThroughHoleDrill, "through hole drill cost ($/each)")
	f.Float64Var(&p.in.UnitCost.FrameThroughHoleTap, "cost-tap", p.in.UnitCost.FrameThroughHoleTap, "through hole tap cost ($/each)")
}

func (p *params) input() bm11.Input {
	in := p.in
	in.AngleABC = bm11.DegreesToRadians(p.angleDeg)
	return in
}

func evaluate(p *params) (bm11.Input, *bm11.Output, error) {
	in := p.input()
	out, err := bm11.Evaluate(in)
	if err != nil {
		return in, nil, fmt.Errorf("model evaluation: %w", err)
	}
	return in, out, nil
}

func newReportCmd() *cobra.Command {
	p := &params{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the full text report",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, out, err := evaluate(p)
			if err != nil {
				return err
			}
			return report.PrintReport(cmd.OutOrStdout(), out)
		},
	}
	p.bind(cmd)
	return cmd
}

func newJSONCmd() *cobra.Command {
	p := &params{}
	cmd := &cobra.Command{
		Use:   "json",
		Short: "Print input and output as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out, err := evaluate(p)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(bm11.CalcResponse{Input: in, Output: out})
		},
	}
	p.bind(cmd)
	return cmd
}

func newPDFCmd() *cobra.Command {
	p := &params{}
	var meta report.Meta
	var path string
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Write the report as PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out, err := evaluate(p)
			if err != nil {
				return err
			}
			return writeFile(path, cmd.OutOrStdout(), func(w io.Writer) error {
				return report.WritePDF(w, meta, in, out, time.Now())
			})
		},
	}
	p.bind(cmd)
	cmd.Flags().StringVarP(&path, "output", "o", "bm11-report.pdf", "output file, - for stdout")
	cmd.Flags().StringVar(&meta.Project, "project", "BM11", "project name")
	cmd.Flags().StringVar(&meta.Author, "author", "", "report author")
	cmd.Flags().StringVar(&meta.Title, "title", "", "report title")
	return cmd
}

func newSweepCmd() *cobra.Command {
	p := &params{}
	var from, to, step float64
	var xlsx string
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep square side length and print total cost as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := bm11.Sweep(p.input(), from, to, step)
			if err != nil {
				return err
			}
			if xlsx != "" {
				return writeFile(xlsx, cmd.OutOrStdout(), func(w io.Writer) error {
					return batch.WriteSweepXLSX(w, points)
				})
			}
			return batch.WriteSweepCSV(cmd.OutOrStdout(), points)
		},
	}
	p.bind(cmd)
	cmd.Flags().Float64Var(&from, "from", bm11.SweepFrom, "first square side length (ft)")
	cmd.Flags().Float64Var(&to, "to", bm11.SweepTo, "last square side length (ft)")
	cmd.Flags().Float64Var(&step, "step", bm11.SweepStep, "square side step (ft)")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "write an xlsx workbook to this file instead of CSV")
	return cmd
}

func writeFile(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bm11",
		Short:         "BM11 tetrahedron pair geometry, cost and wind load model",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newReportCmd(), newJSONCmd(), newPDFCmd(), newSweepCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}
