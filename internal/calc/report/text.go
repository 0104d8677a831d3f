package report

import (
	"fmt"
	"io"
	"math"

	"github.com/cybertube/BM11Model/internal/calc/bm11"
	"gonum.org/v1/gonum/spatial/r3"
)

// textWriter remembers the first write error so the report body stays flat.
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

func deg(rad float64) float64 { return bm11.RadiansToDegrees(rad) }

func (t *textWriter) point(name string, v r3.Vec) {
	t.printf("   %-2s = [%+.3f, %+.3f, %+.3f]\n", name, v.X, v.Y, v.Z)
}

// PrintReport writes every output quantity as plain text, lengths in ft,
// angles in degrees, three decimals.
func PrintReport(w io.Writer, out *bm11.Output) error {
	t := &textWriter{w: w}
	e, a, v := out.EdgeLength, out.VertexAngle, out.VertexCoord

	t.printf("Edge lengths:\n")
	t.printf("   length_OB = %.3f ft\n", e.OB)
	t.printf("   length_BA = %.3f ft\n", e.BA)
	t.printf("   length_OA = %.3f ft\n", e.OA)
	t.printf("   length_AC = %.3f ft\n", e.AC)

	t.printf("Scalene triangle OBA and OBC vertex angles:\n")
	t.printf("   angle_OAB = angle_OCB = %.3f degrees\n", deg(a.OAB))
	t.printf("   angle_AOB = angle_COB = %.3f degrees\n", deg(a.AOB))
	t.printf("   angle_ABO = angle_CBO = %.3f degrees\n", deg(a.ABO))
	t.printf("Isoceles triangle ABC vertex angles:\n")
	t.printf("   angle_ABC             = %.3f degrees\n", deg(a.ABC))
	t.printf("   angle_BAC = angle_BCA = %.3f degrees\n", deg(a.BAC))
	t.printf("Isoceles triangle AOC vertex angles:\n")
	t.printf("   angle_AOC             = %.3f degrees\n", deg(a.AOC))
	t.printf("   angle_OAC = angle_OCA = %.3f degrees\n", deg(a.OAC))

	t.printf("Vertex coordinates:\n")
	t.point("O", v.O)
	t.point("B0", v.B0)
	t.point("A0", v.A0)
	t.point("C0", v.C0)
	t.point("B1", v.B1)
	t.point("A1", v.A1)
	t.point("C1", v.C1)

	s := out.OverallStructure
	t.printf("Structural shape summary:\n")
	t.printf("   Footprint dimensions   = [%.3f, %.3f] ft\n", s.Footprint.X, s.Footprint.Z)
	t.printf("   Footprint surface area = %.3f ft^2\n", s.FootprintArea)
	t.printf("   Footprint aspect ratio = %.3f\n", s.FootprintAspectRatio)
	t.printf("   Height                 = %.3f ft\n", s.Height)
	t.printf("   Triangle surface area  = %.3f ft^2\n", s.TriangleArea)
	t.printf("   Walkway top angle      = %.3f degrees\n", deg(s.WalkwayTopAngle))
	t.printf("   Walkway base width     = %.3f ft\n", s.WalkwayBaseWidth)
	t.printf("   Walkway shoulder width = %.3f ft (at %.3f ft shoulder height)\n", s.WalkwayShoulderWidth, s.ShoulderHeight)

	t.printf("Important dihedral angles:\n")
	t.printf("   Between triangle pairs (angle_BOA_BOC)      = %.3f degrees\n", deg(out.DihedralAngle.BOA_BOC))
	t.printf("   Between triangle and ground (angle_BOA_ABC) = %.3f degrees\n", deg(out.DihedralAngle.BOA_ABC))

	f := out.Frame
	t.printf("Frame info:\n")
	t.printf("   Perimeter length         = %.3f ft\n", f.PerimeterLength)
	t.printf("   Reinforce length         = %.3f ft\n", f.ReinforceLength)
	t.printf("   Total length             = %.3f ft\n", f.TotalLength)
	t.printf("   Cross-section dimensions = [%.3f, %.3f] in\n", f.CrossSection.Width, f.CrossSection.Height)
	t.printf("   Wall thickness           = %.3f in\n", f.WallThickness)
	t.printf("   Cross-section metal area = %.3f in^2\n", f.CrossSectionMetalArea)
	t.printf("   Metal volume             = %.3f in^3 (%.3f ft^3)\n", f.MetalVolume, f.MetalVolumeFt3)
	t.printf("   Metal density            = %.3f lb/in^3\n", f.MetalDensity)
	t.printf("   Mass                     = %.3f lb\n", f.MetalMass)
	t.printf("   Cost                     = $%.3f\n", f.MetalCost)
	t.printf("   Drill count              = %.3f\n", f.DrillCount)
	t.printf("   Drill cost               = $%.3f\n", f.DrillCost)
	t.printf("   Tap count                = %.3f\n", f.TapCount)
	t.printf("   Tap cost                 = $%.3f\n", f.TapCost)

	m := out.Mirror
	t.printf("Mirror coating info:\n")
	t.printf("   Total surface area       = %.3f ft^2\n", m.SurfaceArea)
	t.printf("   Mirror cost              = $%.3f\n", m.Cost)
	t.printf("   Mirror bolt count        = %.3f\n", m.BoltCount)
	t.printf("   Mirror bolt cost         = $%.3f\n", m.BoltCost)

	t.printf("Wind:\n")
	for _, table := range out.Wind.ForceTables() {
		t.printf("   %s plane:\n", table.Plane)
		t.printf("      Total surface area = %.3f ft^2\n", table.SurfaceArea)
		for _, row := range table.Rows {
			t.printf("      Side force at %.0f MPH = %.0f lbs\n", row.MPH, math.Round(row.Force))
		}
	}

	t.printf("Total:\n")
	t.printf("   Mass (frame metal only)  = %.3f lb\n", out.Total.Mass)
	t.printf("   Cost                     = $%.3f\n", out.Total.Cost)
	return t.err
}
