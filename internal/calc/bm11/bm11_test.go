package bm11

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEvaluate(t *testing.T, in Input) *Output {
	t.Helper()
	out, err := Evaluate(in)
	require.NoError(t, err)
	require.NotNil(t, out)
	return out
}

func withShape(side, cutBack, angleDeg float64) Input {
	in := DefaultInput()
	in.SquareSideLength = side
	in.BaseCutBackLength = cutBack
	in.AngleABC = DegreesToRadians(angleDeg)
	return in
}

func TestDefaultInput(t *testing.T) {
	in := DefaultInput()
	assert.Equal(t, 16.0, in.SquareSideLength)
	assert.Equal(t, 2.0, in.BaseCutBackLength)
	assert.InDelta(t, 110.0, RadiansToDegrees(in.AngleABC), 1e-12)
	assert.Equal(t, CrossSection{Width: 0.75, Height: 1.5}, in.FrameCrossSection)
	assert.Equal(t, 0.0625, in.FrameWallThickness)
	assert.Equal(t, 0.289, in.MetalDensity)
	assert.Equal(t, 5.0, in.ShoulderHeight)
	assert.Equal(t, 2.0, in.MirrorBoltSpacing)
	assert.Equal(t, 4.4, in.UnitCost.FrameMetal)
	assert.Equal(t, 6.875, in.UnitCost.Mirror)
	assert.Equal(t, 0.367, in.UnitCost.MirrorBolt)
	assert.Equal(t, 4.34375, in.UnitCost.FrameThroughHoleDrill)
	assert.Equal(t, 1.5, in.UnitCost.FrameThroughHoleTap)
	require.NoError(t, in.Validate())
}

func TestEvaluateDefaultEdgeLengths(t *testing.T) {
	out := mustEvaluate(t, DefaultInput())

	assert.InDelta(t, 16.124, out.EdgeLength.OB, 1e-2)
	assert.Equal(t, 14.0, out.EdgeLength.BA)
	assert.InDelta(t, 22.627, out.EdgeLength.OA, 1e-2)
	// 2 * 14 * sin(55 deg)
	assert.InDelta(t, 22.936, out.EdgeLength.AC, 1e-2)
}

func TestEvaluateDefaultAngles(t *testing.T) {
	a := mustEvaluate(t, DefaultInput()).VertexAngle

	assert.InDelta(t, 45.0, RadiansToDegrees(a.OAB), 1e-6)
	assert.InDelta(t, 37.875, RadiansToDegrees(a.AOB), 1e-3)
	assert.InDelta(t, 97.125, RadiansToDegrees(a.ABO), 1e-3)
	assert.InDelta(t, 35.0, RadiansToDegrees(a.BAC), 1e-9)
	assert.InDelta(t, 60.905, RadiansToDegrees(a.AOC), 1e-3)
	assert.Equal(t, a.OAB, a.OCB)
	assert.Equal(t, a.AOB, a.COB)
	assert.Equal(t, a.ABO, a.CBO)
	assert.Equal(t, a.BAC, a.BCA)
	assert.Equal(t, a.OAC, a.OCA)
	assert.InDelta(t, math.Pi, a.OAB+a.AOB+a.ABO, 1e-12)
	assert.InDelta(t, math.Pi, a.AOC+2*a.OAC, 1e-12)
}

func TestEvaluateDefaultCoordinates(t *testing.T) {
	v := mustEvaluate(t, DefaultInput()).VertexCoord

	assert.Equal(t, 0.0, v.O.X)
	assert.InDelta(t, 15.743, v.O.Y, 1e-3)
	assert.Equal(t, 0.0, v.O.Z)
	assert.InDelta(t, -11.468, v.A0.X, 1e-3)
	assert.InDelta(t, -11.517, v.A0.Z, 1e-3)
	assert.InDelta(t, 11.468, v.C0.X, 1e-3)
	assert.InDelta(t, -3.487, v.B0.Z, 1e-3)

	in := DefaultInput()
	e := mustEvaluate(t, in).EdgeLength
	dist := func(ax, ay, az, bx, by, bz float64) float64 {
		return math.Sqrt((ax-bx)*(ax-bx) + (ay-by)*(ay-by) + (az-bz)*(az-bz))
	}
	assert.InDelta(t, e.OA, dist(v.O.X, v.O.Y, v.O.Z, v.A0.X, v.A0.Y, v.A0.Z), 1e-9)
	assert.InDelta(t, e.OB, dist(v.O.X, v.O.Y, v.O.Z, v.B0.X, v.B0.Y, v.B0.Z), 1e-9)
	assert.InDelta(t, e.BA, dist(v.B0.X, v.B0.Y, v.B0.Z, v.A0.X, v.A0.Y, v.A0.Z), 1e-9)
	assert.InDelta(t, e.AC, dist(v.C0.X, v.C0.Y, v.C0.Z, v.A0.X, v.A0.Y, v.A0.Z), 1e-9)
}

func TestEvaluateDefaultStructure(t *testing.T) {
	out := mustEvaluate(t, DefaultInput())
	s := out.OverallStructure

	assert.InDelta(t, 22.936, s.Footprint.X, 1e-3)
	assert.InDelta(t, 23.034, s.Footprint.Z, 1e-3)
	assert.InDelta(t, s.Footprint.X*s.Footprint.Z, s.FootprintArea, 1e-9)
	assert.InDelta(t, s.Footprint.X/s.Footprint.Z, s.FootprintAspectRatio, 1e-12)
	assert.Equal(t, out.VertexCoord.O.Y, s.Height)
	assert.InDelta(t, 112.0, s.TriangleArea, 1e-6)
	assert.InDelta(t, 24.978, RadiansToDegrees(s.WalkwayTopAngle), 1e-3)
	assert.InDelta(t, 6.974, s.WalkwayBaseWidth, 1e-3)
	assert.InDelta(t, 4.759, s.WalkwayShoulderWidth, 1e-3)
	assert.Equal(t, 5.0, s.ShoulderHeight)

	assert.InDelta(t, 111.284, RadiansToDegrees(out.DihedralAngle.BOA_BOC), 1e-3)
	assert.InDelta(t, 100.283, RadiansToDegrees(out.DihedralAngle.BOA_ABC), 1e-3)
}

func TestEvaluateDefaultCosts(t *testing.T) {
	out := mustEvaluate(t, DefaultInput())
	f, m := out.Frame, out.Mirror

	assert.InDelta(t, 211.008, f.PerimeterLength, 1e-3)
	assert.InDelta(t, 96.574, f.ReinforceLength, 1e-3)
	assert.InDelta(t, 307.582, f.TotalLength, 1e-3)
	assert.InDelta(t, 0.265625, f.CrossSectionMetalArea, 1e-12)
	assert.InDelta(t, 980.416, f.MetalVolume, 1e-3)
	assert.InDelta(t, f.MetalVolume/1728, f.MetalVolumeFt3, 1e-12)
	assert.InDelta(t, 283.340, f.MetalMass, 1e-3)
	assert.InDelta(t, 1353.359, f.MetalCost, 1e-3)
	assert.InDelta(t, 153.791, f.DrillCount, 1e-3)
	assert.InDelta(t, 668.029, f.DrillCost, 1e-3)
	assert.InDelta(t, 2*f.DrillCount, f.TapCount, 1e-12)
	assert.InDelta(t, 461.372, f.TapCost, 1e-3)

	assert.InDelta(t, 896.0, m.SurfaceArea, 1e-6)
	assert.InDelta(t, 6160.0, m.Cost, 1e-6)
	assert.Equal(t, f.TapCount, m.BoltCount)
	assert.InDelta(t, 112.882, m.BoltCost, 1e-3)

	// Mass stays frame metal only.
	assert.Equal(t, f.MetalMass, out.Total.Mass)
	assert.InDelta(t, f.MetalCost+f.DrillCost+f.TapCost+m.Cost+m.BoltCost, out.Total.Cost, 1e-9)
	assert.InDelta(t, 8755.642, out.Total.Cost, 1e-3)
}

func TestLawOfSinesHoldsForDefaults(t *testing.T) {
	in := DefaultInput()
	e, err := edgeLengths(in)
	require.NoError(t, err)
	a, err := vertexAngles(in, e)
	require.NoError(t, err)
	require.NoError(t, checkLawOfSines(a))
}

func TestLawOfSinesRejectsInconsistentAngles(t *testing.T) {
	in := DefaultInput()
	e, err := edgeLengths(in)
	require.NoError(t, err)
	a, err := vertexAngles(in, e)
	require.NoError(t, err)

	a.AOC += 0.1
	err = checkLawOfSines(a)
	require.ErrorIs(t, err, ErrGeometryInvalid)
	assert.Contains(t, err.Error(), "A,OBC")
}

func TestMirroredTetrahedronSymmetry(t *testing.T) {
	for _, in := range []Input{
		DefaultInput(),
		withShape(12, 1, 90),
		withShape(20, 3, 130),
		withShape(10, 4, 70),
		withShape(16, 2, 10),
	} {
		v := mustEvaluate(t, in).VertexCoord
		assert.Equal(t, v.A0.X, v.A1.X)
		assert.Equal(t, v.A0.Y, v.A1.Y)
		assert.Equal(t, -v.A0.Z, v.A1.Z)
		assert.Equal(t, v.B0.X, v.B1.X)
		assert.Equal(t, v.B0.Y, v.B1.Y)
		assert.Equal(t, -v.B0.Z, v.B1.Z)
		assert.Equal(t, v.C0.X, v.C1.X)
		assert.Equal(t, v.C0.Y, v.C1.Y)
		assert.Equal(t, -v.C0.Z, v.C1.Z)
	}
}

func TestGeometryInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"cut back equals side", withShape(16, 16, 110)},
		{"cut back exceeds side", withShape(16, 18, 110)},
		{"apex below ground", withShape(16, 15.5, 110)},
		{"angle too wide for apex", withShape(16, 2, 170)},
		{"flat angle", withShape(16, 2, 180)},
		{"zero angle", withShape(16, 2, 0)},
		{"negative angle", withShape(16, 2, -20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Evaluate(tt.in)
			require.ErrorIs(t, err, ErrGeometryInvalid)
			assert.Nil(t, out)
		})
	}
}

func TestInvalidInput(t *testing.T) {
	thin := DefaultInput()
	thin.FrameCrossSection.Width = 0.1

	noSpacing := DefaultInput()
	noSpacing.MirrorBoltSpacing = 0

	nanCost := DefaultInput()
	nanCost.UnitCost.Mirror = math.NaN()

	infAngle := DefaultInput()
	infAngle.AngleABC = math.Inf(1)

	for _, in := range []Input{thin, noSpacing, nanCost, infAngle} {
		out, err := Evaluate(in)
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.NotErrorIs(t, err, ErrGeometryInvalid)
		assert.Nil(t, out)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	first := mustEvaluate(t, DefaultInput())
	second := mustEvaluate(t, DefaultInput())
	assert.Equal(t, *first, *second)
	assert.NotSame(t, first, second)
}
