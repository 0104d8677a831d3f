package bm11

const (
	inchesPerFoot           = 12.0
	cubicInchesPerCubicFoot = inchesPerFoot * inchesPerFoot * inchesPerFoot

	// Rough reinforcement allowance: three braces per triangle, about 1.6 BA
	// of stock, on four triangles.
	reinforcePerTriangle = 1.6
	frameTriangles       = 4

	mirrorFaces = 8
)

func estimateFrame(in Input, e EdgeLength, s OverallStructure) Frame {
	f := Frame{
		PerimeterLength: 4 * (e.BA + e.OA + e.OB),
		// plus one cross-bar between B0 and B1
		ReinforceLength: reinforcePerTriangle*e.BA*frameTriangles + s.WalkwayBaseWidth,
		CrossSection:    in.FrameCrossSection,
		WallThickness:   in.FrameWallThickness,
		MetalDensity:    in.MetalDensity,
	}
	f.TotalLength = f.PerimeterLength + f.ReinforceLength

	outer := in.FrameCrossSection.Width * in.FrameCrossSection.Height
	inner := (in.FrameCrossSection.Width - 2*in.FrameWallThickness) *
		(in.FrameCrossSection.Height - 2*in.FrameWallThickness)
	f.CrossSectionMetalArea = outer - inner
	f.MetalVolume = f.CrossSectionMetalArea * f.TotalLength * inchesPerFoot
	f.MetalVolumeFt3 = f.MetalVolume / cubicInchesPerCubicFoot
	f.MetalMass = f.MetalVolume * in.MetalDensity
	f.MetalCost = f.TotalLength * in.UnitCost.FrameMetal

	f.DrillCount = f.TotalLength / in.MirrorBoltSpacing
	f.DrillCost = f.DrillCount * in.UnitCost.FrameThroughHoleDrill
	// Mirrors are bolted from both sides of the frame.
	f.TapCount = f.DrillCount * 2
	f.TapCost = f.TapCount * in.UnitCost.FrameThroughHoleTap
	return f
}

func estimateMirror(in Input, s OverallStructure, f Frame) Mirror {
	m := Mirror{
		SurfaceArea: s.TriangleArea * mirrorFaces,
		BoltCount:   f.TapCount,
	}
	m.Cost = m.SurfaceArea * in.UnitCost.Mirror
	m.BoltCost = m.BoltCount * in.UnitCost.MirrorBolt
	return m
}

func estimateTotal(f Frame, m Mirror) Total {
	return Total{
		// TODO: add mirror panel and bolt mass once their weights are sourced.
		Mass: f.MetalMass,
		Cost: f.MetalCost + f.DrillCost + f.TapCost + m.Cost + m.BoltCost,
	}
}
