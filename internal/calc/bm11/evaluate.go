package bm11

// Evaluate solves the tetrahedron pair for in and derives every frame,
// mirror and wind quantity from it. The returned error wraps
// ErrInvalidInput or ErrGeometryInvalid; no partial output is returned.
func Evaluate(in Input) (*Output, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var out Output
	if err := solveGeometry(in, &out); err != nil {
		return nil, err
	}
	out.Frame = estimateFrame(in, out.EdgeLength, out.OverallStructure)
	out.Mirror = estimateMirror(in, out.OverallStructure, out.Frame)
	out.Total = estimateTotal(out.Frame, out.Mirror)
	out.Wind = estimateWind(out.VertexCoord)
	return &out, nil
}
