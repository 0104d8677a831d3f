package bm11

import (
	"fmt"
	"math"

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"
)

/*
                        O
                       /|\
                      / | \
                     /  |  \
                    /   |   \
                   /    |    \
                  /    -Bn-   \
                 /  -/      \- \
                /-/            \-\
              An . . . . . . . . . Cn

   An, Bn, Cn and O span an irregular tetrahedron; the structure is two of
   them sharing O, mirrored through the z = 0 plane. OBA and OBC are the same
   scalene triangle, ABC and AOC are isoceles.
*/

// lawOfSinesTolerance is applied to float32 products.
const lawOfSinesTolerance float32 = 1.0 / 1000.0

// domainSlack absorbs rounding when an acos/asin argument lands a hair
// outside [-1, 1].
const domainSlack = 1e-12

var groundNormal = r3.Vec{X: 0, Y: 1, Z: 0}

func geometryError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrGeometryInvalid, fmt.Sprintf(format, args...))
}

func acos(name string, x float64) (float64, error) {
	x, err := clampUnit(name, x)
	if err != nil {
		return 0, err
	}
	return math.Acos(x), nil
}

func asin(name string, x float64) (float64, error) {
	x, err := clampUnit(name, x)
	if err != nil {
		return 0, err
	}
	return math.Asin(x), nil
}

func clampUnit(name string, x float64) (float64, error) {
	if math.IsNaN(x) || x < -1-domainSlack || x > 1+domainSlack {
		return 0, geometryError("%s: argument %v outside [-1, 1]", name, x)
	}
	return math.Max(-1, math.Min(1, x)), nil
}

func sqrt(name string, x float64) (float64, error) {
	if math.IsNaN(x) || x <= 0 {
		return 0, geometryError("%s: square root of non-positive %v", name, x)
	}
	return math.Sqrt(x), nil
}

func sq(x float64) float64 { return x * x }

// cosineLawAngle returns the angle opposite side c.
func cosineLawAngle(name string, a, b, c float64) (float64, error) {
	return acos(name, (sq(a)+sq(b)-sq(c))/(2*a*b))
}

func mirrorZ(v r3.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: -v.Z} }

func triangleArea(p, q, r r3.Vec) float64 {
	return r3.Norm(r3.Cross(r3.Sub(p, q), r3.Sub(r, q))) * 0.5
}

func faceNormal(name string, u, v r3.Vec) (r3.Vec, error) {
	n := r3.Cross(u, v)
	if l := r3.Norm(n); l == 0 || math.IsNaN(l) {
		return r3.Vec{}, geometryError("%s: degenerate face", name)
	}
	return r3.Unit(n), nil
}

func edgeLengths(in Input) (EdgeLength, error) {
	s, c := in.SquareSideLength, in.BaseCutBackLength
	e := EdgeLength{
		OB: math.Sqrt(sq(s) + sq(c)),
		BA: s - c,
		OA: s * math.Sqrt2,
	}
	if e.BA <= 0 {
		return e, geometryError("edge BA = %v is not positive (base cut back %v >= square side %v)", e.BA, c, s)
	}
	if in.AngleABC <= 0 || in.AngleABC >= math.Pi {
		return e, geometryError("angle ABC = %v rad outside (0, pi)", in.AngleABC)
	}
	e.AC = 2 * e.BA * math.Sin(in.AngleABC*0.5)
	return e, nil
}

func vertexAngles(in Input, e EdgeLength) (VertexAngle, error) {
	var a VertexAngle
	var err error

	// Scalene OBA, and OBC by symmetry.
	if a.OAB, err = cosineLawAngle("angle OAB", e.OA, e.BA, e.OB); err != nil {
		return a, err
	}
	if a.AOB, err = cosineLawAngle("angle AOB", e.OA, e.OB, e.BA); err != nil {
		return a, err
	}
	a.ABO = math.Pi - a.OAB - a.AOB
	a.OCB, a.COB, a.CBO = a.OAB, a.AOB, a.ABO

	a.ABC = in.AngleABC
	a.BAC = (math.Pi - a.ABC) * 0.5
	a.BCA = a.BAC

	half, err := asin("angle AOC", e.AC/(2*e.OA))
	if err != nil {
		return a, err
	}
	a.AOC = 2 * half
	a.OAC = (math.Pi - a.AOC) * 0.5
	a.OCA = a.OAC

	for _, v := range []float64{a.OAB, a.AOB, a.ABO, a.AOC} {
		if v <= 0 || v >= math.Pi {
			return a, geometryError("face angle %v rad is degenerate", v)
		}
	}
	return a, nil
}

func sin32(rad float64) float32 { return math32.Sin(float32(rad)) }

// checkLawOfSines verifies the 3D law of sines for each vertex against its
// opposite face, in single precision.
func checkLawOfSines(a VertexAngle) error {
	faces := []struct {
		name     string
		lhs, rhs float32
	}{
		{"O,ABC", sin32(a.OAC) * sin32(a.OCB) * sin32(a.ABO), sin32(a.OCA) * sin32(a.CBO) * sin32(a.OAB)},
		{"A,OBC", sin32(a.AOC) * sin32(a.BCA) * sin32(a.ABO), sin32(a.OCA) * sin32(a.ABC) * sin32(a.AOB)},
		{"B,AOC", sin32(a.BAC) * sin32(a.OCB) * sin32(a.AOB), sin32(a.BCA) * sin32(a.COB) * sin32(a.OAB)},
		{"C,ABO", sin32(a.OAC) * sin32(a.COB) * sin32(a.ABC), sin32(a.AOC) * sin32(a.CBO) * sin32(a.BAC)},
	}
	for _, f := range faces {
		d := math32.Abs(f.lhs - f.rhs)
		if math32.IsNaN(d) || d > lawOfSinesTolerance {
			return geometryError("law of sines fails on %s: %v vs %v", f.name, f.lhs, f.rhs)
		}
	}
	return nil
}

func vertexCoords(e EdgeLength) (VertexCoord, error) {
	var v VertexCoord

	am := e.AC * 0.5 // M is the midpoint of AC, at the origin
	v.A0 = r3.Vec{X: -am}
	v.C0 = r3.Vec{X: am}
	bz, err := sqrt("B0.z", sq(e.BA)-sq(am))
	if err != nil {
		return v, err
	}
	v.B0 = r3.Vec{Z: bz}

	oz := (sq(e.OB) - sq(e.OA) + sq(am) - sq(bz)) / (-2 * bz)
	oy, err := sqrt("O.y", sq(e.OA)-sq(am)-sq(oz))
	if err != nil {
		return v, err
	}
	v.O = r3.Vec{Y: oy}

	// Shift so O sits on the z = 0 plane.
	v.A0.Z -= oz
	v.B0.Z -= oz
	v.C0.Z -= oz

	v.A1 = mirrorZ(v.A0)
	v.B1 = mirrorZ(v.B0)
	v.C1 = mirrorZ(v.C0)
	return v, nil
}

func overallStructure(in Input, v VertexCoord) OverallStructure {
	s := OverallStructure{
		Footprint:      Footprint{X: v.C0.X - v.A0.X, Z: v.A1.Z - v.A0.Z},
		Height:         v.O.Y,
		TriangleArea:   triangleArea(v.O, v.B0, v.A0),
		ShoulderHeight: in.ShoulderHeight,
	}
	s.FootprintArea = s.Footprint.X * s.Footprint.Z
	s.FootprintAspectRatio = s.Footprint.X / s.Footprint.Z
	s.WalkwayTopAngle = math.Atan(v.B1.Z/v.O.Y) * 2
	s.WalkwayBaseWidth = v.B1.Z - v.B0.Z
	s.WalkwayShoulderWidth = (v.O.Y - in.ShoulderHeight) * v.B1.Z * 2 / v.O.Y
	return s
}

func dihedralAngles(v VertexCoord) (DihedralAngle, error) {
	var d DihedralAngle
	bo := r3.Sub(v.B0, v.O)
	nOBA, err := faceNormal("face OBA", bo, r3.Sub(v.B0, v.A0))
	if err != nil {
		return d, err
	}
	nOBC, err := faceNormal("face OBC", bo, r3.Sub(v.B0, v.C0))
	if err != nil {
		return d, err
	}
	if d.BOA_BOC, err = acos("dihedral BOA/BOC", r3.Dot(nOBA, nOBC)); err != nil {
		return d, err
	}
	if d.BOA_ABC, err = acos("dihedral BOA/ABC", r3.Dot(nOBA, groundNormal)); err != nil {
		return d, err
	}
	return d, nil
}

// solveGeometry fills the geometric groups of out. Nothing is written to out
// unless every step succeeds.
func solveGeometry(in Input, out *Output) error {
	e, err := edgeLengths(in)
	if err != nil {
		return err
	}
	a, err := vertexAngles(in, e)
	if err != nil {
		return err
	}
	if err := checkLawOfSines(a); err != nil {
		return err
	}
	v, err := vertexCoords(e)
	if err != nil {
		return err
	}
	d, err := dihedralAngles(v)
	if err != nil {
		return err
	}

	out.EdgeLength = e
	out.VertexAngle = a
	out.VertexCoord = v
	out.OverallStructure = overallStructure(in, v)
	out.DihedralAngle = d
	return nil
}
