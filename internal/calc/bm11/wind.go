package bm11

import "gonum.org/v1/gonum/spatial/r3"

type Plane string

const (
	PlaneXY Plane = "XY"
	PlaneYZ Plane = "YZ"
)

const (
	ftPerSecPerMPH = 1.46667

	// Dynamic pressure in lb/ft^2 is 0.00256 * V^2 with V in ft/s.
	dynamicPressureCoeff = 0.00256
	dragCoefficient      = 1.0

	TableStartMPH = 5
	TableStopMPH  = 100
	TableStepMPH  = 5
)

type ForceRow struct {
	MPH   float64 `json:"mph"`
	Force float64 `json:"force_lb"`
}

type ForceTable struct {
	Plane       Plane      `json:"plane"`
	SurfaceArea float64    `json:"surface_area"`
	Rows        []ForceRow `json:"rows"`
}

func MPHToFtPerSec(mph float64) float64 { return mph * ftPerSecPerMPH }

// Force returns the side force in lb on a projected area (ft^2) at a wind
// speed given in mph.
func Force(area, mph float64) float64 {
	pressure := sq(MPHToFtPerSec(mph)) * dynamicPressureCoeff
	return area * pressure * dragCoefficient
}

func projectXY(v r3.Vec) r3.Vec { return r3.Vec{X: v.X, Y: v.Y} }

func projectYZ(v r3.Vec) r3.Vec { return r3.Vec{Y: v.Y, Z: v.Z} }

// estimateWind projects face OBA onto both planes. The opposite face OBC
// casts the same shadow, hence the doubling.
func estimateWind(v VertexCoord) Wind {
	return Wind{
		TotalSurfaceAreaXY: triangleArea(projectXY(v.O), projectXY(v.B0), projectXY(v.A0)) * 2,
		TotalSurfaceAreaYZ: triangleArea(projectYZ(v.O), projectYZ(v.B0), projectYZ(v.A0)) * 2,
	}
}

// Area returns the projected area for p, or 0 for a plane the model does
// not project onto.
func (w Wind) Area(p Plane) float64 {
	switch p {
	case PlaneXY:
		return w.TotalSurfaceAreaXY
	case PlaneYZ:
		return w.TotalSurfaceAreaYZ
	default:
		return 0
	}
}

// ForceTable sweeps wind speed from 5 to 100 mph in 5 mph steps.
func (w Wind) ForceTable(p Plane) ForceTable {
	area := w.Area(p)
	t := ForceTable{Plane: p, SurfaceArea: area}
	for mph := TableStartMPH; mph <= TableStopMPH; mph += TableStepMPH {
		t.Rows = append(t.Rows, ForceRow{MPH: float64(mph), Force: Force(area, float64(mph))})
	}
	return t
}

func (w Wind) ForceTables() []ForceTable {
	return []ForceTable{w.ForceTable(PlaneXY), w.ForceTable(PlaneYZ)}
}
