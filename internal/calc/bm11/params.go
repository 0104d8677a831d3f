package bm11

import (
	"fmt"
	"math"
)

// CrossSection is the outer size of the hollow rectangular frame stock (in).
type CrossSection struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type UnitCost struct {
	FrameMetal            float64 `json:"frame_metal"`              // $ / ft
	Mirror                float64 `json:"mirror"`                   // $ / ft^2
	MirrorBolt            float64 `json:"mirror_bolt"`              // $ / each
	FrameThroughHoleDrill float64 `json:"frame_through_hole_drill"` // $ / each
	FrameThroughHoleTap   float64 `json:"frame_through_hole_tap"`   // $ / each
}

type Input struct {
	SquareSideLength   float64      `json:"square_side_length"`   // ft, side of the square one triangle is cut from
	BaseCutBackLength  float64      `json:"base_cut_back_length"` // ft, cut back on the base of that square
	AngleABC           float64      `json:"angle_abc"`            // rad, ground-plane angle between the triangles
	FrameCrossSection  CrossSection `json:"frame_cross_section"`
	FrameWallThickness float64      `json:"frame_wall_thickness"` // in
	MetalDensity       float64      `json:"metal_density"`        // lb/in^3
	ShoulderHeight     float64      `json:"shoulder_height"`      // ft
	MirrorBoltSpacing  float64      `json:"mirror_bolt_spacing"`  // ft
	UnitCost           UnitCost     `json:"unit_cost"`
}

func DefaultInput() Input {
	return Input{
		SquareSideLength:   16.0,
		BaseCutBackLength:  2.0,
		AngleABC:           DegreesToRadians(110.0),
		FrameCrossSection:  CrossSection{Width: 0.75, Height: 1.5},
		FrameWallThickness: 1.0 / 16.0,
		MetalDensity:       0.289,
		ShoulderHeight:     5.0,
		MirrorBoltSpacing:  2.0,
		UnitCost: UnitCost{
			FrameMetal:            4.4,
			Mirror:                220.0 / 32.0,
			MirrorBolt:            0.367, // 316 SS flat head 1/4"-20 x 1/2", sold in packs of 10
			FrameThroughHoleDrill: 695.0 / 160.0,
			FrameThroughHoleTap:   480.0 / 320.0,
		},
	}
}

// Validate checks the fields that are not geometric. Degenerate shapes are
// left to the solver, which reports them as ErrGeometryInvalid.
func (in Input) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"square_side_length", in.SquareSideLength},
		{"base_cut_back_length", in.BaseCutBackLength},
		{"frame_cross_section.width", in.FrameCrossSection.Width},
		{"frame_cross_section.height", in.FrameCrossSection.Height},
		{"frame_wall_thickness", in.FrameWallThickness},
		{"metal_density", in.MetalDensity},
		{"shoulder_height", in.ShoulderHeight},
		{"mirror_bolt_spacing", in.MirrorBoltSpacing},
		{"unit_cost.frame_metal", in.UnitCost.FrameMetal},
		{"unit_cost.mirror", in.UnitCost.Mirror},
		{"unit_cost.mirror_bolt", in.UnitCost.MirrorBolt},
		{"unit_cost.frame_through_hole_drill", in.UnitCost.FrameThroughHoleDrill},
		{"unit_cost.frame_through_hole_tap", in.UnitCost.FrameThroughHoleTap},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%w: %s must be positive and finite, got %v", ErrInvalidInput, f.name, f.v)
		}
	}
	if math.IsNaN(in.AngleABC) || math.IsInf(in.AngleABC, 0) {
		return fmt.Errorf("%w: angle_abc must be finite", ErrInvalidInput)
	}
	wall := 2 * in.FrameWallThickness
	if in.FrameCrossSection.Width <= wall || in.FrameCrossSection.Height <= wall {
		return fmt.Errorf("%w: frame cross section %vx%v in is not thicker than two walls of %v in",
			ErrInvalidInput, in.FrameCrossSection.Width, in.FrameCrossSection.Height, in.FrameWallThickness)
	}
	return nil
}

func DegreesToRadians(deg float64) float64 { return deg * math.Pi / 180.0 }

func RadiansToDegrees(rad float64) float64 { return rad * 180.0 / math.Pi }
