package bm11

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrGeometryInvalid marks an input set that does not describe a real
	// tetrahedron pair. Retrying with the same input always fails again.
	ErrGeometryInvalid = errors.New("invalid tetrahedron geometry")
	ErrInvalidInput    = errors.New("invalid input")
)

type EdgeLength struct {
	OB float64 `json:"ob"`
	BA float64 `json:"ba"`
	OA float64 `json:"oa"`
	AC float64 `json:"ac"`
}

// VertexAngle holds face angles in radians. OBC and AOC mirror OBA and ABC.
type VertexAngle struct {
	OAB float64 `json:"oab"`
	AOB float64 `json:"aob"`
	ABO float64 `json:"abo"`
	OCB float64 `json:"ocb"`
	COB float64 `json:"cob"`
	CBO float64 `json:"cbo"`
	ABC float64 `json:"abc"`
	BAC float64 `json:"bac"`
	BCA float64 `json:"bca"`
	AOC float64 `json:"aoc"`
	OAC float64 `json:"oac"`
	OCA float64 `json:"oca"`
}

type VertexCoord struct {
	O  r3.Vec `json:"o"`
	A0 r3.Vec `json:"a0"`
	B0 r3.Vec `json:"b0"`
	C0 r3.Vec `json:"c0"`
	A1 r3.Vec `json:"a1"`
	B1 r3.Vec `json:"b1"`
	C1 r3.Vec `json:"c1"`
}

type Footprint struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

type OverallStructure struct {
	Footprint            Footprint `json:"footprint"`
	FootprintArea        float64   `json:"footprint_area"`
	FootprintAspectRatio float64   `json:"footprint_aspect_ratio"`
	Height               float64   `json:"height"`
	TriangleArea         float64   `json:"triangle_area"`
	WalkwayTopAngle      float64   `json:"walkway_top_angle"`
	WalkwayBaseWidth     float64   `json:"walkway_base_width"`
	WalkwayShoulderWidth float64   `json:"walkway_shoulder_width"`
	ShoulderHeight       float64   `json:"shoulder_height"`
}

type DihedralAngle struct {
	BOA_BOC float64 `json:"boa_boc"` // between the triangle pair
	BOA_ABC float64 `json:"boa_abc"` // between a triangle and the ground
}

type Frame struct {
	PerimeterLength       float64      `json:"perimeter_length"`
	ReinforceLength       float64      `json:"reinforce_length"`
	TotalLength           float64      `json:"total_length"`
	CrossSection          CrossSection `json:"cross_section"`
	WallThickness         float64      `json:"wall_thickness"`
	CrossSectionMetalArea float64      `json:"cross_section_metal_area"`
	MetalVolume           float64      `json:"metal_volume"` // in^3
	MetalVolumeFt3        float64      `json:"metal_volume_ft3"`
	MetalDensity          float64      `json:"metal_density"`
	MetalMass             float64      `json:"metal_mass"`
	MetalCost             float64      `json:"metal_cost"`
	DrillCount            float64      `json:"drill_count"`
	DrillCost             float64      `json:"drill_cost"`
	TapCount              float64      `json:"tap_count"`
	TapCost               float64      `json:"tap_cost"`
}

type Mirror struct {
	SurfaceArea float64 `json:"surface_area"`
	Cost        float64 `json:"cost"`
	BoltCount   float64 `json:"bolt_count"`
	BoltCost    float64 `json:"bolt_cost"`
}

type Wind struct {
	TotalSurfaceAreaXY float64 `json:"total_surface_area_xy"`
	TotalSurfaceAreaYZ float64 `json:"total_surface_area_yz"`
}

// Total.Mass is frame metal only; mirror and bolt mass are not modelled yet.
type Total struct {
	Mass float64 `json:"mass"`
	Cost float64 `json:"cost"`
}

type Output struct {
	EdgeLength       EdgeLength       `json:"edge_length"`
	VertexAngle      VertexAngle      `json:"vertex_angle"`
	VertexCoord      VertexCoord      `json:"vertex_coord"`
	OverallStructure OverallStructure `json:"overall_structure"`
	DihedralAngle    DihedralAngle    `json:"dihedral_angle"`
	Frame            Frame            `json:"frame"`
	Mirror           Mirror           `json:"mirror"`
	Wind             Wind             `json:"wind"`
	Total            Total            `json:"total"`
}
