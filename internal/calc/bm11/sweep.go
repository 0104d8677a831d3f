package bm11

import (
	"fmt"
	"math"
)

const (
	SweepFrom = 16.0
	SweepTo   = 8.0
	SweepStep = -0.5

	MaxSweepPoints = 1000
)

type SweepPoint struct {
	SquareSideLength float64 `json:"square_side_length"`
	TotalCost        float64 `json:"total_cost"`
}

// Sweep evaluates base with squareSideLength stepped from `from` to `to`
// inclusive, every other input held fixed.
func Sweep(base Input, from, to, step float64) ([]SweepPoint, error) {
	if step == 0 || math.IsNaN(step) || (to-from)*step < 0 {
		return nil, fmt.Errorf("%w: sweep from %v to %v never terminates with step %v", ErrInvalidInput, from, to, step)
	}
	// Index the steps instead of accumulating so both endpoints are hit exactly.
	count := math.Floor((to-from)/step+1e-9) + 1
	if math.IsNaN(count) || math.IsInf(count, 0) || count > MaxSweepPoints {
		return nil, fmt.Errorf("%w: sweep from %v to %v with step %v exceeds %d points", ErrInvalidInput, from, to, step, MaxSweepPoints)
	}
	n := int(count)
	points := make([]SweepPoint, 0, n)
	for i := 0; i < n; i++ {
		in := base
		in.SquareSideLength = from + float64(i)*step
		out, err := Evaluate(in)
		if err != nil {
			return nil, fmt.Errorf("square side %v: %w", in.SquareSideLength, err)
		}
		points = append(points, SweepPoint{SquareSideLength: in.SquareSideLength, TotalCost: out.Total.Cost})
	}
	return points, nil
}

func DefaultSweep() ([]SweepPoint, error) {
	return Sweep(DefaultInput(), SweepFrom, SweepTo, SweepStep)
}
