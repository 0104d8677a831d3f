package bm11

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSweep(t *testing.T) {
	points, err := DefaultSweep()
	require.NoError(t, err)
	require.Len(t, points, 17)
	assert.Equal(t, 16.0, points[0].SquareSideLength)
	assert.Equal(t, 8.0, points[16].SquareSideLength)

	assert.InDelta(t, 8755.642, points[0].TotalCost, 1e-3)
	assert.InDelta(t, 2565.692, points[16].TotalCost, 1e-3)
	for i := 1; i < len(points); i++ {
		assert.Equal(t, 16.0-0.5*float64(i), points[i].SquareSideLength)
		assert.Less(t, points[i].TotalCost, points[i-1].TotalCost, "cost must fall with side %v", points[i].SquareSideLength)
	}
}

func TestSweepMatchesEvaluate(t *testing.T) {
	points, err := Sweep(DefaultInput(), 10, 12, 1)
	require.NoError(t, err)
	require.Len(t, points, 3)
	for _, p := range points {
		in := DefaultInput()
		in.SquareSideLength = p.SquareSideLength
		assert.Equal(t, mustEvaluate(t, in).Total.Cost, p.TotalCost)
	}
}

func TestSweepRejectsBadStep(t *testing.T) {
	_, err := Sweep(DefaultInput(), 16, 8, 0)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = Sweep(DefaultInput(), 16, 8, 0.5)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestSweepLimitsPointCount(t *testing.T) {
	for _, step := range []float64{-5e-324, -1e-5, -0.00799} {
		points, err := Sweep(DefaultInput(), 16, 8, step)
		require.ErrorIs(t, err, ErrInvalidInput, "step %v", step)
		assert.Nil(t, points)
	}

	_, err := Sweep(DefaultInput(), math.Inf(1), 8, -0.5)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = Sweep(DefaultInput(), math.NaN(), 8, -0.5)
	require.ErrorIs(t, err, ErrInvalidInput)

	// 16 -> 8 in 0.008 steps is exactly 1001 points; 0.00801 fits.
	_, err = Sweep(DefaultInput(), 16, 8, -0.008)
	require.ErrorIs(t, err, ErrInvalidInput)
	points, err := Sweep(DefaultInput(), 16, 8, -0.00801)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(points), MaxSweepPoints)
}

func TestSweepStopsOnInvalidGeometry(t *testing.T) {
	// Square side reaches the 2 ft cut back.
	_, err := Sweep(DefaultInput(), 4, 2, -1)
	require.ErrorIs(t, err, ErrGeometryInvalid)
}
