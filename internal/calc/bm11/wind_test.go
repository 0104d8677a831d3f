package bm11

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindAreasDefault(t *testing.T) {
	w := mustEvaluate(t, DefaultInput()).Wind
	assert.InDelta(t, 180.543, w.TotalSurfaceAreaXY, 1e-3)
	assert.InDelta(t, 126.417, w.TotalSurfaceAreaYZ, 1e-3)
	assert.Equal(t, w.TotalSurfaceAreaXY, w.Area(PlaneXY))
	assert.Equal(t, w.TotalSurfaceAreaYZ, w.Area(PlaneYZ))
	assert.Zero(t, w.Area(Plane("XZ")))
	assert.Zero(t, w.Area(""))
}

func TestWindAreasPositive(t *testing.T) {
	for _, in := range []Input{
		DefaultInput(),
		withShape(12, 1, 90),
		withShape(20, 3, 130),
		withShape(10, 4, 70),
		withShape(8, 2, 110),
	} {
		w := mustEvaluate(t, in).Wind
		assert.Greater(t, w.TotalSurfaceAreaXY, 0.0)
		assert.Greater(t, w.TotalSurfaceAreaYZ, 0.0)
	}
}

func TestForce(t *testing.T) {
	assert.Equal(t, 0.0, Force(100, 0))
	assert.Equal(t, 0.0, Force(0, 60))

	for _, mph := range []float64{5, 12.5, 30, 50} {
		assert.InDelta(t, 4*Force(180, mph), Force(180, 2*mph), 1e-9)
	}

	// 50 mph on the default XY projection.
	assert.InDelta(t, 2485.561, Force(180.54257552243854, 50), 1e-3)
	assert.InDelta(t, 73.3335, MPHToFtPerSec(50), 1e-9)
}

func TestForceTable(t *testing.T) {
	w := mustEvaluate(t, DefaultInput()).Wind
	tables := w.ForceTables()
	require.Len(t, tables, 2)
	assert.Equal(t, PlaneXY, tables[0].Plane)
	assert.Equal(t, PlaneYZ, tables[1].Plane)

	for _, table := range tables {
		require.Len(t, table.Rows, 20)
		assert.Equal(t, 5.0, table.Rows[0].MPH)
		assert.Equal(t, 100.0, table.Rows[19].MPH)
		for i, row := range table.Rows {
			assert.Equal(t, float64(5*(i+1)), row.MPH)
			assert.Equal(t, Force(table.SurfaceArea, row.MPH), row.Force)
			if i > 0 {
				assert.Greater(t, row.Force, table.Rows[i-1].Force)
			}
		}
	}
	assert.Equal(t, 2486.0, math.Round(tables[0].Rows[9].Force))
}
