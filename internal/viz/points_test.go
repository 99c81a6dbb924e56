package viz_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/runviz/internal/viz"
)

func TestDownsamplePoints_UnderLimitUntouched(t *testing.T) {
	points := []viz.Point{{1, 2}, {2, 3}, {3, 1}}
	assert.Equal(t, points, viz.DownsamplePoints(points, 100))
}

func TestDownsamplePoints_KeepsEndpointsAndPeak(t *testing.T) {
	points := make([]viz.Point, 1000)
	for i := range points {
		points[i] = viz.Point{float64(i), 1}
	}
	points[737] = viz.Point{737, 99} // global peak

	out := viz.DownsamplePoints(points, 50)
	require.LessOrEqual(t, len(out), 50)
	require.GreaterOrEqual(t, len(out), 3)

	assert.Equal(t, points[0], out[0])
	assert.Equal(t, points[999], out[len(out)-1])
	assert.Contains(t, out, viz.Point{737, 99})
}

func TestDownsamplePoints_PreservesOrder(t *testing.T) {
	points := make([]viz.Point, 500)
	for i := range points {
		points[i] = viz.Point{float64(i), float64(i % 7)}
	}

	out := viz.DownsamplePoints(points, 20)
	for i := 1; i < len(out); i++ {
		assert.Less(t, out[i-1][0], out[i][0])
	}
}

func TestComputePointsDomain(t *testing.T) {
	x, y := viz.ComputePointsDomain([]viz.Point{{5, 0.2}, {1, 9.5}, {3, 4}})
	assert.Equal(t, [2]float64{1, 5}, x)
	assert.Equal(t, [2]float64{0.2, 9.5}, y)
}

func TestComputePointsDomain_Empty(t *testing.T) {
	x, y := viz.ComputePointsDomain(nil)
	assert.Equal(t, [2]float64{}, x)
	assert.Equal(t, [2]float64{}, y)
}

func TestComputeLinearTickValues(t *testing.T) {
	ticks := viz.ComputeLinearTickValues([2]float64{0, 100}, 6)
	require.NotEmpty(t, ticks)

	assert.InDelta(t, 0, ticks[0], 1e-9)
	assert.InDelta(t, 100, ticks[len(ticks)-1], 1e-9)
	for i := 1; i < len(ticks); i++ {
		assert.InDelta(t, 20, ticks[i]-ticks[i-1], 1e-9)
	}
}

func TestComputeLinearTickValues_DegenerateDomain(t *testing.T) {
	assert.Equal(t, []float64{7}, viz.ComputeLinearTickValues([2]float64{7, 7}, 5))
}

func TestComputeLinearTickValues_StayWithinDomain(t *testing.T) {
	ticks := viz.ComputeLinearTickValues([2]float64{0.37, 42.1}, 5)
	require.NotEmpty(t, ticks)
	assert.GreaterOrEqual(t, ticks[0], 0.37)
	assert.LessOrEqual(t, ticks[len(ticks)-1], 42.1+1e-9)
}

func TestWritePointsCSV(t *testing.T) {
	var buf bytes.Buffer
	err := viz.WritePointsCSV(&buf, [2]string{"Task ID", "Execution Time"}, []viz.Point{
		{1, 2},
		{2, 4.25},
	})
	require.NoError(t, err)

	assert.Equal(t, "Task ID,Execution Time\n1,2\n2,4.25\n", buf.String())
}
