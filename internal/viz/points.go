// Package viz holds the chart-facing transforms: point downsampling,
// axis domains, linear tick values, and CSV export.
package viz

import (
	"math"
	"sort"
)

// Point is one chart point, [x, y]. It marshals to a JSON pair the way
// the front-end consumes it.
type Point [2]float64

// Formatter strings handed to the front-end, which maps them onto d3
// format specifiers.
const (
	// D3IntFormat renders integers (task IDs on the x axis).
	D3IntFormat = "d"
	// D3TimeFormat renders durations in seconds.
	D3TimeFormat = ".2f"
)

// DownsamplePoints reduces points to at most limit entries by uniform
// stride. The first point, the last point, and the global peak always
// survive, so a chart keeps its envelope even under heavy reduction.
func DownsamplePoints(points []Point, limit int) []Point {
	if limit <= 0 || len(points) <= limit {
		return points
	}

	peak := 0
	for i, p := range points {
		if p[1] > points[peak][1] {
			peak = i
		}
	}

	pick := map[int]struct{}{
		0:               {},
		len(points) - 1: {},
		peak:            {},
	}
	step := float64(len(points)-1) / float64(limit-1)
	for i := 0; i < limit && len(pick) < limit; i++ {
		pick[int(math.Round(float64(i)*step))] = struct{}{}
	}

	idx := make([]int, 0, len(pick))
	for i := range pick {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	out := make([]Point, 0, len(idx))
	for _, i := range idx {
		out = append(out, points[i])
	}
	return out
}

// ComputePointsDomain returns the [min, max] extent of the x and y
// coordinates. Both domains are zero for an empty point set.
func ComputePointsDomain(points []Point) (xDomain, yDomain [2]float64) {
	if len(points) == 0 {
		return
	}

	xDomain = [2]float64{points[0][0], points[0][0]}
	yDomain = [2]float64{points[0][1], points[0][1]}
	for _, p := range points[1:] {
		xDomain[0] = math.Min(xDomain[0], p[0])
		xDomain[1] = math.Max(xDomain[1], p[0])
		yDomain[0] = math.Min(yDomain[0], p[1])
		yDomain[1] = math.Max(yDomain[1], p[1])
	}
	return
}

// ComputeLinearTickValues returns at most count round-numbered ticks
// spanning the domain. A degenerate domain yields its single value.
func ComputeLinearTickValues(domain [2]float64, count int) []float64 {
	if count < 2 {
		count = 2
	}

	lo, hi := domain[0], domain[1]
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo == hi {
		return []float64{lo}
	}

	step := niceStep((hi - lo) / float64(count-1))
	start := math.Ceil(lo/step) * step

	var ticks []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > hi+step/2 {
			break
		}
		ticks = append(ticks, v)
	}
	return ticks
}

// niceStep rounds a raw step up to a 1/2/5 multiple of a power of ten.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch norm := raw / mag; {
	case norm < 1.5:
		return mag
	case norm < 3:
		return 2 * mag
	case norm < 7:
		return 5 * mag
	default:
		return 10 * mag
	}
}
