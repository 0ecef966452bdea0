// Package plot maps a population series onto screen coordinates for a line chart.
// It has no graphics dependency so the geometry can be tested headless.
package plot

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a screen-space position.
type Point struct {
	X, Y float32
}

// Frame is the screen rectangle the data area occupies.
// Y grows downward, as on screen.
type Frame struct {
	X, Y          float32
	Width, Height float32
}

// Axis is a closed data range.
type Axis struct {
	Min, Max float64
}

// Span returns Max - Min, or 1 for a degenerate axis.
func (a Axis) Span() float64 {
	if a.Max <= a.Min {
		return 1
	}
	return a.Max - a.Min
}

// Chart holds the axes for one series.
type Chart struct {
	Frame Frame
	X     Axis
	Y     Axis

	XTicks []float64
	YTicks []float64
}

// MaxTicks is the target tick count per axis.
const MaxTicks = 6

// NewChart lays out sizes inside frame. The x axis is the step index and the
// y axis starts at zero and ends on a round tick above the largest size.
func NewChart(frame Frame, sizes []int) Chart {
	n := len(sizes)
	xMax := float64(n - 1)
	if xMax < 1 {
		xMax = 1
	}

	yMax := 1.0
	if n > 0 {
		values := make([]float64, n)
		for i, s := range sizes {
			values[i] = float64(s)
		}
		yMax = math.Max(yMax, floats.Max(values))
	}

	xTicks := NiceTicks(0, xMax, MaxTicks)
	yTicks := NiceTicks(0, yMax, MaxTicks)

	return Chart{
		Frame:  frame,
		X:      Axis{Min: xTicks[0], Max: xTicks[len(xTicks)-1]},
		Y:      Axis{Min: yTicks[0], Max: yTicks[len(yTicks)-1]},
		XTicks: xTicks,
		YTicks: yTicks,
	}
}

// Project maps a data point to the screen.
func (c Chart) Project(x, y float64) Point {
	fx := (x - c.X.Min) / c.X.Span()
	fy := (y - c.Y.Min) / c.Y.Span()
	return Point{
		X: c.Frame.X + float32(fx)*c.Frame.Width,
		Y: c.Frame.Y + c.Frame.Height - float32(fy)*c.Frame.Height,
	}
}

// Points projects every size, using its index as the x value.
func (c Chart) Points(sizes []int) []Point {
	pts := make([]Point, len(sizes))
	for i, s := range sizes {
		pts[i] = c.Project(float64(i), float64(s))
	}
	return pts
}

// NiceTicks returns evenly spaced round tick values covering [lo, hi].
// The first tick is <= lo and the last is >= hi.
func NiceTicks(lo, hi float64, maxTicks int) []float64 {
	if maxTicks < 2 {
		maxTicks = 2
	}
	if hi <= lo {
		hi = lo + 1
	}

	span := niceNum(hi-lo, false)
	step := niceNum(span/float64(maxTicks-1), true)
	start := math.Floor(lo/step) * step
	end := math.Ceil(hi/step) * step

	count := int(math.Round((end-start)/step)) + 1
	ticks := make([]float64, count)
	for i := range ticks {
		ticks[i] = start + float64(i)*step
	}
	return ticks
}

// niceNum rounds x to 1, 2, 5 or 10 times a power of ten.
func niceNum(x float64, round bool) float64 {
	exp := math.Floor(math.Log10(x))
	f := x / math.Pow(10, exp)

	var nf float64
	if round {
		switch {
		case f < 1.5:
			nf = 1
		case f < 3:
			nf = 2
		case f < 7:
			nf = 5
		default:
			nf = 10
		}
	} else {
		switch {
		case f <= 1:
			nf = 1
		case f <= 2:
			nf = 2
		case f <= 5:
			nf = 5
		default:
			nf = 10
		}
	}
	return nf * math.Pow(10, exp)
}
