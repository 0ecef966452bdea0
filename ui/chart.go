// Package ui renders simulation results with raylib.
package ui

import (
	"fmt"
	"strconv"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gasbreed/plot"
)

// Chart labels.
const (
	ChartTitle  = "Change of population size"
	XAxisLabel  = "time passed"
	YAxisLabel  = "population size"
	marginLeft  = 80
	marginRight = 30
	marginTop   = 60
	marginBot   = 90
)

// Action is a user request raised from the chart window.
type Action int

const (
	ActionNone     Action = iota
	ActionRerun           // run again with the same seed
	ActionNewSeed         // run again with a fresh seed
)

// ChartData is what the chart view displays.
type ChartData struct {
	Sizes []int
	Seed  int64
}

// ChartView draws a population line chart with axes and controls.
type ChartView struct {
	width, height int32
	data          ChartData
	chart         plot.Chart
	points        []plot.Point
}

// NewChartView creates a chart view for a window of the given size.
func NewChartView(width, height int32) *ChartView {
	return &ChartView{width: width, height: height}
}

// SetData replaces the displayed series and recomputes the layout.
func (v *ChartView) SetData(data ChartData) {
	v.data = data
	frame := plot.Frame{
		X:      marginLeft,
		Y:      marginTop,
		Width:  float32(v.width - marginLeft - marginRight),
		Height: float32(v.height - marginTop - marginBot),
	}
	v.chart = plot.NewChart(frame, data.Sizes)
	v.points = v.chart.Points(data.Sizes)
}

// Draw renders the chart and returns any action requested this frame.
// Must be called between rl.BeginDrawing and rl.EndDrawing.
func (v *ChartView) Draw() Action {
	rl.ClearBackground(rl.RayWhite)

	titleW := rl.MeasureText(ChartTitle, 22)
	rl.DrawText(ChartTitle, (v.width-titleW)/2, 20, 22, rl.DarkGray)

	v.drawAxes()
	v.drawSeries()

	// Controls
	action := ActionNone
	by := float32(v.height - 40)
	if gui.Button(rl.Rectangle{X: 10, Y: by, Width: 120, Height: 30}, "Rerun") {
		action = ActionRerun
	}
	if gui.Button(rl.Rectangle{X: 140, Y: by, Width: 120, Height: 30}, "New Seed") {
		action = ActionNewSeed
	}

	final := 0
	if n := len(v.data.Sizes); n > 0 {
		final = v.data.Sizes[n-1]
	}
	rl.DrawText(fmt.Sprintf("Seed: %d | Steps: %d | Final size: %d", v.data.Seed, len(v.data.Sizes), final),
		280, int32(by)+8, 14, rl.Gray)

	return action
}

func (v *ChartView) drawAxes() {
	f := v.chart.Frame
	left, top := int32(f.X), int32(f.Y)
	right, bottom := int32(f.X+f.Width), int32(f.Y+f.Height)

	rl.DrawLine(left, bottom, right, bottom, rl.DarkGray)
	rl.DrawLine(left, top, left, bottom, rl.DarkGray)

	for _, t := range v.chart.XTicks {
		p := v.chart.Project(t, v.chart.Y.Min)
		label := strconv.FormatFloat(t, 'f', -1, 64)
		rl.DrawLine(int32(p.X), bottom, int32(p.X), bottom+5, rl.DarkGray)
		lw := rl.MeasureText(label, 12)
		rl.DrawText(label, int32(p.X)-lw/2, bottom+8, 12, rl.Gray)
	}
	for _, t := range v.chart.YTicks {
		p := v.chart.Project(v.chart.X.Min, t)
		label := strconv.FormatFloat(t, 'f', -1, 64)
		rl.DrawLine(left-5, int32(p.Y), left, int32(p.Y), rl.DarkGray)
		rl.DrawLine(left+1, int32(p.Y), right, int32(p.Y), rl.Fade(rl.LightGray, 0.5))
		lw := rl.MeasureText(label, 12)
		rl.DrawText(label, left-lw-8, int32(p.Y)-6, 12, rl.Gray)
	}

	xw := rl.MeasureText(XAxisLabel, 16)
	rl.DrawText(XAxisLabel, left+(right-left-xw)/2, bottom+28, 16, rl.DarkGray)

	yw := rl.MeasureText(YAxisLabel, 16)
	rl.DrawTextPro(rl.GetFontDefault(), YAxisLabel,
		rl.Vector2{X: 18, Y: float32(top+(bottom-top+yw)/2)},
		rl.Vector2{}, -90, 16, 1, rl.DarkGray)
}

func (v *ChartView) drawSeries() {
	for i := 1; i < len(v.points); i++ {
		a, b := v.points[i-1], v.points[i]
		rl.DrawLineEx(rl.Vector2{X: a.X, Y: a.Y}, rl.Vector2{X: b.X, Y: b.Y}, 2, rl.Blue)
	}
	if len(v.points) == 1 {
		p := v.points[0]
		rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, 3, rl.Blue)
	}
}
