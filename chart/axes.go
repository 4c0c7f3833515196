// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/statviz/irisplot/axis"
)

const (
	tickSize    = 6
	tickPadding = 3
	tickFont    = 10
	labelFont   = 12
	titleFont   = 16

	// xLabelOffset is the distance from the x axis line to the x
	// axis label.
	xLabelOffset = 35
)

type tick struct {
	pos   float64
	label string
}

func linearTicks(l axis.Linear, max int) []tick {
	var ticks []tick
	for _, x := range l.Ticks(max) {
		ticks = append(ticks, tick{l.Map(x), axis.FormatTick(x)})
	}
	return ticks
}

func bandTicks(b axis.Band) []tick {
	var ticks []tick
	for _, label := range b.Domain {
		x, _ := b.Center(label)
		ticks = append(ticks, tick{x, label})
	}
	return ticks
}

// bottomAxis returns an x axis along y = at spanning [lo, hi], with
// its label centered under the chart.
func bottomAxis(cfg *Config, ticks []tick, lo, hi, at float64) Group {
	g := Group{Class: "axis x", TY: at}
	g.Items = append(g.Items, Line{lo, 0, hi, 0, "black"})
	for _, t := range ticks {
		g.Items = append(g.Items,
			Line{t.pos, 0, t.pos, tickSize, "black"},
			Text{X: t.pos, Y: tickSize + tickPadding, Text: t.label, Anchor: "middle", Size: tickFont, Fill: "black", DY: "0.71em"})
	}
	g.Items = append(g.Items, Text{
		X: float64(cfg.Width) / 2, Y: xLabelOffset,
		Text: cfg.XLabel, Anchor: "middle", Size: labelFont, Fill: "black",
	})
	return g
}

// leftAxis returns a y axis along x = at spanning [lo, hi], with its
// label rotated and centered beside the chart.
func leftAxis(cfg *Config, ticks []tick, lo, hi, at float64) Group {
	g := Group{Class: "axis y", TX: at}
	g.Items = append(g.Items, Line{0, lo, 0, hi, "black"})
	for _, t := range ticks {
		g.Items = append(g.Items,
			Line{-tickSize, t.pos, 0, t.pos, "black"},
			Text{X: -(tickSize + tickPadding), Y: t.pos, Text: t.label, Anchor: "end", Size: tickFont, Fill: "black", DY: "0.32em"})
	}
	g.Items = append(g.Items, Text{
		X: -float64(cfg.Height) / 2, Y: -cfg.YLabelOffset,
		Text: cfg.YLabel, Anchor: "middle", Size: labelFont, Fill: "black",
		Rotate: -90,
	})
	return g
}

// newCanvas returns a canvas sized and titled according to cfg.
func newCanvas(cfg *Config) *Canvas {
	c := &Canvas{Width: cfg.Width, Height: cfg.Height, Background: svgColor(cfg.Background)}
	c.Add(Text{
		X: float64(cfg.Width) / 2, Y: float64(cfg.Margin.Top) / 2,
		Text: cfg.Title, Anchor: "middle", Size: titleFont, Bold: true,
	})
	return c
}
