// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/statviz/irisplot/axis"
	"github.com/statviz/irisplot/catcolor"
	"github.com/statviz/irisplot/iris"
)

const (
	legendWidth   = 100
	legendSpacing = 20
	swatchSize    = 10
)

// Scatter lays out a scatter plot of petal length against petal
// width with one point per record, colored by species, and a legend.
func Scatter(ds *iris.Dataset, cfg Config) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pal, err := catcolor.Named(cfg.Palette)
	if err != nil {
		return nil, err
	}
	colors, err := catcolor.Assign(ds.Categories(), pal)
	if err != nil {
		return nil, err
	}

	left, right, top, bottom := cfg.plotArea()
	x := axis.NewLinear(ds.Column(iris.PetalLength), left, right)
	y := axis.NewLinear(ds.Column(iris.PetalWidth), bottom, top)

	c := newCanvas(&cfg)
	for _, r := range ds.Records {
		col, _ := colors.Color(r.Species)
		c.Add(Circle{x.Map(r.PetalLength), y.Map(r.PetalWidth), cfg.PointRadius, catcolor.Hex(col)})
	}

	c.Add(bottomAxis(&cfg, linearTicks(x, cfg.MaxTicks), left, right, bottom))
	c.Add(leftAxis(&cfg, linearTicks(y, cfg.MaxTicks), bottom, top, left))

	for i, label := range colors.Labels() {
		col, _ := colors.Color(label)
		c.Add(Group{
			Class: "legend",
			TX:    right - legendWidth,
			TY:    top + float64(i*legendSpacing),
			Items: []Primitive{
				Rect{0, 0, swatchSize, swatchSize, catcolor.Hex(col), ""},
				Text{X: swatchSize + 5, Y: swatchSize / 2, Text: label, DY: "0.35em"},
			},
		})
	}
	return c, nil
}
