// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/statviz/irisplot/axis"
	"github.com/statviz/irisplot/boxstat"
	"github.com/statviz/irisplot/iris"
)

// BandPadding is the fraction of each category band left empty in
// the box plot.
const BandPadding = 0.1

// BoxPlot lays out a box plot of petal length by species. sums must
// be the petal length summaries of ds, as computed by
// boxstat.ByCategory.
//
// The y axis covers the petal lengths of the whole data set, not of
// any one species, so boxes are comparable.
func BoxPlot(ds *iris.Dataset, sums []boxstat.CategorySummary, cfg Config) (*Canvas, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	left, right, top, bottom := cfg.plotArea()
	x := axis.Band{Domain: ds.Categories(), Lo: left, Hi: right, Padding: BandPadding}
	y := axis.NewLinear(ds.Column(iris.PetalLength), bottom, top)

	c := newCanvas(&cfg)
	c.Add(bottomAxis(&cfg, bandTicks(x), left, right, bottom))
	c.Add(leftAxis(&cfg, linearTicks(y, cfg.MaxTicks), bottom, top, left))

	fill := svgColor(cfg.BoxFill)
	bw := x.Bandwidth()
	for _, s := range sums {
		bx, ok := x.Map(s.Category)
		if !ok {
			return nil, fmt.Errorf("box plot: category %q not in data", s.Category)
		}
		mid := bx + bw/2
		c.Add(
			Line{mid, y.Map(s.LowerWhisker), mid, y.Map(s.UpperWhisker), "black"},
			Rect{bx, y.Map(s.Q3), bw, y.Map(s.Q1) - y.Map(s.Q3), fill, "black"},
			Line{bx, y.Map(s.Median), bx + bw, y.Map(s.Median), "black"},
		)
	}
	return c, nil
}
