// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/statviz/irisplot/catcolor"
)

// Margin is the space around a plot area, in pixels.
type Margin struct {
	Top    int `yaml:"top"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
}

// Config is the layout and appearance of one chart. Each chart
// function takes its Config explicitly; there are no package-level
// dimensions.
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Margin Margin `yaml:"margin"`

	// Background and BoxFill are SVG colors ("#rrggbb" or a
	// keyword).
	Background string `yaml:"background"`
	BoxFill    string `yaml:"box_fill"`

	// Palette names the category palette; see catcolor.Named.
	Palette string `yaml:"palette"`

	PointRadius float64 `yaml:"point_radius"`

	// MaxTicks bounds the number of ticks on a numeric axis.
	MaxTicks int `yaml:"max_ticks"`

	Title  string `yaml:"title"`
	XLabel string `yaml:"x_label"`
	YLabel string `yaml:"y_label"`

	// YLabelOffset is the distance from the y axis line to the y
	// axis label.
	YLabelOffset float64 `yaml:"y_label_offset"`
}

const (
	defaultBackground = "#e9f7f2"
	defaultBoxFill    = "lightblue"
)

// DefaultScatter returns the configuration of the scatter plot.
func DefaultScatter() Config {
	return Config{
		Width:        600,
		Height:       400,
		Margin:       Margin{Top: 60, Right: 30, Bottom: 50, Left: 60},
		Background:   defaultBackground,
		BoxFill:      defaultBoxFill,
		Palette:      catcolor.DefaultPalette,
		PointRadius:  5,
		MaxTicks:     10,
		Title:        "Scatter Plot of Petal Length vs. Petal Width",
		XLabel:       "Petal Length",
		YLabel:       "Petal Width",
		YLabelOffset: 40,
	}
}

// DefaultBox returns the configuration of the box plot.
func DefaultBox() Config {
	return Config{
		Width:        600,
		Height:       400,
		Margin:       Margin{Top: 60, Right: 40, Bottom: 50, Left: 60},
		Background:   defaultBackground,
		BoxFill:      defaultBoxFill,
		Palette:      catcolor.DefaultPalette,
		PointRadius:  5,
		MaxTicks:     10,
		Title:        "Box Plot of Petal Length by Species",
		XLabel:       "Species",
		YLabel:       "Petal Length",
		YLabelOffset: 45,
	}
}

// Validate reports whether c describes a drawable chart.
func (c *Config) Validate() error {
	if c.Width <= c.Margin.Left+c.Margin.Right {
		return fmt.Errorf("width %d leaves no room between margins %d and %d", c.Width, c.Margin.Left, c.Margin.Right)
	}
	if c.Height <= c.Margin.Top+c.Margin.Bottom {
		return fmt.Errorf("height %d leaves no room between margins %d and %d", c.Height, c.Margin.Top, c.Margin.Bottom)
	}
	if c.PointRadius <= 0 {
		return fmt.Errorf("point radius must be positive, got %v", c.PointRadius)
	}
	if c.MaxTicks < 2 {
		return fmt.Errorf("max ticks must be at least 2, got %d", c.MaxTicks)
	}
	if _, err := catcolor.Parse(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := catcolor.Parse(c.BoxFill); err != nil {
		return fmt.Errorf("box fill: %w", err)
	}
	if _, err := catcolor.Named(c.Palette); err != nil {
		return err
	}
	return nil
}

// plotArea returns the pixel bounds of the area inside the margins.
func (c *Config) plotArea() (left, right, top, bottom float64) {
	return float64(c.Margin.Left), float64(c.Width - c.Margin.Right),
		float64(c.Margin.Top), float64(c.Height - c.Margin.Bottom)
}

// svgColor returns s as a normalized "#rrggbb" string. s must have
// passed Validate.
func svgColor(s string) string {
	c, err := catcolor.Parse(s)
	if err != nil {
		panic(err)
	}
	return catcolor.Hex(c)
}
