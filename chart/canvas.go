// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart lays out the scatter plot and box plot as lists of
// drawable primitives and writes them as SVG.
//
// A chart is built in a single pass into a Canvas. Nothing is
// computed while drawing: positions come from the axis package and
// statistics from boxstat.
package chart

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
)

// A Primitive is one drawable element of a Canvas.
type Primitive interface {
	draw(s *svg.SVG)
}

// Circle is a filled circle centered at (X, Y).
type Circle struct {
	X, Y, R float64
	Fill    string
}

// Rect is a rectangle with top-left corner (X, Y).
type Rect struct {
	X, Y, W, H   float64
	Fill, Stroke string
}

// Line is a line segment.
type Line struct {
	X1, Y1, X2, Y2 float64
	Stroke         string
}

// Text is a text label anchored at (X, Y).
type Text struct {
	X, Y float64
	Text string

	// Anchor is the SVG text-anchor ("start", "middle", "end"),
	// or "" for the default.
	Anchor string

	// Size is the font size in pixels, or 0 for the default.
	Size float64
	Bold bool
	Fill string

	// DY shifts the text vertically, in SVG length units (for
	// example "0.71em").
	DY string

	// Rotate rotates the text about the origin, in degrees.
	Rotate float64
}

// Group is a translated collection of primitives.
type Group struct {
	Class  string
	TX, TY float64
	Items  []Primitive
}

// Canvas is a fixed-size drawing surface holding primitives in
// drawing order.
type Canvas struct {
	Width, Height int
	Background    string
	Items         []Primitive
}

// Add appends primitives to c.
func (c *Canvas) Add(ps ...Primitive) {
	c.Items = append(c.Items, ps...)
}

// Walk calls f for every primitive in c, descending into groups.
// Groups are visited before their items.
func (c *Canvas) Walk(f func(p Primitive)) {
	var walk func(ps []Primitive)
	walk = func(ps []Primitive) {
		for _, p := range ps {
			f(p)
			if g, ok := p.(Group); ok {
				walk(g.Items)
			}
		}
	}
	walk(c.Items)
}

func (p Circle) draw(s *svg.SVG) {
	s.Circle(p.X, p.Y, p.R, attr("fill", p.Fill))
}

func (p Rect) draw(s *svg.SVG) {
	s.Rect(p.X, p.Y, p.W, p.H, attr("fill", p.Fill), attr("stroke", p.Stroke))
}

func (p Line) draw(s *svg.SVG) {
	s.Line(p.X1, p.Y1, p.X2, p.Y2, attr("stroke", p.Stroke))
}

func (p Text) draw(s *svg.SVG) {
	attrs := []string{attr("text-anchor", p.Anchor), attr("fill", p.Fill), attr("dy", p.DY)}
	if p.Size != 0 {
		attrs = append(attrs, fmt.Sprintf(`font-size="%gpx"`, p.Size))
	}
	if p.Bold {
		attrs = append(attrs, `font-weight="bold"`)
	}
	if p.Rotate != 0 {
		attrs = append(attrs, fmt.Sprintf(`transform="rotate(%g)"`, p.Rotate))
	}
	s.Text(p.X, p.Y, p.Text, attrs...)
}

func (p Group) draw(s *svg.SVG) {
	s.Group(attr("class", p.Class), fmt.Sprintf(`transform="translate(%g,%g)"`, p.TX, p.TY))
	for _, item := range p.Items {
		item.draw(s)
	}
	s.Gend()
}

// attr formats an SVG attribute, or returns "" if val is empty.
// svgo passes arguments containing "=" through as attributes and
// drops empty ones.
func attr(name, val string) string {
	if val == "" {
		return ""
	}
	return fmt.Sprintf(`%s="%s"`, name, val)
}

// svgDecimals is the number of digits written after the decimal
// point of SVG coordinates.
const svgDecimals = 3

// WriteSVG writes c to w as a standalone SVG document.
func (c *Canvas) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Decimals = svgDecimals
	s.Startraw(
		fmt.Sprintf(`width="%d"`, c.Width),
		fmt.Sprintf(`height="%d"`, c.Height),
		fmt.Sprintf(`style="background: %s"`, c.Background),
		`font-family="sans-serif"`)
	for _, p := range c.Items {
		p.draw(s)
	}
	s.End()
	return ew.err
}

// errWriter remembers the first write error, since svgo discards
// them.
type errWriter struct {
	w   io.Writer
	err error
}

func (w *errWriter) Write(b []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(b)
	w.err = err
	return n, err
}
