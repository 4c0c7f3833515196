// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/statviz/irisplot/catcolor"
	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

// At 72 dots per inch one vg point is one pixel, so SVG user units
// carry over unchanged.
const pngDPI = 72

// defaultFontSize is the size of Text with Size 0, matching the
// browser default for SVG text.
const defaultFontSize = 16

var pngFonts = font.NewCache(liberation.Collection())

// WritePNG rasterizes c and writes it to w as a PNG image. The
// result matches the SVG written by WriteSVG, with text set in
// Liberation Sans.
func (c *Canvas) WritePNG(w io.Writer) error {
	bg, err := catcolor.Parse(c.Background)
	if err != nil {
		return err
	}
	img := vgimg.NewWith(
		vgimg.UseWH(vg.Length(c.Width), vg.Length(c.Height)),
		vgimg.UseDPI(pngDPI),
		vgimg.UseBackgroundColor(bg),
	)

	// Flip to SVG's y-down coordinates.
	img.Translate(vg.Point{X: 0, Y: vg.Length(c.Height)})
	img.Scale(1, -1)

	r := rasterizer{img}
	for _, p := range c.Items {
		if err := r.draw(p); err != nil {
			return err
		}
	}
	_, err = vgimg.PngCanvas{Canvas: img}.WriteTo(w)
	return err
}

type rasterizer struct {
	c *vgimg.Canvas
}

func pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(y)}
}

// setColor sets the current color to s. It reports false if s is
// empty, meaning nothing should be painted.
func (r rasterizer) setColor(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	col, err := catcolor.Parse(s)
	if err != nil {
		return false, err
	}
	r.c.SetColor(col)
	return true, nil
}

func (r rasterizer) draw(p Primitive) error {
	switch p := p.(type) {
	case Circle:
		if ok, err := r.setColor(p.Fill); !ok {
			return err
		}
		var path vg.Path
		path.Move(pt(p.X+p.R, p.Y))
		path.Arc(pt(p.X, p.Y), vg.Length(p.R), 0, 2*math.Pi)
		path.Close()
		r.c.Fill(path)

	case Rect:
		var path vg.Path
		path.Move(pt(p.X, p.Y))
		path.Line(pt(p.X+p.W, p.Y))
		path.Line(pt(p.X+p.W, p.Y+p.H))
		path.Line(pt(p.X, p.Y+p.H))
		path.Close()
		ok, err := r.setColor(p.Fill)
		if err != nil {
			return err
		} else if ok {
			r.c.Fill(path)
		}
		ok, err = r.setColor(p.Stroke)
		if err != nil {
			return err
		} else if ok {
			r.c.SetLineWidth(1)
			r.c.Stroke(path)
		}

	case Line:
		if ok, err := r.setColor(p.Stroke); !ok {
			return err
		}
		var path vg.Path
		path.Move(pt(p.X1, p.Y1))
		path.Line(pt(p.X2, p.Y2))
		r.c.SetLineWidth(1)
		r.c.Stroke(path)

	case Text:
		return r.text(p)

	case Group:
		r.c.Push()
		defer r.c.Pop()
		r.c.Translate(pt(p.TX, p.TY))
		for _, item := range p.Items {
			if err := r.draw(item); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r rasterizer) text(p Text) error {
	fill := p.Fill
	if fill == "" {
		fill = "black"
	}
	if _, err := r.setColor(fill); err != nil {
		return err
	}

	size := p.Size
	if size == 0 {
		size = defaultFontSize
	}
	fnt := font.Font{Typeface: "Liberation", Variant: "Sans"}
	if p.Bold {
		fnt.Weight = xfont.WeightBold
	}
	face := pngFonts.Lookup(fnt, vg.Length(size))

	x := 0.0
	switch p.Anchor {
	case "middle":
		x = -float64(face.Width(p.Text)) / 2
	case "end":
		x = -float64(face.Width(p.Text))
	}

	r.c.Push()
	defer r.c.Pop()
	r.c.Rotate(p.Rotate * math.Pi / 180)
	r.c.Translate(pt(p.X, p.Y+emShift(p.DY, size)))
	// Glyphs are drawn y-up.
	r.c.Scale(1, -1)
	r.c.FillString(face, pt(x, 0), p.Text)
	return nil
}

// emShift converts an SVG dy length to pixels. Only "em" and
// unitless lengths are understood; anything else is no shift.
func emShift(dy string, size float64) float64 {
	if dy == "" {
		return 0
	}
	if v, ok := strings.CutSuffix(dy, "em"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f * size
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(dy, "px"), 64)
	if err != nil {
		return 0
	}
	return f
}
