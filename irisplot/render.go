// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/statviz/irisplot/boxstat"
	"github.com/statviz/irisplot/chart"
	"github.com/statviz/irisplot/iris"
	"github.com/statviz/irisplot/page"
	"golang.org/x/sync/errgroup"
)

// rendered is the output of both chart pipelines.
type rendered struct {
	scatterCanvas, boxCanvas *chart.Canvas

	// scatter and box are the charts as SVG.
	scatter, box bytes.Buffer

	summaries []boxstat.CategorySummary
}

// render runs the scatter and box plot pipelines over ds
// concurrently. Neither pipeline modifies ds.
func render(ds *iris.Dataset, cfg *Config) (*rendered, error) {
	var r rendered
	var g errgroup.Group
	g.Go(func() error {
		c, err := chart.Scatter(ds, cfg.Scatter)
		if err != nil {
			return fmt.Errorf("scatter plot: %w", err)
		}
		r.scatterCanvas = c
		return c.WriteSVG(&r.scatter)
	})
	g.Go(func() error {
		sums, err := boxstat.ByCategory(ds, iris.PetalLength)
		if err != nil {
			return fmt.Errorf("box plot: %w", err)
		}
		c, err := chart.BoxPlot(ds, sums, cfg.Box)
		if err != nil {
			return err
		}
		r.boxCanvas, r.summaries = c, sums
		return c.WriteSVG(&r.box)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &r, nil
}

// writePage writes the host page for r to w.
func (r *rendered) writePage(w io.Writer, title string) error {
	return page.Write(w, page.Page{
		Title:   title,
		Scatter: r.scatter.Bytes(),
		Box:     r.box.Bytes(),
	})
}

// writeSVGs writes each chart as a standalone SVG file in dir, named
// after its page container.
func (r *rendered) writeSVGs(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	for _, f := range []struct {
		id  string
		svg *bytes.Buffer
	}{
		{page.ScatterID, &r.scatter},
		{page.BoxID, &r.box},
	} {
		path := filepath.Join(dir, f.id+".svg")
		if err := os.WriteFile(path, f.svg.Bytes(), 0666); err != nil {
			return err
		}
	}
	return nil
}

// writePNGs rasterizes each chart to a PNG file in dir, named after
// its page container. The two charts are rasterized concurrently.
func (r *rendered) writePNGs(dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	var g errgroup.Group
	for _, f := range []struct {
		id string
		c  *chart.Canvas
	}{
		{page.ScatterID, r.scatterCanvas},
		{page.BoxID, r.boxCanvas},
	} {
		f := f
		g.Go(func() error {
			var buf bytes.Buffer
			if err := f.c.WritePNG(&buf); err != nil {
				return fmt.Errorf("%s: %w", f.id, err)
			}
			return os.WriteFile(filepath.Join(dir, f.id+".png"), buf.Bytes(), 0666)
		})
	}
	return g.Wait()
}

type summaryFile struct {
	Field      string                    `json:"field"`
	Categories []boxstat.CategorySummary `json:"categories"`
}

// writeSummary writes the box plot summaries to w as JSON.
func (r *rendered) writeSummary(w io.Writer) error {
	data, err := json.MarshalIndent(summaryFile{iris.PetalLength.Column(), r.summaries}, "", "\t")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
