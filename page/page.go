// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package page renders the HTML page that hosts the two charts.
package page

import (
	"bytes"
	"html/template"
	"io"
)

// Container element ids for the two charts.
const (
	ScatterID = "scatterplot"
	BoxID     = "boxplot"
)

// Page is the content of a host page. Scatter and Box are complete
// SVG documents as written by chart.Canvas.WriteSVG.
type Page struct {
	Title   string
	Scatter []byte
	Box     []byte
}

const htmlPage = `<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{.Title}}</title>
    <style>
body {
  font-family: sans-serif;
  color: #222;
}
div.chart {
  margin-bottom: 20px;
}
    </style>
  </head>
  <body>
    <div id="{{.ScatterID}}" class="chart">
{{.Scatter}}
    </div>
    <div id="{{.BoxID}}" class="chart">
{{.Box}}
    </div>
  </body>
</html>
`

var htmlTemplate = template.Must(template.New("page").Parse(htmlPage))

// Write renders p to w as an HTML document with one container per
// chart.
func Write(w io.Writer, p Page) error {
	return htmlTemplate.Execute(w, struct {
		Title            string
		ScatterID, BoxID string
		Scatter, Box     template.HTML
	}{
		Title:     p.Title,
		ScatterID: ScatterID,
		BoxID:     BoxID,
		Scatter:   inline(p.Scatter),
		Box:       inline(p.Box),
	})
}

// inline strips the XML prolog and anything else before the <svg>
// element so the document can be embedded in HTML.
func inline(doc []byte) template.HTML {
	if i := bytes.Index(doc, []byte("<svg")); i >= 0 {
		doc = doc[i:]
	}
	return template.HTML(bytes.TrimSpace(doc))
}
