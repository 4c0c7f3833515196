// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package iris reads the Iris flower measurements data set.
//
// The input is a comma-separated file with a header row. The header
// must name at least the PetalLength, PetalWidth, and Species
// columns; other columns (such as the sepal measurements) are
// ignored.
package iris

import (
	"github.com/aclements/go-gg/table"
)

// Column names in the input header and in the table returned by
// Dataset.Table.
const (
	ColPetalLength = "PetalLength"
	ColPetalWidth  = "PetalWidth"
	ColSpecies     = "Species"
)

// A Field selects one numeric measurement of a Record.
type Field int

const (
	PetalLength Field = iota
	PetalWidth
)

// Column returns the header name of f.
func (f Field) Column() string {
	switch f {
	case PetalLength:
		return ColPetalLength
	case PetalWidth:
		return ColPetalWidth
	}
	panic("unknown iris.Field")
}

func (f Field) String() string {
	return f.Column()
}

// Record is a single observation (one data row of the input).
type Record struct {
	PetalLength float64
	PetalWidth  float64

	// Species is the category label, with surrounding white
	// space removed. Labels are case-sensitive.
	Species string
}

// Value returns the measurement of r selected by f.
func (r *Record) Value(f Field) float64 {
	switch f {
	case PetalLength:
		return r.PetalLength
	case PetalWidth:
		return r.PetalWidth
	}
	panic("unknown iris.Field")
}

// Dataset is the ordered sequence of records read from one input. A
// Dataset is never modified after Parse returns it, so it may be
// shared by concurrent readers.
type Dataset struct {
	Records []Record

	// Skipped lists the rows dropped under the Skip policy, in
	// input order.
	Skipped []*ParseError
}

// Len returns the number of records in d.
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Column returns a fresh slice of the values of field f, in record
// order.
func (d *Dataset) Column(f Field) []float64 {
	xs := make([]float64, len(d.Records))
	for i := range d.Records {
		xs[i] = d.Records[i].Value(f)
	}
	return xs
}

// Categories returns the distinct Species labels of d in order of
// first appearance.
func (d *Dataset) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range d.Records {
		if !seen[r.Species] {
			seen[r.Species] = true
			out = append(out, r.Species)
		}
	}
	return out
}

// Table returns d as a table with columns PetalLength, PetalWidth
// ([]float64), and Species ([]string).
func (d *Dataset) Table() *table.Table {
	species := make([]string, len(d.Records))
	for i, r := range d.Records {
		species[i] = r.Species
	}
	return new(table.Builder).
		Add(ColPetalLength, d.Column(PetalLength)).
		Add(ColPetalWidth, d.Column(PetalWidth)).
		Add(ColSpecies, species).
		Done()
}
