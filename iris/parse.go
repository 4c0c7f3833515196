// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iris

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Policy controls what Parse does with a malformed row.
type Policy int

const (
	// Strict fails the whole load at the first malformed row.
	Strict Policy = iota

	// Skip drops malformed rows and records them in
	// Dataset.Skipped.
	Skip
)

func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	case Skip:
		return "skip"
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ErrEmpty is returned when an input has no usable records.
var ErrEmpty = errors.New("no records")

var (
	errMissingColumn = errors.New("missing column in header")
	errMissingField  = errors.New("missing field")
	errNotFinite     = errors.New("not a finite number")
	errNegative      = errors.New("negative measurement")
	errNoLabel       = errors.New("empty category label")
)

// A LoadError reports that an input file could not be opened or
// read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// A ParseError reports a malformed header or data row.
type ParseError struct {
	// Line is the 1-based line number in the input.
	Line int

	// Column is the name of the offending column, if any.
	Column string

	// Value is the offending text.
	Value string

	Err error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	if e.Value == "" {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("line %d: %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the data set at path. A path of "-" reads standard
// input. Failures to open or read the file are returned as a
// *LoadError.
func Load(path string, policy Policy) (*Dataset, error) {
	if path == "-" {
		return load("<stdin>", os.Stdin, policy)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{path, err}
	}
	defer f.Close()
	return load(path, f, policy)
}

// load parses r, which was opened from name. Malformed input is
// reported with name as a prefix and anything else as a *LoadError.
func load(name string, r io.Reader, policy Policy) (*Dataset, error) {
	ds, err := Parse(r, policy)
	if err != nil {
		var pe *ParseError
		var ce *csv.ParseError
		if errors.As(err, &pe) || errors.As(err, &ce) || errors.Is(err, ErrEmpty) {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return nil, &LoadError{name, err}
	}
	return ds, nil
}

// Parse reads a data set from r.
//
// Numeric fields must be finite, non-negative floating point
// literals and Species must be non-empty. What happens to a row that
// violates this depends on policy. Parse returns ErrEmpty if no
// records remain.
func Parse(r io.Reader, policy Policy) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmpty
	} else if err != nil {
		return nil, err
	}
	cols, err := findColumns(header)
	if err != nil {
		return nil, err
	}

	ds := new(Dataset)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			// Syntax errors leave the reader in an
			// unknown position, so these are always
			// fatal.
			return nil, err
		}

		line, _ := cr.FieldPos(0)
		rec, perr := parseRow(row, cols, line)
		if perr != nil {
			if policy == Strict {
				return nil, perr
			}
			ds.Skipped = append(ds.Skipped, perr)
			continue
		}
		ds.Records = append(ds.Records, rec)
	}

	if len(ds.Records) == 0 {
		return nil, ErrEmpty
	}
	return ds, nil
}

// columns gives the index of each required column in a row.
type columns struct {
	length, width, species int
}

func findColumns(header []string) (columns, error) {
	idx := make(map[string]int)
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		if _, ok := idx[name]; !ok {
			idx[name] = i
		}
	}
	var cols columns
	for _, c := range []struct {
		name string
		dst  *int
	}{
		{ColPetalLength, &cols.length},
		{ColPetalWidth, &cols.width},
		{ColSpecies, &cols.species},
	} {
		i, ok := idx[c.name]
		if !ok {
			return cols, &ParseError{Line: 1, Column: c.name, Err: errMissingColumn}
		}
		*c.dst = i
	}
	return cols, nil
}

func parseRow(row []string, cols columns, line int) (Record, *ParseError) {
	var rec Record

	field := func(i int, name string) (string, *ParseError) {
		if i >= len(row) {
			return "", &ParseError{Line: line, Column: name, Err: errMissingField}
		}
		return strings.TrimSpace(row[i]), nil
	}
	measure := func(i int, name string) (float64, *ParseError) {
		s, perr := field(i, name)
		if perr != nil {
			return 0, perr
		}
		if s == "" {
			return 0, &ParseError{Line: line, Column: name, Err: errMissingField}
		}
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// Report the strconv error without its
			// redundant copy of the input.
			if ne, ok := err.(*strconv.NumError); ok {
				err = ne.Err
			}
			return 0, &ParseError{line, name, s, err}
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return 0, &ParseError{line, name, s, errNotFinite}
		}
		if x < 0 {
			return 0, &ParseError{line, name, s, errNegative}
		}
		return x, nil
	}

	var perr *ParseError
	if rec.PetalLength, perr = measure(cols.length, ColPetalLength); perr != nil {
		return rec, perr
	}
	if rec.PetalWidth, perr = measure(cols.width, ColPetalWidth); perr != nil {
		return rec, perr
	}
	if rec.Species, perr = field(cols.species, ColSpecies); perr != nil {
		return rec, perr
	}
	if rec.Species == "" {
		return rec, &ParseError{Line: line, Column: ColSpecies, Err: errNoLabel}
	}
	return rec, nil
}
