// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package boxstat computes the summary statistics drawn by a box
// plot: quartiles, interquartile range, and whiskers.
package boxstat

import (
	"errors"
	"fmt"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/statviz/irisplot/iris"
)

// WhiskerCoef is the length of a whisker fence as a multiple of the
// interquartile range.
const WhiskerCoef = 1.5

// ErrEmpty is returned when summarizing an empty sample.
var ErrEmpty = errors.New("no values")

// An EmptyGroupError reports a category with no values.
type EmptyGroupError struct {
	Category string
}

func (e *EmptyGroupError) Error() string {
	return fmt.Sprintf("category %q: %v", e.Category, ErrEmpty)
}

func (e *EmptyGroupError) Unwrap() error {
	return ErrEmpty
}

// Summary is the box plot summary of one sample.
//
// The whiskers are the 1.5×IQR fences clipped to the observed range,
// so they never extend past an actual data point:
//
//	LowerWhisker = max(Q1 - 1.5*IQR, Min)
//	UpperWhisker = min(Q3 + 1.5*IQR, Max)
type Summary struct {
	N            int     `json:"n"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Mean         float64 `json:"mean"`
	Q1           float64 `json:"q1"`
	Median       float64 `json:"median"`
	Q3           float64 `json:"q3"`
	IQR          float64 `json:"iqr"`
	LowerWhisker float64 `json:"lower_whisker"`
	UpperWhisker float64 `json:"upper_whisker"`
}

// CategorySummary is the Summary of the values in one category.
type CategorySummary struct {
	Category string `json:"category"`
	Summary
}

// Quantile returns the p-quantile of sorted, which must be in
// ascending order. It interpolates linearly between the closest
// ranks (method R-7 of Hyndman and Fan, the default of R and
// spreadsheets): with h = p*(n-1), the result lies between
// sorted[floor(h)] and sorted[ceil(h)].
//
// p is capped to [0, 1]. If sorted is empty, Quantile returns NaN.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	} else if p <= 0 {
		return sorted[0]
	} else if p >= 1 {
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= n {
		return sorted[n-1]
	}
	q := sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
	// Rounding can push q an ulp past its upper neighbor, which
	// would break Q1 <= Median <= Q3.
	return math.Min(q, sorted[i+1])
}

// Summarize computes the Summary of xs. xs is not modified.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, ErrEmpty
	}

	// stats.Sample.Quantile uses R-8, so only sorting and bounds
	// come from it.
	s := stats.Sample{Xs: append([]float64(nil), xs...)}
	s.Sort()
	min, max := s.Bounds()

	q1 := Quantile(s.Xs, 0.25)
	median := Quantile(s.Xs, 0.5)
	q3 := Quantile(s.Xs, 0.75)
	iqr := q3 - q1

	return Summary{
		N:            len(s.Xs),
		Min:          min,
		Max:          max,
		Mean:         s.Mean(),
		Q1:           q1,
		Median:       median,
		Q3:           q3,
		IQR:          iqr,
		LowerWhisker: math.Max(q1-WhiskerCoef*iqr, min),
		UpperWhisker: math.Min(q3+WhiskerCoef*iqr, max),
	}, nil
}

// ByCategory groups ds by species and summarizes field within each
// group. Summaries are returned in order of first appearance of each
// species in ds.
func ByCategory(ds *iris.Dataset, field iris.Field) ([]CategorySummary, error) {
	g := table.GroupBy(ds.Table(), iris.ColSpecies)

	var out []CategorySummary
	for _, gid := range g.Tables() {
		label := gid.Label().(string)
		xs := g.Table(gid).MustColumn(field.Column()).([]float64)
		s, err := Summarize(xs)
		if err != nil {
			return nil, &EmptyGroupError{label}
		}
		out = append(out, CategorySummary{label, s})
	}
	return out, nil
}
