// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package axis maps data values to pixel coordinates.
//
// Linear maps a continuous domain and Band maps an ordered set of
// category labels. Both are plain values with no hidden state.
package axis

import (
	"math"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-moremath/scale"
)

// DomainPad is the padding added on each side of a data range so the
// extreme points are not drawn on the plot boundary.
const DomainPad = 1

// PaddedDomain returns [min(xs)-pad, max(xs)+pad]. NaNs in xs are
// ignored. If xs is empty, it returns NaN, NaN.
func PaddedDomain(xs []float64, pad float64) (lo, hi float64) {
	if len(xs) == 0 {
		return math.NaN(), math.NaN()
	}
	min := slice.Min(xs).(float64)
	max := slice.Max(xs).(float64)
	return min - pad, max + pad
}

// Linear is a linear map from the domain [Min, Max] to the pixel
// range [Lo, Hi]. Lo may be greater than Hi, as for a y axis that
// grows downward.
type Linear struct {
	Min, Max float64
	Lo, Hi   float64
}

// NewLinear returns a Linear scale whose domain covers xs padded by
// DomainPad on each side.
func NewLinear(xs []float64, lo, hi float64) Linear {
	min, max := PaddedDomain(xs, DomainPad)
	return Linear{min, max, lo, hi}
}

func (l Linear) scale() scale.Linear {
	return scale.Linear{Min: l.Min, Max: l.Max}
}

// Map returns the pixel coordinate of x. If the domain is a single
// point, every value maps to the middle of the range.
func (l Linear) Map(x float64) float64 {
	return l.Lo + l.scale().Map(x)*(l.Hi-l.Lo)
}

// Ticks returns at most max evenly spaced round values in the
// domain, in increasing order.
func (l Linear) Ticks(max int) []float64 {
	major, _ := l.scale().Ticks(scale.TickOptions{Max: max})
	return major
}

// FormatTick formats a tick value produced by Ticks.
func FormatTick(x float64) string {
	// Round away floating point noise such as 0.30000000000000004.
	return strconv.FormatFloat(x, 'f', -1, 32)
}

// Band maps an ordered set of labels to equal-width bands that
// evenly divide the range [Lo, Hi].
//
// Padding is the fraction of each step left empty between bands; the
// same amount is left at the outer edges. It must be in [0, 1).
type Band struct {
	Domain  []string
	Lo, Hi  float64
	Padding float64
}

func (b Band) step() float64 {
	n := float64(len(b.Domain))
	return (b.Hi - b.Lo) / math.Max(1, n+b.Padding)
}

// Step returns the distance between the starts of adjacent bands.
func (b Band) Step() float64 {
	return b.step()
}

// Bandwidth returns the width of each band.
func (b Band) Bandwidth() float64 {
	return b.step() * (1 - b.Padding)
}

// Map returns the start of the band for label. ok is false if label
// is not in the domain.
func (b Band) Map(label string) (x float64, ok bool) {
	for i, d := range b.Domain {
		if d == label {
			n := float64(len(b.Domain))
			step := b.step()
			start := b.Lo + (b.Hi-b.Lo-step*(n-b.Padding))/2
			return start + step*float64(i), true
		}
	}
	return 0, false
}

// Center returns the middle of the band for label.
func (b Band) Center(label string) (x float64, ok bool) {
	x, ok = b.Map(label)
	return x + b.Bandwidth()/2, ok
}
