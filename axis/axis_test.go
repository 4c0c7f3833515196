// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package axis

import (
	"math"
	"testing"

	"github.com/statviz/irisplot/iris"
)

func aeq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestPaddedDomain(t *testing.T) {
	for _, test := range []struct {
		xs     []float64
		lo, hi float64
	}{
		{[]float64{1, 2, 3}, 0, 4},
		{[]float64{3.5, 1.25, 2}, 0.25, 4.5},
		{[]float64{5}, 4, 6},
		{[]float64{0, math.NaN(), 2}, -1, 3},
	} {
		lo, hi := PaddedDomain(test.xs, 1)
		if lo != test.lo || hi != test.hi {
			t.Errorf("PaddedDomain(%v, 1) = [%v, %v]; want [%v, %v]", test.xs, lo, hi, test.lo, test.hi)
		}
	}

	lo, hi := PaddedDomain(nil, 1)
	if !math.IsNaN(lo) || !math.IsNaN(hi) {
		t.Errorf("PaddedDomain(nil, 1) = [%v, %v]; want [NaN, NaN]", lo, hi)
	}
}

func TestDomainSpansCategories(t *testing.T) {
	// Two categories with disjoint ranges get one shared domain.
	ds := &iris.Dataset{Records: []iris.Record{
		{PetalLength: 1.0, Species: "A"},
		{PetalLength: 1.5, Species: "A"},
		{PetalLength: 5.0, Species: "B"},
		{PetalLength: 6.5, Species: "B"},
	}}
	l := NewLinear(ds.Column(iris.PetalLength), 0, 100)
	if l.Min != 0 || l.Max != 7.5 {
		t.Errorf("domain = [%v, %v]; want [0, 7.5]", l.Min, l.Max)
	}
}

func TestLinear(t *testing.T) {
	l := Linear{Min: 0, Max: 10, Lo: 60, Hi: 570}
	for _, test := range []struct{ x, want float64 }{
		{0, 60}, {10, 570}, {5, 315}, {-1, 9},
	} {
		if got := l.Map(test.x); !aeq(got, test.want) {
			t.Errorf("%+v.Map(%v) = %v; want %v", l, test.x, got, test.want)
		}
	}

	// Inverted range, as used for y axes.
	l = Linear{Min: 0, Max: 4, Lo: 350, Hi: 60}
	if got := l.Map(0); !aeq(got, 350) {
		t.Errorf("inverted Map(0) = %v; want 350", got)
	}
	if got := l.Map(4); !aeq(got, 60) {
		t.Errorf("inverted Map(4) = %v; want 60", got)
	}
}

func TestLinearDegenerate(t *testing.T) {
	l := Linear{Min: 3, Max: 3, Lo: 100, Hi: 200}
	for _, x := range []float64{2, 3, 4} {
		if got := l.Map(x); got != 150 {
			t.Errorf("degenerate Map(%v) = %v; want 150", x, got)
		}
	}
}

func TestTicks(t *testing.T) {
	l := Linear{Min: 0, Max: 8, Lo: 0, Hi: 1}
	ticks := l.Ticks(10)
	if len(ticks) != 9 {
		t.Fatalf("Ticks(10) = %v; want 9 ticks", ticks)
	}
	for i, x := range ticks {
		if !aeq(x, float64(i)) {
			t.Errorf("tick %d = %v; want %d", i, x, i)
		}
	}

	// Ticks stay within the domain.
	l = Linear{Min: -0.9, Max: 3.5}
	for _, x := range l.Ticks(10) {
		if x < l.Min || x > l.Max {
			t.Errorf("tick %v outside domain [%v, %v]", x, l.Min, l.Max)
		}
	}
	if n := len(l.Ticks(5)); n > 5 || n == 0 {
		t.Errorf("Ticks(5) returned %d ticks", n)
	}
}

func TestFormatTick(t *testing.T) {
	for _, test := range []struct {
		x    float64
		want string
	}{
		{1, "1"}, {0.5, "0.5"}, {0.1 + 0.2, "0.3"}, {-2, "-2"},
	} {
		if got := FormatTick(test.x); got != test.want {
			t.Errorf("FormatTick(%v) = %q; want %q", test.x, got, test.want)
		}
	}
}

func TestBand(t *testing.T) {
	b := Band{Domain: []string{"a", "b", "c"}, Lo: 0, Hi: 300}
	if got := b.Bandwidth(); !aeq(got, 100) {
		t.Errorf("unpadded Bandwidth() = %v; want 100", got)
	}
	for i, label := range b.Domain {
		x, ok := b.Map(label)
		if !ok || !aeq(x, 100*float64(i)) {
			t.Errorf("unpadded Map(%q) = %v, %v; want %v, true", label, x, ok, 100*i)
		}
	}

	b = Band{Domain: []string{"a", "b", "c"}, Lo: 0, Hi: 310, Padding: 0.1}
	if got := b.Step(); !aeq(got, 100) {
		t.Errorf("Step() = %v; want 100", got)
	}
	if got := b.Bandwidth(); !aeq(got, 90) {
		t.Errorf("Bandwidth() = %v; want 90", got)
	}
	for i, want := range []float64{10, 110, 210} {
		x, ok := b.Map(b.Domain[i])
		if !ok || !aeq(x, want) {
			t.Errorf("Map(%q) = %v, %v; want %v, true", b.Domain[i], x, ok, want)
		}
	}
	if c, _ := b.Center("b"); !aeq(c, 155) {
		t.Errorf("Center(\"b\") = %v; want 155", c)
	}
	if _, ok := b.Map("z"); ok {
		t.Errorf("Map of unknown label should fail")
	}

	// The outer padding is symmetric.
	last, _ := b.Map("c")
	first, _ := b.Map("a")
	if !aeq(first-b.Lo, b.Hi-(last+b.Bandwidth())) {
		t.Errorf("asymmetric outer padding: %v vs %v", first-b.Lo, b.Hi-(last+b.Bandwidth()))
	}
}

func TestBandSingle(t *testing.T) {
	b := Band{Domain: []string{"only"}, Lo: 0, Hi: 3, Padding: 0.5}
	x, ok := b.Map("only")
	if !ok || !aeq(x, 1) || !aeq(b.Bandwidth(), 1) {
		t.Errorf("Map = %v, %v, Bandwidth = %v; want 1, true, 1", x, ok, b.Bandwidth())
	}
}
