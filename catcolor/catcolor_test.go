// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catcolor

import (
	"fmt"
	"image/color"
	"reflect"
	"testing"
)

func ExampleAssign() {
	m, _ := Assign([]string{"setosa", "setosa", "versicolor", "virginica", "versicolor"}, Category10)
	for _, label := range m.Labels() {
		c, _ := m.Color(label)
		fmt.Println(label, Hex(c))
	}
	// Output:
	// setosa #1f77b4
	// versicolor #ff7f0e
	// virginica #2ca02c
}

func TestAssignBijection(t *testing.T) {
	labels := []string{"c", "a", "c", "b", "a", "d"}
	m, err := Assign(labels, Category10)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := m.Labels(), []string{"c", "a", "b", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v; want %v", got, want)
	}
	used := make(map[string]string)
	for _, label := range labels {
		c, ok := m.Color(label)
		if !ok {
			t.Fatalf("no color for %q", label)
		}
		hex := Hex(c)
		if other, ok := used[hex]; ok && other != label {
			t.Errorf("%q and %q share color %s", label, other, hex)
		}
		used[hex] = label
	}
	if _, ok := m.Color("zzz"); ok {
		t.Errorf("Color of unassigned label should fail")
	}

	// Assignment is stable.
	m2, _ := Assign(labels, Category10)
	for _, label := range labels {
		c1, _ := m.Color(label)
		c2, _ := m2.Color(label)
		if c1 != c2 {
			t.Errorf("%q colored %v then %v", label, c1, c2)
		}
	}
}

func TestAssignPaletteTooSmall(t *testing.T) {
	pal := Category10[:2]
	if _, err := Assign([]string{"a", "b", "a"}, pal); err != nil {
		t.Errorf("two labels, two colors: unexpected error %v", err)
	}
	if _, err := Assign([]string{"a", "b", "c"}, pal); err == nil {
		t.Errorf("three labels, two colors: want error")
	}
}

func TestNamed(t *testing.T) {
	for _, name := range []string{"", "category10"} {
		pal, err := Named(name)
		if err != nil || len(pal) != 10 {
			t.Errorf("Named(%q) = %d colors, %v; want 10 colors", name, len(pal), err)
		}
	}
	pal, err := Named("Set1")
	if err != nil {
		t.Fatalf("Named(\"Set1\"): %v", err)
	}
	if len(pal) != 9 {
		t.Errorf("Named(\"Set1\") has %d colors; want 9", len(pal))
	}
	if _, err := Named("NoSuchPalette"); err == nil {
		t.Errorf("Named(\"NoSuchPalette\"): want error")
	}
}

func TestParse(t *testing.T) {
	for _, test := range []struct {
		in   string
		want string
	}{
		{"#e9f7f2", "#e9f7f2"},
		{"#ABC", "#aabbcc"},
		{"lightblue", "#add8e6"},
		{" Black ", "#000000"},
	} {
		c, err := Parse(test.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.in, err)
			continue
		}
		if got := Hex(c); got != test.want {
			t.Errorf("Parse(%q) = %s; want %s", test.in, got, test.want)
		}
	}
	for _, bad := range []string{"#12", "#gggggg", "notacolor", ""} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q): want error", bad)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.Gray{0x80}); got != "#808080" {
		t.Errorf("Hex(Gray{0x80}) = %s; want #808080", got)
	}
}
