// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catcolor assigns colors to category labels.
package catcolor

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/palette/brewer"
	"golang.org/x/image/colornames"
)

// Category10 is the ten color categorical palette used by D3 and
// matplotlib.
var Category10 = []color.Color{
	color.RGBA{0x1f, 0x77, 0xb4, 0xff},
	color.RGBA{0xff, 0x7f, 0x0e, 0xff},
	color.RGBA{0x2c, 0xa0, 0x2c, 0xff},
	color.RGBA{0xd6, 0x27, 0x28, 0xff},
	color.RGBA{0x94, 0x67, 0xbd, 0xff},
	color.RGBA{0x8c, 0x56, 0x4b, 0xff},
	color.RGBA{0xe3, 0x77, 0xc2, 0xff},
	color.RGBA{0x7f, 0x7f, 0x7f, 0xff},
	color.RGBA{0xbc, 0xbd, 0x22, 0xff},
	color.RGBA{0x17, 0xbe, 0xcf, 0xff},
}

// DefaultPalette is the name of Category10 for Named.
const DefaultPalette = "category10"

// Named returns the palette called name. This is either
// "category10" (or "") or the name of a ColorBrewer palette such as
// "Set1" or "Dark2", in which case the variant with the most colors
// is returned.
func Named(name string) ([]color.Color, error) {
	if name == "" || name == DefaultPalette {
		return Category10, nil
	}
	variants, ok := brewer.ByName[name]
	if !ok {
		return nil, fmt.Errorf("unknown palette %q", name)
	}
	var best []color.Color
	for _, pal := range variants {
		if len(pal) > len(best) {
			best = pal
		}
	}
	return best, nil
}

// Mapping is an assignment of colors to category labels. No two
// labels in a Mapping share a palette entry.
type Mapping struct {
	labels []string
	colors map[string]color.Color
}

// Assign maps each distinct label to a palette entry. Labels get
// entries in order of their first appearance in labels, so the
// first category seen gets pal[0]. Assign fails if pal has fewer
// entries than there are distinct labels.
func Assign(labels []string, pal []color.Color) (*Mapping, error) {
	m := &Mapping{colors: make(map[string]color.Color)}
	for _, label := range labels {
		if _, ok := m.colors[label]; ok {
			continue
		}
		if len(m.labels) == len(pal) {
			return nil, fmt.Errorf("palette has %d colors, need at least %d", len(pal), countDistinct(labels))
		}
		m.colors[label] = pal[len(m.labels)]
		m.labels = append(m.labels, label)
	}
	return m, nil
}

func countDistinct(labels []string) int {
	seen := make(map[string]bool)
	for _, l := range labels {
		seen[l] = true
	}
	return len(seen)
}

// Labels returns the distinct labels of m in assignment order.
func (m *Mapping) Labels() []string {
	return append([]string(nil), m.labels...)
}

// Color returns the color assigned to label.
func (m *Mapping) Color(label string) (color.Color, bool) {
	c, ok := m.colors[label]
	return c, ok
}

// Hex formats c as an SVG "#rrggbb" color, ignoring alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

// Parse parses an SVG color: "#rgb", "#rrggbb", or a color keyword
// such as "lightblue".
func Parse(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, nil
			}
		}
		return nil, fmt.Errorf("malformed color %q", s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}
