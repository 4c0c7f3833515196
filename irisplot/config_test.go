// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/statviz/irisplot/chart"
)

func TestReadConfigDefaults(t *testing.T) {
	for _, input := range []string{"", "scatter: {}\n"} {
		cfg, err := readConfig(strings.NewReader(input))
		if err != nil {
			t.Errorf("%q: %v", input, err)
			continue
		}
		if want := defaultConfig(); !reflect.DeepEqual(cfg, want) {
			t.Errorf("%q: got %+v; want %+v", input, cfg, want)
		}
	}
}

func TestReadConfigOverride(t *testing.T) {
	input := `
scatter:
  width: 800
  palette: Dark2
  margin:
    top: 10
box:
  box_fill: "#ccebc5"
  title: Petal lengths
page:
  title: Petals
`
	cfg, err := readConfig(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	wantScatter := chart.DefaultScatter()
	wantScatter.Width = 800
	wantScatter.Palette = "Dark2"
	wantScatter.Margin.Top = 10
	if !reflect.DeepEqual(cfg.Scatter, wantScatter) {
		t.Errorf("scatter config:\n got %+v\nwant %+v", cfg.Scatter, wantScatter)
	}

	wantBox := chart.DefaultBox()
	wantBox.BoxFill = "#ccebc5"
	wantBox.Title = "Petal lengths"
	if !reflect.DeepEqual(cfg.Box, wantBox) {
		t.Errorf("box config:\n got %+v\nwant %+v", cfg.Box, wantBox)
	}

	if cfg.Page.Title != "Petals" {
		t.Errorf("page title %q; want %q", cfg.Page.Title, "Petals")
	}
}

func TestReadConfigErrors(t *testing.T) {
	for _, input := range []string{
		// Unknown keys.
		"scatter:\n  colour: red\n",
		"axes: {}\n",
		// Bad values.
		"scatter:\n  width: wide\n",
		"box:\n  width: 50\n",
		"box:\n  box_fill: notacolor\n",
		"scatter:\n  palette: nopalette\n",
		"scatter:\n  point_radius: -1\n",
		// Not YAML.
		"scatter: [\n",
	} {
		if _, err := readConfig(strings.NewReader(input)); err == nil {
			t.Errorf("%q: want error", input)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg, defaultConfig()) {
		t.Errorf("loadConfig(\"\") is not the default configuration")
	}

	path := filepath.Join(t.TempDir(), "irisplot.yaml")
	if err := os.WriteFile(path, []byte("page:\n  title: From file\n"), 0666); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Page.Title != "From file" {
		t.Errorf("page title %q; want %q", cfg.Page.Title, "From file")
	}

	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("want error for missing config file")
	}
}
