// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/statviz/irisplot/chart"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of one irisplot run. Fields missing
// from a configuration file keep their defaults.
type Config struct {
	Scatter chart.Config `yaml:"scatter"`
	Box     chart.Config `yaml:"box"`
	Page    PageConfig   `yaml:"page"`
}

// PageConfig is the configuration of the host page.
type PageConfig struct {
	Title string `yaml:"title"`
}

func defaultConfig() *Config {
	return &Config{
		Scatter: chart.DefaultScatter(),
		Box:     chart.DefaultBox(),
		Page:    PageConfig{Title: "Iris"},
	}
}

// readConfig returns the default configuration overridden by the
// YAML in r. Unknown keys are errors.
func readConfig(r io.Reader) (*Config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadConfig reads the configuration file at path, or returns the
// defaults if path is "".
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := readConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if err := c.Scatter.Validate(); err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	if err := c.Box.Validate(); err != nil {
		return fmt.Errorf("box: %w", err)
	}
	return nil
}
