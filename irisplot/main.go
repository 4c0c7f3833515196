// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command irisplot plots petal measurements from the Iris data set.
//
// irisplot reads a CSV file whose header names at least the columns
// PetalLength, PetalWidth, and Species. It writes an HTML page with
// two charts: a scatter plot of petal length against petal width
// colored by species, and a box plot of petal length by species.
// The charts are inline SVG in the containers "scatterplot" and
// "boxplot".
//
// Chart dimensions, colors, and titles can be changed with a YAML
// file passed to -config, for example:
//
//	scatter:
//	  width: 800
//	  palette: Dark2
//	box:
//	  box_fill: "#ccebc5"
//	page:
//	  title: Petals
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"runtime/pprof"

	"github.com/aclements/go-gg/table"
	"github.com/kballard/go-shellquote"
	"github.com/statviz/irisplot/iris"
	"golang.org/x/term"
)

func main() {
	log.SetPrefix("irisplot: ")
	log.SetFlags(0)

	var (
		flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to `file`")
		flagMemProfile = flag.String("memprofile", "", "write heap profile to `file`")
		flagOut        = flag.String("o", "", "write HTML page to `file` (default: stdout)")
		flagSVGDir     = flag.String("svgdir", "", "also write each chart as an SVG file in `dir`")
		flagPNGDir     = flag.String("pngdir", "", "also write each chart as a PNG image in `dir`")
		flagConfig     = flag.String("config", "", "read chart configuration from YAML `file`")
		flagSummary    = flag.String("summary", "", "write petal length summaries as JSON to `file`")
		flagTable      = flag.Bool("table", false, "output the parsed data as a table instead of plotting")
		flagSkipBad    = flag.Bool("skip-bad", false, "skip malformed rows instead of failing")
		flagTitle      = flag.String("title", "", "page `title` (overrides -config)")
		flagView       = flag.String("view", "", "run `command` on the output file after writing it")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] [input.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if *flagView != "" && *flagOut == "" {
		log.Fatal("-view requires -o")
	}

	if *flagCPUProfile != "" {
		f, err := os.Create(*flagCPUProfile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if *flagMemProfile != "" {
		defer func() {
			runtime.GC()
			f, err := os.Create(*flagMemProfile)
			if err != nil {
				log.Fatal(err)
			}
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		log.Fatal(err)
	}
	if *flagTitle != "" {
		cfg.Page.Title = *flagTitle
	}

	// Load data.
	path := "iris.csv"
	if flag.NArg() == 1 {
		path = flag.Arg(0)
	}
	policy := iris.Strict
	if *flagSkipBad {
		policy = iris.Skip
	}
	ds, err := iris.Load(path, policy)
	if err != nil {
		log.Fatal(err)
	}
	for _, perr := range ds.Skipped {
		log.Printf("%s: skipped %v", path, perr)
	}

	// Prepare for output.
	f := os.Stdout
	if *flagOut != "" {
		f, err = os.Create(*flagOut)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	// Output table.
	if *flagTable {
		table.Fprint(f, ds.Table())
		return
	}

	if *flagOut == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatal("refusing to write HTML to a terminal; use -o or redirect stdout")
	}

	// Plot.
	r, err := render(ds, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := r.writePage(f, cfg.Page.Title); err != nil {
		log.Fatal(err)
	}
	if *flagSVGDir != "" {
		if err := r.writeSVGs(*flagSVGDir); err != nil {
			log.Fatal(err)
		}
	}
	if *flagPNGDir != "" {
		if err := r.writePNGs(*flagPNGDir); err != nil {
			log.Fatal(err)
		}
	}
	if *flagSummary != "" {
		sf, err := os.Create(*flagSummary)
		if err != nil {
			log.Fatal(err)
		}
		if err := r.writeSummary(sf); err != nil {
			log.Fatal(err)
		}
		if err := sf.Close(); err != nil {
			log.Fatal(err)
		}
	}

	if *flagView != "" {
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		if err := view(*flagView, *flagOut); err != nil {
			log.Fatal(err)
		}
	}
}

// view runs the shell-quoted command line cmdline with path appended
// as its last argument.
func view(cmdline, path string) error {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return fmt.Errorf("-view: %w", err)
	}
	if len(args) == 0 {
		return fmt.Errorf("-view: empty command")
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
