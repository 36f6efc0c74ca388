// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command svgbbox prints the bounding boxes of the elements of SVG files.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"sync/atomic"

	"cogentcore.org/svgbbox/base/errors"
	"cogentcore.org/svgbbox/base/logx"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newCommand returns the root command, writing results to out.
func newCommand(out io.Writer) *cobra.Command {
	cfg := &Config{}
	cfg.Defaults()
	var configFile string
	var vv, v, q bool

	cmd := &cobra.Command{
		Use:   "svgbbox [flags] file.svg...",
		Short: "Print the bounding boxes of the elements of SVG files",
		Long: `svgbbox prints the object bounding box of the root element of each
SVG file, in its local coordinates, as x, y, width and height.
Use --all or --id to print the boxes of elements with ids instead.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
	}
	fl := cmd.Flags()
	fl.StringVarP(&configFile, "config", "c", DefaultConfigFile, "config file")
	fl.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: text, json, yaml, toml or cbor")
	fl.BoolVarP(&cfg.All, "all", "a", false, "print every element with an id")
	fl.StringSliceVar(&cfg.IDs, "id", nil, "print the elements with the given ids")
	fl.StringVar(&cfg.Language, "lang", "", "user language for systemLanguage conditions")
	fl.Float32Var(&cfg.FontSize, "font-size", cfg.FontSize, "font size of text without a font-size")
	fl.BoolVarP(&cfg.Watch, "watch", "w", false, "print again whenever a file changes")
	fl.BoolVar(&vv, "vv", false, "print debug messages")
	fl.BoolVarP(&v, "verbose", "v", false, "print informational messages")
	fl.BoolVarP(&q, "quiet", "q", false, "only print errors")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logx.UserLevel = logx.LevelFromFlags(vv, v, q)
		logx.SetDefaultLogger()
		if err := loadConfig(cmd, cfg, configFile); err != nil {
			return err
		}
		if cfg.Watch {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return Watch(ctx, cfg, out, args)
		}
		return Run(cfg, out, args)
	}
	return cmd
}

// loadConfig reads the config file into cfg, keeping the values of
// the flags that were set on the command line.
func loadConfig(cmd *cobra.Command, cfg *Config, file string) error {
	flags := *cfg
	if err := cfg.Open(file, cmd.Flags().Changed("config")); err != nil {
		return err
	}
	fl := cmd.Flags()
	if fl.Changed("format") {
		cfg.Format = flags.Format
	}
	if fl.Changed("all") {
		cfg.All = flags.All
	}
	if fl.Changed("id") {
		cfg.IDs = flags.IDs
	}
	if fl.Changed("lang") {
		cfg.Language = flags.Language
	}
	if fl.Changed("font-size") {
		cfg.FontSize = flags.FontSize
	}
	if fl.Changed("watch") {
		cfg.Watch = flags.Watch
	}
	return nil
}

// Run evaluates the given files concurrently and writes the results
// to out in the order of the files. A file that cannot be read is
// logged and skipped, and an error is returned at the end.
func Run(cfg *Config, out io.Writer, files []string) error {
	results := make([][]Result, len(files))
	var nerr atomic.Int32
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, f := range files {
		g.Go(func() error {
			res, err := Evaluate(cfg, f)
			if err != nil {
				errors.Log(fmt.Errorf("%s: %w", f, err))
				nerr.Add(1)
				return nil
			}
			results[i] = res
			return nil
		})
	}
	g.Wait()
	if err := Write(out, cfg.Format, slices.Concat(results...)); err != nil {
		return err
	}
	if n := nerr.Load(); n > 0 {
		return fmt.Errorf("%d of %d files could not be read", n, len(files))
	}
	return nil
}

// Watch runs [Run] and then runs it again whenever one of the files
// changes, until the context is canceled.
func Watch(ctx context.Context, cfg *Config, out io.Writer, files []string) error {
	errors.Log(Run(cfg, out, files))
	return watchFiles(ctx, files, func() {
		errors.Log(Run(cfg, out, files))
	})
}
