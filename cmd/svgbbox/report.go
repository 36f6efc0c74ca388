// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"cogentcore.org/svgbbox/bbox"
	"cogentcore.org/svgbbox/svg"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fxamacker/cbor/v2"
	"github.com/gobwas/glob"
	"github.com/h2non/filetype"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Rect is a valid bounding box in a form that every output format
// can encode.
type Rect struct {
	X      float32 `json:"x" yaml:"x" toml:"x" cbor:"x"`
	Y      float32 `json:"y" yaml:"y" toml:"y" cbor:"y"`
	Width  float32 `json:"width" yaml:"width" toml:"width" cbor:"width"`
	Height float32 `json:"height" yaml:"height" toml:"height" cbor:"height"`
}

// Result is the bounding box of one element of a file.
type Result struct {
	File string `json:"file" yaml:"file" toml:"file" cbor:"file"`
	ID   string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty" cbor:"id,omitempty"`
	Kind string `json:"kind" yaml:"kind" toml:"kind" cbor:"kind"`

	// BBox is nil if the element has no box or an empty one.
	BBox *Rect `json:"bbox" yaml:"bbox" toml:"bbox,omitempty" cbor:"bbox"`
}

func newResult(file string, el *svg.Element, b bbox.Box, ok bool) Result {
	r := Result{File: file, ID: el.ID(), Kind: el.Kind().String()}
	if ok && b.IsValid() {
		r.BBox = &Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}
	return r
}

// Evaluate opens the given SVG file and returns the bounding boxes
// of the elements selected by the config.
func Evaluate(c *Config, file string) ([]Result, error) {
	if err := checkFileType(file); err != nil {
		return nil, err
	}
	sv := svg.NewSVG()
	if c.Language != "" {
		tag, err := language.Parse(c.Language)
		if err != nil {
			return nil, fmt.Errorf("language %q: %w", c.Language, err)
		}
		sv.Features = svg.NewFeatures(tag)
	}
	if err := sv.OpenXML(file); err != nil {
		return nil, err
	}
	fm := svg.NewFaceMeasurer()
	if c.FontSize > 0 {
		fm.FontSize = c.FontSize
	}
	sv.MeasureText(fm)

	var els []*svg.Element
	switch {
	case len(c.IDs) > 0:
		var err error
		els, err = selectIDs(sv, file, c.IDs)
		if err != nil {
			return nil, err
		}
	case c.All:
		els = sv.IDElements()
	default:
		els = []*svg.Element{sv.Root}
	}
	res := make([]Result, 0, len(els))
	for _, el := range els {
		b, ok := sv.BBox(el)
		res = append(res, newResult(file, el, b, ok))
	}
	return res, nil
}

// checkFileType returns an error if the file starts like a known
// binary format, which cannot be an SVG file.
func checkFileType(file string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	kind, err := filetype.Match(head[:n])
	if err != nil || kind == filetype.Unknown {
		return nil
	}
	return fmt.Errorf("%s is a %s file, not SVG", file, kind.MIME.Value)
}

// selectIDs returns the elements whose ids match the given patterns,
// in the order of the patterns and then of the document. Patterns
// use glob syntax. A pattern that matches nothing is logged, with
// the most similar id if there is one.
func selectIDs(sv *svg.SVG, file string, patterns []string) ([]*svg.Element, error) {
	var els []*svg.Element
	for _, p := range patterns {
		if el := sv.ElementByID(p); el != nil {
			els = append(els, el)
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("id pattern %q: %w", p, err)
		}
		n := len(els)
		for _, el := range sv.IDElements() {
			if g.Match(el.ID()) {
				els = append(els, el)
			}
		}
		if len(els) == n {
			slog.Warn("no element with id", "file", file, "id", p, "similar", similarID(sv, p))
		}
	}
	return els, nil
}

// similarID returns the id in the document most similar to the
// given one, or "" if none is similar enough.
func similarID(sv *svg.SVG, id string) string {
	best, bestSim := "", 0.5
	lev := metrics.NewLevenshtein()
	for _, el := range sv.IDElements() {
		if sim := strutil.Similarity(id, el.ID(), lev); sim > bestSim {
			best, bestSim = el.ID(), sim
		}
	}
	return best
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	noneStyle   = cellStyle.Faint(true)
)

// Write writes the results to w in the given format.
func Write(w io.Writer, format string, res []Result) error {
	switch format {
	case "", "text":
		_, err := fmt.Fprintln(w, textTable(res))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(struct {
			Results []Result `toml:"result"`
		}{res})
	case "cbor":
		b, err := cbor.Marshal(res)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	}
	return fmt.Errorf("unknown output format %q", format)
}

// textTable returns the results as a table for the terminal.
func textTable(res []Result) string {
	rows := make([][]string, len(res))
	for i, r := range res {
		row := []string{r.File, r.ID, r.Kind, "none", "", "", ""}
		if r.BBox != nil {
			row[3] = ftoa(r.BBox.X)
			row[4] = ftoa(r.BBox.Y)
			row[5] = ftoa(r.BBox.Width)
			row[6] = ftoa(r.BBox.Height)
		}
		rows[i] = row
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("file", "id", "kind", "x", "y", "width", "height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 3 && res[row].BBox == nil:
				return noneStyle
			}
			return cellStyle
		}).
		String()
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
