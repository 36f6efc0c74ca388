// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"cogentcore.org/svgbbox/base/errors"
	"cogentcore.org/svgbbox/bbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/language"
)

const testDoc = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"
	xmlns:inkscape="http://www.inkscape.org/namespaces/inkscape" width="100" height="100">
  <title>shapes</title>
  <defs>
    <rect id="tile" x="0" y="0" width="10" height="10"/>
  </defs>
  <g id="group">
    <rect id="r" x="0" y="0" width="10" height="10" inkscape:x="99"/>
    <circle id="c" cx="20" cy="20" r="5"/>
  </g>
  <use id="u" xlink:href="#tile"/>
  <use id="missing" href="#nope"/>
  <g id="only-missing"><use href="#nope"/></g>
  <path id="p" d="M0 0 A5 5 0 1 1 10 0"/>
  <text id="t" x="5" y="20" font-size="26">H<tspan id="ts">i</tspan></text>
</svg>`

func readTestSVG(t *testing.T, src string) *SVG {
	t.Helper()
	sv := NewSVG()
	sv.Features = NewFeatures(language.English)
	require.NoError(t, sv.ReadXML(strings.NewReader(src)))
	return sv
}

func TestReadXML(t *testing.T) {
	sv := readTestSVG(t, testDoc)
	require.NotNil(t, sv.Root)
	assert.Equal(t, KindSVG, sv.Root.Kind())
	assert.Equal(t, "svg", sv.Root.Tag)

	r := sv.ElementByID("r")
	require.NotNil(t, r)
	assert.Equal(t, KindRect, r.Kind())
	assert.Equal(t, "10", r.Attrs["width"])
	assert.Equal(t, "0", r.Attrs["x"])
	assert.Len(t, r.Attrs, 5)
	assert.Equal(t, "/svg/g#group/rect#r", r.Path())

	u := sv.ElementByID("u")
	assert.Equal(t, "#tile", Href(u))

	assert.Equal(t, "Hi", sv.ElementByID("t").TextContent())

	var ids []string
	for _, el := range sv.IDElements() {
		ids = append(ids, el.ID())
	}
	assert.Equal(t, []string{"tile", "group", "r", "c", "u", "missing", "only-missing", "p", "t", "ts"}, ids)
}

func TestReadXMLErrors(t *testing.T) {
	sv := NewSVG()
	assert.Error(t, sv.ReadXML(strings.NewReader("")))
	assert.Error(t, sv.ReadXML(strings.NewReader("<svg><rect></svg")))
}

func TestDocumentBBoxes(t *testing.T) {
	sv := readTestSVG(t, testDoc)
	tests := []struct {
		id   string
		want bbox.Box
		ok   bool
	}{
		{"group", bbox.New(0, 0, 25, 25), true},
		{"u", bbox.New(0, 0, 10, 10), true},
		{"missing", bbox.Empty, false},
		{"only-missing", bbox.Empty, true},
		{"p", bbox.New(0, -5, 10, 10), true},
		{"t", bbox.Empty, false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			b, ok := sv.BBox(sv.ElementByID(tt.id))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, b)
		})
	}

	b, ok := sv.RootBBox()
	assert.True(t, ok)
	assert.Equal(t, bbox.New(0, -5, 25, 30), b)
}

func TestMeasureText(t *testing.T) {
	sv := readTestSVG(t, testDoc)
	sv.MeasureText(NewFaceMeasurer())

	face := basicfont.Face7x13
	ascent, descent := float32(face.Ascent), float32(face.Descent)
	glyph := float32(face.Width)
	hi := float32(face.Advance) + glyph

	// "Hi" with the face scaled by 2 from the x, y baseline origin
	b, ok := sv.BBox(sv.ElementByID("t"))
	assert.True(t, ok)
	assert.Equal(t, bbox.New(5, 20-2*ascent, 2*hi, 2*(ascent+descent)), b)

	// font-size is inherited
	b, ok = sv.BBox(sv.ElementByID("ts"))
	assert.True(t, ok)
	assert.Equal(t, bbox.New(0, -2*ascent, 2*glyph, 2*(ascent+descent)), b)

	b, ok = sv.RootBBox()
	assert.True(t, ok)
	assert.Equal(t, bbox.New(0, -5, max(25, 5+2*hi), 30), b)

	empty := NewElement(nil, "text").SetAttr("font-size", "20")
	empty.Text = " \n "
	_, ok = NewFaceMeasurer().MeasureText(empty)
	assert.False(t, ok)
}

func TestResetBBoxes(t *testing.T) {
	sv := readTestSVG(t, testDoc)
	r := sv.ElementByID("r")
	b, _ := sv.BBox(r)
	assert.Equal(t, bbox.New(0, 0, 10, 10), b)

	r.SetAttr("width", "50")
	b, _ = sv.BBox(r)
	assert.Equal(t, bbox.New(0, 0, 10, 10), b)

	sv.ResetBBoxes()
	b, _ = sv.BBox(r)
	assert.Equal(t, bbox.New(0, 0, 50, 10), b)
	b, _ = sv.BBox(sv.ElementByID("group"))
	assert.Equal(t, bbox.New(0, 0, 50, 25), b)
}

func TestResolve(t *testing.T) {
	sv := readTestSVG(t, testDoc)
	u := sv.ElementByID("u")

	n, err := sv.Resolve("#tile", u)
	require.NoError(t, err)
	assert.Same(t, sv.ElementByID("tile"), n)

	_, err = sv.Resolve("#nope", u)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = sv.Resolve("", u)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = sv.Resolve("https://example.com/a.svg#x", u)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
	_, err = sv.Resolve("data:image/svg+xml,abc", u)
	assert.ErrorIs(t, err, ErrUnsupportedScheme)
	_, err = sv.Resolve("other.svg#x", u)
	assert.ErrorIs(t, err, ErrNotFound, "no file system")
}

func TestResolveCycle(t *testing.T) {
	sv := readTestSVG(t, `<svg>
  <g id="self"><rect width="1" height="1"/><use id="u1" href="#self"/></g>
  <g id="a"><use id="ua" href="#b"/></g>
  <g id="b"><use id="ub" href="#a"/></g>
  <use id="ok" href="#b"/>
</svg>`)
	_, err := sv.Resolve("#self", sv.ElementByID("u1"))
	assert.ErrorIs(t, err, ErrCycle)
	_, err = sv.Resolve("#b", sv.ElementByID("ua"))
	assert.ErrorIs(t, err, ErrCycle)

	// uses within the cycle between a and b have no box
	b, ok := sv.BBox(sv.ElementByID("self"))
	assert.True(t, ok)
	assert.Equal(t, bbox.New(0, 0, 1, 1), b)
	b, ok = sv.RootBBox()
	assert.True(t, ok)
	assert.Equal(t, bbox.New(0, 0, 1, 1), b)
}

func TestExternalReference(t *testing.T) {
	fsys := fstest.MapFS{
		"doc/main.svg": {Data: []byte(`<svg xmlns:xlink="http://www.w3.org/1999/xlink">
  <use id="ext" xlink:href="lib/shapes.svg#big"/>
  <use id="whole" href="lib/shapes.svg"/>
  <use id="gone" href="lib/shapes.svg#gone"/>
  <use id="nofile" href="nofile.svg#x"/>
</svg>`)},
		"doc/lib/shapes.svg": {Data: []byte(`<svg>
  <rect id="big" x="-10" y="-10" width="100" height="50"/>
  <g id="nested"><use href="#big"/></g>
</svg>`)},
	}
	sv := NewSVG()
	sv.Features = NewFeatures(language.English)
	require.NoError(t, sv.OpenFS(fsys, "doc/main.svg"))

	b, ok := sv.BBox(sv.ElementByID("ext"))
	assert.True(t, ok)
	assert.Equal(t, bbox.New(-10, -10, 100, 50), b)

	b, ok = sv.BBox(sv.ElementByID("whole"))
	assert.True(t, ok)
	assert.Equal(t, bbox.New(-10, -10, 100, 50), b)

	_, err := sv.Resolve("lib/shapes.svg#gone", sv.ElementByID("gone"))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = sv.Resolve("nofile.svg#x", sv.ElementByID("nofile"))
	assert.ErrorIs(t, err, ErrNotFound)

	lib, err := sv.document("lib/shapes.svg")
	require.NoError(t, err)
	assert.Len(t, sv.docs, 2)
	n, err := sv.Resolve("#big", lib.ElementByID("nested").Elements()[0])
	require.NoError(t, err)
	assert.Same(t, lib.ElementByID("big"), n)
}

func TestOpenXML(t *testing.T) {
	dir := t.TempDir()
	errors.Must(os.WriteFile(filepath.Join(dir, "a.svg"), []byte(`<svg><use id="u" href="b.svg#r"/></svg>`), 0o666))
	errors.Must(os.WriteFile(filepath.Join(dir, "b.svg"), []byte(`<svg><rect id="r" width="3" height="4"/></svg>`), 0o666))

	sv := NewSVG()
	require.NoError(t, sv.OpenXML(filepath.Join(dir, "a.svg")))
	assert.Equal(t, "a.svg", sv.Name)
	b, ok := sv.BBox(sv.ElementByID("u"))
	assert.True(t, ok)
	assert.Equal(t, bbox.New(0, 0, 3, 4), b)

	assert.Error(t, sv.OpenXML(dir))
	assert.Error(t, sv.OpenXML(filepath.Join(dir, "none.svg")))
}
