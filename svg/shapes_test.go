// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"cogentcore.org/svgbbox/bbox"
	"github.com/stretchr/testify/assert"
)

func TestShapes(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		attrs []string
		want  bbox.Box
	}{
		{"rect", "rect", []string{"x", "10", "y", "20", "width", "30", "height", "40"}, bbox.New(10, 20, 30, 40)},
		{"rect negative width", "rect", []string{"x", "10", "y", "20", "width", "-5", "height", "40"}, bbox.New(10, 20, 0, 40)},
		{"rect defaults", "rect", nil, bbox.New(0, 0, 0, 0)},
		{"rect units", "rect", []string{"x", "1px", "y", " 2 ", "width", "3e1", "height", "bad"}, bbox.New(1, 2, 30, 0)},
		{"circle", "circle", []string{"cx", "0", "cy", "0", "r", "5"}, bbox.New(-5, -5, 10, 10)},
		{"circle negative radius", "circle", []string{"cx", "3", "cy", "4", "r", "-1"}, bbox.New(3, 4, 0, 0)},
		{"ellipse", "ellipse", []string{"cx", "10", "cy", "10", "rx", "4", "ry", "2"}, bbox.New(6, 8, 8, 4)},
		{"line", "line", []string{"x1", "10", "y1", "5", "x2", "0", "y2", "15"}, bbox.New(0, 5, 10, 10)},
		{"horizontal line", "line", []string{"x1", "0", "y1", "5", "x2", "10", "y2", "5"}, bbox.New(0, 5, 10, 0)},
		{"polyline", "polyline", []string{"points", "0,0 10,-5 3 8"}, bbox.New(0, -5, 10, 13)},
		{"polygon", "polygon", []string{"points", "5 5, 1-2, 7.5.5"}, bbox.New(1, -2, 6.5, 7)},
		{"polyline odd points", "polyline", []string{"points", "1 1 4 5 9"}, bbox.New(1, 1, 3, 4)},
		{"polyline no points", "polyline", nil, bbox.Empty},
		{"path", "path", []string{"d", "M10 10 h20 v-5"}, bbox.New(10, 5, 20, 5)},
		{"path arc", "path", []string{"d", "M0 0 A5 5 0 1 1 10 0"}, bbox.New(0, -5, 10, 10)},
		{"path zero radius arc", "path", []string{"d", "M0 0 A0 5 0 1 1 10 4"}, bbox.New(0, 0, 10, 4)},
		{"path move only", "path", []string{"d", "M 3 4"}, bbox.New(3, 4, 0, 0)},
	}
	ev := &Evaluator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := NewElement(nil, tt.tag).SetAttrs(tt.attrs...)
			b, ok := ev.BBox(el)
			assert.True(t, ok)
			assert.Equal(t, tt.want, b)
			assert.GreaterOrEqual(t, b.Width, float32(0))
			assert.GreaterOrEqual(t, b.Height, float32(0))
		})
	}
}

func TestPathInvalid(t *testing.T) {
	el := NewElement(nil, "path").SetAttr("d", "M0 0 L10 10 X 20 20")
	b, ok := (&Evaluator{}).BBox(el)
	assert.False(t, ok)
	assert.Equal(t, bbox.Empty, b)
	_, cached := el.CachedBBox()
	assert.False(t, cached)

	el = NewElement(nil, "path").SetAttr("d", "M5 5 A 1 1 0 x 1 2 2")
	_, ok = (&Evaluator{}).BBox(el)
	assert.False(t, ok)
}

func TestPathInvalidInGroup(t *testing.T) {
	g := NewElement(nil, "g")
	NewElement(g, "rect").SetAttrs("width", "10", "height", "10")
	NewElement(g, "path").SetAttr("d", "M100 100 L200 200 L 5")
	b, ok := (&Evaluator{}).BBox(g)
	assert.True(t, ok)
	assert.Equal(t, bbox.New(0, 0, 10, 10), b)
}
