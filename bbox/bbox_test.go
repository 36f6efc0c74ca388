// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bbox

import (
	"testing"

	"cogentcore.org/svgbbox/math32"
	"github.com/stretchr/testify/assert"
)

func TestEmpty(t *testing.T) {
	assert.False(t, Empty.IsValid())
	assert.False(t, Empty.IsNonEmpty())
	assert.True(t, Empty.Box2().IsEmpty())
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, Empty, FromBox2(math32.B2Empty()))
}

func TestExtendSinglePoint(t *testing.T) {
	b := Empty.Extend(math32.Vec2(3, -4))
	assert.Equal(t, New(3, -4, 0, 0), b)
	assert.True(t, b.IsValid())
	assert.False(t, b.IsNonEmpty())
}

func TestExtendNoPoints(t *testing.T) {
	assert.Equal(t, Empty, Empty.Extend())
	b := New(1, 2, 3, 4)
	assert.Equal(t, b, b.Extend())
}

func TestExtendOrder(t *testing.T) {
	pts := []math32.Vector2{{X: 5, Y: 1}, {X: -2, Y: 7}, {X: 0, Y: 0}, {X: 3, Y: 3}}
	rev := []math32.Vector2{{X: 3, Y: 3}, {X: 0, Y: 0}, {X: -2, Y: 7}, {X: 5, Y: 1}}
	a := Empty.Extend(pts...)
	b := Empty.Extend(rev...)
	assert.Equal(t, a, b)
	assert.Equal(t, New(-2, 0, 7, 7), a)

	c := Empty
	for _, p := range pts {
		c = c.Extend(p)
	}
	assert.Equal(t, a, c)
}

func TestValidity(t *testing.T) {
	tests := []struct {
		name     string
		box      Box
		valid    bool
		nonEmpty bool
	}{
		{"sized", New(0, 0, 10, 10), true, true},
		{"zero width", New(0, 0, 0, 10), true, false},
		{"zero height", New(0, 0, 10, 0), true, false},
		{"point", New(5, 5, 0, 0), true, false},
		{"empty", Empty, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.box.IsValid())
			assert.Equal(t, tt.nonEmpty, tt.box.IsNonEmpty())
		})
	}
}

func TestCombine(t *testing.T) {
	a := New(0, 0, 10, 10)
	assert.Equal(t, a, a.Combine(a))
	assert.Equal(t, a, a.Combine(Empty))
	assert.Equal(t, a, Empty.Combine(a))
	assert.Equal(t, Empty, Empty.Combine(Empty))

	c := New(15, 15, 10, 10)
	assert.Equal(t, New(0, 0, 25, 25), a.Combine(c))
	assert.Equal(t, a.Combine(c), c.Combine(a))

	// a zero-height box still counts
	line := New(-5, 3, 2, 0)
	assert.Equal(t, New(-5, 0, 15, 10), a.Combine(line))
}

func TestUnion(t *testing.T) {
	assert.Equal(t, Empty, Union())
	assert.Equal(t, New(0, 0, 25, 25), Union(New(0, 0, 10, 10), Empty, New(15, 15, 10, 10)))
}

func TestBox2RoundTrip(t *testing.T) {
	b := New(1, 2, 3, 4)
	assert.Equal(t, math32.B2(1, 2, 4, 6), b.Box2())
	assert.Equal(t, b, FromBox2(b.Box2()))
	assert.Equal(t, math32.Vec2(4, 6), b.Max())
	assert.Equal(t, "1 2 3 4", b.String())
}
