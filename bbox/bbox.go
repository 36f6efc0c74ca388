// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bbox provides the bounding box type used for SVG elements,
// in the (x, y, width, height) form of the SVG object bounding box,
// together with the operations that accumulate boxes from points
// and from other boxes.
package bbox

import (
	"fmt"

	"cogentcore.org/svgbbox/math32"
)

// Box is an axis-aligned bounding box in the local, untransformed
// coordinates of an element. Width and Height are never negative.
// The [Empty] box has an infinite position and zero size.
type Box struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// Empty is the bounding box that contains nothing. Extending it
// by a set of points yields exactly the box of those points.
var Empty = Box{X: math32.Infinity, Y: math32.Infinity}

// New returns a new [Box] with the given position and size.
func New(x, y, width, height float32) Box {
	return Box{x, y, width, height}
}

// FromBox2 returns the [Box] spanning the given [math32.Box2],
// which is [Empty] if the box is empty.
func FromBox2(bx math32.Box2) Box {
	if bx.IsEmpty() || !math32.IsFinite(bx.Min.X) || !math32.IsFinite(bx.Min.Y) {
		return Empty
	}
	sz := bx.Size()
	return Box{bx.Min.X, bx.Min.Y, sz.X, sz.Y}
}

func (b Box) String() string {
	if !b.IsValid() {
		return "empty"
	}
	return fmt.Sprintf("%g %g %g %g", b.X, b.Y, b.Width, b.Height)
}

// IsValid returns whether the box has been given a position,
// i.e., whether at least one point has been added to it.
// If X is set, Y is always set too.
func (b Box) IsValid() bool {
	return math32.IsFinite(b.X) && math32.IsFinite(b.Y)
}

// IsNonEmpty returns whether the box is valid and has both
// a non-zero width and a non-zero height. A box around a
// horizontal or vertical line is valid but not non-empty.
func (b Box) IsNonEmpty() bool {
	return b.IsValid() && b.Width > 0 && b.Height > 0
}

// Min returns the minimum corner of the box.
func (b Box) Min() math32.Vector2 {
	return math32.Vec2(b.X, b.Y)
}

// Max returns the maximum corner of the box.
func (b Box) Max() math32.Vector2 {
	return math32.Vec2(b.X+b.Width, b.Y+b.Height)
}

// Box2 returns the box in min / max form. An invalid box
// returns an empty [math32.Box2], with +Infinity min and
// -Infinity max, so that it does not contain the point at infinity.
func (b Box) Box2() math32.Box2 {
	if !b.IsValid() {
		return math32.B2Empty()
	}
	return math32.Box2{Min: b.Min(), Max: b.Max()}
}

// Extend returns the box widened to also cover every given point.
// Extending [Empty] by one point p yields (p.X, p.Y, 0, 0).
// The order of the points does not affect the result.
func (b Box) Extend(points ...math32.Vector2) Box {
	if len(points) == 0 {
		return b
	}
	bx := b.Box2()
	for _, p := range points {
		bx.ExpandByPoint(p)
	}
	return FromBox2(bx)
}

// Combine returns the box extended by the two corners of other,
// only if other is valid. An invalid other, such as that of an
// element with no geometry, leaves the box unchanged.
func (b Box) Combine(other Box) Box {
	if !other.IsValid() {
		return b
	}
	return b.Extend(other.Min(), other.Max())
}

// Union returns the box combining all the given boxes, starting
// from [Empty].
func Union(boxes ...Box) Box {
	u := Empty
	for _, b := range boxes {
		u = u.Combine(b)
	}
	return u
}
