// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"

	"golang.org/x/image/math/fixed"
)

// Box2 is a 2D axis-aligned box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new empty [Box2], with Min at +Infinity and Max
// at -Infinity, so that expanding it by a point yields exactly that point.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromPoints returns the smallest [Box2] that contains all the given points.
// It is empty if there are no points.
func B2FromPoints(points ...Vector2) Box2 {
	bx := B2Empty()
	for _, p := range points {
		bx.ExpandByPoint(p)
	}
	return bx
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	return B2(fromFixed(rect.Min.X), fromFixed(rect.Min.Y), fromFixed(rect.Max.X), fromFixed(rect.Max.Y))
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// SetEmpty sets this box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this box is empty (max < min on any coord).
// A box with zero width or height that contains a point is not empty.
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// ExpandByPoint may expand this box to include the specified point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min.SetMin(point)
	b.Max.SetMax(point)
}

// Canon returns the canonical version of the box, with minimum and
// maximum coordinates swapped if necessary so that it is well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// Size returns the vector from the minimum point to the maximum point.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Scale returns this box with both corners multiplied by s.
func (b Box2) Scale(s float32) Box2 {
	return Box2{b.Min.MulScalar(s), b.Max.MulScalar(s)}.Canon()
}

