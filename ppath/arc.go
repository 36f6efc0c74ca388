// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/svgbbox/math32"
)

// Epsilon is the tolerance below which the sine or cosine of an arc
// rotation is taken to be zero, selecting the axis-aligned solutions.
var Epsilon = float32(1e-6)

// extremum is an extreme coordinate of an ellipse along one axis,
// with the angle around the center at which it is reached.
type extremum struct {
	v float32
	t float32
}

// ArcBounds returns the tight bounding box of the elliptical arc from
// start to end with radii rx, ry, x-axis rotation phi in radians, and
// the large-arc and sweep flags, in the SVG endpoint parameterization.
// A zero radius makes the arc a straight line, and radii too small to
// reach from start to end are scaled up as in the SVG implementation
// notes. The bounds cover only the part of the ellipse actually swept.
//
// See https://www.w3.org/TR/SVG/implnote.html#ArcImplementationNotes
// and http://fridrich.blogspot.com/2011/06/bounding-box-of-svg-elliptical-arc.html
func ArcBounds(start, end math32.Vector2, rx, ry, phi float32, large, sweep bool) math32.Box2 {
	chord := math32.B2FromPoints(start, end)
	rx, ry = math32.Abs(rx), math32.Abs(ry)
	if rx == 0 || ry == 0 || start == end {
		return chord
	}

	sinPhi, cosPhi := math32.Sincos(phi)

	// start relative to the chord midpoint, in the ellipse's own axes
	d := start.Sub(end).MulScalar(0.5)
	x1p := cosPhi*d.X + sinPhi*d.Y
	y1p := -sinPhi*d.X + cosPhi*d.Y
	rx2, ry2 := rx*rx, ry*ry
	x1p2, y1p2 := x1p*x1p, y1p*y1p

	radicant := (rx2*ry2 - rx2*y1p2 - ry2*x1p2) / (rx2*y1p2 + ry2*x1p2)
	if !math32.IsFinite(radicant) {
		return chord
	}
	var cp math32.Vector2 // center in the ellipse's axes, relative to the midpoint
	if radicant < 0 {
		// smallest ellipse with the same aspect ratio through both
		// points, which is centered on the midpoint
		ratio := rx / ry
		r := y1p2 + x1p2/(ratio*ratio)
		if r < 0 || !math32.IsFinite(r) {
			return chord
		}
		ry = math32.Sqrt(r)
		rx = ratio * ry
	} else {
		f := math32.Sqrt(radicant)
		if large == sweep {
			f = -f
		}
		cp = math32.Vec2(f*rx*y1p/ry, -f*ry*x1p/rx)
	}
	c := math32.Vec2(cosPhi*cp.X-sinPhi*cp.Y, sinPhi*cp.X+cosPhi*cp.Y).Add(start.Add(end).MulScalar(0.5))

	// point on the full ellipse at parameter t
	at := func(t float32) math32.Vector2 {
		st, ct := math32.Sincos(t)
		return math32.Vec2(c.X+rx*ct*cosPhi-ry*st*sinPhi, c.Y+rx*ct*sinPhi+ry*st*cosPhi)
	}

	var minX, maxX, minY, maxY extremum
	switch {
	case math32.Abs(sinPhi) < Epsilon: // 0 or Pi
		minX = extremum{c.X - rx, math32.Vec2(-rx, 0).Angle()}
		maxX = extremum{c.X + rx, math32.Vec2(rx, 0).Angle()}
		minY = extremum{c.Y - ry, math32.Vec2(0, -ry).Angle()}
		maxY = extremum{c.Y + ry, math32.Vec2(0, ry).Angle()}
	case math32.Abs(cosPhi) < Epsilon: // Pi/2 or 3Pi/2
		minX = extremum{c.X - ry, math32.Vec2(-ry, 0).Angle()}
		maxX = extremum{c.X + ry, math32.Vec2(ry, 0).Angle()}
		minY = extremum{c.Y - rx, math32.Vec2(0, -rx).Angle()}
		maxY = extremum{c.Y + rx, math32.Vec2(0, rx).Angle()}
	default:
		tanPhi := sinPhi / cosPhi
		// parameters where dx/dt = 0 and dy/dt = 0, each plus Pi
		tx := -math32.Atan(ry * tanPhi / rx)
		p0, p1 := at(tx), at(tx+math32.Pi)
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		minX = extremum{p0.X, p0.Sub(c).Angle()}
		maxX = extremum{p1.X, p1.Sub(c).Angle()}

		ty := math32.Atan(ry / (tanPhi * rx))
		q0, q1 := at(ty), at(ty+math32.Pi)
		if q0.Y > q1.Y {
			q0, q1 = q1, q0
		}
		minY = extremum{q0.Y, q0.Sub(c).Angle()}
		maxY = extremum{q1.Y, q1.Sub(c).Angle()}
	}

	// the arc runs from angle1 to angle2 in the positive direction,
	// wrapping through 0 when angle1 > angle2
	angle1 := start.Sub(c).Angle()
	angle2 := end.Sub(c).Angle()
	if !sweep {
		angle1, angle2 = angle2, angle1
	}
	wraps := false
	if angle1 > angle2 {
		angle1, angle2 = angle2, angle1
		wraps = true
	}
	swept := func(t float32) bool {
		return (t >= angle1 && t <= angle2) != wraps
	}

	bb := math32.B2(minX.v, minY.v, maxX.v, maxY.v)
	if !swept(minX.t) {
		bb.Min.X = chord.Min.X
	}
	if !swept(maxX.t) {
		bb.Max.X = chord.Max.X
	}
	if !swept(minY.t) {
		bb.Min.Y = chord.Min.Y
	}
	if !swept(maxY.t) {
		bb.Max.Y = chord.Max.Y
	}
	return bb
}
