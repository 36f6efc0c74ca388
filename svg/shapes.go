// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgbbox/bbox"
	"cogentcore.org/svgbbox/math32"
	"cogentcore.org/svgbbox/ppath"
)

// Missing attributes are 0 and negative sizes are clamped to 0.

func rectBBox(n Node) bbox.Box {
	return bbox.New(number(n, "x"), number(n, "y"),
		math32.Max(number(n, "width"), 0), math32.Max(number(n, "height"), 0))
}

func circleBBox(n Node) bbox.Box {
	r := math32.Max(number(n, "r"), 0)
	return bbox.New(number(n, "cx")-r, number(n, "cy")-r, 2*r, 2*r)
}

func ellipseBBox(n Node) bbox.Box {
	rx := math32.Max(number(n, "rx"), 0)
	ry := math32.Max(number(n, "ry"), 0)
	return bbox.New(number(n, "cx")-rx, number(n, "cy")-ry, 2*rx, 2*ry)
}

func lineBBox(n Node) bbox.Box {
	return bbox.Empty.Extend(
		math32.Vec2(number(n, "x1"), number(n, "y1")),
		math32.Vec2(number(n, "x2"), number(n, "y2")))
}

// polylineBBox returns the box of the points of a polyline or
// polygon, which is [bbox.Empty] if there are none.
func polylineBBox(n Node) bbox.Box {
	pts, _ := n.Attr("points")
	b := bbox.Empty
	for p := range ppath.Points(pts) {
		b = b.Extend(p)
	}
	return b
}
