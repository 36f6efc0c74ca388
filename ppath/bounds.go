// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppath

import (
	"cogentcore.org/svgbbox/bbox"
	"cogentcore.org/svgbbox/math32"
)

// Interpreter is the state of a walk over path commands: the pen
// position, the start of the current subpath, and the bounding box
// accumulated so far.
//
// Curves are bounded by their control points together with their end
// point, which always contains the curve and is usually close to it.
// Smooth curves (S, T) do not reflect the previous control point, and
// T contributes only its end point. An arc contributes the min
// corner of its exact box and the size of that box as a second point,
// but not its end point.
type Interpreter struct {
	Pen   math32.Vector2
	Start math32.Vector2
	Box   bbox.Box
}

// NewInterpreter returns a new [Interpreter] with the pen at the
// origin and an empty box.
func NewInterpreter() *Interpreter {
	return &Interpreter{Box: bbox.Empty}
}

// Apply moves the pen according to the given command, extending
// the box by the points that bound it.
func (ip *Interpreter) Apply(cmd Command) {
	var off math32.Vector2
	if cmd.Relative() {
		off = ip.Pen
	}
	a := &cmd.Args
	pt := func(i int) math32.Vector2 {
		return math32.Vec2(a[i], a[i+1]).Add(off)
	}

	switch cmd.Op() {
	case 'M':
		p := pt(0)
		ip.Box = ip.Box.Extend(p)
		ip.Pen, ip.Start = p, p
	case 'L', 'T':
		p := pt(0)
		ip.Box = ip.Box.Extend(p)
		ip.Pen = p
	case 'H':
		p := math32.Vec2(a[0]+off.X, ip.Pen.Y)
		ip.Box = ip.Box.Extend(p)
		ip.Pen = p
	case 'V':
		p := math32.Vec2(ip.Pen.X, a[0]+off.Y)
		ip.Box = ip.Box.Extend(p)
		ip.Pen = p
	case 'C':
		cp1, cp2, p := pt(0), pt(2), pt(4)
		ip.Box = ip.Box.Extend(cp1, cp2, p)
		ip.Pen = p
	case 'Q', 'S':
		cp, p := pt(0), pt(2)
		ip.Box = ip.Box.Extend(cp, p)
		ip.Pen = p
	case 'A':
		p := pt(5)
		ab := ArcBounds(ip.Pen, p, a[0], a[1], math32.DegToRad(a[2]), a[3] != 0, a[4] != 0)
		// min corner and size, not max corner
		ip.Box = ip.Box.Extend(ab.Min, ab.Size())
		ip.Pen = p
	case 'Z':
		ip.Pen = ip.Start
	}
}

// CommandsBounds returns the bounding box of the given commands.
func CommandsBounds(cmds []Command) bbox.Box {
	ip := NewInterpreter()
	for _, cmd := range cmds {
		ip.Apply(cmd)
	}
	return ip.Box
}

// Bounds returns the bounding box of the given path data. If the data
// is invalid, it returns the box of the commands before the invalid one
// along with the error.
func Bounds(data string) (bbox.Box, error) {
	cmds, err := Parse(data)
	return CommandsBounds(cmds), err
}
