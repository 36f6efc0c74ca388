// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ppath reads SVG path data and computes its bounding box
without flattening or drawing it.

Path data is scanned by a [Scanner] into a list of [Command]s, and an
[Interpreter] walks the commands, tracking the pen position and
extending a [bbox.Box]. Elliptical arcs are bounded exactly by
[ArcBounds], and a path adds the min corner and the size of that
box. Bézier curves are bounded by their control points.

The supported commands are M, L, H, V, C, S, Q, T, A and Z, in
absolute (uppercase) and relative (lowercase) forms.
*/
package ppath
