// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgbbox/base/errors"
	"cogentcore.org/svgbbox/bbox"
	"cogentcore.org/svgbbox/ppath"
)

// pathBBox returns the box of the path data in the d attribute.
// Invalid data is logged, and the path then has no box.
func pathBBox(_ *Evaluator, n Node) (bbox.Box, bool) {
	d, _ := n.Attr("d")
	b, err := ppath.Bounds(d)
	if errors.Warn(err, "element", nodeName(n)) != nil {
		return bbox.Empty, false
	}
	return b, true
}
