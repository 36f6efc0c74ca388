// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"

	"cogentcore.org/svgbbox/bbox"
)

// groupBBox returns the combined box of the children of a
// container element. Children without a box contribute nothing,
// so the result is [bbox.Empty] if none has one.
func (ev *Evaluator) groupBBox(n Node) (bbox.Box, bool) {
	b := bbox.Empty
	for _, c := range n.Children() {
		if cb, ok := ev.BBox(c); ok {
			b = b.Combine(cb)
		}
	}
	return b, true
}

// switchBBox returns the box of the first applicable child
// of a switch element, which is the only one rendered.
// Elements of unknown kind, such as desc and title, are skipped.
func (ev *Evaluator) switchBBox(n Node) (bbox.Box, bool) {
	for _, c := range n.Children() {
		if c.Kind() == KindUnknown || !ev.applicable(c) {
			continue
		}
		if cb, ok := ev.BBox(c); ok {
			return cb, true
		}
		break
	}
	return bbox.Empty, true
}

// useBBox returns the box of the target of a use element,
// if it can be resolved and is applicable.
func (ev *Evaluator) useBBox(n Node) (bbox.Box, bool) {
	if ev.Resolver == nil {
		return bbox.Empty, false
	}
	href := Href(n)
	target, err := ev.Resolver.Resolve(href, n)
	if err != nil {
		slog.Debug("svg: use reference not resolved", "element", nodeName(n), "href", href, "err", err)
		return bbox.Empty, false
	}
	if !ev.applicable(target) {
		return bbox.Empty, false
	}
	return ev.BBox(target)
}
