// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgbbox/bbox"
)

// Resolver resolves the reference of a use element to its target node.
type Resolver interface {
	// Resolve returns the node referenced by href, relative to the
	// given referencing node. It returns an error wrapping
	// [ErrNotFound], [ErrUnsupportedScheme] or [ErrCycle] when the
	// reference cannot be followed.
	Resolve(href string, context Node) (Node, error)
}

// FeatureMatcher decides whether the conditional processing
// attributes of a node allow it to be rendered.
type FeatureMatcher interface {
	IsApplicable(n Node) bool
}

// Evaluator computes the bounding boxes of nodes.
// It is not safe for concurrent use on the same tree, since
// boxes are memoized on the nodes.
type Evaluator struct {

	// Resolver resolves the targets of use elements.
	// If it is nil, use elements have no bounding box.
	Resolver Resolver

	// Features gates the targets of use elements and the children
	// of switch elements. If it is nil, everything is applicable.
	Features FeatureMatcher
}

// evalFunc computes the bounding box of a node of one kind,
// returning false if the node has none.
type evalFunc func(ev *Evaluator, n Node) (bbox.Box, bool)

// evaluators is the dispatch table by [Kind]. A nil entry means
// that elements of that kind have no bounding box.
var evaluators [kindN]evalFunc

func init() {
	evaluators = [kindN]evalFunc{
		KindRect:     shape(rectBBox),
		KindCircle:   shape(circleBBox),
		KindEllipse:  shape(ellipseBBox),
		KindLine:     shape(lineBBox),
		KindPolyline: shape(polylineBBox),
		KindPolygon:  shape(polylineBBox),
		KindPath:     pathBBox,
		KindText:     textBBox,
		KindTSpan:    textBBox,
		KindTextPath: textBBox,
		KindGroup:    (*Evaluator).groupBBox,
		KindUse:      (*Evaluator).useBBox,
		KindMarker:   (*Evaluator).groupBBox,
		KindSVG:      (*Evaluator).groupBBox,
		KindAnchor:   (*Evaluator).groupBBox,
		KindSymbol:   (*Evaluator).groupBBox,
		KindSwitch:   (*Evaluator).switchBBox,
	}
}

// shape returns an evalFunc for a shape that always has a box.
func shape(fun func(n Node) bbox.Box) evalFunc {
	return func(_ *Evaluator, n Node) (bbox.Box, bool) {
		return fun(n), true
	}
}

// BBox returns the bounding box of the given node, in its local
// coordinates, and false if it has none: an element of unknown
// kind, a path with invalid data, a text element without a measured
// box, or a use element whose target cannot be resolved or is not
// applicable.
//
// A memoized box is returned as is. Otherwise the box is computed
// and memoized only if it is non-empty, so that an element with a
// degenerate box is computed again on the next call.
func (ev *Evaluator) BBox(n Node) (bbox.Box, bool) {
	if b, ok := n.CachedBBox(); ok {
		return b, true
	}
	k := n.Kind()
	if k <= KindUnknown || k >= kindN || evaluators[k] == nil {
		return bbox.Empty, false
	}
	b, ok := evaluators[k](ev, n)
	if !ok {
		return bbox.Empty, false
	}
	if b.IsNonEmpty() {
		n.SetCachedBBox(b)
	}
	return b, true
}

// applicable returns whether n passes the feature matcher.
func (ev *Evaluator) applicable(n Node) bool {
	return ev.Features == nil || ev.Features.IsApplicable(n)
}

// nodeName returns a description of n for log messages.
func nodeName(n Node) string {
	if el, ok := n.(*Element); ok {
		return el.Path()
	}
	return n.Kind().String()
}
