// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"io/fs"

	"cogentcore.org/svgbbox/bbox"
)

// SVG is an SVG document: an [Element] tree together with what is
// needed to compute the bounding boxes of its elements.
type SVG struct {

	// Name is the name of the document within FS, such as the
	// file name if it was opened from a file. References to other
	// documents are relative to its directory.
	Name string

	// FS is the file system from which documents referenced by
	// use elements are loaded. If it is nil, only references
	// within this document can be resolved.
	FS fs.FS

	// Root is the root element, typically an svg element.
	Root *Element

	// Features decides whether the targets of use elements and
	// the children of switch elements are applicable.
	Features FeatureMatcher

	// ids maps id attributes to the first element with that id.
	ids map[string]*Element

	// docs caches documents loaded by name, shared by all the
	// documents loaded from this one.
	docs map[string]*SVG
}

// NewSVG returns a new empty document with a [Features] matcher
// for the language of the user.
func NewSVG() *SVG {
	sv := &SVG{Features: NewFeatures(UserLanguage())}
	sv.docs = map[string]*SVG{}
	return sv
}

// Evaluator returns an [Evaluator] resolving references through
// the document and using its feature matcher.
func (sv *SVG) Evaluator() *Evaluator {
	return &Evaluator{Resolver: sv, Features: sv.Features}
}

// BBox returns the bounding box of the given node; see [Evaluator.BBox].
func (sv *SVG) BBox(n Node) (bbox.Box, bool) {
	return sv.Evaluator().BBox(n)
}

// RootBBox returns the bounding box of the root element.
func (sv *SVG) RootBBox() (bbox.Box, bool) {
	if sv.Root == nil {
		return bbox.Empty, false
	}
	return sv.BBox(sv.Root)
}

// ElementByID returns the first element with the given id, or nil.
func (sv *SVG) ElementByID(id string) *Element {
	return sv.ids[id]
}

// IDElements returns the elements that have an id, in document order.
func (sv *SVG) IDElements() []*Element {
	var els []*Element
	sv.WalkDown(func(el *Element) bool {
		if id := el.ID(); id != "" && sv.ids[id] == el {
			els = append(els, el)
		}
		return true
	})
	return els
}

// WalkDown calls fun on all the elements of the document in
// depth first order; see [Element.WalkDown].
func (sv *SVG) WalkDown(fun func(el *Element) bool) {
	if sv.Root != nil {
		sv.Root.WalkDown(fun)
	}
}

// ResetBBoxes clears the memoized bounding boxes of all the
// elements, such as after attributes have been changed.
func (sv *SVG) ResetBBoxes() {
	sv.WalkDown(func(el *Element) bool {
		el.ResetBBox()
		return true
	})
}

// MeasureText attaches the box measured by m to every text
// content element that has visible text.
func (sv *SVG) MeasureText(m TextMeasurer) {
	sv.WalkDown(func(el *Element) bool {
		if el.Kind().IsText() {
			if b, ok := m.MeasureText(el); ok {
				el.SetTextBBox(b)
			}
		}
		return true
	})
}

// SetRoot sets the root element and indexes the ids of its tree.
func (sv *SVG) SetRoot(root *Element) {
	sv.Root = root
	sv.ids = map[string]*Element{}
	sv.WalkDown(func(el *Element) bool {
		el.doc = sv
		if id := el.ID(); id != "" {
			if _, has := sv.ids[id]; !has {
				sv.ids[id] = el
			}
		}
		return true
	})
}
