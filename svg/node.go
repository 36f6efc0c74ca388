// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"slices"
	"strings"

	"cogentcore.org/svgbbox/bbox"
	"cogentcore.org/svgbbox/ppath"
)

// Node is the interface through which bounding boxes are computed
// for the elements of an SVG tree. The tree itself is owned by the
// caller; [Element] is the implementation used by [SVG].
type Node interface {
	// Kind returns the kind of the element.
	Kind() Kind

	// Attr returns the value of the given attribute, and whether it is set.
	Attr(name string) (string, bool)

	// Children returns the child nodes, in document order.
	Children() []Node

	// CachedBBox returns the memoized bounding box, if any.
	CachedBBox() (bbox.Box, bool)

	// SetCachedBBox memoizes the given bounding box.
	SetCachedBBox(b bbox.Box)

	// TextBBox returns the externally measured box of a text
	// content element, if one has been attached.
	TextBBox() (bbox.Box, bool)
}

// Element is an element of an SVG document tree.
type Element struct {

	// Tag is the local tag name of the element, such as "rect".
	Tag string

	// Attrs are the attribute values by name. Attributes in the
	// xlink namespace are stored with an "xlink:" prefix.
	Attrs map[string]string

	// Text is the character data directly inside the element.
	Text string

	// Parent is the parent element, nil for a root.
	Parent *Element

	kind     Kind
	children []Node
	elems    []*Element
	doc      *SVG

	bbox    bbox.Box
	hasBBox bool

	textBBox    bbox.Box
	hasTextBBox bool
}

// NewElement returns a new element with the given tag, added as
// the last child of the given parent if it is non-nil.
func NewElement(parent *Element, tag string) *Element {
	el := &Element{Tag: tag, Attrs: map[string]string{}, kind: KindOf(tag)}
	if parent != nil {
		parent.AddChild(el)
	}
	return el
}

// AddChild adds the given element as the last child of this one.
func (el *Element) AddChild(child *Element) {
	child.Parent = el
	if child.doc == nil {
		child.doc = el.doc
	}
	el.elems = append(el.elems, child)
	el.children = append(el.children, child)
}

// SetAttr sets the given attribute and returns the element,
// for chaining. It does not clear a memoized bounding box.
func (el *Element) SetAttr(name, value string) *Element {
	el.Attrs[name] = value
	return el
}

// SetAttrs sets pairs of attribute names and values.
func (el *Element) SetAttrs(nameValues ...string) *Element {
	for i := 0; i+1 < len(nameValues); i += 2 {
		el.Attrs[nameValues[i]] = nameValues[i+1]
	}
	return el
}

func (el *Element) Kind() Kind { return el.kind }

func (el *Element) Attr(name string) (string, bool) {
	v, ok := el.Attrs[name]
	return v, ok
}

func (el *Element) Children() []Node { return el.children }

// Elements returns the child elements, in document order.
func (el *Element) Elements() []*Element { return el.elems }

// ID returns the id attribute of the element.
func (el *Element) ID() string { return el.Attrs["id"] }

func (el *Element) CachedBBox() (bbox.Box, bool) { return el.bbox, el.hasBBox }

func (el *Element) SetCachedBBox(b bbox.Box) {
	el.bbox = b
	el.hasBBox = true
}

// ResetBBox clears the memoized bounding box.
func (el *Element) ResetBBox() {
	el.bbox = bbox.Box{}
	el.hasBBox = false
}

func (el *Element) TextBBox() (bbox.Box, bool) { return el.textBBox, el.hasTextBBox }

// SetTextBBox attaches the measured box of a text content element.
func (el *Element) SetTextBBox(b bbox.Box) {
	el.textBBox = b
	el.hasTextBBox = true
}

// TextContent returns the character data of the element and all
// of its descendants, in document order, with runs of white space
// collapsed to single spaces.
func (el *Element) TextContent() string {
	var sb strings.Builder
	el.WalkDown(func(e *Element) bool {
		sb.WriteString(e.Text)
		return true
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}

// WalkDown calls fun on the element and its descendants in depth
// first order, not descending into elements for which fun
// returns false.
func (el *Element) WalkDown(fun func(e *Element) bool) {
	if !fun(el) {
		return
	}
	for _, c := range el.elems {
		c.WalkDown(fun)
	}
}

// Path returns a slash separated path of tag names and ids from
// the root to the element, for use in log messages.
func (el *Element) Path() string {
	var parts []string
	for e := el; e != nil; e = e.Parent {
		p := e.Tag
		if id := e.ID(); id != "" {
			p += "#" + id
		}
		parts = append(parts, p)
	}
	slices.Reverse(parts)
	return "/" + strings.Join(parts, "/")
}

// number returns the leading number of the given attribute of n,
// or 0 if it is not set or not a number.
func number(n Node, name string) float32 {
	v, ok := n.Attr(name)
	if !ok {
		return 0
	}
	f, _ := ppath.ParseNumber(v)
	return f
}

// Href returns the reference of a use element, from its href
// attribute or else its xlink:href attribute.
func Href(n Node) string {
	if v, ok := n.Attr("href"); ok {
		return strings.TrimSpace(v)
	}
	v, _ := n.Attr("xlink:href")
	return strings.TrimSpace(v)
}
