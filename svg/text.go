// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"cogentcore.org/svgbbox/bbox"
	"cogentcore.org/svgbbox/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// textBBox returns the measured box attached to a text content element.
func textBBox(_ *Evaluator, n Node) (bbox.Box, bool) {
	return n.TextBBox()
}

// TextMeasurer measures the box of text content elements, which
// is attached to them by [SVG.MeasureText] before boxes are computed.
type TextMeasurer interface {
	// MeasureText returns the box of the given text content
	// element, and false if it has no visible text.
	MeasureText(el *Element) (bbox.Box, bool)
}

// DefaultFontSize is the default [FaceMeasurer.FontSize].
var DefaultFontSize float32 = 16

// FaceMeasurer is a [TextMeasurer] that lays out the text content
// of an element on a single line with a font face, starting at
// the x and y attributes as the baseline origin.
type FaceMeasurer struct {

	// Face is the font face.
	Face font.Face

	// Size is the font size at which Face is drawn, which is
	// scaled to the font-size of each element.
	Size float32

	// FontSize is the font size for elements that do not have
	// and do not inherit a font-size attribute.
	FontSize float32
}

// NewFaceMeasurer returns a [FaceMeasurer] using the fixed
// 7x13 face, which has a size of 13.
func NewFaceMeasurer() *FaceMeasurer {
	return &FaceMeasurer{Face: basicfont.Face7x13, Size: 13, FontSize: DefaultFontSize}
}

func (fm *FaceMeasurer) MeasureText(el *Element) (bbox.Box, bool) {
	txt := el.TextContent()
	if txt == "" {
		return bbox.Empty, false
	}
	size := fontSize(el, fm.FontSize)
	bounds, _ := font.BoundString(fm.Face, txt)
	bx := math32.B2FromFixed(bounds).Scale(size / fm.Size)
	bx = bx.Translate(math32.Vec2(number(el, "x"), number(el, "y")))
	return bbox.FromBox2(bx), true
}

// fontSize returns the font-size attribute of the element or of its
// nearest ancestor that has a positive one, or else def.
func fontSize(el *Element, def float32) float32 {
	for e := el; e != nil; e = e.Parent {
		if sz := number(e, "font-size"); sz > 0 {
			return sz
		}
	}
	return def
}
