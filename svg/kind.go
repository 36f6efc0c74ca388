// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

// Kind is the kind of an SVG element, determined by its tag name.
// Only the kinds listed here have a bounding box; all other elements
// are [KindUnknown].
type Kind int32

const (
	KindUnknown Kind = iota
	KindRect
	KindCircle
	KindEllipse
	KindLine
	KindPolyline
	KindPolygon
	KindPath
	KindText
	KindTSpan
	KindTextPath
	KindGroup
	KindUse
	KindMarker
	KindSVG
	KindAnchor
	KindSymbol
	KindSwitch

	// kindN is the number of kinds.
	kindN
)

var kindNames = [kindN]string{
	KindUnknown:  "",
	KindRect:     "rect",
	KindCircle:   "circle",
	KindEllipse:  "ellipse",
	KindLine:     "line",
	KindPolyline: "polyline",
	KindPolygon:  "polygon",
	KindPath:     "path",
	KindText:     "text",
	KindTSpan:    "tspan",
	KindTextPath: "textPath",
	KindGroup:    "g",
	KindUse:      "use",
	KindMarker:   "marker",
	KindSVG:      "svg",
	KindAnchor:   "a",
	KindSymbol:   "symbol",
	KindSwitch:   "switch",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindN)
	for k := KindRect; k < kindN; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// KindOf returns the [Kind] for the given element tag name,
// which is case sensitive as in SVG.
func KindOf(tag string) Kind {
	return kindsByName[tag]
}

// String returns the tag name of the kind, or "unknown".
func (k Kind) String() string {
	if k <= KindUnknown || k >= kindN {
		return "unknown"
	}
	return kindNames[k]
}

// IsText returns whether the kind is one of the text content
// elements, whose box comes from an external measurement.
func (k Kind) IsText() bool {
	return k == KindText || k == KindTSpan || k == KindTextPath
}
