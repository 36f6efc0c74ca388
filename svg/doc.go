// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package svg computes the object bounding boxes of the elements of
// an SVG document, in the local untransformed coordinates of each
// element. Nothing is rendered.
//
// An [Evaluator] computes the box of any [Node], dispatching on its
// [Kind] to the shape, path, text and container rules, and memoizes
// non-empty results on the node itself. An [SVG] document read from
// XML provides the [Element] tree, the reference [Resolver] used by
// use elements, a [FeatureMatcher] and text measurement.
package svg
