// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"cogentcore.org/svgbbox/base/errors"
)

var (
	// ErrNotFound is returned when the target of a reference does not exist.
	ErrNotFound = errors.New("svg: reference not found")

	// ErrUnsupportedScheme is returned for references with a URL
	// scheme other than file.
	ErrUnsupportedScheme = errors.New("svg: unsupported reference scheme")

	// ErrCycle is returned for a reference whose target contains
	// the referencing element, directly or through other references.
	ErrCycle = errors.New("svg: reference cycle")
)

// Resolve returns the element referenced by href from the given
// context node. A fragment-only reference (#id) is looked up in the
// document of the context node; a reference with a path (file.svg#id)
// is looked up in that document, loaded from [SVG.FS], and refers to
// its root element if it has no fragment. Resolve implements [Resolver].
func (sv *SVG) Resolve(href string, context Node) (Node, error) {
	doc := sv.docOf(context)
	target, err := doc.resolve(href)
	if err != nil {
		return nil, err
	}
	if target.doc.reaches(target, context, map[*Element]bool{}) {
		return nil, fmt.Errorf("%w: %q", ErrCycle, href)
	}
	return target, nil
}

// docOf returns the document containing n, defaulting to sv.
func (sv *SVG) docOf(n Node) *SVG {
	if el, ok := n.(*Element); ok && el.doc != nil {
		return el.doc
	}
	return sv
}

// resolve returns the element referenced by href within sv,
// without checking for cycles.
func (sv *SVG) resolve(href string) (*Element, error) {
	if href == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrNotFound)
	}
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if u.Scheme != "" && u.Scheme != "file" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
	doc := sv
	if u.Path != "" {
		doc, err = sv.document(u.Path)
		if err != nil {
			return nil, err
		}
	}
	if u.Fragment == "" {
		if doc.Root == nil {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, href)
		}
		return doc.Root, nil
	}
	el := doc.ids[u.Fragment]
	if el == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, href)
	}
	return el, nil
}

// document returns the document with the given path relative to
// sv, loading it from [SVG.FS] on first use.
func (sv *SVG) document(p string) (*SVG, error) {
	if sv.FS == nil {
		return nil, fmt.Errorf("%w: no file system to load %q", ErrNotFound, p)
	}
	if path.IsAbs(p) {
		p = strings.TrimPrefix(path.Clean(p), "/")
	} else {
		p = path.Join(path.Dir(sv.Name), p)
	}
	if sv.docs == nil {
		sv.docs = map[string]*SVG{}
	}
	if doc, ok := sv.docs[p]; ok {
		return doc, nil
	}
	doc := &SVG{Features: sv.Features, docs: sv.docs}
	if err := doc.OpenFS(sv.FS, p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return doc, nil
}

// reaches returns whether node can be reached from el through
// its descendants and the targets of use elements among them.
func (sv *SVG) reaches(el *Element, node Node, visited map[*Element]bool) bool {
	if visited[el] {
		return false
	}
	visited[el] = true
	if Node(el) == node {
		return true
	}
	if el.Kind() == KindUse {
		if target, err := sv.resolve(Href(el)); err == nil && target.doc.reaches(target, node, visited) {
			return true
		}
	}
	for _, c := range el.elems {
		if sv.reaches(c, node, visited) {
			return true
		}
	}
	return false
}
