// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/svgbbox/base/errors"
	"golang.org/x/net/html/charset"
)

const (
	svgNamespace   = "http://www.w3.org/2000/svg"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
)

var errNoRoot = errors.New("svg: no root element")

// OpenXML opens the XML-formatted SVG file with the given name.
// References to other documents are resolved relative to its directory.
func (sv *SVG) OpenXML(fname string) error {
	fi, err := os.Stat(fname)
	if err != nil {
		return err
	}
	if fi.IsDir() {
		return fmt.Errorf("svg.OpenXML: file is a directory: %v", fname)
	}
	return sv.OpenFS(os.DirFS(filepath.Dir(fname)), filepath.Base(fname))
}

// OpenFS opens the XML-formatted SVG file with the given name
// in the given file system, which is also used to load the
// documents it references.
func (sv *SVG) OpenFS(fsys fs.FS, fname string) error {
	fp, err := fsys.Open(fname)
	if err != nil {
		return err
	}
	defer fp.Close()
	sv.FS = fsys
	sv.Name = fname
	if sv.docs == nil {
		sv.docs = map[string]*SVG{}
	}
	sv.docs[fname] = sv
	return sv.ReadXML(bufio.NewReader(fp))
}

// ReadXML reads XML-formatted SVG input from the given reader,
// replacing any existing content. Non-UTF-8 input is converted
// according to its declared charset.
func (sv *SVG) ReadXML(reader io.Reader) error {
	decoder := xml.NewDecoder(reader)
	decoder.Strict = false
	decoder.AutoClose = xml.HTMLAutoClose
	decoder.Entity = xml.HTMLEntity
	decoder.CharsetReader = charset.NewReaderLabel

	var root, cur *Element
	for {
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("svg: parsing XML: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			el := NewElement(cur, elementName(se.Name))
			for _, attr := range se.Attr {
				if nm := attrName(attr.Name); nm != "" {
					el.Attrs[nm] = attr.Value
				}
			}
			if root == nil {
				root = el
			}
			cur = el
		case xml.EndElement:
			if cur != nil {
				cur = cur.Parent
			}
		case xml.CharData:
			if cur != nil {
				cur.Text += string(se)
			}
		}
		if root != nil && cur == nil {
			break
		}
	}
	if root == nil {
		return errNoRoot
	}
	sv.SetRoot(root)
	return nil
}

// elementName returns the tag name for an element, which is the
// local name for SVG elements and is prefixed by the namespace
// for foreign ones, so that they have no [Kind].
func elementName(n xml.Name) string {
	if n.Space == "" || n.Space == svgNamespace {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// attrName returns the name under which an attribute is stored,
// or "" for attributes in foreign namespaces.
func attrName(n xml.Name) string {
	switch n.Space {
	case "", svgNamespace:
		return n.Local
	case xlinkNamespace, "xlink":
		return "xlink:" + n.Local
	}
	return ""
}
