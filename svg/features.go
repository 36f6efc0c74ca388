// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"log/slog"
	"strings"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// FeatureRoot is the prefix of the SVG 1.1 feature strings used in
// the requiredFeatures attribute.
const FeatureRoot = "http://www.w3.org/TR/SVG11/feature#"

// SupportedFeatures are the SVG 1.1 features, without [FeatureRoot],
// that [Features] reports as supported.
var SupportedFeatures = []string{
	"SVG", "SVG-static", "CoreAttribute", "Structure", "BasicStructure",
	"ConditionalProcessing", "Image", "Style", "ViewportAttribute", "Shape",
	"BasicText", "BasicPaintAttribute", "OpacityAttribute",
	"BasicGraphicsAttribute", "Marker", "Gradient", "Pattern", "Clip",
	"BasicClip", "Mask",
}

// Features is a [FeatureMatcher] implementing the SVG conditional
// processing attributes for a user language.
type Features struct {

	// Language is the language of the user.
	Language language.Tag

	// Supported is the set of supported full feature strings.
	Supported map[string]bool
}

// NewFeatures returns [Features] for the given user language,
// supporting [SupportedFeatures].
func NewFeatures(lang language.Tag) *Features {
	f := &Features{Language: lang, Supported: map[string]bool{}}
	for _, s := range SupportedFeatures {
		f.Supported[FeatureRoot+s] = true
	}
	return f
}

// UserLanguage returns the language of the user according to the
// system locale, or [language.English] if it cannot be determined.
func UserLanguage() language.Tag {
	loc, err := locale.GetLocale()
	if err != nil || loc == "" {
		return language.English
	}
	// POSIX locales like en_US.UTF-8
	loc, _, _ = strings.Cut(loc, ".")
	tag, err := language.Parse(strings.ReplaceAll(loc, "_", "-"))
	if err != nil || tag == language.Und {
		slog.Debug("svg: unknown user locale", "locale", loc, "err", err)
		return language.English
	}
	return tag
}

// IsApplicable returns false if n has a requiredExtensions attribute,
// a requiredFeatures attribute with a feature that is not supported,
// or a systemLanguage attribute none of whose languages is the user
// language or a more general form of it.
func (f *Features) IsApplicable(n Node) bool {
	if _, ok := n.Attr("requiredExtensions"); ok {
		return false
	}
	if v, ok := n.Attr("requiredFeatures"); ok && !f.hasFeatures(v) {
		return false
	}
	if v, ok := n.Attr("systemLanguage"); ok && !f.hasLanguage(v) {
		return false
	}
	return true
}

func (f *Features) hasFeatures(list string) bool {
	for _, ft := range strings.Fields(list) {
		if !f.Supported[ft] {
			return false
		}
	}
	return true
}

func (f *Features) hasLanguage(list string) bool {
	for _, l := range strings.Split(list, ",") {
		tag, err := language.Parse(strings.TrimSpace(l))
		if err != nil {
			continue
		}
		want := tag.String()
		for t := f.Language; ; t = t.Parent() {
			if t.String() == want {
				return true
			}
			if t == language.Und {
				break
			}
		}
	}
	return false
}
