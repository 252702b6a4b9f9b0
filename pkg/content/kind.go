// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"strings"

	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gardener/richcontent/pkg/mediacomment"
	"github.com/gardener/richcontent/pkg/usercontent"
	"golang.org/x/net/html"
)

// NodeKind is the rewrite relevant kind of an element
type NodeKind interface {
	nodeKind()
}

// PlainNode is an element no rewrite step cares about
type PlainNode struct{}

// MediaCommentNode is an inline media comment referencing a media object
type MediaCommentNode struct {
	Tag *mediacomment.Tag
}

// UserContentNode is an element found by the user content scanner
type UserContentNode struct {
	Marker usercontent.Marker
}

// EquationImageNode is an equation image with a non blank alt text
type EquationImageNode struct {
	Alt string
}

func (PlainNode) nodeKind()         {}
func (MediaCommentNode) nodeKind()  {}
func (UserContentNode) nodeKind()   {}
func (EquationImageNode) nodeKind() {}

// classifier decides the kind of elements from their markup and the matches
// of the content scanners
type classifier struct {
	userContent map[*html.Node]usercontent.Marker
	equations   map[*html.Node]bool
}

func (c *classifier) classify(n *html.Node) NodeKind {
	if n.Type != html.ElementNode {
		return PlainNode{}
	}
	if m, ok := c.userContent[n]; ok {
		return UserContentNode{Marker: m}
	}
	if c.equations[n] {
		if alt, ok := fragment.Attr(n, "alt"); ok && strings.TrimSpace(alt) != "" {
			return EquationImageNode{Alt: alt}
		}
		return PlainNode{}
	}
	if fragment.HasClass(n, mediacomment.MarkerClass) {
		if tag := mediacomment.New(n); tag.HasMediaComment() {
			return MediaCommentNode{Tag: tag}
		}
	}
	return PlainNode{}
}
