// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package fragment

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is a parsed HTML fragment. The parsed nodes are children of a
// synthetic document root, so top level nodes can be replaced the same way
// as nested ones.
type Fragment struct {
	Root *html.Node
}

// Parse parses an HTML fragment in a <body> context. It never fails: the
// tokenizer recovers from malformed markup and anything it cannot parse ends
// up as text.
func Parse(s string) *Fragment {
	root := &html.Node{Type: html.DocumentNode}
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		root.AppendChild(&html.Node{Type: html.TextNode, Data: s})
		return &Fragment{Root: root}
	}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return &Fragment{Root: root}
}

// Document returns a goquery document over the fragment root. Changes made
// through the document are changes of the fragment.
func (f *Fragment) Document() *goquery.Document {
	return goquery.NewDocumentFromNode(f.Root)
}

// Find returns the elements matching the CSS selector in document order.
// An invalid selector matches nothing.
func (f *Fragment) Find(selector string) *goquery.Selection {
	return f.Document().Find(selector)
}

// Select is Find returning the matched nodes
func (f *Fragment) Select(selector string) []*html.Node {
	return f.Find(selector).Nodes
}

// Elements returns all element nodes of the fragment in document order
func (f *Fragment) Elements() []*html.Node {
	return f.Select("*")
}

// String renders the fragment children in document order
func (f *Fragment) String() string {
	// rendering only fails on writer errors
	s, _ := f.Document().Html()
	return s
}

// Selection wraps a single node, e.g. a node returned by a scanner, for
// querying and manipulation
func Selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}

// Render renders a single node
func Render(n *html.Node) string {
	s, _ := goquery.OuterHtml(Selection(n))
	return s
}

// NewElement creates a detached element node with the given attributes
func NewElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

// NewText creates a detached text node
func NewText(text string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: text}
}

// MoveChildren detaches the children of from accepted by keep and appends
// them to to, preserving their order. A nil keep moves all children.
func MoveChildren(from, to *html.Node, keep func(*html.Node) bool) {
	children := Selection(from).Contents()
	if keep != nil {
		children = children.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return keep(s.Get(0))
		})
	}
	Selection(to).AppendSelection(children)
}
