// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gardener/richcontent/pkg/sanitize"
	"github.com/gardener/richcontent/pkg/usercontent"
	"golang.org/x/net/html"
)

func (p *Processor) annotateUserContent(f *fragment.Fragment) int {
	if p.userContent == nil {
		return 0
	}
	matches := p.userContent.Scan(f)
	c := &classifier{userContent: make(map[*html.Node]usercontent.Marker, len(matches))}
	for _, m := range matches {
		if _, ok := c.userContent[m.Node]; !ok {
			c.userContent[m.Node] = m.Marker
		}
	}
	var count int
	for _, m := range matches {
		if k, ok := c.classify(m.Node).(UserContentNode); ok {
			stamp(m.Node, k.Marker)
			// each node is stamped once, with its first marker
			delete(c.userContent, m.Node)
			count++
		}
	}
	return count
}

// stamp marks n for client side handling
func stamp(n *html.Node, m usercontent.Marker) {
	class := userContentClass
	if existing := strings.TrimSpace(fragment.AttrValue(n, "class")); existing != "" {
		class += " " + existing
	}
	fragment.SetAttr(n, "class", class)
	fragment.SetAttr(n, "data-uc_width", m.Width)
	fragment.SetAttr(n, "data-uc_height", m.Height)
	fragment.SetAttr(n, "data-uc_snippet", m.Snippet)
	fragment.SetAttr(n, "data-uc_sig", m.Signature)
}

func (p *Processor) annotateEquations(f *fragment.Fragment) int {
	if p.equations == nil || p.mathml == nil {
		return 0
	}
	nodes := p.equations.Scan(f)
	c := &classifier{equations: make(map[*html.Node]bool, len(nodes))}
	for _, n := range nodes {
		c.equations[n] = true
	}
	var count int
	for _, n := range nodes {
		if _, ok := c.classify(n).(EquationImageNode); ok && p.ApplyMathML(n) {
			count++
		}
	}
	return count
}

// ApplyMathML replaces the alt text of the equation image n by its MathML
// rendering in data-mathml. Images without alt text and equations the
// converter cannot handle are left alone. It reports whether n changed.
func (p *Processor) ApplyMathML(n *html.Node) bool {
	if p.mathml == nil {
		return false
	}
	alt, ok := fragment.Attr(n, "alt")
	if !ok || strings.TrimSpace(alt) == "" {
		return false
	}
	mathml := p.mathml.Convert(alt)
	if strings.TrimSpace(mathml) == "" {
		return false
	}
	fragment.RemoveAttr(n, "alt")
	fragment.SetAttr(n, "data-mathml", mathml)
	return true
}

func (p *Processor) rewriteURLs(f *fragment.Fragment, helper URLHelper) error {
	for _, tag := range sanitize.Tags(p.urlAttributes) {
		attrs := p.urlAttributes[tag]
		var err error
		f.Find(tag).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			err = helper.RewriteAPIURLs(s.Get(0), append([]string(nil), attrs...))
			return err == nil
		})
		if err != nil {
			return fmt.Errorf("failed to rewrite URL attributes of %s: %w", tag, err)
		}
	}
	return nil
}
