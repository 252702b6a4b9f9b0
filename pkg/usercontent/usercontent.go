// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package usercontent

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gorilla/css/scanner"
	"golang.org/x/net/html"
)

const (
	// DefaultWidth of user content without a declared width
	DefaultWidth = "400px"
	// DefaultHeight of user content without a declared height
	DefaultHeight = "300px"
	// EquationImageClass marks images rendering an equation
	EquationImageClass = "equation_image"

	embeddedSelector = "object, embed"
)

// Marker carries the display and integrity attributes of a user content node.
// Values are opaque strings.
type Marker struct {
	Width     string
	Height    string
	Snippet   string
	Signature string
}

// Match is a user content node found by a scanner
type Match struct {
	Node   *html.Node
	Marker Marker
}

// Scanner finds embedded objects that clients render out of band. Each
// match is signed so that the snippet can be trusted when it comes back.
type Scanner struct {
	secret []byte
}

// NewScanner creates a Scanner signing snippets with secret
func NewScanner(secret []byte) *Scanner {
	return &Scanner{secret: secret}
}

// Scan returns the outermost object and embed elements in document order
func (s *Scanner) Scan(f *fragment.Fragment) []Match {
	var matches []Match
	f.Find(embeddedSelector).
		FilterFunction(func(_ int, sel *goquery.Selection) bool {
			return sel.ParentsFiltered(embeddedSelector).Length() == 0
		}).
		Each(func(_ int, sel *goquery.Selection) {
			n := sel.Get(0)
			matches = append(matches, Match{Node: n, Marker: s.marker(n)})
		})
	return matches
}

func (s *Scanner) marker(n *html.Node) Marker {
	params := map[string]string{}
	fragment.Selection(n).ChildrenFiltered("param").Each(func(_ int, p *goquery.Selection) {
		params[strings.ToLower(p.AttrOr("name", ""))] = p.AttrOr("value", "")
	})
	styles := parseStyle(fragment.AttrValue(n, "style"))
	snippet := base64.StdEncoding.EncodeToString([]byte(fragment.Render(n)))
	return Marker{
		Width:     firstSize(DefaultWidth, fragment.AttrValue(n, "width"), params["width"], styles["width"]),
		Height:    firstSize(DefaultHeight, fragment.AttrValue(n, "height"), params["height"], styles["height"]),
		Snippet:   snippet,
		Signature: s.Sign(snippet),
	}
}

// Sign returns the hex encoded HMAC-SHA1 of snippet
func (s *Scanner) Sign(snippet string) string {
	mac := hmac.New(sha1.New, s.secret)
	_, _ = mac.Write([]byte(snippet))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature is the signature of snippet
func (s *Scanner) Verify(snippet, signature string) bool {
	expected, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha1.New, s.secret)
	_, _ = mac.Write([]byte(snippet))
	return hmac.Equal(mac.Sum(nil), expected)
}

// parseStyle returns the declarations of an inline style by lower case
// property name
func parseStyle(style string) map[string]string {
	styles := map[string]string{}
	var (
		property string
		value    strings.Builder
		inValue  bool
	)
	declare := func() {
		if inValue {
			styles[property] = strings.TrimSpace(value.String())
		}
		property, inValue = "", false
		value.Reset()
	}
	s := scanner.New(style)
	for {
		t := s.Next()
		switch {
		case t.Type == scanner.TokenEOF || t.Type == scanner.TokenError:
			declare()
			return styles
		case t.Type == scanner.TokenComment:
		case t.Type == scanner.TokenChar && t.Value == ";":
			declare()
		case inValue:
			value.WriteString(t.Value)
		case t.Type == scanner.TokenIdent && property == "":
			property = strings.ToLower(t.Value)
		case t.Type == scanner.TokenChar && t.Value == ":" && property != "":
			inValue = true
		}
	}
}

func firstSize(fallback string, candidates ...string) string {
	for _, c := range candidates {
		if size := cssSize(c); size != "" {
			return size
		}
	}
	return fallback
}

// cssSize turns a bare number into pixels, keeps other non zero sizes as they
// are and returns "" for missing or zero sizes
func cssSize(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		return ""
	}
	if f, err := strconv.ParseFloat(val, 64); err == nil {
		if f == 0 {
			return ""
		}
		return strconv.FormatFloat(f, 'f', -1, 64) + "px"
	}
	if f, err := strconv.ParseFloat(strings.TrimRight(val, "abcdefghijklmnopqrstuvwxyz%"), 64); err == nil && f == 0 {
		return ""
	}
	return val
}

// EquationScanner finds equation images
type EquationScanner struct{}

// Scan returns img.equation_image elements in document order
func (EquationScanner) Scan(f *fragment.Fragment) []*html.Node {
	return f.Select("img." + EquationImageClass)
}
