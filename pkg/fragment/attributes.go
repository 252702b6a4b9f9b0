// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package fragment

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of the attribute key and whether it is present
func Attr(n *html.Node, key string) (string, bool) {
	return Selection(n).Attr(key)
}

// AttrValue returns the value of the attribute key or an empty string
func AttrValue(n *html.Node, key string) string {
	return Selection(n).AttrOr(key, "")
}

// SetAttr sets the attribute key to val. An existing attribute keeps its
// position; a new one is appended.
func SetAttr(n *html.Node, key, val string) {
	Selection(n).SetAttr(key, val)
}

// RemoveAttr removes the attribute key if present
func RemoveAttr(n *html.Node, key string) {
	Selection(n).RemoveAttr(key)
}

// Classes returns the whitespace separated entries of the class attribute
func Classes(n *html.Node) []string {
	return strings.Fields(AttrValue(n, "class"))
}

// HasClass reports whether class is one of the node classes
func HasClass(n *html.Node, class string) bool {
	return Selection(n).HasClass(class)
}
