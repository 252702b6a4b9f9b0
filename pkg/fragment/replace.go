// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package fragment

import "golang.org/x/net/html"

// Replacement is a planned substitution of Old by the node Build returns.
// Build runs when the replacement is applied and may move children of Old.
type Replacement struct {
	Old   *html.Node
	Build func() (*html.Node, error)
}

// Apply performs replacements in order. Planning all replacements before
// applying any keeps the traversal that found them independent of the tree
// surgery. A replacement whose node has been detached in the meantime is
// skipped. The first Build error stops the process.
func Apply(replacements []Replacement) (int, error) {
	applied := 0
	for _, r := range replacements {
		if r.Old.Parent == nil {
			continue
		}
		n, err := r.Build()
		if err != nil {
			return applied, err
		}
		if n == nil || r.Old.Parent == nil {
			continue
		}
		Selection(r.Old).ReplaceWithNodes(n)
		applied++
	}
	return applied, nil
}
