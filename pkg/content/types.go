// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gardener/richcontent/pkg/mediacomment"
	"github.com/gardener/richcontent/pkg/usercontent"
	"golang.org/x/net/html"
)

// URLHelper builds the URLs of outgoing content
//
//counterfeiter:generate . URLHelper
type URLHelper interface {
	// RewriteAPIURLs rewrites the values of attrs on n into fully qualified URLs
	RewriteAPIURLs(n *html.Node, attrs []string) error
	// ResolveMediaSources returns the renditions of a media object
	ResolveMediaSources(mediaID, mediaType string) ([]mediacomment.Source, error)
}

// UserContentScanner finds nodes that need client side handling
//
//counterfeiter:generate . UserContentScanner
type UserContentScanner interface {
	// Scan returns the matches in document order
	Scan(f *fragment.Fragment) []usercontent.Match
}

// EquationScanner finds equation images
//
//counterfeiter:generate . EquationScanner
type EquationScanner interface {
	// Scan returns the equation image nodes in document order
	Scan(f *fragment.Fragment) []*html.Node
}

// MathMLConverter converts LaTeX to MathML
//
//counterfeiter:generate . MathMLConverter
type MathMLConverter interface {
	// Convert returns the MathML for latex, blank when it cannot be converted
	Convert(latex string) string
}
