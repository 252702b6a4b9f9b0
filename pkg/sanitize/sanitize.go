// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package sanitize

import (
	"sort"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Relative is the pseudo protocol allowing relative URLs
const Relative = "relative"

// Protocols lists, per element, the URL bearing attributes and the
// protocols they may use
var Protocols = map[string]map[string][]string{
	"a":          {"href": {"ftp", "http", "https", "mailto", "skype", Relative}},
	"area":       {"href": {"http", "https", Relative}},
	"audio":      {"src": {"http", "https", Relative}},
	"blockquote": {"cite": {"http", "https", Relative}},
	"del":        {"cite": {"http", "https", Relative}},
	"embed":      {"src": {"http", "https", Relative}},
	"iframe":     {"src": {"http", "https", Relative}},
	"img":        {"src": {"http", "https", Relative}},
	"ins":        {"cite": {"http", "https", Relative}},
	"object":     {"data": {"http", "https", Relative}},
	"q":          {"cite": {"http", "https", Relative}},
	"source":     {"src": {"http", "https", Relative}},
	"track":      {"src": {"http", "https", Relative}},
	"video":      {"src": {"http", "https", Relative}, "poster": {"http", "https", Relative}},
}

var (
	urlAttributesOnce sync.Once
	urlAttributes     map[string][]string
	policyOnce        sync.Once
	policy            *bluemonday.Policy
)

// URLAttributes returns the URL bearing attributes per element, e.g.
// {"a": ["href"], "img": ["src"]}. The map is built on first use and must
// not be modified.
func URLAttributes() map[string][]string {
	urlAttributesOnce.Do(func() {
		urlAttributes = BuildURLAttributes(Protocols)
	})
	return urlAttributes
}

// BuildURLAttributes derives the URL attribute whitelist from a protocol
// table. Attribute names are sorted.
func BuildURLAttributes(protocols map[string]map[string][]string) map[string][]string {
	attributes := make(map[string][]string, len(protocols))
	for tag, attrs := range protocols {
		names := make([]string, 0, len(attrs))
		for name := range attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		attributes[tag] = names
	}
	return attributes
}

// Tags returns the whitelisted element names sorted
func Tags(attributes map[string][]string) []string {
	tags := make([]string, 0, len(attributes))
	for tag := range attributes {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Policy returns the sanitizer policy for user content. It allows the
// elements and URL attributes of Protocols, formatting markup and the
// attributes written by content rewriting.
func Policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = newPolicy()
	})
	return policy
}

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	schemes := map[string]bool{}
	relative := false
	for tag, attrs := range Protocols {
		for attr, protocols := range attrs {
			p.AllowAttrs(attr).OnElements(tag)
			for _, protocol := range protocols {
				if protocol == Relative {
					relative = true
					continue
				}
				schemes[protocol] = true
			}
		}
	}
	names := make([]string, 0, len(schemes))
	for s := range schemes {
		names = append(names, s)
	}
	sort.Strings(names)
	p.AllowURLSchemes(names...)
	p.AllowRelativeURLs(relative)
	p.AllowElements("audio", "video", "source", "track", "iframe", "object", "embed", "param")
	p.AllowAttrs("class", "id", "title").Globally()
	p.AllowDataAttributes()
	p.AllowAttrs("controls", "preload", "allowfullscreen").OnElements("audio", "video")
	p.AllowAttrs("type").OnElements("source", "object", "embed")
	p.AllowAttrs("width", "height").OnElements("img", "iframe", "object", "embed", "video")
	p.AllowAttrs("name", "value").OnElements("param")
	return p
}
