// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package link

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate -header ../../license_prefix.txt

import (
	"net/url"
	"regexp"
	"strings"
)

// VerifierParam is the legacy query parameter granting unauthenticated file access
const VerifierParam = "verifier"

var (
	// /files/12, /files/12/download, /courses/1/files/12/preview
	filePath = regexp.MustCompile(`^/(?:(?:courses|groups|users|accounts)/\d+/)?files/(\d+)(?:/|$)`)
	// /files/12... without an owning context
	rootFilePath = regexp.MustCompile(`^/files/(\d+)(?:/|$)`)
)

// Corrector corrects links found in incoming content
//
//counterfeiter:generate . Corrector
type Corrector interface {
	// Correct returns the corrected link, or link itself if it needs no correction
	Correct(link string) string
}

// FileContextResolver resolves the context owning a file
//
//counterfeiter:generate . FileContextResolver
type FileContextResolver interface {
	// FileContext returns the path of the context owning the file with the given id,
	// e.g. "courses/42", or an empty string when the owner is unknown
	FileContext(fileID string) string
}

// Link is the default Corrector. It strips verifier parameters from file
// links and scopes root-relative file links to their owning context.
type Link struct {
	localHosts     map[string]bool
	resolver       FileContextResolver
	defaultContext string
}

// Option configures a Link corrector
type Option func(*Link)

// WithLocalHosts declares hosts whose absolute links are treated as local
func WithLocalHosts(hosts ...string) Option {
	return func(l *Link) {
		for _, h := range hosts {
			l.localHosts[strings.ToLower(h)] = true
		}
	}
}

// WithFileContextResolver sets the resolver used to scope /files/ links
func WithFileContextResolver(r FileContextResolver) Option {
	return func(l *Link) {
		l.resolver = r
	}
}

// WithDefaultContext sets the context used to scope /files/ links the
// resolver does not know, e.g. "courses/42"
func WithDefaultContext(context string) Option {
	return func(l *Link) {
		l.defaultContext = strings.Trim(context, "/")
	}
}

// New creates a Link corrector
func New(opts ...Option) *Link {
	l := &Link{localHosts: map[string]bool{}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Correct implements Corrector
func (l *Link) Correct(link string) string {
	trimmed := strings.TrimSpace(link)
	if trimmed == "" {
		return link
	}
	u, err := url.Parse(trimmed)
	if err != nil || u.Opaque != "" {
		return link
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return link
	}
	if u.Host != "" && !l.localHosts[strings.ToLower(u.Hostname())] {
		return link
	}
	if !filePath.MatchString(u.Path) {
		return link
	}
	changed := false
	if u.Host != "" {
		u.Scheme, u.Host, u.User = "", "", nil
		changed = true
	}
	if q, stripped := stripParam(u.RawQuery, VerifierParam); stripped {
		u.RawQuery = q
		changed = true
	}
	if m := rootFilePath.FindStringSubmatch(u.Path); m != nil {
		if context := l.fileContext(m[1]); context != "" {
			u.Path = "/" + context + u.Path
			if u.RawPath != "" {
				u.RawPath = "/" + context + u.RawPath
			}
			changed = true
		}
	}
	if !changed {
		return link
	}
	return format(u)
}

func (l *Link) fileContext(fileID string) string {
	if l.resolver != nil {
		if context := strings.Trim(l.resolver.FileContext(fileID), "/"); context != "" {
			return context
		}
	}
	return l.defaultContext
}

// stripParam removes all occurrences of the query parameter key from
// rawQuery, keeping the other parameters and their order as they are
func stripParam(rawQuery string, key string) (string, bool) {
	if rawQuery == "" {
		return rawQuery, false
	}
	var (
		kept     []string
		stripped bool
	)
	for _, p := range strings.Split(rawQuery, "&") {
		k := p
		if i := strings.IndexByte(p, '='); i >= 0 {
			k = p[:i]
		}
		if uk, err := url.QueryUnescape(k); err == nil {
			k = uk
		}
		if k == key {
			stripped = true
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, "&"), stripped
}

// format renders a root-relative link
func format(u *url.URL) string {
	var b strings.Builder
	b.WriteString(u.EscapedPath())
	if u.RawQuery != "" {
		b.WriteByte('?')
		b.WriteString(u.RawQuery)
	}
	if u.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.EscapedFragment())
	}
	return b.String()
}
