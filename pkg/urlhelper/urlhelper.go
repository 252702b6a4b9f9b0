// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package urlhelper

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gardener/richcontent/pkg/link"
	"github.com/gardener/richcontent/pkg/mediacomment"
	"golang.org/x/net/html"
)

const (
	// APIEndpointAttr holds the API URL of a linked resource
	APIEndpointAttr = "data-api-endpoint"
	// APIReturnTypeAttr holds the type of the resource APIEndpointAttr returns
	APIReturnTypeAttr = "data-api-returntype"
)

var (
	// /courses/1/files/2/download, /groups/3/pages/intro, /courses/1/wiki/intro
	resourcePath = regexp.MustCompile(`^/(courses|groups|users)/(\d+)/(files|pages|wiki|assignments|quizzes|discussion_topics|modules)/([^/?#]+)`)
	returnTypes  = map[string]string{
		"files":             "File",
		"pages":             "Page",
		"wiki":              "Page",
		"assignments":       "Assignment",
		"quizzes":           "Quiz",
		"discussion_topics": "Discussion",
		"modules":           "Module",
	}
)

// Helper turns root-relative URLs of outgoing content into fully qualified
// ones and resolves media comment renditions. Its base URL is validated on
// creation, so URLs built from it cannot fail.
type Helper struct {
	base string
}

// New creates a Helper for the given protocol and host, e.g. "https" and
// "lms.example.edu"
func New(protocol, host string) (*Helper, error) {
	if host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if protocol == "" {
		protocol = "https"
	}
	u := &url.URL{Scheme: protocol, Host: host}
	if _, err := url.Parse(u.String()); err != nil {
		return nil, fmt.Errorf("invalid host %s: %w", host, err)
	}
	return &Helper{base: u.String()}, nil
}

// BaseURL returns protocol and host as URL
func (h *Helper) BaseURL() string {
	return h.base
}

// RewriteAPIURLs makes the root-relative URLs in attrs of n absolute. Links to
// API resources also get data-api-endpoint and data-api-returntype.
// Malformed URLs are left as they are.
func (h *Helper) RewriteAPIURLs(n *html.Node, attrs []string) error {
	for _, attr := range attrs {
		val, ok := fragment.Attr(n, attr)
		if !ok {
			continue
		}
		trimmed := strings.TrimSpace(val)
		if !strings.HasPrefix(trimmed, "/") || strings.HasPrefix(trimmed, "//") {
			continue
		}
		u, err := url.Parse(trimmed)
		if err != nil {
			continue
		}
		fragment.SetAttr(n, attr, h.base+trimmed)
		if attr != "href" && attr != "src" {
			continue
		}
		if endpoint, returnType := h.apiEndpoint(u.Path); endpoint != "" {
			fragment.SetAttr(n, APIEndpointAttr, endpoint)
			fragment.SetAttr(n, APIReturnTypeAttr, returnType)
		}
	}
	return nil
}

func (h *Helper) apiEndpoint(path string) (string, string) {
	m := resourcePath.FindStringSubmatch(path)
	if m == nil {
		return "", ""
	}
	resource := m[3]
	if resource == "wiki" {
		resource = "pages"
	}
	return link.MustBuild(h.base, "api/v1", m[1], m[2], resource, m[4]), returnTypes[m[3]]
}

// ResolveMediaSources returns the renditions of a media object: mp4 and webm
// for video, mp3 for audio
func (h *Helper) ResolveMediaSources(mediaID, mediaType string) ([]mediacomment.Source, error) {
	if mediaID == "" {
		return nil, fmt.Errorf("media id is required")
	}
	if mediaType == mediacomment.Audio {
		return []mediacomment.Source{{MimeType: "audio/mp3", URL: h.mediaRedirectURL(mediaID, mediaType, "mp3")}}, nil
	}
	return []mediacomment.Source{
		{MimeType: "video/mp4", URL: h.mediaRedirectURL(mediaID, mediaType, "mp4")},
		{MimeType: "video/webm", URL: h.mediaRedirectURL(mediaID, mediaType, "webm")},
	}, nil
}

func (h *Helper) mediaRedirectURL(mediaID, mediaType, format string) string {
	q := url.Values{}
	q.Set("entryId", mediaID)
	q.Set("media_type", mediaType)
	q.Set("redirect", "1")
	q.Set("type", format)
	return link.MustBuild(h.base, "courses/media_download") + "?" + q.Encode()
}
