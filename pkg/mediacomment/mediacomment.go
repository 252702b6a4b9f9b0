// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mediacomment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gardener/richcontent/pkg/fragment"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	// MarkerClass marks audio, video and anchor elements as inline media comments
	MarkerClass = "instructure_inline_media_comment"
	// Audio media type
	Audio = "audio"
	// Video media type
	Video = "video"
	// Selector matches the elements that can carry an inline media comment
	Selector = "audio." + MarkerClass + ", video." + MarkerClass + ", a." + MarkerClass
	// placeholder text of anchors that would otherwise be empty
	anchorText = "this is a media comment"
	idPrefix   = "media_comment_"
)

var (
	mediaObjectPath = regexp.MustCompile(`/media_objects(?:_iframe)?/([\w-]+)`)
	validID         = regexp.MustCompile(`^[\w-]+$`)
)

// Source is a playable rendition of a media object
type Source struct {
	MimeType string
	URL      string
}

// SourceResolver resolves the renditions of a media object
type SourceResolver interface {
	ResolveMediaSources(mediaID, mediaType string) ([]Source, error)
}

// Tag is a view over an element that may be an inline media comment
type Tag struct {
	node      *html.Node
	mediaID   string
	mediaType string
}

// New creates a Tag for the node n
func New(n *html.Node) *Tag {
	return &Tag{
		node:      n,
		mediaID:   mediaID(n),
		mediaType: mediaType(n),
	}
}

// HasMediaComment reports whether the node is marked as inline media comment
// and references a media object
func (t *Tag) HasMediaComment() bool {
	return fragment.HasClass(t.node, MarkerClass) && t.mediaID != ""
}

// MediaID is the referenced media object id
func (t *Tag) MediaID() string {
	return t.mediaID
}

// MediaType is either Audio or Video
func (t *Tag) MediaType() string {
	return t.mediaType
}

// AsAnchorNode builds the storage form of the media comment. The children
// of the original element, except media sources and tracks, are moved to
// the anchor. Nested media comments are moved next to the element first,
// since anchors cannot nest.
func (t *Tag) AsAnchorNode() *html.Node {
	t.hoistNested()
	a := fragment.NewElement(atom.A,
		html.Attribute{Key: "class", Val: fmt.Sprintf("%s %s_comment", MarkerClass, t.mediaType)},
		html.Attribute{Key: "id", Val: idPrefix + t.mediaID},
		html.Attribute{Key: "data-media-id", Val: t.mediaID},
		html.Attribute{Key: "data-media-type", Val: t.mediaType},
		html.Attribute{Key: "href", Val: "/media_objects/" + t.mediaID},
	)
	fragment.MoveChildren(t.node, a, func(c *html.Node) bool {
		return c.DataAtom != atom.Source && c.DataAtom != atom.Track
	})
	if a.FirstChild == nil {
		a.AppendChild(fragment.NewText(anchorText))
	}
	return a
}

// AsHTML5Node builds the display form of the media comment: a native audio
// or video element with one source per rendition r resolves, followed by the
// original children as fallback content.
func (t *Tag) AsHTML5Node(r SourceResolver) (*html.Node, error) {
	sources, err := r.ResolveMediaSources(t.mediaID, t.mediaType)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sources of media object %s: %w", t.mediaID, err)
	}
	t.hoistNested()
	a := atom.Video
	if t.mediaType == Audio {
		a = atom.Audio
	}
	media := fragment.NewElement(a,
		html.Attribute{Key: "preload", Val: "none"},
		html.Attribute{Key: "class", Val: MarkerClass},
		html.Attribute{Key: "data-media-id", Val: t.mediaID},
		html.Attribute{Key: "data-media-type", Val: t.mediaType},
		html.Attribute{Key: "controls", Val: "controls"},
	)
	if a == atom.Video {
		media.Attr = append(media.Attr, html.Attribute{Key: "allowfullscreen", Val: "allowfullscreen"})
	}
	for _, s := range sources {
		source := fragment.NewElement(atom.Source, html.Attribute{Key: "src", Val: s.URL})
		if s.MimeType != "" {
			source.Attr = append(source.Attr, html.Attribute{Key: "type", Val: s.MimeType})
		}
		media.AppendChild(source)
	}
	fragment.MoveChildren(t.node, media, nil)
	return media, nil
}

// hoistNested moves the media comments nested in the element right after
// it, in document order. Detached elements keep their descendants.
func (t *Tag) hoistNested() {
	if t.node.Parent == nil {
		return
	}
	if nested := fragment.Selection(t.node).Find(Selector); nested.Length() > 0 {
		fragment.Selection(t.node).AfterSelection(nested)
	}
}

func mediaID(n *html.Node) string {
	for _, key := range []string{"data-media-id", "data-media_comment_id"} {
		if id := strings.TrimSpace(fragment.AttrValue(n, key)); validID.MatchString(id) {
			return id
		}
	}
	if id := strings.TrimSpace(fragment.AttrValue(n, "id")); strings.HasPrefix(id, idPrefix) {
		if id = strings.TrimPrefix(id, idPrefix); validID.MatchString(id) {
			return id
		}
	}
	for _, key := range []string{"href", "src"} {
		if m := mediaObjectPath.FindStringSubmatch(fragment.AttrValue(n, key)); m != nil {
			return m[1]
		}
	}
	return ""
}

func mediaType(n *html.Node) string {
	switch n.DataAtom {
	case atom.Audio:
		return Audio
	case atom.Video:
		return Video
	}
	for _, key := range []string{"data-media-type", "data-media_comment_type"} {
		switch strings.ToLower(strings.TrimSpace(fragment.AttrValue(n, key))) {
		case Audio:
			return Audio
		case Video:
			return Video
		}
	}
	if fragment.HasClass(n, "audio_comment") {
		return Audio
	}
	return Video
}
