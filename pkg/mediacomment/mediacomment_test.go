// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package mediacomment_test

import (
	"errors"

	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gardener/richcontent/pkg/mediacomment"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

type resolver struct {
	sources []mediacomment.Source
	err     error
	calls   [][2]string
}

func (r *resolver) ResolveMediaSources(id, mediaType string) ([]mediacomment.Source, error) {
	r.calls = append(r.calls, [2]string{id, mediaType})
	return r.sources, r.err
}

func tagOf(s string) *mediacomment.Tag {
	return mediacomment.New(fragment.Parse(s).Elements()[0])
}

var _ = Describe("Tag", func() {
	DescribeTable("detects media comments",
		func(in string, has bool, id string, mediaType string) {
			tag := tagOf(in)
			Expect(tag.HasMediaComment()).To(Equal(has))
			Expect(tag.MediaID()).To(Equal(id))
			Expect(tag.MediaType()).To(Equal(mediaType))
		},
		Entry("video with data-media-id", `<video class="instructure_inline_media_comment" data-media-id="m1"></video>`, true, "m1", "video"),
		Entry("audio with legacy attribute", `<audio class="instructure_inline_media_comment" data-media_comment_id="0_ab"></audio>`, true, "0_ab", "audio"),
		Entry("anchor with id", `<a class="instructure_inline_media_comment audio_comment" id="media_comment_m2" href="#">x</a>`, true, "m2", "audio"),
		Entry("anchor with media object href", `<a class="instructure_inline_media_comment" href="/media_objects/m3">x</a>`, true, "m3", "video"),
		Entry("anchor with explicit type", `<a class="instructure_inline_media_comment" data-media-type="audio" data-media-id="m4">x</a>`, true, "m4", "audio"),
		Entry("marker without media id", `<a class="instructure_inline_media_comment" href="/files/1">x</a>`, false, "", "video"),
		Entry("media id without marker", `<video data-media-id="m1"></video>`, false, "m1", "video"),
		Entry("invalid id", `<video class="instructure_inline_media_comment" data-media-id="a b"></video>`, false, "", "video"),
	)

	Describe("AsAnchorNode", func() {
		It("builds the storage form from a video", func() {
			f := fragment.Parse(`<video class="instructure_inline_media_comment" data-media-id="m1"><source src="x.mp4">fallback</video>`)
			a := mediacomment.New(f.Elements()[0]).AsAnchorNode()
			Expect(fragment.Render(a)).To(Equal(`<a class="instructure_inline_media_comment video_comment" id="media_comment_m1" data-media-id="m1" data-media-type="video" href="/media_objects/m1">fallback</a>`))
		})
		It("adds a placeholder text to empty anchors", func() {
			a := tagOf(`<audio class="instructure_inline_media_comment" data-media-id="m1"></audio>`).AsAnchorNode()
			Expect(fragment.Render(a)).To(Equal(`<a class="instructure_inline_media_comment audio_comment" id="media_comment_m1" data-media-id="m1" data-media-type="audio" href="/media_objects/m1">this is a media comment</a>`))
		})
		It("moves nested media comments next to the element", func() {
			f := fragment.Parse(`<p><video class="instructure_inline_media_comment" data-media-id="m1">before<audio class="instructure_inline_media_comment" data-media-id="m2">inner</audio>after</video></p>`)
			a := mediacomment.New(f.Select("video")[0]).AsAnchorNode()
			Expect(fragment.Render(a)).To(Equal(`<a class="instructure_inline_media_comment video_comment" id="media_comment_m1" data-media-id="m1" data-media-type="video" href="/media_objects/m1">beforeafter</a>`))
			Expect(f.String()).To(Equal(`<p><video class="instructure_inline_media_comment" data-media-id="m1"></video><audio class="instructure_inline_media_comment" data-media-id="m2">inner</audio></p>`))
		})
		It("is stable for the storage form", func() {
			first := fragment.Render(tagOf(`<a class="instructure_inline_media_comment" id="media_comment_m1">x</a>`).AsAnchorNode())
			second := fragment.Render(tagOf(first).AsAnchorNode())
			Expect(second).To(Equal(first))
		})
	})

	Describe("AsHTML5Node", func() {
		var r *resolver
		BeforeEach(func() {
			r = &resolver{sources: []mediacomment.Source{{MimeType: "video/mp4", URL: "https://lms/m1.mp4"}}}
		})
		It("builds a video element with sources and fallback content", func() {
			n, err := tagOf(`<a class="instructure_inline_media_comment" data-media-id="m1">watch</a>`).AsHTML5Node(r)
			Expect(err).NotTo(HaveOccurred())
			Expect(r.calls).To(Equal([][2]string{{"m1", "video"}}))
			Expect(fragment.Render(n)).To(Equal(`<video preload="none" class="instructure_inline_media_comment" data-media-id="m1" data-media-type="video" controls="controls" allowfullscreen="allowfullscreen"><source src="https://lms/m1.mp4" type="video/mp4"/>watch</video>`))
		})
		It("builds an audio element", func() {
			r.sources = []mediacomment.Source{{URL: "https://lms/m1.mp3"}}
			n, err := tagOf(`<a class="instructure_inline_media_comment audio_comment" data-media-id="m1"></a>`).AsHTML5Node(r)
			Expect(err).NotTo(HaveOccurred())
			Expect(fragment.Render(n)).To(Equal(`<audio preload="none" class="instructure_inline_media_comment" data-media-id="m1" data-media-type="audio" controls="controls"><source src="https://lms/m1.mp3"/></audio>`))
		})
		It("propagates resolver errors", func() {
			r.err = errors.New("unavailable")
			_, err := tagOf(`<a class="instructure_inline_media_comment" data-media-id="m1"></a>`).AsHTML5Node(r)
			Expect(err).To(MatchError(ContainSubstring("unavailable")))
		})
	})
})
