// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content_test

import (
	"errors"

	"github.com/gardener/richcontent/pkg/content"
	"github.com/gardener/richcontent/pkg/content/contentfakes"
	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gardener/richcontent/pkg/link/linkfakes"
	"github.com/gardener/richcontent/pkg/mediacomment"
	"github.com/gardener/richcontent/pkg/sanitize"
	"github.com/gardener/richcontent/pkg/urlhelper"
	"github.com/gardener/richcontent/pkg/usercontent"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

const storedVideo = `<a class="instructure_inline_media_comment video_comment" id="media_comment_m1" data-media-id="m1" data-media-type="video" href="/media_objects/m1">fallback</a>`

// relativeSources resolves media renditions to root-relative URLs
type relativeSources struct {
	*urlhelper.Helper
}

func (relativeSources) ResolveMediaSources(id, _ string) ([]mediacomment.Source, error) {
	return []mediacomment.Source{{MimeType: "video/mp4", URL: "/media/" + id + ".mp4"}}, nil
}

var _ = Describe("Processor", func() {
	var processor *content.Processor

	BeforeEach(func() {
		processor = content.NewProcessor()
	})

	Describe("ProcessIncoming", func() {
		DescribeTable("returns content without triggers unchanged",
			func(in string) {
				Expect(processor.MightNeedModification(in)).To(BeFalse())
				Expect(processor.ProcessIncoming(in)).To(Equal(in))
			},
			Entry("plain paragraph", `<p>hello</p>`),
			Entry("unbalanced markup", `<p>hello <b>world`),
			Entry("foreign link", `<a href=https://example.com/x>x</a>`),
		)

		DescribeTable("returns blank content unchanged",
			func(in string) {
				Expect(processor.ProcessIncoming(in)).To(Equal(in))
			},
			Entry("empty", ""),
			Entry("whitespace", "  \n"),
		)

		It("strips the verifier from file links", func() {
			out := processor.ProcessIncoming(`<a href="/courses/1/files/2/download?verifier=abc&wrap=1">x</a><img src="/courses/1/files/3/preview?verifier=abc">`)
			Expect(out).To(Equal(`<a href="/courses/1/files/2/download?wrap=1">x</a><img src="/courses/1/files/3/preview"/>`))
		})

		It("converts inline media elements to anchors", func() {
			out := processor.ProcessIncoming(`<p><video class="instructure_inline_media_comment" data-media-id="m1"><source src="/m1.mp4">fallback</video></p>`)
			Expect(out).To(Equal(`<p>` + storedVideo + `</p>`))
		})

		It("converts audio comments with placeholder text", func() {
			out := processor.ProcessIncoming(`<audio class="instructure_inline_media_comment" data-media-id="m2"></audio>`)
			Expect(out).To(Equal(`<a class="instructure_inline_media_comment audio_comment" id="media_comment_m2" data-media-id="m2" data-media-type="audio" href="/media_objects/m2">this is a media comment</a>`))
		})

		It("leaves media comments without media id in place", func() {
			in := `<video class="instructure_inline_media_comment">x</video>`
			Expect(processor.ProcessIncoming(in)).To(Equal(in))
		})

		It("corrects href and src only", func() {
			corrector := &linkfakes.FakeCorrector{}
			corrector.CorrectStub = func(s string) string { return s + "#c" }
			processor = content.NewProcessor(content.WithCorrector(corrector))
			out := processor.ProcessIncoming(`<a href="/files/1" title="/files/2">x</a><img src="/files/3">`)
			Expect(out).To(Equal(`<a href="/files/1#c" title="/files/2">x</a><img src="/files/3#c"/>`))
			Expect(corrector.CorrectCallCount()).To(Equal(2))
			Expect(corrector.CorrectArgsForCall(0)).To(Equal("/files/1"))
			Expect(corrector.CorrectArgsForCall(1)).To(Equal("/files/3"))
		})

		It("keeps nested media comments apart", func() {
			out := processor.ProcessIncoming(`<video class="instructure_inline_media_comment" data-media-id="m1"><audio class="instructure_inline_media_comment" data-media-id="m2"></audio></video>`)
			Expect(out).To(Equal(`<a class="instructure_inline_media_comment video_comment" id="media_comment_m1" data-media-id="m1" data-media-type="video" href="/media_objects/m1">this is a media comment</a>` +
				`<a class="instructure_inline_media_comment audio_comment" id="media_comment_m2" data-media-id="m2" data-media-type="audio" href="/media_objects/m2">this is a media comment</a>`))
		})

		DescribeTable("is idempotent",
			func(in string) {
				once := processor.ProcessIncoming(in)
				Expect(processor.ProcessIncoming(once)).To(Equal(once))
			},
			Entry("file link", `<a href="/courses/1/files/2?verifier=v">x</a>`),
			Entry("media element", `<video class="instructure_inline_media_comment" data-media-id="m1">x</video>`),
			Entry("stored anchor", storedVideo),
			Entry("mixed", `<p>'/files</p><audio class="instructure_inline_media_comment" data-media-id="a"></audio>`),
			Entry("nested media elements", `<video class="instructure_inline_media_comment" data-media-id="m1"><audio class="instructure_inline_media_comment" data-media-id="m2"></audio></video>`),
			Entry("deeply nested media elements", `<video class="instructure_inline_media_comment" data-media-id="m1">x<p><a class="instructure_inline_media_comment" data-media-id="m2">y<audio class="instructure_inline_media_comment" data-media-id="m3"></audio></a></p></video>`),
		)
	})

	Describe("RewriteOutgoing", func() {
		var helper *contentfakes.FakeURLHelper

		BeforeEach(func() {
			helper = &contentfakes.FakeURLHelper{}
			helper.ResolveMediaSourcesReturns([]mediacomment.Source{{MimeType: "video/mp4", URL: "https://lms/m1.mp4"}}, nil)
		})

		It("returns blank content unchanged", func() {
			out, err := processor.RewriteOutgoing(" ", helper)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(" "))
			Expect(helper.Invocations()).To(BeEmpty())
		})

		It("converts stored media comments to HTML5 media", func() {
			out, err := processor.RewriteOutgoing(storedVideo, helper)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<video preload="none" class="instructure_inline_media_comment" data-media-id="m1" data-media-type="video" controls="controls" allowfullscreen="allowfullscreen"><source src="https://lms/m1.mp4" type="video/mp4"/>fallback</video>`))
			id, mediaType := helper.ResolveMediaSourcesArgsForCall(0)
			Expect(id).To(Equal("m1"))
			Expect(mediaType).To(Equal(mediacomment.Video))
		})

		It("fails when media sources cannot be resolved", func() {
			helper.ResolveMediaSourcesReturns(nil, errors.New("no renditions"))
			_, err := processor.RewriteOutgoing(storedVideo, helper)
			Expect(err).To(MatchError(ContainSubstring("no renditions")))
		})

		It("stamps user content", func() {
			scanner := &contentfakes.FakeUserContentScanner{}
			scanner.ScanStub = func(f *fragment.Fragment) []usercontent.Match {
				return []usercontent.Match{{
					Node:   f.Select("object")[0],
					Marker: usercontent.Marker{Width: "100", Height: "50", Snippet: "s", Signature: "h"},
				}}
			}
			processor = content.NewProcessor(content.WithUserContentScanner(scanner))
			out, err := processor.RewriteOutgoing(`<object class="movie"></object>`, helper)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<object class="instructure_user_content movie" data-uc_width="100" data-uc_height="50" data-uc_snippet="s" data-uc_sig="h"></object>`))
		})

		It("stamps nodes reported twice once", func() {
			scanner := &contentfakes.FakeUserContentScanner{}
			scanner.ScanStub = func(f *fragment.Fragment) []usercontent.Match {
				object := f.Select("object")[0]
				return []usercontent.Match{
					{Node: object, Marker: usercontent.Marker{Width: "1", Height: "1", Snippet: "a", Signature: "b"}},
					{Node: object, Marker: usercontent.Marker{Width: "2", Height: "2", Snippet: "c", Signature: "d"}},
				}
			}
			processor = content.NewProcessor(content.WithUserContentScanner(scanner))
			out, err := processor.RewriteOutgoing(`<object></object>`, helper)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<object class="instructure_user_content" data-uc_width="1" data-uc_height="1" data-uc_snippet="a" data-uc_sig="b"></object>`))
		})

		It("lets later steps see the media elements built before", func() {
			h, err := urlhelper.New("https", "lms.example")
			Expect(err).NotTo(HaveOccurred())
			scanner := &contentfakes.FakeUserContentScanner{}
			scanner.ScanStub = func(f *fragment.Fragment) []usercontent.Match {
				videos := f.Select("video")
				Expect(videos).To(HaveLen(1))
				return []usercontent.Match{{Node: videos[0], Marker: usercontent.Marker{Width: "1px", Height: "2px", Snippet: "s", Signature: "h"}}}
			}
			processor = content.NewProcessor(content.WithUserContentScanner(scanner))
			out, err := processor.RewriteOutgoing(storedVideo, relativeSources{h})
			Expect(err).NotTo(HaveOccurred())
			Expect(scanner.ScanCallCount()).To(Equal(1))
			f := fragment.Parse(out)
			video := f.Select("video")[0]
			Expect(fragment.AttrValue(video, "class")).To(Equal("instructure_user_content instructure_inline_media_comment"))
			Expect(fragment.AttrValue(video, "data-uc_width")).To(Equal("1px"))
			Expect(fragment.AttrValue(f.Select("video > source")[0], "src")).To(Equal("https://lms.example/media/m1.mp4"))
		})

		It("stamps user content without class", func() {
			processor = content.NewProcessor(content.WithUserContentScanner(usercontent.NewScanner([]byte("k"))))
			out, err := processor.RewriteOutgoing(`<embed src="https://x/y">`, helper)
			Expect(err).NotTo(HaveOccurred())
			n := fragment.Parse(out).Select("embed")[0]
			Expect(fragment.AttrValue(n, "class")).To(Equal("instructure_user_content"))
			Expect(fragment.AttrValue(n, "data-uc_width")).To(Equal(usercontent.DefaultWidth))
			Expect(fragment.AttrValue(n, "data-uc_sig")).To(HaveLen(40))
		})

		It("replaces equation alt text with MathML", func() {
			converter := &contentfakes.FakeMathMLConverter{}
			converter.ConvertReturns("<math>x</math>")
			processor = content.NewProcessor(content.WithMathMLConverter(converter))
			out, err := processor.RewriteOutgoing(`<img class="equation_image" alt="x" src="https://lms/eq.png">`, helper)
			Expect(err).NotTo(HaveOccurred())
			img := fragment.Parse(out).Select("img")[0]
			_, hasAlt := fragment.Attr(img, "alt")
			Expect(hasAlt).To(BeFalse())
			Expect(fragment.AttrValue(img, "data-mathml")).To(Equal("<math>x</math>"))
			Expect(converter.ConvertArgsForCall(0)).To(Equal("x"))
		})

		It("applies MathML to a single image", func() {
			converter := &contentfakes.FakeMathMLConverter{}
			converter.ConvertReturns("<math>x</math>")
			processor = content.NewProcessor(content.WithMathMLConverter(converter))
			img := fragment.Parse(`<img alt="x" src="/eq.png">`).Elements()[0]
			Expect(processor.ApplyMathML(img)).To(BeTrue())
			Expect(fragment.AttrValue(img, "data-mathml")).To(Equal("<math>x</math>"))
			_, hasAlt := fragment.Attr(img, "alt")
			Expect(hasAlt).To(BeFalse())
			Expect(processor.ApplyMathML(img)).To(BeFalse())
			Expect(converter.ConvertCallCount()).To(Equal(1))
		})

		It("applies no MathML without converter", func() {
			processor = content.NewProcessor(content.WithMathMLConverter(nil))
			img := fragment.Parse(`<img class="equation_image" alt="x">`).Elements()[0]
			Expect(processor.ApplyMathML(img)).To(BeFalse())
			Expect(fragment.AttrValue(img, "alt")).To(Equal("x"))
		})

		DescribeTable("keeps equations that cannot be converted",
			func(in string, conversion string, calls int) {
				converter := &contentfakes.FakeMathMLConverter{}
				converter.ConvertReturns(conversion)
				processor = content.NewProcessor(content.WithMathMLConverter(converter))
				out, err := processor.RewriteOutgoing(in, helper)
				Expect(err).NotTo(HaveOccurred())
				Expect(out).To(Equal(in))
				Expect(converter.ConvertCallCount()).To(Equal(calls))
			},
			Entry("empty alt", `<img class="equation_image" alt=""/>`, "<math/>", 0),
			Entry("blank alt", `<img class="equation_image" alt="  "/>`, "<math/>", 0),
			Entry("blank conversion", `<img class="equation_image" alt="\foo"/>`, " ", 1),
		)

		It("rewrites whitelisted URL attributes only", func() {
			out, err := processor.RewriteOutgoing(`<p data-x="/y"><a href="/x" data-x="/y">x</a></p>`, helper)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal(`<p data-x="/y"><a href="/x" data-x="/y">x</a></p>`))
			Expect(helper.RewriteAPIURLsCallCount()).To(Equal(1))
			n, attrs := helper.RewriteAPIURLsArgsForCall(0)
			Expect(n.Data).To(Equal("a"))
			Expect(attrs).To(Equal(sanitize.URLAttributes()["a"]))
		})

		It("makes relative URLs absolute", func() {
			h, err := urlhelper.New("https", "lms.example")
			Expect(err).NotTo(HaveOccurred())
			out, err := processor.RewriteOutgoing(`<a href="/courses/1/pages/intro" data-x="/y">x</a><img src="//cdn/x.png">`, h)
			Expect(err).NotTo(HaveOccurred())
			f := fragment.Parse(out)
			a := f.Select("a")[0]
			Expect(fragment.AttrValue(a, "href")).To(Equal("https://lms.example/courses/1/pages/intro"))
			Expect(fragment.AttrValue(a, "data-x")).To(Equal("/y"))
			Expect(fragment.AttrValue(a, urlhelper.APIReturnTypeAttr)).To(Equal("Page"))
			Expect(fragment.AttrValue(f.Select("img")[0], "src")).To(Equal("//cdn/x.png"))
		})

		It("fails when URLs cannot be rewritten", func() {
			helper.RewriteAPIURLsReturns(errors.New("bad host"))
			_, err := processor.RewriteOutgoing(`<img src="/x.png">`, helper)
			Expect(err).To(MatchError(ContainSubstring("bad host")))
		})
	})
})

var _ = Describe("defaults", func() {
	It("processes incoming content with the default processor", func() {
		Expect(content.ProcessIncoming(`<a href="/courses/1/files/2?verifier=v">x</a>`)).To(Equal(`<a href="/courses/1/files/2">x</a>`))
	})

	It("rewrites outgoing content with the default processor", func() {
		helper := &contentfakes.FakeURLHelper{}
		out, err := content.RewriteOutgoing(`<p>x</p>`, helper)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`<p>x</p>`))
	})
})
