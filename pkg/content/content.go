// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package content

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gardener/richcontent/pkg/fragment"
	"github.com/gardener/richcontent/pkg/link"
	"github.com/gardener/richcontent/pkg/mediacomment"
	"github.com/gardener/richcontent/pkg/metrics"
	"github.com/gardener/richcontent/pkg/sanitize"
	"github.com/gardener/richcontent/pkg/usercontent"
	"golang.org/x/net/html"
	"k8s.io/klog/v2"
)

const (
	// KindLink counts corrected link attributes
	KindLink = "link"
	// KindMediaAnchor counts media comments converted to their storage form
	KindMediaAnchor = "media_anchor"
	// KindMediaHTML5 counts media comments converted to HTML5 media elements
	KindMediaHTML5 = "media_html5"
	// KindUserContent counts annotated user content elements
	KindUserContent = "user_content"
	// KindMathML counts equation images annotated with MathML
	KindMathML = "mathml"
)

const (
	userContentClass      = "instructure_user_content"
	incomingMediaSelector = mediacomment.Selector
	outgoingMediaSelector = "a." + mediacomment.MarkerClass
)

var (
	incomingTrigger = regexp.MustCompile(`verifier=|['"]/files|` + mediacomment.MarkerClass)
	linkAttributes  = []string{"href", "src"}
)

// Processor rewrites HTML fragments between their storage and their delivery form
type Processor struct {
	corrector     link.Corrector
	userContent   UserContentScanner
	equations     EquationScanner
	mathml        MathMLConverter
	urlAttributes map[string][]string
}

// Option configures a Processor
type Option func(*Processor)

// WithCorrector sets the corrector applied to incoming links
func WithCorrector(c link.Corrector) Option {
	return func(p *Processor) {
		p.corrector = c
	}
}

// WithUserContentScanner enables the user content annotation of outgoing content
func WithUserContentScanner(s UserContentScanner) Option {
	return func(p *Processor) {
		p.userContent = s
	}
}

// WithEquationScanner sets the scanner for equation images, nil disables the MathML step
func WithEquationScanner(s EquationScanner) Option {
	return func(p *Processor) {
		p.equations = s
	}
}

// WithMathMLConverter sets the converter for equation images, nil disables the MathML step
func WithMathMLConverter(c MathMLConverter) Option {
	return func(p *Processor) {
		p.mathml = c
	}
}

// NewProcessor creates a Processor
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		corrector:     link.New(),
		equations:     usercontent.EquationScanner{},
		mathml:        usercontent.MathML{},
		urlAttributes: sanitize.URLAttributes(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// MightNeedModification reports whether incoming content can contain anything
// ProcessIncoming rewrites
func (p *Processor) MightNeedModification(s string) bool {
	return incomingTrigger.MatchString(s)
}

// ProcessIncoming normalizes user submitted HTML into its storage form
func (p *Processor) ProcessIncoming(s string) string {
	if strings.TrimSpace(s) == "" {
		metrics.Fragment(metrics.Incoming, metrics.PathEmpty)
		return s
	}
	if !p.MightNeedModification(s) {
		metrics.Fragment(metrics.Incoming, metrics.PathFast)
		return s
	}
	metrics.Fragment(metrics.Incoming, metrics.PathParsed)
	defer metrics.ObserveDuration(metrics.Incoming, time.Now())

	f := fragment.Parse(s)
	metrics.Rewrites(KindLink, p.correctLinks(f))
	plan := planMediaComments(f, incomingMediaSelector, func(t *mediacomment.Tag) (*html.Node, error) {
		return t.AsAnchorNode(), nil
	})
	// anchor nodes are built without errors
	n, _ := fragment.Apply(plan)
	metrics.Rewrites(KindMediaAnchor, n)
	return f.String()
}

// RewriteOutgoing expands stored HTML into the form delivered to clients
func (p *Processor) RewriteOutgoing(s string, helper URLHelper) (string, error) {
	if strings.TrimSpace(s) == "" {
		metrics.Fragment(metrics.Outgoing, metrics.PathEmpty)
		return s, nil
	}
	metrics.Fragment(metrics.Outgoing, metrics.PathParsed)
	defer metrics.ObserveDuration(metrics.Outgoing, time.Now())

	f := fragment.Parse(s)
	plan := planMediaComments(f, outgoingMediaSelector, func(t *mediacomment.Tag) (*html.Node, error) {
		return t.AsHTML5Node(helper)
	})
	n, err := fragment.Apply(plan)
	metrics.Rewrites(KindMediaHTML5, n)
	if err != nil {
		return "", fmt.Errorf("failed to rewrite media comments: %w", err)
	}
	metrics.Rewrites(KindUserContent, p.annotateUserContent(f))
	metrics.Rewrites(KindMathML, p.annotateEquations(f))
	if err = p.rewriteURLs(f, helper); err != nil {
		return "", err
	}
	return f.String(), nil
}

func (p *Processor) correctLinks(f *fragment.Fragment) int {
	var count int
	for _, e := range f.Elements() {
		for _, attr := range linkAttributes {
			val, ok := fragment.Attr(e, attr)
			if !ok {
				continue
			}
			if corrected := p.corrector.Correct(val); corrected != val {
				klog.V(6).Infof("corrected %s %q to %q", attr, val, corrected)
				fragment.SetAttr(e, attr, corrected)
				count++
			}
		}
	}
	return count
}

func planMediaComments(f *fragment.Fragment, selector string, build func(*mediacomment.Tag) (*html.Node, error)) []fragment.Replacement {
	c := &classifier{}
	var plan []fragment.Replacement
	for _, n := range f.Select(selector) {
		switch k := c.classify(n).(type) {
		case MediaCommentNode:
			tag := k.Tag
			plan = append(plan, fragment.Replacement{
				Old:   n,
				Build: func() (*html.Node, error) { return build(tag) },
			})
		default:
			klog.V(6).Infof("skipping media comment %s without media id", n.Data)
		}
	}
	return plan
}
