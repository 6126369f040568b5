// Package parse exposes the entry points that turn raw text into the trees
// the rest of the module operates on. Markup parsing is delegated to
// golang.org/x/net/html and style parsing to douceur; this package only binds
// the results into documents.
package parse

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/abraham-situmorang/AngleSharp/config"
	"github.com/abraham-situmorang/AngleSharp/dom"
	"github.com/abraham-situmorang/AngleSharp/registry"
)

type settings struct {
	reg     *registry.Registry
	baseURL string
}

// Option adjusts how a document is assembled around the parsed tree.
type Option func(*settings)

// WithRegistry selects the capability registry used to bind typed element
// wrappers. Defaults to registry.Default.
func WithRegistry(r *registry.Registry) Option {
	return func(s *settings) {
		if r != nil {
			s.reg = r
		}
	}
}

// WithBaseURL sets the document base used for reference resolution.
func WithBaseURL(u string) Option {
	return func(s *settings) { s.baseURL = u }
}

// WithConfig applies parser settings from a loaded configuration.
func WithConfig(c config.ParserConfig) Option {
	return func(s *settings) {
		if c.BaseURL != "" {
			s.baseURL = c.BaseURL
		}
	}
}

// HTML parses markup into a document and binds a typed wrapper for every
// element whose tag is registered. The returned document owns all bound
// wrappers.
func HTML(text string, opts ...Option) (*dom.Document, error) {
	s := settings{reg: registry.Default()}
	for _, o := range opts {
		o(&s)
	}

	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("parse: markup: %w", err)
	}

	doc := dom.FromTree(root)
	if s.baseURL != "" {
		doc.SetBaseURL(s.baseURL)
	}
	bindTyped(doc, s.reg)
	return doc, nil
}

// bindTyped walks the fresh tree and adopts a typed wrapper for every
// element node whose tag has a registered kind.
func bindTyped(doc *dom.Document, reg *registry.Registry) {
	for n := range dom.Descendants(doc.AsNode()) {
		h := n.HTMLNode()
		if h.Type != html.ElementNode {
			continue
		}
		d, ok := reg.ForTag(h.Data)
		if !ok || d.Wrap == nil {
			continue
		}
		if _, bound := doc.NodeFor(h); bound {
			continue
		}
		doc.Adopt(d.Wrap(h))
	}
}
