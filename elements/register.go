package elements

import (
	"golang.org/x/net/html"

	"github.com/abraham-situmorang/AngleSharp/dom"
	"github.com/abraham-situmorang/AngleSharp/registry"
)

// Registration order is resolution order. The abstract media entry precedes
// the image kind, so Media lookups skip it and land on the first instantiable
// descriptor.
func init() {
	registry.MustRegister(&registry.Descriptor{
		Name:         "paragraph",
		Tags:         []string{"p"},
		Capabilities: []registry.Capability{registry.Cap[Paragraph]()},
		New:          func() dom.Node { return NewParagraph() },
		Wrap:         func(h *html.Node) dom.Node { return wrapParagraph(h) },
	})
	registry.MustRegister(&registry.Descriptor{
		Name:         "heading",
		Tags:         []string{"h1", "h2", "h3", "h4", "h5", "h6"},
		Capabilities: []registry.Capability{registry.Cap[Heading]()},
		New:          func() dom.Node { return NewHeading(1) },
		Wrap:         func(h *html.Node) dom.Node { return wrapHeading(h) },
	})
	registry.MustRegister(&registry.Descriptor{
		Name:         "anchor",
		Tags:         []string{"a"},
		Capabilities: []registry.Capability{registry.Cap[Anchor]()},
		NewIn:        func(d *dom.Document) dom.Node { return NewAnchorIn(d) },
		Wrap:         func(h *html.Node) dom.Node { return wrapAnchor(h) },
	})
	registry.MustRegister(&registry.Descriptor{
		Name:         "media",
		Abstract:     true,
		Capabilities: []registry.Capability{registry.Cap[Media]()},
	})
	registry.MustRegister(&registry.Descriptor{
		Name:         "image",
		Tags:         []string{"img"},
		Capabilities: []registry.Capability{registry.Cap[Image](), registry.Cap[Media]()},
		New:          func() dom.Node { return NewImage() },
		NewIn:        func(*dom.Document) dom.Node { return NewImage() },
		Wrap:         func(h *html.Node) dom.Node { return wrapImage(h) },
	})
}
