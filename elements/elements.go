// Package elements defines the closed set of element kinds this module can
// construct, together with the capability interfaces they serve. Kinds
// register themselves against registry.Default in a fixed order; that order
// is the resolution order for capability lookups.
package elements

import "github.com/abraham-situmorang/AngleSharp/dom"

// Paragraph is the capability of textual paragraph elements.
type Paragraph interface {
	dom.Node
	Text() string
}

// Heading is the capability of section heading elements.
type Heading interface {
	dom.Node
	Level() int
}

// Anchor is the capability of hyperlink elements.
type Anchor interface {
	dom.Node
	Href() string
	SetHref(string)
}

// Media is the capability shared by embedded media elements. It has no
// directly constructible kind of its own; resolution lands on the first
// concrete kind that declares it.
type Media interface {
	dom.Node
	Source() string
}

// Image is the capability of image elements.
type Image interface {
	Media
	AltText() string
}
