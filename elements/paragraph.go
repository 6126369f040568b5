package elements

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abraham-situmorang/AngleSharp/dom"
)

// ParagraphElement is the concrete <p> kind.
type ParagraphElement struct {
	dom.BaseNode
}

// NewParagraph constructs a detached paragraph.
func NewParagraph() *ParagraphElement {
	return &ParagraphElement{dom.NewElementNode(atom.P)}
}

func wrapParagraph(h *html.Node) *ParagraphElement {
	return &ParagraphElement{dom.NewBaseNode(h)}
}

// Text returns the paragraph's concatenated text content.
func (p *ParagraphElement) Text() string { return p.TextContent() }
