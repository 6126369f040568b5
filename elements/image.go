package elements

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abraham-situmorang/AngleSharp/dom"
)

// ImageElement is the concrete <img> kind.
type ImageElement struct {
	dom.BaseNode
}

// NewImage constructs a detached image.
func NewImage() *ImageElement {
	return &ImageElement{dom.NewElementNode(atom.Img)}
}

func wrapImage(h *html.Node) *ImageElement {
	return &ImageElement{dom.NewBaseNode(h)}
}

// Source returns the image source reference.
func (i *ImageElement) Source() string { return i.Attr("src") }

// AltText returns the image's alternative text.
func (i *ImageElement) AltText() string { return i.Attr("alt") }
