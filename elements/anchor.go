package elements

import (
	"net/url"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abraham-situmorang/AngleSharp/dom"
)

// AnchorElement is the concrete <a> kind. Anchors are constructed against a
// document so relative hrefs resolve from its base URL.
type AnchorElement struct {
	dom.BaseNode
	base string
}

// NewAnchorIn constructs an anchor for doc, capturing its base URL.
func NewAnchorIn(doc *dom.Document) *AnchorElement {
	return &AnchorElement{
		BaseNode: dom.NewElementNode(atom.A),
		base:     doc.BaseURL(),
	}
}

func wrapAnchor(h *html.Node) *AnchorElement {
	return &AnchorElement{BaseNode: dom.NewBaseNode(h)}
}

// Href returns the hyperlink reference, resolved against the document base
// when one is known. The raw attribute is returned when resolution fails.
func (a *AnchorElement) Href() string {
	href := a.Attr("href")
	base := a.base
	if doc := a.OwnerDocument(); doc != nil && doc.BaseURL() != "" {
		base = doc.BaseURL()
	}
	if base == "" || href == "" {
		return href
	}
	bu, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return bu.ResolveReference(ref).String()
}

// SetHref sets the raw hyperlink reference attribute.
func (a *AnchorElement) SetHref(v string) { a.SetAttr("href", v) }
