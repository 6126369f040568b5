// Package dom is the convenience surface over the node tree: document
// ownership bookkeeping, lazy traversal, typed views, and selector queries.
// The tree itself is golang.org/x/net/html's link structure; this package
// never reimplements its mutation mechanics.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a participant in a document tree. Concrete node kinds embed
// BaseNode to satisfy it; the unexported method keeps ownership assignment
// inside this package.
type Node interface {
	// HTMLNode returns the underlying parse-tree node.
	HTMLNode() *html.Node

	// OwnerDocument returns the owning document, or nil for a detached node.
	OwnerDocument() *Document

	setOwner(d *Document)
}

// BaseNode carries the tree bookkeeping shared by all node kinds.
type BaseNode struct {
	h     *html.Node
	owner *Document
}

// NewBaseNode wraps an existing parse-tree node.
func NewBaseNode(h *html.Node) BaseNode {
	if h == nil {
		panic("dom: nil html node")
	}
	return BaseNode{h: h}
}

// NewElementNode builds a detached element node with the given tag.
func NewElementNode(tag atom.Atom) BaseNode {
	return BaseNode{h: &html.Node{
		Type:     html.ElementNode,
		DataAtom: tag,
		Data:     tag.String(),
	}}
}

// HTMLNode returns the underlying parse-tree node.
func (b *BaseNode) HTMLNode() *html.Node { return b.h }

// OwnerDocument returns the owning document, or nil for a detached node.
func (b *BaseNode) OwnerDocument() *Document { return b.owner }

func (b *BaseNode) setOwner(d *Document) { b.owner = d }

// Attr returns the value of the named attribute, or "" when absent.
func (b *BaseNode) Attr(name string) string {
	for _, a := range b.h.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets or replaces the named attribute.
func (b *BaseNode) SetAttr(name, val string) {
	for i, a := range b.h.Attr {
		if a.Key == name {
			b.h.Attr[i].Val = val
			return
		}
	}
	b.h.Attr = append(b.h.Attr, html.Attribute{Key: name, Val: val})
}

// TextContent concatenates the text of the node and all its descendants.
func (b *BaseNode) TextContent() string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(b.h)
	return sb.String()
}

// genericNode is the untyped view of tree nodes no registered element kind
// has claimed. Traversal hands these out for text nodes, comments, and
// unregistered elements.
type genericNode struct {
	BaseNode
}

// wrapFor returns the typed wrapper bound to h in doc, or an untyped view.
func wrapFor(doc *Document, h *html.Node) Node {
	if doc != nil {
		if n, ok := doc.nodes[h]; ok {
			return n
		}
	}
	return &genericNode{BaseNode{h: h, owner: doc}}
}
