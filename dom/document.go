package dom

import (
	"github.com/google/uuid"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abraham-situmorang/AngleSharp/events"
)

// EventAdopt is emitted on a document's event target each time a node is
// adopted into it. The event payload is the adopted Node.
const EventAdopt = "adopt"

// Document owns a tree. Ownership is tracked per node and is distinct from
// tree position: adopting a node does not splice it anywhere, and the
// html.Node link structure stays under caller control.
type Document struct {
	id      uuid.UUID
	root    *html.Node
	baseURL string
	nodes   map[*html.Node]Node
	bus     *events.Emitter
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return FromTree(&html.Node{Type: html.DocumentNode})
}

// FromTree wraps an existing parse tree in a document. Tree nodes stay
// untyped until a wrapper for them is adopted; see the parse package.
func FromTree(root *html.Node) *Document {
	if root == nil {
		panic("dom: nil tree root")
	}
	return &Document{
		id:    uuid.New(),
		root:  root,
		nodes: make(map[*html.Node]Node),
		bus:   events.NewEmitter(),
	}
}

// ID returns the document identity used for ownership bookkeeping.
func (d *Document) ID() uuid.UUID { return d.id }

// Root returns the document node at the top of the tree.
func (d *Document) Root() *html.Node { return d.root }

// AsNode returns the document itself as a traversable node.
func (d *Document) AsNode() Node { return wrapFor(d, d.root) }

// Body returns the tree's <body> element, or nil when it has none.
func (d *Document) Body() *html.Node {
	var body *html.Node
	var walk func(*html.Node) bool
	walk = func(h *html.Node) bool {
		if h.Type == html.ElementNode && h.DataAtom == atom.Body {
			body = h
			return false
		}
		for c := h.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(d.root)
	return body
}

// BaseURL returns the document base used for reference resolution.
func (d *Document) BaseURL() string { return d.baseURL }

// SetBaseURL sets the document base used for reference resolution.
func (d *Document) SetBaseURL(u string) { d.baseURL = u }

// Events returns the document's event target.
func (d *Document) Events() *events.Emitter { return d.bus }

// Subscribe registers h for events with the given name on the document.
func (d *Document) Subscribe(name string, h events.Handler) *events.Subscription {
	return d.bus.Subscribe(name, h)
}

// Unsubscribe removes a subscription made on the document.
func (d *Document) Unsubscribe(s *events.Subscription) { d.bus.Unsubscribe(s) }

// Adopt transfers ownership of n to d. Adoption is bookkeeping only: the node
// gains an owner document and a wrapper binding but no tree position.
// Re-adoption moves ownership away from the previous owner. Adopting an
// already-owned node is a no-op.
func (d *Document) Adopt(n Node) {
	if n == nil {
		panic("dom: adopt nil node")
	}
	if prev := n.OwnerDocument(); prev == d {
		return
	} else if prev != nil {
		delete(prev.nodes, n.HTMLNode())
	}
	n.setOwner(d)
	d.nodes[n.HTMLNode()] = n
	d.bus.Emit(events.Event{Name: EventAdopt, Payload: n})
}

// Owns reports whether n currently belongs to d.
func (d *Document) Owns(n Node) bool {
	return n != nil && n.OwnerDocument() == d
}

// NodeFor returns the wrapper bound to h, if any.
func (d *Document) NodeFor(h *html.Node) (Node, bool) {
	n, ok := d.nodes[h]
	return n, ok
}
