package registry

import (
	"go.uber.org/zap"

	"github.com/abraham-situmorang/AngleSharp/dom"
)

// construct runs d's constructors in precedence order: no-argument first,
// then document-argument. Neither available, or a nil result, means no
// instance.
func (r *Registry) construct(d *Descriptor, doc *dom.Document) (dom.Node, bool) {
	var n dom.Node
	switch {
	case d.New != nil:
		n = d.New()
	case d.NewIn != nil:
		n = d.NewIn(doc)
	}
	if n == nil {
		return nil, false
	}
	return n, true
}

// Create instantiates d and adopts the new node into doc. A descriptor with
// no usable constructor yields ok=false; the document is left untouched and
// no partially constructed node escapes. A nil descriptor or document is a
// caller contract violation and panics.
func (r *Registry) Create(d *Descriptor, doc *dom.Document) (dom.Node, bool) {
	if d == nil {
		panic("registry: create with nil descriptor")
	}
	if doc == nil {
		panic("registry: create with nil document")
	}
	n, ok := r.construct(d, doc)
	if !ok {
		return nil, false
	}
	doc.Adopt(n)
	return n, true
}

// New resolves capability T and creates an instance owned by doc. ok=false
// means no registered kind can serve T; the document is left unchanged. On
// success the instance's owner document is doc, and the instance has no tree
// position yet.
func New[T any](r *Registry, doc *dom.Document) (T, bool) {
	var zero T
	if doc == nil {
		panic("registry: create with nil document")
	}

	d, ok := r.Resolve(Cap[T]())
	if !ok {
		return zero, false
	}
	n, ok := r.construct(d, doc)
	if !ok {
		return zero, false
	}
	t, ok := n.(T)
	if !ok {
		// Mis-registered descriptor: the constructed kind does not satisfy
		// the capability it declared. Checked before adoption so the
		// document stays untouched.
		r.logger.Warn("constructed kind does not satisfy resolved capability",
			zap.String("descriptor", d.Name),
			zap.Stringer("capability", Cap[T]()))
		return zero, false
	}
	doc.Adopt(n)
	return t, true
}
