package dom

import (
	"iter"

	"golang.org/x/net/html"
)

// Descendants returns the nodes under n in document order, excluding n
// itself. The sequence is lazy; stopping early stops the walk.
func Descendants(n Node) iter.Seq[Node] {
	if n == nil {
		panic("dom: descendants of nil node")
	}
	doc := n.OwnerDocument()
	root := n.HTMLNode()
	return func(yield func(Node) bool) {
		var walk func(*html.Node) bool
		walk = func(h *html.Node) bool {
			for c := h.FirstChild; c != nil; c = c.NextSibling {
				if !yield(wrapFor(doc, c)) {
					return false
				}
				if !walk(c) {
					return false
				}
			}
			return true
		}
		walk(root)
	}
}

// Ancestors returns the chain of parents of n, nearest first.
func Ancestors(n Node) iter.Seq[Node] {
	if n == nil {
		panic("dom: ancestors of nil node")
	}
	doc := n.OwnerDocument()
	start := n.HTMLNode()
	return func(yield func(Node) bool) {
		for h := start.Parent; h != nil; h = h.Parent {
			if !yield(wrapFor(doc, h)) {
				return
			}
		}
	}
}

// FilterAs narrows seq to the nodes satisfying capability T, preserving the
// source order. The result is lazily composed.
func FilterAs[T any](seq iter.Seq[Node]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range seq {
			if t, ok := n.(T); ok {
				if !yield(t) {
					return
				}
			}
		}
	}
}

// DescendantsAs is Descendants composed with FilterAs.
func DescendantsAs[T any](n Node) iter.Seq[T] {
	return FilterAs[T](Descendants(n))
}

// AncestorsAs is Ancestors composed with FilterAs.
func AncestorsAs[T any](n Node) iter.Seq[T] {
	return FilterAs[T](Ancestors(n))
}

// First returns the first element of seq, or ok=false for an empty sequence.
// Absence is a normal result, not an error.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}
