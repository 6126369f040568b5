package dom

import (
	"fmt"
	"iter"

	"github.com/andybalholm/cascadia"
)

// QueryUnder returns the nodes below n matching the selector, in document
// order. Selector compilation and matching are cascadia's job; a compile
// failure is caller input error and is returned, not swallowed.
func QueryUnder(n Node, selector string) (iter.Seq[Node], error) {
	if n == nil {
		panic("dom: query under nil node")
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("dom: bad selector %q: %w", selector, err)
	}
	return func(yield func(Node) bool) {
		for c := range Descendants(n) {
			if sel(c.HTMLNode()) {
				if !yield(c) {
					return
				}
			}
		}
	}, nil
}

// Query returns the nodes in the document matching the selector.
func (d *Document) Query(selector string) (iter.Seq[Node], error) {
	return QueryUnder(d.AsNode(), selector)
}

// QueryAs narrows a document query to capability T.
func QueryAs[T any](d *Document, selector string) (iter.Seq[T], error) {
	seq, err := d.Query(selector)
	if err != nil {
		return nil, err
	}
	return FilterAs[T](seq), nil
}
