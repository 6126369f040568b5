package elements

import (
	"fmt"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/abraham-situmorang/AngleSharp/dom"
)

var headingAtoms = [...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// HeadingElement is the concrete <h1>..<h6> kind.
type HeadingElement struct {
	dom.BaseNode
}

// NewHeading constructs a detached heading. Levels outside 1..6 are clamped.
func NewHeading(level int) *HeadingElement {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return &HeadingElement{dom.NewElementNode(headingAtoms[level-1])}
}

func wrapHeading(h *html.Node) *HeadingElement {
	return &HeadingElement{dom.NewBaseNode(h)}
}

// Level returns the heading level, 1..6, derived from the tag name.
func (e *HeadingElement) Level() int {
	name := e.HTMLNode().Data
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 1
}

func (e *HeadingElement) String() string {
	return fmt.Sprintf("h%d: %s", e.Level(), e.TextContent())
}
