package parse

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// Stylesheet is the parsed style tree, as produced by douceur.
type Stylesheet = css.Stylesheet

// CSS parses a stylesheet. Pure delegation to the style parsing collaborator.
func CSS(text string) (*Stylesheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse: style: %w", err)
	}
	return sheet, nil
}
