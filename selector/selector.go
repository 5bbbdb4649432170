// Package selector implements CSS selector parsing and matching over the
// dom package's element tree.
package selector

import (
	"github.com/html5go/html5/dom"
)

// Selector represents a parsed CSS selector that can test elements for a
// match and round-trip back to its original text.
type Selector interface {
	// Match returns true if the element matches this selector.
	Match(element *dom.Element) bool

	// String returns the original selector string.
	String() string
}

// parsedSelector adapts a selector AST node (from ast.go/parser.go) to the
// Selector interface, keeping the source text around for String().
type parsedSelector struct {
	ast  selectorAST
	text string
}

func (p parsedSelector) Match(element *dom.Element) bool {
	return matchAST(element, p.ast)
}

func (p parsedSelector) String() string {
	return p.text
}

// Parse parses a CSS selector string into a reusable Selector.
func Parse(selector string) (Selector, error) {
	toks, err := newTokenizer(selector).tokenize()
	if err != nil {
		return nil, err
	}
	ast, err := newParser(toks, selector).parse()
	if err != nil {
		return nil, err
	}
	return parsedSelector{ast: ast, text: selector}, nil
}

// Match returns every element in root's subtree, root included, that
// matches the selector, in document order.
func Match(root *dom.Element, selector string) ([]*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	var results []*dom.Element
	collectMatches(root, sel, &results)
	return results, nil
}

// MatchFirst returns the first element in root's subtree, root included,
// that matches the selector, or nil if none does.
func MatchFirst(root *dom.Element, selector string) (*dom.Element, error) {
	sel, err := Parse(selector)
	if err != nil {
		return nil, err
	}

	return firstMatch(root, sel), nil
}

func collectMatches(elem *dom.Element, sel Selector, results *[]*dom.Element) {
	if sel.Match(elem) {
		*results = append(*results, elem)
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			collectMatches(childElem, sel, results)
		}
	}
}

func firstMatch(elem *dom.Element, sel Selector) *dom.Element {
	if sel.Match(elem) {
		return elem
	}
	for _, child := range elem.Children() {
		if childElem, ok := child.(*dom.Element); ok {
			if found := firstMatch(childElem, sel); found != nil {
				return found
			}
		}
	}
	return nil
}

// init wires this package's Match/MatchFirst into dom.Element.Query and
// QueryFirst, which otherwise have no way to reach a CSS engine without
// importing it directly and creating a dom<->selector import cycle.
func init() {
	dom.SetSelectorMatch(Match)
	dom.SetSelectorMatchFirst(MatchFirst)
}
