// Package selector implements CSS selector parsing and matching.
package selector

// SelectorKind identifies the type of simple selector.
type SelectorKind int

const (
	KindTag       SelectorKind = iota // div, span, etc.
	KindUniversal                     // *
	KindID                            // #foo
	KindClass                         // .bar
	KindAttr                          // [attr], [attr="val"]
	KindPseudo                        // :first-child, :nth-child()
)

var selectorKindNames = map[SelectorKind]string{
	KindTag:       "Tag",
	KindUniversal: "Universal",
	KindID:        "ID",
	KindClass:     "Class",
	KindAttr:      "Attr",
	KindPseudo:    "Pseudo",
}

// String returns a string representation of the selector kind.
func (k SelectorKind) String() string {
	if name, ok := selectorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// AttrOperator represents attribute comparison operators.
type AttrOperator int

const (
	AttrExists      AttrOperator = iota // [attr]
	AttrEquals                          // [attr="val"]
	AttrIncludes                        // [attr~="val"] - word match
	AttrDashPrefix                      // [attr|="val"] - prefix match (hyphen-separated)
	AttrPrefixMatch                     // [attr^="val"] - starts with
	AttrSuffixMatch                     // [attr$="val"] - ends with
	AttrSubstring                       // [attr*="val"] - contains
)

var attrOperatorSymbols = map[AttrOperator]string{
	AttrExists:      "",
	AttrEquals:      "=",
	AttrIncludes:    "~=",
	AttrDashPrefix:  "|=",
	AttrPrefixMatch: "^=",
	AttrSuffixMatch: "$=",
	AttrSubstring:   "*=",
}

// String returns a string representation of the attribute operator.
func (op AttrOperator) String() string {
	if sym, ok := attrOperatorSymbols[op]; ok {
		return sym
	}
	return "?"
}

// Combinator represents the relationship between compound selectors.
type Combinator int

const (
	CombinatorNone       Combinator = iota // No combinator (first in chain)
	CombinatorDescendant                   // space (descendant)
	CombinatorChild                        // > (direct child)
	CombinatorAdjacent                     // + (adjacent sibling)
	CombinatorGeneral                      // ~ (general sibling)
)

var combinatorSymbols = map[Combinator]string{
	CombinatorNone:       "",
	CombinatorDescendant: " ",
	CombinatorChild:      ">",
	CombinatorAdjacent:   "+",
	CombinatorGeneral:    "~",
}

// String returns a string representation of the combinator.
func (c Combinator) String() string {
	if sym, ok := combinatorSymbols[c]; ok {
		return sym
	}
	return "?"
}

// SimpleSelector represents a single atomic selector.
type SimpleSelector struct {
	Kind     SelectorKind // Type of selector
	Name     string       // Tag name, ID, class name, attr name, or pseudo-class name
	Operator AttrOperator // For attribute selectors
	Value    string       // For attribute selectors or functional pseudo-class arguments
}

// specificity returns this simple selector's contribution to CSS
// specificity as (id, class-like, type) counts. Universal selectors and
// the negation pseudo-class itself contribute nothing; :not()'s argument
// is not scored here since it is matched structurally, not parsed as a
// nested SimpleSelector.
func (s SimpleSelector) specificity() (ids, classes, types int) {
	switch s.Kind {
	case KindID:
		return 1, 0, 0
	case KindClass, KindAttr, KindPseudo:
		return 0, 1, 0
	case KindTag:
		return 0, 0, 1
	default:
		return 0, 0, 0
	}
}

// CompoundSelector is a sequence of simple selectors (e.g., div.foo#bar).
// All simple selectors must match for the compound to match.
type CompoundSelector struct {
	Selectors []SimpleSelector
}

// ComplexPart represents one step in a complex selector chain.
type ComplexPart struct {
	Combinator Combinator
	Compound   CompoundSelector
}

// ComplexSelector chains compound selectors with combinators.
// Represented as a list of (combinator, compound) pairs where the first
// combinator is always CombinatorNone.
type ComplexSelector struct {
	Parts []ComplexPart
}

// Specificity computes the selector's CSS specificity as a 3-tuple
// (ID count, class/attribute/pseudo-class count, type count), following
// the standard CSS cascade ordering: compare ids first, then classes,
// then types.
func (c ComplexSelector) Specificity() (ids, classes, types int) {
	for _, part := range c.Parts {
		for _, simple := range part.Compound.Selectors {
			i, cl, t := simple.specificity()
			ids += i
			classes += cl
			types += t
		}
	}
	return ids, classes, types
}

// SelectorList represents comma-separated selectors.
// An element matches if it matches any selector in the list.
type SelectorList struct {
	Selectors []ComplexSelector
}

// selectorAST is a marker interface for parsed selector AST nodes.
type selectorAST interface {
	isSelectorAST()
}

func (ComplexSelector) isSelectorAST() {}
func (SelectorList) isSelectorAST()    {}
