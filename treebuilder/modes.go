package treebuilder

// InsertionMode identifies one of the tree construction algorithm's named
// states. The tree builder's dispatch loop switches on this value for every
// token it processes.
//
// See: https://html.spec.whatwg.org/multipage/parsing.html#insertion-mode
type InsertionMode int

const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
	InHead
	InHeadNoscript
	AfterHead
	InBody
	Text
	InTable
	InTableText
	InCaption
	InColumnGroup
	InTableBody
	InRow
	InCell
	InSelect
	InSelectInTable
	InTemplate
	AfterBody
	InFrameset
	AfterFrameset
	AfterAfterBody
	AfterAfterFrameset
)

// String renders the mode using the spec's own lowercase, space-separated
// naming convention, which is what error messages and debug traces use.
func (m InsertionMode) String() string {
	switch m {
	case Initial:
		return "initial"
	case BeforeHTML:
		return "before html"
	case BeforeHead:
		return "before head"
	case InHead:
		return "in head"
	case InHeadNoscript:
		return "in head noscript"
	case AfterHead:
		return "after head"
	case InBody:
		return "in body"
	case Text:
		return "text"
	case InTable:
		return "in table"
	case InTableText:
		return "in table text"
	case InCaption:
		return "in caption"
	case InColumnGroup:
		return "in column group"
	case InTableBody:
		return "in table body"
	case InRow:
		return "in row"
	case InCell:
		return "in cell"
	case InSelect:
		return "in select"
	case InSelectInTable:
		return "in select in table"
	case InTemplate:
		return "in template"
	case AfterBody:
		return "after body"
	case InFrameset:
		return "in frameset"
	case AfterFrameset:
		return "after frameset"
	case AfterAfterBody:
		return "after after body"
	case AfterAfterFrameset:
		return "after after frameset"
	default:
		return "unknown"
	}
}

// FragmentContext describes the context element supplied to fragment
// parsing (the innerHTML-style entry point), which seeds the open-elements
// stack and picks the initial insertion mode instead of starting from
// Initial.
type FragmentContext struct {
	// TagName is the context element's local name (e.g. "div", "tr", "body").
	TagName string

	// Namespace is the context element's namespace: "html" unless the
	// fragment is being parsed in an SVG or MathML context.
	Namespace string
}

// NewFragmentContext builds a FragmentContext for an HTML-namespace element,
// the common case for fragment parsing.
func NewFragmentContext(tagName string) FragmentContext {
	return FragmentContext{TagName: tagName, Namespace: "html"}
}
