package constants

// Scope terminators for the tree builder.
// These define which elements terminate various scopes during parsing.

// commonScopeElements are the elements shared by the default/list-item/button
// scope definitions: the "has an element in scope" family differs only in a
// handful of extra terminators layered on top of this base set.
var commonScopeElements = []string{
	"applet", "caption", "html", "table", "td", "th", "marquee", "object", "template",
	// MathML elements
	"mi", "mo", "mn", "ms", "mtext", "annotation-xml",
	// SVG elements
	"foreignObject", "desc", "title",
}

func scopeSet(extra ...string) map[string]bool {
	set := make(map[string]bool, len(commonScopeElements)+len(extra))
	for _, e := range commonScopeElements {
		set[e] = true
	}
	for _, e := range extra {
		set[e] = true
	}
	return set
}

// DefaultScope elements terminate the default scope.
var DefaultScope = scopeSet()

// ListItemScope elements terminate list item scope.
var ListItemScope = scopeSet("ol", "ul")

// ButtonScope elements terminate button scope.
var ButtonScope = scopeSet("button")

// TableScope elements terminate table scope.
var TableScope = map[string]bool{
	"html":     true,
	"table":    true,
	"template": true,
}

// TableBodyScope elements terminate table body scope.
var TableBodyScope = map[string]bool{
	"html":     true,
	"table":    true,
	"template": true,
	"tbody":    true,
	"tfoot":    true,
	"thead":    true,
}

// TableRowScope elements terminate table row scope.
var TableRowScope = map[string]bool{
	"html":     true,
	"table":    true,
	"template": true,
	"tbody":    true,
	"tfoot":    true,
	"thead":    true,
	"tr":       true,
}

// SelectScope elements are NOT scope terminators for select (everything except these).
var SelectScope = map[string]bool{
	"optgroup": true,
	"option":   true,
}
