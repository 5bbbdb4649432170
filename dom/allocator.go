package dom

import "strings"

const (
	elementChunkSize   = 128
	textChunkSize      = 256
	commentChunkSize   = 64
	doctypeChunkSize   = 32
	documentChunkSize  = 8
	fragmentChunkSize  = 64
	attributeChunkSize = 128
)

// arena hands out pointers into fixed-size chunks of T, refilling the chunk
// once it's exhausted. It trades the ability to free individual nodes for
// far fewer, larger allocations than one-node-at-a-time construction would
// make during tree building.
type arena[T any] struct {
	chunk []T
	at    int
	size  int
}

func newArena[T any](size int) arena[T] {
	return arena[T]{size: size}
}

func (a *arena[T]) next() *T {
	if a.at >= len(a.chunk) {
		a.chunk = make([]T, a.size)
		a.at = 0
	}
	v := &a.chunk[a.at]
	a.at++
	return v
}

// NodeAllocator provides arena-style allocation for DOM nodes.
// It reduces per-node allocations by handing out pointers from fixed-size chunks.
type NodeAllocator struct {
	elements   arena[Element]
	texts      arena[Text]
	comments   arena[Comment]
	doctypes   arena[DocumentType]
	documents  arena[Document]
	fragments  arena[DocumentFragment]
	attributes arena[Attributes]
}

// NewNodeAllocator creates a new allocator for DOM nodes.
func NewNodeAllocator() *NodeAllocator {
	return &NodeAllocator{
		elements:   newArena[Element](elementChunkSize),
		texts:      newArena[Text](textChunkSize),
		comments:   newArena[Comment](commentChunkSize),
		doctypes:   newArena[DocumentType](doctypeChunkSize),
		documents:  newArena[Document](documentChunkSize),
		fragments:  newArena[DocumentFragment](fragmentChunkSize),
		attributes: newArena[Attributes](attributeChunkSize),
	}
}

// NewDocument creates a new document node.
func (a *NodeAllocator) NewDocument() *Document {
	d := a.documents.next()
	d.baseNode = baseNode{}
	d.Doctype = nil
	d.QuirksMode = NoQuirks
	d.init(d)
	return d
}

// NewDocumentFragment creates a new document fragment.
func (a *NodeAllocator) NewDocumentFragment() *DocumentFragment {
	df := a.fragments.next()
	df.baseNode = baseNode{}
	df.init(df)
	return df
}

// NewElement creates a new HTML element with lowercase tag name.
func (a *NodeAllocator) NewElement(tagName string) *Element {
	e := a.elements.next()
	e.baseNode = baseNode{}
	e.TagName = strings.ToLower(tagName)
	e.Namespace = NamespaceHTML
	e.Attributes = a.newAttributes()
	e.TemplateContent = nil
	e.init(e)
	return e
}

// NewElementNS creates a new element with the given namespace.
func (a *NodeAllocator) NewElementNS(tagName, namespace string) *Element {
	e := a.elements.next()
	e.baseNode = baseNode{}
	e.TagName = tagName
	e.Namespace = namespace
	e.Attributes = a.newAttributes()
	e.TemplateContent = nil
	e.init(e)
	return e
}

// NewText creates a new text node.
func (a *NodeAllocator) NewText(data string) *Text {
	t := a.texts.next()
	t.leafNode = leafNode{}
	t.Data = data
	return t
}

// NewComment creates a new comment node.
func (a *NodeAllocator) NewComment(data string) *Comment {
	c := a.comments.next()
	c.leafNode = leafNode{}
	c.Data = data
	return c
}

// NewDocumentType creates a new DOCTYPE node.
func (a *NodeAllocator) NewDocumentType(name, publicID, systemID string) *DocumentType {
	dt := a.doctypes.next()
	dt.leafNode = leafNode{}
	dt.Name = name
	dt.PublicID = publicID
	dt.SystemID = systemID
	return dt
}

func (a *NodeAllocator) newAttributes() *Attributes {
	attr := a.attributes.next()
	attr.items = attr.items[:0]
	return attr
}
