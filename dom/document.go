package dom

// QuirksMode records the document's quirks-mode classification, decided
// during DOCTYPE processing in the tree builder.
type QuirksMode int

const (
	NoQuirks      QuirksMode = iota // standards mode
	Quirks                          // quirks mode
	LimitedQuirks                   // almost-standards mode
)

// Document is the root-only node produced by parsing or synthesized
// empty. It owns at most one Doctype (tracked separately, not as an
// ordinary child) plus its top-level element children.
type Document struct {
	parentNode
	childSequence

	Doctype    *DocumentType
	QuirksMode QuirksMode
}

// NewDocument creates a new, empty document.
func NewDocument() *Document { return &Document{} }

func (d *Document) Type() NodeType   { return DocumentNode }
func (d *Document) NodeName() string { return "#document" }

func (d *Document) Clone(deep bool) Node {
	clone := &Document{QuirksMode: d.QuirksMode}
	if d.Doctype != nil {
		clone.Doctype = d.Doctype.Clone(false).(*DocumentType)
	}
	if deep {
		for _, child := range d.children {
			clone.rawAppend(cloneInto(child, clone))
		}
	}
	return clone
}

// DocumentElement returns the first Element child (the <html> root),
// or nil.
func (d *Document) DocumentElement() *Element {
	for _, child := range d.children {
		if el, ok := child.(*Element); ok {
			return el
		}
	}
	return nil
}

// Head returns the first <head> child of the document element, or nil.
func (d *Document) Head() *Element { return firstChildElementNamed(d.DocumentElement(), "head") }

// Body returns the first <body> child of the document element, or nil.
func (d *Document) Body() *Element { return firstChildElementNamed(d.DocumentElement(), "body") }

func firstChildElementNamed(parent *Element, local string) *Element {
	if parent == nil {
		return nil
	}
	for _, child := range parent.children {
		if el, ok := child.(*Element); ok && el.Local == local {
			return el
		}
	}
	return nil
}

// GetElementByID returns the first Element in the document whose id
// attribute equals id, in document order.
func (d *Document) GetElementByID(id string) *Element { return GetElementByID(d, id) }

// GetElementsByTagName returns every Element in the document matching
// name; "*" matches every element.
func (d *Document) GetElementsByTagName(name string) []*Element {
	return GetElementsByTagName(d, name)
}

// GetElementsByClassName returns every Element in the document whose
// classList contains every token in names.
func (d *Document) GetElementsByClassName(names string) []*Element {
	return GetElementsByClassName(d, names)
}

// QuerySelector returns the first Element in the document matching sel.
func (d *Document) QuerySelector(sel string) (*Element, error) { return QuerySelector(d, sel) }

// QuerySelectorAll returns every Element in the document matching sel.
func (d *Document) QuerySelectorAll(sel string) []*Element { return QuerySelectorAll(d, sel) }

// Title returns the text content of the first <title> under <head>, or ""
// if there is no head or no title.
func (d *Document) Title() string {
	head := d.Head()
	if head == nil {
		return ""
	}
	title := firstChildElementNamed(head, "title")
	if title == nil {
		return ""
	}
	return TextContent(title)
}

// DocumentType represents a DOCTYPE declaration. It is never an ordinary
// child of Document: it is reachable only via Document.Doctype, matching
// the WHATWG model where doctype is a distinguished, at-most-one node.
type DocumentType struct {
	parentNode

	Name     string
	PublicID string
	SystemID string
}

// NewDocumentType creates a new DOCTYPE node. Identifiers may be empty.
func NewDocumentType(name, publicID, systemID string) *DocumentType {
	return &DocumentType{Name: name, PublicID: publicID, SystemID: systemID}
}

func (dt *DocumentType) Type() NodeType      { return DoctypeNode }
func (dt *DocumentType) NodeName() string    { return dt.Name }
func (dt *DocumentType) Children() []Node    { return nil }
func (dt *DocumentType) HasChildNodes() bool { return false }

func (dt *DocumentType) Clone(_ bool) Node {
	return &DocumentType{Name: dt.Name, PublicID: dt.PublicID, SystemID: dt.SystemID}
}

// DocumentFragment is a lightweight, parent-less container: inserting one
// into a tree flattens it (its children move, and it becomes empty) per
// the WHATWG "fragment flattening" rule. It is also used as the backing
// store for <template> content.
type DocumentFragment struct {
	parentNode
	childSequence
}

// NewDocumentFragment creates a new, empty fragment.
func NewDocumentFragment() *DocumentFragment { return &DocumentFragment{} }

func (f *DocumentFragment) Type() NodeType   { return DocumentFragmentNode }
func (f *DocumentFragment) NodeName() string { return "#document-fragment" }

func (f *DocumentFragment) Clone(deep bool) Node {
	clone := &DocumentFragment{}
	if deep {
		for _, child := range f.children {
			clone.rawAppend(cloneInto(child, clone))
		}
	}
	return clone
}
