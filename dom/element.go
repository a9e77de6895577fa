package dom

import "strings"

// Namespace constants for HTML, SVG, and MathML, per the WHATWG
// "namespaces" infra used throughout tree construction and foreign content
// handling.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
)

// Element represents an HTML, SVG, or MathML element: a qualified name,
// an ordered attribute map, an optional <template> content fragment, and
// a flag marking MathML text-integration points (mglyph/malignmark inside
// annotation-xml), which the tree builder and foreign-content handling
// consult when deciding whether HTML rules apply to descendants.
type Element struct {
	parentNode
	childSequence

	// Local is the element's local name (lowercase for HTML elements,
	// case-preserved for foreign SVG/MathML elements).
	Local string

	// Prefix is the namespace prefix, if any (e.g. "xlink" on an
	// attribute's owner is irrelevant here; this is the element's own
	// prefix, almost always empty for HTML).
	Prefix string

	// Namespace is the element's namespace URI.
	Namespace string

	// Attrs is the element's ordered attribute map.
	Attrs *Attributes

	// TemplateContent holds the content of <template> elements. Nil for
	// every other element.
	TemplateContent *DocumentFragment

	// MathMLTextIntegrationPoint marks mtext/mi/mo/mn/ms/mglyph-class
	// elements where HTML content is briefly parsed inside foreign
	// content per the WHATWG foreign-content algorithm.
	MathMLTextIntegrationPoint bool
}

// NewElement creates a new HTML-namespace element with a lowercased local
// name.
func NewElement(localName string) *Element {
	e := &Element{
		Local:     strings.ToLower(localName),
		Namespace: NamespaceHTML,
		Attrs:     NewAttributes(),
	}
	return e
}

// NewElementNS creates a new element in an explicit namespace. Foreign
// (SVG/MathML) local names are case-preserved, matching the WHATWG rule
// that only HTML elements are case-folded.
func NewElementNS(namespace, localName string) *Element {
	e := &Element{
		Local:     localName,
		Namespace: namespace,
		Attrs:     NewAttributes(),
	}
	return e
}

// Type implements Node.
func (e *Element) Type() NodeType { return ElementNode }

// NodeName implements Node: the uppercased local name for HTML elements,
// the case-preserved local name otherwise (matching tagName semantics).
func (e *Element) NodeName() string { return e.TagName() }

// TagName returns the element's tag name as exposed to consumers:
// uppercase for HTML-namespace elements, case-preserved for foreign ones.
func (e *Element) TagName() string {
	if e.Namespace == NamespaceHTML {
		return strings.ToUpper(e.Local)
	}
	return e.Local
}

// Clone implements Node.
func (e *Element) Clone(deep bool) Node {
	clone := &Element{
		Local:                      e.Local,
		Prefix:                     e.Prefix,
		Namespace:                  e.Namespace,
		Attrs:                      e.Attrs.Clone(),
		MathMLTextIntegrationPoint: e.MathMLTextIntegrationPoint,
	}
	if deep {
		for _, child := range e.children {
			clone.rawAppend(cloneInto(child, clone))
		}
		if e.TemplateContent != nil {
			clone.TemplateContent = e.TemplateContent.Clone(true).(*DocumentFragment)
		}
	}
	return clone
}

// cloneInto clones child (deep) and sets its parent to owner, used while
// building a deep clone so the copy's children already point at the new
// parent rather than the original.
func cloneInto(child Node, owner Node) Node {
	c := child.Clone(true)
	c.setParent(owner)
	return c
}

// ID returns the value of the id attribute, or "" if absent.
func (e *Element) ID() string {
	v, _ := e.Attrs.Get("id")
	return v
}

// SetID sets the id attribute.
func (e *Element) SetID(id string) { e.Attrs.Set("id", id) }

// ClassName returns the raw value of the class attribute.
func (e *Element) ClassName() string {
	v, _ := e.Attrs.Get("class")
	return v
}

// SetClassName overwrites the class attribute.
func (e *Element) SetClassName(v string) { e.Attrs.Set("class", v) }
