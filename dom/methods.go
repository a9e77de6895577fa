package dom

import domerrors "github.com/go-webdom/webdom/errors"

// The three container kinds delegate straight to the package-level
// mutators; the four leaf kinds reject child mutation with
// HierarchyRequestError, satisfying the Node interface uniformly so
// callers holding a bare Node (e.g. a tree-construction insertion point
// whose kind isn't yet known) never need a type switch just to call
// appendChild.

func (d *Document) AppendChild(child Node) (Node, error) {
	if err := Append(d, child); err != nil {
		return nil, err
	}
	return child, nil
}
func (d *Document) RemoveChild(child Node) (Node, error) { return RemoveChild(d, child) }
func (d *Document) InsertBefore(newNode, ref Node) (Node, error) {
	if err := InsertBefore(d, newNode, ref); err != nil {
		return nil, err
	}
	return newNode, nil
}

func (e *Element) AppendChild(child Node) (Node, error) {
	if err := Append(e, child); err != nil {
		return nil, err
	}
	return child, nil
}
func (e *Element) RemoveChild(child Node) (Node, error) { return RemoveChild(e, child) }
func (e *Element) InsertBefore(newNode, ref Node) (Node, error) {
	if err := InsertBefore(e, newNode, ref); err != nil {
		return nil, err
	}
	return newNode, nil
}

func (f *DocumentFragment) AppendChild(child Node) (Node, error) {
	if err := Append(f, child); err != nil {
		return nil, err
	}
	return child, nil
}
func (f *DocumentFragment) RemoveChild(child Node) (Node, error) { return RemoveChild(f, child) }
func (f *DocumentFragment) InsertBefore(newNode, ref Node) (Node, error) {
	if err := InsertBefore(f, newNode, ref); err != nil {
		return nil, err
	}
	return newNode, nil
}

func notAContainer(op string) error {
	return &domerrors.HierarchyRequestError{Op: op, Message: "this node cannot have children"}
}

func (t *Text) AppendChild(Node) (Node, error)      { return nil, notAContainer("appendChild") }
func (t *Text) RemoveChild(Node) (Node, error)      { return nil, notAContainer("removeChild") }
func (t *Text) InsertBefore(Node, Node) (Node, error) { return nil, notAContainer("insertBefore") }

func (c *Comment) AppendChild(Node) (Node, error)      { return nil, notAContainer("appendChild") }
func (c *Comment) RemoveChild(Node) (Node, error)      { return nil, notAContainer("removeChild") }
func (c *Comment) InsertBefore(Node, Node) (Node, error) { return nil, notAContainer("insertBefore") }

func (p *ProcessingInstruction) AppendChild(Node) (Node, error) { return nil, notAContainer("appendChild") }
func (p *ProcessingInstruction) RemoveChild(Node) (Node, error) { return nil, notAContainer("removeChild") }
func (p *ProcessingInstruction) InsertBefore(Node, Node) (Node, error) {
	return nil, notAContainer("insertBefore")
}

func (dt *DocumentType) AppendChild(Node) (Node, error) { return nil, notAContainer("appendChild") }
func (dt *DocumentType) RemoveChild(Node) (Node, error) { return nil, notAContainer("removeChild") }
func (dt *DocumentType) InsertBefore(Node, Node) (Node, error) {
	return nil, notAContainer("insertBefore")
}

// The remaining WHATWG-named operations (before/after/replaceWith/
// remove/cloneNode/setAttribute/.../querySelector/matches/closest) are
// exposed as Element (or CharacterData) methods rather than Node
// interface methods: unlike appendChild/removeChild/insertBefore, the
// tree builder never calls them through a bare Node, so there is no
// pressure to make every leaf kind implement them.

// Before inserts sib immediately before e in e's parent. No-op if e is
// detached.
func (e *Element) Before(sib Node) error { return Before(e, sib) }

// After inserts sib immediately after e in e's parent. No-op if e is
// detached.
func (e *Element) After(sib Node) error { return After(e, sib) }

// ReplaceWith substitutes e with newNode in e's parent. No-op if e is
// detached.
func (e *Element) ReplaceWith(newNode Node) error { return ReplaceWith(e, newNode) }

// Remove detaches e from its parent. No-op if already detached.
func (e *Element) Remove() { Remove(e) }

// CloneNode implements cloneNode(deep).
func (e *Element) CloneNode(deep bool) Node { return e.Clone(deep) }

// SetAttribute creates or overwrites the no-namespace attribute local.
func (e *Element) SetAttribute(local, value string) { e.Attrs.Set(local, value) }

// GetAttribute returns the no-namespace attribute local (or, if there is
// none, the first attribute with that local name in any namespace), or ""
// if absent.
func (e *Element) GetAttribute(local string) string {
	v, _ := e.Attrs.Get(local)
	return v
}

// HasAttribute reports whether local is present in any namespace.
func (e *Element) HasAttribute(local string) bool { return e.Attrs.Has(local) }

// RemoveAttribute deletes the no-namespace attribute local, if present.
func (e *Element) RemoveAttribute(local string) { e.Attrs.Remove(local) }

// ToggleAttribute adds local (with an empty value) if absent and
// removes it if present, returning the resulting membership state. If
// force is supplied, membership is instead set to that value
// unconditionally, matching toggleAttribute's optional "force" arg.
func (e *Element) ToggleAttribute(local string, force ...bool) bool {
	present := e.Attrs.Has(local)
	want := !present
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !present:
		e.Attrs.Set(local, "")
	case !want && present:
		e.Attrs.Remove(local)
	}
	return want
}

// SetAttributeNS creates or overwrites the attribute identified by the
// exact namespace+local pair.
func (e *Element) SetAttributeNS(namespace, prefix, local, value string) {
	e.Attrs.SetNS(namespace, prefix, local, value)
}

// GetAttributeNS returns the value of the attribute identified by the
// exact namespace+local pair, or "" if absent.
func (e *Element) GetAttributeNS(namespace, local string) string {
	v, _ := e.Attrs.GetNS(namespace, local)
	return v
}

// HasAttributeNS reports whether the exact namespace+local pair is
// present.
func (e *Element) HasAttributeNS(namespace, local string) bool { return e.Attrs.HasNS(namespace, local) }

// RemoveAttributeNS deletes the attribute identified by the exact
// namespace+local pair, if present.
func (e *Element) RemoveAttributeNS(namespace, local string) { e.Attrs.RemoveNS(namespace, local) }

// InsertAdjacentElement, InsertAdjacentText, InsertAdjacentHTML insert a
// new node (or parsed fragment) at one of the four insertAdjacent*
// positions relative to e, named and shaped per §4.2/§6: pos is the
// WHATWG string position keyword ("beforebegin", "afterbegin",
// "beforeend", "afterend", case-insensitive); an unrecognized keyword is
// a DOMSyntaxError. InsertAdjacentElement returns the inserted element,
// matching WHATWG's return value.
func (e *Element) InsertAdjacentElement(pos string, el *Element) (*Element, error) {
	p, err := ParseAdjacentPosition(pos)
	if err != nil {
		return nil, err
	}
	if err := InsertAdjacent(e, p, el); err != nil {
		return nil, err
	}
	return el, nil
}

func (e *Element) InsertAdjacentText(pos string, data string) error {
	p, err := ParseAdjacentPosition(pos)
	if err != nil {
		return err
	}
	return InsertAdjacent(e, p, NewText(data))
}

// InsertAdjacentHTML parses html as a fragment (§4.7: as if in a <body>
// context) and inserts the resulting nodes at pos relative to e,
// preserving their order as a single atomic insertion (scenarios
// S7/P10).
func (e *Element) InsertAdjacentHTML(pos string, html string) error {
	p, err := ParseAdjacentPosition(pos)
	if err != nil {
		return err
	}
	nodes, err := parseHTMLFragment(html)
	if err != nil {
		return err
	}
	return insertAdjacentAll(e, p, nodes)
}

// ParentElement, FirstChild, LastChild, ... mirror the corresponding
// package-level navigation helpers as methods, per the Node/Element
// property surface named in §4.3.
func (e *Element) ParentElement() *Element           { return ParentElement(e) }
func (e *Element) FirstChild() Node                  { return FirstChild(e) }
func (e *Element) LastChild() Node                   { return LastChild(e) }
func (e *Element) PreviousSibling() Node             { return PreviousSibling(e) }
func (e *Element) NextSibling() Node                 { return NextSibling(e) }
func (e *Element) FirstElementChild() *Element       { return FirstElementChild(e) }
func (e *Element) LastElementChild() *Element        { return LastElementChild(e) }
func (e *Element) PreviousElementSibling() *Element  { return PreviousElementSibling(e) }
func (e *Element) NextElementSibling() *Element      { return NextElementSibling(e) }
func (e *Element) ChildElementCount() int            { return ChildElementCount(e) }
func (e *Element) GetRootNode() Node                 { return GetRootNode(e) }
func (e *Element) OwnerDocument() *Document          { return OwnerDocument(e) }
func (e *Element) IsConnected() bool                 { return IsConnected(e) }
func (e *Element) IsSameNode(other Node) bool        { return IsSameNode(e, other) }
func (e *Element) IsEqualNode(other Node) bool       { return IsEqualNode(e, other) }
func (e *Element) Contains(other Node) bool          { return Contains(e, other) }
func (e *Element) CompareDocumentPosition(o Node) int { return CompareDocumentPosition(e, o) }

// TextContent returns the concatenation of every descendant Text's
// data. SetTextContent replaces all children with a single Text node
// (or no child, if s is empty, per §9's resolved Open Question).
func (e *Element) TextContent() string { return TextContent(e) }
func (e *Element) SetTextContent(s string) {
	replaceChildren(e, nil)
	if s != "" {
		_ = Append(e, NewText(s))
	}
}

// OuterHTML serializes e and its subtree. InnerHTML serializes e's
// children only. Both route through the renderer registered with
// RegisterHTMLSerializer (the dom package has no direct serializer
// dependency, to avoid an import cycle with the serialize package — see
// htmlio.go); they return "" if nothing has registered one.
func (e *Element) OuterHTML() string { return renderOuterHTML(e) }
func (e *Element) InnerHTML() string { return renderInnerHTML(e) }

// SetInnerHTML parses html as a fragment and replaces e's children with
// the result, per §4.8.
func (e *Element) SetInnerHTML(html string) error {
	nodes, err := parseHTMLFragment(html)
	if err != nil {
		return err
	}
	replaceChildren(e, nodes)
	return nil
}

// SetOuterHTML parses html as a fragment and inserts the result
// immediately before e in e's parent, then detaches e; a no-op if e is
// already detached, per §4.8.
func (e *Element) SetOuterHTML(html string) error {
	if e.Parent() == nil {
		return nil
	}
	nodes, err := parseHTMLFragment(html)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		if err := Before(e, n); err != nil {
			return err
		}
	}
	Remove(e)
	return nil
}

// GetElementsByTagName, GetElementsByClassName, GetElementByID as
// methods, scoped to e's subtree.
func (e *Element) GetElementsByTagName(name string) []*Element   { return GetElementsByTagName(e, name) }
func (e *Element) GetElementsByClassName(names string) []*Element { return GetElementsByClassName(e, names) }
func (e *Element) QuerySelector(sel string) (*Element, error)     { return QuerySelector(e, sel) }
func (e *Element) QuerySelectorAll(sel string) []*Element         { return QuerySelectorAll(e, sel) }
