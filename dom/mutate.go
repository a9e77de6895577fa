package dom

import (
	"strings"

	domerrors "github.com/go-webdom/webdom/errors"
)

// childrenOf returns c's children via the container interface, used
// internally by mutation helpers that need to reason about index
// positions. The slice is a copy made by Children, not the backing slice.
func childrenOf(c container) []Node { return c.Children() }

// asContainer asserts that n can own children, returning a
// HierarchyRequestError (naming op) if not. Every public mutator in this
// file that takes a Node parent goes through this, since container is
// unexported and callers outside this package only ever have a Node in
// hand.
func asContainer(op string, n Node) (container, error) {
	c, ok := n.(container)
	if !ok {
		return nil, &domerrors.HierarchyRequestError{Op: op, Message: "node cannot own children"}
	}
	return c, nil
}

// detachFromParent implements the pre-detach rule (§4.2, §9 "Auto-detach-
// on-insert"): if n currently has a parent, remove it from that parent's
// child sequence first. This is the one private helper every mutator in
// this file routes through, so WHATWG's "moved, not copied" semantics
// live in exactly one place.
func detachFromParent(n Node) {
	p := n.Parent()
	if p == nil {
		return
	}
	if pc, ok := p.(container); ok {
		if i := pc.indexOf(n); i >= 0 {
			pc.rawRemoveAt(i)
		}
	}
	n.setParent(nil)
}

// isAncestor reports whether candidate is n itself or an ancestor of n.
func isAncestor(candidate, n Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == candidate {
			return true
		}
	}
	return false
}

func checkInsertable(op string, parent container, child Node) error {
	if _, isDoc := child.(*Document); isDoc {
		return &domerrors.HierarchyRequestError{Op: op, Message: "a Document cannot be inserted as a child"}
	}
	if isAncestor(child, parent) {
		return &domerrors.HierarchyRequestError{Op: op, Message: "node would become an ancestor of itself"}
	}
	return nil
}

// flattenIfFragment returns the nodes that should actually be inserted for
// child: if child is a DocumentFragment, its current children (in order),
// after which the fragment is emptied; otherwise just child itself.
func flattenIfFragment(child Node) []Node {
	frag, ok := child.(*DocumentFragment)
	if !ok {
		return []Node{child}
	}
	nodes := make([]Node, len(frag.children))
	copy(nodes, frag.children)
	for _, n := range nodes {
		n.setParent(nil)
	}
	frag.children = frag.children[:0]
	return nodes
}

// Append adds child as the last child of parent, pre-detaching child from
// any existing parent first. Fragment children are flattened in.
func Append(parent Node, child Node) error {
	p, err := asContainer("append", parent)
	if err != nil {
		return err
	}
	return appendTo(p, child)
}

func appendTo(parent container, child Node) error {
	if err := checkInsertable("append", parent, child); err != nil {
		return err
	}
	for _, n := range flattenIfFragment(child) {
		detachFromParent(n)
		parent.rawAppend(n)
		n.setParent(parent)
	}
	return nil
}

// Prepend inserts child as the first child of parent.
func Prepend(parent Node, child Node) error {
	p, err := asContainer("prepend", parent)
	if err != nil {
		return err
	}
	if err := checkInsertable("prepend", p, child); err != nil {
		return err
	}
	nodes := flattenIfFragment(child)
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		detachFromParent(n)
		p.rawInsertAt(0, n)
		n.setParent(p)
	}
	return nil
}

// InsertBefore inserts newNode as a child of parent immediately before
// ref. If ref is nil, this is equivalent to Append. If ref is non-nil but
// is not currently a child of parent, returns NotFoundError.
func InsertBefore(parent Node, newNode, ref Node) error {
	if ref == nil {
		return Append(parent, newNode)
	}
	p, err := asContainer("insertBefore", parent)
	if err != nil {
		return err
	}
	return insertBeforeIn(p, newNode, ref)
}

func insertBeforeIn(parent container, newNode, ref Node) error {
	idx := parent.indexOf(ref)
	if idx < 0 {
		return &domerrors.NotFoundError{Op: "insertBefore", Message: "reference node is not a child of parent"}
	}
	if err := checkInsertable("insertBefore", parent, newNode); err != nil {
		return err
	}
	nodes := flattenIfFragment(newNode)
	for _, n := range nodes {
		detachFromParent(n)
		// Recompute ref's index: prior insertions/detachment of nodes
		// already belonging to this same parent can shift it.
		at := parent.indexOf(ref)
		if at < 0 {
			at = len(childrenOf(parent))
		}
		parent.rawInsertAt(at, n)
		n.setParent(parent)
	}
	return nil
}

// After inserts sib into self's parent immediately after self. No-op if
// self is currently detached.
func After(self, sib Node) error {
	p := self.Parent()
	if p == nil {
		return nil
	}
	c, ok := p.(container)
	if !ok {
		return nil
	}
	return after(c, self, sib)
}

func after(parent container, self, sib Node) error {
	idx := parent.indexOf(self)
	if idx < 0 {
		return nil
	}
	if idx == len(childrenOf(parent))-1 {
		return appendTo(parent, sib)
	}
	nextSib := childrenOf(parent)[idx+1]
	return insertBeforeIn(parent, sib, nextSib)
}

// Before inserts sib into self's parent immediately before self. No-op if
// self is currently detached.
func Before(self, sib Node) error {
	p := self.Parent()
	if p == nil {
		return nil
	}
	c, ok := p.(container)
	if !ok {
		return nil
	}
	return insertBeforeIn(c, sib, self)
}

// RemoveChild detaches child from parent. If child's current parent isn't
// parent, returns NotFoundError and leaves the tree unchanged.
func RemoveChild(parent Node, child Node) (Node, error) {
	p, err := asContainer("removeChild", parent)
	if err != nil {
		return nil, err
	}
	idx := p.indexOf(child)
	if idx < 0 {
		return nil, &domerrors.NotFoundError{Op: "removeChild", Message: "node is not a child of parent"}
	}
	p.rawRemoveAt(idx)
	child.setParent(nil)
	return child, nil
}

// ReplaceChild substitutes old with newNode in parent's child sequence,
// pre-detaching newNode first. If old's current parent isn't parent,
// returns NotFoundError. Returns old.
func ReplaceChild(parent Node, newNode, old Node) (Node, error) {
	p, err := asContainer("replaceChild", parent)
	if err != nil {
		return nil, err
	}
	return replaceChildIn(p, newNode, old)
}

func replaceChildIn(parent container, newNode, old Node) (Node, error) {
	idx := parent.indexOf(old)
	if idx < 0 {
		return nil, &domerrors.NotFoundError{Op: "replaceChild", Message: "old node is not a child of parent"}
	}
	if err := checkInsertable("replaceChild", parent, newNode); err != nil {
		return nil, err
	}
	nodes := flattenIfFragment(newNode)
	parent.rawRemoveAt(idx)
	old.setParent(nil)
	at := idx
	for _, n := range nodes {
		detachFromParent(n)
		parent.rawInsertAt(at, n)
		n.setParent(parent)
		at++
	}
	return old, nil
}

// ReplaceWith substitutes self with newNode in self's parent, detaching
// self. No-op if self is currently detached.
func ReplaceWith(self, newNode Node) error {
	p := self.Parent()
	if p == nil {
		return nil
	}
	c, ok := p.(container)
	if !ok {
		return nil
	}
	_, err := replaceChildIn(c, newNode, self)
	return err
}

// Remove detaches self from its parent. No-op (not an error) if self is
// already detached.
func Remove(self Node) {
	detachFromParent(self)
}

// AdoptNode detaches n from its current tree and returns it. Cross-
// document adoption proper is a no-op here: Document nodes in this
// implementation are not strongly linked to the nodes under them beyond
// ordinary parent/child edges, so there is nothing further to rewire.
func AdoptNode(n Node) Node {
	detachFromParent(n)
	return n
}

// ImportNode returns a fresh clone of n (deep or shallow) without
// inserting it anywhere.
func ImportNode(n Node, deep bool) Node {
	return n.Clone(deep)
}

func replaceChildren(c container, newChildren []Node) {
	old := childrenOf(c)
	for _, n := range old {
		n.setParent(nil)
	}
	for range old {
		c.rawRemoveAt(0)
	}
	for _, n := range newChildren {
		c.rawAppend(n)
		n.setParent(c)
	}
}

// AdjacentPosition names the four insertAdjacent* positions.
type AdjacentPosition int

const (
	BeforeBegin AdjacentPosition = iota
	AfterBegin
	BeforeEnd
	AfterEnd
)

// ParseAdjacentPosition parses a case-insensitive position keyword
// ("beforebegin", "afterbegin", "beforeend", "afterend" in any casing),
// returning DOMSyntaxError for anything else per §4.2/§7.
func ParseAdjacentPosition(s string) (AdjacentPosition, error) {
	switch strings.ToLower(s) {
	case "beforebegin":
		return BeforeBegin, nil
	case "afterbegin":
		return AfterBegin, nil
	case "beforeend":
		return BeforeEnd, nil
	case "afterend":
		return AfterEnd, nil
	}
	return 0, &domerrors.DOMSyntaxError{Op: "insertAdjacent", Message: "unknown position " + s}
}

// InsertAdjacent dispatches pos to before(self,·)/prepend(self,·)/
// append(self,·)/after(self,·) per §4.2.
func InsertAdjacent(self *Element, pos AdjacentPosition, node Node) error {
	switch pos {
	case BeforeBegin:
		return Before(self, node)
	case AfterBegin:
		return Prepend(self, node)
	case BeforeEnd:
		return Append(self, node)
	case AfterEnd:
		return After(self, node)
	}
	return &domerrors.DOMSyntaxError{Op: "insertAdjacent", Message: "unknown position"}
}

// insertAdjacentAll inserts nodes at pos relative to self as a single
// fragment, preserving their relative order in the resulting tree
// (scenarios S7/P10). BeforeBegin/BeforeEnd insert forward since each
// call lands immediately ahead of self/at the end; AfterBegin/AfterEnd
// insert in reverse since each call lands immediately after self's
// existing position, which would otherwise reverse the fragment.
func insertAdjacentAll(self *Element, pos AdjacentPosition, nodes []Node) error {
	switch pos {
	case BeforeBegin, BeforeEnd:
		for _, n := range nodes {
			if err := InsertAdjacent(self, pos, n); err != nil {
				return err
			}
		}
	case AfterBegin, AfterEnd:
		for i := len(nodes) - 1; i >= 0; i-- {
			if err := InsertAdjacent(self, pos, nodes[i]); err != nil {
				return err
			}
		}
	default:
		return &domerrors.DOMSyntaxError{Op: "insertAdjacentHTML", Message: "unknown position"}
	}
	return nil
}
