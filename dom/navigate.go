package dom

import "reflect"

// ParentElement returns n's parent if it is an Element, else nil.
func ParentElement(n Node) *Element {
	if el, ok := n.Parent().(*Element); ok {
		return el
	}
	return nil
}

// FirstChild returns the first child of n, or nil.
func FirstChild(n Node) Node {
	c := n.Children()
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// LastChild returns the last child of n, or nil.
func LastChild(n Node) Node {
	c := n.Children()
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// PreviousSibling returns the sibling immediately before n, or nil.
func PreviousSibling(n Node) Node {
	p, ok := n.Parent().(container)
	if !ok {
		return nil
	}
	idx := p.indexOf(n)
	if idx <= 0 {
		return nil
	}
	return childrenOf(p)[idx-1]
}

// NextSibling returns the sibling immediately after n, or nil.
func NextSibling(n Node) Node {
	p, ok := n.Parent().(container)
	if !ok {
		return nil
	}
	siblings := childrenOf(p)
	idx := p.indexOf(n)
	if idx < 0 || idx == len(siblings)-1 {
		return nil
	}
	return siblings[idx+1]
}

// ElementChildren returns n's Element children, in order (a snapshot).
func ElementChildren(n Node) []*Element {
	var out []*Element
	for _, c := range n.Children() {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// FirstElementChild returns the first Element child, or nil.
func FirstElementChild(n Node) *Element {
	for _, c := range n.Children() {
		if el, ok := c.(*Element); ok {
			return el
		}
	}
	return nil
}

// LastElementChild returns the last Element child, or nil.
func LastElementChild(n Node) *Element {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if el, ok := children[i].(*Element); ok {
			return el
		}
	}
	return nil
}

// PreviousElementSibling returns the nearest preceding Element sibling.
func PreviousElementSibling(n Node) *Element {
	for sib := PreviousSibling(n); sib != nil; sib = PreviousSibling(sib) {
		if el, ok := sib.(*Element); ok {
			return el
		}
	}
	return nil
}

// NextElementSibling returns the nearest following Element sibling.
func NextElementSibling(n Node) *Element {
	for sib := NextSibling(n); sib != nil; sib = NextSibling(sib) {
		if el, ok := sib.(*Element); ok {
			return el
		}
	}
	return nil
}

// ChildElementCount returns the number of Element children of n.
func ChildElementCount(n Node) int {
	count := 0
	for _, c := range n.Children() {
		if _, ok := c.(*Element); ok {
			count++
		}
	}
	return count
}

// GetRootNode climbs parent references until it finds a node with no
// parent.
func GetRootNode(n Node) Node {
	cur := n
	for cur.Parent() != nil {
		cur = cur.Parent()
	}
	return cur
}

// OwnerDocument returns the root of n if that root is a Document, else
// nil (matches spec.md §9(c): a detached, freshly created node has a nil
// owner document rather than a synthetic one).
func OwnerDocument(n Node) *Document {
	if doc, ok := GetRootNode(n).(*Document); ok {
		return doc
	}
	return nil
}

// IsConnected reports whether n's root is a Document.
func IsConnected(n Node) bool {
	_, ok := GetRootNode(n).(*Document)
	return ok
}

// IsSameNode reports handle identity (not structural equality).
func IsSameNode(a, b Node) bool { return a == b }

// IsEqualNode reports structural equality: same kind, same attributes/
// data, same children recursively. Equivalent to comparing outerHTML
// (property P8), implemented directly rather than via round-tripping
// through the serializer so it works on detached nodes of any kind.
func IsEqualNode(a, b Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *Element:
		bv := b.(*Element)
		if av.Local != bv.Local || av.Namespace != bv.Namespace || av.Prefix != bv.Prefix {
			return false
		}
		if !attrsEqual(av.Attrs, bv.Attrs) {
			return false
		}
	case *Text:
		if av.Data != b.(*Text).Data {
			return false
		}
	case *Comment:
		if av.Data != b.(*Comment).Data {
			return false
		}
	case *ProcessingInstruction:
		bv := b.(*ProcessingInstruction)
		if av.Target != bv.Target || av.Data != bv.Data {
			return false
		}
	case *DocumentType:
		bv := b.(*DocumentType)
		if av.Name != bv.Name || av.PublicID != bv.PublicID || av.SystemID != bv.SystemID {
			return false
		}
	}
	ac, bc := a.Children(), b.Children()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !IsEqualNode(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

func attrsEqual(a, b *Attributes) bool {
	aa, ba := a.All(), b.All()
	if len(aa) != len(ba) {
		return false
	}
	for i := range aa {
		if aa[i].Namespace != ba[i].Namespace || aa[i].Prefix != ba[i].Prefix ||
			aa[i].Local != ba[i].Local || aa[i].Value != ba[i].Value {
			return false
		}
	}
	return true
}

// DocumentPosition bitmask, per the WHATWG compareDocumentPosition
// algorithm.
const (
	PositionDisconnected           = 1
	PositionPreceding              = 2
	PositionFollowing              = 4
	PositionContains               = 8
	PositionContainedBy            = 16
	PositionImplementationSpecific = 32
)

// CompareDocumentPosition implements compareDocumentPosition(other)
// relative to n.
func CompareDocumentPosition(n, other Node) int {
	if n == other {
		return 0
	}
	if Contains(n, other) {
		return PositionContainedBy | PositionFollowing
	}
	if Contains(other, n) {
		return PositionContains | PositionPreceding
	}
	if GetRootNode(n) != GetRootNode(other) {
		return PositionDisconnected | PositionImplementationSpecific |
			precedingOrFollowingByIdentity(n, other)
	}
	if precedesInTreeOrder(n, other) {
		return PositionFollowing
	}
	return PositionPreceding
}

// precedingOrFollowingByIdentity gives a stable, arbitrary-but-consistent
// ordering for disconnected trees, matching the WHATWG allowance that
// implementations may pick any total order in this case.
func precedingOrFollowingByIdentity(a, b Node) int {
	if fingerprint(a) < fingerprint(b) {
		return PositionFollowing
	}
	return PositionPreceding
}

func fingerprint(n Node) uintptr {
	return reflect.ValueOf(n).Pointer()
}

// precedesInTreeOrder reports whether a comes before b in document
// (pre-)order, given both share a root.
func precedesInTreeOrder(a, b Node) bool {
	order := make(map[Node]int)
	i := 0
	var walk func(Node)
	walk = func(n Node) {
		order[n] = i
		i++
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(GetRootNode(a))
	return order[a] < order[b]
}

// Contains reports whether self is other, or an ancestor of other.
func Contains(self, other Node) bool {
	for cur := other; cur != nil; cur = cur.Parent() {
		if cur == self {
			return true
		}
	}
	return false
}
