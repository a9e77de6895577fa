// Package dom provides the in-memory HTML node tree: a bidirectionally
// linked, heterogeneous-node tree plus the mutation algebra that keeps it
// structurally sound while behaving like the WHATWG DOM (silent auto-fixup
// of ill-formed calls, e.g. inserting an already-attached node first
// detaches it from its old parent).
package dom

// NodeType identifies the tagged-variant kind of a Node, using the same
// integer codes the DOM living standard assigns.
type NodeType int

// Node types as defined by the DOM specification.
const (
	ElementNode               NodeType = 1
	TextNode                  NodeType = 3
	ProcessingInstructionNode NodeType = 7
	CommentNode               NodeType = 8
	DocumentNode              NodeType = 9
	DoctypeNode               NodeType = 10
	DocumentFragmentNode      NodeType = 11
)

// Node is the interface implemented by all seven node kinds.
//
// Parent/Children expose a snapshot of the current linkage; callers that
// need to mutate the tree use the package-level functions in mutate.go
// (Append, InsertBefore, RemoveChild, ...), not these raw accessors, so
// that the pre-detach rule and structural invariants are enforced in one
// place.
type Node interface {
	// Type returns the node's tagged-variant kind.
	Type() NodeType

	// NodeName returns the WHATWG nodeName for this node.
	NodeName() string

	// Parent returns the parent node, or nil if detached.
	Parent() Node

	// Children returns a snapshot of the child sequence. Leaf kinds
	// (Text, Comment, ProcessingInstruction, Doctype) always return nil.
	Children() []Node

	// HasChildNodes reports whether Children() is non-empty.
	HasChildNodes() bool

	// Clone returns a structurally equal, identity-distinct copy. If deep,
	// descendants are cloned too; otherwise the clone has no children.
	Clone(deep bool) Node

	// AppendChild, RemoveChild, and InsertBefore are the WHATWG method
	// names for the corresponding package-level mutators (Append,
	// RemoveChild, InsertBefore), callable on any Node rather than just
	// the three container kinds: a leaf receiver (Text, Comment, PI,
	// Doctype) returns HierarchyRequestError instead of panicking or
	// silently no-opping, since "this node cannot have children" is
	// itself part of the tree's structural contract.
	AppendChild(child Node) (Node, error)
	RemoveChild(child Node) (Node, error)
	InsertBefore(newNode, ref Node) (Node, error)

	// setParent is unexported: only the mutator in this package may
	// change a node's parent back-reference, which keeps invariant I1
	// ("a node has at most one parent") from being violated by a caller
	// reaching around the mutation algebra.
	setParent(Node)
}

// container is implemented by the three node kinds that may own children:
// Document, Element, and DocumentFragment. The mutator operates on this
// narrower interface so leaf kinds never need (and can't be tricked into)
// participating as an insertion target.
type container interface {
	Node
	rawAppend(Node)
	rawInsertAt(int, Node)
	rawRemoveAt(int) Node
	indexOf(Node) int
}

// parentNode is a small helper embedded by every node kind; it stores the
// non-owning back-reference common to all seven kinds. Kinds that can have
// children additionally embed childSequence.
type parentNode struct {
	parent Node
}

func (p *parentNode) Parent() Node      { return p.parent }
func (p *parentNode) setParent(n Node)  { p.parent = n }

// childSequence stores the owning, ordered child slice shared by Document,
// Element, and DocumentFragment.
type childSequence struct {
	children []Node
}

func (c *childSequence) Children() []Node {
	if len(c.children) == 0 {
		return nil
	}
	out := make([]Node, len(c.children))
	copy(out, c.children)
	return out
}

func (c *childSequence) HasChildNodes() bool { return len(c.children) > 0 }

func (c *childSequence) rawAppend(n Node) {
	c.children = append(c.children, n)
}

func (c *childSequence) rawInsertAt(i int, n Node) {
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = n
}

func (c *childSequence) rawRemoveAt(i int) Node {
	n := c.children[i]
	c.children = append(c.children[:i], c.children[i+1:]...)
	return n
}

func (c *childSequence) indexOf(n Node) int {
	for i, child := range c.children {
		if child == n {
			return i
		}
	}
	return -1
}
