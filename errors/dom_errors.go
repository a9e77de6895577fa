package errors

import "fmt"

// NotFoundError reports that a reference/child/old node argument was not
// actually a child of the receiver it was passed to.
type NotFoundError struct {
	Op      string // e.g. "removeChild", "insertBefore"
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// HierarchyRequestError reports that a mutation would create a cycle,
// attach a Document as a child, or otherwise violate the tree's shape
// invariants.
type HierarchyRequestError struct {
	Op      string
	Message string
}

func (e *HierarchyRequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// DOMSyntaxError reports a malformed argument to a parser-taking setter,
// or an unrecognized insertAdjacent* position. Named DOMSyntaxError (not
// SyntaxError) to avoid colliding with go/scanner-style names in callers
// that dot-import both parser and DOM error packages.
type DOMSyntaxError struct {
	Op      string
	Message string
}

func (e *DOMSyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// IndexSizeError reports a character-data offset past the end of the data.
type IndexSizeError struct {
	Op     string
	Offset int
	Length int
}

func (e *IndexSizeError) Error() string {
	return fmt.Sprintf("%s: offset %d exceeds length %d", e.Op, e.Offset, e.Length)
}

// InvalidStateError reports an operation invoked on a node of the wrong
// kind, e.g. splitText on a non-Text node.
type InvalidStateError struct {
	Op      string
	Message string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}
