package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-webdom/webdom/dom"
	domerrors "github.com/go-webdom/webdom/errors"
)

func buildTree(t *testing.T) (*dom.Document, *dom.Element, *dom.Element) {
	t.Helper()
	doc := dom.NewDocument()
	html := dom.NewElement("html")
	require.NoError(t, dom.Append(doc, html))
	body := dom.NewElement("body")
	require.NoError(t, dom.Append(html, body))
	return doc, html, body
}

// P1/P2: parent(c) == p iff c is in p.children, exactly once.
func TestAppendEstablishesParentLinkage(t *testing.T) {
	_, _, body := buildTree(t)
	p := dom.NewElement("p")

	require.NoError(t, dom.Append(body, p))

	assert.Equal(t, dom.Node(body), p.Parent())
	children := body.Children()
	require.Len(t, children, 1)
	assert.Same(t, p, children[0])
}

// Pre-detach: inserting an already-attached node moves it, not copies it.
func TestAppendPreDetachesFromPriorParent(t *testing.T) {
	_, _, body := buildTree(t)
	div1 := dom.NewElement("div")
	div2 := dom.NewElement("div")
	require.NoError(t, dom.Append(body, div1))
	require.NoError(t, dom.Append(body, div2))

	span := dom.NewElement("span")
	require.NoError(t, dom.Append(div1, span))
	require.NoError(t, dom.Append(div2, span))

	assert.Equal(t, dom.Node(div2), span.Parent())
	assert.Empty(t, div1.Children())
	assert.Len(t, div2.Children(), 1)
}

// I4/HierarchyRequestError: a Document can never become a child.
func TestAppendDocumentIsHierarchyRequestError(t *testing.T) {
	_, _, body := buildTree(t)
	other := dom.NewDocument()

	err := dom.Append(body, other)

	var hrErr *domerrors.HierarchyRequestError
	assert.ErrorAs(t, err, &hrErr)
	assert.Empty(t, body.Children())
}

// P3/I3: no node may become its own ancestor.
func TestAppendAncestorIntoDescendantIsHierarchyRequestError(t *testing.T) {
	_, html, body := buildTree(t)

	err := dom.Append(body, html)

	var hrErr *domerrors.HierarchyRequestError
	assert.ErrorAs(t, err, &hrErr)
	assert.Equal(t, dom.Node(body), html.Parent())
}

// S8: removeChild on a non-child is NotFoundError and leaves the tree alone.
func TestRemoveChildNotFound(t *testing.T) {
	_, _, body := buildTree(t)
	stray := dom.NewElement("div")

	_, err := dom.RemoveChild(body, stray)

	var nfErr *domerrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
	assert.Empty(t, body.Children())
}

// P4: append then remove restores the initial (nil) parent.
func TestRemoveChildRestoresDetachedState(t *testing.T) {
	_, _, body := buildTree(t)
	p := dom.NewElement("p")
	require.NoError(t, dom.Append(body, p))

	removed, err := dom.RemoveChild(body, p)

	require.NoError(t, err)
	assert.Same(t, p, removed)
	assert.Nil(t, p.Parent())
	assert.Empty(t, body.Children())
}

func TestInsertBeforeNilRefAppends(t *testing.T) {
	_, _, body := buildTree(t)
	a := dom.NewElement("a")
	b := dom.NewElement("b")
	require.NoError(t, dom.Append(body, a))

	require.NoError(t, dom.InsertBefore(body, b, nil))

	children := body.Children()
	require.Len(t, children, 2)
	assert.Same(t, a, children[0])
	assert.Same(t, b, children[1])
}

func TestInsertBeforeRefNotChildIsNotFoundError(t *testing.T) {
	_, _, body := buildTree(t)
	other := dom.NewElement("div")
	newNode := dom.NewElement("span")

	err := dom.InsertBefore(body, newNode, other)

	var nfErr *domerrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

// Fragment flattening: inserting a DocumentFragment inserts its children,
// in order, in one atomic step, and leaves the fragment empty.
func TestAppendFragmentFlattens(t *testing.T) {
	_, _, body := buildTree(t)
	frag := dom.NewDocumentFragment()
	li1 := dom.NewElement("li")
	li2 := dom.NewElement("li")
	require.NoError(t, dom.Append(frag, li1))
	require.NoError(t, dom.Append(frag, li2))

	require.NoError(t, dom.Append(body, frag))

	children := body.Children()
	require.Len(t, children, 2)
	assert.Same(t, li1, children[0])
	assert.Same(t, li2, children[1])
	assert.Empty(t, frag.Children())
}

// S3: after() reorders siblings in place.
func TestAfterReordersSiblings(t *testing.T) {
	_, _, body := buildTree(t)
	ul := dom.NewElement("ul")
	require.NoError(t, dom.Append(body, ul))
	li1 := dom.NewElement("li")
	li1.AppendChild(dom.NewText("1"))
	li2 := dom.NewElement("li")
	li2.AppendChild(dom.NewText("2"))
	require.NoError(t, dom.Append(ul, li1))
	require.NoError(t, dom.Append(ul, li2))

	require.NoError(t, li1.After(li2))

	children := ul.Children()
	require.Len(t, children, 2)
	assert.Same(t, li2, children[0])
	assert.Same(t, li1, children[1])
}

func TestAfterNoopWhenDetached(t *testing.T) {
	detached := dom.NewElement("div")
	sib := dom.NewElement("span")

	err := dom.After(detached, sib)

	require.NoError(t, err)
	assert.Nil(t, sib.Parent())
}

func TestReplaceChildNotFound(t *testing.T) {
	_, _, body := buildTree(t)
	old := dom.NewElement("div")
	newNode := dom.NewElement("span")

	_, err := dom.ReplaceChild(body, newNode, old)

	var nfErr *domerrors.NotFoundError
	assert.ErrorAs(t, err, &nfErr)
}

func TestReplaceChildSwapsInPlace(t *testing.T) {
	_, _, body := buildTree(t)
	old := dom.NewElement("div")
	newNode := dom.NewElement("span")
	require.NoError(t, dom.Append(body, old))

	returned, err := dom.ReplaceChild(body, newNode, old)

	require.NoError(t, err)
	assert.Same(t, old, returned)
	assert.Nil(t, old.Parent())
	children := body.Children()
	require.Len(t, children, 1)
	assert.Same(t, newNode, children[0])
}

func TestRemoveIsNoopWhenAlreadyDetached(t *testing.T) {
	el := dom.NewElement("div")
	assert.NotPanics(t, func() { dom.Remove(el) })
	assert.Nil(t, el.Parent())
}

// P7: cloneNode(deep) yields a distinct-identity, structurally equal tree.
func TestCloneNodeDeepIsStructurallyEqualDistinctIdentity(t *testing.T) {
	el := dom.NewElement("div")
	el.SetAttribute("id", "x")
	el.AppendChild(dom.NewText("hi"))

	clone := el.Clone(true)

	assert.True(t, dom.IsEqualNode(el, clone))
	assert.False(t, dom.IsSameNode(el, clone))
	assert.NotSame(t, el.Children()[0], clone.Children()[0])
}

func TestCloneNodeShallowHasNoChildren(t *testing.T) {
	el := dom.NewElement("div")
	el.AppendChild(dom.NewText("hi"))

	clone := el.Clone(false)

	assert.Empty(t, clone.Children())
}

// P9: contains(n, n) == true; contains(ancestor, descendant) == true.
func TestContains(t *testing.T) {
	doc, html, body := buildTree(t)

	assert.True(t, dom.Contains(body, body))
	assert.True(t, dom.Contains(doc, body))
	assert.True(t, dom.Contains(html, body))
	assert.False(t, dom.Contains(body, html))
}

func TestInsertAdjacentPositions(t *testing.T) {
	_, _, body := buildTree(t)
	anchor := dom.NewElement("p")
	require.NoError(t, dom.Append(body, anchor))

	before := dom.NewElement("a")
	afterBegin := dom.NewElement("b")
	beforeEnd := dom.NewElement("c")
	after := dom.NewElement("d")

	require.NoError(t, dom.InsertAdjacent(anchor, dom.BeforeBegin, before))
	require.NoError(t, dom.InsertAdjacent(anchor, dom.AfterBegin, afterBegin))
	require.NoError(t, dom.InsertAdjacent(anchor, dom.BeforeEnd, beforeEnd))
	require.NoError(t, dom.InsertAdjacent(anchor, dom.AfterEnd, after))

	bodyChildren := body.Children()
	require.Len(t, bodyChildren, 3)
	assert.Same(t, before, bodyChildren[0])
	assert.Same(t, anchor, bodyChildren[1])
	assert.Same(t, after, bodyChildren[2])

	anchorChildren := anchor.Children()
	require.Len(t, anchorChildren, 2)
	assert.Same(t, afterBegin, anchorChildren[0])
	assert.Same(t, beforeEnd, anchorChildren[1])
}

func TestParseAdjacentPositionUnknownIsSyntaxError(t *testing.T) {
	_, err := dom.ParseAdjacentPosition("sideways")

	var synErr *domerrors.DOMSyntaxError
	assert.ErrorAs(t, err, &synErr)
}

// §4.2 requires the four position keywords to match case-insensitively,
// not just the lowerCamelCase spellings.
func TestParseAdjacentPositionCaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  dom.AdjacentPosition
	}{
		{"beforebegin", dom.BeforeBegin},
		{"BEFOREBEGIN", dom.BeforeBegin},
		{"BeforeBegin", dom.BeforeBegin},
		{"AFTERBEGIN", dom.AfterBegin},
		{"BEFOREEND", dom.BeforeEnd},
		{"AFTEREND", dom.AfterEnd},
	}

	for _, tt := range tests {
		got, err := dom.ParseAdjacentPosition(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}
