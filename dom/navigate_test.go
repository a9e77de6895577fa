package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-webdom/webdom/dom"
)

func TestNavigationAccessors(t *testing.T) {
	doc, html, body := buildTree(t)
	p1 := dom.NewElement("p")
	comment := dom.NewComment("note")
	p2 := dom.NewElement("p")
	require.NoError(t, dom.Append(body, p1))
	require.NoError(t, dom.Append(body, comment))
	require.NoError(t, dom.Append(body, p2))

	assert.Same(t, p1, dom.FirstChild(body))
	assert.Same(t, p2, dom.LastChild(body))
	assert.Same(t, html, dom.ParentElement(body))
	assert.Nil(t, dom.ParentElement(doc))

	assert.Equal(t, dom.Node(comment), dom.NextSibling(p1))
	assert.Equal(t, dom.Node(p1), dom.PreviousSibling(comment))

	assert.Same(t, p1, dom.FirstElementChild(body))
	assert.Same(t, p2, dom.LastElementChild(body))
	assert.Same(t, p2, dom.NextElementSibling(p1))
	assert.Same(t, p1, dom.PreviousElementSibling(p2))
	assert.Equal(t, 2, dom.ChildElementCount(body))

	assert.Same(t, doc, dom.GetRootNode(p1))
	assert.Same(t, doc, dom.OwnerDocument(p1))
	assert.True(t, dom.IsConnected(p1))
}

func TestOwnerDocumentNilForDetachedElement(t *testing.T) {
	el := dom.NewElement("div")

	assert.Nil(t, dom.OwnerDocument(el))
	assert.False(t, dom.IsConnected(el))
}

func TestIsSameNodeIsIdentityNotStructural(t *testing.T) {
	a := dom.NewElement("div")
	b := dom.NewElement("div")

	assert.False(t, dom.IsSameNode(a, b))
	assert.True(t, dom.IsSameNode(a, a))
	assert.True(t, dom.IsEqualNode(a, b))
}

func TestCompareDocumentPosition(t *testing.T) {
	_, _, body := buildTree(t)
	p1 := dom.NewElement("p")
	p2 := dom.NewElement("p")
	require.NoError(t, dom.Append(body, p1))
	require.NoError(t, dom.Append(body, p2))

	assert.Equal(t, dom.PositionContainedBy|dom.PositionFollowing, dom.CompareDocumentPosition(body, p1))
	assert.Equal(t, dom.PositionContains|dom.PositionPreceding, dom.CompareDocumentPosition(p1, body))
	assert.Equal(t, dom.PositionFollowing, dom.CompareDocumentPosition(p1, p2))
	assert.Equal(t, dom.PositionPreceding, dom.CompareDocumentPosition(p2, p1))
}

func TestCompareDocumentPositionDisconnected(t *testing.T) {
	a := dom.NewElement("div")
	b := dom.NewElement("span")

	pos := dom.CompareDocumentPosition(a, b)

	assert.NotZero(t, pos&dom.PositionDisconnected)
	assert.NotZero(t, pos&dom.PositionImplementationSpecific)
}
