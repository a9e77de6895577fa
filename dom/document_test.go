package dom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-webdom/webdom/dom"
)

func TestDocumentLandmarks(t *testing.T) {
	doc, html, _ := buildTree(t)
	head := dom.NewElement("head")
	title := dom.NewElement("title")
	title.AppendChild(dom.NewText("Hello"))
	head.AppendChild(title)
	require.NoError(t, dom.Prepend(html, head))

	assert.Same(t, html, doc.DocumentElement())
	assert.Same(t, head, doc.Head())
	assert.Equal(t, "Hello", doc.Title())
}

func TestDocumentTitleEmptyWithoutHead(t *testing.T) {
	doc := dom.NewDocument()

	assert.Equal(t, "", doc.Title())
	assert.Nil(t, doc.DocumentElement())
	assert.Nil(t, doc.Head())
	assert.Nil(t, doc.Body())
}

// S2: getElementById finds nested elements and reports the right parent.
func TestGetElementByID(t *testing.T) {
	_, _, body := buildTree(t)
	outer := dom.NewElement("div")
	outer.SetID("a")
	inner := dom.NewElement("div")
	inner.SetID("b")
	outer.AppendChild(inner)
	require.NoError(t, dom.Append(body, outer))

	found := dom.GetElementByID(body, "b")

	require.NotNil(t, found)
	assert.Equal(t, "DIV", found.TagName())
	assert.Equal(t, "a", dom.ParentElement(found).ID())
}

func TestGetElementsByTagNameUppercasesAndSupportsWildcard(t *testing.T) {
	_, _, body := buildTree(t)
	p := dom.NewElement("p")
	span := dom.NewElement("span")
	p.AppendChild(span)
	require.NoError(t, dom.Append(body, p))

	found := dom.GetElementsByTagName(body, "p")
	require.Len(t, found, 1)
	assert.Same(t, p, found[0])

	all := dom.GetElementsByTagName(body, "*")
	assert.Len(t, all, 2)
}

func TestGetElementsByClassNameRequiresSupersetOfTokens(t *testing.T) {
	_, _, body := buildTree(t)
	match := dom.NewElement("div")
	match.SetClassName("a b c")
	noMatch := dom.NewElement("div")
	noMatch.SetClassName("a")
	require.NoError(t, dom.Append(body, match))
	require.NoError(t, dom.Append(body, noMatch))

	found := dom.GetElementsByClassName(body, "a b")

	require.Len(t, found, 1)
	assert.Same(t, match, found[0])
}
