package dom

import domerrors "github.com/go-webdom/webdom/errors"

// OuterHTML/InnerHTML rendering and the fragment parsing that backs the
// innerHTML/outerHTML setters and insertAdjacentHTML are implemented by
// the serialize and treebuilder packages, both of which import dom for
// its node types. Routing them back through dom as plain function calls
// would create an import cycle, so dom instead exposes these narrow
// registration hooks; the root package's init populates them. Same
// shape as RegisterSelectorEngine in query.go.
var (
	htmlRenderOuterHook func(Node) string
	htmlRenderInnerHook func(Node) string
	htmlFragmentHook    func(html string) ([]Node, error)
)

// RegisterHTMLSerializer wires the outerHTML/innerHTML rendering
// implementations into the dom package. Called exactly once, from the
// root package's init.
func RegisterHTMLSerializer(outer, inner func(Node) string) {
	htmlRenderOuterHook = outer
	htmlRenderInnerHook = inner
}

// RegisterFragmentParser wires the HTML-fragment-parsing implementation
// used by Element.SetInnerHTML, Element.SetOuterHTML, and
// Element.InsertAdjacentHTML. Called exactly once, from the root
// package's init. Per §4.7, fragment parsing always proceeds as if in a
// <body> context; the registered function receives only the HTML text
// and returns the resulting fragment's top-level child nodes.
func RegisterFragmentParser(parse func(html string) ([]Node, error)) {
	htmlFragmentHook = parse
}

func renderOuterHTML(n Node) string {
	if htmlRenderOuterHook == nil {
		return ""
	}
	return htmlRenderOuterHook(n)
}

func renderInnerHTML(n Node) string {
	if htmlRenderInnerHook == nil {
		return ""
	}
	return htmlRenderInnerHook(n)
}

func parseHTMLFragment(html string) ([]Node, error) {
	if htmlFragmentHook == nil {
		return nil, &domerrors.InvalidStateError{Op: "parseFragment", Message: "no HTML fragment parser registered"}
	}
	return htmlFragmentHook(html)
}
