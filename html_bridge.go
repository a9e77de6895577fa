package JustGoHTML

import (
	"github.com/go-webdom/webdom/dom"
	"github.com/go-webdom/webdom/serialize"
	"github.com/go-webdom/webdom/tokenizer"
	"github.com/go-webdom/webdom/treebuilder"
)

// init wires the dom package's OuterHTML/InnerHTML rendering and
// fragment-parsing hooks (dom/htmlio.go) to this package's serializer
// and tree builder, which both depend on dom and so can't be imported
// back from it directly.
func init() {
	dom.RegisterHTMLSerializer(
		func(n dom.Node) string { return serialize.ToHTML(n, serialize.DefaultOptions()) },
		func(n dom.Node) string { return serialize.InnerHTML(n, serialize.DefaultOptions()) },
	)
	dom.RegisterFragmentParser(parseFragmentNodes)
}

// parseFragmentNodes parses html as a fragment in a <body> context, per
// §4.7, and returns all of its top-level child nodes (elements, text,
// comments, ...). This backs Element.SetInnerHTML, Element.SetOuterHTML,
// and Element.InsertAdjacentHTML.
func parseFragmentNodes(html string) ([]dom.Node, error) {
	tok := tokenizer.New(html)
	ctx := &treebuilder.FragmentContext{TagName: "body", Namespace: "html"}
	tb := treebuilder.NewFragment(tok, ctx)

	for {
		tok.SetAllowCDATA(tb.AllowCDATA())
		tt := tok.Next()
		tb.ProcessToken(tt)
		if tt.Type == tokenizer.EOF {
			break
		}
	}

	return tb.FragmentChildNodes(), nil
}
