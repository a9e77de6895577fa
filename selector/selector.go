package selector

import (
	"github.com/go-webdom/webdom/dom"
	domerrors "github.com/go-webdom/webdom/errors"
)

func init() {
	dom.RegisterSelectorEngine(matchesEntry, closestEntry, querySelectorEntry, querySelectorAllEntry)
}

func matchesEntry(el *dom.Element, sel string) (bool, error) {
	chain, err := Parse(sel)
	if err != nil {
		return false, err
	}
	return Matches(el, chain), nil
}

func closestEntry(el *dom.Element, sel string) (*dom.Element, error) {
	chain, err := Parse(sel)
	if err != nil {
		return nil, err
	}
	return Closest(el, chain), nil
}

// descendantElements returns every Element under root, root excluded,
// in document order.
func descendantElements(root dom.Node) []*dom.Element {
	var out []*dom.Element
	for _, child := range root.Children() {
		if el, ok := child.(*dom.Element); ok {
			out = append(out, el)
		}
		out = append(out, descendantElements(child)...)
	}
	return out
}

// lookupBody finds the <body> reachable from root: root's own document,
// root's owner document, or (falling back, for a detached subtree) the
// first body-named descendant.
func lookupBody(root dom.Node) *dom.Element {
	if doc, ok := root.(*dom.Document); ok {
		return doc.Body()
	}
	if doc := dom.OwnerDocument(root); doc != nil {
		return doc.Body()
	}
	for _, el := range descendantElements(root) {
		if el.Local == "body" {
			return el
		}
	}
	return nil
}

// querySelectorEntry dispatches sel by leading character, per §4.4: `#`
// is an id lookup, `.` a class lookup, anything else a tag lookup. The
// special `body>*` token is handled first and yields body's element
// children.
func querySelectorEntry(root dom.Node, sel string) (*dom.Element, error) {
	if sel == "body>*" {
		if body := lookupBody(root); body != nil {
			return dom.FirstElementChild(body), nil
		}
		return nil, nil
	}
	if sel == "" {
		return nil, &domerrors.DOMSyntaxError{Op: "querySelector", Message: "empty selector"}
	}
	switch sel[0] {
	case '#':
		id := sel[1:]
		for _, el := range descendantElements(root) {
			if el.ID() == id {
				return el, nil
			}
		}
		return nil, nil
	case '.':
		class := sel[1:]
		for _, el := range descendantElements(root) {
			if el.ClassList().Contains(class) {
				return el, nil
			}
		}
		return nil, nil
	default:
		want := upperASCII(sel)
		for _, el := range descendantElements(root) {
			if el.TagName() == want {
				return el, nil
			}
		}
		return nil, nil
	}
}

func querySelectorAllEntry(root dom.Node, sel string) []*dom.Element {
	if sel == "body>*" {
		if body := lookupBody(root); body != nil {
			return dom.ElementChildren(body)
		}
		return nil
	}
	if sel == "" {
		return nil
	}
	switch sel[0] {
	case '#':
		id := sel[1:]
		var out []*dom.Element
		for _, el := range descendantElements(root) {
			if el.ID() == id {
				out = append(out, el)
			}
		}
		return out
	case '.':
		class := sel[1:]
		var out []*dom.Element
		for _, el := range descendantElements(root) {
			if el.ClassList().Contains(class) {
				out = append(out, el)
			}
		}
		return out
	default:
		want := upperASCII(sel)
		var out []*dom.Element
		for _, el := range descendantElements(root) {
			if el.TagName() == want {
				out = append(out, el)
			}
		}
		return out
	}
}
