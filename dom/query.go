package dom

// GetElementByID walks root's subtree (root included) for the first
// Element whose id attribute equals id, in document order.
func GetElementByID(root Node, id string) *Element {
	var found *Element
	walkElements(root, func(el *Element) bool {
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// GetElementsByTagName returns every descendant Element of root (root
// itself excluded, per §4.6) whose local name matches name, compared
// case-insensitively against the uppercased local name (matching the
// uppercase tagName HTML elements expose). A name of "*" matches every
// element.
func GetElementsByTagName(root Node, name string) []*Element {
	want := upperASCII(name)
	var out []*Element
	for _, child := range root.Children() {
		walkElements(child, func(el *Element) bool {
			if want == "*" || el.TagName() == want {
				out = append(out, el)
			}
			return true
		})
	}
	return out
}

// GetElementsByClassName returns every descendant Element of root (root
// itself excluded, per §4.6) whose classList contains every token in
// names (space-separated).
func GetElementsByClassName(root Node, names string) []*Element {
	tokens := splitTokens(names)
	if len(tokens) == 0 {
		return nil
	}
	var out []*Element
	for _, child := range root.Children() {
		walkElements(child, func(el *Element) bool {
			cl := el.ClassList()
			for _, t := range tokens {
				if !cl.Contains(t) {
					return true
				}
			}
			out = append(out, el)
			return true
		})
	}
	return out
}

// walkElements visits n and every descendant Element, in document
// order, stopping early if visit returns false.
func walkElements(n Node, visit func(*Element) bool) bool {
	if el, ok := n.(*Element); ok {
		if !visit(el) {
			return false
		}
	}
	for _, child := range n.Children() {
		if !walkElements(child, visit) {
			return false
		}
	}
	return true
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

// The chain-grammar operations (matches, closest, querySelector(All),
// select/selectAll) are implemented by the selector package, which
// imports dom for *Element. Routing them back through dom as plain
// functions would create an import cycle, so dom instead exposes this
// narrow registration hook; selector's init() populates it. This is the
// same shape the source used for its own selector/dom split.
var (
	matchesHook         func(el *Element, sel string) (bool, error)
	closestHook         func(el *Element, sel string) (*Element, error)
	querySelectorHook   func(root Node, sel string) (*Element, error)
	querySelectorAllHook func(root Node, sel string) []*Element
)

// RegisterSelectorEngine wires the chain-grammar implementation into
// the dom package. Called exactly once, from the selector package's
// init.
func RegisterSelectorEngine(
	matches func(el *Element, sel string) (bool, error),
	closest func(el *Element, sel string) (*Element, error),
	querySelector func(root Node, sel string) (*Element, error),
	querySelectorAll func(root Node, sel string) []*Element,
) {
	matchesHook = matches
	closestHook = closest
	querySelectorHook = querySelector
	querySelectorAllHook = querySelectorAll
}

// Matches reports whether el satisfies sel, per the restricted
// ancestor-chain grammar (§4.4).
func (e *Element) Matches(sel string) (bool, error) { return matchesHook(e, sel) }

// Closest walks e and its ancestors, returning the first that Matches
// sel, or nil if none does.
func (e *Element) Closest(sel string) (*Element, error) { return closestHook(e, sel) }

// QuerySelector returns the first descendant Element (root not
// included) that Matches sel, dispatching on sel's leading character
// per §4.4.
func QuerySelector(root Node, sel string) (*Element, error) { return querySelectorHook(root, sel) }

// QuerySelectorAll returns every descendant Element (root not
// included) that Matches sel.
func QuerySelectorAll(root Node, sel string) []*Element { return querySelectorAllHook(root, sel) }

// Select and SelectAll are aliases for QuerySelector/QuerySelectorAll.
// The source this library's behavior is distilled from exposes both a
// select/selectAll pair and a querySelector/querySelectorAll pair from
// two different backends, one of which left select/selectAll
// unimplemented; §9 resolves that open question by making both pairs
// real and identical here.
func Select(root Node, sel string) (*Element, error) { return QuerySelector(root, sel) }
func SelectAll(root Node, sel string) []*Element      { return QuerySelectorAll(root, sel) }
