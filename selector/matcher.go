package selector

import "github.com/go-webdom/webdom/dom"

// matchSimple reports whether el satisfies one atom of the grammar.
func matchSimple(el *dom.Element, s Simple) bool {
	switch s.Kind {
	case KindID:
		return el.ID() == s.Name
	case KindClass:
		return el.ClassList().Contains(s.Name)
	default:
		return el.TagName() == upperASCII(s.Name) || el.Local == s.Name
	}
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

// Matches implements the chain-matching rule from §4.4: the rightmost
// step must match el itself, and each earlier step (scanning right to
// left) must be satisfied by some ancestor of el, with the ancestors
// chosen for successive steps required to appear in descending order
// up the tree (not merely "some ancestor, any order") — so "a b c"
// never matches if the element satisfying "b" is a descendant of the
// one satisfying "a" rather than an ancestor of it.
func Matches(el *dom.Element, chain *Chain) bool {
	if len(chain.Steps) == 0 {
		return false
	}
	last := chain.Steps[len(chain.Steps)-1]
	if !matchSimple(el, last) {
		return false
	}
	cursor := dom.Node(el)
	for i := len(chain.Steps) - 2; i >= 0; i-- {
		step := chain.Steps[i]
		found := false
		for anc := dom.ParentElement(cursor); anc != nil; anc = dom.ParentElement(anc) {
			if matchSimple(anc, step) {
				cursor = anc
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Closest walks el and its ancestors (in that order), returning the
// first that Matches chain.
func Closest(el *dom.Element, chain *Chain) *dom.Element {
	for cur := el; cur != nil; cur = dom.ParentElement(cur) {
		if Matches(cur, chain) {
			return cur
		}
	}
	return nil
}
