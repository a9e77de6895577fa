package dom

import "strings"

// ClassList is a live view over an element's class attribute: an
// ordered set of tokens with no duplicates, split on ASCII whitespace
// per the WHATWG "supported tokens" / DOMTokenList semantics restricted
// to what §4.5 asks for (add/remove/toggle/contains).
type ClassList struct {
	el *Element
}

// ClassList returns a live view over e's class attribute.
func (e *Element) ClassList() *ClassList { return &ClassList{el: e} }

func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\f' || r == '\r'
	})
}

func (cl *ClassList) tokens() []string { return splitTokens(cl.el.ClassName()) }

func (cl *ClassList) write(tokens []string) {
	cl.el.SetClassName(strings.Join(tokens, " "))
}

// Contains reports whether token is present.
func (cl *ClassList) Contains(token string) bool {
	for _, t := range cl.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends each token not already present, preserving first-seen
// order and skipping duplicates already in the list or repeated in the
// call.
func (cl *ClassList) Add(tokens ...string) {
	cur := cl.tokens()
	seen := make(map[string]bool, len(cur))
	for _, t := range cur {
		seen[t] = true
	}
	for _, t := range tokens {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		cur = append(cur, t)
	}
	cl.write(cur)
}

// Remove deletes each token if present; missing tokens are ignored.
func (cl *ClassList) Remove(tokens ...string) {
	remove := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		remove[t] = true
	}
	cur := cl.tokens()
	out := cur[:0]
	for _, t := range cur {
		if !remove[t] {
			out = append(out, t)
		}
	}
	cl.write(out)
}

// Toggle adds token if absent and removes it if present, returning the
// resulting membership state. If force is supplied, it instead sets
// membership to that value unconditionally (matching classList.toggle's
// optional "force" argument).
func (cl *ClassList) Toggle(token string, force ...bool) bool {
	present := cl.Contains(token)
	want := !present
	if len(force) > 0 {
		want = force[0]
	}
	switch {
	case want && !present:
		cl.Add(token)
	case !want && present:
		cl.Remove(token)
	}
	return want
}

// Length returns the number of tokens.
func (cl *ClassList) Length() int { return len(cl.tokens()) }

// Item returns the token at index, or "" if out of range.
func (cl *ClassList) Item(index int) string {
	tokens := cl.tokens()
	if index < 0 || index >= len(tokens) {
		return ""
	}
	return tokens[index]
}
