package dom

import "strings"

// Dataset is a bidirectional view over an element's data-* attributes,
// converting between the attribute's kebab-case suffix (after "data-")
// and the dataset's lowerCamelCase key, per the WHATWG dataset algorithm
// restricted to what §4.5 asks for (get/set/remove).
type Dataset struct {
	el *Element
}

// Dataset returns a live view over e's data-* attributes.
func (e *Element) Dataset() *Dataset { return &Dataset{el: e} }

// attrNameFor converts a dataset key (e.g. "userId") to its backing
// attribute name ("data-user-id").
func attrNameFor(key string) string {
	var sb strings.Builder
	sb.WriteString("data-")
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			sb.WriteByte('-')
			sb.WriteRune(r - 'A' + 'a')
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// keyFor converts a data-* attribute's suffix ("user-id") to its
// dataset key ("userId").
func keyFor(suffix string) string {
	var sb strings.Builder
	upperNext := false
	for _, r := range suffix {
		if r == '-' {
			upperNext = true
			continue
		}
		if upperNext && r >= 'a' && r <= 'z' {
			sb.WriteRune(r - 'a' + 'A')
			upperNext = false
			continue
		}
		upperNext = false
		sb.WriteRune(r)
	}
	return sb.String()
}

// Get returns the value of the data-* attribute corresponding to key.
func (d *Dataset) Get(key string) (string, bool) {
	return d.el.Attrs.Get(attrNameFor(key))
}

// Set creates or overwrites the data-* attribute corresponding to key.
func (d *Dataset) Set(key, value string) {
	d.el.Attrs.Set(attrNameFor(key), value)
}

// Remove deletes the data-* attribute corresponding to key, if present.
func (d *Dataset) Remove(key string) {
	d.el.Attrs.Remove(attrNameFor(key))
}

// Has reports whether the data-* attribute corresponding to key exists.
func (d *Dataset) Has(key string) bool {
	return d.el.Attrs.Has(attrNameFor(key))
}

// Keys returns every dataset key currently present, in attribute
// insertion order.
func (d *Dataset) Keys() []string {
	var keys []string
	for _, a := range d.el.Attrs.All() {
		if a.Namespace != "" || !strings.HasPrefix(a.Local, "data-") || a.Local == "data-" {
			continue
		}
		keys = append(keys, keyFor(strings.TrimPrefix(a.Local, "data-")))
	}
	return keys
}
