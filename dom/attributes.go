package dom

// Attr is one entry in an Attributes map: a namespaced, prefixed name
// plus its value, per the WHATWG "attribute" infra (§3.3/§4.5).
type Attr struct {
	Namespace string // "" for attributes with no namespace
	Prefix    string // "" when unprefixed
	Local     string
	Value     string
}

// Attributes is an ordered, expanded-name-keyed attribute map. Lookups
// and mutations that don't mention a namespace (Get/Set/Remove/Has)
// operate on local name only and match the WHATWG "attribute list"
// behavior for HTML elements, where non-namespaced callers almost
// always mean the no-namespace attribute of that local name; the NS
// variants disambiguate by the full expanded name when more than one
// namespace can legitimately share a local name (xlink:href vs href).
type Attributes struct {
	entries []Attr
}

// NewAttributes creates a new, empty attribute map.
func NewAttributes() *Attributes { return &Attributes{} }

func (a *Attributes) find(namespace, local string) int {
	for i, e := range a.entries {
		if e.Local == local && e.Namespace == namespace {
			return i
		}
	}
	return -1
}

// findLocal returns the first entry (in insertion order) whose local
// name matches, irrespective of namespace.
func (a *Attributes) findLocal(local string) int {
	for i, e := range a.entries {
		if e.Local == local {
			return i
		}
	}
	return -1
}

// Get returns the no-namespace (or first, if none has an empty
// namespace) attribute value for local, and whether it was present.
func (a *Attributes) Get(local string) (string, bool) {
	if i := a.find("", local); i >= 0 {
		return a.entries[i].Value, true
	}
	if i := a.findLocal(local); i >= 0 {
		return a.entries[i].Value, true
	}
	return "", false
}

// Has reports whether local is present in any namespace.
func (a *Attributes) Has(local string) bool {
	_, ok := a.Get(local)
	return ok
}

// Set creates or overwrites the no-namespace attribute named local,
// preserving its original position if it already existed, or appending
// it at the end if new.
func (a *Attributes) Set(local, value string) {
	if i := a.find("", local); i >= 0 {
		a.entries[i].Value = value
		return
	}
	a.entries = append(a.entries, Attr{Local: local, Value: value})
}

// Remove deletes the no-namespace attribute named local, if present.
func (a *Attributes) Remove(local string) {
	if i := a.find("", local); i >= 0 {
		a.entries = append(a.entries[:i], a.entries[i+1:]...)
	}
}

// GetNS returns the value of the attribute with the exact given
// namespace and local name.
func (a *Attributes) GetNS(namespace, local string) (string, bool) {
	if i := a.find(namespace, local); i >= 0 {
		return a.entries[i].Value, true
	}
	return "", false
}

// HasNS reports whether the exact namespace+local pair is present.
func (a *Attributes) HasNS(namespace, local string) bool {
	return a.find(namespace, local) >= 0
}

// SetNS creates or overwrites the attribute identified by the exact
// namespace+local pair, recording prefix for serialization.
func (a *Attributes) SetNS(namespace, prefix, local, value string) {
	if i := a.find(namespace, local); i >= 0 {
		a.entries[i].Prefix = prefix
		a.entries[i].Value = value
		return
	}
	a.entries = append(a.entries, Attr{Namespace: namespace, Prefix: prefix, Local: local, Value: value})
}

// RemoveNS deletes the attribute identified by the exact namespace+
// local pair, if present.
func (a *Attributes) RemoveNS(namespace, local string) {
	if i := a.find(namespace, local); i >= 0 {
		a.entries = append(a.entries[:i], a.entries[i+1:]...)
	}
}

// All returns the attributes in insertion order. The returned slice is
// a defensive copy; mutating it has no effect on the map.
func (a *Attributes) All() []Attr {
	out := make([]Attr, len(a.entries))
	copy(out, a.entries)
	return out
}

// Len returns the number of attributes.
func (a *Attributes) Len() int { return len(a.entries) }

// Clone returns an independent copy with the same entries in the same
// order.
func (a *Attributes) Clone() *Attributes {
	clone := &Attributes{entries: make([]Attr, len(a.entries))}
	copy(clone.entries, a.entries)
	return clone
}
