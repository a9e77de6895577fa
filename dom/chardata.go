package dom

import (
	"strings"

	domerrors "github.com/go-webdom/webdom/errors"
)

// Text is a mutable character-data node.
type Text struct {
	parentNode
	Data string
}

// NewText creates a new, detached Text node.
func NewText(data string) *Text { return &Text{Data: data} }

func (t *Text) Type() NodeType      { return TextNode }
func (t *Text) NodeName() string    { return "#text" }
func (t *Text) Children() []Node    { return nil }
func (t *Text) HasChildNodes() bool { return false }
func (t *Text) Clone(_ bool) Node   { return &Text{Data: t.Data} }

// Comment is a mutable comment node (data excludes the <!-- --> markers).
type Comment struct {
	parentNode
	Data string
}

// NewComment creates a new, detached Comment node.
func NewComment(data string) *Comment { return &Comment{Data: data} }

func (c *Comment) Type() NodeType      { return CommentNode }
func (c *Comment) NodeName() string    { return "#comment" }
func (c *Comment) Children() []Node    { return nil }
func (c *Comment) HasChildNodes() bool { return false }
func (c *Comment) Clone(_ bool) Node   { return &Comment{Data: c.Data} }

// ProcessingInstruction is a target/data pair. The HTML5 ingest path never
// produces one (processing instructions are tokenized as bogus comments in
// HTML content), but the factory and mutation API support them for hosts
// that build or transplant XML-ish fragments by hand.
type ProcessingInstruction struct {
	parentNode
	Target string
	Data   string
}

// NewProcessingInstruction creates a new, detached PI node.
func NewProcessingInstruction(target, data string) *ProcessingInstruction {
	return &ProcessingInstruction{Target: target, Data: data}
}

func (p *ProcessingInstruction) Type() NodeType      { return ProcessingInstructionNode }
func (p *ProcessingInstruction) NodeName() string    { return p.Target }
func (p *ProcessingInstruction) Children() []Node    { return nil }
func (p *ProcessingInstruction) HasChildNodes() bool { return false }
func (p *ProcessingInstruction) Clone(_ bool) Node {
	return &ProcessingInstruction{Target: p.Target, Data: p.Data}
}

// CharacterData is implemented by Text, Comment, and ProcessingInstruction:
// the three node kinds whose payload is a single mutable string plus the
// classic editor-style splice operations (§4.5).
type CharacterData interface {
	Node
	CharData() string
	SetCharData(string)
}

func (t *Text) CharData() string        { return t.Data }
func (t *Text) SetCharData(s string)     { t.Data = s }
func (c *Comment) CharData() string      { return c.Data }
func (c *Comment) SetCharData(s string)  { c.Data = s }
func (p *ProcessingInstruction) CharData() string       { return p.Data }
func (p *ProcessingInstruction) SetCharData(s string)   { p.Data = s }

// Length returns the code-unit (UTF-16-free; this implementation counts
// Go string bytes, the closest stand-in for "code unit" without adopting
// UTF-16) length of the payload.
func Length(n CharacterData) int { return len(n.CharData()) }

// SubstringData returns the substring [offset, min(offset+count, len)).
func SubstringData(n CharacterData, offset, count int) (string, error) {
	data := n.CharData()
	if offset > len(data) {
		return "", &domerrors.IndexSizeError{Op: "substringData", Offset: offset, Length: len(data)}
	}
	end := offset + count
	if end > len(data) || end < offset {
		end = len(data)
	}
	return data[offset:end], nil
}

// AppendData concatenates s onto the payload.
func AppendData(n CharacterData, s string) { n.SetCharData(n.CharData() + s) }

// InsertData inserts s at offset.
func InsertData(n CharacterData, offset int, s string) error {
	data := n.CharData()
	if offset > len(data) {
		return &domerrors.IndexSizeError{Op: "insertData", Offset: offset, Length: len(data)}
	}
	n.SetCharData(data[:offset] + s + data[offset:])
	return nil
}

// DeleteData removes count characters starting at offset; count is
// clamped to the remaining length.
func DeleteData(n CharacterData, offset, count int) error {
	data := n.CharData()
	if offset > len(data) {
		return &domerrors.IndexSizeError{Op: "deleteData", Offset: offset, Length: len(data)}
	}
	end := offset + count
	if end > len(data) || end < offset {
		end = len(data)
	}
	n.SetCharData(data[:offset] + data[end:])
	return nil
}

// ReplaceData replaces count characters starting at offset with s.
func ReplaceData(n CharacterData, offset, count int, s string) error {
	data := n.CharData()
	if offset > len(data) {
		return &domerrors.IndexSizeError{Op: "replaceData", Offset: offset, Length: len(data)}
	}
	end := offset + count
	if end > len(data) || end < offset {
		end = len(data)
	}
	n.SetCharData(data[:offset] + s + data[end:])
	return nil
}

// SplitText splits t into two adjacent Text siblings at offset: t keeps
// [0, offset) and a new Text holding [offset, len) is inserted immediately
// after t in its parent (if any). Returns the new node.
func SplitText(t *Text, offset int) (*Text, error) {
	if offset > len(t.Data) {
		return nil, &domerrors.IndexSizeError{Op: "splitText", Offset: offset, Length: len(t.Data)}
	}
	tail := t.Data[offset:]
	t.Data = t.Data[:offset]
	newNode := NewText(tail)
	if p := t.Parent(); p != nil {
		if c, ok := p.(container); ok {
			if err := after(c, t, newNode); err != nil {
				return nil, err
			}
		}
	}
	return newNode, nil
}

// Normalize walks n's subtree depth-first, merging each run of adjacent
// Text siblings into the first and dropping the empties, then recursing
// into element children. Idempotent: a second call is a no-op.
func Normalize(n Node) {
	c, ok := n.(container)
	if !ok {
		return
	}
	children := childrenOf(c)
	merged := make([]Node, 0, len(children))
	var run *Text
	for _, child := range children {
		if txt, ok := child.(*Text); ok {
			if run != nil {
				run.Data += txt.Data
				continue
			}
			run = txt
			merged = append(merged, txt)
			continue
		}
		run = nil
		merged = append(merged, child)
	}
	out := merged[:0]
	for _, child := range merged {
		if txt, ok := child.(*Text); ok && txt.Data == "" {
			continue
		}
		out = append(out, child)
	}
	replaceChildren(c, out)

	for _, child := range out {
		if el, ok := child.(*Element); ok {
			Normalize(el)
		}
	}
}

// Before, After, ReplaceWith, and Remove operate on a character-data
// node's position in its parent, same as the Element versions: they
// only need self's parent, not self's own (nonexistent) children.

func (t *Text) Before(sib Node) error      { return Before(t, sib) }
func (t *Text) After(sib Node) error       { return After(t, sib) }
func (t *Text) ReplaceWith(newNode Node) error { return ReplaceWith(t, newNode) }
func (t *Text) Remove()                    { Remove(t) }
func (t *Text) SubstringData(offset, count int) (string, error) { return SubstringData(t, offset, count) }
func (t *Text) AppendData(s string)                              { AppendData(t, s) }
func (t *Text) InsertData(offset int, s string) error            { return InsertData(t, offset, s) }
func (t *Text) DeleteData(offset, count int) error               { return DeleteData(t, offset, count) }
func (t *Text) ReplaceData(offset, count int, s string) error    { return ReplaceData(t, offset, count, s) }
func (t *Text) SplitText(offset int) (*Text, error)              { return SplitText(t, offset) }
func (t *Text) Length() int                                      { return Length(t) }

func (c *Comment) Before(sib Node) error       { return Before(c, sib) }
func (c *Comment) After(sib Node) error        { return After(c, sib) }
func (c *Comment) ReplaceWith(newNode Node) error { return ReplaceWith(c, newNode) }
func (c *Comment) Remove()                     { Remove(c) }
func (c *Comment) SubstringData(offset, count int) (string, error) { return SubstringData(c, offset, count) }
func (c *Comment) AppendData(s string)                              { AppendData(c, s) }
func (c *Comment) InsertData(offset int, s string) error            { return InsertData(c, offset, s) }
func (c *Comment) DeleteData(offset, count int) error               { return DeleteData(c, offset, count) }
func (c *Comment) ReplaceData(offset, count int, s string) error    { return ReplaceData(c, offset, count, s) }
func (c *Comment) Length() int                                      { return Length(c) }

func (p *ProcessingInstruction) Before(sib Node) error       { return Before(p, sib) }
func (p *ProcessingInstruction) After(sib Node) error        { return After(p, sib) }
func (p *ProcessingInstruction) ReplaceWith(newNode Node) error { return ReplaceWith(p, newNode) }
func (p *ProcessingInstruction) Remove()                     { Remove(p) }
func (p *ProcessingInstruction) Length() int                 { return Length(p) }

// TextContent concatenates every descendant Text's data, in document
// order, with no element markup or comments.
func TextContent(n Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return sb.String()
}

func collectText(n Node, sb *strings.Builder) {
	switch v := n.(type) {
	case *Text:
		sb.WriteString(v.Data)
	default:
		for _, child := range n.Children() {
			collectText(child, sb)
		}
	}
}
