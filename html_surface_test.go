package JustGoHTML

import (
	"testing"

	"github.com/go-webdom/webdom/dom"
)

// TestOuterHTMLInnerHTML exercises the getters added in dom/methods.go,
// which route through the serializer registered by this package's init.
func TestOuterHTMLInnerHTML(t *testing.T) {
	doc, err := Parse("<html><body><ul><li>1</li><li>2</li></ul></body></html>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ul, err := doc.QuerySelector("ul")
	if err != nil || ul == nil {
		t.Fatalf("QuerySelector(ul) = %v, %v", ul, err)
	}

	if got, want := ul.InnerHTML(), "<li>1</li><li>2</li>"; got != want {
		t.Errorf("InnerHTML() = %q, want %q", got, want)
	}
	if got, want := ul.OuterHTML(), "<ul><li>1</li><li>2</li></ul>"; got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}

// TestSetInnerHTMLReordersChildren covers scenario S3: reordering an
// element's children via after(), then reading the result back through
// innerHTML.
func TestSetInnerHTMLReordersChildren(t *testing.T) {
	doc, err := Parse("<html><body><ul><li>1</li><li>2</li></ul></body></html>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	ul, err := doc.QuerySelector("ul")
	if err != nil || ul == nil {
		t.Fatalf("QuerySelector(ul) = %v, %v", ul, err)
	}

	children := dom.ElementChildren(ul)
	if len(children) != 2 {
		t.Fatalf("got %d children, want 2", len(children))
	}
	if err := children[0].After(children[1]); err != nil {
		t.Fatalf("After() error = %v", err)
	}

	if got, want := ul.InnerHTML(), "<li>2</li><li>1</li>"; got != want {
		t.Errorf("InnerHTML() after reorder = %q, want %q", got, want)
	}
}

// TestSetInnerHTML covers the innerHTML = s setter itself.
func TestSetInnerHTML(t *testing.T) {
	doc, err := Parse("<html><body><div id='target'><p>old</p></div></body></html>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	div, err := doc.QuerySelector("#target")
	if err != nil || div == nil {
		t.Fatalf("QuerySelector(#target) = %v, %v", div, err)
	}

	if err := div.SetInnerHTML("<span>new</span><em>text</em>"); err != nil {
		t.Fatalf("SetInnerHTML() error = %v", err)
	}

	if got, want := div.InnerHTML(), "<span>new</span><em>text</em>"; got != want {
		t.Errorf("InnerHTML() = %q, want %q", got, want)
	}
	if got := dom.ElementChildren(div); len(got) != 2 {
		t.Errorf("got %d children, want 2", len(got))
	}
}

// TestSetOuterHTML covers the outerHTML = s setter: the parsed fragment
// is inserted before the target, which is then detached.
func TestSetOuterHTML(t *testing.T) {
	doc, err := Parse("<html><body><div id='target'>old</div><p>after</p></body></html>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	div, err := doc.QuerySelector("#target")
	if err != nil || div == nil {
		t.Fatalf("QuerySelector(#target) = %v, %v", div, err)
	}

	if err := div.SetOuterHTML("<section>new</section>"); err != nil {
		t.Fatalf("SetOuterHTML() error = %v", err)
	}

	if dom.IsConnected(div) {
		t.Errorf("target element still connected after SetOuterHTML")
	}

	body := doc.Body()
	if got, want := body.InnerHTML(), "<section>new</section><p>after</p>"; got != want {
		t.Errorf("body InnerHTML() = %q, want %q", got, want)
	}
}

// TestSetOuterHTMLDetachedIsNoop covers the documented no-op-if-detached
// behavior.
func TestSetOuterHTMLDetachedIsNoop(t *testing.T) {
	el, err := ParseFragment("<div>orphan</div>", "div")
	if err != nil {
		t.Fatalf("ParseFragment() error = %v", err)
	}
	if len(el) != 1 {
		t.Fatalf("got %d fragment nodes, want 1", len(el))
	}
	orphan := el[0]

	if err := orphan.SetOuterHTML("<section>new</section>"); err != nil {
		t.Fatalf("SetOuterHTML() on detached element error = %v", err)
	}
	if got, want := orphan.OuterHTML(), "<div>orphan</div>"; got != want {
		t.Errorf("detached SetOuterHTML() mutated element: OuterHTML() = %q, want %q", got, want)
	}
}

// TestInsertAdjacentHTML covers scenario S7/P10: insertAdjacentHTML must
// insert a multi-node fragment as a single atomic operation, preserving
// the fragment's own order regardless of which of the four positions is
// used.
func TestInsertAdjacentHTML(t *testing.T) {
	tests := []struct {
		name string
		pos  string
		want string
	}{
		{"beforebegin", "beforebegin", "<b>1</b><i>2</i><div id=\"target\"></div>"},
		{"afterbegin", "afterbegin", "<div id=\"target\"><b>1</b><i>2</i></div>"},
		{"beforeend", "beforeend", "<div id=\"target\"><b>1</b><i>2</i></div>"},
		{"afterend", "afterend", "<div id=\"target\"></div><b>1</b><i>2</i>"},
		{"case-insensitive", "BEFOREEND", "<div id=\"target\"><b>1</b><i>2</i></div>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse("<html><body><div id='target'></div></body></html>")
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			div, err := doc.QuerySelector("#target")
			if err != nil || div == nil {
				t.Fatalf("QuerySelector(#target) = %v, %v", div, err)
			}

			if err := div.InsertAdjacentHTML(tt.pos, "<b>1</b><i>2</i>"); err != nil {
				t.Fatalf("InsertAdjacentHTML() error = %v", err)
			}

			if got := doc.Body().InnerHTML(); got != tt.want {
				t.Errorf("body InnerHTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestInsertAdjacentHTMLUnknownPosition covers the documented
// SyntaxError path for an unrecognized position keyword.
func TestInsertAdjacentHTMLUnknownPosition(t *testing.T) {
	doc, err := Parse("<html><body><div id='target'></div></body></html>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	div, err := doc.QuerySelector("#target")
	if err != nil || div == nil {
		t.Fatalf("QuerySelector(#target) = %v, %v", div, err)
	}

	if err := div.InsertAdjacentHTML("sideways", "<b>1</b>"); err == nil {
		t.Error("InsertAdjacentHTML() with unknown position: want error, got nil")
	}
}

// TestInsertAdjacentElementTextCaseInsensitive covers P5/P7/P8: the
// string-keyword insertAdjacentElement/insertAdjacentText entry points,
// routed through the now case-insensitive ParseAdjacentPosition.
func TestInsertAdjacentElementTextCaseInsensitive(t *testing.T) {
	doc, err := Parse("<html><body><div id='target'></div></body></html>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	div, err := doc.QuerySelector("#target")
	if err != nil || div == nil {
		t.Fatalf("QuerySelector(#target) = %v, %v", div, err)
	}

	mark := dom.NewElement("mark")
	if _, err := div.InsertAdjacentElement("AfterBegin", mark); err != nil {
		t.Fatalf("InsertAdjacentElement() error = %v", err)
	}
	if err := div.InsertAdjacentText("BEFOREEND", "tail"); err != nil {
		t.Fatalf("InsertAdjacentText() error = %v", err)
	}

	if got, want := div.OuterHTML(), "<div id=\"target\"><mark></mark>tail</div>"; got != want {
		t.Errorf("OuterHTML() = %q, want %q", got, want)
	}
}
