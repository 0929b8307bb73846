package htmlnode

import "testing"

func TestParse_BodyFallback(t *testing.T) {
	doc, err := Parse("<html><body><p>hi</p></body></html>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	body := doc.Body()
	if body.TagName() != "body" {
		t.Errorf("Body() tag = %q, want body", body.TagName())
	}
}

func TestParse_FragmentWithoutBody(t *testing.T) {
	doc, err := Parse("<p>hi</p>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	body := doc.Body()
	if body.TagName() != "body" {
		t.Errorf("Body() tag = %q, want body (implied)", body.TagName())
	}
}

func TestNode_TextContent(t *testing.T) {
	doc, err := Parse("<p>a<b>b</b>c</p>")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	p := doc.Body().FirstChild()
	if got := p.TextContent(); got != "abc" {
		t.Errorf("TextContent() = %q, want %q", got, "abc")
	}
}

func TestNode_Attribute(t *testing.T) {
	doc, err := Parse(`<a HREF="https://example.com">x</a>`)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	a := doc.Body().FirstChild()
	if got := a.Attribute("href"); got != "https://example.com" {
		t.Errorf("Attribute(%q) = %q, want case-insensitive match", "href", got)
	}
}

func TestParseFragment(t *testing.T) {
	nodes, err := ParseFragment("<b>x</b> <i>y</i>", nil)
	if err != nil {
		t.Fatalf("ParseFragment() error = %v", err)
	}
	if len(nodes) == 0 {
		t.Fatal("ParseFragment() returned no nodes")
	}
}
