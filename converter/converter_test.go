package converter_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/plugin/commonmark"
)

func newConverter(opts ...converter.Option) *converter.Converter {
	return converter.NewConverter(converter.WithPlugins(commonmark.NewCommonmarkPlugin()), opts...)
}

func TestConvertString(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraph",
			html: "<p>Hello world</p>",
			want: "Hello world",
		},
		{
			name: "setext h1",
			html: "<h1>Title</h1>",
			want: "Title\n=====",
		},
		{
			name: "emphasis and strong",
			html: "<p>a <em>b</em> <strong>c</strong></p>",
			want: "a _b_ **c**",
		},
		{
			name: "unordered list",
			html: "<ul><li>one</li><li>two</li></ul>",
			want: "*   one\n*   two",
		},
		{
			name: "ordered list respects start",
			html: `<ol start="3"><li>a</li><li>b</li></ol>`,
			want: "3.  a\n4.  b",
		},
		{
			name: "inline link",
			html: `<a href="https://example.com">site</a>`,
			want: "[site](https://example.com)",
		},
		{
			name: "image",
			html: `<img src="x.png" alt="alt text">`,
			want: "![alt text](x.png)",
		},
		{
			name: "indented code block default",
			html: "<pre><code>line one\nline two</code></pre>",
			want: "    line one\n    line two",
		},
		{
			name: "inline code backtick escalation",
			html: "<p><code>`inner`</code></p>",
			want: "`` `inner` ``",
		},
		{
			name: "horizontal rule",
			html: "<hr>",
			want: "* * *",
		},
		{
			name: "blockquote",
			html: "<blockquote><p>quoted</p></blockquote>",
			want: "> quoted",
		},
		{
			name: "blank element produces nothing",
			html: "<p></p><p>content</p>",
			want: "content",
		},
		{
			name: "nbsp round-trips as entity",
			html: "<p>a&nbsp;b</p>",
			want: "a&nbsp;b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := newConverter()
			got, err := conv.ConvertString(tt.html)
			if err != nil {
				t.Fatalf("ConvertString() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ConvertString(%q) = %q, want %q", tt.html, got, tt.want)
			}
		})
	}
}

func TestConvertString_FencedCodeBlock(t *testing.T) {
	conv := newConverter(converter.WithCodeBlockStyle("fenced"))
	got, err := conv.ConvertString(`<pre><code class="language-go">fmt.Println("hi")</code></pre>`)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	want := "```go\nfmt.Println(\"hi\")\n```"
	if got != want {
		t.Errorf("ConvertString() = %q, want %q", got, want)
	}
}

func TestConvertString_AtxHeadings(t *testing.T) {
	conv := newConverter(converter.WithHeadingStyle("atx"))
	got, err := conv.ConvertString("<h2>Section</h2>")
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if got != "## Section" {
		t.Errorf("ConvertString() = %q, want %q", got, "## Section")
	}
}

func TestConvertString_ReferencedLinks(t *testing.T) {
	conv := newConverter(converter.WithLinkStyle("referenced"))
	got, err := conv.ConvertString(`<p><a href="https://a.example">a</a> and <a href="https://b.example">b</a></p>`)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if !strings.Contains(got, "[a][1]") || !strings.Contains(got, "[b][2]") {
		t.Fatalf("ConvertString() = %q, missing reference markers", got)
	}
	if !strings.Contains(got, "[1]: https://a.example") || !strings.Contains(got, "[2]: https://b.example") {
		t.Fatalf("ConvertString() = %q, missing reference definitions", got)
	}
}

// TestConvertString_Concurrent exercises the per-call Registrar rebuild:
// every goroutine converts a document with referenced links, and each
// must see its own reference accumulator, never another goroutine's.
func TestConvertString_Concurrent(t *testing.T) {
	conv := newConverter(converter.WithLinkStyle("referenced"))
	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := conv.ConvertString(`<p><a href="https://solo.example">solo</a></p>`)
			if err != nil {
				errs <- err
				return
			}
			if !strings.Contains(got, "[solo][1]") || !strings.Contains(got, "[1]: https://solo.example") {
				errs <- errFormat(got)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

type errFormat string

func (e errFormat) Error() string { return "unexpected conversion result: " + string(e) }

func TestConvertString_KeepTags(t *testing.T) {
	conv := newConverter()
	conv.KeepTags("video")
	got, err := conv.ConvertString(`<p>before</p><video src="clip.mp4"></video>`)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if !strings.Contains(got, `<video src="clip.mp4">`) {
		t.Errorf("ConvertString() = %q, want kept <video> element", got)
	}
}

func TestConvertString_InvalidHTMLStillParses(t *testing.T) {
	conv := newConverter()
	// golang.org/x/net/html is forgiving of malformed input; ConvertString
	// should never return ErrParse for ordinary malformed markup.
	got, err := conv.ConvertString("<p>unterminated")
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if got != "unterminated" {
		t.Errorf("ConvertString() = %q, want %q", got, "unterminated")
	}
}
