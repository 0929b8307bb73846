package base_test

import (
	"strings"
	"testing"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/plugin/base"
	"github.com/kaufmann-labs/htmd/plugin/commonmark"
)

func TestBasePlugin_StripsNoise(t *testing.T) {
	conv := converter.NewConverter(converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	))

	html := `<html><head><title>t</title><meta charset="utf-8"><style>p{color:red}</style></head>
	<body>
		<script>alert(1)</script>
		<p>keep me</p>
		<noscript>no js</noscript>
		<iframe src="https://evil.example"></iframe>
	</body></html>`

	got, err := conv.ConvertString(html)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}

	if strings.TrimSpace(got) != "keep me" {
		t.Errorf("ConvertString() = %q, want only the paragraph content", got)
	}
}

func TestBasePlugin_NotInstalledKeepsScriptText(t *testing.T) {
	conv := converter.NewConverter(converter.WithPlugins(commonmark.NewCommonmarkPlugin()))
	got, err := conv.ConvertString(`<p>before</p><script>alert(1)</script>`)
	if err != nil {
		t.Fatalf("ConvertString() error = %v", err)
	}
	if !strings.Contains(got, "alert(1)") {
		t.Errorf("ConvertString() = %q, want script text preserved without the base plugin", got)
	}
}
