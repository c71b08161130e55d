package views

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/tbellembois/golinks/types"
)

func loadTemplate(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile("../static/index.html")
	if err != nil {
		t.Fatalf("failed to read template: %v", err)
	}
	return string(data)
}

func TestRender(t *testing.T) {
	tpl, err := ParseTemplate(loadTemplate(t))
	if err != nil {
		t.Fatalf("ParseTemplate() error: %v", err)
	}

	page := Page{
		Bkms: types.Bookmarks{
			{Title: "Example Domain", URL: "https://example.com"},
			{Title: "<script>alert(1)</script>", URL: "https://evil.example/?a=1&b=2"},
		},
	}

	var buf bytes.Buffer
	if err := Render(&buf, tpl, page); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<h3>Example Domain</h3>",
		`href="/open/?url=https%3a%2f%2fexample.com"`,
		">https://example.com</a>",
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"<hr/>",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<script>alert(1)") {
		t.Error("title was not escaped")
	}
	if strings.Count(out, "<hr/>") != 1 {
		t.Errorf("want one separator between two bookmarks")
	}
	if strings.Contains(out, `http-equiv="refresh"`) {
		t.Error("refresh set without an error")
	}
}

func TestRender_Error(t *testing.T) {
	tpl, err := ParseTemplate(loadTemplate(t))
	if err != nil {
		t.Fatalf("ParseTemplate() error: %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, tpl, Page{Error: `There was an issue when adding "x" : validation error`}); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "There was an issue when adding &#34;x&#34; : validation error") {
		t.Errorf("rendered page misses the error:\n%s", out)
	}
	if !strings.Contains(out, `http-equiv="refresh"`) {
		t.Error("want a refresh while an error is shown")
	}
	if strings.Contains(out, "<h3>") {
		t.Error("want no bookmark entries")
	}
}
