package templates

import (
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestRenderTemplate(t *testing.T) {
	renderer := NewFSRenderer(fstest.MapFS{
		"post.html":  &fstest.MapFile{Data: []byte(`<article><h1>{{.Title}}</h1>{{safeHTML .Body}}</article>`)},
		"index.tmpl": &fstest.MapFile{Data: []byte(`<ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>`)},
	})

	out, err := renderer.RenderTemplate("post", map[string]any{
		"Title": "Hello & Welcome",
		"Body":  []byte("<p>raw</p>"),
	})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if !strings.Contains(out, "Hello &amp; Welcome") {
		t.Fatalf("expected escaped title, got %s", out)
	}
	if !strings.Contains(out, "<p>raw</p>") {
		t.Fatalf("expected safeHTML passthrough, got %s", out)
	}

	out, err = renderer.RenderTemplate("index", map[string]any{"Items": []string{"a", "b"}})
	if err != nil {
		t.Fatalf("RenderTemplate index: %v", err)
	}
	if out != "<ul><li>a</li><li>b</li></ul>" {
		t.Fatalf("unexpected index output %q", out)
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	renderer := NewFSRenderer(fstest.MapFS{
		"post.html": &fstest.MapFile{Data: []byte(`ok`)},
	})

	if _, err := renderer.RenderTemplate("absent", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestRenderString(t *testing.T) {
	renderer := NewFSRenderer(fstest.MapFS{
		"post.html": &fstest.MapFile{Data: []byte(`unused`)},
	})

	out, err := renderer.RenderString(`{{lower .Name}}`, map[string]any{"Name": "LOUD"})
	if err != nil {
		t.Fatalf("RenderString: %v", err)
	}
	if out != "loud" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestHelperFormatDate(t *testing.T) {
	renderer := NewFSRenderer(fstest.MapFS{
		"dates.html": &fstest.MapFile{Data: []byte(`{{isoDate .When}}|{{formatDate "Jan 2, 2006" .When}}`)},
	})

	out, err := renderer.RenderTemplate("dates", map[string]any{
		"When": time.Date(2022, 8, 28, 20, 30, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("RenderTemplate: %v", err)
	}
	if out != "2022-08-28|Aug 28, 2022" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestExcerpt(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		in    string
		want  string
	}{
		{name: "short text untouched", limit: 50, in: "short", want: "short"},
		{name: "word boundary", limit: 10, in: "one two three four", want: "one two…"},
		{name: "zero limit", limit: 0, in: "anything", want: "anything"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := excerpt(tc.limit, tc.in); got != tc.want {
				t.Fatalf("excerpt(%d, %q) = %q, want %q", tc.limit, tc.in, got, tc.want)
			}
		})
	}
}
