package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// NewHTMLRenderer returns a TemplateRenderer backed by html/template,
// loading every .html and .tmpl file under baseDir.
func NewHTMLRenderer(baseDir string) (interfaces.TemplateRenderer, error) {
	info, err := os.Stat(baseDir)
	if err != nil {
		return nil, fmt.Errorf("inspect template directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template path %q is not a directory", baseDir)
	}
	return &htmlRenderer{filesystem: os.DirFS(baseDir)}, nil
}

// NewFSRenderer returns a TemplateRenderer reading templates from an fs.FS.
// Tests use this with fstest.MapFS.
func NewFSRenderer(filesystem fs.FS) interfaces.TemplateRenderer {
	return &htmlRenderer{filesystem: filesystem}
}

type htmlRenderer struct {
	filesystem fs.FS
	once       sync.Once
	tpl        *template.Template
	err        error
}

func (r *htmlRenderer) ensureTemplates() (*template.Template, error) {
	r.once.Do(func() {
		var files []string
		err := fs.WalkDir(r.filesystem, ".", func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}
			if entry.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".html" && ext != ".tmpl" {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			r.err = err
			return
		}
		if len(files) == 0 {
			r.err = fmt.Errorf("no templates found")
			return
		}

		root := template.New("blog-theme").Funcs(helperFuncs())
		for _, file := range files {
			data, readErr := fs.ReadFile(r.filesystem, file)
			if readErr != nil {
				r.err = readErr
				return
			}
			name := templateName(file)
			if _, parseErr := root.New(name).Parse(string(data)); parseErr != nil {
				r.err = fmt.Errorf("parse template %s: %w", file, parseErr)
				return
			}
		}
		r.tpl = root
	})
	return r.tpl, r.err
}

// templateName strips the extension so templates are addressable by their
// logical name ("post" for post.html).
func templateName(path string) string {
	base := filepath.ToSlash(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext)
}

func (r *htmlRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *htmlRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	tpl, err := r.ensureTemplates()
	if err != nil {
		return "", err
	}
	target := tpl.Lookup(name)
	if target == nil {
		target = tpl.Lookup(name + ".html")
	}
	if target == nil {
		return "", fmt.Errorf("template %q not found", name)
	}

	var writer io.Writer
	var buffer *bytes.Buffer
	if len(out) > 0 && out[0] != nil {
		writer = out[0]
	} else {
		buffer = &bytes.Buffer{}
		writer = buffer
	}

	if err := target.Execute(writer, data); err != nil {
		return "", err
	}
	if buffer != nil {
		return buffer.String(), nil
	}
	return "", nil
}

func (r *htmlRenderer) RenderString(content string, data any, out ...io.Writer) (string, error) {
	tpl, err := template.New("inline").Funcs(helperFuncs()).Parse(content)
	if err != nil {
		return "", err
	}

	var writer io.Writer
	var buffer *bytes.Buffer
	if len(out) > 0 && out[0] != nil {
		writer = out[0]
	} else {
		buffer = &bytes.Buffer{}
		writer = buffer
	}

	if err := tpl.Execute(writer, data); err != nil {
		return "", err
	}
	if buffer != nil {
		return buffer.String(), nil
	}
	return "", nil
}

func helperFuncs() template.FuncMap {
	return template.FuncMap{
		"safeHTML": func(value any) template.HTML { return toHTML(value) },
		"formatDate": func(layout string, value time.Time) string {
			if value.IsZero() {
				return ""
			}
			return value.Format(layout)
		},
		"isoDate": func(value time.Time) string {
			if value.IsZero() {
				return ""
			}
			return value.Format("2006-01-02")
		},
		"excerpt": excerpt,
		"join":    strings.Join,
		"lower":   strings.ToLower,
	}
}

func toHTML(value any) template.HTML {
	if value == nil {
		return ""
	}
	switch v := value.(type) {
	case template.HTML:
		return v
	case string:
		return template.HTML(v)
	case []byte:
		return template.HTML(v)
	default:
		return template.HTML(fmt.Sprint(v))
	}
}

// excerpt truncates plain text at a word boundary near limit runes.
func excerpt(limit int, value string) string {
	trimmed := strings.TrimSpace(value)
	if limit <= 0 || len([]rune(trimmed)) <= limit {
		return trimmed
	}
	runes := []rune(trimmed)
	cut := limit
	for cut > 0 && !unicode.IsSpace(runes[cut-1]) {
		cut--
	}
	if cut == 0 {
		cut = limit
	}
	return strings.TrimSpace(string(runes[:cut])) + "…"
}
