package interfaces

import (
	"io"
)

// TemplateRenderer resolves logical template names (post, index, category,
// tag) and renders them with the generator's template context. RenderString
// renders inline template content, used by preview tooling.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
