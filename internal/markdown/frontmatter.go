package markdown

import (
	"bytes"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// dateLayouts enumerates the accepted front matter date formats. Offsets are
// mandatory unless the value is a bare date, which resolves to UTC midnight.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05 -07:00",
	"2006-01-02",
}

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front matter, the Markdown
// body without delimiters, and any error encountered. The path argument is
// used only to build diagnostics.
func ParseFrontMatter(path string, source []byte) (interfaces.FrontMatter, []byte, error) {
	source = bytes.TrimPrefix(source, []byte("\ufeff"))
	if !hasFrontMatterBlock(source) {
		return interfaces.FrontMatter{}, nil, malformedDocumentError(path, nil)
	}

	var meta frontMatterEnvelope
	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, malformedDocumentError(path, err)
	}
	// An unterminated header comes back as "no front matter found": the body
	// equals the whole input. Reject it instead of parsing the header as prose.
	if bytes.Equal(bytes.TrimSpace(body), bytes.TrimSpace(source)) {
		return interfaces.FrontMatter{}, nil, malformedDocumentError(path, nil)
	}

	fm, err := envelopeToFrontMatter(path, meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, err
	}
	return fm, body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(path, source)
	if err != nil {
		return nil, err
	}

	slug := strings.TrimSpace(fm.Slug)
	if slug == "" {
		slug = slugFromFilename(path)
	}

	return &interfaces.Document{
		FilePath:     path,
		Slug:         slug,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}, nil
}

// EncodeFrontMatter serialises a front matter record back to YAML. The Raw
// map is the source of truth so the emitted key set matches the original
// header, including keys the renderer ignores.
func EncodeFrontMatter(fm interfaces.FrontMatter) ([]byte, error) {
	raw := fm.Raw
	if raw == nil {
		raw = map[string]any{}
	}
	return yaml.Marshal(raw)
}

type frontMatterEnvelope struct {
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug"`
	Summary    string         `yaml:"summary"`
	Author     string         `yaml:"author"`
	Date       string         `yaml:"date"`
	Categories []string       `yaml:"categories"`
	Tags       []string       `yaml:"tags"`
	Flags      []string       `yaml:"flags"`
	Draft      bool           `yaml:"draft"`
	Custom     map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(path string, env frontMatterEnvelope) (interfaces.FrontMatter, error) {
	if err := validateRequired(env); err != nil {
		return interfaces.FrontMatter{}, validationError(path, err)
	}

	date, err := parseDate(env.Date)
	if err != nil {
		return interfaces.FrontMatter{}, dateParseError(path, env.Date, err)
	}

	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+8)
	for key, value := range env.Custom {
		raw[key] = value
	}

	raw["title"] = env.Title
	raw["date"] = env.Date
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	if len(env.Categories) > 0 {
		raw["categories"] = append([]string(nil), env.Categories...)
	}
	if len(env.Tags) > 0 {
		raw["tags"] = append([]string(nil), env.Tags...)
	}
	if len(env.Flags) > 0 {
		raw["flags"] = append([]string(nil), env.Flags...)
	}
	if env.Draft {
		raw["draft"] = true
	}

	return interfaces.FrontMatter{
		Title:      env.Title,
		Slug:       env.Slug,
		Summary:    env.Summary,
		Author:     env.Author,
		Date:       date,
		Categories: append([]string(nil), env.Categories...),
		Tags:       append([]string(nil), env.Tags...),
		Flags:      append([]string(nil), env.Flags...),
		Draft:      env.Draft,
		Custom:     cloneMap(env.Custom),
		Raw:        raw,
	}, nil
}

func validateRequired(env frontMatterEnvelope) error {
	errs := validation.Errors{}
	if strings.TrimSpace(env.Title) == "" {
		errs["title"] = validation.NewError("blog.markdown.title_required", "title is required")
	}
	if strings.TrimSpace(env.Date) == "" {
		errs["date"] = validation.NewError("blog.markdown.date_required", "date is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range dateLayouts {
		ts, err := time.Parse(layout, trimmed)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// hasFrontMatterBlock reports whether the source opens with a recognised
// front matter delimiter. Documents without one are rejected outright rather
// than treated as all-body files.
func hasFrontMatterBlock(source []byte) bool {
	trimmed := bytes.TrimLeft(source, "\ufeff \t\r\n")
	for _, delim := range [][]byte{[]byte("---"), []byte("+++"), []byte("{")} {
		if bytes.HasPrefix(trimmed, delim) {
			return true
		}
	}
	return false
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
