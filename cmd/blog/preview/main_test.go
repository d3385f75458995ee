package main

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

type stubDocuments struct {
	doc *interfaces.Document
}

func (s *stubDocuments) Load(_ context.Context, path string, _ interfaces.LoadOptions) (*interfaces.Document, error) {
	if s.doc == nil || s.doc.FilePath != path {
		return nil, fmt.Errorf("document %s not found", path)
	}
	return s.doc, nil
}

func (s *stubDocuments) LoadDirectory(context.Context, string, interfaces.LoadOptions) ([]*interfaces.Document, error) {
	return nil, nil
}

func (s *stubDocuments) Render(_ context.Context, markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return markdown, nil
}

func (s *stubDocuments) RenderDocument(_ context.Context, doc *interfaces.Document, _ interfaces.ParseOptions) ([]byte, error) {
	return doc.BodyHTML, nil
}

func previewDocument() *interfaces.Document {
	return &interfaces.Document{
		FilePath: "stray-thoughts.md",
		Slug:     "stray-thoughts",
		FrontMatter: interfaces.FrontMatter{
			Title: "Stray Thoughts",
			Date:  time.Date(2022, time.April, 23, 0, 0, 0, 0, time.UTC),
			Raw:   map[string]any{"title": "Stray Thoughts", "date": "2022-04-23"},
		},
		Body:     []byte("Loose notes."),
		BodyHTML: []byte("<p>Loose notes.</p>"),
		Checksum: []byte{0xde, 0xad},
	}
}

func TestRunPreviewDispatchesThroughHandler(t *testing.T) {
	module := &bootstrap.Module{
		Documents: &stubDocuments{doc: previewDocument()},
		Logger:    logging.NoOp(),
	}
	var out bytes.Buffer

	if err := run(context.Background(), module, "stray-thoughts.md", true, &out); err != nil {
		t.Fatalf("run: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{
		"Slug: stray-thoughts",
		"Checksum: dead",
		`"title": "Stray Thoughts"`,
		"<p>Loose notes.</p>",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected output to contain %q, got %q", want, rendered)
		}
	}
}

func TestRunPreviewMissingPathFailsValidation(t *testing.T) {
	module := &bootstrap.Module{
		Documents: &stubDocuments{},
		Logger:    logging.NoOp(),
	}
	var out bytes.Buffer

	err := run(context.Background(), module, "   ", true, &out)
	if err == nil || !strings.Contains(err.Error(), "path") {
		t.Fatalf("expected validation error naming path, got %v", err)
	}
}

func TestRunPreviewRawBody(t *testing.T) {
	module := &bootstrap.Module{
		Documents: &stubDocuments{doc: previewDocument()},
		Logger:    logging.NoOp(),
	}
	var out bytes.Buffer

	if err := run(context.Background(), module, "stray-thoughts.md", false, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Loose notes.") || strings.Contains(out.String(), "<p>") {
		t.Fatalf("expected raw markdown body, got %q", out.String())
	}
}
