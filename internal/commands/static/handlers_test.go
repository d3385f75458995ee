package staticcmd

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

type stubGenerator struct {
	buildOpts *generator.BuildOptions
	buildErr  error
	cleaned   bool
}

func (s *stubGenerator) Build(_ context.Context, opts generator.BuildOptions) (*generator.BuildResult, error) {
	s.buildOpts = &opts
	if s.buildErr != nil {
		return nil, s.buildErr
	}
	return &generator.BuildResult{PagesBuilt: 3, PostCount: 2}, nil
}

func (s *stubGenerator) Clean(context.Context) error {
	s.cleaned = true
	return nil
}

type stubDocuments struct {
	doc *interfaces.Document
	err error
}

func (s *stubDocuments) Load(context.Context, string, interfaces.LoadOptions) (*interfaces.Document, error) {
	return s.doc, s.err
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

func enabledGates() FeatureGates {
	return FeatureGates{GeneratorEnabled: func() bool { return true }}
}

func TestBuildSiteHandler(t *testing.T) {
	svc := &stubGenerator{}
	var envelope *ResultEnvelope
	handler := NewBuildSiteHandler(svc, nil, enabledGates())

	err := handler.Execute(context.Background(), BuildSiteCommand{
		Force:         true,
		IncludeDrafts: true,
		ResultCallback: func(e ResultEnvelope) {
			envelope = &e
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if svc.buildOpts == nil || !svc.buildOpts.Force || !svc.buildOpts.IncludeDrafts {
		t.Fatalf("expected options forwarded, got %#v", svc.buildOpts)
	}
	if envelope == nil || envelope.Result == nil || envelope.Result.PagesBuilt != 3 {
		t.Fatalf("expected callback with result, got %#v", envelope)
	}
}

func TestBuildSiteHandlerDisabled(t *testing.T) {
	svc := &stubGenerator{}
	handler := NewBuildSiteHandler(svc, nil, FeatureGates{})

	err := handler.Execute(context.Background(), BuildSiteCommand{})
	if !errors.Is(err, generator.ErrServiceDisabled) {
		t.Fatalf("expected ErrServiceDisabled, got %v", err)
	}
	if svc.buildOpts != nil {
		t.Fatalf("expected build not invoked")
	}
}

func TestBuildSiteHandlerPropagatesFailure(t *testing.T) {
	boom := errors.New("render exploded")
	handler := NewBuildSiteHandler(&stubGenerator{buildErr: boom}, nil, enabledGates())

	if err := handler.Execute(context.Background(), BuildSiteCommand{}); !errors.Is(err, boom) {
		t.Fatalf("expected build error, got %v", err)
	}
}

func TestPreviewPostHandler(t *testing.T) {
	documents := &stubDocuments{doc: &interfaces.Document{
		FilePath: "2022-04-23-preview.md",
		Slug:     "preview",
		FrontMatter: interfaces.FrontMatter{
			Title: "Preview Me",
			Draft: true,
		},
		BodyHTML: []byte("<p>preview</p>"),
	}}

	var envelope *PreviewEnvelope
	handler := NewPreviewPostHandler(documents, nil)

	err := handler.Execute(context.Background(), PreviewPostCommand{
		Path: "2022-04-23-preview.md",
		PreviewCallback: func(e PreviewEnvelope) {
			envelope = &e
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if envelope == nil || envelope.Title != "Preview Me" {
		t.Fatalf("expected preview envelope, got %#v", envelope)
	}
	if string(envelope.HTML) != "<p>preview</p>" {
		t.Fatalf("expected rendered HTML, got %s", envelope.HTML)
	}
	if envelope.Metadata["draft"] != true {
		t.Fatalf("expected draft flag in metadata")
	}
}

func TestPreviewPostHandlerRequiresPath(t *testing.T) {
	handler := NewPreviewPostHandler(&stubDocuments{}, nil)

	if err := handler.Execute(context.Background(), PreviewPostCommand{}); err == nil {
		t.Fatalf("expected validation error for missing path")
	}
}

func TestCleanSiteHandler(t *testing.T) {
	svc := &stubGenerator{}
	handler := NewCleanSiteHandler(svc, nil, enabledGates())

	if err := handler.Execute(context.Background(), CleanSiteCommand{}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !svc.cleaned {
		t.Fatalf("expected clean invoked")
	}
}
