package di

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/templates"
)

const containerPostFixture = `---
title: "The Silent Majority"
date: "2022-08-28 20:30:00 +0000"
tags: [history]
---

Most people keep their heads down.
`

func newDiskContainer(t *testing.T) *Container {
	t.Helper()
	t.Chdir(t.TempDir())

	documents := markdown.NewServiceWithFS(markdown.Config{
		Pattern:   "*.md",
		Recursive: true,
	}, nil, fstest.MapFS{
		"the-silent-majority.md": &fstest.MapFile{
			Data:    []byte(containerPostFixture),
			ModTime: time.Date(2022, time.September, 1, 12, 0, 0, 0, time.UTC),
		},
	})

	page := `<html><body data-route="{{ .Page.Route }}">{{ with .Page.Post }}{{ safeHTML .HTML }}{{ end }}</body></html>`
	renderer := templates.NewFSRenderer(fstest.MapFS{
		"index.html": &fstest.MapFile{Data: []byte(page)},
		"post.html":  &fstest.MapFile{Data: []byte(page)},
		"tag.html":   &fstest.MapFile{Data: []byte(page)},
	})

	cfg := runtimeconfig.DefaultConfig()
	cfg.Site.BaseURL = "https://example.com"

	container, err := NewContainer(cfg,
		WithDocumentService(documents),
		WithRenderer(renderer),
	)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}
	return container
}

func TestContainerBuildWritesInsideOutputDir(t *testing.T) {
	container := newDiskContainer(t)

	result, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(result.Errors) > 0 {
		t.Fatalf("unexpected build errors: %v", result.Errors)
	}

	for _, rel := range []string{
		filepath.Join("dist", "index.html"),
		filepath.Join("dist", "the-silent-majority", "index.html"),
		filepath.Join("dist", "tag", "history", "index.html"),
		filepath.Join("dist", ".generator-manifest.json"),
	} {
		if _, err := os.Stat(rel); err != nil {
			t.Fatalf("expected artifact at %s: %v", rel, err)
		}
	}

	// Nothing may escape the configured output directory.
	if _, err := os.Stat("index.html"); !os.IsNotExist(err) {
		t.Fatalf("index.html written outside the output dir, stat err: %v", err)
	}
}

func TestContainerCleanRemovesOutputDir(t *testing.T) {
	container := newDiskContainer(t)

	if _, err := container.GeneratorService().Build(context.Background(), generator.BuildOptions{}); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := container.GeneratorService().Clean(context.Background()); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if _, err := os.Stat("dist"); !os.IsNotExist(err) {
		t.Fatalf("expected output dir removed, stat err: %v", err)
	}
}
