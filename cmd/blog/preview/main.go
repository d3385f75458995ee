package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	staticcmd "github.com/goliatone/go-blog/internal/commands/static"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	var (
		contentDir = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern    = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		filePath   = flag.String("file", "", "Markdown file to preview (relative to the content root)")
		renderHTML = flag.Bool("render-html", true, "Render the markdown body into HTML as part of the preview")
	)

	flag.Parse()

	if *filePath == "" {
		log.Fatalf("--file is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Pattern:    *pattern,
		Recursive:  true,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	if err := run(context.Background(), module, *filePath, *renderHTML, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run previews one document through the static command handler so the CLI
// shares the validation and logging pipeline with programmatic callers.
func run(ctx context.Context, module *bootstrap.Module, path string, renderHTML bool, out io.Writer) error {
	var preview staticcmd.PreviewEnvelope
	handler := staticcmd.NewPreviewPostHandler(module.Documents, module.Logger)
	err := handler.Execute(ctx, staticcmd.PreviewPostCommand{
		Path: path,
		PreviewCallback: func(envelope staticcmd.PreviewEnvelope) {
			preview = envelope
		},
	})
	if err != nil {
		return fmt.Errorf("preview document: %w", err)
	}

	fmt.Fprintf(out, "Path: %s\nSlug: %s\nChecksum: %x\n\n", preview.Path, preview.Slug, preview.Checksum)

	if preview.FrontMatter != nil {
		frontmatter, err := json.MarshalIndent(preview.FrontMatter, "", "  ")
		if err == nil {
			fmt.Fprintf(out, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if renderHTML {
		fmt.Fprintf(out, "Rendered HTML:\n%s\n", string(preview.HTML))
	} else {
		fmt.Fprintf(out, "Markdown Body:\n%s\n", string(preview.Body))
	}
	return nil
}
