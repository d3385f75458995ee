package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	staticcmd "github.com/goliatone/go-blog/internal/commands/static"
	"github.com/goliatone/go-blog/internal/generator"
)

var moduleBuilder = bootstrap.BuildModule

type buildParams struct {
	force         bool
	dryRun        bool
	includeDrafts bool
	clean         bool
}

func main() {
	var (
		contentDir    = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern       = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		outputDir     = flag.String("output-dir", "dist", "Directory receiving the generated site")
		templatesDir  = flag.String("templates-dir", "", "Directory holding the page templates")
		themePath     = flag.String("theme-path", "", "Directory holding the active theme")
		themeName     = flag.String("theme", "", "Theme name to select")
		themeVariant  = flag.String("theme-variant", "", "Theme variant to select")
		baseURL       = flag.String("base-url", "", "Canonical base URL for links, feeds and the sitemap")
		siteTitle     = flag.String("site-title", "", "Site title used on the index page and in feeds")
		archiveDSN    = flag.String("archive-dsn", "", "SQLite DSN for recording build history")
		archive       = flag.Bool("archive", false, "Record build history in the archive database")
		force         = flag.Bool("force", false, "Rebuild every page even when unchanged")
		dryRun        = flag.Bool("dry-run", false, "Render pages without writing any output")
		includeDrafts = flag.Bool("drafts", false, "Include draft documents in the build")
		clean         = flag.Bool("clean", false, "Remove generated output instead of building")
	)

	flag.Parse()

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:     *contentDir,
		Pattern:        *pattern,
		Recursive:      true,
		OutputDir:      *outputDir,
		TemplatesDir:   *templatesDir,
		ThemePath:      *themePath,
		ThemeName:      *themeName,
		ThemeVariant:   *themeVariant,
		BaseURL:        *baseURL,
		SiteTitle:      *siteTitle,
		ArchiveDSN:     *archiveDSN,
		ArchiveEnabled: *archive,
	})
	if err != nil {
		log.Fatalf("bootstrap module: %v", err)
	}

	params := buildParams{
		force:         *force,
		dryRun:        *dryRun,
		includeDrafts: *includeDrafts,
		clean:         *clean,
	}
	if err := run(context.Background(), module, params, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

// run dispatches the requested operation through the static command handlers
// so CLI builds pass the same validation, timeout and logging pipeline as
// programmatic callers.
func run(ctx context.Context, module *bootstrap.Module, params buildParams, out io.Writer) error {
	if params.clean {
		handler := staticcmd.NewCleanSiteHandler(module.Generator, module.Logger, module.Gates)
		if err := handler.Execute(ctx, staticcmd.CleanSiteCommand{}); err != nil {
			return fmt.Errorf("clean site: %w", err)
		}
		fmt.Fprintln(out, "Output directory cleaned")
		return nil
	}

	var result *generator.BuildResult
	handler := staticcmd.NewBuildSiteHandler(module.Generator, module.Logger, module.Gates)
	err := handler.Execute(ctx, staticcmd.BuildSiteCommand{
		Force:         params.force,
		DryRun:        params.dryRun,
		IncludeDrafts: params.includeDrafts,
		ResultCallback: func(envelope staticcmd.ResultEnvelope) {
			result = envelope.Result
		},
	})
	if err != nil {
		return fmt.Errorf("build site: %w", err)
	}
	if result == nil {
		return fmt.Errorf("build site: no result produced")
	}

	fmt.Fprintf(out, "Build %s completed in %s\n", result.BuildID, result.Duration)
	fmt.Fprintf(out, "Posts: %d\n", result.PostCount)
	fmt.Fprintf(out, "Pages: %d built, %d skipped\n", result.PagesBuilt, result.PagesSkipped)
	fmt.Fprintf(out, "Assets: %d copied, %d skipped\n", result.AssetsBuilt, result.AssetsSkipped)
	if result.FeedsBuilt > 0 {
		fmt.Fprintf(out, "Feeds: %d\n", result.FeedsBuilt)
	}
	if result.DryRun {
		fmt.Fprintln(out, "Dry run: no files were written")
	}
	return nil
}
