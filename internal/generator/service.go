package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/pkg/storage"
	"github.com/google/uuid"
)

var (
	// ErrServiceDisabled indicates the generator feature is disabled.
	ErrServiceDisabled  = errors.New("generator: service disabled")
	errRendererRequired = errors.New("generator: template renderer is required")
	errTemplateRequired = errors.New("generator: template is required for rendering")
)

// Service describes the static site generator contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
	Clean(ctx context.Context) error
}

// Config captures runtime behaviour toggles for the generator.
type Config struct {
	OutputDir       string
	BaseURL         string
	SiteTitle       string
	SiteDescription string
	SiteAuthor      string
	CleanBuild      bool
	Incremental     bool
	CopyAssets      bool
	GenerateSitemap bool
	GenerateRobots  bool
	GenerateFeeds   bool
	Workers         int
	Theme           ThemeConfig
	Templates       TemplateSet
}

// ThemeConfig points the generator at the theme it renders with.
type ThemeConfig struct {
	Name              string
	Version           string
	Path              string
	Variant           string
	CSSVariablePrefix string
}

// TemplateSet names the templates used for each page kind.
type TemplateSet struct {
	Index    string
	Post     string
	Category string
	Tag      string
}

func (t TemplateSet) withDefaults() TemplateSet {
	out := t
	if strings.TrimSpace(out.Index) == "" {
		out.Index = "index"
	}
	if strings.TrimSpace(out.Post) == "" {
		out.Post = "post"
	}
	if strings.TrimSpace(out.Category) == "" {
		out.Category = "category"
	}
	if strings.TrimSpace(out.Tag) == "" {
		out.Tag = "tag"
	}
	return out
}

// BuildOptions narrows the scope of a generator run.
type BuildOptions struct {
	DryRun        bool
	Force         bool
	IncludeDrafts bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	BuildID       uuid.UUID
	PagesBuilt    int
	PagesSkipped  int
	AssetsBuilt   int
	AssetsSkipped int
	FeedsBuilt    int
	PostCount     int
	Duration      time.Duration
	Rendered      []RenderedPage
	Diagnostics   []RenderDiagnostic
	Errors        []error
	DryRun        bool
}

// PostSource turns parsed documents into an ordered post collection.
type PostSource interface {
	FromDocuments(documents []*interfaces.Document) (*posts.Collection, error)
}

// BuildRecorder persists build history entries after each run.
type BuildRecorder interface {
	RecordBuild(ctx context.Context, record BuildRecord) error
}

// BuildRecord summarizes a completed build for the archive.
type BuildRecord struct {
	ID            uuid.UUID
	StartedAt     time.Time
	CompletedAt   time.Time
	PostCount     int
	PagesBuilt    int
	PagesSkipped  int
	AssetsBuilt   int
	AssetsSkipped int
	Succeeded     bool
	Failure       string
}

// Dependencies lists the services required by the generator.
type Dependencies struct {
	Documents interfaces.DocumentService
	Posts     PostSource
	Renderer  interfaces.TemplateRenderer
	Storage   interfaces.StorageProvider
	Assets    AssetResolver
	History   BuildRecorder
	Logger    interfaces.Logger
}

// NewService wires a generator implementation with the provided configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	svc := &service{
		cfg:    cfg,
		deps:   deps,
		logger: deps.Logger,
		now:    time.Now,
	}
	if svc.logger == nil {
		svc.logger = logging.NoOp()
	}
	if strings.TrimSpace(cfg.Theme.Path) != "" {
		svc.themeSelector = newThemeSelector(cfg.Theme, nil)
	}
	return svc
}

// NewDisabledService returns a Service that fails all operations with ErrServiceDisabled.
func NewDisabledService() Service {
	return disabledService{}
}

type service struct {
	cfg           Config
	deps          Dependencies
	logger        interfaces.Logger
	themeSelector *themeSelector
	now           func() time.Time
}

type disabledService struct{}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.deps.Renderer == nil {
		return nil, errRendererRequired
	}

	start := time.Now()
	buildCtx, err := s.loadContext(ctx, opts)
	if err != nil {
		return nil, err
	}

	buildID := identity.BuildUUID(buildCtx.GeneratedAt.UTC().Format(time.RFC3339Nano))
	result := &BuildResult{
		BuildID:     buildID,
		DryRun:      opts.DryRun,
		Diagnostics: make([]RenderDiagnostic, 0, len(buildCtx.Pages)),
	}
	if buildCtx.Collection != nil {
		result.PostCount = len(buildCtx.Collection.Posts)
	}

	s.logger.Debug("static build started",
		"build_id", buildID.String(),
		"posts", result.PostCount,
		"pages", len(buildCtx.Pages),
		"dry_run", opts.DryRun,
	)

	siteMeta := SiteMetadata{
		BaseURL:     strings.TrimRight(s.cfg.BaseURL, "/"),
		Title:       s.cfg.SiteTitle,
		Description: s.cfg.SiteDescription,
		Author:      s.cfg.SiteAuthor,
		Metadata:    map[string]any{},
	}

	var (
		mu          sync.Mutex
		rendered    = make([]RenderedPage, 0, len(buildCtx.Pages))
		errorsSlice []error
		baseDir     = strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	)

	manifest, manifestErr := s.loadManifest(ctx)
	if manifestErr != nil {
		errorsSlice = append(errorsSlice, manifestErr)
	}
	if manifest == nil || s.cfg.CleanBuild || opts.Force {
		manifest = newBuildManifest()
	}

	collect := func(outcome renderOutcome) {
		mu.Lock()
		defer mu.Unlock()
		result.Diagnostics = append(result.Diagnostics, outcome.diagnostic)
		if outcome.err != nil {
			errorsSlice = append(errorsSlice, outcome.err)
			return
		}
		if outcome.skipped {
			result.PagesSkipped++
			return
		}
		result.PagesBuilt++
		rendered = append(rendered, outcome.page)
	}

	workerCount := s.effectiveWorkerCount(len(buildCtx.Pages))
	if workerCount <= 1 || len(buildCtx.Pages) <= 1 {
		for _, page := range buildCtx.Pages {
			select {
			case <-ctx.Done():
				collect(renderOutcome{
					diagnostic: RenderDiagnostic{
						PageID: page.PageID(),
						Kind:   page.Kind,
						Route:  page.Route,
						Err:    ctx.Err(),
					},
					err: ctx.Err(),
				})
				return result, ctx.Err()
			default:
				collect(s.renderPage(ctx, siteMeta, buildCtx, page, manifest, baseDir))
			}
		}
	} else {
		if err := s.renderConcurrently(ctx, siteMeta, buildCtx, workerCount, manifest, baseDir, collect); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if opts.DryRun {
		result.Rendered = rendered
		result.Duration = time.Since(start)
		if len(errorsSlice) > 0 {
			result.Errors = append(result.Errors, errorsSlice...)
			return result, errors.Join(errorsSlice...)
		}
		return result, nil
	}

	if s.cfg.CleanBuild {
		if err := s.Clean(ctx); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	writer := newArtifactWriter(s.deps.Storage)
	if err := s.persistPages(ctx, writer, rendered); err != nil {
		errorsSlice = append(errorsSlice, err)
	}

	if s.cfg.CopyAssets {
		assetSummary, err := s.copyAssets(ctx, writer, buildCtx, manifest, baseDir)
		if err != nil {
			errorsSlice = append(errorsSlice, err)
		} else {
			result.AssetsBuilt += assetSummary.Built
			result.AssetsSkipped += assetSummary.Skipped
		}
	}

	if s.cfg.GenerateFeeds {
		items := s.buildFeedItems(buildCtx)
		feeds, err := s.writeFeeds(ctx, writer, siteMeta, buildCtx, items)
		result.FeedsBuilt += feeds
		if err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateSitemap {
		sitemapPages := s.mergeRenderedForSitemap(buildCtx, rendered, manifest)
		if err := s.writeSitemap(ctx, writer, siteMeta, buildCtx, sitemapPages); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if s.cfg.GenerateRobots {
		if err := s.writeRobots(ctx, writer, siteMeta); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	if len(errorsSlice) == 0 {
		manifest.GeneratedAt = buildCtx.GeneratedAt
		for _, page := range rendered {
			if page.PageID == uuid.Nil || strings.TrimSpace(page.Checksum) == "" {
				continue
			}
			manifest.setPage(manifestPage{
				PageID:       page.PageID.String(),
				Kind:         string(page.Kind),
				Route:        page.Route,
				Output:       page.Output,
				Template:     page.Template,
				Hash:         page.Metadata.Hash,
				Checksum:     page.Checksum,
				LastModified: page.Metadata.LastModified,
				RenderedAt:   buildCtx.GeneratedAt,
			})
		}
		if err := s.persistManifest(ctx, writer, manifest); err != nil {
			errorsSlice = append(errorsSlice, err)
		}
	}

	result.Rendered = rendered
	result.Duration = time.Since(start)
	if len(errorsSlice) > 0 {
		result.Errors = append(result.Errors, errorsSlice...)
	}

	s.recordHistory(ctx, buildID, start, result, errorsSlice)

	if len(errorsSlice) > 0 {
		return result, errors.Join(errorsSlice...)
	}
	s.logger.Info("static build finished",
		"build_id", buildID.String(),
		"pages_built", result.PagesBuilt,
		"pages_skipped", result.PagesSkipped,
		"assets_built", result.AssetsBuilt,
		"duration_ms", result.Duration.Milliseconds(),
	)
	return result, nil
}

func (s *service) recordHistory(ctx context.Context, buildID uuid.UUID, start time.Time, result *BuildResult, buildErrors []error) {
	if s.deps.History == nil {
		return
	}
	record := BuildRecord{
		ID:            buildID,
		StartedAt:     start.UTC(),
		CompletedAt:   s.now().UTC(),
		PostCount:     result.PostCount,
		PagesBuilt:    result.PagesBuilt,
		PagesSkipped:  result.PagesSkipped,
		AssetsBuilt:   result.AssetsBuilt,
		AssetsSkipped: result.AssetsSkipped,
		Succeeded:     len(buildErrors) == 0,
	}
	if len(buildErrors) > 0 {
		record.Failure = errors.Join(buildErrors...).Error()
	}
	if err := s.deps.History.RecordBuild(ctx, record); err != nil {
		s.logger.Warn("failed to record build history", "build_id", buildID.String(), "error", err)
	}
}

func (s *service) renderConcurrently(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	workers int,
	manifest *buildManifest,
	baseDir string,
	collect func(renderOutcome),
) error {
	jobs := make(chan *PageData)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for page := range jobs {
				select {
				case <-ctx.Done():
					collect(renderOutcome{
						diagnostic: RenderDiagnostic{
							PageID: page.PageID(),
							Kind:   page.Kind,
							Route:  page.Route,
							Err:    ctx.Err(),
						},
						err: ctx.Err(),
					})
					return
				default:
					collect(s.renderPage(ctx, siteMeta, buildCtx, page, manifest, baseDir))
				}
			}
		}()
	}

	for _, page := range buildCtx.Pages {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return ctx.Err()
		case jobs <- page:
		}
	}
	close(jobs)
	wg.Wait()
	return nil
}

func (s *service) renderPage(
	ctx context.Context,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	data *PageData,
	manifest *buildManifest,
	baseDir string,
) renderOutcome {
	outcome := renderOutcome{
		diagnostic: RenderDiagnostic{
			PageID: data.PageID(),
			Kind:   data.Kind,
			Route:  data.Route,
		},
	}

	select {
	case <-ctx.Done():
		outcome.err = ctx.Err()
		outcome.diagnostic.Err = ctx.Err()
		return outcome
	default:
	}

	templateName := strings.TrimSpace(data.Template)
	if templateName == "" {
		err := fmt.Errorf("generator: page %s (%s) missing template: %w", data.Route, data.Kind, errTemplateRequired)
		outcome.err = err
		outcome.diagnostic.Err = err
		return outcome
	}
	outcome.diagnostic.Template = templateName

	if s.cfg.Incremental && !buildCtx.Options.Force && manifest != nil {
		expectedOutput := joinOutputPath(baseDir, buildOutputPath(data.Route))
		if manifest.shouldSkipPage(data.PageID(), data.Metadata.Hash, expectedOutput) {
			outcome.skipped = true
			outcome.diagnostic.Skipped = true
			return outcome
		}
	}

	templateCtx := TemplateContext{
		Site: siteMeta,
		Page: PageRenderingContext{
			Kind:       data.Kind,
			Route:      data.Route,
			Post:       data.Post,
			Term:       data.Term,
			Posts:      data.Posts,
			Collection: buildCtx.Collection,
			Metadata:   data.Metadata,
		},
		Build: BuildMetadata{
			GeneratedAt: buildCtx.GeneratedAt,
			Options:     buildCtx.Options,
		},
		Theme:   buildThemeContext(buildCtx.Selection, s.cfg.Theme),
		Helpers: newTemplateHelpers(siteMeta.BaseURL),
	}

	start := time.Now()
	rendered, err := s.deps.Renderer.RenderTemplate(templateName, templateCtx)
	duration := time.Since(start)
	outcome.diagnostic.Duration = duration
	if err != nil {
		wrapped := fmt.Errorf("generator: render template %q for page %s: %w", templateName, data.Route, err)
		outcome.err = wrapped
		outcome.diagnostic.Err = wrapped
		return outcome
	}

	outcome.page = RenderedPage{
		PageID:   data.PageID(),
		Kind:     data.Kind,
		Route:    data.Route,
		Template: templateName,
		HTML:     rendered,
		Metadata: data.Metadata,
		Duration: duration,
	}
	return outcome
}

func (s *service) persistPages(ctx context.Context, writer artifactWriter, pages []RenderedPage) error {
	if len(pages) == 0 {
		return nil
	}
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	dirCache := map[string]struct{}{}
	if baseDir != "" {
		dirCache[baseDir] = struct{}{}
		if err := writer.EnsureDir(ctx, baseDir); err != nil {
			return err
		}
	}
	for i := range pages {
		destRel := buildOutputPath(pages[i].Route)
		fullPath := joinOutputPath(baseDir, destRel)
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return err
		}
		checksum := computeHashFromString(pages[i].HTML)
		pages[i].Output = fullPath
		pages[i].Checksum = checksum

		metadata := map[string]string{
			"page_id":  pages[i].PageID.String(),
			"kind":     string(pages[i].Kind),
			"route":    pages[i].Route,
			"template": pages[i].Template,
		}
		if s.cfg.Incremental {
			metadata["incremental"] = "true"
		}
		req := writeFileRequest{
			Path:        fullPath,
			Content:     strings.NewReader(pages[i].HTML),
			Size:        int64(len(pages[i].HTML)),
			Category:    categoryPage,
			ContentType: "text/html; charset=utf-8",
			Checksum:    checksum,
			Metadata:    metadata,
		}
		if err := writer.WriteFile(ctx, req); err != nil {
			return err
		}
	}
	return nil
}

type assetCopySummary struct {
	Built   int
	Skipped int
}

func (s *service) copyAssets(
	ctx context.Context,
	writer artifactWriter,
	buildCtx *BuildContext,
	manifest *buildManifest,
	baseDir string,
) (assetCopySummary, error) {
	summary := assetCopySummary{}
	if s.deps.Assets == nil || buildCtx.Theme == nil {
		return summary, nil
	}
	if strings.TrimSpace(baseDir) == "" {
		baseDir = strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	}
	dirCache := map[string]struct{}{}
	if baseDir != "" {
		dirCache[baseDir] = struct{}{}
		if err := writer.EnsureDir(ctx, baseDir); err != nil {
			return summary, err
		}
	}

	for _, asset := range collectThemeAssets(buildCtx.Selection) {
		reader, err := s.deps.Assets.Open(ctx, buildCtx.Theme, asset)
		if err != nil {
			return summary, err
		}
		data, err := io.ReadAll(reader)
		_ = reader.Close()
		if err != nil {
			return summary, err
		}
		destRel := path.Join("assets", strings.TrimLeft(asset, "/"))
		fullPath := joinOutputPath(baseDir, destRel)
		checksum := computeHash(data)
		if manifest != nil && s.cfg.Incremental && !buildCtx.Options.Force {
			if manifest.shouldSkipAsset(asset, checksum, fullPath) {
				summary.Skipped++
				continue
			}
		}
		if err := ensureDir(ctx, writer, dirCache, path.Dir(fullPath)); err != nil {
			return summary, err
		}
		req := writeFileRequest{
			Path:        fullPath,
			Content:     bytes.NewReader(data),
			Size:        int64(len(data)),
			Category:    categoryAsset,
			ContentType: detectAssetContentType(destRel),
			Checksum:    checksum,
			Metadata: map[string]string{
				"theme": buildCtx.Theme.Name,
				"asset": asset,
			},
		}
		if err := writer.WriteFile(ctx, req); err != nil {
			return summary, err
		}
		summary.Built++
		if manifest != nil {
			manifest.setAsset(manifestAsset{
				Key:      asset,
				Source:   asset,
				Output:   fullPath,
				Checksum: checksum,
				Size:     int64(len(data)),
				CopiedAt: s.now(),
			})
		}
	}
	return summary, nil
}

func (s *service) mergeRenderedForSitemap(
	buildCtx *BuildContext,
	rendered []RenderedPage,
	manifest *buildManifest,
) []RenderedPage {
	if buildCtx == nil || manifest == nil {
		return append([]RenderedPage(nil), rendered...)
	}

	renderedByID := make(map[uuid.UUID]RenderedPage, len(rendered))
	for _, page := range rendered {
		renderedByID[page.PageID] = page
	}

	sitemap := make([]RenderedPage, 0, len(buildCtx.Pages))
	for _, data := range buildCtx.Pages {
		if page, ok := renderedByID[data.PageID()]; ok {
			sitemap = append(sitemap, page)
			continue
		}
		if entry, ok := manifest.lookupPage(data.PageID()); ok {
			sitemap = append(sitemap, RenderedPage{
				PageID:   data.PageID(),
				Kind:     data.Kind,
				Route:    entry.Route,
				Output:   entry.Output,
				Template: entry.Template,
				Metadata: DependencyMetadata{
					Hash:         entry.Hash,
					LastModified: entry.LastModified,
				},
				Checksum: entry.Checksum,
			})
			continue
		}
		sitemap = append(sitemap, RenderedPage{
			PageID:   data.PageID(),
			Kind:     data.Kind,
			Route:    data.Route,
			Template: data.Template,
			Metadata: data.Metadata,
		})
	}
	return sitemap
}

func (s *service) loadManifest(ctx context.Context) (*buildManifest, error) {
	if s.deps.Storage == nil {
		return newBuildManifest(), nil
	}
	target := s.manifestTargetPath()
	if strings.TrimSpace(target) == "" {
		return newBuildManifest(), nil
	}
	rows, err := s.deps.Storage.Query(ctx, storage.OpRead, target)
	if err != nil {
		return nil, fmt.Errorf("generator: read manifest: %w", err)
	}
	if rows == nil {
		return newBuildManifest(), nil
	}
	defer rows.Close()
	if !rows.Next() {
		return newBuildManifest(), nil
	}
	var data []byte
	if err := rows.Scan(&data); err != nil {
		return nil, fmt.Errorf("generator: scan manifest: %w", err)
	}
	return parseManifest(data)
}

func (s *service) manifestTargetPath() string {
	base := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	return joinOutputPath(base, manifestFileName)
}

func (s *service) persistManifest(ctx context.Context, writer artifactWriter, manifest *buildManifest) error {
	if manifest == nil {
		return nil
	}
	data, err := manifest.marshal()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	target := s.manifestTargetPath()
	if strings.TrimSpace(target) == "" {
		return nil
	}
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(target)); err != nil {
		return err
	}
	metadata := map[string]string{
		"version": strconv.Itoa(manifest.Version),
	}
	if !manifest.GeneratedAt.IsZero() {
		metadata["generated_at"] = manifest.GeneratedAt.UTC().Format(time.RFC3339)
	}
	req := writeFileRequest{
		Path:        target,
		Content:     bytes.NewReader(data),
		Size:        int64(len(data)),
		Category:    categoryManifest,
		ContentType: "application/json",
		Checksum:    computeHash(data),
		Metadata:    metadata,
	}
	return writer.WriteFile(ctx, req)
}

func (s *service) writeSitemap(
	ctx context.Context,
	writer artifactWriter,
	siteMeta SiteMetadata,
	buildCtx *BuildContext,
	pages []RenderedPage,
) error {
	content := buildSitemap(siteMeta.BaseURL, pages, buildCtx.GeneratedAt)
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	fullPath := joinOutputPath(baseDir, "sitemap.xml")
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(fullPath)); err != nil {
		return err
	}
	req := writeFileRequest{
		Path:        fullPath,
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    categorySitemap,
		ContentType: "application/xml",
		Checksum:    computeHashFromString(content),
		Metadata: map[string]string{
			"generated_at": buildCtx.GeneratedAt.UTC().Format(time.RFC3339),
		},
	}
	return writer.WriteFile(ctx, req)
}

func (s *service) writeRobots(ctx context.Context, writer artifactWriter, siteMeta SiteMetadata) error {
	content := buildRobots(siteMeta.BaseURL, s.cfg.GenerateSitemap)
	baseDir := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	fullPath := joinOutputPath(baseDir, "robots.txt")
	if err := ensureDir(ctx, writer, map[string]struct{}{}, path.Dir(fullPath)); err != nil {
		return err
	}
	req := writeFileRequest{
		Path:        fullPath,
		Content:     strings.NewReader(content),
		Size:        int64(len(content)),
		Category:    categoryRobots,
		ContentType: "text/plain; charset=utf-8",
		Checksum:    computeHashFromString(content),
		Metadata: map[string]string{
			"generated_at": s.now().UTC().Format(time.RFC3339),
		},
	}
	return writer.WriteFile(ctx, req)
}

// Clean removes the generated output directory contents.
func (s *service) Clean(ctx context.Context) error {
	if s.deps.Storage == nil {
		return nil
	}
	target := strings.Trim(strings.TrimSpace(s.cfg.OutputDir), "/")
	if target == "" {
		target = "."
	}
	_, err := s.deps.Storage.Exec(ctx, storage.OpRemove, target)
	return err
}

func (s *service) effectiveWorkerCount(pageCount int) int {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}
	if pageCount > 0 && workers > pageCount {
		return pageCount
	}
	return workers
}

func ensureDir(ctx context.Context, writer artifactWriter, cache map[string]struct{}, dir string) error {
	dir = strings.Trim(dir, " ")
	if dir == "" || dir == "." {
		return nil
	}
	if cache != nil {
		if _, ok := cache[dir]; ok {
			return nil
		}
		cache[dir] = struct{}{}
	}
	return writer.EnsureDir(ctx, dir)
}

func (disabledService) Build(context.Context, BuildOptions) (*BuildResult, error) {
	return nil, ErrServiceDisabled
}

func (disabledService) Clean(context.Context) error {
	return ErrServiceDisabled
}
