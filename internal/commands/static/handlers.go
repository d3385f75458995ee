package staticcmd

import (
	"context"
	"strings"

	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// BuildSiteHandler orchestrates generator builds using the shared command handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler constructs a handler wired to the provided generator service.
func NewBuildSiteHandler(service generator.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil || !gates.generatorEnabled() {
			return generator.ErrServiceDisabled
		}

		result, err := service.Build(ctx, generator.BuildOptions{
			Force:         msg.Force,
			DryRun:        msg.DryRun,
			IncludeDrafts: msg.IncludeDrafts,
		})
		invokeCallback(msg.ResultCallback, ResultEnvelope{
			Result: result,
			Metadata: map[string]any{
				"operation": "build",
			},
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand]("static.build"),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.Force {
				fields["force"] = true
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			if msg.IncludeDrafts {
				fields["include_drafts"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewPostHandler renders a single document for editorial preview.
type PreviewPostHandler struct {
	inner *commands.Handler[PreviewPostCommand]
}

// NewPreviewPostHandler constructs a handler that loads and renders one document.
func NewPreviewPostHandler(documents interfaces.DocumentService, logger interfaces.Logger, opts ...commands.HandlerOption[PreviewPostCommand]) *PreviewPostHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PreviewPostCommand) error {
		doc, err := documents.Load(ctx, strings.TrimSpace(msg.Path), interfaces.LoadOptions{
			IncludeDrafts: true,
		})
		if err != nil {
			return err
		}
		invokePreview(msg.PreviewCallback, PreviewEnvelope{
			Path:        doc.FilePath,
			Slug:        doc.Slug,
			Title:       doc.FrontMatter.Title,
			Checksum:    doc.Checksum,
			FrontMatter: doc.FrontMatter.Raw,
			Body:        doc.Body,
			HTML:        doc.BodyHTML,
			Metadata: map[string]any{
				"operation": "preview",
				"draft":     doc.FrontMatter.Draft,
			},
		})
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewPostCommand]{
		commands.WithLogger[PreviewPostCommand](baseLogger),
		commands.WithOperation[PreviewPostCommand]("static.preview"),
		commands.WithMessageFields(func(msg PreviewPostCommand) map[string]any {
			return map[string]any{"path": msg.Path}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PreviewPostCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewPostHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewPostCommand].
func (h *PreviewPostHandler) Execute(ctx context.Context, msg PreviewPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanSiteHandler clears generator artifacts.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler constructs a handler that cleans generator output.
func NewCleanSiteHandler(service generator.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[CleanSiteCommand]) *CleanSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg CleanSiteCommand) error {
		if service == nil || !gates.generatorEnabled() {
			return generator.ErrServiceDisabled
		}
		return service.Clean(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](baseLogger),
		commands.WithOperation[CleanSiteCommand]("static.clean"),
		commands.WithTelemetry(commands.DefaultTelemetry[CleanSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

func invokeCallback(cb ResultCallback, envelope ResultEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}

func invokePreview(cb PreviewCallback, envelope PreviewEnvelope) {
	if cb == nil {
		return
	}
	cb(envelope)
}
