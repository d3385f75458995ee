// Package archive keeps a history of generator runs so operators can audit
// builds and diagnose regressions between deploys.
package archive

import (
	"context"
	"errors"

	"github.com/goliatone/go-blog/internal/generator"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/google/uuid"
)

// Service records generator builds and answers history queries. It satisfies
// generator.BuildRecorder so the generator can persist run summaries without
// depending on this package.
type Service struct {
	repo   Repository
	logger interfaces.Logger
}

// NewService wires an archive service over the supplied repository.
func NewService(repo Repository, logger interfaces.Logger) (*Service, error) {
	if repo == nil {
		return nil, errors.New("archive: repository is required")
	}
	svc := &Service{repo: repo, logger: logger}
	return svc, nil
}

// RecordBuild persists the summary of a finished generator run.
func (s *Service) RecordBuild(ctx context.Context, record generator.BuildRecord) error {
	build := &Build{
		ID:            record.ID,
		StartedAt:     record.StartedAt,
		CompletedAt:   record.CompletedAt,
		PostCount:     record.PostCount,
		PagesBuilt:    record.PagesBuilt,
		PagesSkipped:  record.PagesSkipped,
		AssetsBuilt:   record.AssetsBuilt,
		AssetsSkipped: record.AssetsSkipped,
		Succeeded:     record.Succeeded,
		Failure:       record.Failure,
	}
	if build.ID == uuid.Nil {
		build.ID = uuid.New()
	}
	if _, err := s.repo.Save(ctx, build); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Debug("build recorded",
			"build_id", build.ID.String(),
			"succeeded", build.Succeeded,
			"pages_built", build.PagesBuilt,
		)
	}
	return nil
}

// Builds returns the most recent build records, newest first.
func (s *Service) Builds(ctx context.Context, limit int) ([]*Build, error) {
	return s.repo.Recent(ctx, limit)
}

// Build returns a single build record by identifier.
func (s *Service) Build(ctx context.Context, id uuid.UUID) (*Build, error) {
	return s.repo.GetByID(ctx, id)
}

// Latest returns the most recent build, or a NotFoundError when no build has
// been recorded yet.
func (s *Service) Latest(ctx context.Context) (*Build, error) {
	return s.repo.Latest(ctx)
}
