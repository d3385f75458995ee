package archive

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunRepository implements Repository on top of a bun database.
type BunRepository struct {
	db   *bun.DB
	repo repository.Repository[*Build]
}

// NewBunRepository creates a build history repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{
		db:   db,
		repo: NewBuildRepository(db),
	}
}

// EnsureSchema creates the builds table when it does not exist yet.
func (r *BunRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.NewCreateTable().Model((*Build)(nil)).IfNotExists().Exec(ctx); err != nil {
		return fmt.Errorf("archive: create builds table: %w", err)
	}
	return nil
}

func (r *BunRepository) Save(ctx context.Context, build *Build) (*Build, error) {
	record, err := r.repo.Create(ctx, build)
	if err != nil {
		return nil, fmt.Errorf("archive: save build: %w", err)
	}
	return record, nil
}

func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Build, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "build", id.String())
	}
	return record, nil
}

func (r *BunRepository) Recent(ctx context.Context, limit int) ([]*Build, error) {
	if limit <= 0 {
		limit = 20
	}
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.started_at DESC")
		}),
		repository.SelectPaginate(limit, 0),
	)
	if err != nil {
		return nil, fmt.Errorf("archive: list builds: %w", err)
	}
	return records, nil
}

func (r *BunRepository) Latest(ctx context.Context) (*Build, error) {
	records, err := r.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "build", Key: "latest"}
	}
	return records[0], nil
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}
	return fmt.Errorf("%s repository error: %w", resource, err)
}
