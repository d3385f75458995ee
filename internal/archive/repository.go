package archive

import (
	"context"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository persists generator run history.
type Repository interface {
	Save(ctx context.Context, build *Build) (*Build, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Build, error)
	Recent(ctx context.Context, limit int) ([]*Build, error)
	Latest(ctx context.Context) (*Build, error)
}

// NotFoundError reports a missing archive record.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// NewBuildRepository creates a go-repository-bun repository for Build records.
func NewBuildRepository(db *bun.DB) repository.Repository[*Build] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Build]{
		NewRecord: func() *Build { return &Build{} },
		GetID: func(b *Build) uuid.UUID {
			return b.ID
		},
		SetID: func(b *Build, id uuid.UUID) {
			b.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(b *Build) string {
			return b.ID.String()
		},
	})
}
