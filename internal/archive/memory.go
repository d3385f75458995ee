package archive

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory Repository used by tests and hosts that
// run without a database.
type MemoryRepository struct {
	mu     sync.RWMutex
	builds map[uuid.UUID]*Build
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{builds: map[uuid.UUID]*Build{}}
}

func (r *MemoryRepository) Save(_ context.Context, build *Build) (*Build, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if build.ID == uuid.Nil {
		build.ID = uuid.New()
	}
	cloned := *build
	r.builds[build.ID] = &cloned
	return build, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Build, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.builds[id]
	if !ok {
		return nil, &NotFoundError{Resource: "build", Key: id.String()}
	}
	cloned := *record
	return &cloned, nil
}

func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]*Build, error) {
	if limit <= 0 {
		limit = 20
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := make([]*Build, 0, len(r.builds))
	for _, record := range r.builds {
		cloned := *record
		records = append(records, &cloned)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].StartedAt.Equal(records[j].StartedAt) {
			return records[i].ID.String() > records[j].ID.String()
		}
		return records[i].StartedAt.After(records[j].StartedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *MemoryRepository) Latest(ctx context.Context) (*Build, error) {
	records, err := r.Recent(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "build", Key: "latest"}
	}
	return records[0], nil
}
