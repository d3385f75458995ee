package storage

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// NewMemory returns a Provider that keeps artifacts in a map. Used by tests
// and dry-run tooling where touching the real filesystem is undesirable.
func NewMemory() *MemoryProvider {
	return &MemoryProvider{files: map[string][]byte{}, dirs: map[string]struct{}{}}
}

// MemoryProvider stores written artifacts keyed by slash path.
type MemoryProvider struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

func (s *MemoryProvider) Query(_ context.Context, op string, args ...any) (Rows, error) {
	if op != OpRead || len(args) == 0 {
		return nil, nil
	}
	path, _ := args[0].(string)
	s.mu.RLock()
	data, ok := s.files[strings.TrimPrefix(path, "/")]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &fileRows{data: data}, nil
}

func (s *MemoryProvider) Exec(_ context.Context, op string, args ...any) (Result, error) {
	switch op {
	case OpEnsureDir:
		if len(args) > 0 {
			if path, ok := args[0].(string); ok {
				s.mu.Lock()
				s.dirs[strings.TrimPrefix(path, "/")] = struct{}{}
				s.mu.Unlock()
			}
		}
	case OpWrite:
		if len(args) >= 2 {
			path, _ := args[0].(string)
			if reader, ok := args[1].(io.Reader); ok && reader != nil {
				data, err := io.ReadAll(reader)
				if err != nil {
					return emptyResult{}, err
				}
				s.mu.Lock()
				s.files[strings.TrimPrefix(path, "/")] = data
				s.mu.Unlock()
			}
		}
	case OpRemove:
		if len(args) > 0 {
			path, _ := args[0].(string)
			prefix := strings.TrimPrefix(path, "/")
			s.mu.Lock()
			for key := range s.files {
				if key == prefix || strings.HasPrefix(key, prefix+"/") {
					delete(s.files, key)
				}
			}
			s.mu.Unlock()
		}
	}
	return emptyResult{}, nil
}

func (s *MemoryProvider) Transaction(ctx context.Context, fn func(tx Transaction) error) error {
	if fn == nil {
		return nil
	}
	return fn(&memoryTx{provider: s})
}

// File returns the stored content for path along with a presence flag.
func (s *MemoryProvider) File(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[strings.TrimPrefix(path, "/")]
	return data, ok
}

// Paths lists every written artifact path in lexical order.
func (s *MemoryProvider) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.files))
	for key := range s.files {
		paths = append(paths, key)
	}
	sort.Strings(paths)
	return paths
}

type memoryTx struct {
	provider *MemoryProvider
}

func (tx *memoryTx) Query(ctx context.Context, op string, args ...any) (Rows, error) {
	return tx.provider.Query(ctx, op, args...)
}

func (tx *memoryTx) Exec(ctx context.Context, op string, args ...any) (Result, error) {
	return tx.provider.Exec(ctx, op, args...)
}

func (tx *memoryTx) Transaction(context.Context, func(Transaction) error) error {
	return nil
}

func (tx *memoryTx) Commit() error   { return nil }
func (tx *memoryTx) Rollback() error { return nil }
