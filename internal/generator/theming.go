package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gotheme "github.com/goliatone/go-theme"
)

// Theme describes the theme a build renders with. Path points at the
// directory holding the theme manifest and its templates and assets.
type Theme struct {
	Name    string
	Version string
	Path    string
	Variant string
}

type themeManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

type fsThemeManifestLoader struct{}

func (fsThemeManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := filepath.Clean(strings.TrimSpace(themePath))
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}

	return gotheme.LoadDir(os.DirFS(cleaned), ".")
}

type themeSelector struct {
	registry       *gotheme.MemoryRegistry
	loader         themeManifestLoader
	defaultTheme   string
	defaultVariant string

	mu        sync.Mutex
	manifests map[string]*gotheme.Manifest
}

func newThemeSelector(cfg ThemeConfig, loader themeManifestLoader) *themeSelector {
	if loader == nil {
		loader = fsThemeManifestLoader{}
	}
	return &themeSelector{
		registry:       gotheme.NewRegistry(),
		loader:         loader,
		defaultTheme:   strings.TrimSpace(cfg.Name),
		defaultVariant: strings.TrimSpace(cfg.Variant),
		manifests:      map[string]*gotheme.Manifest{},
	}
}

func (s *themeSelector) Selection(theme *Theme, variant string) (*gotheme.Selection, error) {
	if theme == nil {
		return nil, nil
	}

	if _, err := s.ensureManifest(theme); err != nil {
		return nil, err
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.defaultTheme,
		DefaultVariant: s.defaultVariant,
	}

	resolvedVariant := strings.TrimSpace(variant)
	if resolvedVariant == "" {
		resolvedVariant = s.defaultVariant
	}

	selection, err := selector.Select(theme.Name, resolvedVariant)
	if err != nil {
		return nil, fmt.Errorf("select theme %s: %w", theme.Name, err)
	}
	return selection, nil
}

func (s *themeSelector) ensureManifest(theme *Theme) (*gotheme.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.TrimSpace(theme.Path)
	if manifest, ok := s.manifests[key]; ok {
		return manifest, nil
	}

	manifest, err := s.loader.Load(theme.Path)
	if err != nil {
		return nil, fmt.Errorf("load theme manifest from %s: %w", theme.Path, err)
	}

	normalized := *manifest
	if strings.TrimSpace(normalized.Name) == "" || !strings.EqualFold(normalized.Name, theme.Name) {
		normalized.Name = strings.TrimSpace(theme.Name)
	}
	if strings.TrimSpace(normalized.Version) == "" {
		normalized.Version = strings.TrimSpace(theme.Version)
	}
	if normalized.Name == "" {
		return nil, fmt.Errorf("theme name required for manifest registration")
	}

	if err := s.registry.Register(&normalized); err != nil {
		return nil, fmt.Errorf("register theme manifest: %w", err)
	}
	s.manifests[key] = &normalized
	return &normalized, nil
}
