package generator

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// AssetResolver resolves theme assets for copying into static outputs.
type AssetResolver interface {
	Open(ctx context.Context, theme *Theme, asset string) (io.ReadCloser, error)
	ResolvePath(theme *Theme, asset string) (string, error)
}

// NoOpAssetResolver skips asset resolution.
type NoOpAssetResolver struct{}

func (NoOpAssetResolver) Open(context.Context, *Theme, string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("generator: asset resolver not configured")
}

func (NoOpAssetResolver) ResolvePath(*Theme, string) (string, error) {
	return "", fmt.Errorf("generator: asset resolver not configured")
}

// FSAssetResolver reads assets from the theme directory on disk.
type FSAssetResolver struct{}

func (r FSAssetResolver) Open(ctx context.Context, theme *Theme, asset string) (io.ReadCloser, error) {
	resolved, err := r.ResolvePath(theme, asset)
	if err != nil {
		return nil, err
	}
	return os.Open(resolved)
}

func (FSAssetResolver) ResolvePath(theme *Theme, asset string) (string, error) {
	if theme == nil {
		return "", fmt.Errorf("generator: theme required for asset resolution")
	}
	root := strings.TrimSpace(theme.Path)
	if root == "" {
		return "", fmt.Errorf("generator: theme path required for asset resolution")
	}
	root = filepath.Clean(root)
	cleaned := filepath.Clean("/" + filepath.FromSlash(strings.TrimSpace(asset)))
	if cleaned == "/" {
		return "", fmt.Errorf("generator: asset path required")
	}
	return filepath.Join(root, cleaned), nil
}

func collectThemeAssets(selection *gotheme.Selection) []string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	assets := selection.Manifest.Assets.Files
	if variant := strings.TrimSpace(selection.Variant); variant != "" {
		if v, ok := selection.Manifest.Variants[variant]; ok && len(v.Assets.Files) > 0 {
			merged := make(map[string]string, len(selection.Manifest.Assets.Files)+len(v.Assets.Files))
			for key, path := range selection.Manifest.Assets.Files {
				merged[key] = path
			}
			for key, path := range v.Assets.Files {
				merged[key] = path
			}
			assets = merged
		}
	}

	seen := map[string]struct{}{}
	var out []string
	for _, asset := range assets {
		asset = strings.TrimPrefix(strings.TrimSpace(asset), "/")
		if asset == "" {
			continue
		}
		if _, ok := seen[asset]; ok {
			continue
		}
		seen[asset] = struct{}{}
		out = append(out, filepath.ToSlash(asset))
	}
	return out
}

func detectAssetContentType(asset string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(asset), "."))
	switch ext {
	case "css":
		return "text/css"
	case "js":
		return "application/javascript"
	case "json":
		return "application/json"
	case "svg":
		return "image/svg+xml"
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "webp":
		return "image/webp"
	case "ico":
		return "image/x-icon"
	case "woff":
		return "font/woff"
	case "woff2":
		return "font/woff2"
	default:
		return "application/octet-stream"
	}
}
