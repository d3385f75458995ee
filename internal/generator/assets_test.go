package generator

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFSAssetResolverReadsThemeDir(t *testing.T) {
	dir := t.TempDir()
	cssDir := filepath.Join(dir, "css")
	if err := os.MkdirAll(cssDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(cssDir, "site.css"), []byte("body {}"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	theme := &Theme{Name: "plain", Path: dir}
	resolver := FSAssetResolver{}

	reader, err := resolver.Open(context.Background(), theme, "css/site.css")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer reader.Close()
	data, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "body {}" {
		t.Fatalf("unexpected asset content: %s", data)
	}
}

func TestFSAssetResolverConfinesPathsToThemeDir(t *testing.T) {
	dir := t.TempDir()
	resolver := FSAssetResolver{}

	resolved, err := resolver.ResolvePath(&Theme{Name: "plain", Path: dir}, "../../etc/passwd")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.HasPrefix(resolved, filepath.Clean(dir)+string(filepath.Separator)) {
		t.Fatalf("resolved path escapes theme dir: %s", resolved)
	}
}

func TestFSAssetResolverRequiresTheme(t *testing.T) {
	resolver := FSAssetResolver{}
	if _, err := resolver.ResolvePath(nil, "css/site.css"); err == nil {
		t.Fatal("expected error for missing theme")
	}
	if _, err := resolver.ResolvePath(&Theme{Name: "plain"}, "css/site.css"); err == nil {
		t.Fatal("expected error for missing theme path")
	}
}
