package generator

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestManifestRoundTrip(t *testing.T) {
	manifest := newBuildManifest()
	manifest.GeneratedAt = time.Date(2022, 8, 28, 20, 30, 0, 0, time.UTC)

	pageID := uuid.New()
	manifest.setPage(manifestPage{
		PageID:   pageID.String(),
		Kind:     string(KindPost),
		Route:    "/silent-majority/",
		Output:   "dist/silent-majority/index.html",
		Template: "post",
		Hash:     "abc123",
		Checksum: "def456",
	})
	manifest.setAsset(manifestAsset{
		Source:   "css/site.css",
		Output:   "dist/assets/css/site.css",
		Checksum: "cafe01",
		Size:     42,
	})

	data, err := manifest.marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	parsed, err := parseManifest(data)
	if err != nil {
		t.Fatalf("parseManifest: %v", err)
	}
	if parsed.Version != manifestFileVersion {
		t.Fatalf("unexpected version %d", parsed.Version)
	}
	entry, ok := parsed.lookupPage(pageID)
	if !ok {
		t.Fatalf("expected page entry to survive the round trip")
	}
	if entry.Hash != "abc123" || entry.Output != "dist/silent-majority/index.html" {
		t.Fatalf("unexpected entry %#v", entry)
	}
	asset, ok := parsed.lookupAsset("css/site.css")
	if !ok || asset.Checksum != "cafe01" {
		t.Fatalf("expected asset entry to survive, got %#v", asset)
	}
}

func TestManifestShouldSkipPage(t *testing.T) {
	manifest := newBuildManifest()
	pageID := uuid.New()
	manifest.setPage(manifestPage{
		PageID: pageID.String(),
		Hash:   "same",
		Output: "dist/index.html",
	})

	if !manifest.shouldSkipPage(pageID, "same", "dist/index.html") {
		t.Fatalf("expected matching hash and output to skip")
	}
	if manifest.shouldSkipPage(pageID, "changed", "dist/index.html") {
		t.Fatalf("expected hash change to rebuild")
	}
	if manifest.shouldSkipPage(pageID, "same", "elsewhere/index.html") {
		t.Fatalf("expected output change to rebuild")
	}
	if manifest.shouldSkipPage(uuid.New(), "same", "dist/index.html") {
		t.Fatalf("expected unknown page to rebuild")
	}
}

func TestManifestShouldSkipAsset(t *testing.T) {
	manifest := newBuildManifest()
	manifest.setAsset(manifestAsset{
		Source:   "css/site.css",
		Checksum: "sum",
		Output:   "dist/assets/css/site.css",
	})

	if !manifest.shouldSkipAsset("css/site.css", "sum", "dist/assets/css/site.css") {
		t.Fatalf("expected unchanged asset to skip")
	}
	if manifest.shouldSkipAsset("css/site.css", "other", "dist/assets/css/site.css") {
		t.Fatalf("expected checksum change to copy again")
	}
	if manifest.shouldSkipAsset("js/app.js", "sum", "dist/assets/js/app.js") {
		t.Fatalf("expected unknown asset to copy")
	}
}

func TestParseManifestEmptyAndInvalid(t *testing.T) {
	manifest, err := parseManifest(nil)
	if err != nil {
		t.Fatalf("parseManifest(nil): %v", err)
	}
	if manifest.Pages == nil || manifest.Assets == nil {
		t.Fatalf("expected initialised maps")
	}

	if _, err := parseManifest([]byte("not json")); err == nil {
		t.Fatalf("expected parse error for invalid payload")
	}
}
