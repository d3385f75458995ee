package markdown

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParseFrontMatter(t *testing.T) {
	source := []byte(`---
title: The Silent Majority
date: 2022-08-28 20:30:00 +0010
author: jane
categories:
  - politics
tags: [history, essays]
custom_key: custom value
---

Body paragraph.
`)

	fm, body, err := ParseFrontMatter("2022-08-28-the-silent-majority.md", source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "The Silent Majority" {
		t.Fatalf("unexpected title %q", fm.Title)
	}
	if fm.Author != "jane" {
		t.Fatalf("unexpected author %q", fm.Author)
	}
	if len(fm.Categories) != 1 || fm.Categories[0] != "politics" {
		t.Fatalf("unexpected categories %#v", fm.Categories)
	}
	if len(fm.Tags) != 2 {
		t.Fatalf("unexpected tags %#v", fm.Tags)
	}
	if fm.Custom["custom_key"] != "custom value" {
		t.Fatalf("expected custom key preserved, got %#v", fm.Custom)
	}
	if !strings.Contains(string(body), "Body paragraph.") {
		t.Fatalf("expected body without header, got %q", string(body))
	}
}

func TestParseFrontMatter_DateOffsets(t *testing.T) {
	cases := []struct {
		name   string
		value  string
		offset int
		hour   int
	}{
		{name: "rfc3339", value: "2022-04-23T09:00:00+02:00", offset: 2 * 3600, hour: 9},
		{name: "space separated", value: "2022-08-28 20:30:00 +0010", offset: 10 * 60, hour: 20},
		{name: "bare date", value: "2022-03-26", offset: 0, hour: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			source := []byte("---\ntitle: Dated\ndate: " + tc.value + "\n---\nbody\n")
			fm, _, err := ParseFrontMatter("dated.md", source)
			if err != nil {
				t.Fatalf("ParseFrontMatter: %v", err)
			}
			_, offset := fm.Date.Zone()
			if offset != tc.offset {
				t.Fatalf("expected offset %d, got %d", tc.offset, offset)
			}
			if fm.Date.Hour() != tc.hour {
				t.Fatalf("expected hour %d, got %d", tc.hour, fm.Date.Hour())
			}
		})
	}
}

func TestParseFrontMatter_ByteOrderMark(t *testing.T) {
	source := []byte("\ufeff---\ntitle: Marked\ndate: 2022-03-26\n---\nbody\n")

	fm, body, err := ParseFrontMatter("marked.md", source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.Title != "Marked" {
		t.Fatalf("unexpected title %q", fm.Title)
	}
	if !strings.Contains(string(body), "body") {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestParseFrontMatter_OffsetlessDatetimeRejected(t *testing.T) {
	source := []byte("---\ntitle: Floating\ndate: 2022-08-28 20:30:00\n---\nbody\n")

	_, _, err := ParseFrontMatter("floating.md", source)
	if !errors.Is(err, ErrDateUnparsable) {
		t.Fatalf("expected ErrDateUnparsable for datetime without offset, got %v", err)
	}
}

func TestParseFrontMatter_MissingTitle(t *testing.T) {
	source := []byte("---\ndate: 2022-08-28\n---\nbody\n")

	_, _, err := ParseFrontMatter("untitled.md", source)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "title") {
		t.Fatalf("expected error to name the title field, got %v", err)
	}
}

func TestParseFrontMatter_MissingHeader(t *testing.T) {
	source := []byte("Just a paragraph without any header.\n")

	_, _, err := ParseFrontMatter("plain.md", source)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParseFrontMatter_UnterminatedHeader(t *testing.T) {
	source := []byte("---\ntitle: Broken\ndate: 2022-08-28\nbody without closing delimiter\n")

	_, _, err := ParseFrontMatter("broken.md", source)
	if !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected ErrMalformedDocument, got %v", err)
	}
}

func TestParseFrontMatter_UnparsableDate(t *testing.T) {
	source := []byte("---\ntitle: Bad Date\ndate: next tuesday\n---\nbody\n")

	_, _, err := ParseFrontMatter("bad-date.md", source)
	if !errors.Is(err, ErrDateUnparsable) {
		t.Fatalf("expected ErrDateUnparsable, got %v", err)
	}
}

func TestEncodeFrontMatter_RoundTripPreservesKeys(t *testing.T) {
	source := []byte(`---
title: Round Trip
date: 2022-04-23
slug: round-trip
unknown_key: kept
nested:
  inner: true
---
body
`)

	fm, _, err := ParseFrontMatter("round-trip.md", source)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	encoded, err := EncodeFrontMatter(fm)
	if err != nil {
		t.Fatalf("EncodeFrontMatter: %v", err)
	}

	decoded := map[string]any{}
	if err := yaml.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("yaml.Unmarshal: %v", err)
	}

	for _, key := range []string{"title", "date", "slug", "unknown_key", "nested"} {
		if _, ok := decoded[key]; !ok {
			t.Fatalf("expected key %q to survive the round trip, got %#v", key, decoded)
		}
	}
	if decoded["date"] != "2022-04-23" {
		t.Fatalf("expected raw date string to be preserved, got %#v", decoded["date"])
	}
	if decoded["unknown_key"] != "kept" {
		t.Fatalf("expected unknown key value preserved, got %#v", decoded["unknown_key"])
	}
}

func TestBuildDocument_SlugFromFilename(t *testing.T) {
	source := []byte("---\ntitle: Untagged\ndate: 2022-03-26\n---\nbody\n")

	doc, err := BuildDocument("posts/2022-03-26-wealth-of-nations.md", source, time.Now())
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.Slug != "wealth-of-nations" {
		t.Fatalf("expected slug derived from filename, got %q", doc.Slug)
	}
}

func TestBuildDocument_ExplicitSlugWins(t *testing.T) {
	source := []byte("---\ntitle: Custom\ndate: 2022-03-26\nslug: custom-slug\n---\nbody\n")

	doc, err := BuildDocument("posts/2022-03-26-original-name.md", source, time.Now())
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.Slug != "custom-slug" {
		t.Fatalf("expected explicit slug, got %q", doc.Slug)
	}
}
