package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// PostUUID identifies a post by its source path so rebuilds and archive rows
// stay stable across runs.
func PostUUID(sourcePath string) uuid.UUID {
	return UUID("go-blog:post:" + strings.TrimSpace(sourcePath))
}

// TermUUID identifies a taxonomy term (category or tag) by kind and slug.
func TermUUID(kind, slug string) uuid.UUID {
	return UUID("go-blog:term:" + strings.ToLower(strings.TrimSpace(kind)) + ":" + strings.ToLower(strings.TrimSpace(slug)))
}

// BuildUUID identifies a recorded build by its generation instant (RFC3339Nano).
func BuildUUID(generatedAt string) uuid.UUID {
	return UUID("go-blog:build:" + strings.TrimSpace(generatedAt))
}
