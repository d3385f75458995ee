package archive

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Build is one persisted generator run.
type Build struct {
	bun.BaseModel `bun:"table:builds,alias:b"`

	ID            uuid.UUID `bun:",pk,type:uuid" json:"id"`
	StartedAt     time.Time `bun:"started_at,notnull" json:"started_at"`
	CompletedAt   time.Time `bun:"completed_at,notnull" json:"completed_at"`
	PostCount     int       `bun:"post_count,notnull" json:"post_count"`
	PagesBuilt    int       `bun:"pages_built,notnull" json:"pages_built"`
	PagesSkipped  int       `bun:"pages_skipped,notnull" json:"pages_skipped"`
	AssetsBuilt   int       `bun:"assets_built,notnull" json:"assets_built"`
	AssetsSkipped int       `bun:"assets_skipped,notnull" json:"assets_skipped"`
	Succeeded     bool      `bun:"succeeded,notnull" json:"succeeded"`
	Failure       string    `bun:"failure" json:"failure,omitempty"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// Duration reports how long the build ran.
func (b *Build) Duration() time.Duration {
	if b == nil || b.CompletedAt.Before(b.StartedAt) {
		return 0
	}
	return b.CompletedAt.Sub(b.StartedAt)
}
