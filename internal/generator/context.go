package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/identity"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
	gotheme "github.com/goliatone/go-theme"
)

var (
	errDocumentsServiceRequired = errors.New("generator: document service is required")
	errPostsServiceRequired     = errors.New("generator: posts service is required")
)

// indexPageID is the stable manifest identifier for the site index page.
var indexPageID = identity.UUID("go-blog:page:index")

// BuildContext aggregates the resolved content a static build renders from.
type BuildContext struct {
	GeneratedAt time.Time
	Collection  *posts.Collection
	Pages       []*PageData
	Theme       *Theme
	Selection   *gotheme.Selection
	Options     BuildOptions
}

func (s *service) loadContext(ctx context.Context, opts BuildOptions) (*BuildContext, error) {
	if s.deps.Documents == nil {
		return nil, errDocumentsServiceRequired
	}
	if s.deps.Posts == nil {
		return nil, errPostsServiceRequired
	}

	documents, err := s.deps.Documents.LoadDirectory(ctx, "", interfaces.LoadOptions{
		IncludeDrafts: opts.IncludeDrafts,
	})
	if err != nil {
		return nil, err
	}

	collection, err := s.deps.Posts.FromDocuments(documents)
	if err != nil {
		return nil, err
	}

	theme, selection, err := s.resolveTheme()
	if err != nil {
		return nil, err
	}

	buildCtx := &BuildContext{
		GeneratedAt: s.now(),
		Collection:  collection,
		Theme:       theme,
		Selection:   selection,
		Options:     opts,
	}
	buildCtx.Pages = s.assemblePages(collection, theme)
	return buildCtx, nil
}

func (s *service) resolveTheme() (*Theme, *gotheme.Selection, error) {
	if strings.TrimSpace(s.cfg.Theme.Path) == "" {
		return nil, nil, nil
	}
	theme := &Theme{
		Name:    strings.TrimSpace(s.cfg.Theme.Name),
		Version: strings.TrimSpace(s.cfg.Theme.Version),
		Path:    strings.TrimSpace(s.cfg.Theme.Path),
		Variant: strings.TrimSpace(s.cfg.Theme.Variant),
	}
	if theme.Name == "" {
		theme.Name = "default"
	}
	if s.themeSelector == nil {
		return theme, nil, nil
	}
	selection, err := s.themeSelector.Selection(theme, theme.Variant)
	if err != nil {
		return nil, nil, err
	}
	return theme, selection, nil
}

func (s *service) assemblePages(collection *posts.Collection, theme *Theme) []*PageData {
	if collection == nil {
		return nil
	}

	templates := s.cfg.Templates.withDefaults()
	pages := make([]*PageData, 0, len(collection.Posts)+len(collection.Categories)+len(collection.Tags)+1)

	pages = append(pages, &PageData{
		Kind:     KindIndex,
		Route:    "/",
		Template: templates.Index,
		Posts:    collection.Posts,
		Metadata: indexMetadata(collection.Posts, theme, templates.Index),
	})

	for _, post := range collection.Posts {
		if post == nil {
			continue
		}
		pages = append(pages, &PageData{
			Kind:     KindPost,
			Route:    postRoute(post.Slug),
			Template: templates.Post,
			Post:     post,
			Metadata: postMetadata(post, theme, templates.Post),
		})
	}

	for _, term := range collection.Categories {
		if term == nil {
			continue
		}
		pages = append(pages, &PageData{
			Kind:     KindCategory,
			Route:    categoryRoute(term.Slug),
			Template: templates.Category,
			Term:     term,
			Posts:    term.Posts,
			Metadata: termMetadata(term, theme, templates.Category),
		})
	}

	for _, term := range collection.Tags {
		if term == nil {
			continue
		}
		pages = append(pages, &PageData{
			Kind:     KindTag,
			Route:    tagRoute(term.Slug),
			Template: templates.Tag,
			Term:     term,
			Posts:    term.Posts,
			Metadata: termMetadata(term, theme, templates.Tag),
		})
	}

	return pages
}

func postMetadata(post *posts.Post, theme *Theme, template string) DependencyMetadata {
	sources := map[string]string{
		"post":     postSource(post),
		"template": template,
	}
	if theme != nil {
		sources["theme"] = joinParts(theme.Name, theme.Version, theme.Variant)
	}
	return DependencyMetadata{
		Hash:         hashSources(sources),
		LastModified: post.LastModified,
	}
}

func indexMetadata(list []*posts.Post, theme *Theme, template string) DependencyMetadata {
	sources := map[string]string{
		"posts":    hashPostList(list),
		"template": template,
	}
	if theme != nil {
		sources["theme"] = joinParts(theme.Name, theme.Version, theme.Variant)
	}
	return DependencyMetadata{
		Hash:         hashSources(sources),
		LastModified: latestModification(list),
	}
}

func termMetadata(term *posts.Term, theme *Theme, template string) DependencyMetadata {
	sources := map[string]string{
		"term":     joinParts(term.ID.String(), string(term.Kind), term.Slug, term.Name),
		"posts":    hashPostList(term.Posts),
		"template": template,
	}
	if theme != nil {
		sources["theme"] = joinParts(theme.Name, theme.Version, theme.Variant)
	}
	return DependencyMetadata{
		Hash:         hashSources(sources),
		LastModified: latestModification(term.Posts),
	}
}

func postSource(post *posts.Post) string {
	if post == nil {
		return ""
	}
	return joinParts(
		post.ID.String(),
		post.Slug,
		post.Title,
		hex.EncodeToString(post.Checksum),
		post.PublishedAt.UTC().Format(time.RFC3339Nano),
		post.LastModified.UTC().Format(time.RFC3339Nano),
	)
}

func hashPostList(list []*posts.Post) string {
	if len(list) == 0 {
		return ""
	}
	values := make([]string, 0, len(list))
	for _, post := range list {
		if post == nil {
			continue
		}
		values = append(values, postSource(post))
	}
	return hashStrings(values)
}

func latestModification(list []*posts.Post) time.Time {
	var max time.Time
	for _, post := range list {
		if post == nil {
			continue
		}
		if post.LastModified.After(max) {
			max = post.LastModified
		}
		if post.PublishedAt.After(max) {
			max = post.PublishedAt
		}
	}
	return max
}

func joinParts(parts ...string) string {
	return strings.Join(parts, "|")
}

func hashStrings(values []string) string {
	if len(values) == 0 {
		return ""
	}
	hasher := sha256.New()
	for _, value := range values {
		hasher.Write([]byte(value))
		hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func hashSources(sources map[string]string) string {
	if len(sources) == 0 {
		return ""
	}
	keys := make([]string, 0, len(sources))
	for key := range sources {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	hasher := sha256.New()
	for _, key := range keys {
		hasher.Write([]byte(key))
		hasher.Write([]byte("="))
		hasher.Write([]byte(sources[key]))
		hasher.Write([]byte{0})
	}
	return hex.EncodeToString(hasher.Sum(nil))
}

func computeHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func computeHashFromString(data string) string {
	return computeHash([]byte(data))
}
