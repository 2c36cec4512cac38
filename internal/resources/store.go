package resources

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"

	"github.com/thegardencompany/storefront/internal/logging"
	"github.com/thegardencompany/storefront/internal/mdx"
	"github.com/thegardencompany/storefront/pkg/interfaces"
	"github.com/thegardencompany/storefront/resources"
)

// Extension is the content file extension the store recognizes.
const Extension = ".mdx"

// indexFilenames lists the conventional index names tried in order.
var indexFilenames = []string{"index" + Extension, "_index" + Extension}

// Config controls how the filesystem store reads the content tree.
type Config struct {
	// BasePath is the content root on disk. Ignored when FS is set.
	BasePath string
	// FS overrides the filesystem, primarily for tests.
	FS fs.FS
	// DefaultAuthor is attributed to articles without an author field.
	DefaultAuthor string
	Logger        interfaces.Logger
}

// FSStore projects the two-level content directory tree into pillars,
// subtopics, and articles. Every call re-scans the tree; the content is
// treated as read-only so no locking or cache invalidation is needed.
type FSStore struct {
	fsys   fs.FS
	author string
	logger interfaces.Logger
}

var _ resources.Store = (*FSStore)(nil)

// NewFSStore constructs a store over the configured content root.
func NewFSStore(cfg Config) (*FSStore, error) {
	fsys := cfg.FS
	if fsys == nil {
		basePath := strings.TrimSpace(cfg.BasePath)
		if basePath == "" {
			basePath = "."
		}
		if _, err := os.Stat(basePath); err != nil {
			return nil, fmt.Errorf("%w: %s", resources.ErrContentRootMissing, basePath)
		}
		fsys = os.DirFS(basePath)
	}

	author := strings.TrimSpace(cfg.DefaultAuthor)
	if author == "" {
		author = DefaultAuthor
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	return &FSStore{
		fsys:   fsys,
		author: author,
		logger: logger,
	}, nil
}

// ListPillars scans the content root. Directories without an index file are
// not pillars and are silently skipped; malformed index files are logged and
// excluded so one bad file never takes down the listing.
func (s *FSStore) ListPillars(ctx context.Context) ([]resources.Pillar, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := fs.ReadDir(s.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("resources: read content root: %w", err)
	}

	var pillars []resources.Pillar
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		slug := entry.Name()

		source, indexPath, err := s.readIndex(slug)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}

		meta, _, perr := mdx.ParsePillar(source)
		if perr != nil {
			logging.WithContentContext(s.logger, indexPath, "", slug).
				Warn("skipping pillar with malformed metadata", "error", perr)
			continue
		}

		pillar, err := s.buildPillar(slug, meta)
		if err != nil {
			return nil, err
		}
		pillars = append(pillars, pillar)
	}
	return pillars, nil
}

// PillarContent reads a pillar's index file in full.
func (s *FSStore) PillarContent(ctx context.Context, slug string) (*resources.PillarContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, indexPath, err := s.readIndex(slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &resources.NotFoundError{Resource: "pillar", Key: slug}
		}
		return nil, err
	}

	meta, body, perr := mdx.ParsePillar(source)
	if perr != nil {
		return nil, &resources.MalformedError{Path: indexPath, Err: perr}
	}

	pillar, err := s.buildPillar(slug, meta)
	if err != nil {
		return nil, err
	}
	return &resources.PillarContent{Pillar: pillar, Body: body}, nil
}

// ListSubtopics scans a pillar's immediate child directories. A subtopic
// without an index file still lists with slug-derived defaults; a directory
// that is not a valid pillar yields an empty listing.
func (s *FSStore) ListSubtopics(ctx context.Context, pillarSlug string) ([]resources.Subtopic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !s.pillarExists(pillarSlug) {
		return nil, nil
	}

	slugs, err := s.childDirs(pillarSlug)
	if err != nil {
		return nil, err
	}

	var subtopics []resources.Subtopic
	for _, slug := range slugs {
		source, indexPath, err := s.readIndex(path.Join(pillarSlug, slug))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				subtopics = append(subtopics, defaultSubtopic(pillarSlug, slug))
				continue
			}
			return nil, err
		}

		meta, _, perr := mdx.ParseSubtopic(source)
		if perr != nil {
			logging.WithContentContext(s.logger, indexPath, pillarSlug, slug).
				Warn("skipping subtopic with malformed metadata", "error", perr)
			continue
		}

		subtopics = append(subtopics, buildSubtopic(pillarSlug, slug, meta))
	}
	return subtopics, nil
}

// SubtopicContent reads a subtopic's index file in full.
func (s *FSStore) SubtopicContent(ctx context.Context, pillarSlug, subtopicSlug string) (*resources.SubtopicContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	source, indexPath, err := s.readIndex(path.Join(pillarSlug, subtopicSlug))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &resources.NotFoundError{Resource: "subtopic", Key: subtopicSlug}
		}
		return nil, err
	}

	meta, body, perr := mdx.ParseSubtopic(source)
	if perr != nil {
		return nil, &resources.MalformedError{Path: indexPath, Err: perr}
	}

	return &resources.SubtopicContent{
		Subtopic: buildSubtopic(pillarSlug, subtopicSlug, meta),
		Body:     body,
	}, nil
}

// ListArticles walks every valid pillar and subtopic, collecting each leaf
// content file. Malformed entries are logged and excluded.
func (s *FSStore) ListArticles(ctx context.Context) ([]resources.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pillars, err := s.ListPillars(ctx)
	if err != nil {
		return nil, err
	}

	var articles []resources.Article
	for _, pillar := range pillars {
		subtopicSlugs, err := s.childDirs(pillar.Slug)
		if err != nil {
			return nil, err
		}
		for _, subtopicSlug := range subtopicSlugs {
			entries, err := fs.ReadDir(s.fsys, path.Join(pillar.Slug, subtopicSlug))
			if err != nil {
				return nil, fmt.Errorf("resources: read subtopic %s/%s: %w", pillar.Slug, subtopicSlug, err)
			}
			for _, entry := range entries {
				if entry.IsDir() || !isArticleFile(entry.Name()) {
					continue
				}

				articleSlug := strings.TrimSuffix(entry.Name(), Extension)
				filePath := path.Join(pillar.Slug, subtopicSlug, entry.Name())

				source, err := fs.ReadFile(s.fsys, filePath)
				if err != nil {
					return nil, fmt.Errorf("resources: read article %s: %w", filePath, err)
				}

				meta, body, perr := mdx.ParseArticle(source)
				if perr != nil {
					logging.WithContentContext(s.logger, filePath, pillar.Slug, articleSlug).
						Warn("skipping article with malformed metadata", "error", perr)
					continue
				}

				articles = append(articles, s.buildArticle(pillar.Slug, subtopicSlug, articleSlug, meta, body))
			}
		}
	}
	return articles, nil
}

// ArticleContent reads a single leaf content file in full.
func (s *FSStore) ArticleContent(ctx context.Context, pillarSlug, subtopicSlug, articleSlug string) (*resources.ArticleContent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	filePath := path.Join(pillarSlug, subtopicSlug, articleSlug+Extension)
	source, err := fs.ReadFile(s.fsys, filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &resources.NotFoundError{Resource: "article", Key: articleSlug}
		}
		return nil, fmt.Errorf("resources: read article %s: %w", filePath, err)
	}

	meta, body, perr := mdx.ParseArticle(source)
	if perr != nil {
		return nil, &resources.MalformedError{Path: filePath, Err: perr}
	}

	return &resources.ArticleContent{
		Article: s.buildArticle(pillarSlug, subtopicSlug, articleSlug, meta, body),
		Body:    body,
	}, nil
}

func (s *FSStore) buildPillar(slug string, meta mdx.PillarMeta) (resources.Pillar, error) {
	subtopicSlugs, err := s.childDirs(slug)
	if err != nil {
		return resources.Pillar{}, err
	}

	title := meta.Title
	if title == "" {
		title = TitleFromSlug(slug)
	}
	description := meta.Description
	if description == "" {
		description = DescriptionFromSlug(slug)
	}
	topics := meta.Topics
	if len(topics) == 0 {
		topics = defaultTopics(subtopicSlugs)
	}

	return resources.Pillar{
		Slug:         slug,
		Title:        title,
		Description:  description,
		Image:        PillarImage(slug, meta.Image),
		Topics:       topics,
		ArticleCount: len(subtopicSlugs),
		FAQs:         convertFAQs(meta.FAQs),
	}, nil
}

func (s *FSStore) buildArticle(pillarSlug, subtopicSlug, slug string, meta mdx.ArticleMeta, body []byte) resources.Article {
	title := meta.Title
	if title == "" {
		title = TitleFromSlug(slug)
	}
	author := meta.Author
	if author == "" {
		author = s.author
	}
	difficulty := meta.Difficulty
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	readTime := meta.ReadTime
	if readTime == "" {
		readTime = mdx.EstimateReadTime(body)
	}

	publishedAt := parseDate(meta.PublishedAt)
	updatedAt := parseDate(meta.UpdatedAt)
	if updatedAt.IsZero() {
		updatedAt = publishedAt
	}

	return resources.Article{
		Slug:         slug,
		PillarSlug:   pillarSlug,
		SubtopicSlug: subtopicSlug,
		Title:        title,
		Description:  meta.Description,
		Image:        meta.Image,
		PublishedAt:  publishedAt,
		UpdatedAt:    updatedAt,
		Author:       author,
		Difficulty:   difficulty,
		ReadTime:     readTime,
		FAQs:         convertFAQs(meta.FAQs),
	}
}

func buildSubtopic(pillarSlug, slug string, meta mdx.SubtopicMeta) resources.Subtopic {
	title := meta.Title
	if title == "" {
		title = TitleFromSlug(slug)
	}
	return resources.Subtopic{
		Slug:        slug,
		PillarSlug:  pillarSlug,
		Title:       title,
		Description: meta.Description,
		FAQs:        convertFAQs(meta.FAQs),
	}
}

func defaultSubtopic(pillarSlug, slug string) resources.Subtopic {
	return resources.Subtopic{
		Slug:       slug,
		PillarSlug: pillarSlug,
		Title:      TitleFromSlug(slug),
	}
}

// readIndex tries the conventional index filenames in order under dir.
func (s *FSStore) readIndex(dir string) ([]byte, string, error) {
	var lastErr error
	for _, name := range indexFilenames {
		indexPath := path.Join(dir, name)
		source, err := fs.ReadFile(s.fsys, indexPath)
		if err == nil {
			return source, indexPath, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", fmt.Errorf("resources: read index %s: %w", indexPath, err)
		}
		lastErr = err
	}
	return nil, "", lastErr
}

func (s *FSStore) pillarExists(slug string) bool {
	_, _, err := s.readIndex(slug)
	return err == nil
}

func (s *FSStore) childDirs(dir string) ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("resources: read directory %s: %w", dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}

func isArticleFile(name string) bool {
	if !strings.HasSuffix(name, Extension) {
		return false
	}
	for _, index := range indexFilenames {
		if name == index {
			return false
		}
	}
	return true
}

func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts
		}
	}
	return time.Time{}
}
