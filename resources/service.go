package resources

import (
	"context"
	"sort"

	"github.com/thegardencompany/storefront/internal/logging"
	"github.com/thegardencompany/storefront/pkg/interfaces"
)

// Store abstracts the content source so the directory walk can be swapped for
// a database or embedded index without changing call sites. Implementations
// return raw bodies; rendering happens at the service layer.
type Store interface {
	ListPillars(ctx context.Context) ([]Pillar, error)
	PillarContent(ctx context.Context, slug string) (*PillarContent, error)
	ListSubtopics(ctx context.Context, pillarSlug string) ([]Subtopic, error)
	SubtopicContent(ctx context.Context, pillarSlug, subtopicSlug string) (*SubtopicContent, error)
	ListArticles(ctx context.Context) ([]Article, error)
	ArticleContent(ctx context.Context, pillarSlug, subtopicSlug, articleSlug string) (*ArticleContent, error)
}

// Renderer converts raw body text into HTML.
type Renderer interface {
	Render(body []byte) ([]byte, error)
}

// LinkResolver builds navigable hrefs for content entries.
type LinkResolver interface {
	Pillar(pillar string) (string, error)
	Subtopic(pillar, subtopic string) (string, error)
	Article(pillar, subtopic, article string) (string, error)
}

// Service exposes the content hierarchy: pillars, subtopics, and articles.
//
// Listing order is part of the contract: pillars and subtopics sort by title
// ascending, articles by publish date descending (ties broken by slug).
type Service interface {
	ListPillars(ctx context.Context) ([]Pillar, error)
	GetPillar(ctx context.Context, slug string) (*Pillar, error)
	GetPillarContent(ctx context.Context, slug string) (*PillarContent, error)
	ListSubtopics(ctx context.Context, pillarSlug string) ([]Subtopic, error)
	GetSubtopicContent(ctx context.Context, pillarSlug, subtopicSlug string) (*SubtopicContent, error)
	ListArticles(ctx context.Context) ([]Article, error)
	ListArticlesBySubtopic(ctx context.Context, pillarSlug, subtopicSlug string) ([]Article, error)
	GetArticleContent(ctx context.Context, pillarSlug, subtopicSlug, articleSlug string) (*ArticleContent, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger overrides the no-op default logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRenderer wires an HTML renderer for content bodies. Without one the
// BodyHTML fields stay empty.
func WithRenderer(renderer Renderer) ServiceOption {
	return func(s *service) {
		s.renderer = renderer
	}
}

// WithLinks wires an href resolver for listing and content records.
func WithLinks(links LinkResolver) ServiceOption {
	return func(s *service) {
		s.links = links
	}
}

type service struct {
	store    Store
	renderer Renderer
	links    LinkResolver
	logger   interfaces.Logger
}

// NewService constructs the content hierarchy service over the supplied store.
func NewService(store Store, opts ...ServiceOption) (Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}

	svc := &service{
		store:  store,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

func (s *service) ListPillars(ctx context.Context) ([]Pillar, error) {
	pillars, err := s.store.ListPillars(ctx)
	if err != nil {
		return nil, err
	}

	for i := range pillars {
		pillars[i].Href = s.pillarHref(pillars[i].Slug)
	}

	sort.Slice(pillars, func(i, j int) bool {
		return pillars[i].Title < pillars[j].Title
	})
	return pillars, nil
}

func (s *service) GetPillar(ctx context.Context, slug string) (*Pillar, error) {
	canonical, ok := CanonicalSlug(slug)
	if !ok {
		return nil, &NotFoundError{Resource: "pillar", Key: slug}
	}

	pillars, err := s.ListPillars(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pillars {
		if pillars[i].Slug == canonical {
			return &pillars[i], nil
		}
	}
	return nil, &NotFoundError{Resource: "pillar", Key: slug}
}

func (s *service) GetPillarContent(ctx context.Context, slug string) (*PillarContent, error) {
	canonical, ok := CanonicalSlug(slug)
	if !ok {
		return nil, &NotFoundError{Resource: "pillar", Key: slug}
	}

	content, err := s.store.PillarContent(ctx, canonical)
	if err != nil {
		return nil, err
	}
	content.Pillar.Href = s.pillarHref(content.Pillar.Slug)
	if err := s.render(content.Body, &content.BodyHTML); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *service) ListSubtopics(ctx context.Context, pillarSlug string) ([]Subtopic, error) {
	subtopics, err := s.store.ListSubtopics(ctx, pillarSlug)
	if err != nil {
		return nil, err
	}

	for i := range subtopics {
		subtopics[i].Href = s.subtopicHref(subtopics[i].PillarSlug, subtopics[i].Slug)
	}

	sort.Slice(subtopics, func(i, j int) bool {
		return subtopics[i].Title < subtopics[j].Title
	})
	return subtopics, nil
}

func (s *service) GetSubtopicContent(ctx context.Context, pillarSlug, subtopicSlug string) (*SubtopicContent, error) {
	pillar, okPillar := CanonicalSlug(pillarSlug)
	subtopic, okSubtopic := CanonicalSlug(subtopicSlug)
	if !okPillar || !okSubtopic {
		return nil, &NotFoundError{Resource: "subtopic", Key: subtopicSlug}
	}

	content, err := s.store.SubtopicContent(ctx, pillar, subtopic)
	if err != nil {
		return nil, err
	}
	content.Subtopic.Href = s.subtopicHref(pillar, content.Subtopic.Slug)
	if err := s.render(content.Body, &content.BodyHTML); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *service) ListArticles(ctx context.Context) ([]Article, error) {
	articles, err := s.store.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	for i := range articles {
		articles[i].Href = s.articleHref(articles[i].PillarSlug, articles[i].SubtopicSlug, articles[i].Slug)
	}

	sort.Slice(articles, func(i, j int) bool {
		if !articles[i].PublishedAt.Equal(articles[j].PublishedAt) {
			return articles[i].PublishedAt.After(articles[j].PublishedAt)
		}
		return articles[i].Slug < articles[j].Slug
	})
	return articles, nil
}

func (s *service) ListArticlesBySubtopic(ctx context.Context, pillarSlug, subtopicSlug string) ([]Article, error) {
	articles, err := s.ListArticles(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Article, 0, len(articles))
	for _, article := range articles {
		if article.PillarSlug == pillarSlug && article.SubtopicSlug == subtopicSlug {
			filtered = append(filtered, article)
		}
	}
	return filtered, nil
}

func (s *service) GetArticleContent(ctx context.Context, pillarSlug, subtopicSlug, articleSlug string) (*ArticleContent, error) {
	pillar, okPillar := CanonicalSlug(pillarSlug)
	subtopic, okSubtopic := CanonicalSlug(subtopicSlug)
	article, okArticle := CanonicalSlug(articleSlug)
	if !okPillar || !okSubtopic || !okArticle {
		return nil, &NotFoundError{Resource: "article", Key: articleSlug}
	}

	content, err := s.store.ArticleContent(ctx, pillar, subtopic, article)
	if err != nil {
		return nil, err
	}
	content.Article.Href = s.articleHref(pillar, subtopic, content.Article.Slug)
	if err := s.render(content.Body, &content.BodyHTML); err != nil {
		return nil, err
	}
	return content, nil
}

func (s *service) render(body []byte, into *[]byte) error {
	if s.renderer == nil || len(body) == 0 {
		return nil
	}
	html, err := s.renderer.Render(body)
	if err != nil {
		return err
	}
	*into = html
	return nil
}

func (s *service) pillarHref(slug string) string {
	if s.links == nil {
		return ""
	}
	href, err := s.links.Pillar(slug)
	if err != nil {
		s.logger.Warn("resolve pillar href failed", "slug", slug, "error", err)
		return ""
	}
	return href
}

func (s *service) subtopicHref(pillar, subtopic string) string {
	if s.links == nil {
		return ""
	}
	href, err := s.links.Subtopic(pillar, subtopic)
	if err != nil {
		s.logger.Warn("resolve subtopic href failed", "pillar", pillar, "slug", subtopic, "error", err)
		return ""
	}
	return href
}

func (s *service) articleHref(pillar, subtopic, article string) string {
	if s.links == nil {
		return ""
	}
	href, err := s.links.Article(pillar, subtopic, article)
	if err != nil {
		s.logger.Warn("resolve article href failed", "pillar", pillar, "slug", article, "error", err)
		return ""
	}
	return href
}
