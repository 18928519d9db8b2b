package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"folio/internal/cache"
	"folio/internal/model"
	"folio/internal/repository"
)

const (
	featuredLimit = 3
	recentLimit   = 3
	wordsPerMin   = 200

	uptimePercentage       = "99.9"
	performanceImprovement = "40"
)

// ContentService serves the read-only portfolio content.
type ContentService interface {
	// ListProjects returns published projects, optionally only the featured ones.
	ListProjects(ctx context.Context, featuredOnly bool) ([]model.Project, error)

	// FeaturedProjects returns at most three featured projects.
	FeaturedProjects(ctx context.Context) ([]model.Project, error)

	// GetProject returns a project with its case study details.
	GetProject(ctx context.Context, slug string) (*model.Project, error)

	// ListPosts returns published posts filtered by category and search text.
	ListPosts(ctx context.Context, q PostQuery) ([]model.BlogPost, error)

	// GetPost returns a post with content and records one view.
	GetPost(ctx context.Context, slug string) (*model.BlogPost, error)

	// RecentPosts returns the three newest posts.
	RecentPosts(ctx context.Context) ([]model.BlogPost, error)

	// Categories returns the number of published posts per category.
	Categories(ctx context.Context) (model.BlogCategories, error)

	Technologies(ctx context.Context) ([]model.Technology, error)
	TechStack(ctx context.Context) ([]model.TechCategory, error)

	// SiteConfig returns the stored configuration or the built-in default.
	SiteConfig(ctx context.Context) (*model.SiteConfig, error)

	Stats(ctx context.Context) (*model.PortfolioStats, error)
	Highlights(ctx context.Context) ([]model.CareerHighlight, error)
}

// PostQuery narrows post listings. An empty or "all" category means every category.
type PostQuery struct {
	Category string
	Search   string
}

// ContentDeps wires the repositories and cache used by ContentService.
type ContentDeps struct {
	Projects repository.ProjectRepository
	Blog     repository.BlogRepository
	Tech     repository.TechRepository
	Core     repository.CoreRepository

	// Cache defaults to cache.Nop.
	Cache    cache.Cache
	CacheTTL time.Duration

	// MediaBaseURL is prepended to stored media keys.
	MediaBaseURL string
}

type contentService struct {
	projects repository.ProjectRepository
	blog     repository.BlogRepository
	tech     repository.TechRepository
	core     repository.CoreRepository
	cache    cache.Cache
	ttl      time.Duration
	media    string
}

// NewContentService constructs a new ContentService.
func NewContentService(d ContentDeps) ContentService {
	c := d.Cache
	if c == nil {
		c = cache.Nop{}
	}
	ttl := d.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &contentService{
		projects: d.Projects,
		blog:     d.Blog,
		tech:     d.Tech,
		core:     d.Core,
		cache:    c,
		ttl:      ttl,
		media:    strings.TrimRight(d.MediaBaseURL, "/"),
	}
}

func (s *contentService) ListProjects(ctx context.Context, featuredOnly bool) ([]model.Project, error) {
	key := "projects:all"
	if featuredOnly {
		key = "projects:featured-all"
	}
	items, err := cache.GetOrLoad(ctx, s.cache, key, s.ttl, func(ctx context.Context) ([]model.Project, error) {
		return s.projects.List(ctx, repository.ProjectFilter{FeaturedOnly: featuredOnly})
	})
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return s.resolveProjects(items), nil
}

func (s *contentService) FeaturedProjects(ctx context.Context) ([]model.Project, error) {
	items, err := cache.GetOrLoad(ctx, s.cache, "projects:featured", s.ttl, func(ctx context.Context) ([]model.Project, error) {
		return s.projects.List(ctx, repository.ProjectFilter{FeaturedOnly: true, Limit: featuredLimit})
	})
	if err != nil {
		return nil, fmt.Errorf("list featured projects: %w", err)
	}
	return s.resolveProjects(items), nil
}

func (s *contentService) GetProject(ctx context.Context, slug string) (*model.Project, error) {
	if slug == "" {
		return nil, ErrSlugRequired
	}
	p, err := cache.GetOrLoad(ctx, s.cache, "project:"+slug, s.ttl, func(ctx context.Context) (*model.Project, error) {
		return s.projects.FindBySlug(ctx, slug)
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get project %q: %w", slug, err)
	}
	p.Thumbnail = s.mediaURL(p.Thumbnail)
	return p, nil
}

func (s *contentService) ListPosts(ctx context.Context, q PostQuery) ([]model.BlogPost, error) {
	category := strings.TrimSpace(q.Category)
	if strings.EqualFold(category, "all") {
		category = ""
	}
	search := strings.TrimSpace(q.Search)
	load := func(ctx context.Context) ([]model.BlogPost, error) {
		items, err := s.blog.List(ctx, repository.PostFilter{Category: category, Search: search})
		return summarizePosts(items), err
	}

	var (
		items []model.BlogPost
		err   error
	)
	// Free-text searches are not worth caching.
	if search == "" {
		items, err = cache.GetOrLoad(ctx, s.cache, "posts:"+category, s.ttl, load)
	} else {
		items, err = load(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return s.resolvePosts(items), nil
}

// GetPost is never cached because every read increments the view counter.
func (s *contentService) GetPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	if slug == "" {
		return nil, ErrSlugRequired
	}
	p, err := s.blog.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get post %q: %w", slug, err)
	}

	views, err := s.blog.IncrementViews(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("increment views of %q: %w", slug, err)
	}
	p.Views = views
	p.ReadingTime = ReadingTime(p.Content)
	p.FeaturedImage = s.mediaURL(p.FeaturedImage)
	return p, nil
}

func (s *contentService) RecentPosts(ctx context.Context) ([]model.BlogPost, error) {
	items, err := cache.GetOrLoad(ctx, s.cache, "posts:recent", s.ttl, func(ctx context.Context) ([]model.BlogPost, error) {
		items, err := s.blog.List(ctx, repository.PostFilter{Limit: recentLimit})
		return summarizePosts(items), err
	})
	if err != nil {
		return nil, fmt.Errorf("list recent posts: %w", err)
	}
	return s.resolvePosts(items), nil
}

func (s *contentService) Categories(ctx context.Context) (model.BlogCategories, error) {
	out, err := cache.GetOrLoad(ctx, s.cache, "posts:categories", s.ttl, s.blog.CategoryCounts)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	return out, nil
}

func (s *contentService) Technologies(ctx context.Context) ([]model.Technology, error) {
	out, err := cache.GetOrLoad(ctx, s.cache, "tech:list", s.ttl, s.tech.List)
	if err != nil {
		return nil, fmt.Errorf("list technologies: %w", err)
	}
	return out, nil
}

func (s *contentService) TechStack(ctx context.Context) ([]model.TechCategory, error) {
	out, err := cache.GetOrLoad(ctx, s.cache, "tech:stack", s.ttl, s.tech.Grouped)
	if err != nil {
		return nil, fmt.Errorf("group technologies: %w", err)
	}
	return out, nil
}

func (s *contentService) SiteConfig(ctx context.Context) (*model.SiteConfig, error) {
	cfg, err := cache.GetOrLoad(ctx, s.cache, "core:config", s.ttl, s.loadSiteConfig)
	if err != nil {
		return nil, fmt.Errorf("load site config: %w", err)
	}
	cfg.ProfileImage = s.mediaURL(cfg.ProfileImage)
	cfg.ResumeURL = s.mediaURL(cfg.ResumeURL)
	return cfg, nil
}

func (s *contentService) loadSiteConfig(ctx context.Context) (*model.SiteConfig, error) {
	cfg, err := s.core.SiteConfig(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		def := model.DefaultSiteConfig()
		return &def, nil
	}
	return cfg, err
}

func (s *contentService) Stats(ctx context.Context) (*model.PortfolioStats, error) {
	return cache.GetOrLoad(ctx, s.cache, "core:stats", s.ttl, func(ctx context.Context) (*model.PortfolioStats, error) {
		counts, err := s.projects.Counts(ctx)
		if err != nil {
			return nil, fmt.Errorf("count projects: %w", err)
		}
		techs, err := s.tech.Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("count technologies: %w", err)
		}
		cfg, err := s.loadSiteConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("load site config: %w", err)
		}
		return &model.PortfolioStats{
			TotalProjects:          counts.Published,
			FeaturedProjects:       counts.Featured,
			TechnologiesMastered:   techs,
			YearsExperience:        cfg.YearsExperience,
			UptimePercentage:       uptimePercentage,
			PerformanceImprovement: performanceImprovement,
		}, nil
	})
}

func (s *contentService) Highlights(ctx context.Context) ([]model.CareerHighlight, error) {
	out, err := cache.GetOrLoad(ctx, s.cache, "core:highlights", s.ttl, s.core.Highlights)
	if err != nil {
		return nil, fmt.Errorf("list highlights: %w", err)
	}
	return out, nil
}

func (s *contentService) resolveProjects(items []model.Project) []model.Project {
	for i := range items {
		items[i].Thumbnail = s.mediaURL(items[i].Thumbnail)
	}
	return items
}

// summarizePosts sets each post's reading time and drops the content, which
// list responses do not carry.
func summarizePosts(items []model.BlogPost) []model.BlogPost {
	for i := range items {
		items[i].ReadingTime = ReadingTime(items[i].Content)
		items[i].Content = ""
	}
	return items
}

func (s *contentService) resolvePosts(items []model.BlogPost) []model.BlogPost {
	for i := range items {
		items[i].FeaturedImage = s.mediaURL(items[i].FeaturedImage)
	}
	return items
}

func (s *contentService) mediaURL(v string) string {
	return ResolveMediaURL(s.media, v)
}

// ResolveMediaURL turns a stored media key into a URL under base.
// Empty values, absolute URLs and rooted paths are returned unchanged.
func ResolveMediaURL(base, v string) string {
	if v == "" || strings.HasPrefix(v, "/") || strings.Contains(v, "://") {
		return v
	}
	return base + "/" + v
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// ReadingTime estimates minutes to read content at 200 words per minute, never less than one.
// Halves round to even.
func ReadingTime(content string) int {
	words := len(wordRe.FindAllStringIndex(content, -1))
	minutes := int(math.RoundToEven(float64(words) / wordsPerMin))
	if minutes < 1 {
		return 1
	}
	return minutes
}
