package apiclient

import (
	"context"
	"net/url"

	"folio/internal/model"
)

// BlogQuery filters GetBlogPosts. Empty fields are omitted from the request.
type BlogQuery struct {
	Category string
	Search   string
}

func emptyProjects() []model.Project           { return []model.Project{} }
func emptyPosts() []model.BlogPost             { return []model.BlogPost{} }
func emptyHighlights() []model.CareerHighlight { return []model.CareerHighlight{} }

func defaultSiteConfig() *model.SiteConfig {
	cfg := FallbackSiteConfig()
	return &cfg
}

func defaultStats() *model.PortfolioStats {
	st := model.DefaultStats()
	return &st
}

// FallbackSiteConfig is shown when the API cannot be reached and fallback mode is on.
func FallbackSiteConfig() model.SiteConfig {
	return model.SiteConfig{
		SiteName:        "Nikhil Dodda",
		Tagline:         "Applied AI Engineer specializing in production LLM systems",
		Bio:             "Applied AI Engineer with a passion for building intelligent systems.",
		Email:           "doddanikhil@gmail.com",
		GithubURL:       "https://github.com/doddanikhil",
		BlueskyHandle:   "@devdn.bsky.social",
		CalComUsername:  "dnpro",
		MetaDescription: "Applied AI Engineer specializing in production LLM systems",
		MetaKeywords:    "AI Engineer, Machine Learning, LLM, RAG Systems",
	}
}

func (c *Client) GetProjects(ctx context.Context) ([]model.Project, error) {
	return fetch(ctx, c, "/projects/", nil, emptyProjects)
}

func (c *Client) GetFeaturedProjects(ctx context.Context) ([]model.Project, error) {
	return fetch(ctx, c, "/projects/", url.Values{"featured": {"true"}}, emptyProjects)
}

// GetProject has no fallback; a missing slug is reported with IsNotFound.
func (c *Client) GetProject(ctx context.Context, slug string) (*model.Project, error) {
	return fetch[*model.Project](ctx, c, "/projects/"+url.PathEscape(slug)+"/", nil, nil)
}

func (c *Client) GetBlogPosts(ctx context.Context, q BlogQuery) ([]model.BlogPost, error) {
	v := url.Values{}
	if q.Category != "" && q.Category != "all" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return fetch[[]model.BlogPost](ctx, c, "/blog/posts/", v, nil)
}

func (c *Client) GetBlogPost(ctx context.Context, slug string) (*model.BlogPost, error) {
	return fetch[*model.BlogPost](ctx, c, "/blog/posts/"+url.PathEscape(slug)+"/", nil, nil)
}

func (c *Client) GetRecentPosts(ctx context.Context) ([]model.BlogPost, error) {
	return fetch(ctx, c, "/blog/recent/", nil, emptyPosts)
}

func (c *Client) GetBlogCategories(ctx context.Context) (model.BlogCategories, error) {
	return fetch[model.BlogCategories](ctx, c, "/blog/categories/", nil, nil)
}

func (c *Client) GetTechnologies(ctx context.Context) ([]model.Technology, error) {
	return fetch[[]model.Technology](ctx, c, "/technologies/", nil, nil)
}

func (c *Client) GetTechStack(ctx context.Context) ([]model.TechCategory, error) {
	return fetch[[]model.TechCategory](ctx, c, "/tech-stack/", nil, nil)
}

func (c *Client) GetSiteConfig(ctx context.Context) (*model.SiteConfig, error) {
	return fetch(ctx, c, "/core/config/", nil, defaultSiteConfig)
}

func (c *Client) GetStats(ctx context.Context) (*model.PortfolioStats, error) {
	return fetch(ctx, c, "/core/stats/", nil, defaultStats)
}

func (c *Client) GetCareerHighlights(ctx context.Context) ([]model.CareerHighlight, error) {
	return fetch(ctx, c, "/core/highlights/", nil, emptyHighlights)
}

// SubmitContact posts the form exactly once and never falls back.
// A 400 response is returned as a *ContactError matching ErrInvalidContact.
func (c *Client) SubmitContact(ctx context.Context, form model.ContactForm) (*model.ContactResult, error) {
	var res model.ContactResult
	if err := c.post(ctx, "/core/contact/", form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
