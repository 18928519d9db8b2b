package site

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"folio/internal/apiclient"
	"folio/internal/http/middleware"
	"folio/internal/logger"
	"folio/internal/model"
)

type navLink struct {
	Label  string
	Href   string
	Active bool
}

var navItems = []navLink{
	{Label: "Home", Href: "/"},
	{Label: "About", Href: "/about"},
	{Label: "Projects", Href: "/projects"},
	{Label: "Blog", Href: "/blog"},
	{Label: "Connect", Href: "/connect"},
}

// layoutData is embedded by every page model and read by layout.html.
type layoutData struct {
	Title       string
	Description string
	Keywords    string
	Brand       string
	Theme       string
	Path        string
	Year        int
	Nav         []navLink
}

type homePage struct {
	layoutData
	Config   *model.SiteConfig
	Featured []model.Project
	Recent   []model.BlogPost
	Stats    *model.PortfolioStats
}

type aboutPage struct {
	layoutData
	Config     *model.SiteConfig
	TechStack  []model.TechCategory
	Highlights []model.CareerHighlight
}

type projectsPage struct {
	layoutData
	Projects   []model.Project
	Total      int
	Query      string
	Category   string
	Categories []string
	Empty      string
}

type projectPage struct {
	layoutData
	Project *model.Project
}

type blogPage struct {
	layoutData
	Posts    []model.BlogPost
	Total    int
	Query    string
	Category string
	Tabs     []categoryTab
	Empty    string
}

type postPage struct {
	layoutData
	Post *model.BlogPost
}

type errorPage struct {
	layoutData
	Heading   string
	Message   string
	ReloadURL string
}

type notFoundPage struct {
	layoutData
	Heading  string
	Message  string
	BackURL  string
	BackText string
}

func (s *Site) layout(c *fiber.Ctx, title string, cfg *model.SiteConfig) layoutData {
	l := layoutData{
		Title: title,
		Brand: s.brand,
		Theme: themeFromCookie(c),
		Path:  c.Path(),
		Year:  time.Now().Year(),
	}
	if cfg != nil {
		if cfg.SiteName != "" {
			l.Brand = cfg.SiteName
		}
		l.Description = cfg.MetaDescription
		l.Keywords = cfg.MetaKeywords
	}
	l.Nav = make([]navLink, len(navItems))
	for i, n := range navItems {
		n.Active = n.Href == l.Path || (n.Href != "/" && strings.HasPrefix(l.Path, n.Href+"/"))
		if n.Href == "/connect" && l.Path == "/contact" {
			n.Active = true
		}
		l.Nav[i] = n
	}
	return l
}

func (s *Site) render(c *fiber.Ctx, status int, name string, data any) error {
	return c.Status(status).Render(name, data)
}

// unavailable renders the 502 "Unable to Load" state with a reload link to the same URL.
func (s *Site) unavailable(c *fiber.Ctx, page string, err error) error {
	s.log.Warn("page_fetch_failed",
		logger.String("request_id", middleware.GetRequestID(c)),
		logger.String("page", page),
		logger.Error(err),
	)
	return s.render(c, fiber.StatusBadGateway, "error", errorPage{
		layoutData: s.layout(c, "Unable to Load "+page, nil),
		Heading:    "Unable to Load " + page,
		Message:    "There was a problem loading this page. Please try again.",
		ReloadURL:  c.OriginalURL(),
	})
}

func (s *Site) renderNotFound(c *fiber.Ctx, what string) error {
	back, backText := "/", "Back to Home"
	switch what {
	case "Project":
		back, backText = "/projects", "Back to Projects"
	case "Post":
		back, backText = "/blog", "Back to Blog"
	}
	return s.render(c, fiber.StatusNotFound, "notfound", notFoundPage{
		layoutData: s.layout(c, what+" Not Found", nil),
		Heading:    what + " Not Found",
		Message:    "The " + strings.ToLower(what) + " you're looking for doesn't exist or has been removed.",
		BackURL:    back,
		BackText:   backText,
	})
}

func (s *Site) home(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	var p homePage
	err := apiclient.Join(ctx,
		func(ctx context.Context) (err error) { p.Config, err = s.api.GetSiteConfig(ctx); return },
		func(ctx context.Context) (err error) { p.Featured, err = s.api.GetFeaturedProjects(ctx); return },
		func(ctx context.Context) (err error) { p.Recent, err = s.api.GetRecentPosts(ctx); return },
		func(ctx context.Context) (err error) { p.Stats, err = s.api.GetStats(ctx); return },
	)
	if err != nil {
		return s.unavailable(c, "Home", err)
	}
	p.layoutData = s.layout(c, "", p.Config)
	return s.render(c, fiber.StatusOK, "home", p)
}

func (s *Site) about(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	var p aboutPage
	err := apiclient.Join(ctx,
		func(ctx context.Context) (err error) { p.Config, err = s.api.GetSiteConfig(ctx); return },
		func(ctx context.Context) (err error) { p.TechStack, err = s.api.GetTechStack(ctx); return },
		func(ctx context.Context) (err error) { p.Highlights, err = s.api.GetCareerHighlights(ctx); return },
	)
	if err != nil {
		return s.unavailable(c, "About", err)
	}
	p.layoutData = s.layout(c, "About", p.Config)
	return s.render(c, fiber.StatusOK, "about", p)
}

func (s *Site) projects(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	all, err := s.api.GetProjects(ctx)
	if err != nil {
		return s.unavailable(c, "Projects", err)
	}

	p := projectsPage{
		layoutData: s.layout(c, "Projects", nil),
		Query:      c.Query("q"),
		Category:   normalizeCategory(c.Query("category")),
		Categories: ProjectCategories(all),
		Total:      len(all),
	}
	p.Projects = FilterProjects(all, p.Query, p.Category)
	if len(p.Projects) == 0 {
		if p.Query != "" || p.Category != "" {
			p.Empty = "No projects match your filters."
		} else {
			p.Empty = "No projects found."
		}
	}
	return s.render(c, fiber.StatusOK, "projects", p)
}

// slugParam decodes the :slug segment; fiber hands it over still percent-encoded.
func slugParam(c *fiber.Ctx) (string, bool) {
	slug, err := url.PathUnescape(c.Params("slug"))
	if err != nil || slug == "" {
		return "", false
	}
	return slug, true
}

func (s *Site) project(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	slug, ok := slugParam(c)
	if !ok {
		return s.renderNotFound(c, "Project")
	}
	proj, err := s.api.GetProject(ctx, slug)
	if apiclient.IsNotFound(err) || (err == nil && proj == nil) {
		return s.renderNotFound(c, "Project")
	}
	if err != nil {
		return s.unavailable(c, "Project", err)
	}
	return s.render(c, fiber.StatusOK, "project", projectPage{
		layoutData: s.layout(c, proj.Title, nil),
		Project:    proj,
	})
}

func (s *Site) blog(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	p := blogPage{
		Query:    c.Query("q"),
		Category: normalizeCategory(c.Query("category")),
	}

	var (
		posts  []model.BlogPost
		counts model.BlogCategories
	)
	err := apiclient.Join(ctx,
		func(ctx context.Context) (err error) {
			posts, err = s.api.GetBlogPosts(ctx, apiclient.BlogQuery{Category: p.Category})
			return
		},
		func(ctx context.Context) (err error) { counts, err = s.api.GetBlogCategories(ctx); return },
	)
	if err != nil {
		return s.unavailable(c, "Blog", err)
	}

	p.layoutData = s.layout(c, "Blog", nil)
	p.Total = len(posts)
	p.Tabs = blogTabs(counts, p.Category)
	p.Posts = FilterPosts(posts, p.Query, p.Category)
	if len(p.Posts) == 0 {
		if p.Query != "" || p.Category != "" {
			p.Empty = "No posts match your filters."
		} else {
			p.Empty = "No posts published yet."
		}
	}
	return s.render(c, fiber.StatusOK, "blog", p)
}

func (s *Site) post(c *fiber.Ctx) error {
	ctx, cancel := s.pageContext(c)
	defer cancel()

	slug, ok := slugParam(c)
	if !ok {
		return s.renderNotFound(c, "Post")
	}
	post, err := s.api.GetBlogPost(ctx, slug)
	if apiclient.IsNotFound(err) || (err == nil && post == nil) {
		return s.renderNotFound(c, "Post")
	}
	if err != nil {
		return s.unavailable(c, "Post", err)
	}
	l := s.layout(c, post.Title, nil)
	l.Description = post.Excerpt
	return s.render(c, fiber.StatusOK, "post", postPage{layoutData: l, Post: post})
}
