package site

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/apiclient"
	"folio/internal/model"
)

type apiResponse struct {
	status int
	body   any
}

// fakeAPI serves canned JSON keyed by "METHOD /path" or "METHOD /path?query".
type fakeAPI struct {
	mu        sync.Mutex
	routes    map[string]apiResponse
	contacts  []model.ContactForm
	forwarded []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api/v1")
	key := r.Method + " " + path
	if r.URL.RawQuery != "" {
		if _, ok := f.routes[key+"?"+r.URL.RawQuery]; ok {
			key += "?" + r.URL.RawQuery
		}
	}
	if r.Method == http.MethodPost {
		var form model.ContactForm
		_ = json.NewDecoder(r.Body).Decode(&form)
		f.contacts = append(f.contacts, form)
		f.forwarded = append(f.forwarded, r.Header.Get("X-Forwarded-For"))
	}

	res, ok := f.routes[key]
	if !ok {
		res = apiResponse{status: http.StatusNotFound, body: map[string]any{
			"error": map[string]string{"code": "NOT_FOUND", "message": "not found"},
		}}
	}
	w.Header().Set("Content-Type", "application/json")
	if res.status == 0 {
		res.status = http.StatusOK
	}
	w.WriteHeader(res.status)
	_ = json.NewEncoder(w).Encode(res.body)
}

func (f *fakeAPI) contactCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.contacts)
}

func (f *fakeAPI) forwardedFor() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.forwarded...)
}

func (f *fakeAPI) lastContact() model.ContactForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.contacts[len(f.contacts)-1]
}

var (
	testConfig = model.SiteConfig{
		SiteName:        "Ada Lovelace",
		Tagline:         "Analytical Engine Programmer",
		Bio:             "I write programs for machines that do not exist yet.",
		Email:           "ada@example.com",
		GithubURL:       "https://github.com/ada",
		BlueskyHandle:   "@ada.bsky.social",
		CalComUsername:  "ada",
		MetaDescription: "Ada's portfolio",
	}
	testProjects = []model.Project{
		{
			ID: 1, Title: "RAG Pipeline", Slug: "rag-pipeline", Tagline: "Retrieval for support tickets", IsFeatured: true,
			Technologies: []model.Technology{{Name: "Python", Category: "Languages"}, {Name: "pgvector", Category: "Databases"}},
		},
		{
			ID: 2, Title: "Edge Cache", Slug: "edge-cache", Tagline: "Low latency inference",
			Technologies: []model.Technology{{Name: "Go", Category: "Languages"}},
		},
	}
	testPosts = []model.BlogPost{
		{ID: 1, Title: "Evaluating LLMs", Slug: "evaluating-llms", Excerpt: "How to measure quality", Category: "technical", ReadingTime: 7, PublishedDate: time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)},
		{ID: 2, Title: "AI in 2025", Slug: "ai-in-2025", Excerpt: "Trends worth watching", Category: "ai-trends", ReadingTime: 3, PublishedDate: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)},
	}
)

func defaultRoutes() map[string]apiResponse {
	return map[string]apiResponse{
		"GET /core/config/":                   {body: testConfig},
		"GET /projects/":                      {body: testProjects},
		"GET /projects/?featured=true":        {body: testProjects[:1]},
		"GET /blog/recent/":                   {body: testPosts},
		"GET /blog/posts/":                    {body: testPosts},
		"GET /blog/posts/?category=technical": {body: testPosts[:1]},
		"GET /blog/categories/":               {body: model.BlogCategories{"technical": 1, "ai-trends": 1}},
		"GET /core/stats/":                    {body: model.PortfolioStats{TotalProjects: 2, TechnologiesMastered: 3, YearsExperience: 4, UptimePercentage: "99.9", PerformanceImprovement: "40"}},
		"GET /tech-stack/": {body: []model.TechCategory{
			{Category: "Languages", Technologies: []model.Technology{{Name: "Go", Proficiency: 4}}},
		}},
		"GET /core/highlights/": {body: []model.CareerHighlight{
			{Title: "Staff Engineer", Organization: "Acme", DateRange: "2023 - Present", IsCurrent: true, Metrics: []string{"Cut latency 40%"}},
		}},
		"POST /core/contact/": {body: model.ContactResult{Success: true, Message: "Thank you for your message! I'll get back to you soon.", ID: 9}},
	}
}

func newTestSite(t *testing.T, routes map[string]apiResponse, fallback bool) (*fiber.App, *fakeAPI) {
	t.Helper()
	api := &fakeAPI{routes: routes}
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client := apiclient.New(apiclient.Options{BaseURL: srv.URL + "/api/v1", Fallback: fallback, Timeout: 2 * time.Second})
	s, err := New(client, Options{Brand: "Folio"})
	require.NoError(t, err)
	return s.App(), api
}

func get(t *testing.T, app *fiber.App, target string) (*http.Response, *goquery.Document) {
	t.Helper()
	return do(t, app, httptest.NewRequest(http.MethodGet, target, nil))
}

func do(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, *goquery.Document) {
	t.Helper()
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	require.NoError(t, err)
	return resp, doc
}

func postForm(t *testing.T, app *fiber.App, target string, form url.Values) (*http.Response, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	return do(t, app, req)
}

func TestHome(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	resp, doc := get(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "Ada Lovelace", doc.Find(".hero-name").Text())
	assert.Equal(t, "Analytical Engine Programmer", doc.Find(".hero-tagline").Text())
	assert.Equal(t, testConfig.Bio, doc.Find(".hero-bio").Text())
	assert.Equal(t, 1, doc.Find(".featured .project-card").Length())
	assert.Equal(t, 2, doc.Find(".recent .post-card").Length())
	assert.Equal(t, "Ada Lovelace", doc.Find(".brand").Text())
	assert.Equal(t, "dark", doc.Find("html").AttrOr("data-theme", ""))
	assert.Equal(t, "Ada's portfolio", doc.Find(`meta[name="description"]`).AttrOr("content", ""))
	assert.Contains(t, doc.Find(".stats").Text(), "99.9%")
}

func TestHome_APIFailure(t *testing.T) {
	routes := defaultRoutes()
	routes["GET /core/stats/"] = apiResponse{status: http.StatusInternalServerError, body: map[string]any{}}
	app, _ := newTestSite(t, routes, false)

	resp, doc := get(t, app, "/?ref=nav")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Unable to Load Home", doc.Find(".error-state h1").Text())
	assert.Equal(t, "/?ref=nav", doc.Find("a.reload").AttrOr("href", ""))
}

func TestHome_FallbackDefaults(t *testing.T) {
	app, _ := newTestSite(t, map[string]apiResponse{}, true)

	resp, doc := get(t, app, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	fb := apiclient.FallbackSiteConfig()
	assert.Equal(t, fb.SiteName, doc.Find(".hero-name").Text())
	assert.Equal(t, "No featured projects yet.", strings.TrimSpace(doc.Find(".featured .empty-state").Text()))
}

func TestAbout(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	resp, doc := get(t, app, "/about")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "About Ada Lovelace", doc.Find(".about-header h1").Text())
	assert.Equal(t, "Go", doc.Find(".tech-name").First().Text())
	assert.Equal(t, 4, doc.Find(".proficiency .dot.on").Length())
	assert.Equal(t, 1, doc.Find(".timeline-item.current").Length())
	assert.Equal(t, "Cut latency 40%", doc.Find(".metrics li").Text())
	assert.True(t, doc.Find(`.nav-links a[href="/about"]`).HasClass("active"))
}

func TestProjects(t *testing.T) {
	tests := []struct {
		name   string
		target string
		titles []string
		count  string
		empty  string
	}{
		{name: "all", target: "/projects", titles: []string{"RAG Pipeline", "Edge Cache"}, count: "Showing 2 of 2 projects"},
		{name: "search is case-insensitive", target: "/projects?q=rag", titles: []string{"RAG Pipeline"}, count: "Showing 1 of 2 projects"},
		{name: "search matches technology names", target: "/projects?q=PGVECTOR", titles: []string{"RAG Pipeline"}, count: "Showing 1 of 2 projects"},
		{name: "category", target: "/projects?category=Languages", titles: []string{"RAG Pipeline", "Edge Cache"}, count: "Showing 2 of 2 projects"},
		{name: "category all", target: "/projects?category=all&q=edge", titles: []string{"Edge Cache"}, count: "Showing 1 of 2 projects"},
		{name: "no matches", target: "/projects?q=kotlin", count: "Showing 0 of 2 projects", empty: "No projects match your filters."},
	}

	app, _ := newTestSite(t, defaultRoutes(), false)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, doc := get(t, app, tc.target)
			require.Equal(t, http.StatusOK, resp.StatusCode)

			var titles []string
			doc.Find(".project-card .card-title").Each(func(_ int, s *goquery.Selection) {
				titles = append(titles, s.Text())
			})
			assert.Equal(t, tc.titles, titles)
			assert.Equal(t, tc.count, doc.Find(".result-count").Text())
			if tc.empty != "" {
				assert.Equal(t, tc.empty, doc.Find(".empty-state").Text())
			}
		})
	}
}

func TestProjects_EmptyCatalogue(t *testing.T) {
	routes := defaultRoutes()
	routes["GET /projects/"] = apiResponse{body: []model.Project{}}
	app, _ := newTestSite(t, routes, false)

	_, doc := get(t, app, "/projects")

	assert.Equal(t, "No projects found.", doc.Find(".empty-state").Text())
}

func TestProjects_APIFailure(t *testing.T) {
	routes := defaultRoutes()
	delete(routes, "GET /projects/")
	routes["GET /projects/"] = apiResponse{status: http.StatusServiceUnavailable, body: map[string]any{}}
	app, _ := newTestSite(t, routes, false)

	resp, doc := get(t, app, "/projects")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "Unable to Load Projects", doc.Find("h1").Text())
}

func TestProjectDetail(t *testing.T) {
	routes := defaultRoutes()
	p := testProjects[0]
	p.Details = &model.ProjectDetail{
		ProblemStatement:   "Agents **drown** in tickets.",
		KeyFeatures:        []string{"Hybrid search"},
		PerformanceMetrics: []model.PerformanceMetric{{Metric: "Latency", Improvement: "40% faster"}},
	}
	routes["GET /projects/rag-pipeline/"] = apiResponse{body: p}
	app, _ := newTestSite(t, routes, false)

	resp, doc := get(t, app, "/projects/rag-pipeline")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "RAG Pipeline", doc.Find(".project-detail h1").Text())
	assert.Equal(t, "drown", doc.Find("#problem strong").Text())
	assert.Equal(t, "Hybrid search", doc.Find("#features li").Text())
	assert.Equal(t, "40% faster", doc.Find("#metrics dd").Text())
	assert.Zero(t, doc.Find("#solution").Length())
	assert.Zero(t, doc.Find("#lessons").Length())
}

func TestProjectDetail_NotFound(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	resp, doc := get(t, app, "/projects/missing")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project Not Found", doc.Find(".not-found h1").Text())
	assert.Equal(t, "/projects", doc.Find(".not-found a").AttrOr("href", ""))
}

func TestDetail_EncodedSlug(t *testing.T) {
	routes := defaultRoutes()
	routes["GET /projects/café-ops/"] = apiResponse{body: model.Project{Title: "Café Ops", Slug: "café-ops"}}
	routes["GET /blog/posts/über-rag/"] = apiResponse{body: model.BlogPost{Title: "Über RAG", Slug: "über-rag", Content: "Hello"}}
	app, _ := newTestSite(t, routes, false)

	resp, doc := get(t, app, "/projects/caf%C3%A9-ops")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Café Ops", doc.Find("h1").First().Text())

	resp, doc = get(t, app, "/blog/%C3%BCber-rag")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Über RAG", doc.Find("h1").First().Text())
}

func TestDetail_NullBody(t *testing.T) {
	routes := defaultRoutes()
	routes["GET /projects/ghost/"] = apiResponse{body: nil}
	routes["GET /blog/posts/ghost/"] = apiResponse{body: nil}
	app, _ := newTestSite(t, routes, false)

	resp, doc := get(t, app, "/projects/ghost")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Project Not Found", doc.Find(".not-found h1").Text())

	resp, doc = get(t, app, "/blog/ghost")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post Not Found", doc.Find(".not-found h1").Text())
}

func TestBlog_NothingPublished(t *testing.T) {
	routes := defaultRoutes()
	routes["GET /blog/posts/"] = apiResponse{body: []model.BlogPost{}}
	routes["GET /blog/categories/"] = apiResponse{body: model.BlogCategories{}}
	app, _ := newTestSite(t, routes, false)

	resp, doc := get(t, app, "/blog")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, doc.Find(".post-card").Length())
	assert.Equal(t, "No posts published yet.", doc.Find(".empty-state").Text())
}

func TestBlog(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	t.Run("list with category counts", func(t *testing.T) {
		resp, doc := get(t, app, "/blog")
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, 2, doc.Find(".post-card").Length())
		tabs := doc.Find(".category-tabs a")
		assert.Equal(t, 3, tabs.Length())
		assert.True(t, tabs.First().HasClass("active"))
		assert.Contains(t, tabs.First().Text(), "All")
		assert.Equal(t, "2", tabs.First().Find(".count").Text())
		assert.Equal(t, "March 5, 2024", doc.Find(".post-card time").First().Text())
		assert.Equal(t, "7 min read", doc.Find(".post-card .reading-time").First().Text())
	})

	t.Run("category", func(t *testing.T) {
		_, doc := get(t, app, "/blog?category=technical")

		assert.Equal(t, 1, doc.Find(".post-card").Length())
		assert.Equal(t, "Technical Deep Dive", doc.Find(".post-card .category").Text())
		assert.True(t, doc.Find(`.category-tabs a[href="/blog?category=technical"]`).HasClass("active"))
	})

	t.Run("search", func(t *testing.T) {
		_, doc := get(t, app, "/blog?q=TRENDS")

		assert.Equal(t, "AI in 2025", doc.Find(".post-card .card-title").Text())
	})

	t.Run("no matches", func(t *testing.T) {
		_, doc := get(t, app, "/blog?q=quantum")

		assert.Equal(t, "No posts match your filters.", doc.Find(".empty-state").Text())
	})
}

func TestBlogPost(t *testing.T) {
	routes := defaultRoutes()
	post := testPosts[0]
	post.Content = "# Intro\n\nUse `go test`.\n\n<script>alert(1)</script>"
	post.Views = 12
	routes["GET /blog/posts/evaluating-llms/"] = apiResponse{body: post}
	app, _ := newTestSite(t, routes, false)

	resp, doc := get(t, app, "/blog/evaluating-llms")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Intro", doc.Find(".prose h1").Text())
	assert.Equal(t, "go test", doc.Find(".prose code").Text())
	assert.Zero(t, doc.Find(".prose script").Length())
	assert.Equal(t, "March 5, 2024", doc.Find(".post-detail time").Text())
	assert.Equal(t, "7 min read", doc.Find(".post-detail .reading-time").Text())
	assert.Equal(t, "12 views", doc.Find(".views").Text())
}

func TestBlogPost_NotFound(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	resp, doc := get(t, app, "/blog/nope")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Post Not Found", doc.Find("h1").Text())
}

func TestConnect_Get(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	for _, target := range []string{"/connect", "/contact"} {
		resp, doc := get(t, app, target)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, doc.Find("form.contact-form").Length())
		assert.Equal(t, "https://bsky.app/profile/ada.bsky.social", doc.Find(`.contact-links a[href^="https://bsky.app"]`).AttrOr("href", ""))
		assert.Equal(t, "https://cal.com/ada", doc.Find(`.contact-links a[href^="https://cal.com"]`).AttrOr("href", ""))
		assert.True(t, doc.Find(`.nav-links a[href="/connect"]`).HasClass("active"))
	}
}

func TestConnect_Post(t *testing.T) {
	valid := url.Values{
		"name":    {"Grace"},
		"email":   {"grace@example.com"},
		"subject": {"Hello"},
		"message": {"Let's build something."},
	}

	t.Run("invalid form is not sent", func(t *testing.T) {
		app, api := newTestSite(t, defaultRoutes(), false)

		form := url.Values{"name": {"  "}, "email": {"not-an-email"}, "subject": {"Hi"}, "message": {"Body"}}
		resp, doc := postForm(t, app, "/connect", form)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Zero(t, api.contactCount())
		assert.Equal(t, "Name is required", doc.Find("#name ~ .field-error").Text())
		assert.Equal(t, "Please enter a valid email address", doc.Find("#email ~ .field-error").Text())
		assert.Equal(t, "not-an-email", doc.Find("#email").AttrOr("value", ""))
		assert.Equal(t, "Hi", doc.Find("#subject").AttrOr("value", ""))
	})

	t.Run("success resets the form", func(t *testing.T) {
		app, api := newTestSite(t, defaultRoutes(), false)

		resp, doc := postForm(t, app, "/connect", valid)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, api.contactCount())
		assert.Equal(t, "Grace", api.lastContact().Name)
		assert.Equal(t, []string{"0.0.0.0"}, api.forwardedFor())
		assert.Equal(t, "Thank you for your message! I'll get back to you soon.", doc.Find(".banner.success p").First().Text())
		assert.Equal(t, "", doc.Find("#name").AttrOr("value", "missing"))
		assert.Equal(t, "", doc.Find("#message").Text())
	})

	t.Run("pending email note", func(t *testing.T) {
		routes := defaultRoutes()
		routes["POST /core/contact/"] = apiResponse{body: model.ContactResult{Success: true, Message: "Your message has been received. I'll get back to you soon!", Note: "Email delivery pending"}}
		app, _ := newTestSite(t, routes, false)

		_, doc := postForm(t, app, "/contact", valid)

		assert.Equal(t, "Email delivery pending", doc.Find(".banner.success .note").Text())
	})

	t.Run("api failure keeps values", func(t *testing.T) {
		routes := defaultRoutes()
		routes["POST /core/contact/"] = apiResponse{status: http.StatusInternalServerError, body: map[string]any{}}
		app, api := newTestSite(t, routes, true)

		resp, doc := postForm(t, app, "/connect", valid)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, 1, api.contactCount())
		assert.Equal(t, sendFailedMessage, doc.Find(".banner.error p").Text())
		assert.Equal(t, "Grace", doc.Find("#name").AttrOr("value", ""))
		assert.Equal(t, "Let's build something.", doc.Find("#message").Text())
	})

	t.Run("api rejection shows field errors", func(t *testing.T) {
		routes := defaultRoutes()
		routes["POST /core/contact/"] = apiResponse{status: http.StatusBadRequest, body: map[string]any{
			"error": map[string]any{
				"code":    "VALIDATION_ERROR",
				"message": "email: enter a valid email address",
				"fields":  map[string]string{"email": "enter a valid email address"},
			},
		}}
		app, _ := newTestSite(t, routes, false)

		resp, doc := postForm(t, app, "/connect", valid)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "email: enter a valid email address", doc.Find(".banner.error p").Text())
		assert.Equal(t, "enter a valid email address", doc.Find("#email ~ .field-error").Text())
	})
}

func TestTheme(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	t.Run("toggle from default", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/theme", nil)
		req.Header.Set("Referer", "http://example.com/blog?q=go")
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/blog?q=go", resp.Header.Get("Location"))
		assert.Contains(t, resp.Header.Get("Set-Cookie"), "theme=light")
	})

	t.Run("light cookie renders light", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/projects", nil)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
		_, doc := do(t, app, req)

		assert.Equal(t, "light", doc.Find("html").AttrOr("data-theme", ""))
	})

	t.Run("toggle back to dark", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/theme", nil)
		req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "/", resp.Header.Get("Location"))
		assert.Contains(t, resp.Header.Get("Set-Cookie"), "theme=dark")
	})
}

func TestBackPath(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"/about", "/about"},
		{"http://example.com/projects?q=go", "/projects?q=go"},
		{"https://evil.test/phish", "/"},
		{"//evil.test/phish", "/"},
		{"javascript:alert(1)", "/"},
		{"http://example.com", "/"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, backPath(tc.referer, "example.com"), tc.referer)
	}
}

func TestHealthzAndStatic(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/css")
}

func TestUnknownRoute(t *testing.T) {
	app, _ := newTestSite(t, defaultRoutes(), false)

	resp, doc := get(t, app, "/nowhere")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Page Not Found", doc.Find("h1").Text())
}
