package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"folio/internal/model"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Views is a fiber.Views engine over the embedded templates. Every page is
// parsed together with layout.html and partials.html and rendered through
// the "layout" template.
type Views struct {
	mu    sync.RWMutex
	pages map[string]*template.Template
	loc   *time.Location
	md    goldmark.Markdown
}

var _ fiber.Views = (*Views)(nil)

// NewViews creates the engine; dates are rendered in loc (UTC when nil).
func NewViews(loc *time.Location) *Views {
	if loc == nil {
		loc = time.UTC
	}
	return &Views{
		loc: loc,
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Load parses the templates. It is safe to call more than once.
func (v *Views) Load() error {
	base, err := template.New("").Funcs(v.funcs()).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return err
	}

	pages := make(map[string]*template.Template, len(files))
	for _, f := range files {
		t, err := base.Clone()
		if err != nil {
			return err
		}
		if _, err := t.ParseFS(templateFS, f); err != nil {
			return fmt.Errorf("parse %s: %w", f, err)
		}
		pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}

	v.mu.Lock()
	v.pages = pages
	v.mu.Unlock()
	return nil
}

// Render executes the named page. The layout argument is ignored; every page uses the site layout.
func (v *Views) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	v.mu.RLock()
	t, ok := v.pages[name]
	v.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	// Buffer so a failing template never leaves a half-written page.
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

func (v *Views) funcs() template.FuncMap {
	return template.FuncMap{
		"date":          v.formatDate,
		"markdown":      v.markdown,
		"categoryLabel": model.CategoryLabel,
		"readingTime":   readingTime,
		"initials":      initials,
		"paragraphs":    paragraphs,
		"dots":          dots,
		"calURL":        calURL,
		"blueskyURL":    blueskyURL,
		"hasText":       func(s string) bool { return strings.TrimSpace(s) != "" },
	}
}

// formatDate renders "January 2, 2006". It accepts time.Time and *time.Time.
func (v *Views) formatDate(t any) string {
	switch tt := t.(type) {
	case time.Time:
		if tt.IsZero() {
			return ""
		}
		return tt.In(v.loc).Format("January 2, 2006")
	case *time.Time:
		if tt == nil || tt.IsZero() {
			return ""
		}
		return tt.In(v.loc).Format("January 2, 2006")
	default:
		return ""
	}
}

// markdown converts markdown to HTML. Raw HTML in the source is omitted by goldmark.
func (v *Views) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := v.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

func readingTime(minutes int) string {
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

func initials(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		for _, r := range w {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// paragraphs splits text on blank lines.
func paragraphs(s string) []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dots returns five booleans, the first n set, for proficiency meters.
func dots(n int) []bool {
	out := make([]bool, 5)
	for i := 0; i < n && i < len(out); i++ {
		out[i] = true
	}
	return out
}

func calURL(username string) string {
	if username == "" {
		return ""
	}
	return "https://cal.com/" + strings.TrimPrefix(username, "@")
}

func blueskyURL(handle string) string {
	if handle == "" {
		return ""
	}
	return "https://bsky.app/profile/" + strings.TrimPrefix(handle, "@")
}

func staticHandler() fiber.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return filesystem.New(filesystem.Config{
		Root:   http.FS(sub),
		MaxAge: 86400,
	})
}
