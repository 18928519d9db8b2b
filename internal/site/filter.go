package site

import (
	"sort"
	"strings"

	"folio/internal/model"
)

// allCategories is the category value that disables category filtering.
const allCategories = "all"

func normalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, allCategories) {
		return ""
	}
	return category
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// FilterProjects keeps projects whose title, tagline or technology names
// contain q (case-insensitive) and, when category is set, that use a
// technology of that category. An empty q or category ("all") matches everything.
func FilterProjects(items []model.Project, q, category string) []model.Project {
	q = strings.ToLower(strings.TrimSpace(q))
	category = normalizeCategory(category)

	out := make([]model.Project, 0, len(items))
	for _, p := range items {
		if q != "" && !projectMatches(p, q) {
			continue
		}
		if category != "" && !projectHasCategory(p, category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func projectMatches(p model.Project, q string) bool {
	if containsFold(p.Title, q) || containsFold(p.Tagline, q) {
		return true
	}
	for _, t := range p.Technologies {
		if containsFold(t.Name, q) {
			return true
		}
	}
	return false
}

func projectHasCategory(p model.Project, category string) bool {
	for _, t := range p.Technologies {
		if strings.EqualFold(t.Category, category) {
			return true
		}
	}
	return false
}

// FilterPosts keeps posts whose title or excerpt contain q (case-insensitive)
// and whose category equals category. An empty q or category ("all") matches everything.
func FilterPosts(items []model.BlogPost, q, category string) []model.BlogPost {
	q = strings.ToLower(strings.TrimSpace(q))
	category = normalizeCategory(category)

	out := make([]model.BlogPost, 0, len(items))
	for _, p := range items {
		if q != "" && !containsFold(p.Title, q) && !containsFold(p.Excerpt, q) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProjectCategories lists the distinct technology categories used by items, sorted.
func ProjectCategories(items []model.Project) []string {
	seen := make(map[string]struct{})
	for _, p := range items {
		for _, t := range p.Technologies {
			if t.Category != "" {
				seen[t.Category] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// categoryTab is one entry of the blog category filter.
type categoryTab struct {
	Key    string
	Label  string
	Count  int
	Active bool
}

// blogTabs builds the "All" tab followed by one tab per category, ordered by label.
func blogTabs(counts model.BlogCategories, active string) []categoryTab {
	active = normalizeCategory(active)
	total := 0
	tabs := make([]categoryTab, 0, len(counts)+1)
	for key, n := range counts {
		total += n
		tabs = append(tabs, categoryTab{
			Key:    key,
			Label:  model.CategoryLabel(key),
			Count:  n,
			Active: strings.EqualFold(key, active),
		})
	}
	sort.Slice(tabs, func(i, j int) bool { return tabs[i].Label < tabs[j].Label })
	all := categoryTab{Key: allCategories, Label: "All", Count: total, Active: active == ""}
	return append([]categoryTab{all}, tabs...)
}
