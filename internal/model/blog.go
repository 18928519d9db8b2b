package model

import "time"

// BlogPost is a published article. Content is markdown and only present on detail responses.
type BlogPost struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content,omitempty"`
	Category      string     `json:"category"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	ReadingTime   int        `json:"reading_time"`
	PublishedDate time.Time  `json:"published_date"`
	UpdatedDate   *time.Time `json:"updated_date,omitempty"`
	Views         int        `json:"views"`
}

// BlogCategories maps a category key to its number of published posts.
type BlogCategories map[string]int

// CategoryLabels are the display names of the known post categories.
var CategoryLabels = map[string]string{
	"ai-trends": "AI Trends",
	"technical": "Technical Deep Dive",
	"industry":  "Industry Insights",
	"tutorial":  "Tutorial",
	"opinion":   "Opinion",
}

// CategoryLabel returns the display name for key, or key itself when unknown.
func CategoryLabel(key string) string {
	if l, ok := CategoryLabels[key]; ok {
		return l
	}
	return key
}
