package model

import "time"

// CareerHighlight is a timeline entry describing a role or achievement.
type CareerHighlight struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Organization string   `json:"organization"`
	DateRange    string   `json:"date_range"`
	Description  string   `json:"description"`
	Metrics      []string `json:"metrics"`
	IsCurrent    bool     `json:"is_current"`
	Order        int      `json:"order"`
}

// SiteConfig is the global site configuration rendered across pages.
type SiteConfig struct {
	SiteName           string `json:"site_name"`
	Tagline            string `json:"tagline"`
	Bio                string `json:"bio"`
	Location           string `json:"location,omitempty"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	GithubURL          string `json:"github_url,omitempty"`
	LinkedinURL        string `json:"linkedin_url,omitempty"`
	TwitterURL         string `json:"twitter_url,omitempty"`
	BlueskyHandle      string `json:"bluesky_handle,omitempty"`
	CalComUsername     string `json:"cal_com_username,omitempty"`
	CalendarURL        string `json:"calendar_url,omitempty"`
	ResumeURL          string `json:"resume_url,omitempty"`
	ProfileImage       string `json:"profile_image,omitempty"`
	MetaDescription    string `json:"meta_description"`
	MetaKeywords       string `json:"meta_keywords"`
	ShowResumeDownload bool   `json:"show_resume_download"`
	YearsExperience    int    `json:"years_experience,omitempty"`
}

// SiteMetadata is SiteConfig as served by the /metadata/ endpoint, which names the owner "name".
type SiteMetadata struct {
	Name string `json:"name"`
	SiteConfig
	// SiteName shadows the embedded field and is left empty so site_name is omitted.
	SiteName string `json:"site_name,omitempty"`
}

// Metadata converts the config to its /metadata/ representation.
func (c SiteConfig) Metadata() SiteMetadata {
	return SiteMetadata{Name: c.SiteName, SiteConfig: c}
}

// DefaultSiteConfig is served when no configuration has been stored yet.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteName:        "Nikhil Dodda",
		Tagline:         "Applied AI Engineer",
		Bio:             "Building intelligent applications that solve real business problems.",
		Location:        "DMV Metro Area, USA",
		Email:           "hello@nikhildodda.dev",
		BlueskyHandle:   "@devdn.bsky.social",
		CalComUsername:  "dnpro",
		MetaDescription: "Applied AI Engineer specializing in production LLM systems, RAG architectures, and scalable ML infrastructure.",
		MetaKeywords:    "AI Engineer, Machine Learning, LLM, RAG Systems, Python, AWS, MLOps",
		YearsExperience: 2,
	}
}

// PortfolioStats are the headline numbers shown on the home page.
type PortfolioStats struct {
	TotalProjects          int    `json:"total_projects"`
	FeaturedProjects       int    `json:"featured_projects"`
	TechnologiesMastered   int    `json:"technologies_mastered"`
	YearsExperience        int    `json:"years_experience"`
	UptimePercentage       string `json:"uptime_percentage"`
	PerformanceImprovement string `json:"performance_improvement"`
}

// DefaultStats mirrors the numbers shown while the API is unreachable.
func DefaultStats() PortfolioStats {
	return PortfolioStats{
		TotalProjects:          5,
		FeaturedProjects:       3,
		TechnologiesMastered:   15,
		YearsExperience:        2,
		UptimePercentage:       "99.9",
		PerformanceImprovement: "40",
	}
}

// ContactForm is the payload of a contact submission.
type ContactForm struct {
	Name    string `json:"name" form:"name" validate:"required,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Company string `json:"company,omitempty" form:"company" validate:"max=100"`
	Subject string `json:"subject" form:"subject" validate:"required,max=200"`
	Message string `json:"message" form:"message" validate:"required"`
}

// ContactSubmission is a stored contact form.
type ContactSubmission struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Company     string    `json:"company,omitempty"`
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submitted_at"`
	IsRead      bool      `json:"is_read"`
}

// ContactResult is the API response to a contact submission.
type ContactResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
	Note    string `json:"note,omitempty"`
}
