package model

import "time"

// Technology is a single entry of the tech stack. Proficiency is self-reported on a 1..5 scale.
type Technology struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category,omitempty"`
	Proficiency int    `json:"proficiency,omitempty"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
	Color       string `json:"color,omitempty"`
}

// TechCategory groups technologies for the tech-stack view.
type TechCategory struct {
	Category     string       `json:"category"`
	Order        int          `json:"order"`
	Technologies []Technology `json:"technologies"`
}

// Project is a portfolio entry describing a built application.
type Project struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Tagline      string         `json:"tagline"`
	Thumbnail    string         `json:"thumbnail,omitempty"`
	Technologies []Technology   `json:"technologies"`
	GithubURL    string         `json:"github_url,omitempty"`
	LiveDemoURL  string         `json:"live_demo_url,omitempty"`
	IsFeatured   bool           `json:"is_featured"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
	Details      *ProjectDetail `json:"details,omitempty"`
}

// ProjectDetail is the long-form case study attached to a project.
// Text fields are markdown.
type ProjectDetail struct {
	ProblemStatement        string              `json:"problem_statement"`
	SolutionApproach        string              `json:"solution_approach"`
	TechnologyJustification string              `json:"technology_justification"`
	TechnicalArchitecture   string              `json:"technical_architecture,omitempty"`
	KeyFeatures             []string            `json:"key_features"`
	PerformanceMetrics      []PerformanceMetric `json:"performance_metrics"`
	ChallengesSolved        string              `json:"challenges_solved"`
	DemoVideoURL            string              `json:"demo_video_url,omitempty"`
	LessonsLearned          string              `json:"lessons_learned,omitempty"`
}

// PerformanceMetric is one before/after claim, e.g. {"Latency", "40% faster"}.
type PerformanceMetric struct {
	Metric      string `json:"metric"`
	Improvement string `json:"improvement"`
}
