package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// ProjectFilter narrows project listings. A zero Limit means no limit.
type ProjectFilter struct {
	FeaturedOnly bool
	Limit        int
}

// PostFilter narrows blog post listings. Search matches title or excerpt case-insensitively.
type PostFilter struct {
	Category string
	Search   string
	Limit    int
}

// ProjectCounts are the published and featured project totals.
type ProjectCounts struct {
	Published int
	Featured  int
}
