package mocks

import (
	"context"

	"folio/internal/model"
	"folio/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) List(ctx context.Context, f repository.ProjectFilter) ([]model.Project, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) FindBySlug(ctx context.Context, slug string) (*model.Project, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) Counts(ctx context.Context) (repository.ProjectCounts, error) {
	args := m.Called(ctx)
	return args.Get(0).(repository.ProjectCounts), args.Error(1)
}

type MockBlogRepository struct {
	mock.Mock
}

func (m *MockBlogRepository) List(ctx context.Context, f repository.PostFilter) ([]model.BlogPost, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BlogPost), args.Error(1)
}

func (m *MockBlogRepository) IncrementViews(ctx context.Context, id int64) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockBlogRepository) CategoryCounts(ctx context.Context) (model.BlogCategories, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(model.BlogCategories), args.Error(1)
}

type MockTechRepository struct {
	mock.Mock
}

func (m *MockTechRepository) List(ctx context.Context) ([]model.Technology, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Technology), args.Error(1)
}

func (m *MockTechRepository) Grouped(ctx context.Context) ([]model.TechCategory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.TechCategory), args.Error(1)
}

func (m *MockTechRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockCoreRepository struct {
	mock.Mock
}

func (m *MockCoreRepository) SiteConfig(ctx context.Context) (*model.SiteConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SiteConfig), args.Error(1)
}

func (m *MockCoreRepository) Highlights(ctx context.Context) ([]model.CareerHighlight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CareerHighlight), args.Error(1)
}

type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, s *model.ContactSubmission) (*model.ContactSubmission, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContactSubmission), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.ContactSubmission], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.ContactSubmission]), args.Error(1)
}
