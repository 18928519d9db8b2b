package mocks

import (
	"context"

	"folio/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyContact(ctx context.Context, s *model.ContactSubmission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
