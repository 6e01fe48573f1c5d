package services

import (
	"context"

	"github.com/Tomas-vilte/IssueMate/internal/domain/models"
	"github.com/stretchr/testify/mock"
)

type MockIssueTracker struct {
	mock.Mock
}

func (m *MockIssueTracker) AuthStatus(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockIssueTracker) ListIssues(ctx context.Context, repo, state string) ([]models.Issue, error) {
	args := m.Called(ctx, repo, state)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func (m *MockIssueTracker) GetIssue(ctx context.Context, repo string, number int) (*models.Issue, error) {
	args := m.Called(ctx, repo, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Issue), args.Error(1)
}

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) DetectRepo() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitService) IsRepository() bool {
	args := m.Called()
	return args.Bool(0)
}
