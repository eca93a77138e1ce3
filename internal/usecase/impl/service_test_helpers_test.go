package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mutualaid/internal/domain/repository"
	mockRepo "mutualaid/internal/mocks/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRepos bundles all repository mocks and doubles as the transactional
// RepositoryFactory, so in-transaction and out-of-transaction calls hit the
// same mocks.
type testRepos struct {
	requests      *mockRepo.MockRequestRepository
	ledger        *mockRepo.MockHelpHistoryRepository
	notifications *mockRepo.MockNotificationRepository
	reviews       *mockRepo.MockReviewRepository
	users         *mockRepo.MockUserRepository
}

func newTestRepos(t *testing.T) *testRepos {
	return &testRepos{
		requests:      mockRepo.NewMockRequestRepository(t),
		ledger:        mockRepo.NewMockHelpHistoryRepository(t),
		notifications: mockRepo.NewMockNotificationRepository(t),
		reviews:       mockRepo.NewMockReviewRepository(t),
		users:         mockRepo.NewMockUserRepository(t),
	}
}

func (r *testRepos) Requests() repository.RequestRepository { return r.requests }

func (r *testRepos) HelpHistories() repository.HelpHistoryRepository { return r.ledger }

func (r *testRepos) Notifications() repository.NotificationRepository { return r.notifications }

func (r *testRepos) Reviews() repository.ReviewRepository { return r.reviews }

func (r *testRepos) Users() repository.UserRepository { return r.users }

// stubTxManager runs the callback directly against the mock factory.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (m *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.factory)
}
