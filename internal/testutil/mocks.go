package testutil

import (
	"time"

	"realtybot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockAdRepository is a mock for repository.AdRepository
type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) Insert(ad *domain.Ad) (int64, error) {
	args := m.Called(ad)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdRepository) GetByID(id int64) (*domain.Ad, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ad), args.Error(1)
}

func (m *MockAdRepository) ListPending() ([]domain.Ad, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ad), args.Error(1)
}

func (m *MockAdRepository) ApprovePending(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdRepository) RejectPending(id int64, reason string) error {
	args := m.Called(id, reason)
	return args.Error(0)
}

func (m *MockAdRepository) MarkPublished(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockAdRepository) ListUnpublished() ([]domain.Ad, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Ad), args.Error(1)
}

func (m *MockAdRepository) CountByStatus() (map[domain.AdStatus]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.AdStatus]int), args.Error(1)
}

func (m *MockAdRepository) CountByType() (map[domain.PropertyType]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.PropertyType]int), args.Error(1)
}

func (m *MockAdRepository) CountCreatedSince(since time.Time) (int, error) {
	args := m.Called(since)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock for repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Upsert(telegramID int64, username, firstName string, role domain.Role) (*domain.User, error) {
	args := m.Called(telegramID, username, firstName, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id int64) (*domain.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByTelegramID(telegramID int64) (*domain.User, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountByRole() (map[domain.Role]int, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[domain.Role]int), args.Error(1)
}

func (m *MockUserRepository) CountCreatedSince(since time.Time) (int, error) {
	args := m.Called(since)
	return args.Int(0), args.Error(1)
}

// MockPublisher is a mock for service.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ad *domain.Ad, owner *domain.User) error {
	args := m.Called(ad, owner)
	return args.Error(0)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyApproved(user *domain.User, ad *domain.Ad) error {
	args := m.Called(user, ad)
	return args.Error(0)
}

func (m *MockNotifier) NotifyRejected(user *domain.User, ad *domain.Ad, reason string) error {
	args := m.Called(user, ad, reason)
	return args.Error(0)
}
