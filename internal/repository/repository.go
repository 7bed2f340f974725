package repository

import (
	"time"

	"realtybot/internal/domain"
)

// AdRepository defines ad data operations.
// Status transitions are atomic compare-and-swap updates: they only
// apply while the ad is still pending and report
// domain.ErrAlreadyProcessed otherwise.
type AdRepository interface {
	Insert(ad *domain.Ad) (int64, error)
	GetByID(id int64) (*domain.Ad, error)
	ListPending() ([]domain.Ad, error)
	ApprovePending(id int64) error
	RejectPending(id int64, reason string) error
	MarkPublished(id int64) error
	ListUnpublished() ([]domain.Ad, error)
	CountByStatus() (map[domain.AdStatus]int, error)
	CountByType() (map[domain.PropertyType]int, error)
	CountCreatedSince(since time.Time) (int, error)
}

// UserRepository defines user data operations
type UserRepository interface {
	Upsert(telegramID int64, username, firstName string, role domain.Role) (*domain.User, error)
	GetByID(id int64) (*domain.User, error)
	GetByTelegramID(telegramID int64) (*domain.User, error)
	Count() (int, error)
	CountByRole() (map[domain.Role]int, error)
	CountCreatedSince(since time.Time) (int, error)
}
