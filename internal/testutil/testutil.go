package testutil

import (
	"time"

	"realtybot/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, telegramID int64, role domain.Role) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: telegramID,
		Username:   "alice",
		FirstName:  "Alice",
		Role:       role,
		CreatedAt:  time.Now(),
	}
}

// NewTestAd creates a test ad in the given status
func NewTestAd(id, userID int64, status domain.AdStatus) *domain.Ad {
	return &domain.Ad{
		ID:          id,
		UserID:      userID,
		Type:        domain.PropertyRent,
		Title:       "Cozy 2BR",
		Description: "Spacious two-bedroom flat downtown",
		Price:       850,
		Currency:    domain.CurrencyUSD,
		Location:    "Downtown",
		Photos:      []string{"p1", "p2"},
		Status:      status,
		CreatedAt:   time.Now(),
	}
}

// NewTestDraft creates a fully filled draft ready for finalize
func NewTestDraft(ownerID int64, adminOwned bool) *domain.Draft {
	return &domain.Draft{
		OwnerID:     ownerID,
		AdminOwned:  adminOwned,
		Step:        domain.StepPreview,
		Type:        domain.PropertyRent,
		Title:       "Cozy 2BR",
		Description: "Spacious two-bedroom flat downtown",
		Price:       850,
		Currency:    domain.CurrencyUSD,
		Location:    "Downtown",
		Photos:      []string{"p1", "p2"},
	}
}
