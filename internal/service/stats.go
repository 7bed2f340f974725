package service

import (
	"time"

	"realtybot/internal/domain"
	"realtybot/internal/repository"

	"go.uber.org/zap"
)

// Stats is the admin dashboard snapshot
type Stats struct {
	TotalUsers    int
	NewUsersToday int
	UsersByRole   map[domain.Role]int

	TotalAds    int
	PendingAds  int
	ApprovedAds int
	RejectedAds int
	TodayAds    int
	AdsByType   map[domain.PropertyType]int
}

// StatsService assembles system statistics for the admin panel
type StatsService struct {
	ads    repository.AdRepository
	users  repository.UserRepository
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(ads repository.AdRepository, users repository.UserRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		ads:    ads,
		users:  users,
		logger: logger,
	}
}

// Dashboard collects the full dashboard snapshot
func (s *StatsService) Dashboard() (*Stats, error) {
	stats := &Stats{}

	byStatus, err := s.ads.CountByStatus()
	if err != nil {
		return nil, err
	}
	stats.PendingAds = byStatus[domain.StatusPending]
	stats.ApprovedAds = byStatus[domain.StatusApproved]
	stats.RejectedAds = byStatus[domain.StatusRejected]
	for _, count := range byStatus {
		stats.TotalAds += count
	}

	stats.AdsByType, err = s.ads.CountByType()
	if err != nil {
		return nil, err
	}

	stats.TotalUsers, err = s.users.Count()
	if err != nil {
		return nil, err
	}

	stats.UsersByRole, err = s.users.CountByRole()
	if err != nil {
		return nil, err
	}

	today := startOfDay(time.Now())

	stats.TodayAds, err = s.ads.CountCreatedSince(today)
	if err != nil {
		return nil, err
	}

	stats.NewUsersToday, err = s.users.CountCreatedSince(today)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
