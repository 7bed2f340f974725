package service

import (
	"fmt"
	"strings"
	"time"

	"realtybot/internal/domain"
	"realtybot/internal/repository"

	"go.uber.org/zap"
)

// Publisher delivers an approved ad to the broadcast channel
type Publisher interface {
	Publish(ad *domain.Ad, owner *domain.User) error
}

// Notifier informs the submitting user of a moderation decision.
// Best-effort: a failure never unwinds a committed transition.
type Notifier interface {
	NotifyApproved(user *domain.User, ad *domain.Ad) error
	NotifyRejected(user *domain.User, ad *domain.Ad, reason string) error
}

// ModerationService drives the ad lifecycle: submission, review
// decisions, channel publication and author notification
type ModerationService struct {
	ads       repository.AdRepository
	users     repository.UserRepository
	publisher Publisher
	notifier  Notifier
	adminID   int64
	logger    *zap.Logger
}

// NewModerationService creates a new moderation service.
// adminID is the Telegram id of the single administrator.
func NewModerationService(
	ads repository.AdRepository,
	users repository.UserRepository,
	publisher Publisher,
	notifier Notifier,
	adminID int64,
	logger *zap.Logger,
) *ModerationService {
	return &ModerationService{
		ads:       ads,
		users:     users,
		publisher: publisher,
		notifier:  notifier,
		adminID:   adminID,
		logger:    logger,
	}
}

// IsAdmin reports whether the Telegram id belongs to the administrator
func (s *ModerationService) IsAdmin(telegramID int64) bool {
	return telegramID == s.adminID
}

func (s *ModerationService) requireAdmin(telegramID int64) error {
	if !s.IsAdmin(telegramID) {
		return domain.ErrUnauthorized
	}
	return nil
}

// RegisterUser creates or refreshes the user record on interaction.
// The configured administrator gets the admin role.
func (s *ModerationService) RegisterUser(telegramID int64, username, firstName string) (*domain.User, error) {
	role := domain.RoleUser
	if s.IsAdmin(telegramID) {
		role = domain.RoleAdmin
	}
	return s.users.Upsert(telegramID, username, firstName, role)
}

// SubmitDraft finalizes a user draft into a pending ad and stores it
func (s *ModerationService) SubmitDraft(draft *domain.Draft) (*domain.Ad, error) {
	ad, err := draft.Finalize(time.Now())
	if err != nil {
		return nil, err
	}

	id, err := s.ads.Insert(ad)
	if err != nil {
		return nil, fmt.Errorf("insert ad: %w", err)
	}
	ad.ID = id

	s.logger.Info("Ad submitted for moderation",
		zap.Int64("ad_id", ad.ID),
		zap.Int64("owner_id", ad.UserID),
	)

	return ad, nil
}

// CreateAdminListing finalizes an admin draft straight into an approved
// ad and publishes it, bypassing the review queue
func (s *ModerationService) CreateAdminListing(actorID int64, draft *domain.Draft) (*domain.Ad, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	draft.AdminOwned = true
	ad, err := draft.Finalize(time.Now())
	if err != nil {
		return nil, err
	}

	id, err := s.ads.Insert(ad)
	if err != nil {
		return nil, fmt.Errorf("insert ad: %w", err)
	}
	ad.ID = id

	s.logger.Info("Admin listing created", zap.Int64("ad_id", ad.ID))

	owner, err := s.users.GetByID(ad.UserID)
	if err != nil {
		return ad, fmt.Errorf("load owner: %w", err)
	}

	if err := s.publish(ad, owner); err != nil {
		return ad, err
	}
	return ad, nil
}

// Approve transitions a pending ad to approved, publishes it to the
// channel and notifies the author. The status update is the commit
// point: a repeated approve on the same id fails with
// domain.ErrAlreadyProcessed before any side effect runs, so the ad is
// published and the author notified at most once per listing.
func (s *ModerationService) Approve(actorID, adID int64) (*domain.Ad, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	if err := s.ads.ApprovePending(adID); err != nil {
		return nil, err
	}

	ad, err := s.ads.GetByID(adID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ad.UserID)
	if err != nil {
		return ad, fmt.Errorf("load owner: %w", err)
	}

	publishErr := s.publish(ad, owner)

	if owner != nil {
		if err := s.notifier.NotifyApproved(owner, ad); err != nil {
			s.logger.Warn("Failed to notify author about approval",
				zap.Int64("ad_id", ad.ID),
				zap.Int64("owner_id", owner.ID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Ad approved", zap.Int64("ad_id", ad.ID))

	return ad, publishErr
}

// Reject transitions a pending ad to rejected and notifies the author.
// A canned reason uses its fixed text; ReasonOther requires customText.
func (s *ModerationService) Reject(actorID, adID int64, reason domain.RejectReason, customText string) (*domain.Ad, error) {
	if err := s.requireAdmin(actorID); err != nil {
		return nil, err
	}

	text := reason.Text()
	if reason.NeedsText() {
		text = strings.TrimSpace(customText)
	}
	if text == "" {
		return nil, domain.ErrEmptyReason
	}

	if err := s.ads.RejectPending(adID, text); err != nil {
		return nil, err
	}

	ad, err := s.ads.GetByID(adID)
	if err != nil {
		return nil, err
	}

	owner, err := s.users.GetByID(ad.UserID)
	if err != nil {
		return ad, fmt.Errorf("load owner: %w", err)
	}

	if owner != nil {
		if err := s.notifier.NotifyRejected(owner, ad, text); err != nil {
			s.logger.Warn("Failed to notify author about rejection",
				zap.Int64("ad_id", ad.ID),
				zap.Int64("owner_id", owner.ID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Ad rejected",
		zap.Int64("ad_id", ad.ID),
		zap.String("reason", text),
	)

	return ad, nil
}

// NextPending returns the oldest pending ad and its author, nils when
// the queue is empty. The ad stays pending until a decision is made.
func (s *ModerationService) NextPending() (*domain.Ad, *domain.User, error) {
	pending, err := s.ads.ListPending()
	if err != nil {
		return nil, nil, err
	}
	if len(pending) == 0 {
		return nil, nil, nil
	}

	ad := pending[0]
	owner, err := s.users.GetByID(ad.UserID)
	if err != nil {
		return nil, nil, err
	}

	return &ad, owner, nil
}

// PendingAfter returns the oldest pending ad with id greater than the
// given one, letting the admin step through the queue without deciding
func (s *ModerationService) PendingAfter(adID int64) (*domain.Ad, *domain.User, error) {
	pending, err := s.ads.ListPending()
	if err != nil {
		return nil, nil, err
	}

	for i := range pending {
		if pending[i].ID > adID {
			owner, err := s.users.GetByID(pending[i].UserID)
			if err != nil {
				return nil, nil, err
			}
			return &pending[i], owner, nil
		}
	}

	return nil, nil, nil
}

// RetryUnpublished re-sends approved ads that never reached the
// channel. Returns how many were delivered and how many remain.
func (s *ModerationService) RetryUnpublished(actorID int64) (delivered, remaining int, err error) {
	if err := s.requireAdmin(actorID); err != nil {
		return 0, 0, err
	}

	ads, err := s.ads.ListUnpublished()
	if err != nil {
		return 0, 0, err
	}

	for i := range ads {
		owner, err := s.users.GetByID(ads[i].UserID)
		if err != nil {
			return delivered, len(ads) - delivered, err
		}
		if err := s.publish(&ads[i], owner); err != nil {
			s.logger.Warn("Republish attempt failed",
				zap.Int64("ad_id", ads[i].ID),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}

	return delivered, len(ads) - delivered, nil
}

// publish delivers the ad and records the delivery. On failure the ad
// stays approved with published_at unset so it can be retried.
func (s *ModerationService) publish(ad *domain.Ad, owner *domain.User) error {
	if err := s.publisher.Publish(ad, owner); err != nil {
		s.logger.Error("Failed to publish ad to channel",
			zap.Int64("ad_id", ad.ID),
			zap.Error(err),
		)
		return fmt.Errorf("%w: %s", domain.ErrPublishFailed, err)
	}

	if err := s.ads.MarkPublished(ad.ID); err != nil {
		// Delivery succeeded; the worst case on a failed mark is a
		// duplicate channel post after a retry, which at-least-once allows
		s.logger.Error("Failed to mark ad as published",
			zap.Int64("ad_id", ad.ID),
			zap.Error(err),
		)
	}

	return nil
}
