package service

import (
	"sync"

	"realtybot/internal/domain"
)

// DraftService keeps in-progress drafts keyed by chat. A draft lives
// until it is finalized or cancelled; there is no timeout, so a user
// can resume after an arbitrarily long pause.
type DraftService struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Draft
}

// NewDraftService creates a new draft session store
func NewDraftService() *DraftService {
	return &DraftService{
		sessions: make(map[int64]*domain.Draft),
	}
}

// Start begins a fresh draft for the chat, discarding any previous one.
// ownerID is the internal user id the finalized ad will belong to.
func (s *DraftService) Start(chatID, ownerID int64, adminOwned bool) *domain.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := domain.NewDraft(ownerID, adminOwned)
	s.sessions[chatID] = draft
	return draft
}

// Get returns the chat's in-progress draft, if any
func (s *DraftService) Get(chatID int64) (*domain.Draft, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.sessions[chatID]
	return draft, ok
}

// Discard drops the chat's draft irrecoverably. Used both for explicit
// cancellation and after a successful finalize.
func (s *DraftService) Discard(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
