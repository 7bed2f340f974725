package handler

import (
	"strings"
	"sync"
	"unicode"

	"realtybot/internal/middleware"
	"realtybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	moderation *service.ModerationService
	drafts     *service.DraftService
	stats      *service.StatsService
	logger     *zap.Logger

	// Ads awaiting a free-text rejection reason, keyed by admin chat
	rejectTargets map[int64]int64
	rejectMux     sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	moderation *service.ModerationService,
	drafts *service.DraftService,
	stats *service.StatsService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:           bot,
		moderation:    moderation,
		drafts:        drafts,
		stats:         stats,
		logger:        logger,
		rejectTargets: make(map[int64]int64),
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Public commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/add", h.handleAddAd)
	h.bot.Handle("/cancel", h.handleCancelCommand)

	// Admin commands
	adminOnly := middleware.AdminOnly(h.moderation, h.logger)
	h.bot.Handle("/admin", h.handleAdminPanel, adminOnly)
	h.bot.Handle("/stats", h.handleStats, adminOnly)
	h.bot.Handle("/moderate", h.handleModerate, adminOnly)
	h.bot.Handle("/add_ad", h.handleAdminAddAd, adminOnly)
	h.bot.Handle("/unpublished", h.handleUnpublished, adminOnly)

	// Free text and photos feed the active draft or reject flow
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(tele.OnPhoto, h.handlePhoto)

	// Draft collection buttons
	h.bot.Handle(&btnAdType, h.handleTypeChosen)
	h.bot.Handle(&btnCurrency, h.handleCurrencyChosen)
	h.bot.Handle(&btnPhotosDone, h.handlePhotosDone)
	h.bot.Handle(&btnDraftSubmit, h.handleDraftSubmit)
	h.bot.Handle(&btnDraftCancel, h.handleDraftCancel)

	// Moderation buttons (admin gated)
	h.bot.Handle(&btnApprove, h.handleApprove, adminOnly)
	h.bot.Handle(&btnReject, h.handleReject, adminOnly)
	h.bot.Handle(&btnReason, h.handleReasonChosen, adminOnly)
	h.bot.Handle(&btnNext, h.handleNextPending, adminOnly)
	h.bot.Handle(&btnAdminModerate, h.handleModerate, adminOnly)
	h.bot.Handle(&btnAdminStats, h.handleStats, adminOnly)
	h.bot.Handle(&btnAdminAddAd, h.handleAdminAddAd, adminOnly)
}

// setRejectTarget remembers which ad awaits a free-text reason
func (h *Handler) setRejectTarget(chatID, adID int64) {
	h.rejectMux.Lock()
	defer h.rejectMux.Unlock()
	h.rejectTargets[chatID] = adID
}

// takeRejectTarget pops the awaited ad id, if any
func (h *Handler) takeRejectTarget(chatID int64) (int64, bool) {
	h.rejectMux.Lock()
	defer h.rejectMux.Unlock()

	adID, ok := h.rejectTargets[chatID]
	if ok {
		delete(h.rejectTargets, chatID)
	}
	return adID, ok
}

// clearRejectTarget drops the pending free-text reason state
func (h *Handler) clearRejectTarget(chatID int64) {
	h.rejectMux.Lock()
	defer h.rejectMux.Unlock()
	delete(h.rejectTargets, chatID)
}

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// Inline keyboard buttons. Dynamic arguments travel in callback data.
var (
	btnAdType      = tele.Btn{Unique: "ad_type"}
	btnCurrency    = tele.Btn{Unique: "ad_currency"}
	btnPhotosDone  = tele.Btn{Unique: "photos_done", Text: "➡️ Готово"}
	btnDraftSubmit = tele.Btn{Unique: "draft_submit"}
	btnDraftCancel = tele.Btn{Unique: "draft_cancel", Text: "❌ Отменить"}

	btnApprove = tele.Btn{Unique: "approve"}
	btnReject  = tele.Btn{Unique: "reject"}
	btnReason  = tele.Btn{Unique: "reject_reason"}
	btnNext    = tele.Btn{Unique: "next_pending", Text: "⏭️ Следующее"}

	btnAdminModerate = tele.Btn{Unique: "admin_moderate", Text: "📋 Модерация"}
	btnAdminStats    = tele.Btn{Unique: "admin_stats", Text: "📊 Статистика"}
	btnAdminAddAd    = tele.Btn{Unique: "admin_add_ad", Text: "🏠 Добавить объявление"}
)
