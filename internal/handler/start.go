package handler

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	sender := c.Sender()

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("username", sender.Username),
	)

	if _, err := h.moderation.RegisterUser(sender.ID, sender.Username, sender.FirstName); err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if h.moderation.IsAdmin(sender.ID) {
		return h.handleAdminPanel(c)
	}

	return c.Send(
		"🏠 <b>Доска объявлений недвижимости</b>\n\n"+
			"Здесь вы можете разместить объявление об аренде или продаже.\n\n"+
			"• /add — подать объявление\n"+
			"• /cancel — отменить текущее действие\n\n"+
			"Каждое объявление проходит модерацию перед публикацией в канале.",
		tele.ModeHTML,
	)
}

// handleCancelCommand discards any in-progress draft or pending
// rejection input for this chat
func (h *Handler) handleCancelCommand(c tele.Context) error {
	chatID := c.Chat().ID

	h.clearRejectTarget(chatID)

	if _, ok := h.drafts.Get(chatID); ok {
		h.drafts.Discard(chatID)
		h.logger.Info("Draft cancelled", zap.Int64("chat_id", chatID))
		return c.Send("❌ Создание объявления отменено. Ничего не сохранено.")
	}

	return c.Send("Нет активных действий для отмены.")
}
