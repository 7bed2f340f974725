package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"realtybot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// parseAdID extracts an ad id from callback data
func parseAdID(data string) (int64, error) {
	return strconv.ParseInt(cleanCallbackData(data), 10, 64)
}

// editOrSend edits the callback message, falling back to a new message
// when editing fails. Plain sends (no callback) go straight through.
func (h *Handler) editOrSend(c tele.Context, what interface{}, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(what, opts...)
	}

	if err := c.Edit(what, opts...); err != nil {
		if strings.Contains(err.Error(), "message is not modified") {
			return c.Respond()
		}
		h.logger.Warn("Failed to edit message, sending new",
			zap.Error(err),
			zap.Int64("chat_id", c.Chat().ID),
		)
		if ackErr := c.Respond(); ackErr != nil {
			h.logger.Warn("Failed to acknowledge callback", zap.Error(ackErr))
		}
		return c.Send(what, opts...)
	}

	return c.Respond()
}

// handleApprove approves a pending ad: it is published to the channel
// and the author is notified
func (h *Handler) handleApprove(c tele.Context) error {
	adID, err := parseAdID(c.Data())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректные данные"})
	}

	ad, err := h.moderation.Approve(c.Sender().ID, adID)
	switch {
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return c.Respond(&tele.CallbackResponse{
			Text:      "Объявление уже обработано",
			ShowAlert: true,
		})
	case errors.Is(err, domain.ErrAdNotFound):
		return c.Respond(&tele.CallbackResponse{Text: "Объявление не найдено"})
	case errors.Is(err, domain.ErrPublishFailed):
		return h.editOrSend(c, fmt.Sprintf(
			"⚠️ <b>Объявление одобрено, но не опубликовано</b>\n\n🏠 %s\n\n"+
				"Канал недоступен. Повторите отправку командой /unpublished.",
			ad.Title,
		), tele.ModeHTML)
	case err != nil:
		h.logger.Error("Failed to approve ad", zap.Int64("ad_id", adID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при одобрении"})
	}

	return h.editOrSend(c, fmt.Sprintf(
		"✅ <b>Объявление одобрено!</b>\n\n🏠 %s\n\n"+
			"Автор уведомлен, объявление опубликовано в канале.",
		ad.Title,
	), tele.ModeHTML)
}

// handleReject asks for the rejection reason
func (h *Handler) handleReject(c tele.Context) error {
	adID, err := parseAdID(c.Data())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректные данные"})
	}

	id := strconv.FormatInt(adID, 10)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data("Не соответствует правилам", btnReason.Unique, string(domain.ReasonRules), id)),
		markup.Row(markup.Data("Неполная информация", btnReason.Unique, string(domain.ReasonIncomplete), id)),
		markup.Row(markup.Data("Некорректная цена", btnReason.Unique, string(domain.ReasonPrice), id)),
		markup.Row(markup.Data("Другая причина", btnReason.Unique, string(domain.ReasonOther), id)),
	)

	return h.editOrSend(c, "❌ <b>Укажите причину отклонения:</b>", markup, tele.ModeHTML)
}

// handleReasonChosen completes the rejection for canned reasons or
// waits for free text when "other" is chosen
func (h *Handler) handleReasonChosen(c tele.Context) error {
	parts := strings.Split(cleanCallbackData(c.Data()), "|")
	if len(parts) != 2 {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректные данные"})
	}

	reason, ok := domain.ParseRejectReason(parts[0])
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестная причина"})
	}

	adID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректные данные"})
	}

	if reason.NeedsText() {
		// The transition waits until the admin supplies the text
		h.setRejectTarget(c.Chat().ID, adID)
		return h.editOrSend(c, "✍️ <b>Введите причину отклонения:</b>", tele.ModeHTML)
	}

	return h.completeRejection(c, adID, reason, "")
}

// completeRejection runs the reject transition and reports the outcome
func (h *Handler) completeRejection(c tele.Context, adID int64, reason domain.RejectReason, customText string) error {
	ad, err := h.moderation.Reject(c.Sender().ID, adID, reason, customText)
	switch {
	case errors.Is(err, domain.ErrAlreadyProcessed):
		return h.editOrSend(c, "⚠️ Объявление уже обработано.")
	case errors.Is(err, domain.ErrAdNotFound):
		return h.editOrSend(c, "⚠️ Объявление не найдено.")
	case errors.Is(err, domain.ErrEmptyReason):
		h.setRejectTarget(c.Chat().ID, adID)
		return c.Send("✍️ Причина не может быть пустой. Введите причину отклонения:")
	case err != nil:
		h.logger.Error("Failed to reject ad", zap.Int64("ad_id", adID), zap.Error(err))
		return h.editOrSend(c, "❌ Ошибка при отклонении. Попробуйте еще раз.")
	}

	return h.editOrSend(c, fmt.Sprintf(
		"❌ <b>Объявление отклонено</b>\n\n🏠 %s\nПричина: %s\n\nАвтор уведомлен.",
		ad.Title, ad.RejectionReason,
	), tele.ModeHTML)
}
