package handler

import (
	"fmt"
	"strings"

	"realtybot/internal/domain"
	"realtybot/internal/telegram"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdminPanel shows the admin dashboard with system stats
func (h *Handler) handleAdminPanel(c tele.Context) error {
	stats, err := h.stats.Dashboard()
	if err != nil {
		h.logger.Error("Failed to load dashboard stats", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	text := fmt.Sprintf(
		"🛠️ <b>Панель администратора</b>\n\n"+
			"📊 <b>Статистика системы:</b>\n"+
			"👥 Пользователи: <code>%d</code>\n"+
			"📋 Всего объявлений: <code>%d</code>\n"+
			"⏳ На модерации: <code>%d</code>\n"+
			"📅 Сегодня: <code>%d</code>\n\n"+
			"<b>Доступные команды:</b>\n"+
			"• /moderate — модерация объявлений\n"+
			"• /stats — детальная статистика\n"+
			"• /add_ad — добавить объявление вручную\n"+
			"• /unpublished — повторить отправку в канал",
		stats.TotalUsers, stats.TotalAds, stats.PendingAds, stats.TodayAds,
	)

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnAdminModerate, btnAdminStats),
		markup.Row(btnAdminAddAd),
	)

	return c.Send(text, markup, tele.ModeHTML)
}

// handleStats shows the detailed statistics breakdown
func (h *Handler) handleStats(c tele.Context) error {
	stats, err := h.stats.Dashboard()
	if err != nil {
		h.logger.Error("Failed to load stats", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	var b strings.Builder
	b.WriteString("📈 <b>Детальная статистика системы</b>\n\n")
	b.WriteString("<b>Пользователи:</b>\n")
	fmt.Fprintf(&b, "• Всего: <code>%d</code>\n", stats.TotalUsers)
	fmt.Fprintf(&b, "• Новых сегодня: <code>%d</code>\n\n", stats.NewUsersToday)
	b.WriteString("<b>Объявления:</b>\n")
	fmt.Fprintf(&b, "• Всего: <code>%d</code>\n", stats.TotalAds)
	fmt.Fprintf(&b, "• Одобренных: <code>%d</code>\n", stats.ApprovedAds)
	fmt.Fprintf(&b, "• На модерации: <code>%d</code>\n", stats.PendingAds)
	fmt.Fprintf(&b, "• Отклоненных: <code>%d</code>\n", stats.RejectedAds)

	if len(stats.AdsByType) > 0 {
		b.WriteString("\n<b>По типам недвижимости:</b>\n")
		for propType, count := range stats.AdsByType {
			fmt.Fprintf(&b, "• %s: <code>%d</code>\n", propType, count)
		}
	}

	if len(stats.UsersByRole) > 0 {
		b.WriteString("\n<b>По ролям пользователей:</b>\n")
		for role, count := range stats.UsersByRole {
			fmt.Fprintf(&b, "• %s: <code>%d</code>\n", role, count)
		}
	}

	return c.Send(b.String(), tele.ModeHTML)
}

// handleModerate shows the oldest pending ad for review
func (h *Handler) handleModerate(c tele.Context) error {
	ad, owner, err := h.moderation.NextPending()
	if err != nil {
		h.logger.Error("Failed to load pending queue", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if ad == nil {
		return c.Send("✅ Нет объявлений для модерации")
	}

	return h.sendReviewCard(c, ad, owner)
}

// handleNextPending steps to the next pending ad after the shown one
// without deciding on it
func (h *Handler) handleNextPending(c tele.Context) error {
	afterID, err := parseAdID(c.Data())
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Некорректные данные"})
	}

	ad, owner, err := h.moderation.PendingAfter(afterID)
	if err != nil {
		h.logger.Error("Failed to load pending queue", zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Ошибка при загрузке"})
	}

	if ad == nil {
		return c.Respond(&tele.CallbackResponse{
			Text:      "Дальше объявлений нет",
			ShowAlert: true,
		})
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	return h.sendReviewCard(c, ad, owner)
}

// sendReviewCard sends the moderation card with decision buttons
func (h *Handler) sendReviewCard(c tele.Context, ad *domain.Ad, owner *domain.User) error {
	text := telegram.ReviewCard(ad, owner)
	adID := fmt.Sprintf("%d", ad.ID)

	markup := &tele.ReplyMarkup{}
	rows := []tele.Row{
		markup.Row(
			markup.Data("✅ Одобрить", btnApprove.Unique, adID),
			markup.Data("❌ Отклонить", btnReject.Unique, adID),
		),
	}
	if owner != nil {
		rows = append(rows, markup.Row(
			markup.URL("💬 Написать автору", fmt.Sprintf("tg://user?id=%d", owner.TelegramID)),
		))
	}
	rows = append(rows, markup.Row(markup.Data(btnNext.Text, btnNext.Unique, adID)))
	markup.Inline(rows...)

	if thumb := ad.Thumbnail(); thumb != "" {
		photo := &tele.Photo{
			File:    tele.File{FileID: thumb},
			Caption: text,
		}
		return c.Send(photo, markup, tele.ModeHTML)
	}

	return c.Send(text, markup, tele.ModeHTML)
}

// handleUnpublished retries channel delivery for approved ads that
// never made it to the channel
func (h *Handler) handleUnpublished(c tele.Context) error {
	delivered, remaining, err := h.moderation.RetryUnpublished(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to retry unpublished ads", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	if delivered == 0 && remaining == 0 {
		return c.Send("✅ Все одобренные объявления опубликованы.")
	}

	return c.Send(fmt.Sprintf(
		"📢 Отправлено в канал: %d\n⚠️ Не удалось отправить: %d",
		delivered, remaining,
	))
}
