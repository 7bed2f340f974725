package telegram

import (
	"fmt"

	"realtybot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// UserNotifier sends moderation outcomes to ad authors.
// Implements service.Notifier.
type UserNotifier struct {
	bot    *tele.Bot
	logger *zap.Logger
}

// NewUserNotifier creates a notifier over the bot transport
func NewUserNotifier(bot *tele.Bot, logger *zap.Logger) *UserNotifier {
	return &UserNotifier{bot: bot, logger: logger}
}

// NotifyApproved tells the author their ad went live
func (n *UserNotifier) NotifyApproved(user *domain.User, ad *domain.Ad) error {
	text := fmt.Sprintf(
		"✅ <b>Ваше объявление одобрено!</b>\n\n🏠 %s\n\nОно опубликовано в канале.",
		ad.Title,
	)
	_, err := n.bot.Send(tele.ChatID(user.TelegramID), text, tele.ModeHTML)
	if err != nil {
		return err
	}

	n.logger.Info("Approval notification sent",
		zap.Int64("ad_id", ad.ID),
		zap.Int64("telegram_id", user.TelegramID),
	)
	return nil
}

// NotifyRejected tells the author why their ad was declined
func (n *UserNotifier) NotifyRejected(user *domain.User, ad *domain.Ad, reason string) error {
	text := fmt.Sprintf(
		"❌ <b>Ваше объявление отклонено</b>\n\n🏠 %s\n\nПричина: %s\n\nВы можете исправить объявление и отправить его заново.",
		ad.Title, reason,
	)
	_, err := n.bot.Send(tele.ChatID(user.TelegramID), text, tele.ModeHTML)
	if err != nil {
		return err
	}

	n.logger.Info("Rejection notification sent",
		zap.Int64("ad_id", ad.ID),
		zap.Int64("telegram_id", user.TelegramID),
	)
	return nil
}
