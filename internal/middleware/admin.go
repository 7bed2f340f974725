package middleware

import (
	"realtybot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AdminOnly gates a handler group to the configured administrator.
// Everyone else is denied with no side effect.
func AdminOnly(moderation *service.ModerationService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if !moderation.IsAdmin(c.Sender().ID) {
				logger.Warn("Non-admin attempted privileged command",
					zap.Int64("user_id", c.Sender().ID),
					zap.String("text", c.Text()),
				)
				return c.Send("❌ Доступ запрещен")
			}
			return next(c)
		}
	}
}
