package telegram

import (
	"realtybot/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// ChannelPublisher delivers approved ads to the broadcast channel.
// Implements service.Publisher.
type ChannelPublisher struct {
	bot       *tele.Bot
	channelID int64
	logger    *zap.Logger
}

// NewChannelPublisher creates a publisher for the given channel
func NewChannelPublisher(bot *tele.Bot, channelID int64, logger *zap.Logger) *ChannelPublisher {
	return &ChannelPublisher{
		bot:       bot,
		channelID: channelID,
		logger:    logger,
	}
}

// Publish sends the formatted ad to the channel, using the first photo
// as the post image when the ad has photos
func (p *ChannelPublisher) Publish(ad *domain.Ad, owner *domain.User) error {
	text := ChannelPost(ad, owner)

	var err error
	if thumb := ad.Thumbnail(); thumb != "" {
		photo := &tele.Photo{
			File:    tele.File{FileID: thumb},
			Caption: text,
		}
		_, err = p.bot.Send(tele.ChatID(p.channelID), photo, tele.ModeHTML)
	} else {
		_, err = p.bot.Send(tele.ChatID(p.channelID), text, tele.ModeHTML)
	}

	if err != nil {
		return err
	}

	p.logger.Info("Ad published to channel",
		zap.Int64("ad_id", ad.ID),
		zap.Int64("channel_id", p.channelID),
	)
	return nil
}
