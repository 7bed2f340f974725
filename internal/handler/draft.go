package handler

import (
	"errors"
	"fmt"
	"strings"

	"realtybot/internal/domain"
	"realtybot/internal/telegram"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAddAd starts the user submission flow
func (h *Handler) handleAddAd(c tele.Context) error {
	return h.startDraft(c, false)
}

// handleAdminAddAd starts the manual-add flow: the finalized ad skips
// review and is published immediately
func (h *Handler) handleAdminAddAd(c tele.Context) error {
	return h.startDraft(c, true)
}

func (h *Handler) startDraft(c tele.Context, adminOwned bool) error {
	sender := c.Sender()

	user, err := h.moderation.RegisterUser(sender.ID, sender.Username, sender.FirstName)
	if err != nil {
		h.logger.Error("Failed to register user", zap.Error(err))
		return c.Send("Произошла ошибка. Попробуйте позже.")
	}

	h.clearRejectTarget(c.Chat().ID)
	h.drafts.Start(c.Chat().ID, user.ID, adminOwned)

	h.logger.Info("Draft started",
		zap.Int64("chat_id", c.Chat().ID),
		zap.Bool("admin_owned", adminOwned),
	)

	title := "🏠 <b>Новое объявление</b>"
	if adminOwned {
		title = "🏠 <b>Ручное добавление объявления</b>"
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("🔑 Аренда", btnAdType.Unique, string(domain.PropertyRent)),
			markup.Data("💼 Продажа", btnAdType.Unique, string(domain.PropertySale)),
		),
		markup.Row(btnDraftCancel),
	)

	return c.Send(title+"\n\nВыберите тип недвижимости:", markup, tele.ModeHTML)
}

// handleTypeChosen handles the property type button
func (h *Handler) handleTypeChosen(c tele.Context) error {
	draft, ok := h.drafts.Get(c.Chat().ID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Нет активного объявления. Начните с /add"})
	}

	if err := draft.SetType(cleanCallbackData(c.Data())); err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестный тип недвижимости"})
	}

	text := fmt.Sprintf("🏷️ Выбран тип: <b>%s</b>\n\n📝 Введите заголовок объявления:", draft.Type)
	return h.editOrSend(c, text, tele.ModeHTML)
}

// handleCurrencyChosen handles the currency button
func (h *Handler) handleCurrencyChosen(c tele.Context) error {
	draft, ok := h.drafts.Get(c.Chat().ID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Нет активного объявления. Начните с /add"})
	}

	if err := draft.SetCurrency(cleanCallbackData(c.Data())); err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Неизвестная валюта"})
	}

	text := fmt.Sprintf("💱 Валюта: <b>%s</b>\n\n📍 Введите местоположение (адрес или район):",
		strings.ToUpper(string(draft.Currency)))
	return h.editOrSend(c, text, tele.ModeHTML)
}

// handleText routes free text to the active reject flow or draft step
func (h *Handler) handleText(c tele.Context) error {
	text := strings.TrimSpace(c.Text())

	// Commands are handled by their own routes
	if strings.HasPrefix(text, "/") {
		return nil
	}

	// A free-text rejection reason takes priority over drafts
	if adID, ok := h.takeRejectTarget(c.Chat().ID); ok {
		return h.completeRejection(c, adID, domain.ReasonOther, text)
	}

	draft, ok := h.drafts.Get(c.Chat().ID)
	if !ok {
		return nil
	}

	switch draft.Step {
	case domain.StepType:
		if err := draft.SetType(text); err != nil {
			return c.Send("❌ Выберите тип кнопкой или напишите «аренда» или «продажа».")
		}
		return c.Send("📝 Введите заголовок объявления:")

	case domain.StepTitle:
		if err := draft.SetTitle(text); err != nil {
			return c.Send("❌ Заголовок должен быть от 1 до 100 символов. Введите заголовок:")
		}
		return c.Send("📄 Введите подробное описание объявления:")

	case domain.StepDescription:
		if err := draft.SetDescription(text); err != nil {
			return c.Send("❌ Описание слишком короткое. Минимум 20 символов.")
		}
		return c.Send("💰 Введите цену (только числа):")

	case domain.StepPrice:
		if err := draft.SetPrice(text); err != nil {
			return c.Send("❌ Неверный формат цены. Введите положительное число:")
		}
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(
			markup.Data("🇺🇿 UZS", btnCurrency.Unique, string(domain.CurrencyUZS)),
			markup.Data("🇺🇸 USD", btnCurrency.Unique, string(domain.CurrencyUSD)),
		))
		return c.Send("💱 Выберите валюту:", markup)

	case domain.StepCurrency:
		if err := draft.SetCurrency(text); err != nil {
			return c.Send("❌ Выберите валюту кнопкой: UZS или USD.")
		}
		return c.Send("📍 Введите местоположение (адрес или район):")

	case domain.StepLocation:
		if err := draft.SetLocation(text); err != nil {
			return c.Send("❌ Местоположение не может быть пустым.")
		}
		markup := &tele.ReplyMarkup{}
		markup.Inline(markup.Row(btnPhotosDone))
		return c.Send(
			"📸 Отправьте фотографии объекта (максимум 10).\n\n"+
				"Напишите «Готово» или нажмите кнопку, когда закончите.",
			markup,
		)

	case domain.StepPhotos:
		if strings.EqualFold(text, "Готово") {
			draft.FinishPhotos()
			return h.showPreview(c, draft)
		}
		return c.Send("📸 Жду фотографии. Напишите «Готово», чтобы продолжить без новых фото.")

	default:
		return nil
	}
}

// handlePhoto collects draft photos
func (h *Handler) handlePhoto(c tele.Context) error {
	draft, ok := h.drafts.Get(c.Chat().ID)
	if !ok || draft.Step != domain.StepPhotos {
		return nil
	}

	photo := c.Message().Photo
	if photo == nil {
		return nil
	}

	full, err := draft.AddPhoto(photo.FileID)
	if err != nil {
		return c.Send("❌ Достигнут лимит в 10 фото.")
	}

	if full {
		if err := c.Send("✅ Достигнут лимит в 10 фото. Создаем предпросмотр..."); err != nil {
			return err
		}
		return h.showPreview(c, draft)
	}

	return c.Send(fmt.Sprintf(
		"✅ Фото добавлено (%d/%d). Отправьте еще фото или напишите «Готово».",
		len(draft.Photos), domain.MaxPhotos,
	))
}

// handlePhotosDone ends photo collection from the inline button
func (h *Handler) handlePhotosDone(c tele.Context) error {
	draft, ok := h.drafts.Get(c.Chat().ID)
	if !ok || draft.Step != domain.StepPhotos {
		return c.Respond(&tele.CallbackResponse{Text: "Нечего завершать"})
	}

	draft.FinishPhotos()
	return h.showPreview(c, draft)
}

// showPreview shows the accumulated draft before commit
func (h *Handler) showPreview(c tele.Context, draft *domain.Draft) error {
	submitText := "📤 Отправить на модерацию"
	if draft.AdminOwned {
		submitText = "✅ Опубликовать"
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(markup.Data(submitText, btnDraftSubmit.Unique)),
		markup.Row(btnDraftCancel),
	)

	text := telegram.DraftPreview(draft)

	if thumb := draft.Photos; len(thumb) > 0 {
		photo := &tele.Photo{
			File:    tele.File{FileID: thumb[0]},
			Caption: text,
		}
		return c.Send(photo, markup, tele.ModeHTML)
	}

	return c.Send(text, markup, tele.ModeHTML)
}

// handleDraftSubmit commits the draft: user drafts go to the
// moderation queue, admin drafts are published right away
func (h *Handler) handleDraftSubmit(c tele.Context) error {
	chatID := c.Chat().ID

	draft, ok := h.drafts.Get(chatID)
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: "Нет активного объявления"})
	}

	if draft.AdminOwned {
		ad, err := h.moderation.CreateAdminListing(c.Sender().ID, draft)
		if errors.Is(err, domain.ErrPublishFailed) {
			h.drafts.Discard(chatID)
			return h.editOrSend(c,
				"⚠️ Объявление создано, но не опубликовано в канале.\n"+
					"Повторите отправку командой /unpublished.")
		}
		if err != nil {
			h.logger.Error("Failed to create admin listing", zap.Error(err))
			return h.editOrSend(c, "❌ Не удалось создать объявление. Попробуйте еще раз.")
		}

		h.drafts.Discard(chatID)
		return h.editOrSend(c, fmt.Sprintf(
			"✅ <b>Объявление опубликовано!</b>\n\n🏠 %s\n\n"+
				"Объявление автоматически одобрено и отправлено в канал.",
			ad.Title,
		), tele.ModeHTML)
	}

	ad, err := h.moderation.SubmitDraft(draft)
	if err != nil {
		var incomplete *domain.IncompleteDraftError
		if errors.As(err, &incomplete) {
			return h.editOrSend(c, "❌ Объявление заполнено не полностью. Начните заново: /add")
		}
		h.logger.Error("Failed to submit draft", zap.Error(err))
		return h.editOrSend(c, "❌ Не удалось отправить объявление. Попробуйте еще раз.")
	}

	h.drafts.Discard(chatID)
	return h.editOrSend(c, fmt.Sprintf(
		"📤 <b>Объявление отправлено на модерацию</b>\n\n🏠 %s\n\n"+
			"Вы получите уведомление о решении.",
		ad.Title,
	), tele.ModeHTML)
}

// handleDraftCancel discards the draft from the inline button
func (h *Handler) handleDraftCancel(c tele.Context) error {
	h.drafts.Discard(c.Chat().ID)
	return h.editOrSend(c, "❌ Создание объявления отменено. Ничего не сохранено.")
}
