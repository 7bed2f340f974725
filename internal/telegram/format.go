package telegram

import (
	"fmt"
	"strings"

	"realtybot/internal/domain"
)

// FormatPrice renders a price with space-grouped thousands, dropping
// the fraction when it is whole: 1200.5 -> "1 200.50", 850 -> "850"
func FormatPrice(price float64) string {
	s := fmt.Sprintf("%.2f", price)
	parts := strings.SplitN(s, ".", 2)
	intPart, fracPart := parts[0], parts[1]

	var grouped []string
	for len(intPart) > 3 {
		grouped = append([]string{intPart[len(intPart)-3:]}, grouped...)
		intPart = intPart[:len(intPart)-3]
	}
	grouped = append([]string{intPart}, grouped...)

	result := strings.Join(grouped, " ")
	if fracPart != "00" {
		result += "." + fracPart
	}
	return result
}

// ChannelPost builds the channel publication text for an approved ad
func ChannelPost(ad *domain.Ad, owner *domain.User) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🏠 <b>%s</b>\n\n", ad.Title)
	fmt.Fprintf(&b, "%s\n\n", ad.Description)
	fmt.Fprintf(&b, "🏷️ <b>Тип:</b> %s\n", ad.Type)
	fmt.Fprintf(&b, "💰 <b>Цена:</b> %s %s\n", FormatPrice(ad.Price), strings.ToUpper(string(ad.Currency)))
	fmt.Fprintf(&b, "📍 <b>Местоположение:</b> %s", ad.Location)

	if owner != nil && owner.Username != "" {
		fmt.Fprintf(&b, "\n\n👤 Связаться: @%s", owner.Username)
	}

	return b.String()
}

// ReviewCard builds the moderation card shown to the administrator
func ReviewCard(ad *domain.Ad, owner *domain.User) string {
	var b strings.Builder

	b.WriteString("⏳ <b>Объявление на модерацию</b>\n\n")
	fmt.Fprintf(&b, "ID: <code>%d</code>\n", ad.ID)
	fmt.Fprintf(&b, "🏷️ <b>Тип:</b> %s\n", ad.Type)
	fmt.Fprintf(&b, "📝 <b>Заголовок:</b> %s\n", ad.Title)
	fmt.Fprintf(&b, "📄 <b>Описание:</b> %s\n", ad.Description)
	fmt.Fprintf(&b, "💰 <b>Цена:</b> %s %s\n", FormatPrice(ad.Price), strings.ToUpper(string(ad.Currency)))
	fmt.Fprintf(&b, "📍 <b>Местоположение:</b> %s\n", ad.Location)
	fmt.Fprintf(&b, "📸 <b>Фото:</b> %d шт.\n", len(ad.Photos))

	if owner != nil {
		fmt.Fprintf(&b, "\n👤 <b>Автор:</b> %s (@%s)\n", owner.FirstName, owner.Username)
	}
	fmt.Fprintf(&b, "📅 <b>Создано:</b> %s", ad.CreatedAt.Format("02.01.2006 15:04"))

	return b.String()
}

// DraftPreview builds the pre-submit preview of a draft
func DraftPreview(d *domain.Draft) string {
	var b strings.Builder

	b.WriteString("📋 <b>Предпросмотр объявления</b>\n\n")
	fmt.Fprintf(&b, "🏷️ <b>Тип:</b> %s\n", d.Type)
	fmt.Fprintf(&b, "📝 <b>Заголовок:</b> %s\n", d.Title)
	fmt.Fprintf(&b, "📄 <b>Описание:</b> %s\n", d.Description)
	fmt.Fprintf(&b, "💰 <b>Цена:</b> %s %s\n", FormatPrice(d.Price), strings.ToUpper(string(d.Currency)))
	fmt.Fprintf(&b, "📍 <b>Местоположение:</b> %s\n", d.Location)
	fmt.Fprintf(&b, "📸 <b>Фото:</b> %d шт.", len(d.Photos))

	return b.String()
}
