package formatters

import (
	"Carrytome/internal/constants"
	"Carrytome/internal/models"
	"Carrytome/internal/utils"
	"fmt"
	"strings"
)

const (
	separator = "─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─ ─"
)

// uploadKindTitles - человекочитаемые заголовки для типов загрузок.
var uploadKindTitles = map[string]string{
	constants.UPLOAD_KIND_KYC:    "📄 Документ KYC",
	constants.UPLOAD_KIND_TICKET: "🎫 Билет путешественника",
}

// FormatUploadCaption форматирует подпись к пересылаемому в Telegram файлу.
// kind - тип загрузки (kyc/ticket), extra - подпись из формы (может быть пустой).
func FormatUploadCaption(kind, fileName, extra string, userID int64, username string) string {
	var captionBuilder strings.Builder

	title, ok := uploadKindTitles[kind]
	if !ok {
		title = "📎 Загрузка"
	}
	captionBuilder.WriteString(title + "\n")
	captionBuilder.WriteString(separator + "\n")

	captionBuilder.WriteString(fmt.Sprintf(" •  Файл: %s\n", utils.EscapeTelegramMarkdown(fileName)))
	if userID != 0 {
		captionBuilder.WriteString(fmt.Sprintf(" •  Отправитель: %d", userID))
		if username != "" {
			captionBuilder.WriteString(fmt.Sprintf(" (@%s)", utils.EscapeTelegramMarkdown(username)))
		}
		captionBuilder.WriteString("\n")
	}
	if extra != "" {
		captionBuilder.WriteString(fmt.Sprintf(" •  Комментарий: %s\n", utils.EscapeTelegramMarkdown(utils.TruncateString(extra, 200))))
	}

	return strings.TrimRight(captionBuilder.String(), "\n")
}

// FormatOrderSummary форматирует короткую текстовую сводку заказа.
// Используется как полезная нагрузка QR-кода передачи и в подписях.
func FormatOrderSummary(order models.Order) string {
	var summaryBuilder strings.Builder

	summaryBuilder.WriteString(fmt.Sprintf("Carrytome #%s\n", order.ID))
	summaryBuilder.WriteString(fmt.Sprintf("Маршрут: %s -> %s\n", order.From, order.To))
	summaryBuilder.WriteString(fmt.Sprintf("Дата: %s\n", order.DateISO))
	if order.StatusText != "" {
		summaryBuilder.WriteString(fmt.Sprintf("Статус: %s\n", order.StatusText))
	}
	if order.Description != "" {
		summaryBuilder.WriteString(fmt.Sprintf("Описание: %s\n", utils.TruncateString(order.Description, 120)))
	}

	return strings.TrimRight(summaryBuilder.String(), "\n")
}
