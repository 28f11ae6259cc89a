package telegram_api

import (
	"fmt"
	"log"

	tgbotapi "github.com/OvyFlash/telegram-bot-api"

	"Carrytome/internal/utils"
)

// BotClient представляет собой обертку для Telegram Bot API.
// Релей использует его только для отправки: канала обновлений нет.
type BotClient struct {
	api   *tgbotapi.BotAPI
	Debug bool
}

// Global Bot instance for the package
// Глобальный экземпляр бота для пакета
var Client *BotClient

// InitBot инициализирует Telegram бота.
// token - API токен вашего бота.
// debug - флаг для включения режима отладки.
func InitBot(token string, debug bool) error {
	if token == "" {
		return fmt.Errorf("токен Telegram API не предоставлен")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return fmt.Errorf("ошибка инициализации Telegram Bot API: %w", err)
	}

	api.Debug = debug

	log.Printf("Авторизован как аккаунт %s", api.Self.UserName)

	Client = &BotClient{
		api:   api,
		Debug: debug,
	}
	return nil
}

// GetAPI возвращает нижележащий экземпляр *tgbotapi.BotAPI.
func (bc *BotClient) GetAPI() *tgbotapi.BotAPI {
	if bc == nil || bc.api == nil {
		log.Fatal("BotClient или его API не инициализирован.")
	}
	return bc.api
}

// Send отправляет сообщение через BotClient.
func (bc *BotClient) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if bc == nil || bc.api == nil {
		return tgbotapi.Message{}, fmt.Errorf("BotClient или его API не инициализирован")
	}
	if bc.Debug {
		if photoMsg, ok := c.(tgbotapi.PhotoConfig); ok {
			log.Printf("Отправка фото: ChatID=%d, Caption='%.50s...'", photoMsg.ChatID, photoMsg.Caption)
		} else if docMsg, ok := c.(tgbotapi.DocumentConfig); ok {
			log.Printf("Отправка документа: ChatID=%d, Caption='%.50s...'", docMsg.ChatID, docMsg.Caption)
		} else {
			log.Printf("Отправка/запрос типа %T", c)
		}
	}
	return bc.api.Send(c)
}

// SendUpload пересылает загруженный файл в чат chatID.
// Изображения уходят как фото, остальное - как документы; так же
// выбирал метод исходный прокси (pickSendMethod).
func (bc *BotClient) SendUpload(chatID int64, fileName, contentType string, data []byte, caption string) (tgbotapi.Message, error) {
	if bc == nil || bc.api == nil {
		return tgbotapi.Message{}, fmt.Errorf("BotClient или его API не инициализирован")
	}

	file := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: data,
	}

	if utils.IsImage(contentType) {
		photo := tgbotapi.NewPhoto(chatID, file)
		photo.Caption = caption
		return bc.Send(photo)
	}

	document := tgbotapi.NewDocument(chatID, file)
	document.Caption = caption
	document.DisableContentTypeDetection = true
	return bc.Send(document)
}
