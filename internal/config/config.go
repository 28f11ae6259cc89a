// internal/config/config.go
package config

import (
	"log"
	"os"
	"strconv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	TelegramToken string
	TargetChatID  int64 // канал-приемник загрузок; 0 - слать пользователю из initData
	AppEnv        string
	BotUsername   string
	Port          string
	DataDir       string // каталог встроенного хранилища
	WebAppDir     string // статика мини-аппа
}

// LoadConfig загружает конфигурацию из переменных окружения.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_APITOKEN"),
		AppEnv:        os.Getenv("ENV"),
		BotUsername:   os.Getenv("BOT_USERNAME"),
		Port:          os.Getenv("PORT"),
		DataDir:       os.Getenv("DATA_DIR"),
		WebAppDir:     os.Getenv("WEBAPP_DIR"),
	}

	targetChatStr := os.Getenv("TELEGRAM_TARGET_CHAT_ID")
	if targetChatStr == "" {
		log.Println("Предупреждение: TELEGRAM_TARGET_CHAT_ID не установлен. Загрузки будут отправляться в чат пользователя из initData.")
	} else {
		var err error
		cfg.TargetChatID, err = strconv.ParseInt(targetChatStr, 10, 64)
		if err != nil {
			log.Printf("Предупреждение: не удалось прочитать TELEGRAM_TARGET_CHAT_ID: %v. Установлено в 0.", err)
			cfg.TargetChatID = 0
		}
	}

	if cfg.Port == "" {
		// Порт исходного прокси мини-аппа.
		cfg.Port = "8787"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "carrytome_data"
		log.Printf("Предупреждение: DATA_DIR не установлен, используется '%s'.", cfg.DataDir)
	}
	if cfg.WebAppDir == "" {
		cfg.WebAppDir = "webapp"
	}

	if cfg.TelegramToken == "" {
		log.Println("Критическая ошибка: TELEGRAM_APITOKEN не установлен. Релей загрузок работать не будет.")
	}
	if cfg.BotUsername == "" {
		log.Println("Предупреждение: BOT_USERNAME не установлен.")
	}

	log.Println("Конфигурация загружена.")
	return cfg, nil
}
