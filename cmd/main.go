package main

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"planbot/internal/bot"
	"planbot/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Ошибка подключения к Telegram: %v", err)
	}

	b := bot.New(api, cfg)
	if err := b.Start(); err != nil {
		log.Fatal(err)
	}
}
