package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	// Telegram
	BotToken string

	// OpenAI-совместимый API
	OpenAIAPIKey  string
	OpenAIBaseURL string // пусто - стандартный адрес OpenAI
	OpenAIModel   string // например gpt-4o

	// Время ежедневного напоминания о тренировке, формат ЧЧ:ММ
	ReminderTime string
}

// Load загружает конфигурацию из переменных окружения или .env файла
func Load() (*Config, error) {
	// .env может отсутствовать, это не ошибка
	_ = godotenv.Load()

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		BotToken:      getEnv("BOT_TOKEN", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
		ReminderTime:  getEnv("REMINDER_TIME", "08:00"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN не задан")
	}
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY не задан")
	}

	return cfg, nil
}

// LoadCLI загружает конфигурацию для консольной утилиты: токен бота не нужен.
func LoadCLI() (*Config, error) {
	_ = godotenv.Load()

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return defaultValue
	}

	cfg := &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o"),
	}

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY не задан")
	}

	return cfg, nil
}
