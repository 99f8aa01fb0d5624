package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"kinobot/internal/domain"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken      string
	PremiumMarker string
	Languages     *domain.LanguageSet
	OpenAI        OpenAIConfig
	Database      DatabaseConfig
	Messages      Messages
}

// OpenAIConfig holds completion-backend settings
type OpenAIConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Messages holds the user-facing template strings
type Messages struct {
	Welcome        string
	ChooseLanguage string
	LanguageSet    string
	LanguageRetry  string
	PremiumInfo    string
	PremiumUpsell  string
	InternalError  string
	Fallback       map[string]string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken:      os.Getenv("BOT_TOKEN"),
		PremiumMarker: getEnv("PREMIUM_MARKER", "premyera"),
		Languages: domain.NewLanguageSet(getEnv("DEFAULT_LANG", "uz"), []domain.Language{
			{Code: "uz", Name: "O‘zbekcha"},
			{Code: "ru", Name: "Русский"},
			{Code: "en", Name: "English"},
			{Code: "tr", Name: "Türkçe"},
		}),
		OpenAI: OpenAIConfig{
			APIKey:    os.Getenv("OPENAI_API_KEY"),
			BaseURL:   os.Getenv("OPENAI_BASE_URL"),
			Model:     getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			MaxTokens: getEnvInt("OPENAI_MAX_TOKENS", 300),
			Timeout:   getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "kinobot"),
			User:     getEnv("DB_USER", "kinobot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		Messages: defaultMessages(),
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func defaultMessages() Messages {
	return Messages{
		Welcome:        "Salom! Kino, qo‘shiq yoki serial nomini yozing 🎬🎵\nTilni o‘zgartirish: /lang",
		ChooseLanguage: "Tilni tanlang:",
		LanguageSet:    "Til %s ga o‘zgartirildi.",
		LanguageRetry:  "Iltimos, menyudan tanlang.",
		PremiumInfo:    "Premium foydalanuvchi:\n- Premyera kinolar\n- Tanishuvlar yozish\n- Nick’lar ko‘rinadi\n\nAdmin orqali faollashtiriladi.",
		PremiumUpsell:  "Bu premyera kino. Premium uchun /premium",
		InternalError:  "Xatolik yuz berdi. Keyinroq urinib ko‘ring.",
		Fallback: map[string]string{
			"uz": "Hozir AI javob bera olmayapti 😢",
			"ru": "ИИ сейчас не может ответить 😢",
			"en": "The assistant is unavailable right now 😢",
			"tr": "Asistan şu anda yanıt veremiyor 😢",
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
