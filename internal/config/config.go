package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackClientID      string
	SlackClientSecret  string

	DatabasePath string
	Port         string
	AppBaseURL   string
	Environment  string

	DecisionTimeoutHours int
	MonthlyAILimit       int

	AIAPIKey  string
	AIModel   string
	AIBaseURL string

	ZohoClientID     string
	ZohoClientSecret string

	TokenEncryptionKey string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackClientID:      getEnv("SLACK_CLIENT_ID", ""),
		SlackClientSecret:  getEnv("SLACK_CLIENT_SECRET", ""),

		DatabasePath: getEnv("DATABASE_PATH", "./decisions.db"),
		Port:         getEnv("PORT", "3000"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:3000"),
		Environment:  getEnv("ENVIRONMENT", "development"),

		DecisionTimeoutHours: getEnvInt("DECISION_TIMEOUT_HOURS", 48),
		MonthlyAILimit:       getEnvInt("MONTHLY_AI_LIMIT", 100),

		AIAPIKey:  getEnv("AI_API_KEY", ""),
		AIModel:   getEnv("AI_MODEL", "gemini-1.5-flash"),
		AIBaseURL: getEnv("AI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),

		ZohoClientID:     getEnv("ZOHO_CLIENT_ID", ""),
		ZohoClientSecret: getEnv("ZOHO_CLIENT_SECRET", ""),

		TokenEncryptionKey: getEnv("TOKEN_ENCRYPTION_KEY", ""),
	}
}

// Validate fails fast on startup instead of at first request. Secrets are
// only mandatory in production so local runs stay friction-free.
func (c *Config) Validate() error {
	if c.DecisionTimeoutHours <= 0 {
		return fmt.Errorf("DECISION_TIMEOUT_HOURS must be positive, got %d", c.DecisionTimeoutHours)
	}
	if c.MonthlyAILimit < 0 {
		return fmt.Errorf("MONTHLY_AI_LIMIT must not be negative, got %d", c.MonthlyAILimit)
	}

	if !c.IsProduction() {
		return nil
	}

	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"SLACK_SIGNING_SECRET", c.SlackSigningSecret},
		{"SLACK_CLIENT_ID", c.SlackClientID},
		{"SLACK_CLIENT_SECRET", c.SlackClientSecret},
		{"TOKEN_ENCRYPTION_KEY", c.TokenEncryptionKey},
	}
	for _, r := range required {
		if r.value == "" {
			missing = append(missing, r.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
