package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/smartassess/internal/assessment"
	"github.com/abhisek/smartassess/internal/questionbank"
)

// Config holds all application configuration.
type Config struct {
	LogLevel        string `env:"SMARTASSESS_LOG_LEVEL" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFormat       string `env:"SMARTASSESS_LOG_FORMAT" validate:"oneof=pretty json"`
	LogFile         string `env:"SMARTASSESS_LOG_FILE"`
	DurationSeconds int    `env:"SMARTASSESS_DURATION_SECONDS" validate:"min=1,max=86400"`
	InitialTier     string `env:"SMARTASSESS_INITIAL_TIER" validate:"oneof=easy medium hard"`
	StrictAnswers   bool   `env:"SMARTASSESS_STRICT_ANSWERS"`
	// BankPath is an optional YAML question catalog; empty means the
	// built-in bank.
	BankPath string `env:"SMARTASSESS_BANK" validate:"omitempty,file"`
}

// Load reads configuration from environment variables with defaults and
// validates it. It loads a .env file if present but does not fail if
// missing.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		LogLevel:        getEnv("SMARTASSESS_LOG_LEVEL", "info"),
		LogFormat:       getEnv("SMARTASSESS_LOG_FORMAT", "pretty"),
		LogFile:         getEnv("SMARTASSESS_LOG_FILE", ""),
		DurationSeconds: getEnvInt("SMARTASSESS_DURATION_SECONDS", int(assessment.DefaultDuration/time.Second)),
		InitialTier:     getEnv("SMARTASSESS_INITIAL_TIER", string(questionbank.DefaultTier)),
		StrictAnswers:   getEnvBool("SMARTASSESS_STRICT_ANSWERS", false),
		BankPath:        getEnv("SMARTASSESS_BANK", ""),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Duration returns the session time budget.
func (c *Config) Duration() time.Duration {
	return time.Duration(c.DurationSeconds) * time.Second
}

// Tier returns the configured initial tier.
func (c *Config) Tier() questionbank.Tier {
	return questionbank.Tier(c.InitialTier)
}

// AnswerPolicy maps StrictAnswers to the engine's answer policy.
func (c *Config) AnswerPolicy() assessment.AnswerPolicy {
	if c.StrictAnswers {
		return assessment.AnswerPolicyStrict
	}
	return assessment.AnswerPolicyLenient
}

// SessionOptions returns the engine options derived from c. The time
// budget is passed separately as Duration.
func (c *Config) SessionOptions() []assessment.Option {
	return []assessment.Option{
		assessment.WithInitialTier(c.Tier()),
		assessment.WithAnswerPolicy(c.AnswerPolicy()),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
