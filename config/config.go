package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvStaging     Environment = "staging"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Feed
	Feed FeedConfig

	// Scoring
	Scoring ScoringConfig

	// Feature Flags
	Features *FeatureFlags

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string

	// Timezone used to cut feed days (default: UTC)
	Timezone string
	Location *time.Location
}

// FeedConfig holds feed computation settings.
type FeedConfig struct {
	// Maximum number of questions a single feed returns.
	Limit int
}

// ScoringConfig holds reputation scoring weights.
type ScoringConfig struct {
	// Points awarded per net-positive question.
	QuestionPoints int

	// Points awarded per net-positive answer.
	AnswerPoints int
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string
	LogFormat string
	LogCaller bool
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.App = loadAppConfig()
	cfg.Feed = loadFeedConfig()
	cfg.Scoring = loadScoringConfig()
	cfg.Features = LoadFeatureFlags()
	cfg.Observability = loadObservabilityConfig()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	env := Environment(getEnv("APP_ENV", "development"))
	timezone := getEnv("APP_TIMEZONE", "UTC")

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	return AppConfig{
		Name:        getEnv("APP_NAME", "cuoora-core"),
		Environment: env,
		Debug:       env == EnvDevelopment || getEnvBool("APP_DEBUG", false),
		Version:     getEnv("APP_VERSION", "0.1.0"),
		Timezone:    timezone,
		Location:    loc,
	}
}

func loadFeedConfig() FeedConfig {
	return FeedConfig{
		Limit: getEnvInt("FEED_LIMIT", 100),
	}
}

func loadScoringConfig() ScoringConfig {
	return ScoringConfig{
		QuestionPoints: getEnvInt("SCORING_QUESTION_POINTS", 10),
		AnswerPoints:   getEnvInt("SCORING_ANSWER_POINTS", 20),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		LogCaller: getEnvBool("LOG_CALLER", true),
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Feed.Limit <= 0 {
		errs = append(errs, "FEED_LIMIT must be positive")
	}

	if c.Scoring.QuestionPoints < 0 {
		errs = append(errs, "SCORING_QUESTION_POINTS must not be negative")
	}

	if c.Scoring.AnswerPoints < 0 {
		errs = append(errs, "SCORING_ANSWER_POINTS must not be negative")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
