// Package config reads process settings from the environment, after loading
// an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the settings shared by the bot and the HTTP server
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Discord
	DiscordToken  string
	ApplicationID string
	GuildID       string

	// HTTPAddr is the listen address of the HTTP server
	HTTPAddr string

	// DefaultLocale is used when a round is started without one
	DefaultLocale string

	// WordsDir replaces the embedded word lists when set
	WordsDir string

	LogLevel zerolog.Level

	// GuessRatePerMinute limits guesses per player, 0 disables the limit
	GuessRatePerMinute int
	GuessBurst         int
}

// Load reads the given .env files, or .env when none are given, then the environment.
// Missing .env files are not an error; variables already set are not overridden.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment
func FromEnv() (*Config, error) {
	cfg := &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DefaultLocale: strings.ToLower(getEnv("DEFAULT_LOCALE", "en")),
		WordsDir:      getEnv("WORDS_DIR", ""),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.GuessRatePerMinute, err = getEnvInt("GUESS_RATE_PER_MINUTE", 30); err != nil {
		return nil, err
	}
	if cfg.GuessBurst, err = getEnvInt("GUESS_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.GuessRatePerMinute < 0 {
		return nil, fmt.Errorf("GUESS_RATE_PER_MINUTE must not be negative, got %d", cfg.GuessRatePerMinute)
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return i, nil
}
