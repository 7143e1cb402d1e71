// Package config reads the process environment into one explicit
// Config value. The value is constructed at startup and passed down;
// nothing below main reads the environment directly.
package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	ExtractorURL string
	ExtractorKey string

	// Provider picks the generative backend: "openai" or "anthropic".
	Provider     string
	OpenAIKey    string
	AnthropicKey string

	// RedisURL enables the extract-response cache when set.
	RedisURL    string
	FrontendURL string

	// RequestTimeout bounds the backend invocation(s) of one request.
	RequestTimeout time.Duration
}

func Load() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		ExtractorURL:   getenv("EXTRACTOR_URL", "https://ask-better-questions-vrjh.onrender.com/extract"),
		ExtractorKey:   os.Getenv("EXTRACTOR_KEY"),
		Provider:       getenv("LLM_PROVIDER", "openai"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		AnthropicKey:   os.Getenv("ANTHROPIC_API_KEY"),
		RedisURL:       os.Getenv("REDIS_URL"),
		FrontendURL:    os.Getenv("FRONTEND_URL"),
		RequestTimeout: timeoutFromEnv(),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func timeoutFromEnv() time.Duration {
	const fallback = 120 * time.Second

	raw := os.Getenv("REQUEST_TIMEOUT_SECONDS")
	if raw == "" {
		return fallback
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
