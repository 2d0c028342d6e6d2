package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultSystemPrompt = "You are a helpful assistant. Answer the user's questions concisely and accurately."

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiConcurrentReqs int
	GeminiTimeoutSecs    int

	// Chat behavior
	HistoryLimit  int
	SystemPrompt  string
	TypingDelayMs int

	// HTTP
	AllowedOrigins string
	StaticDir      string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		GeminiTimeoutSecs:    getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 30),
		HistoryLimit:         getEnvAsIntOrDefault("HISTORY_LIMIT", 15),
		SystemPrompt:         getEnvOrDefault("SYSTEM_PROMPT", defaultSystemPrompt),
		TypingDelayMs:        getEnvAsIntOrDefault("TYPING_DELAY_MS", 0),
		AllowedOrigins:       getEnvOrDefault("ALLOWED_ORIGINS", "*"),
		StaticDir:            getEnvOrDefault("STATIC_DIR", "./static"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}
