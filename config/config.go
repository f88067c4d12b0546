package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	LLM      LLMConfig
	Designer DesignerConfig
	Redis    RedisConfig
	Janitor  JanitorConfig
	App      AppConfig
}

type ServerConfig struct {
	Port string
}

type DataConfig struct {
	Dir string
}

// LLMConfig controls the external text-generation service. An empty APIKey
// is a supported mode: every document is produced by the deterministic
// fallback templates instead.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	RequestsSec float64
}

type DesignerConfig struct {
	Strategy        string // "curated" or "prompt"
	ImageServiceURL string
}

type RedisConfig struct {
	Addr     string
	CacheTTL time.Duration
}

type JanitorConfig struct {
	Enabled  bool
	Schedule string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "4000"),
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4-turbo-preview"),
			Timeout:     getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
			RequestsSec: getEnvAsFloat("LLM_REQUESTS_PER_SECOND", 2),
		},
		Designer: DesignerConfig{
			Strategy:        getEnv("DESIGNER_STRATEGY", "curated"),
			ImageServiceURL: getEnv("IMAGE_SERVICE_URL", "https://image.pollinations.ai/prompt/"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			CacheTTL: getEnvAsDuration("GENERATION_CACHE_TTL", 24*time.Hour),
		},
		Janitor: JanitorConfig{
			Enabled:  getEnvAsBool("JANITOR_ENABLED", true),
			Schedule: getEnv("JANITOR_SCHEDULE", "0 0 3 * * *"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Data.Dir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	if c.Designer.Strategy != "curated" && c.Designer.Strategy != "prompt" {
		return fmt.Errorf("DESIGNER_STRATEGY must be \"curated\" or \"prompt\", got %q", c.Designer.Strategy)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration for %s, using default: %s", key, defaultValue)
		return defaultValue
	}

	return value
}
