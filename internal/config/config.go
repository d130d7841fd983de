package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port          string
	Env           string
	PublicBaseURL string
	LogLevel      string

	// Localization
	DefaultLocale string

	// Contact form
	SubmitDelay    time.Duration
	SuccessDisplay time.Duration
	SessionTTL     time.Duration
	SessionCookie  string
	LocaleCookie   string
	SecureCookies  bool

	// HTTP edge
	CORSAllowedOrigins []string
	FormRateLimit      float64
	FormRateBurst      int
	ShutdownTimeout    time.Duration
}

// Load reads configuration from environment variables
func Load() *Config {
	env := getEnv("ENV", "development")
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           env,
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),

		DefaultLocale: strings.ToLower(getEnv("DEFAULT_LOCALE", "en")),

		SubmitDelay:    getEnvAsDuration("SUBMIT_DELAY", 2*time.Second),
		SuccessDisplay: getEnvAsDuration("SUCCESS_DISPLAY", 5*time.Second),
		SessionTTL:     getEnvAsDuration("SESSION_TTL", 30*time.Minute),
		SessionCookie:  getEnv("SESSION_COOKIE", "sip_session"),
		LocaleCookie:   getEnv("LOCALE_COOKIE", "sip_lang"),
		SecureCookies:  getEnvAsBool("SECURE_COOKIES", env == "production"),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		FormRateLimit:      getEnvAsFloat("FORM_RATE_LIMIT", 1),
		FormRateBurst:      getEnvAsInt("FORM_RATE_BURST", 5),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
