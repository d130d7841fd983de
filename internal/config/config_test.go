package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "DEFAULT_LOCALE", "SUBMIT_DELAY", "SUCCESS_DISPLAY", "SECURE_COOKIES", "CORS_ALLOWED_ORIGINS", "FORM_RATE_LIMIT", "FORM_RATE_BURST"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Env != "development" {
		t.Fatalf("expected default env, got %s", cfg.Env)
	}
	if cfg.DefaultLocale != "en" {
		t.Fatalf("expected default locale en, got %s", cfg.DefaultLocale)
	}
	if cfg.SubmitDelay != 2*time.Second {
		t.Fatalf("expected 2s submit delay, got %s", cfg.SubmitDelay)
	}
	if cfg.SuccessDisplay != 5*time.Second {
		t.Fatalf("expected 5s success display, got %s", cfg.SuccessDisplay)
	}
	if cfg.SecureCookies {
		t.Fatalf("expected insecure cookies outside production")
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Fatalf("expected no CORS origins, got %v", cfg.CORSAllowedOrigins)
	}
	if cfg.FormRateLimit != 1 || cfg.FormRateBurst != 5 {
		t.Fatalf("unexpected rate limit defaults %v/%d", cfg.FormRateLimit, cfg.FormRateBurst)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DEFAULT_LOCALE", "RU")
	t.Setenv("SUBMIT_DELAY", "150ms")
	t.Setenv("SUCCESS_DISPLAY", "1s")
	t.Setenv("SESSION_TTL", "10m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("FORM_RATE_LIMIT", "0.5")
	t.Setenv("FORM_RATE_BURST", "2")
	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected override port, got %s", cfg.Port)
	}
	if cfg.DefaultLocale != "ru" {
		t.Fatalf("expected lower-cased locale, got %s", cfg.DefaultLocale)
	}
	if cfg.SubmitDelay != 150*time.Millisecond || cfg.SuccessDisplay != time.Second {
		t.Fatalf("unexpected timings %s/%s", cfg.SubmitDelay, cfg.SuccessDisplay)
	}
	if cfg.SessionTTL != 10*time.Minute {
		t.Fatalf("expected session ttl override, got %s", cfg.SessionTTL)
	}
	if !cfg.SecureCookies {
		t.Fatalf("expected secure cookies in production")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
	if cfg.FormRateLimit != 0.5 || cfg.FormRateBurst != 2 {
		t.Fatalf("unexpected rate limit %v/%d", cfg.FormRateLimit, cfg.FormRateBurst)
	}
}

func TestLoadIgnoresMalformedDurations(t *testing.T) {
	t.Setenv("SUBMIT_DELAY", "soon")
	t.Setenv("FORM_RATE_LIMIT", "-3")
	cfg := Load()
	if cfg.SubmitDelay != 2*time.Second {
		t.Fatalf("expected fallback delay, got %s", cfg.SubmitDelay)
	}
	if cfg.FormRateLimit != 1 {
		t.Fatalf("expected fallback rate, got %v", cfg.FormRateLimit)
	}
}
