package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("IMAGE_STORE", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg := Load()

	if cfg.Addr() != ":8080" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":8080")
	}
	if cfg.JWTTTL != 7*24*time.Hour {
		t.Errorf("JWTTTL = %v, want %v", cfg.JWTTTL, 7*24*time.Hour)
	}
	if cfg.UsesS3() {
		t.Error("UsesS3() = true, want false")
	}
	if cfg.RateLimitPerMinute != 20 {
		t.Errorf("RateLimitPerMinute = %d, want 20", cfg.RateLimitPerMinute)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("IMAGE_STORE", "S3")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("CHECK_EMAIL_DOMAIN", "true")
	t.Setenv("PUBLIC_BASE_URL", "https://cats.example.com/")

	cfg := Load()

	if cfg.Addr() != ":9090" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), ":9090")
	}
	if cfg.JWTTTL != 2*time.Hour {
		t.Errorf("JWTTTL = %v, want 2h", cfg.JWTTTL)
	}
	if !cfg.UsesS3() {
		t.Error("UsesS3() = false, want true")
	}
	if cfg.SMTPPort != 2525 {
		t.Errorf("SMTPPort = %d, want 2525", cfg.SMTPPort)
	}
	if !cfg.CheckEmailDomain {
		t.Error("CheckEmailDomain = false, want true")
	}
	if cfg.PublicBaseURL != "https://cats.example.com" {
		t.Errorf("PublicBaseURL = %q, want trailing slash trimmed", cfg.PublicBaseURL)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")
	t.Setenv("JWT_TTL", "forever")

	cfg := Load()

	if cfg.RateLimitPerMinute != 20 {
		t.Errorf("RateLimitPerMinute = %d, want default 20", cfg.RateLimitPerMinute)
	}
	if cfg.JWTTTL != 7*24*time.Hour {
		t.Errorf("JWTTTL = %v, want default", cfg.JWTTTL)
	}
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example, ,https://b.example ")

	cfg := Load()

	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %q", cfg.CORSOrigins)
	}
}
