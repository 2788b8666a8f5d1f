package configs

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("S3_BUCKET_NAME", "dmchat-assets")
	t.Setenv("S3_ENDPOINT", "https://storage.example.com")
	t.Setenv("S3_ACCESS_KEY_ID", "test-access-key")
	t.Setenv("S3_SECRET_ACCESS_KEY", "test-secret-key")
}

func TestLoadConfigDevelopmentDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("S3_PUBLIC_BASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("expected default environment development, got %q", cfg.Environment)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.JWTSecret == "" {
		t.Error("expected a development fallback JWT secret")
	}
	if cfg.DatabaseDSN == "" {
		t.Error("expected a development fallback database DSN")
	}
	if want := "https://storage.example.com/dmchat-assets"; cfg.S3PublicBaseURL != want {
		t.Errorf("expected public base URL %q, got %q", want, cfg.S3PublicBaseURL)
	}
}

func TestLoadConfigAllowedOrigins(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://beta.example.com ,")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.AllowedOrigins) != 2 {
		t.Fatalf("expected 2 origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.AllowedOrigins[0] != "https://app.example.com" || cfg.AllowedOrigins[1] != "https://beta.example.com" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigInvalidPort(t *testing.T) {
	setRequiredEnv(t)

	for _, port := range []string{"not-a-number", "80", "70000"} {
		t.Setenv("PORT", port)
		if _, err := LoadConfig(); err == nil {
			t.Errorf("expected PORT=%s to be rejected", port)
		}
	}
}

func TestLoadConfigProductionRequirements(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected missing JWT_SECRET to be rejected in production")
	}

	t.Setenv("JWT_SECRET", "production-secret")
	t.Setenv("DATABASE_URL", "")
	if _, err := LoadConfig(); err == nil {
		t.Error("expected missing DATABASE_URL to be rejected in production")
	}

	t.Setenv("DATABASE_URL", "postgres://user:pass@db:5432/dmchat")
	if _, err := LoadConfig(); err != nil {
		t.Errorf("expected production config to load, got %v", err)
	}
}

func TestLoadConfigMissingStorageSettings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("S3_BUCKET_NAME", "")

	if _, err := LoadConfig(); err == nil {
		t.Error("expected missing S3_BUCKET_NAME to be rejected")
	}
}
