package config

import "testing"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CASHFREE_APP_ID", "app_test")
	t.Setenv("CASHFREE_SECRET_KEY", "secret_test")
}

func TestLoadConfigPoolBoundDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBMaxConns != 10 {
		t.Fatalf("expected default DBMaxConns 10, got %d", cfg.DBMaxConns)
	}
	if cfg.DBMinConns != 2 {
		t.Fatalf("expected default DBMinConns 2, got %d", cfg.DBMinConns)
	}
}

func TestLoadConfigPoolBoundsFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_MAX_CONNS", "25")
	t.Setenv("DB_MIN_CONNS", "5")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DBMaxConns != 25 {
		t.Fatalf("expected DBMaxConns 25, got %d", cfg.DBMaxConns)
	}
	if cfg.DBMinConns != 5 {
		t.Fatalf("expected DBMinConns 5, got %d", cfg.DBMinConns)
	}
}

func TestGetEnvInt32IgnoresGarbage(t *testing.T) {
	t.Setenv("DB_MAX_CONNS", "plenty")

	if got := getEnvInt32("DB_MAX_CONNS", 10); got != 10 {
		t.Fatalf("expected fallback 10, got %d", got)
	}
}
