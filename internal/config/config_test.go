package config_test

import (
	"strings"
	"testing"

	"github.com/msomdec/inkpost/internal/config"
)

const testSecret = "a-test-secret-that-is-long-enough-123"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("BCRYPT_COST", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.DatabasePath != "inkpost.db" {
		t.Fatalf("expected default database path, got %q", cfg.DatabasePath)
	}
	if cfg.BcryptCost < 4 {
		t.Fatalf("unexpected default bcrypt cost %d", cfg.BcryptCost)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected an error for missing JWT_SECRET")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	_, err := config.Load()
	if err == nil || !strings.Contains(err.Error(), "32 characters") {
		t.Fatalf("expected short-secret error, got %v", err)
	}
}

func TestLoad_BcryptCost(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	t.Setenv("BCRYPT_COST", "12")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected cost 12, got %d", cfg.BcryptCost)
	}

	t.Setenv("BCRYPT_COST", "99")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for out-of-range BCRYPT_COST")
	}

	t.Setenv("BCRYPT_COST", "nope")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected an error for non-numeric BCRYPT_COST")
	}
}
