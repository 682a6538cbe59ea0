package config

import (
	"os"
	"testing"
)

func TestValidate_RejectsEmptySecret(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Driver: "file"}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("empty JWT secret must not validate")
	}

	cfg.JWTSecret = "s"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsUnknownDriver(t *testing.T) {
	cfg := &Config{JWTSecret: "s", Store: StoreConfig{Driver: "postgres"}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("unknown store driver must not validate")
	}

	for _, driver := range []string{"file", "mongo"} {
		cfg.Store.Driver = driver
		if err := cfg.Validate(); err != nil {
			t.Fatalf("driver %s: unexpected error: %v", driver, err)
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	// t.Setenv registers the restore; unsetting afterwards makes the
	// variable genuinely absent so envconfig applies the default.
	for _, key := range []string{"PORT", "STORE_DRIVER", "TOKEN_TTL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("JWT_SECRET", "test-secret")

	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("expected default port 4000, got %s", cfg.Port)
	}
	if cfg.Store.Driver != "file" {
		t.Fatalf("expected default file driver, got %s", cfg.Store.Driver)
	}
	if cfg.TokenTTL.Hours() != 168 {
		t.Fatalf("expected 7 day token TTL, got %s", cfg.TokenTTL)
	}
}
