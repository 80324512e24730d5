package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Database.DBName != "finwise" {
		t.Errorf("Database.DBName = %q, want finwise", cfg.Database.DBName)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("JWT.Expiration = %v, want 24h", cfg.JWT.Expiration)
	}
	if cfg.Upload.MaxBytes != 5*1024*1024 {
		t.Errorf("Upload.MaxBytes = %d, want 5MB", cfg.Upload.MaxBytes)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("UPLOAD_MAX_SIZE_MB", "10")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Server.Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.Upload.MaxBytes != 10*1024*1024 {
		t.Errorf("Upload.MaxBytes = %d, want 10MB", cfg.Upload.MaxBytes)
	}
	if cfg.JWT.Expiration != time.Hour {
		t.Errorf("JWT.Expiration = %v, want 1h", cfg.JWT.Expiration)
	}
}
