package config

import (
	"os"
	"testing"
	"time"
)

func setRequiredEnv() {
	os.Setenv("DB_PASSWORD", "test")
	os.Setenv("ADMIN_PASSWORD", "correct-horse-battery")
}

func TestServerConfig_Timeouts_Defaults(t *testing.T) {
	setRequiredEnv()
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	tests := []struct {
		name     string
		actual   time.Duration
		expected time.Duration
	}{
		{"ReadTimeout", cfg.Server.ReadTimeout, 15 * time.Second},
		{"WriteTimeout", cfg.Server.WriteTimeout, 15 * time.Second},
		{"IdleTimeout", cfg.Server.IdleTimeout, 60 * time.Second},
	}

	for _, tt := range tests {
		if tt.actual != tt.expected {
			t.Errorf("%s: got %v, want %v", tt.name, tt.actual, tt.expected)
		}
	}
}

func TestAuthConfig_Defaults(t *testing.T) {
	setRequiredEnv()
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if cfg.Auth.AdminUsername != "admin" {
		t.Errorf("AdminUsername: got %q, want %q", cfg.Auth.AdminUsername, "admin")
	}
	if cfg.Auth.SessionTTL != 1*time.Hour {
		t.Errorf("SessionTTL: got %v, want %v", cfg.Auth.SessionTTL, 1*time.Hour)
	}
	if cfg.Auth.MaxLoginAttempts != 5 {
		t.Errorf("MaxLoginAttempts: got %d, want 5", cfg.Auth.MaxLoginAttempts)
	}
	if cfg.Auth.AttemptWindow != 15*time.Minute {
		t.Errorf("AttemptWindow: got %v, want %v", cfg.Auth.AttemptWindow, 15*time.Minute)
	}
}

func TestAuthConfig_CustomValues(t *testing.T) {
	setRequiredEnv()
	os.Setenv("SESSION_TTL", "30m")
	os.Setenv("MAX_LOGIN_ATTEMPTS", "3")
	os.Setenv("LOGIN_ATTEMPT_WINDOW", "5m")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if cfg.Auth.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL: got %v, want %v", cfg.Auth.SessionTTL, 30*time.Minute)
	}
	if cfg.Auth.MaxLoginAttempts != 3 {
		t.Errorf("MaxLoginAttempts: got %d, want 3", cfg.Auth.MaxLoginAttempts)
	}
	if cfg.Auth.AttemptWindow != 5*time.Minute {
		t.Errorf("AttemptWindow: got %v, want %v", cfg.Auth.AttemptWindow, 5*time.Minute)
	}
}

func TestLoad_MissingAdminCredentials(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_PASSWORD", "test")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for missing admin credentials")
	}
}

func TestLoad_WeakAdminPassword(t *testing.T) {
	os.Clearenv()
	os.Setenv("DB_PASSWORD", "test")
	os.Setenv("ADMIN_PASSWORD", "admin123")
	defer os.Clearenv()

	if _, err := Load(); err == nil {
		t.Fatal("Load() = nil, want error for weak admin password")
	}
}

func TestEmailConfig_Enabled(t *testing.T) {
	setRequiredEnv()
	os.Setenv("EMAIL_FROM_ADDRESS", "noreply@example.com")
	os.Setenv("CONTACT_NOTIFY_ADDRESS", "me@example.com")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() = %v, want nil", err)
	}

	if !cfg.Email.EmailEnabled() {
		t.Error("EmailEnabled() = false, want true")
	}
}
