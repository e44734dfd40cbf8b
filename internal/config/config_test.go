package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8090" {
		t.Errorf("port = %q, want 8090", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Errorf("env = %q, want development default", cfg.Env)
	}
	if cfg.DefaultUserID != "patient-001" || cfg.DefaultRole != "patient" {
		t.Errorf("default viewer = %s/%s", cfg.DefaultUserID, cfg.DefaultRole)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidateRejectsDevSecretInProduction(t *testing.T) {
	cfg := &Config{Env: "production", TokenSecret: "dev-only-secret", TokenTTL: 720, DefaultRole: "patient"}
	if err := cfg.Validate(); err == nil {
		t.Error("production with the development secret should not validate")
	}
	cfg.TokenSecret = "real-secret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("overridden secret should validate: %v", err)
	}
}

func TestValidateRejectsBadRole(t *testing.T) {
	cfg := &Config{Env: "development", TokenSecret: "dev-only-secret", TokenTTL: 720, DefaultRole: "superuser"}
	if err := cfg.Validate(); err == nil {
		t.Error("unknown default role should not validate")
	}
	cfg = &Config{Env: "development", TokenSecret: "dev-only-secret", TokenTTL: 0, DefaultRole: "patient"}
	if err := cfg.Validate(); err == nil {
		t.Error("non-positive TTL should not validate")
	}
}
