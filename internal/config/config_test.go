package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.DBDriver != "memory" {
		t.Errorf("DBDriver = %q, want memory", cfg.DBDriver)
	}
	if cfg.NATSURL != "nats://localhost:4222" {
		t.Errorf("NATSURL = %q", cfg.NATSURL)
	}
	if cfg.TeamCount != 10 {
		t.Errorf("TeamCount = %d, want 10", cfg.TeamCount)
	}
	if !cfg.Development() {
		t.Error("default environment should be development")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://draft:draft@db/draft")
	t.Setenv("TEAM_COUNT", "12")

	cfg := FromEnv()
	if cfg.Development() {
		t.Error("production environment reported as development")
	}
	if cfg.DBDriver != "postgres" {
		t.Errorf("DBDriver = %q", cfg.DBDriver)
	}
	if cfg.DatabaseURL == "" {
		t.Error("DATABASE_URL not picked up")
	}
	if cfg.TeamCount != 12 {
		t.Errorf("TeamCount = %d, want 12", cfg.TeamCount)
	}
}

func TestFromEnvBadInt(t *testing.T) {
	t.Setenv("TEAM_COUNT", "twelve")

	cfg := FromEnv()
	if cfg.TeamCount != 10 {
		t.Errorf("unparsable TEAM_COUNT should fall back to 10, got %d", cfg.TeamCount)
	}
}
