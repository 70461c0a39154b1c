package config

import (
	"testing"
	"time"
)

func TestDurationSecondsSetValue(t *testing.T) {
	tests := []struct {
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"10s", 10 * time.Second, false},
		{"10", 10 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{`"60"`, time.Minute, false},
		{"", 0, true},
		{"later", 0, true},
	}
	for _, tc := range tests {
		var d durationSeconds
		err := d.SetValue(tc.input)
		if tc.wantErr != (err != nil) {
			t.Errorf("SetValue(%q) err = %v", tc.input, err)
			continue
		}
		if !tc.wantErr && d.Duration() != tc.want {
			t.Errorf("SetValue(%q) = %v, want %v", tc.input, d.Duration(), tc.want)
		}
	}
}

func TestLoadMemoryMode(t *testing.T) {
	// With no PG_DSN in the environment the service runs memory-only and
	// Redis is not required.
	t.Setenv("PG_DSN", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.MemoryMode() {
		t.Error("expected memory mode")
	}
}

func TestLoadRequiresRedisWithPG(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost/app")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Error("PG without Redis must fail to load")
	}
}

func TestLoadParsesRedisURL(t *testing.T) {
	t.Setenv("PG_DSN", "postgres://localhost/app")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("REDIS_URL", "redis://default:pw@cache:6379/1")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Redis.Addr != "cache:6379" || cfg.Redis.Password != "pw" || cfg.Redis.DB != 1 {
		t.Errorf("redis config not derived from URL: %+v", cfg.Redis)
	}
}
