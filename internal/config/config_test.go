package config

import (
	"os"
	"testing"
)

func TestGetIntBool(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, store, _, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr == "" || cfg.JWT.AccessMin <= 0 {
		t.Fatalf("defaults missing: %+v", cfg)
	}
	if cfg.Telegram.AuthTTLSec != 300 {
		t.Fatalf("telegram auth ttl default: %d", cfg.Telegram.AuthTTLSec)
	}
	if store.Get() != cfg {
		t.Fatalf("store should hold loaded config")
	}
}

func TestStoreValidatorRejects(t *testing.T) {
	cfg := &Config{}
	cfg.PG.MaxOpenConns = 10
	cfg.PG.MaxIdleConns = 5
	s := NewStore(cfg)
	s.AddValidator(func(newCfg *Config, changed map[string]bool) error {
		if newCfg.PG.MaxIdleConns > newCfg.PG.MaxOpenConns {
			return os.ErrInvalid
		}
		return nil
	})
	bad := cloneConfig(cfg)
	bad.PG.MaxIdleConns = 20
	if ok := s.UpdateValidated(bad, map[string]bool{"pg.max_idle": true}); ok {
		t.Fatalf("expected rejection")
	}
	if s.Get().PG.MaxIdleConns != 5 {
		t.Fatalf("config should be unchanged after rejected update: %d", s.Get().PG.MaxIdleConns)
	}
}
