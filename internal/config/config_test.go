package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("RELAY_ADDRESS", ":9999")
	t.Setenv("RELAY_BANNED_TERMS", "foo,bar")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Address != ":9999" {
		t.Fatalf("expected :9999 got %s", cfg.Address)
	}
	if len(cfg.BannedTerms) != 2 || cfg.BannedTerms[1] != "bar" {
		t.Fatalf("expected [foo bar] got %v", cfg.BannedTerms)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Address != "0.0.0.0:5000" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.File() != "" {
		t.Fatalf("expected no config file got %s", cfg.File())
	}
}

func TestLoadFileAndWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\nbanned_terms: [foo]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.LogLevel != "debug" || len(cfg.BannedTerms) != 1 || cfg.BannedTerms[0] != "foo" {
		t.Fatalf("unexpected config %+v", cfg)
	}

	changed := make(chan *Config, 16)
	cfg.OnChange(func(c *Config, err error) {
		if err != nil {
			return
		}
		select {
		case changed <- c:
		default:
		}
	})
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("log_level: debug\nbanned_terms: [foo, bar]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case c := <-changed:
			if len(c.BannedTerms) == 2 {
				return
			}
		case <-deadline:
			t.Fatalf("config change not observed")
		}
	}
}
