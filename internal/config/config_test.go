package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.DataDir == "" {
		t.Error("data dir default missing")
	}
	if cfg.Ingest.MaxPerSource != 10 {
		t.Errorf("max_per_source = %d, want 10", cfg.Ingest.MaxPerSource)
	}
	if cfg.Ingest.MaxPerSourceTech != 5 {
		t.Errorf("max_per_source_tech = %d, want 5", cfg.Ingest.MaxPerSourceTech)
	}
	if cfg.Ingest.MinRelevance != 2 {
		t.Errorf("min_relevance = %d, want 2", cfg.Ingest.MinRelevance)
	}
	if cfg.Drafts.DefaultLanguage != "es" {
		t.Errorf("default_language = %q, want es", cfg.Drafts.DefaultLanguage)
	}
	if cfg.Fetch.UserAgent == "" {
		t.Error("user agent default missing")
	}
}

func TestLoadFromFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `app:
  data_dir: /tmp/newsstudio-test
ingest:
  max_per_source: 3
drafts:
  default_tone: cercano
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.DataDir != "/tmp/newsstudio-test" {
		t.Errorf("data_dir = %q", cfg.App.DataDir)
	}
	if cfg.Ingest.MaxPerSource != 3 {
		t.Errorf("max_per_source = %d, want 3", cfg.Ingest.MaxPerSource)
	}
	if cfg.Drafts.DefaultTone != "cercano" {
		t.Errorf("default_tone = %q", cfg.Drafts.DefaultTone)
	}
	// Untouched keys keep their defaults.
	if cfg.Ingest.MaxPerSourceTech != 5 {
		t.Errorf("max_per_source_tech = %d, want 5", cfg.Ingest.MaxPerSourceTech)
	}
}

func TestGetCaches(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	first := Get()
	second := Get()
	if first != second {
		t.Error("Get returned different instances")
	}
}
