package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err != nil {
		t.Fatalf("Load returned an error for a missing file: %v", err)
	}

	def := Default()
	if cfg.Splitter.Default.MaxInputChars != def.Splitter.Default.MaxInputChars {
		t.Errorf("MaxInputChars = %d, want %d", cfg.Splitter.Default.MaxInputChars, def.Splitter.Default.MaxInputChars)
	}
	if cfg.Splitter.MaxCacheItems != 100000 {
		t.Errorf("MaxCacheItems = %d, want 100000", cfg.Splitter.MaxCacheItems)
	}
}

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	contents := "service:\n  instance_name: test-instance\nsplitter:\n  data_file: custom.txt\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned an error: %v", err)
	}
	if cfg.Service.InstanceName != "test-instance" {
		t.Errorf("InstanceName = %q, want %q", cfg.Service.InstanceName, "test-instance")
	}
	if cfg.Splitter.DataFile != "custom.txt" {
		t.Errorf("DataFile = %q, want %q", cfg.Splitter.DataFile, "custom.txt")
	}
	// Unspecified fields should retain their defaults.
	if cfg.Splitter.Default.MaxTerms != 25 {
		t.Errorf("MaxTerms = %d, want default 25", cfg.Splitter.Default.MaxTerms)
	}
}

func TestSegmentConfigConvertsCleanupSecs(t *testing.T) {
	cfg := Default()
	cfg.Splitter.CleanupSecs = 30
	segCfg := cfg.SegmentConfig()
	if segCfg.CleanupInterval != 30*time.Second {
		t.Errorf("CleanupInterval = %v, want 30s", segCfg.CleanupInterval)
	}
}
