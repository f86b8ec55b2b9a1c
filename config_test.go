package tabstitch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsawler/tabstitch/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"yaml", "tabstitch.yaml", "tables:\n  columnMinGap: 30\nstitch:\n  headerSimilarity: 0.8\nruled:\n  strategy: text\n"},
		{"json", "tabstitch.json", `{"tables": {"columnMinGap": 30}, "stitch": {"headerSimilarity": 0.8}, "ruled": {"strategy": "text"}}`},
		{"no extension", "tabstitch", `{"tables": {"columnMinGap": 30}, "stitch": {"headerSimilarity": 0.8}, "ruled": {"strategy": "text"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfigFile(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("LoadConfigFile() error: %v", err)
			}
			if cfg.Tables.ColumnMinGap != 30 {
				t.Errorf("Expected columnMinGap 30, got %v", cfg.Tables.ColumnMinGap)
			}
			if cfg.Stitch.HeaderSimilarity != 0.8 {
				t.Errorf("Expected headerSimilarity 0.8, got %v", cfg.Stitch.HeaderSimilarity)
			}
			if cfg.Ruled.Strategy != model.StrategyText {
				t.Errorf("Expected text strategy, got %q", cfg.Ruled.Strategy)
			}
			// untouched keys keep their defaults
			if cfg.Tables.RowTolerance != 3 || !cfg.Stitch.RequireAdjacentPages {
				t.Errorf("Expected defaults preserved, got %+v", cfg)
			}
		})
	}
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	_, err := LoadConfigFile(writeFile(t, "bad.yaml", "stitch:\n  headerSimilarity: 1.5\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}

	if _, err := LoadConfigFile(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("Expected parse error")
	}

	if _, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}

func TestConfig_CloneIsDeep(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tables.NoisePatterns = []string{"a"}
	c := cfg.clone()
	c.Tables.NoisePatterns[0] = "b"
	if cfg.Tables.NoisePatterns[0] != "a" {
		t.Error("Expected clone to copy noise patterns")
	}
}
