package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smmilton/llm-fragments-gitlab/internal/config"
	"gopkg.in/yaml.v3"
)

func TestInitCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	configPath := filepath.Join(tmpDir, ".llm-fragments-gitlab", "config.yaml")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	// the generated file must parse and validate as-is
	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("generated config is not valid YAML: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("generated config does not validate: %v", err)
	}
	if cfg.GitLab.DefaultHost != "gitlab.com" {
		t.Errorf("expected default host 'gitlab.com', got %q", cfg.GitLab.DefaultHost)
	}
}

func TestInitSkipsWhenFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	configDir := filepath.Join(tmpDir, ".llm-fragments-gitlab")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	configPath := filepath.Join(configDir, "config.yaml")
	original := []byte("original content")
	if err := os.WriteFile(configPath, original, 0644); err != nil {
		t.Fatal(err)
	}

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit: %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(original) {
		t.Errorf("runInit overwrote existing config: got %q, want %q", data, original)
	}
}
