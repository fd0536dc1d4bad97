package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize llm-fragments-gitlab configuration",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("getting home dir: %w", err)
	}

	configDir := filepath.Join(home, ".llm-fragments-gitlab")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config already exists: %s\n", configPath)
		return nil
	}

	defaultConfig := `# llm-fragments-gitlab configuration
gitlab:
  # Host used when an issue ref carries no host prefix.
  default_host: gitlab.com
  # Environment variable holding the API token. Tokens are never read
  # from this file.
  token_env: GITLAB_TOKEN

http:
  timeout: 30s
  per_page: 100

clone:
  timeout: 300s

log_level: info
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Created %s\n", configPath)
	fmt.Println("Set GITLAB_TOKEN to access private projects.")
	return nil
}
