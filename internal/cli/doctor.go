package cli

import (
	"fmt"
	"os/exec"

	"github.com/smmilton/llm-fragments-gitlab/internal/config"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check llm-fragments-gitlab prerequisites and configuration",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	allOK := true

	check := func(label string, ok bool, hint string) {
		if ok {
			fmt.Printf("✅ %s\n", label)
		} else {
			fmt.Printf("❌ %s — %s\n", label, hint)
			allOK = false
		}
	}

	// 1. git client
	_, err := exec.LookPath("git")
	check("git installed", err == nil, "install git; repository loading shells out to it")

	// 2. config
	cfg, cfgErr := config.Load()
	check("config loadable", cfgErr == nil, fmt.Sprintf("fix config: %v", cfgErr))
	if cfgErr == nil {
		validateErr := cfg.Validate()
		check("config valid", validateErr == nil, fmt.Sprintf("%v", validateErr))

		tokenEnv := cfg.GitLab.TokenEnv
		check(tokenEnv+" set", cfg.Token() != "",
			fmt.Sprintf("export %s to access private projects (public ones work without it)", tokenEnv))
	}

	fmt.Println()
	if allOK {
		fmt.Println("All checks passed. llm-fragments-gitlab is ready.")
	} else {
		fmt.Println("Some checks failed. Fix the issues above before loading fragments.")
	}
	return nil
}
