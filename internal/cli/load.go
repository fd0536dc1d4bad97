package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/smmilton/llm-fragments-gitlab/internal/config"
	"github.com/smmilton/llm-fragments-gitlab/internal/fragment"
	"github.com/smmilton/llm-fragments-gitlab/internal/gitlab"
	"github.com/smmilton/llm-fragments-gitlab/internal/log"
	"github.com/spf13/cobra"
)

var (
	outputJSON bool
	listOnly   bool
)

var gitlabCmd = &cobra.Command{
	Use:          "gitlab <repository>",
	Short:        "Load every text file of a GitLab repository as fragments",
	Long:         "Repository is host:owner/project or a full https URL (optionally ending in .git).",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoader(cmd.Context(), "gitlab", args[0])
	},
}

var gitlabIssueCmd = &cobra.Command{
	Use:          "gitlab-issue <issue-ref>",
	Short:        "Load a GitLab issue thread as one Markdown fragment",
	Long:         "Issue ref is host:owner/project/issue/NUMBER or owner/project/issue/NUMBER (host defaults to gitlab.com).",
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLoader(cmd.Context(), "gitlab-issue", args[0])
	},
}

func init() {
	for _, cmd := range []*cobra.Command{gitlabCmd, gitlabIssueCmd} {
		cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit fragments as a JSON array")
		cmd.Flags().BoolVar(&listOnly, "list", false, "Print fragment sources only")
	}
}

// runLoader wires configuration, the loader registry, and output
// formatting for both loader commands.
func runLoader(ctx context.Context, name, argument string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.Init(cfg.LogLevel)

	registry := fragment.NewRegistry()
	if err := gitlab.Register(registry, cfg); err != nil {
		return err
	}

	fragments, err := registry.Load(ctx, name, argument)
	if err != nil {
		return err
	}
	return printFragments(fragments)
}

func printFragments(fragments []fragment.Fragment) error {
	switch {
	case outputJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(fragments)
	case listOnly:
		for _, f := range fragments {
			fmt.Println(f.Source)
		}
	default:
		for _, f := range fragments {
			fmt.Printf("## %s\n\n%s\n", f.Source, f.Content)
		}
	}
	return nil
}
