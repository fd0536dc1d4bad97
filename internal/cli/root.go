package cli

import (
	"fmt"

	"github.com/smmilton/llm-fragments-gitlab/pkg/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "llm-fragments-gitlab",
	Short: "Load GitLab repositories and issues as LLM-ready text fragments",
	Long: `llm-fragments-gitlab turns remote GitLab resources into self-contained
text fragments: every UTF-8 text file of a repository's default branch, or an
issue thread rendered as a single Markdown document.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(gitlabCmd)
	rootCmd.AddCommand(gitlabIssueCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("llm-fragments-gitlab %s\n", version.Version)
	},
}
