package main

import (
	"os"

	"github.com/smmilton/llm-fragments-gitlab/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
