// Package main provides the memo CLI application.
package main

import (
	"fmt"

	"github.com/cicd-ai-toolkit/memo/pkg/version"
	"github.com/spf13/cobra"
)

// newVersionCmd builds the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display detailed version information including build date, git commit, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "memo version: %s\n", info.Version)
			fmt.Fprintf(out, "  build date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  git commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  go version: %s\n", info.GoVersion)
		},
	}
}
