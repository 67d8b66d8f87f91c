// jobbyctl browses the job board from a terminal.
//
// Usage:
//
//	jobbyctl login -u rahul -p 'rahul@2021'
//	jobbyctl jobs --type FULLTIME --type INTERNSHIP --min-package 1000000 --search devops
//	jobbyctl jobs -o yaml
//	jobbyctl logout
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justsurfingit/jobby-board/internal/auth"
	"github.com/justsurfingit/jobby-board/internal/config"
)

var (
	version     = "dev"
	outputFmt   string
	sessionFile string
	apiURL      string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := config.Load()

	rootCmd := &cobra.Command{
		Use:   "jobbyctl",
		Short: "Log in to the job board and search listings",
		Long: `jobbyctl talks to the same job API as the web front end.

The login token is kept in a private session file and sent as a bearer
token on every search. Searches are never retried automatically: rerun
the command to retry.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&sessionFile, "session-file", auth.DefaultSessionPath(), "Where the login token is stored")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", cfg.JobsAPIBaseURL, "Base URL of the job API")

	rootCmd.AddCommand(loginCmd())
	rootCmd.AddCommand(logoutCmd())
	rootCmd.AddCommand(jobsCmd())
	return rootCmd
}
