// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli wires the per-resource toolkit commands. Each command reads
// one JSON object from stdin, validates its resource-specific fields,
// delegates to the shared jira client, and prints the decoded result as
// indented JSON on stdout. Diagnostics and errors go to stderr.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Process exit codes. Ordinary commands use ExitError for every failure
// category; validate-auth additionally distinguishes credentials rejected
// by the remote service.
const (
	ExitOK        = 0
	ExitError     = 1
	ExitAuthError = 2
)

// exitCodeError carries a specific process exit code through cobra's error
// return. A nil wrapped error means the command already printed its own
// report and Execute should only set the code.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	return ""
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

// NewRootCmd creates the root command for the jira toolkit.
func NewRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:     "jira",
		Short:   "Stdin-driven Jira REST toolkit",
		Version: Version,
		Long: `Stdin-driven Jira REST toolkit.

Each subcommand reads one JSON object from stdin and writes the API
result as indented JSON to stdout. Credentials are discovered from the
nearest .claude/env file (searched upward from this binary's directory,
or from --config-dir when given):

  JIRA_BASE_URL    required
  JIRA_PAT         PAT auth (takes precedence)
  JIRA_USER_EMAIL  Basic auth, together with
  JIRA_API_TOKEN

Run 'jira validate-auth' to check the configuration end to end.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config-dir", "C", "",
		"start directory for the .claude/env search (default: the executable's directory)")

	rootCmd.AddCommand(
		newCreateIssueCmd(&configDir),
		newGetIssueCmd(&configDir),
		newUpdateIssueCmd(&configDir),
		newSearchIssuesCmd(&configDir),
		newTransitionIssueCmd(&configDir),
		newManageCommentsCmd(&configDir),
		newManageIssueLinksCmd(&configDir),
		newFindUsersCmd(&configDir),
		newManageProjectCmd(&configDir),
		newValidateAuthCmd(&configDir),
	)

	return rootCmd
}

// Execute runs the root command and maps its error to a process exit code.
func Execute() int {
	err := NewRootCmd().Execute()
	if err == nil {
		return ExitOK
	}

	var coded *exitCodeError
	if errors.As(err, &coded) {
		if coded.err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", coded.err)
		}
		return coded.code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return ExitError
}
