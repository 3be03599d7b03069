// Package config locates, parses, and resolves the toolkit configuration.
//
// Credentials are loaded exclusively from a .claude/env file discovered by
// walking parent directories upward from a start directory (see [Locate]).
// The file is a line-oriented KEY=VALUE format parsed by [ParseEnvFile],
// and [ResolveAuth] selects one of two authentication schemes from the
// parsed values: a personal access token (PAT) or an email/API-token pair,
// with PAT taking strict precedence.
//
// Tool-behavior settings (HTTP timeout, log level) are separate from
// credentials and come from JIRA_CLI_* environment variables via
// [LoadSettings].
package config
