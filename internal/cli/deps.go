package cli

import (
	"github.com/MKhiriev/go-jira-kit/internal/config"
	"github.com/MKhiriev/go-jira-kit/internal/jira"
	"github.com/MKhiriev/go-jira-kit/internal/logger"
)

// newClient builds the API client for one command invocation: tool
// settings from JIRA_CLI_* environment variables, a stderr logger, and
// credentials discovered from .claude/env starting at configDir.
func newClient(configDir string) (*jira.Client, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	log := logger.NewLogger("jira-cli", settings.LogLevel)

	return jira.New(jira.Options{
		ConfigDir: configDir,
		Timeout:   settings.HTTPTimeout,
		Logger:    log,
	})
}
