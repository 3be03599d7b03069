package main

import (
	"os"

	"github.com/MKhiriev/go-jira-kit/internal/cli"
)

var buildVersion string

func main() {
	if buildVersion != "" {
		cli.Version = buildVersion
	}

	os.Exit(cli.Execute())
}
