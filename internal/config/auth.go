// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Recognized .claude/env variables.
const (
	// KeyBaseURL is the Jira instance base URL. Always required.
	KeyBaseURL = "JIRA_BASE_URL"
	// KeyPAT is the personal access token for Bearer authentication.
	KeyPAT = "JIRA_PAT"
	// KeyUserEmail is the account email for Basic authentication.
	KeyUserEmail = "JIRA_USER_EMAIL"
	// KeyAPIToken is the API token paired with KeyUserEmail for Basic
	// authentication.
	KeyAPIToken = "JIRA_API_TOKEN"
)

// AuthScheme labels the authentication method resolved from the
// configuration. It is a diagnostic label only; the Authorization header
// is computed once at resolution time.
type AuthScheme string

const (
	// AuthPAT is token-bearer authentication via JIRA_PAT.
	AuthPAT AuthScheme = "pat"
	// AuthBasic is email/API-token authentication via JIRA_USER_EMAIL and
	// JIRA_API_TOKEN.
	AuthBasic AuthScheme = "basic"
)

// AuthMethod is the resolved authentication state of a client. Exactly one
// scheme is active and it never changes for the lifetime of the client.
type AuthMethod struct {
	// Scheme identifies which credential scheme was selected.
	Scheme AuthScheme

	header string
}

// AuthorizationHeader returns the precomputed Authorization header value:
// "Bearer <token>" for PAT, "Basic <base64(email:token)>" for Basic.
func (m AuthMethod) AuthorizationHeader() string {
	return m.header
}

// Credentials is the usable result of configuration resolution: the
// configured base URL (not yet normalized) and the active auth method.
type Credentials struct {
	BaseURL string
	Auth    AuthMethod
}

// ResolveAuth picks the authentication scheme from parsed .claude/env
// variables.
//
// Resolution order is a hard contract:
//  1. a JIRA_PAT that is non-empty after trimming selects PAT auth,
//     regardless of whether Basic credentials are also present;
//  2. otherwise a complete JIRA_USER_EMAIL + JIRA_API_TOKEN pair selects
//     Basic auth;
//  3. otherwise resolution fails with an [*Error] that names both schemes
//     and every still-missing variable.
//
// A PAT consisting only of whitespace does not count as configured and
// falls through to the Basic check.
func ResolveAuth(vars map[string]string) (Credentials, error) {
	baseURL := strings.TrimSpace(vars[KeyBaseURL])
	if baseURL == "" {
		return Credentials{}, &Error{Message: fmt.Sprintf(
			"missing required variable in %s/%s: %s", ConfigDirName, ConfigFileName, KeyBaseURL,
		)}
	}

	if pat := strings.TrimSpace(vars[KeyPAT]); pat != "" {
		return Credentials{
			BaseURL: baseURL,
			Auth:    AuthMethod{Scheme: AuthPAT, header: "Bearer " + pat},
		}, nil
	}

	email := strings.TrimSpace(vars[KeyUserEmail])
	token := strings.TrimSpace(vars[KeyAPIToken])
	if email != "" && token != "" {
		encoded := base64.StdEncoding.EncodeToString([]byte(email + ":" + token))
		return Credentials{
			BaseURL: baseURL,
			Auth:    AuthMethod{Scheme: AuthBasic, header: "Basic " + encoded},
		}, nil
	}

	missing := []string{KeyPAT + " (for PAT authentication)"}
	var basicMissing []string
	if email == "" {
		basicMissing = append(basicMissing, KeyUserEmail)
	}
	if token == "" {
		basicMissing = append(basicMissing, KeyAPIToken)
	}
	missing = append(missing, strings.Join(basicMissing, ", ")+" (for Basic authentication)")

	return Credentials{}, &Error{Message: fmt.Sprintf(
		"no authentication method configured, missing: %s. Set %s for PAT auth, or %s and %s for Basic auth",
		strings.Join(missing, "; "), KeyPAT, KeyUserEmail, KeyAPIToken,
	)}
}
