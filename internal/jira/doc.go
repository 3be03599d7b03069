// Package jira is the shared REST client substrate of the toolkit.
//
// A [Client] owns a normalized base URL ("<base>/rest/api/3/") and a fixed
// Authorization header resolved once at construction from .claude/env. It
// exposes the four HTTP verbs the per-resource commands need and funnels
// every response through a single handler so success, empty success
// (204), and failure all have one shape: decoded JSON, nil, or [*APIError].
package jira
