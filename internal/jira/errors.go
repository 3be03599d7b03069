package jira

import (
	"errors"
	"fmt"
	"strings"
)

// APIError reports a failed Jira API exchange: either a non-2xx response,
// or a 2xx response whose non-empty body is not valid JSON. Transport
// failures (DNS, TLS, timeouts) are never APIErrors because the HTTP layer
// never saw a response.
type APIError struct {
	// Message is a human-readable error description.
	Message string
	// StatusCode is the HTTP status of the response, 0 when not applicable.
	StatusCode int
	// Body is the raw response body as received, best effort.
	Body string
}

// Error formats the full message including status and response details,
// e.g. "jira api request failed: 401 Unauthorized | Status Code: 401 |
// Response: ...".
func (e *APIError) Error() string {
	parts := []string{e.Message}
	if e.StatusCode != 0 {
		parts = append(parts, fmt.Sprintf("Status Code: %d", e.StatusCode))
	}
	if e.Body != "" {
		parts = append(parts, "Response: "+e.Body)
	}
	return strings.Join(parts, " | ")
}

// AsAPIError unwraps err into an *APIError when one is in the chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
