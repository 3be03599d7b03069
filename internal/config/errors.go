package config

// Error reports a configuration failure: a missing .claude/env file, an
// unreadable file, or incomplete credentials. It never carries an HTTP
// status; remote failures are reported by the jira package instead.
type Error struct {
	// Message is a human-readable description naming the missing file or
	// variables so the user can fix the configuration directly.
	Message string

	// Err is the underlying cause when an I/O failure triggered the error,
	// nil otherwise.
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
