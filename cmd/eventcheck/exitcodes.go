package main

import "fmt"

// Exit codes for the eventcheck CLI. Validation failures are not process
// failures: a written report always exits ExitOK.
const (
	ExitOK           = 0 // Report written.
	ExitInvalidArgs  = 1 // Invalid arguments or bad config.
	ExitInputError   = 2 // Input missing, unreadable, or without a header.
	ExitWriteFailure = 3 // Report could not be written.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitInputError:
			msg = "eventcheck: cannot read input"
		case ExitWriteFailure:
			msg = "eventcheck: cannot write report"
		default:
			msg = "eventcheck: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
