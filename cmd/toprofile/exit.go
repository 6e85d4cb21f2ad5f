package main

// Exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// exitError pairs an error with the process exit code it should produce.
type exitError struct {
	code int
	err  error
}

func exitWithCode(code int, err error) error {
	return &exitError{code: code, err: err}
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }
