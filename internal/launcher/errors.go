package launcher

import "fmt"

// RunnerSpawnError is fatal: the configured runner could not be started.
type RunnerSpawnError struct {
	Cmd string
	Err error
}

func (e *RunnerSpawnError) Error() string {
	return fmt.Sprintf("failed to start runner %q: %v", e.Cmd, e.Err)
}

func (e *RunnerSpawnError) Unwrap() error { return e.Err }

// RunnerOutputError is reported but does not fail the run.
type RunnerOutputError struct {
	Err error
}

func (e *RunnerOutputError) Error() string {
	return fmt.Sprintf("Failed to capture child process output: %v", e.Err)
}

func (e *RunnerOutputError) Unwrap() error { return e.Err }

// LaunchHandlerError is fatal: the launch handler could not be started.
type LaunchHandlerError struct {
	Path string
	Err  error
}

func (e *LaunchHandlerError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Path, e.Err)
}

func (e *LaunchHandlerError) Unwrap() error { return e.Err }
