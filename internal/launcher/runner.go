package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/google/shlex"
)

// Runner is an external selector: labels go to its stdin, one per line,
// and its stdout is the chosen label. There is no timeout; a runner that
// never exits blocks the caller.
type Runner struct {
	cmdline string
	argv    []string
	// Stderr receives the runner's diagnostics.
	Stderr io.Writer
}

// NewRunner splits cmdline with shell quoting rules, so "dmenu -i -l 20" works.
func NewRunner(cmdline string) (*Runner, error) {
	argv, err := shlex.Split(cmdline)
	if err != nil {
		return nil, &RunnerSpawnError{Cmd: cmdline, Err: err}
	}
	if len(argv) == 0 {
		return nil, &RunnerSpawnError{Cmd: cmdline, Err: errors.New("empty command")}
	}

	return &Runner{cmdline: cmdline, argv: argv, Stderr: os.Stderr}, nil
}

// Select pipes labels through the runner and returns its trimmed output.
// A start failure is a RunnerSpawnError, a capture failure a RunnerOutputError.
// A non-zero exit, as when the user dismisses the menu, is not an error.
func (r *Runner) Select(labels []string) (string, error) {
	cmd := exec.Command(r.argv[0], r.argv[1:]...)
	cmd.Stderr = r.Stderr

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", &RunnerSpawnError{Cmd: r.cmdline, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return "", &RunnerSpawnError{Cmd: r.cmdline, Err: err}
	}
	log.Debugf("Started runner %s (pid %d) with %d labels", r.argv[0], cmd.Process.Pid, len(labels))

	var input strings.Builder
	for _, label := range labels {
		input.WriteString(label)
		input.WriteByte('\n')
	}
	if _, err := io.WriteString(stdin, input.String()); err != nil {
		// The runner may exit before reading everything.
		log.Warningf("Failed writing labels to runner: %v", err)
	}
	if err := stdin.Close(); err != nil {
		log.Debugf("Closing runner stdin: %v", err)
	}

	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", &RunnerOutputError{Err: err}
		}
		log.Infof("Runner exited with status %d", exitErr.ExitCode())
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (r *Runner) String() string {
	return fmt.Sprintf("runner(%s)", strings.Join(r.argv, " "))
}
