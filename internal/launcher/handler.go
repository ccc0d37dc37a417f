package launcher

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"syscall"

	"github.com/femnad/mare"
	"github.com/joshuarubin/go-sway"
)

// Handler starts a chosen desktop file. Implementations must not wait for
// the application to exit.
type Handler interface {
	Launch(ctx context.Context, path string) error
}

// ExecHandler runs "<Command> <path>" in a new session.
type ExecHandler struct {
	Command string
}

func NewExecHandler(command string) *ExecHandler {
	return &ExecHandler{Command: mare.ExpandUser(command)}
}

func (h *ExecHandler) Launch(_ context.Context, path string) error {
	cmd := exec.Command(h.Command, path)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}

	if err := cmd.Start(); err != nil {
		return &LaunchHandlerError{Path: path, Err: err}
	}
	log.Infof("Started %s %s (pid %d)", h.Command, path, cmd.Process.Pid)

	// Nobody waits on the handler.
	_ = cmd.Process.Release()
	return nil
}

type swayCommander interface {
	RunCommand(ctx context.Context, command string) ([]sway.RunCommandReply, error)
}

// SwayHandler asks sway to exec the launch handler, so the application is
// parented to the compositor instead of this process.
type SwayHandler struct {
	Command string
	dial    func(ctx context.Context) (swayCommander, error)
}

func NewSwayHandler(command string) *SwayHandler {
	return &SwayHandler{
		Command: mare.ExpandUser(command),
		dial: func(ctx context.Context) (swayCommander, error) {
			client, err := sway.New(ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	}
}

func (h *SwayHandler) Launch(ctx context.Context, path string) error {
	client, err := h.dial(ctx)
	if err != nil {
		return &LaunchHandlerError{Path: path, Err: fmt.Errorf("failed to connect to sway: %w", err)}
	}

	command := fmt.Sprintf("exec %s %s", shellQuote(h.Command), shellQuote(path))
	replies, err := client.RunCommand(ctx, command)
	if err != nil {
		return &LaunchHandlerError{Path: path, Err: err}
	}
	for _, reply := range replies {
		if !reply.Success {
			return &LaunchHandlerError{Path: path, Err: fmt.Errorf("sway refused %q: %s", command, reply.Error)}
		}
	}

	log.Infof("Sent to sway: %s", command)
	return nil
}

// shellQuote wraps s in single quotes for sway's sh -c.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
