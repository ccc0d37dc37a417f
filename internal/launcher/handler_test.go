package launcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/joshuarubin/go-sway"
)

func waitForFile(t *testing.T, path string) string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return string(data)
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", path)
	return ""
}

// writeHandlerScript creates a fake launch handler that records its argument.
func writeHandlerScript(t *testing.T, dir string) (script, record string) {
	t.Helper()
	script = filepath.Join(dir, "fake-dex")
	record = filepath.Join(dir, "launched")
	content := "#!/bin/sh\nprintf '%s' \"$1\" > " + record + ".tmp && mv " + record + ".tmp " + record + "\n"
	if err := os.WriteFile(script, []byte(content), 0755); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return script, record
}

func TestExecHandlerLaunch(t *testing.T) {
	dir := t.TempDir()
	script, record := writeHandlerScript(t, dir)

	handler := NewExecHandler(script)
	if err := handler.Launch(context.Background(), "/apps/foo.desktop"); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	if got := waitForFile(t, record); got != "/apps/foo.desktop" {
		t.Errorf("Expected handler to get '/apps/foo.desktop', got %q", got)
	}
}

func TestExecHandlerMissingBinary(t *testing.T) {
	handler := NewExecHandler("/nonexistent/dex")
	err := handler.Launch(context.Background(), "/apps/foo.desktop")

	var launchErr *LaunchHandlerError
	if !errors.As(err, &launchErr) {
		t.Fatalf("Expected LaunchHandlerError, got %v", err)
	}
	if launchErr.Path != "/apps/foo.desktop" {
		t.Errorf("Unexpected path %s", launchErr.Path)
	}
}

type fakeSway struct {
	commands []string
	replies  []sway.RunCommandReply
	err      error
}

func (f *fakeSway) RunCommand(_ context.Context, command string) ([]sway.RunCommandReply, error) {
	f.commands = append(f.commands, command)
	return f.replies, f.err
}

func newFakeSwayHandler(fake *fakeSway, dialErr error) *SwayHandler {
	return &SwayHandler{
		Command: "dex",
		dial: func(context.Context) (swayCommander, error) {
			if dialErr != nil {
				return nil, dialErr
			}
			return fake, nil
		},
	}
}

func TestSwayHandlerLaunch(t *testing.T) {
	fake := &fakeSway{replies: []sway.RunCommandReply{{Success: true}}}
	handler := newFakeSwayHandler(fake, nil)

	if err := handler.Launch(context.Background(), "/home/u/it's.desktop"); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}

	if len(fake.commands) != 1 {
		t.Fatalf("Expected 1 sway command, got %d", len(fake.commands))
	}
	want := `exec 'dex' '/home/u/it'\''s.desktop'`
	if fake.commands[0] != want {
		t.Errorf("Expected %s, got %s", want, fake.commands[0])
	}
}

func TestSwayHandlerFailures(t *testing.T) {
	testCases := []struct {
		name    string
		fake    *fakeSway
		dialErr error
		wantMsg string
	}{
		{"dial", &fakeSway{}, errors.New("no socket"), "failed to connect to sway"},
		{"command", &fakeSway{err: errors.New("broken pipe")}, nil, "broken pipe"},
		{"refused", &fakeSway{replies: []sway.RunCommandReply{{Success: false, Error: "nope"}}}, nil, "nope"},
	}

	for _, tc := range testCases {
		err := newFakeSwayHandler(tc.fake, tc.dialErr).Launch(context.Background(), "/a.desktop")
		var launchErr *LaunchHandlerError
		if !errors.As(err, &launchErr) {
			t.Errorf("%s: expected LaunchHandlerError, got %v", tc.name, err)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Errorf("%s: expected error to mention %q, got %v", tc.name, tc.wantMsg, err)
		}
	}
}
