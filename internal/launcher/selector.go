package launcher

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/chess10kp/dexrun/internal/apps"
	"github.com/chess10kp/dexrun/internal/config"
	"github.com/chess10kp/dexrun/internal/logging"
)

var log = logging.Get("launcher")

// Chooser hands labels to a selector process and returns what it picked.
// *Runner is the only implementation outside tests.
type Chooser interface {
	Select(labels []string) (string, error)
}

// Selector presents a catalog, either as a plain list or through a runner,
// and hands the chosen entry to a Handler.
type Selector struct {
	out     io.Writer
	runner  Chooser
	handler Handler
	fuzzy   bool
}

// NewSelector builds a selector from cfg. Without a runner command it only lists.
func NewSelector(cfg *config.Config, out io.Writer) (*Selector, error) {
	s := &Selector{out: out, fuzzy: cfg.Fuzzy}

	if cfg.HasRunner() {
		runner, err := NewRunner(cfg.RunnerCmd)
		if err != nil {
			return nil, err
		}
		s.runner = runner
	}

	if cfg.UseSway {
		s.handler = NewSwayHandler(cfg.Launcher)
	} else {
		s.handler = NewExecHandler(cfg.Launcher)
	}

	return s, nil
}

// WithHandler replaces the launch handler.
func (s *Selector) WithHandler(h Handler) *Selector {
	s.handler = h
	return s
}

// WithRunner replaces the runner built from RUNNER_CMD.
func (s *Selector) WithRunner(r Chooser) *Selector {
	s.runner = r
	return s
}

func (s *Selector) HasRunner() bool {
	return s.runner != nil
}

// List prints every label on its own line.
func (s *Selector) List(catalog *apps.Catalog) error {
	w := bufio.NewWriter(s.out)
	for _, label := range catalog.Labels() {
		if _, err := fmt.Fprintln(w, label); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Choose runs the runner over the catalog labels and echoes the selection.
func (s *Selector) Choose(catalog *apps.Catalog) (string, error) {
	if s.runner == nil {
		return "", fmt.Errorf("no runner configured")
	}

	selection, err := s.runner.Select(catalog.Labels())
	if err != nil {
		return "", err
	}

	if _, err := fmt.Fprintln(s.out, selection); err != nil {
		return "", err
	}
	return selection, nil
}

// Launch starts the first entry matching selection. It reports false when
// nothing matched; that is not an error.
func (s *Selector) Launch(ctx context.Context, catalog *apps.Catalog, selection string) (apps.Entry, bool, error) {
	entry, ok := Match(catalog.Entries(), selection, s.fuzzy)
	if !ok {
		log.Infof("No entry matches %q, nothing to launch", selection)
		return apps.Entry{}, false, nil
	}

	if err := s.handler.Launch(ctx, entry.Path); err != nil {
		return entry, false, err
	}
	return entry, true, nil
}
