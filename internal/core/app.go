package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/chess10kp/dexrun/internal/apps"
	"github.com/chess10kp/dexrun/internal/config"
	"github.com/chess10kp/dexrun/internal/launcher"
	"github.com/chess10kp/dexrun/internal/logging"
)

var log = logging.Get("core")

// App drives one run: discover, parse, merge, then list or select and launch.
type App struct {
	config   *config.Config
	out      io.Writer
	handler  launcher.Handler
	runner   launcher.Chooser
	stage    Stage
	history  []Stage
	launched *apps.Entry
}

// NewApp creates an application writing its user-facing output to out.
func NewApp(cfg *config.Config, out io.Writer) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	return &App{
		config:  cfg,
		out:     out,
		stage:   StageIdle,
		history: []Stage{StageIdle},
	}, nil
}

// WithHandler replaces the launch handler picked from the config.
func (a *App) WithHandler(h launcher.Handler) *App {
	a.handler = h
	return a
}

// WithRunner replaces the runner built from RUNNER_CMD. It only takes
// effect when RUNNER_CMD is set.
func (a *App) WithRunner(r launcher.Chooser) *App {
	a.runner = r
	return a
}

func (a *App) Stage() Stage {
	return a.stage
}

// History lists every stage entered so far, in order.
func (a *App) History() []Stage {
	return append([]Stage(nil), a.history...)
}

// Launched returns the entry handed to the launch handler, if any.
func (a *App) Launched() (apps.Entry, bool) {
	if a.launched == nil {
		return apps.Entry{}, false
	}
	return *a.launched, true
}

func (a *App) enter(s Stage) {
	log.Debugf("Stage %s -> %s", a.stage, s)
	a.stage = s
	a.history = append(a.history, s)
}

func (a *App) fail(err error) error {
	failed := a.stage
	a.enter(StageFailed)
	return &StageError{Stage: failed, Err: err}
}

// Run executes the run once. Only fatal errors are returned; everything
// else is logged where it happens.
func (a *App) Run(ctx context.Context) error {
	if a.stage != StageIdle {
		return fmt.Errorf("app already ran (stage %s)", a.stage)
	}
	start := time.Now()

	a.enter(StageDiscover)
	loader, err := apps.NewLoader(a.config)
	if err != nil {
		return a.fail(err)
	}
	entries, err := loader.Discover()
	if err != nil {
		return a.fail(err)
	}

	a.enter(StageParseParallel)
	catalog := loader.ParseSystem(entries)

	a.enter(StageMerge)
	if err := loader.MergeUser(catalog); err != nil {
		return a.fail(err)
	}
	log.Infof("Catalog ready with %d applications in %v", catalog.Len(), time.Since(start))

	a.enter(StagePresent)
	selector, err := launcher.NewSelector(a.config, a.out)
	if err != nil {
		return a.fail(err)
	}
	if a.handler != nil {
		selector.WithHandler(a.handler)
	}
	if a.runner != nil && selector.HasRunner() {
		selector.WithRunner(a.runner)
	}

	if !selector.HasRunner() {
		a.enter(StageList)
		if err := selector.List(catalog); err != nil {
			return a.fail(fmt.Errorf("failed to write listing: %w", err))
		}
		a.enter(StageDone)
		return nil
	}

	selection, err := selector.Choose(catalog)
	if err != nil {
		var outputErr *launcher.RunnerOutputError
		if errors.As(err, &outputErr) {
			fmt.Fprintln(a.out, outputErr.Error())
			a.enter(StageDone)
			return nil
		}
		return a.fail(err)
	}

	a.enter(StageLaunch)
	entry, launched, err := selector.Launch(ctx, catalog, selection)
	if err != nil {
		return a.fail(err)
	}
	if launched {
		a.launched = &entry
	}

	a.enter(StageDone)
	return nil
}
