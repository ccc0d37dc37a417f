package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/chess10kp/dexrun/internal/config"
	"github.com/chess10kp/dexrun/internal/core"
	"github.com/chess10kp/dexrun/internal/logging"
)

type args struct {
	Workers  int    `arg:"-w,--workers" default:"6" help:"parser worker count"`
	Launcher string `arg:"--launcher" default:"dex" help:"launch handler invoked with the desktop file path"`
	Sway     bool   `arg:"--sway" help:"run the launch handler through sway IPC"`
	Fuzzy    bool   `arg:"--fuzzy" help:"fall back to fuzzy matching when the runner output matches no label"`
	LogLevel int    `arg:"-l,--loglevel" default:"2" help:"0 critical ... 5 debug"`
}

func (args) Version() string {
	return "dexrun 0.1.0"
}

func (args) Description() string {
	return "List desktop applications, or pick one through $RUNNER_CMD and launch it."
}

func main() {
	var args args
	arg.MustParse(&args)
	logging.Init(args.LogLevel)

	os.Exit(run(context.Background(), args, os.LookupEnv, os.Stdout, os.Stderr))
}

// run resolves the config, applies the flags and runs the app once. It
// returns the process exit code.
func run(ctx context.Context, args args, lookup config.LookupFunc, stdout, stderr io.Writer) int {
	log := logging.Get("dexrun")
	fatal := func(err error) int {
		log.Critical(err)
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	cfg, err := config.FromEnv(lookup)
	if err != nil {
		return fatal(err)
	}
	cfg.Workers = args.Workers
	cfg.Launcher = args.Launcher
	cfg.UseSway = args.Sway
	cfg.Fuzzy = args.Fuzzy

	if err := cfg.Validate(); err != nil {
		return fatal(err)
	}

	app, err := core.NewApp(cfg, stdout)
	if err != nil {
		return fatal(err)
	}

	if err := app.Run(ctx); err != nil {
		return fatal(fmt.Errorf("run failed: %w", err))
	}
	return 0
}
