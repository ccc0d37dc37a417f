package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"

	"github.com/chess10kp/dexrun/internal/config"
	"github.com/chess10kp/dexrun/internal/logging"
)

type args struct {
	ValidateOnly bool `arg:"-q,--validate-only" help:"only report whether the environment is usable"`
	LogLevel     int  `arg:"-l,--loglevel" default:"2"`
}

func main() {
	var args args
	arg.MustParse(&args)
	logging.Init(args.LogLevel)

	cfg, err := config.ValidateEnv(os.LookupEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Config validation failed: %v\n", err)
		os.Exit(1)
	}

	if args.ValidateOnly {
		fmt.Println("✅ Config is valid!")
		return
	}

	if err := cfg.WriteTOML(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
