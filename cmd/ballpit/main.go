package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeusync/ballpit/internal/core/observability/log"
	"github.com/zeusync/ballpit/internal/injector"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "ballpit:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	seed := cfg.ResolveSeed(func() int64 { return time.Now().UnixNano() })
	app.Logger.Info("starting",
		log.Int64("seed", seed),
		log.Int("runs", cfg.Runs),
		log.Int("parallel", cfg.Parallel))

	_, err = app.Runner.RunBatch(ctx, seed)
	return err
}
