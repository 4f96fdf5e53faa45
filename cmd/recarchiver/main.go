package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/recarchiver/internal/cli"
	"github.com/dmitrijs2005/recarchiver/internal/config"
	"github.com/dmitrijs2005/recarchiver/internal/logging"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.LoadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	initSignalHandler(cancel)

	var selection string
	if pos := config.Flags.Positional(args); len(pos) > 0 {
		selection = pos[0]
	}

	app := cli.NewApp(cfg, os.Stdin, os.Stdout, logger)
	if err := app.Run(ctx, selection); err != nil {
		logger.Error(ctx, "command failed", "error", err)
		return err
	}
	return nil
}

// initSignalHandler cancels the context on the first SIGINT or SIGTERM and
// restores default handling, so a second signal terminates the process
// even while it waits on stdin.
func initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigs
		signal.Stop(sigs)
		cancelFunc()
	}()
}
