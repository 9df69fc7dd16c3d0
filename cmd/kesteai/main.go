package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/kesteai/internal/app"
	"github.com/alexanderramin/kesteai/internal/cli"
	"github.com/alexanderramin/kesteai/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := app.NewLogger(cfg.Log.Env, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	rt, err := app.NewRuntime(cfg, logger)
	if err != nil {
		return err
	}
	defer rt.Close()

	a := &cli.App{
		Runtime: rt,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(a).Execute()
}
