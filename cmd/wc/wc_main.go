package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"gitlab.com/yarbelk/slimwc/lib/logging"
	"gitlab.com/yarbelk/slimwc/lib/wc"
)

func main() {
	logger := slog.New(logging.NewTerminalHandler(os.Stderr, slog.LevelInfo))

	wcFS := wc.BindFlagSet()
	wcFS.SetOutput(os.Stderr)
	options, err := wc.ParseArgs(wcFS, os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			wcFS.SetOutput(os.Stdout)
			wcFS.Usage()
			os.Exit(0)
		}
		logger.Error("bad arguments", "err", err)
		wcFS.Usage()
		os.Exit(1)
	}

	options.Stdin = os.Stdin
	options.Stdout = os.Stdout
	options.Logger = logger
	if err := wc.Main(options); err != nil {
		os.Exit(1)
	}
}
