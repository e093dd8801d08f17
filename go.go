package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"collections/config"
	"collections/logger"
	"collections/shell"
)

func main() {
	props := config.Current

	var verbose bool
	flag.StringVar(&props.LogDir, "log", "", "log directory, default is ~/.collections/debug.")
	flag.StringVar(&props.Prompt, "prompt", props.Prompt, "prompt written before each command.")
	flag.BoolVar(&props.Quiet, "q", false, "do not write the prompt, for piped input.")
	flag.BoolVar(&verbose, "v", false, "also write log entries to stderr.")
	flag.Parse()

	logDir, err := props.ResolveLogDir()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err = logger.Setup(logDir); err != nil {
		fmt.Fprintln(os.Stderr, "log file disabled:", err)
	} else if !verbose {
		logger.SetOutput(io.Discard)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("shell started")
	err = shell.New().Run(ctx, os.Stdin, os.Stdout, props)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("shell stopped:", err)
		fmt.Fprintln(os.Stderr, err)
		return
	}
	logger.Info("shell stopped")
}
