package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/trainlog/trainlog/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Logs go to stderr so command output on stdout stays clean.
	logWriter := io.Writer(os.Stderr)
	if logPath := os.Getenv("TRAINLOG_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}

	err := cli.Run(ctx, os.Args[1:], cli.Options{
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		LogWriter: logWriter,
	})
	if err != nil {
		stop()
		os.Exit(1)
	}
}
