package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kadyrovd/delo/cmd"
	"github.com/kadyrovd/delo/internal/cli"
	"github.com/kadyrovd/delo/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		// Logging failures should never block the CLI itself.
		slog.Warn("file logging unavailable", "error", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	if err := cmd.Execute(ctx); err != nil {
		// Errors the commands already formatted only need an exit code;
		// anything else (usage mistakes, internal faults) prints here.
		var handled *cli.HandledError
		if !errors.As(err, &handled) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCodeForError(err))
	}
}
