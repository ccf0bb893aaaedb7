// Command delo-remindd watches the task database and surfaces reminders
// as they come due. Each surfaced reminder is acknowledged immediately so
// it fires exactly once.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kadyrovd/delo/internal/app"
	"github.com/kadyrovd/delo/internal/config"
	"github.com/kadyrovd/delo/internal/database"
	"github.com/kadyrovd/delo/internal/logging"
)

func main() {
	if err := logging.Init(); err != nil {
		slog.Warn("file logging unavailable", "error", err)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		slog.Error("failed to resolve database path", "error", err)
		os.Exit(1)
	}

	db, err := database.InitDB(ctx, dbPath)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	application := app.New(db)
	interval := cfg.PollInterval()

	slog.Info("delo-remindd starting", "db_path", dbPath, "poll_interval", interval, "pid", os.Getpid())

	if err := run(ctx, application, cfg, interval); err != nil {
		slog.Error("watcher error", "error", err)
		os.Exit(1)
	}

	slog.Info("delo-remindd shutting down gracefully")
}

func run(ctx context.Context, application *app.App, cfg *config.Config, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Check once at startup so reminders that came due while the
	// watcher was down fire without waiting a full interval.
	if err := checkReminders(ctx, application, cfg); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := checkReminders(ctx, application, cfg); err != nil {
				return err
			}
		}
	}
}

func checkReminders(ctx context.Context, application *app.App, cfg *config.Config) error {
	tasks, err := application.TaskService.DueReminders(ctx, time.Now())
	if err != nil {
		return fmt.Errorf("failed to query due reminders: %w", err)
	}

	for _, t := range tasks {
		when := ""
		if t.Reminder != nil {
			when = t.Reminder.Local().Format(cfg.DateFormat())
		}
		fmt.Printf("Reminder: %s (task %d, due %s)\n", t.Title, t.ID, when)
		slog.Info("reminder fired", "task_id", t.ID, "title", t.Title, "due", when)

		if err := application.TaskService.AcknowledgeReminder(ctx, t.ID); err != nil {
			return fmt.Errorf("failed to acknowledge reminder for task %d: %w", t.ID, err)
		}
	}
	return nil
}
