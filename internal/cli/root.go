// Package cli defines the cobra commands of the trainlog command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/trainlog/trainlog/internal/config"
	"github.com/trainlog/trainlog/internal/domain/activity"
	"github.com/trainlog/trainlog/internal/domain/training"
	"github.com/trainlog/trainlog/internal/render"
	"github.com/trainlog/trainlog/internal/repository"
	"github.com/trainlog/trainlog/internal/sqlite"
	"github.com/trainlog/trainlog/internal/store"
)

var version = "dev" // set via ldflags at build time

// Options configures where the CLI writes and which clock it reads.
type Options struct {
	Stdout io.Writer
	Stderr io.Writer
	// LogWriter receives slog output. Defaults to Stderr.
	LogWriter io.Writer
	Now       func() time.Time
}

type app struct {
	opts Options

	configPath string
	dbPath     string
	logLevel   string

	logger   *slog.Logger
	db       *sqlite.DB
	sessions *training.Service
	history  *activity.Service
	out      *render.Renderer
}

// Run executes the command line given by args. Errors are reported on
// opts.Stderr before being returned.
func Run(ctx context.Context, args []string, opts Options) error {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.LogWriter == nil {
		opts.LogWriter = opts.Stderr
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &app{opts: opts}
	defer a.close()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	err := root.ExecuteContext(ctx)
	if err != nil {
		a.report(err)
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trainlog",
		Short: "Local training session log",
		Long: `trainlog records training sessions and their exercises in a local
database. Sessions are listed newest first and tagged by muscle group.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.open()
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Path to the SQLite database")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		a.listCmd(),
		a.showCmd(),
		a.addCmd(),
		a.editCmd(),
		a.deleteCmd(),
		a.exerciseCmd(),
		a.tagsCmd(),
		a.statsCmd(),
		a.historyCmd(),
		a.resetCmd(),
	)
	return root
}

// open loads configuration and wires storage and services.
func (a *app) open() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if a.dbPath != "" {
		cfg.DB.Path = a.dbPath
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	a.logger = slog.New(slog.NewTextHandler(a.opts.LogWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	dsn := cfg.DB.Path
	if cfg.Storage.Backend == config.BackendMemory {
		dsn = ":memory:"
	}
	if err := sqlite.EnsureDir(dsn); err != nil {
		return fmt.Errorf("failed to prepare database path: %w", err)
	}
	db, err := sqlite.New(dsn)
	if err != nil {
		return err
	}
	a.db = db
	if err := db.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	var kv repository.KeyValueStore = sqlite.NewKVRepository(db)
	if cfg.Storage.Backend == config.BackendMemory {
		kv = store.NewMemoryKV()
	}
	sessionStore := store.New(kv, cfg.Storage.Key, a.logger)

	a.history = activity.NewService(sqlite.NewActivityRepository(db), a.logger)
	a.sessions = training.NewService(sessionStore, a.history, a.logger)
	a.out = render.New(a.opts.Stdout)

	a.logger.Debug("storage opened", "backend", cfg.Storage.Backend, "path", dsn, "key", sessionStore.Key())
	return nil
}

func (a *app) close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil && a.logger != nil {
		a.logger.Warn("failed to close database", "error", err)
	}
}

func (a *app) report(err error) {
	r := render.New(a.opts.Stderr)

	var verr *training.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(a.opts.Stderr, r.ValidationErrors(verr))
	case errors.Is(err, training.ErrSessionNotFound):
		fmt.Fprintln(a.opts.Stderr, r.Error("Session not found"))
	case errors.Is(err, training.ErrExerciseNotFound):
		fmt.Fprintln(a.opts.Stderr, r.Error("Exercise not found"))
	default:
		fmt.Fprintln(a.opts.Stderr, r.Error("Error: "+err.Error()))
	}
}

func (a *app) println(cmd *cobra.Command, text string) {
	fmt.Fprintln(cmd.OutOrStdout(), text)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
